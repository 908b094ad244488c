// Command symspellsrv exposes a symspell.SymSpell engine over HTTP,
// generalizing the teacher's single /api/v1/correct endpoint
// (cmd/main.go, cmd/server/main.go) into one endpoint per core operation
// plus custom-dictionary management.
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/FanaticPythoner/symspellwhookspy/internal/corrector"
	"github.com/FanaticPythoner/symspellwhookspy/internal/customdict"
	"github.com/FanaticPythoner/symspellwhookspy/internal/dictfile"
	"github.com/FanaticPythoner/symspellwhookspy/internal/logger"
	"github.com/FanaticPythoner/symspellwhookspy/pkg/config"
	"github.com/FanaticPythoner/symspellwhookspy/pkg/options"
	"github.com/FanaticPythoner/symspellwhookspy/pkg/symspell"
	"github.com/FanaticPythoner/symspellwhookspy/pkg/verbosity"
)

// server bundles the engine and its collaborators; its handlers are methods
// so cmd/symspellsrv's handler tests can construct one directly.
type server struct {
	engine *symspell.SymSpell
	sc     *corrector.SpellCorrector
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	logger.SetLevel(cfg.Log.Level)
	log := logger.Default("symspellsrv")

	engine := symspell.NewSymSpell(
		options.WithMaxDictionaryEditDistance(cfg.Engine.MaxDictionaryEditDistance),
		options.WithPrefixLength(cfg.Engine.PrefixLength),
		options.WithCountThreshold(cfg.Engine.CountThreshold),
	)

	n, err := dictfile.Load(engine, cfg.Engine.DictionaryPath, dictfile.DefaultOptions)
	if err != nil {
		log.Fatalf("loading dictionary: %v", err)
	}
	log.Infof("loaded %d dictionary entries", n)

	var dict *customdict.CustomDict
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		dict = customdict.New(client)
	}

	sc, err := corrector.NewSpellCorrector(engine, dict, corrector.DefaultConfig)
	if err != nil {
		log.Fatalf("init corrector: %v", err)
	}

	srv := &server{engine: engine, sc: sc}

	log.Infof("listening on %s", cfg.HTTP.Addr)
	log.Fatal(http.ListenAndServe(cfg.HTTP.Addr, srv.routes()))
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/lookup", s.handleLookup)
	mux.HandleFunc("/api/v1/lookup-compound", s.handleLookupCompound)
	mux.HandleFunc("/api/v1/segment", s.handleSegment)
	mux.HandleFunc("/api/v1/custom-word", s.handleAddCustomWord)
	mux.HandleFunc("/api/v1/custom-word/", s.handleRemoveCustomWord)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *server) handleLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Phrase          string `json:"phrase"`
		Verbosity       string `json:"verbosity"`
		MaxEditDistance *int   `json:"max_edit_distance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Phrase) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	v := verbosity.Top
	switch strings.ToLower(req.Verbosity) {
	case "closest":
		v = verbosity.Closest
	case "all":
		v = verbosity.All
	}

	var opts []symspell.LookupOption
	if req.MaxEditDistance != nil {
		opts = append(opts, symspell.WithMaxEditDistance(*req.MaxEditDistance))
	}

	suggestions, err := s.engine.Lookup(req.Phrase, v, opts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (s *server) handleLookupCompound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Phrase          string `json:"phrase"`
		MaxEditDistance int    `json:"max_edit_distance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Phrase) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.MaxEditDistance == 0 {
		req.MaxEditDistance = s.engine.MaxDictionaryEditDistance()
	}

	suggestions, err := s.engine.LookupCompound(req.Phrase, req.MaxEditDistance)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (s *server) handleSegment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Phrase          string `json:"phrase"`
		MaxEditDistance *int   `json:"max_edit_distance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Phrase) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	var opts []symspell.SegmentationOption
	if req.MaxEditDistance != nil {
		opts = append(opts, symspell.WithSegmentationMaxEditDistance(*req.MaxEditDistance))
	}

	composition, err := s.engine.WordSegmentation(req.Phrase, opts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, composition)
}

func (s *server) handleAddCustomWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := s.sc.AddCustomWord(req.Word); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

func (s *server) handleRemoveCustomWord(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	word := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-word/")
	if word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}
	if err := s.sc.RemoveCustomWord(word); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
