package corrector

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/FanaticPythoner/symspellwhookspy/internal/customdict"
	"github.com/FanaticPythoner/symspellwhookspy/pkg/symspell"
	"github.com/FanaticPythoner/symspellwhookspy/pkg/verbosity"
)

var tokenRe = regexp.MustCompile(`[A-Za-z]+|\d+|\s+|[^\sA-Za-z0-9]`)

func tokenize(text string) []string { return tokenRe.FindAllString(text, -1) }

func isWord(tok string) bool {
	ok, _ := regexp.MatchString(`^[A-Za-z]+$`, tok)
	return ok
}

// SpellCorrector is a full-text corrector built on top of a symspell.SymSpell
// engine and an optional Redis-backed custom dictionary, grounded in the
// teacher's SpellCorrector but stripped of its Russian morphology layer.
type SpellCorrector struct {
	config Config
	engine *symspell.SymSpell
	dict   *customdict.CustomDict
}

// NewSpellCorrector wires engine (already loaded with a base dictionary) to
// an optional custom-word store and sets engine's ranker to a keyboard-aware
// one built from cfg.
func NewSpellCorrector(engine *symspell.SymSpell, dict *customdict.CustomDict, cfg Config) (*SpellCorrector, error) {
	if engine == nil {
		return nil, fmt.Errorf("corrector: engine must not be nil")
	}
	sc := &SpellCorrector{config: cfg, engine: engine, dict: dict}
	engine.SetRanker(NewKeyboardRanker(cfg))
	if dict != nil {
		words, err := dict.All()
		if err != nil {
			return nil, fmt.Errorf("corrector: loading custom words: %w", err)
		}
		for _, w := range words {
			if _, err := engine.CreateDictionaryEntry(strings.ToLower(w), 1_000_000_000); err != nil {
				return nil, fmt.Errorf("corrector: seeding custom word %q: %w", w, err)
			}
		}
	}
	return sc, nil
}

// CorrectText tokenizes text and replaces every recognized word with its
// top suggestion, restoring the original token's casing; words of two runes
// or fewer are left as they are when FilterShortWords is set, matching the
// teacher's CorrectText but delegating all scoring to engine.Lookup and the
// keyboard-aware ranker instead of a bespoke frequency/morphology model.
func (sc *SpellCorrector) CorrectText(text string) CorrectionResult {
	tokens := tokenize(text)
	out := make([]string, len(tokens))
	copy(out, tokens)
	suggestions := make(map[int]SuggestionInfo)

	for i, tok := range tokens {
		if !isWord(tok) {
			continue
		}
		lw := strings.ToLower(tok)
		if sc.config.FilterShortWords && len([]rune(lw)) <= 2 {
			continue
		}

		results, err := sc.engine.Lookup(lw, verbosity.Closest, symspell.WithMaxEditDistance(sc.config.MaxEditDistance))
		if err != nil || len(results) == 0 {
			continue
		}

		best := results[0]
		out[i] = restoreCasing(tok, best.Term)

		k := sc.config.TopKSuggestions
		if k <= 0 || k > len(results) {
			k = len(results)
		}
		var alts []string
		for _, r := range results[:k] {
			if r.Term != lw {
				alts = append(alts, r.Term)
			}
		}
		if len(alts) > 0 {
			suggestions[i] = SuggestionInfo{Token: tok, Suggestions: alts}
		}
	}

	return CorrectionResult{
		Original:    text,
		Corrected:   strings.Join(out, ""),
		Suggestions: suggestions,
	}
}

// AddCustomWord inserts word into both the engine's dictionary and the
// backing Redis store (if configured), so it survives a process restart.
func (sc *SpellCorrector) AddCustomWord(word string) error {
	lw := strings.ToLower(word)
	if sc.dict != nil {
		if err := sc.dict.Add(lw); err != nil {
			return fmt.Errorf("corrector: adding %q to custom dictionary: %w", lw, err)
		}
	}
	if _, err := sc.engine.CreateDictionaryEntry(lw, 1_000_000_000); err != nil {
		return fmt.Errorf("corrector: adding %q to engine: %w", lw, err)
	}
	return nil
}

// RemoveCustomWord removes word from both the engine's dictionary and the
// backing Redis store.
func (sc *SpellCorrector) RemoveCustomWord(word string) error {
	lw := strings.ToLower(word)
	if sc.dict != nil {
		if err := sc.dict.Remove(lw); err != nil {
			return fmt.Errorf("corrector: removing %q from custom dictionary: %w", lw, err)
		}
	}
	sc.engine.DeleteDictionaryEntry(lw)
	return nil
}
