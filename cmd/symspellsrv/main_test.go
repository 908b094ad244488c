package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FanaticPythoner/symspellwhookspy/internal/corrector"
	"github.com/FanaticPythoner/symspellwhookspy/pkg/options"
	"github.com/FanaticPythoner/symspellwhookspy/pkg/symspell"
)

func newTestServer(t *testing.T) *server {
	t.Helper()
	engine := symspell.NewSymSpell(
		options.WithMaxDictionaryEditDistance(2),
		options.WithPrefixLength(7),
		options.WithCountThreshold(1),
	)
	engine.CreateDictionaryEntry("hello", 100)
	engine.CreateDictionaryEntry("world", 100)

	sc, err := corrector.NewSpellCorrector(engine, nil, corrector.DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}
	return &server{engine: engine, sc: sc}
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleLookupReturnsSuggestions(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.routes(), http.MethodPost, "/api/v1/lookup", map[string]string{
		"phrase": "helo",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Suggestions []symspell.Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Suggestions) == 0 || resp.Suggestions[0].Term != "hello" {
		t.Fatalf("unexpected suggestions: %+v", resp.Suggestions)
	}
}

func TestHandleLookupRejectsEmptyPhrase(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.routes(), http.MethodPost, "/api/v1/lookup", map[string]string{"phrase": ""})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleLookupRejectsWrongMethod(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/lookup", nil)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleLookupCompoundReturnsOneSuggestion(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.routes(), http.MethodPost, "/api/v1/lookup-compound", map[string]any{
		"phrase": "hel lo world",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Suggestions []symspell.Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	equalLen(t, 1, len(resp.Suggestions))
}

func TestHandleSegmentRecoversBoundaries(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv.routes(), http.MethodPost, "/api/v1/segment", map[string]any{
		"phrase": "helloworld",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp symspell.Composition
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.CorrectedString != "hello world" {
		t.Fatalf("expected %q, got %q", "hello world", resp.CorrectedString)
	}
}

func TestHandleAddAndRemoveCustomWord(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv.routes(), http.MethodPost, "/api/v1/custom-word", map[string]string{"word": "gopher"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/custom-word/gopher", nil)
	del := httptest.NewRecorder()
	srv.routes().ServeHTTP(del, req)
	if del.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", del.Code, del.Body.String())
	}
}

func equalLen(t *testing.T, want, got int) {
	t.Helper()
	if want != got {
		t.Errorf("want len %d, got %d", want, got)
	}
}
