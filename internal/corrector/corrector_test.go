package corrector

import (
	"testing"

	"github.com/FanaticPythoner/symspellwhookspy/pkg/options"
	"github.com/FanaticPythoner/symspellwhookspy/pkg/symspell"
	"github.com/FanaticPythoner/symspellwhookspy/pkg/verbosity"
)

func newEngine() *symspell.SymSpell {
	return symspell.NewSymSpell(
		options.WithMaxDictionaryEditDistance(2),
		options.WithPrefixLength(7),
		options.WithCountThreshold(1),
	)
}

func TestKeyboardRankerPrefersAdjacentKeySubstitution(t *testing.T) {
	engine := newEngine()
	// Query "cit" is one substitution away from both "cat" and "cot". On a
	// QWERTY layout 'o' sits right next to 'i', while 'a' is a full row
	// away — the keyboard-aware ranker should prefer "cot" even though
	// both candidates tie on raw edit distance and count.
	engine.CreateDictionaryEntry("cat", 10)
	engine.CreateDictionaryEntry("cot", 10)
	engine.SetRanker(NewKeyboardRanker(DefaultConfig))

	results, err := engine.Lookup("cit", verbosity.All, symspell.WithMaxEditDistance(1))
	if err != nil {
		t.Fatal(err)
	}
	equal(t, 2, len(results))
	if results[0].Term != "cot" {
		t.Fatalf("expected the keyboard-adjacent substitution to rank first, got %+v", results)
	}
}

func TestCorrectTextReplacesMisspelledWord(t *testing.T) {
	engine := newEngine()
	engine.CreateDictionaryEntry("world", 100)

	sc, err := NewSpellCorrector(engine, nil, DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}

	result := sc.CorrectText("wrold")
	if result.Corrected != "world" {
		t.Fatalf("expected %q, got %q", "world", result.Corrected)
	}
}

func TestCorrectTextPreservesTitleCase(t *testing.T) {
	engine := newEngine()
	engine.CreateDictionaryEntry("world", 100)

	sc, err := NewSpellCorrector(engine, nil, DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}

	result := sc.CorrectText("Wrold")
	if result.Corrected != "World" {
		t.Fatalf("expected %q, got %q", "World", result.Corrected)
	}
}

func TestCorrectTextSkipsShortWordsWhenConfigured(t *testing.T) {
	engine := newEngine()
	engine.CreateDictionaryEntry("at", 100)
	cfg := DefaultConfig
	cfg.FilterShortWords = true

	sc, err := NewSpellCorrector(engine, nil, cfg)
	if err != nil {
		t.Fatal(err)
	}

	result := sc.CorrectText("ta")
	if result.Corrected != "ta" {
		t.Fatalf("expected short word left untouched, got %q", result.Corrected)
	}
}

func TestAddAndRemoveCustomWordWithoutBackingStore(t *testing.T) {
	engine := newEngine()
	sc, err := NewSpellCorrector(engine, nil, DefaultConfig)
	if err != nil {
		t.Fatal(err)
	}

	if err := sc.AddCustomWord("gopher"); err != nil {
		t.Fatal(err)
	}
	results, err := engine.Lookup("gopher", verbosity.Top)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Term != "gopher" {
		t.Fatalf("expected gopher to be looked up after AddCustomWord, got %+v", results)
	}

	if err := sc.RemoveCustomWord("gopher"); err != nil {
		t.Fatal(err)
	}
}

func equal[T comparable](t *testing.T, want, got T) {
	t.Helper()
	if want == got {
		return
	}
	t.Errorf("want %v, got %v", want, got)
}
