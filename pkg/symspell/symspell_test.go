package symspell

import (
	"errors"
	"testing"

	"github.com/FanaticPythoner/symspellwhookspy/pkg/options"
	"github.com/FanaticPythoner/symspellwhookspy/pkg/verbosity"
)

func newTestEngine(maxEditDistance, prefixLength, countThreshold int) *SymSpell {
	return NewSymSpell(
		options.WithMaxDictionaryEditDistance(maxEditDistance),
		options.WithPrefixLength(prefixLength),
		options.WithCountThreshold(countThreshold),
	)
}

func TestCreateDictionaryEntryRejectsNegativeCount(t *testing.T) {
	s := newTestEngine(2, 7, 1)
	_, err := s.CreateDictionaryEntry("word", -1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCreateDictionaryEntryIncrementsExisting(t *testing.T) {
	s := newTestEngine(2, 7, 1)
	isNew, err := s.CreateDictionaryEntry("word", 5)
	if err != nil || !isNew {
		t.Fatalf("expected first insert to be new, got isNew=%v err=%v", isNew, err)
	}
	isNew, err = s.CreateDictionaryEntry("word", 5)
	if err != nil || isNew {
		t.Fatalf("expected second insert to not be new, got isNew=%v err=%v", isNew, err)
	}

	results, err := s.Lookup("word", verbosity.Top)
	if err != nil {
		t.Fatal(err)
	}
	equal(t, 1, len(results))
	equal(t, int64(10), results[0].Count)
}

func TestDeleteDictionaryEntryRemovesFromIndex(t *testing.T) {
	s := newTestEngine(2, 7, 1)
	s.CreateDictionaryEntry("steam", 5)

	if !s.DeleteDictionaryEntry("steam") {
		t.Fatal("expected delete to report success")
	}
	if s.DeleteDictionaryEntry("steam") {
		t.Fatal("expected second delete to report failure")
	}

	results, err := s.Lookup("steam", verbosity.Top)
	if err != nil {
		t.Fatal(err)
	}
	equal(t, 0, len(results))
}

func TestCountThresholdHidesLowCountEntries(t *testing.T) {
	s := newTestEngine(2, 7, 10)
	s.CreateDictionaryEntry("pawn", 1)

	results, err := s.Lookup("pawn", verbosity.Top, WithMaxEditDistance(0))
	if err != nil {
		t.Fatal(err)
	}
	equal(t, 0, len(results))
}

func TestCountThresholdEntryBecomesVisibleOnceCrossed(t *testing.T) {
	s := newTestEngine(2, 7, 10)
	s.CreateDictionaryEntry("pawn", 6)
	s.CreateDictionaryEntry("pawn", 6)

	results, err := s.Lookup("pawn", verbosity.Top, WithMaxEditDistance(0))
	if err != nil {
		t.Fatal(err)
	}
	equal(t, 1, len(results))
	equal(t, int64(12), results[0].Count)
}

func TestLowCountEntryIsNotReturnedAsDeleteNeighbor(t *testing.T) {
	s := newTestEngine(2, 7, 10)
	s.CreateDictionaryEntry("flame", 20)
	s.CreateDictionaryEntry("flam", 1)

	results, err := s.Lookup("flam", verbosity.All, WithMaxEditDistance(1))
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range results {
		if r.Term == "flam" {
			t.Fatalf("low-count entry %q leaked into results: %+v", r.Term, results)
		}
	}
}

func TestMaxLengthTracksLongestTerm(t *testing.T) {
	s := newTestEngine(2, 7, 1)
	s.CreateDictionaryEntry("a", 1)
	s.CreateDictionaryEntry("alphabet", 1)
	s.CreateDictionaryEntry("ab", 1)
	equal(t, 8, s.MaxLength())
}

func TestNDefaultsToCorpusPriorWhenEmpty(t *testing.T) {
	s := newTestEngine(2, 7, 1)
	equal(t, defaultCorpusSize, s.N())
}

func TestNIsSumOfInsertedCounts(t *testing.T) {
	s := newTestEngine(2, 7, 1)
	s.CreateDictionaryEntry("a", 3)
	s.CreateDictionaryEntry("b", 4)
	equal(t, int64(7), s.N())
}
