// Package symspell implements a symmetric-delete spell-correction engine:
// a precomputed delete-variant index answers fuzzy lookups in near-constant
// candidate-set time, with a pluggable ranker hook that intercepts every
// non-empty suggestion set.
package symspell

import (
	"fmt"

	"github.com/FanaticPythoner/symspellwhookspy/pkg/options"
)

// SymSpell is the engine handle: dictionary store, delete-index, and
// ranker hook, configured once at construction. Multiple handles are
// independent; there is no global state.
type SymSpell struct {
	maxDictionaryEditDistance int
	prefixLength              int
	countThreshold            int64

	dict     *dictionary
	index    *deleteIndex
	comparer *Comparer
	ranker   rankerHandle
}

// NewSymSpell builds an engine from the given options, defaulting to
// MaxDictionaryEditDistance=2, PrefixLength=7, CountThreshold=1.
func NewSymSpell(opts ...options.Options) *SymSpell {
	cfg := options.Resolve(opts...)

	algorithm := AlgorithmOSA
	if cfg.MaxDictionaryEditDistance > 2 {
		algorithm = AlgorithmDamerauLevenshtein
	}

	return &SymSpell{
		maxDictionaryEditDistance: cfg.MaxDictionaryEditDistance,
		prefixLength:              cfg.PrefixLength,
		countThreshold:            int64(cfg.CountThreshold),
		dict:                      newDictionary(cfg.CountThreshold),
		index:                     newDeleteIndex(),
		comparer:                  NewComparer(algorithm),
	}
}

// MaxDictionaryEditDistance returns the index depth configured at
// construction; it is also the hard upper bound on any Lookup's requested
// max edit distance.
func (s *SymSpell) MaxDictionaryEditDistance() int {
	return s.maxDictionaryEditDistance
}

// SetRanker attaches r as the ranker hook. Passing nil detaches it,
// restoring default ordering. Safe to call concurrently with lookups.
func (s *SymSpell) SetRanker(r Ranker) {
	s.ranker.set(r)
}

// termPrefix returns the first PrefixLength runes of term (or all of term
// if shorter).
func (s *SymSpell) termPrefix(term string) string {
	r := []rune(term)
	if len(r) <= s.prefixLength {
		return term
	}
	return string(r[:s.prefixLength])
}

// CreateDictionaryEntry inserts term with count, or, if term already
// exists, increments its stored count (saturating at the max
// representable value). Returns true only when term is newly inserted.
// Negative counts are rejected with ErrInvalidArgument and leave the store
// untouched.
func (s *SymSpell) CreateDictionaryEntry(term string, count int64) (bool, error) {
	if count < 0 {
		return false, fmt.Errorf("%w: negative count %d for term %q", ErrInvalidArgument, count, term)
	}
	term = normalize(term)
	if term == "" {
		return false, fmt.Errorf("%w: empty term", ErrInvalidArgument)
	}

	isNew, crossedThreshold := s.dict.addCount(term, count)
	if crossedThreshold {
		prefix := s.termPrefix(term)
		for variant := range deletesOf(prefix, s.maxDictionaryEditDistance) {
			s.index.add(variant, term)
		}
	}
	return isNew, nil
}

// DeleteDictionaryEntry removes term from the dictionary store and every
// delete-index bucket it populated. Returns false if term was absent; this
// is not an error condition.
func (s *SymSpell) DeleteDictionaryEntry(term string) bool {
	term = normalize(term)
	if !s.dict.remove(term) {
		return false
	}
	prefix := s.termPrefix(term)
	for variant := range deletesOf(prefix, s.maxDictionaryEditDistance) {
		s.index.remove(variant, term)
	}
	return true
}

// N returns the current corpus size (sum of all counts, or the default
// prior if no entries carry real weight).
func (s *SymSpell) N() int64 {
	return s.dict.n()
}

// MaxLength returns the length of the longest term ever inserted.
func (s *SymSpell) MaxLength() int {
	return s.dict.maxLength
}
