package symspell

import (
	"fmt"
	"math"
	"strings"

	"github.com/FanaticPythoner/symspellwhookspy/pkg/verbosity"
)

// LookupCompound corrects a multi-word phrase by sliding a two-token
// window across whitespace-separated tokens, considering per-token
// correction, adjacent-token combination, and single-token splitting at
// each step, scored by Naive-Bayes-style log-probability (spec §4.6). It
// always returns exactly one Suggestion.
func (s *SymSpell) LookupCompound(phrase string, maxEditDistance int) ([]Suggestion, error) {
	if maxEditDistance > s.maxDictionaryEditDistance || maxEditDistance < 0 {
		return nil, fmt.Errorf("%w: max edit distance %d out of range [0,%d]",
			ErrInvalidArgument, maxEditDistance, s.maxDictionaryEditDistance)
	}

	tokens := strings.Fields(phrase)
	if len(tokens) == 0 {
		result := s.ranker.rank(phrase, []Suggestion{NewSuggestion("", 0, s.N())}, verbosity.Top)
		return result, nil
	}

	var parts []Suggestion
	var partLogProbs []float64

	lookupTopFallback := func(term string) (Suggestion, float64) {
		best := s.lookupTopFor(term, maxEditDistance)
		if best.Count == 0 && best.Term == "" {
			best = NewSuggestion(term, maxEditDistance+1, 0)
		}
		return best, s.logProbFor(best.Count, runeLen(term))
	}

	i := 0
	for i < len(tokens) {
		single, singleLP := lookupTopFallback(tokens[i])
		chosen, chosenLP, advance := single, singleLP, 1

		if i+1 < len(tokens) {
			combinedTerm := tokens[i] + tokens[i+1]
			combined, combinedLP := lookupTopFallback(combinedTerm)
			nextSingle, nextLP := lookupTopFallback(tokens[i+1])
			pairDistance := single.Distance + nextSingle.Distance
			pairLogProb := singleLP + nextLP

			if combined.Distance < pairDistance ||
				(combined.Distance == pairDistance && combinedLP > pairLogProb) {
				chosen, chosenLP, advance = combined, combinedLP, 2
			}
		}

		if advance == 1 {
			if split, splitLP, ok := s.bestSplit(tokens[i], maxEditDistance); ok {
				if split.Distance < chosen.Distance ||
					(split.Distance == chosen.Distance && splitLP > chosenLP) {
					chosen, chosenLP = split, splitLP
				}
			}
		}

		parts = append(parts, chosen)
		partLogProbs = append(partLogProbs, chosenLP)
		i += advance
	}

	terms := make([]string, len(parts))
	for i, p := range parts {
		terms[i] = p.Term
	}
	joined := strings.Join(terms, " ")

	aggregateDistance := s.comparer.Distance(phrase, joined, math.MaxInt32)
	if aggregateDistance < 0 {
		// Distance exceeded the bound only in principle; math.MaxInt32 is
		// large enough in practice that this cannot happen for realistic
		// phrases, but fall back to the trivial upper bound if it does.
		aggregateDistance = runeLen(phrase) + runeLen(joined)
	}

	n := float64(s.N())
	product := 1.0
	for _, lp := range partLogProbs {
		product *= math.Pow(10, lp)
	}
	aggregateCount := int64(n * product)
	if aggregateCount < 0 {
		aggregateCount = 0
	}

	result := []Suggestion{NewSuggestion(joined, aggregateDistance, aggregateCount)}
	result = s.ranker.rank(phrase, result, verbosity.Top)
	return result, nil
}

// lookupTopFor is an internal convenience wrapper around Lookup(term, Top,
// ...) used by the compound corrector and segmenter, returning the zero
// Suggestion when nothing was found.
func (s *SymSpell) lookupTopFor(term string, maxEditDistance int) Suggestion {
	results, err := s.Lookup(term, verbosity.Top, WithMaxEditDistance(maxEditDistance))
	if err != nil || len(results) == 0 {
		return Suggestion{}
	}
	return results[0]
}

// logProbFor computes the base-10 log-probability of count/N, applying
// word-length smoothing for out-of-vocabulary terms (count == 0), matching
// the convention word segmentation uses for its own OOV branch.
func (s *SymSpell) logProbFor(count int64, wordLen int) float64 {
	n := float64(s.N())
	if count > 0 {
		return math.Log10(float64(count) / n)
	}
	if wordLen < 1 {
		wordLen = 1
	}
	return math.Log10(1.0 / (n * math.Pow(10, float64(wordLen))))
}

// bestSplit tries every split point of term into (left, right), keeping
// the split whose parts both have dictionary hits and whose combined
// distance/log-probability is best, per spec §4.6.
func (s *SymSpell) bestSplit(term string, maxEditDistance int) (Suggestion, float64, bool) {
	r := []rune(term)
	if len(r) < 2 {
		return Suggestion{}, 0, false
	}

	var best Suggestion
	var bestLP float64
	found := false

	for j := 1; j < len(r); j++ {
		left, right := string(r[:j]), string(r[j:])
		leftBest := s.lookupTopFor(left, maxEditDistance)
		if leftBest.Term == "" {
			continue
		}
		rightBest := s.lookupTopFor(right, maxEditDistance)
		if rightBest.Term == "" {
			continue
		}

		combinedTerm := leftBest.Term + " " + rightBest.Term
		distance := leftBest.Distance + rightBest.Distance
		count := leftBest.Count
		if rightBest.Count < count {
			count = rightBest.Count
		}
		lp := s.logProbFor(leftBest.Count, runeLen(left)) + s.logProbFor(rightBest.Count, runeLen(right))

		if !found || distance < best.Distance || (distance == best.Distance && lp > bestLP) {
			best = NewSuggestion(combinedTerm, distance, count)
			bestLP = lp
			found = true
		}
	}

	return best, bestLP, found
}
