package symspell

import (
	"fmt"
	"regexp"

	"github.com/FanaticPythoner/symspellwhookspy/pkg/verbosity"
)

// LookupConfig holds the optional knobs of a Lookup call.
type LookupConfig struct {
	maxEditDistance    int
	hasMaxEditDistance bool
	includeUnknown     bool
	ignoreToken        *regexp.Regexp
	transferCasing     bool
}

// LookupOption mutates a LookupConfig; see WithMaxEditDistance,
// WithIncludeUnknown, WithIgnoreToken, WithTransferCasing.
type LookupOption func(*LookupConfig)

// WithMaxEditDistance caps this lookup's edit distance below the index's
// MaxDictionaryEditDistance. Omitting it uses the index's own bound.
func WithMaxEditDistance(d int) LookupOption {
	return func(c *LookupConfig) {
		c.maxEditDistance = d
		c.hasMaxEditDistance = true
	}
}

// WithIncludeUnknown causes Lookup to synthesize a (phrase, maxEditDistance+1,
// 0) suggestion when no real candidate is found.
func WithIncludeUnknown() LookupOption {
	return func(c *LookupConfig) { c.includeUnknown = true }
}

// WithIgnoreToken adds a perfect (phrase, 0, 1) suggestion when pattern
// matches phrase and, unless verbosity is All, returns it without further
// search. The pattern is only tried once phrase has passed the length
// short-circuit (its length minus the max edit distance must not exceed the
// longest dictionary term).
func WithIgnoreToken(pattern *regexp.Regexp) LookupOption {
	return func(c *LookupConfig) { c.ignoreToken = pattern }
}

// WithTransferCasing performs the lookup on the lowercased phrase and
// reapplies the original phrase's casing to every surviving suggestion
// after the ranker dispatch runs.
func WithTransferCasing() LookupOption {
	return func(c *LookupConfig) { c.transferCasing = true }
}

// Lookup returns spelling suggestions for phrase per the verbosity policy.
// See spec §4.4 for the full branch-by-branch algorithm description.
func (s *SymSpell) Lookup(phrase string, v verbosity.Verbosity, opts ...LookupOption) ([]Suggestion, error) {
	cfg := LookupConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	maxEditDistance := s.maxDictionaryEditDistance
	if cfg.hasMaxEditDistance {
		maxEditDistance = cfg.maxEditDistance
	}
	if maxEditDistance > s.maxDictionaryEditDistance {
		return nil, fmt.Errorf("%w: max edit distance %d exceeds index depth %d",
			ErrInvalidArgument, maxEditDistance, s.maxDictionaryEditDistance)
	}
	if maxEditDistance < 0 {
		return nil, fmt.Errorf("%w: negative max edit distance", ErrInvalidArgument)
	}

	originalPhrase := phrase
	if cfg.transferCasing {
		phrase = toLower(phrase)
	}

	var suggestions []Suggestion

	finalize := func() ([]Suggestion, error) {
		if cfg.includeUnknown && len(suggestions) == 0 {
			suggestions = append(suggestions, NewSuggestion(phrase, maxEditDistance+1, 0))
		}
		suggestions = s.ranker.rank(phrase, suggestions, v)
		if cfg.transferCasing {
			for i := range suggestions {
				suggestions[i].Term = transferCasing(originalPhrase, suggestions[i].Term)
			}
		}
		return suggestions, nil
	}

	phraseLen := runeLen(phrase)

	// Step 1: short-circuit by length.
	if phraseLen-maxEditDistance > s.dict.maxLength {
		return finalize()
	}

	// Step 2: ignore-token.
	if cfg.ignoreToken != nil && cfg.ignoreToken.MatchString(phrase) {
		suggestions = append(suggestions, NewSuggestion(phrase, 0, 1))
		if v != verbosity.All {
			return finalize()
		}
	}

	// Step 3: exact match.
	if count, ok := s.dict.get(phrase); ok {
		suggestions = append(suggestions, NewSuggestion(phrase, 0, count))
		if v != verbosity.All {
			return finalize()
		}
	}

	// Step 4: zero-distance mode.
	if maxEditDistance == 0 {
		return finalize()
	}

	// Step 5: candidate enumeration.
	prefixLen := s.prefixLength
	seedLen := phraseLen
	if seedLen > prefixLen {
		seedLen = prefixLen
	}
	phraseRunes := []rune(phrase)
	queue := []string{string(phraseRunes[:seedLen])}

	consideredCandidates := map[string]struct{}{queue[0]: {}}
	consideredSuggestions := map[string]struct{}{}
	for _, sg := range suggestions {
		consideredSuggestions[sg.Term] = struct{}{}
	}

	maxEditDistance2 := maxEditDistance

	for len(queue) > 0 {
		candidate := queue[0]
		queue = queue[1:]

		candLen := runeLen(candidate)
		phrasePrefixLen := phraseLen
		if phrasePrefixLen > prefixLen {
			phrasePrefixLen = prefixLen
		}

		// Prune A: no remaining budget can bridge the length gap.
		if phrasePrefixLen-candLen > maxEditDistance2 {
			continue
		}

		if bucket, ok := s.index.get(candidate); ok {
			for suggestionTerm := range bucket {
				if _, seen := consideredSuggestions[suggestionTerm]; seen {
					continue
				}

				suggestionLen := runeLen(suggestionTerm)
				// Prune B: trivial length-gap rejection.
				if abs(suggestionLen-phraseLen) > maxEditDistance2 {
					continue
				}
				// Prune B, continued: only once the suggestion's own indexed
				// prefix exceeds the phrase's indexed prefix, and even maximal
				// insertions within that capped prefix can't bridge the gap to
				// candidate, is the suggestion unrecoverable.
				suggPrefixLen := suggestionLen
				if suggPrefixLen > prefixLen {
					suggPrefixLen = prefixLen
				}
				if suggPrefixLen > phrasePrefixLen && suggPrefixLen-candLen > maxEditDistance2 {
					continue
				}

				count, _ := s.dict.get(suggestionTerm)

				distance := s.distanceBetween(phrase, suggestionTerm, candidate, maxEditDistance2)
				if distance < 0 {
					continue
				}

				consideredSuggestions[suggestionTerm] = struct{}{}

				switch v {
				case verbosity.Top:
					if len(suggestions) == 0 || distance < maxEditDistance2 || count > suggestions[0].Count {
						suggestions = suggestions[:0]
						maxEditDistance2 = distance
						suggestions = append(suggestions, NewSuggestion(suggestionTerm, distance, count))
					}
				case verbosity.Closest:
					if distance < maxEditDistance2 {
						suggestions = suggestions[:0]
						maxEditDistance2 = distance
					}
					if distance <= maxEditDistance2 {
						suggestions = append(suggestions, NewSuggestion(suggestionTerm, distance, count))
					}
				default: // verbosity.All
					if distance <= maxEditDistance {
						suggestions = append(suggestions, NewSuggestion(suggestionTerm, distance, count))
					}
				}
			}
		}

		// Expand candidate: delete one rune at every position.
		cr := []rune(candidate)
		lengthFloor := phraseLen - maxEditDistance2
		for i := range cr {
			deleted := string(cr[:i]) + string(cr[i+1:])
			if _, seen := consideredCandidates[deleted]; seen {
				continue
			}
			consideredCandidates[deleted] = struct{}{}
			if runeLen(deleted) >= lengthFloor {
				queue = append(queue, deleted)
			}
		}
	}

	return finalize()
}

// distanceBetween computes the edit distance between phrase and
// suggestionTerm, taking the cheap shortcuts spec §4.4 calls out before
// falling back to the full bounded comparer: identical strings are
// distance 0, and a string fully consumed by a prefix of the other means
// the remaining transform is pure insertion/deletion, i.e. the length
// difference.
func (s *SymSpell) distanceBetween(phrase, suggestionTerm, candidate string, bound int) int {
	_ = candidate
	if phrase == suggestionTerm {
		return 0
	}
	pr, sr := []rune(phrase), []rune(suggestionTerm)
	shorter, longer := pr, sr
	if len(longer) < len(shorter) {
		shorter, longer = longer, shorter
	}
	if runesHasPrefix(longer, shorter) {
		d := len(longer) - len(shorter)
		if d > bound {
			return -1
		}
		return d
	}
	return s.comparer.Distance(phrase, suggestionTerm, bound)
}

func runesHasPrefix(s, prefix []rune) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}

func runeLen(s string) int {
	return len([]rune(s))
}
