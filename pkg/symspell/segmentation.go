package symspell

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/FanaticPythoner/symspellwhookspy/pkg/verbosity"
)

// Composition is the result of WordSegmentation: the recovered word
// boundaries (SegmentedString) and their spell-corrected form
// (CorrectedString), plus the accumulated edit-distance and
// log-probability totals used to pick the best composition.
type Composition struct {
	SegmentedString string
	CorrectedString string
	DistanceSum     int
	LogProbSum      float64
}

// SegmentationConfig holds WordSegmentation's optional knobs.
type SegmentationConfig struct {
	maxEditDistance           int
	hasMaxEditDistance        bool
	maxSegmentationWordLength int
}

// SegmentationOption mutates a SegmentationConfig.
type SegmentationOption func(*SegmentationConfig)

// WithSegmentationMaxEditDistance caps the per-word edit distance used
// during segmentation. Defaults to the index's MaxDictionaryEditDistance.
func WithSegmentationMaxEditDistance(d int) SegmentationOption {
	return func(c *SegmentationConfig) {
		c.maxEditDistance = d
		c.hasMaxEditDistance = true
	}
}

// WithMaxSegmentationWordLength caps the length of any single recovered
// word. Defaults to the longest term ever inserted into the dictionary.
func WithMaxSegmentationWordLength(l int) SegmentationOption {
	return func(c *SegmentationConfig) { c.maxSegmentationWordLength = l }
}

// WordSegmentation recovers word boundaries in unsegmented (or
// partially-segmented) text via a triangular dynamic program: a rolling
// array of L best-compositions-so-far, updated for every (start, length)
// substring of phrase (spec §4.7). Per-substring lookups already pass
// through the ranker dispatch; WordSegmentation itself does not call it
// again.
func (s *SymSpell) WordSegmentation(phrase string, opts ...SegmentationOption) (Composition, error) {
	cfg := SegmentationConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	maxEditDistance := s.maxDictionaryEditDistance
	if cfg.hasMaxEditDistance {
		maxEditDistance = cfg.maxEditDistance
	}
	if maxEditDistance > s.maxDictionaryEditDistance || maxEditDistance < 0 {
		return Composition{}, fmt.Errorf("%w: max edit distance %d out of range [0,%d]",
			ErrInvalidArgument, maxEditDistance, s.maxDictionaryEditDistance)
	}

	phraseRunes := []rune(phrase)
	n := len(phraseRunes)
	if n == 0 {
		return Composition{}, nil
	}

	maxWordLen := cfg.maxSegmentationWordLength
	if maxWordLen <= 0 {
		maxWordLen = s.dict.maxLength
	}
	arraySize := maxWordLen
	if n < arraySize {
		arraySize = n
	}
	if arraySize <= 0 {
		arraySize = 1
	}

	compositions := make([]Composition, arraySize)
	idx := -1

	for j := 0; j < n; j++ {
		imax := n - j
		if imax > arraySize {
			imax = arraySize
		}
		for i := 1; i <= imax; i++ {
			partRunes := phraseRunes[j : j+i]
			part := string(partRunes)

			separatorLen := 0
			probeRunes := partRunes
			if len(probeRunes) > 0 && unicode.IsSpace(probeRunes[0]) {
				probeRunes = probeRunes[1:]
			} else if j > 0 && !unicode.IsSpace(phraseRunes[j-1]) {
				separatorLen = 1
			}
			probe := strings.ToLower(strings.TrimSpace(string(probeRunes)))

			var topTerm string
			var topEd int
			var topLogProb float64

			if probe == "" {
				topTerm = ""
				topEd = separatorLen
				topLogProb = 0
			} else {
				results, _ := s.Lookup(probe, verbosity.Top, WithMaxEditDistance(maxEditDistance))
				if len(results) > 0 {
					topTerm = results[0].Term
					topEd = separatorLen + results[0].Distance
					topLogProb = s.logProbFor(results[0].Count, runeLen(topTerm))
				} else {
					topTerm = probe
					topEd = separatorLen + runeLen(probe)
					topLogProb = s.logProbFor(0, runeLen(probe))
				}
			}

			dest := mod(i+idx, arraySize)

			if j == 0 {
				compositions[dest] = Composition{
					SegmentedString: strings.TrimSpace(part),
					CorrectedString: topTerm,
					DistanceSum:     topEd,
					LogProbSum:      topLogProb,
				}
				continue
			}

			prev := compositions[idx]
			candDistance := prev.DistanceSum + topEd
			candLogProb := prev.LogProbSum + topLogProb

			if i == arraySize ||
				candDistance < compositions[dest].DistanceSum ||
				(candDistance == compositions[dest].DistanceSum && candLogProb > compositions[dest].LogProbSum) {
				seg := prev.SegmentedString
				if seg != "" {
					seg += " "
				}
				seg += strings.TrimSpace(part)

				corr := prev.CorrectedString
				if corr != "" && topTerm != "" {
					corr += " "
				}
				corr += topTerm

				compositions[dest] = Composition{
					SegmentedString: seg,
					CorrectedString: corr,
					DistanceSum:     candDistance,
					LogProbSum:      candLogProb,
				}
			}
		}
		idx = mod(idx+1, arraySize)
	}

	return compositions[idx], nil
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
