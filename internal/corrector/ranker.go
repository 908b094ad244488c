package corrector

import (
	"sort"
	"sync"

	"github.com/FanaticPythoner/symspellwhookspy/pkg/symspell"
	"github.com/FanaticPythoner/symspellwhookspy/pkg/verbosity"
)

// weightedDistance is a keyboard-aware weighted Damerau-Levenshtein,
// cached per (a, b) pair, grounded in the teacher's weightedDL.
type weightedDistance struct {
	cfg   Config
	cache sync.Map // key: a+"\x00"+b -> float64
}

func newWeightedDistance(cfg Config) *weightedDistance {
	return &weightedDistance{cfg: cfg}
}

func (w *weightedDistance) cost(a, b string) float64 {
	key := a + "\x00" + b
	if v, ok := w.cache.Load(key); ok {
		return v.(float64)
	}
	if isOneAdjacentSwap(a, b) {
		w.cache.Store(key, w.cfg.TransposeCost)
		return w.cfg.TransposeCost
	}

	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	insBase, delBase := w.cfg.NeighborInsDel, w.cfg.NeighborInsDel
	if la == 0 {
		return float64(lb) * insBase
	}
	if lb == 0 {
		return float64(la) * delBase
	}

	prev2 := make([]float64, lb+1)
	prev := make([]float64, lb+1)
	curr := make([]float64, lb+1)
	for j := 1; j <= lb; j++ {
		prev[j] = float64(j) * insBase
	}
	for i := 1; i <= la; i++ {
		curr[0] = float64(i) * delBase
		for j := 1; j <= lb; j++ {
			var sub float64
			if ra[i-1] != rb[j-1] {
				sub = substitutionCost(w.cfg, ra[i-1], rb[j-1])
			}
			best := prev[j] + delBase
			if v := curr[j-1] + insBase; v < best {
				best = v
			}
			if v := prev[j-1] + sub; v < best {
				best = v
			}
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if v := prev2[j-2] + w.cfg.TransposeCost; v < best {
					best = v
				}
			}
			curr[j] = best
		}
		prev2, prev, curr = prev, curr, prev2
	}
	res := prev[lb]
	w.cache.Store(key, res)
	return res
}

// NewKeyboardRanker builds a symspell.Ranker that re-sorts Lookup's
// suggestions by keyboard-aware weighted distance (ascending), breaking
// ties by dictionary count (descending). It is a concrete example of the
// ranker hook pkg/symspell.SetRanker exposes: the core engine never ranks
// by keyboard layout itself.
func NewKeyboardRanker(cfg Config) symspell.Ranker {
	wd := newWeightedDistance(cfg)
	return func(phrase string, suggestions []symspell.Suggestion, v verbosity.Verbosity) []symspell.Suggestion {
		if len(suggestions) < 2 {
			return suggestions
		}
		type weighted struct {
			suggestion symspell.Suggestion
			weight     float64
		}
		ranked := make([]weighted, len(suggestions))
		for i, s := range suggestions {
			ranked[i] = weighted{suggestion: s, weight: wd.cost(phrase, s.Term)}
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			if ranked[i].weight != ranked[j].weight {
				return ranked[i].weight < ranked[j].weight
			}
			return ranked[i].suggestion.Count > ranked[j].suggestion.Count
		})
		out := make([]symspell.Suggestion, len(ranked))
		for i, r := range ranked {
			out[i] = r.suggestion
		}
		return out
	}
}
