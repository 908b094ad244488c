package symspell

import (
	"sort"
	"sync/atomic"

	"github.com/FanaticPythoner/symspellwhookspy/pkg/verbosity"
)

// Ranker is the user-supplied hook contract (spec.md §4.5): it receives a
// non-empty suggestion list and returns a (possibly reordered, filtered, or
// rebuilt) list. It must be deterministic and side-effect-free; the engine
// never validates its return value and never calls it with an empty list.
type Ranker func(phrase string, suggestions []Suggestion, v verbosity.Verbosity) []Suggestion

// rankerHandle is the process-local, hot-swappable reference to the
// attached Ranker. A nil handle means "use default ordering".
type rankerHandle struct {
	fn atomic.Pointer[Ranker]
}

func (h *rankerHandle) set(r Ranker) {
	if r == nil {
		h.fn.Store(nil)
		return
	}
	h.fn.Store(&r)
}

func (h *rankerHandle) get() Ranker {
	p := h.fn.Load()
	if p == nil {
		return nil
	}
	return *p
}

// rank is the single choke point through which every non-empty suggestion
// set passes (spec.md §4.5): the ranker is invoked when set, otherwise the
// default (distance asc, count desc) order is applied. It is never called
// on an empty list.
func (h *rankerHandle) rank(phrase string, suggestions []Suggestion, v verbosity.Verbosity) []Suggestion {
	if len(suggestions) == 0 {
		return suggestions
	}
	if r := h.get(); r != nil {
		return r(phrase, suggestions, v)
	}
	if len(suggestions) > 1 {
		sort.Stable(byDefaultOrder(suggestions))
	}
	return suggestions
}
