// Package corrector is the example consumer SPEC_FULL.md asks for: it wires
// a concrete symspell.Ranker (keyboard-distance weighted), case-preserving
// text correction, and a Redis-backed custom dictionary on top of the core
// pkg/symspell engine. None of this package is required to use
// pkg/symspell — it exists to demonstrate the ranker hook the teacher's
// corrector.go left for a pluggable re-ranking strategy.
package corrector

// Config holds the knobs the keyboard-aware ranker and CorrectText use.
// The weights mirror the teacher's CorrectorConfig names where the concern
// survived (TransposeCost, NeighborInsDel, KeyboardNearSub); morphology and
// Naive-Bayes context knobs were dropped along with the Russian analyzer.
type Config struct {
	MaxEditDistance  int
	TopKSuggestions  int
	FilterShortWords bool
	TransposeCost    float64
	NeighborInsDel   float64
	KeyboardNearSub  float64
}

// DefaultConfig matches the teacher's hardcoded corrector defaults,
// re-tuned for a QWERTY layout instead of a Cyrillic one.
var DefaultConfig = Config{
	MaxEditDistance:  2,
	TopKSuggestions:  5,
	FilterShortWords: true,
	TransposeCost:    0.3,
	NeighborInsDel:   0.9,
	KeyboardNearSub:  0.5,
}

// SuggestionInfo records the alternatives considered for one token.
type SuggestionInfo struct {
	Token       string   `json:"token"`
	Suggestions []string `json:"suggestions"`
}

// CorrectionResult is CorrectText's output.
type CorrectionResult struct {
	Original    string                 `json:"original"`
	Corrected   string                 `json:"corrected"`
	Suggestions map[int]SuggestionInfo `json:"suggestions"`
}
