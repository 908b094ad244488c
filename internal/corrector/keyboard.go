package corrector

import (
	"math"
	"strings"
)

// qwertyRows gives each key's physical row, used to weigh substitutions by
// how far apart two keys sit on a real keyboard — adjacent keys are cheap
// mistakes, far-apart ones are not. Grounded in the teacher's
// keyboardRows/keyPos/keyDistance, re-tuned from Cyrillic to QWERTY.
var qwertyRows = []string{
	"1234567890",
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

var keyPos = func() map[rune][2]int {
	m := make(map[rune][2]int)
	for r, row := range qwertyRows {
		for c, ch := range row {
			m[ch] = [2]int{r, c}
		}
	}
	return m
}()

func keyDistance(a, b rune) float64 {
	a = toLowerRune(a)
	b = toLowerRune(b)
	pa, oka := keyPos[a]
	pb, okb := keyPos[b]
	if !oka || !okb {
		return 2.5
	}
	dr := float64(pa[0] - pb[0])
	dc := float64(pa[1] - pb[1])
	return math.Sqrt(dr*dr + dc*dc)
}

func toLowerRune(r rune) rune {
	return []rune(strings.ToLower(string(r)))[0]
}

// substitutionCost weighs replacing a with b by their keyboard distance,
// using cfg.KeyboardNearSub for adjacent keys.
func substitutionCost(cfg Config, a, b rune) float64 {
	a, b = toLowerRune(a), toLowerRune(b)
	d := keyDistance(a, b)
	switch {
	case d <= 1.0:
		return cfg.KeyboardNearSub
	case d <= 1.5:
		return 0.8
	case d <= 2.2:
		return 1.2
	default:
		return 1.8
	}
}

// isOneAdjacentSwap reports whether b is a with exactly one pair of
// neighboring runes transposed.
func isOneAdjacentSwap(a, b string) bool {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) != len(rb) || len(ra) < 2 {
		return false
	}
	diff := -1
	for i := range ra {
		if ra[i] != rb[i] {
			diff = i
			break
		}
	}
	if diff == -1 || diff+1 >= len(ra) {
		return false
	}
	if ra[diff] != rb[diff+1] || ra[diff+1] != rb[diff] {
		return false
	}
	for j := diff + 2; j < len(ra); j++ {
		if ra[j] != rb[j] {
			return false
		}
	}
	return true
}
