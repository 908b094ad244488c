package corrector

import "strings"

// isTitle/isUpper/title are pure string helpers for restoring the input
// token's casing onto a lowercase correction, grounded in the teacher's
// same-named helpers (corrector.go).
func isTitle(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) == string(r[0]) && strings.ToLower(string(r[1:])) == string(r[1:])
}

func isUpper(s string) bool { return s != "" && strings.ToUpper(s) == s }

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

func restoreCasing(original, corrected string) string {
	switch {
	case isTitle(original):
		return title(corrected)
	case isUpper(original):
		return strings.ToUpper(corrected)
	default:
		return corrected
	}
}
