// Package verbosity defines how many suggestions a Lookup call returns.
package verbosity

// Verbosity controls the result-set policy of a lookup.
type Verbosity int

const (
	// Top returns only the single best suggestion.
	Top Verbosity = iota
	// Closest returns every suggestion tied at the minimum distance found.
	Closest
	// All returns every suggestion within the requested edit distance.
	All
)

func (v Verbosity) String() string {
	switch v {
	case Top:
		return "Top"
	case Closest:
		return "Closest"
	case All:
		return "All"
	default:
		return "Verbosity(unknown)"
	}
}
