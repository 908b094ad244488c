package symspell

// Suggestion is an immutable candidate returned by Lookup, LookupCompound,
// and WordSegmentation: a term, its edit distance from the queried phrase,
// and its dictionary count.
type Suggestion struct {
	Term     string
	Distance int
	Count    int64
}

// NewSuggestion constructs a Suggestion.
func NewSuggestion(term string, distance int, count int64) Suggestion {
	return Suggestion{Term: term, Distance: distance, Count: count}
}

// Equal compares two suggestions by Term only: two suggestions naming the
// same term are the same candidate for merging purposes, regardless of
// distance or count.
func (s Suggestion) Equal(other Suggestion) bool {
	return s.Term == other.Term
}

// byDefaultOrder sorts suggestions by distance ascending, then count
// descending — the order used whenever no ranker is attached.
type byDefaultOrder []Suggestion

func (s byDefaultOrder) Len() int      { return len(s) }
func (s byDefaultOrder) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s byDefaultOrder) Less(i, j int) bool {
	if s[i].Distance != s[j].Distance {
		return s[i].Distance < s[j].Distance
	}
	return s[i].Count > s[j].Count
}
