package symspell

import "strings"

// defaultCorpusSize is the corpus-size prior used when no real corpus size
// is known, matching the convention of large symspell ports.
const defaultCorpusSize int64 = 1024 * 1024 * 1024 * 1024

const maxCount = int64(^uint64(0) >> 1)

// dictionary is the authoritative term->count map plus the scalar
// bookkeeping (corpus size N, longest term length) the lookup engine and
// compound/segmentation layers depend on. A term only becomes a "real"
// dictionary entry — visible to get() and expanded into the delete index —
// once its accumulated count reaches countThreshold (spec.md §6's
// count_threshold knob).
type dictionary struct {
	counts         map[string]int64
	indexed        map[string]struct{}
	sum            int64 // sum of all counts actually inserted
	maxLength      int
	countThreshold int64
}

func newDictionary(countThreshold int) *dictionary {
	if countThreshold < 0 {
		countThreshold = 0
	}
	return &dictionary{
		counts:         make(map[string]int64),
		indexed:        make(map[string]struct{}),
		countThreshold: int64(countThreshold),
	}
}

// n reports the corpus size N: the sum of all counts, or defaultCorpusSize
// when the dictionary is empty and no real corpus size is known.
func (d *dictionary) n() int64 {
	if d.sum <= 0 {
		return defaultCorpusSize
	}
	return d.sum
}

func normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// get returns term's stored count and whether it is a real entry — present
// and past countThreshold. A term whose accumulated count never reached
// countThreshold is invisible here even though it occupies a counts slot.
func (d *dictionary) get(term string) (int64, bool) {
	if _, ok := d.indexed[term]; !ok {
		return 0, false
	}
	return d.counts[term], true
}

// addCount inserts term with count, or increments an existing entry's
// count (saturating at the max representable value). It returns
// crossedThreshold: whether term just became (for the first time) a real
// entry whose delete-variants need indexing. isNew reports whether term had
// no prior counts slot at all, for CreateDictionaryEntry's return value.
func (d *dictionary) addCount(term string, count int64) (isNew, crossedThreshold bool) {
	existing, ok := d.counts[term]
	newCount := count
	if ok {
		newCount = existing + count
		if newCount < existing { // overflow
			newCount = maxCount
		}
	}
	d.counts[term] = newCount
	d.sum += count
	if !ok {
		isNew = true
		if l := len([]rune(term)); l > d.maxLength {
			d.maxLength = l
		}
	}

	if _, already := d.indexed[term]; !already && newCount >= d.countThreshold {
		d.indexed[term] = struct{}{}
		crossedThreshold = true
	}
	return isNew, crossedThreshold
}

func (d *dictionary) remove(term string) bool {
	c, ok := d.counts[term]
	if !ok {
		return false
	}
	delete(d.counts, term)
	delete(d.indexed, term)
	d.sum -= c
	if d.sum < 0 {
		d.sum = 0
	}
	return true
}
