package symspell

// deleteIndex maps a delete-variant key to the set of dictionary terms
// that produce it. Multiple originals may share a variant, so the value
// side is a set, not a single string.
type deleteIndex struct {
	buckets map[string]map[string]struct{}
}

func newDeleteIndex() *deleteIndex {
	return &deleteIndex{buckets: make(map[string]map[string]struct{})}
}

func (idx *deleteIndex) add(variant, term string) {
	bucket, ok := idx.buckets[variant]
	if !ok {
		bucket = make(map[string]struct{}, 1)
		idx.buckets[variant] = bucket
	}
	bucket[term] = struct{}{}
}

func (idx *deleteIndex) remove(variant, term string) {
	bucket, ok := idx.buckets[variant]
	if !ok {
		return
	}
	delete(bucket, term)
	if len(bucket) == 0 {
		delete(idx.buckets, variant)
	}
}

func (idx *deleteIndex) get(variant string) (map[string]struct{}, bool) {
	b, ok := idx.buckets[variant]
	return b, ok
}

// edits recursively generates every string obtainable by deleting one
// character from term, stopping at maxDepth deletions or when the
// remaining string would be empty. Results are deduplicated via out, and
// dedup also prunes recursion: a variant already seen is not re-expanded.
func edits(term string, depth, maxDepth int, out map[string]struct{}) {
	r := []rune(term)
	if depth == maxDepth || len(r)-depth <= 0 {
		return
	}
	for i := range r {
		deleted := string(r[:i]) + string(r[i+1:])
		if _, seen := out[deleted]; seen {
			continue
		}
		out[deleted] = struct{}{}
		edits(deleted, depth+1, maxDepth, out)
	}
}

// deletesOf returns term's own prefix plus every delete-variant of that
// prefix up to maxDepth deletions — the exact variant set that gets
// indexed for term under the prefix-length optimization.
func deletesOf(prefix string, maxDepth int) map[string]struct{} {
	out := make(map[string]struct{})
	out[prefix] = struct{}{}
	edits(prefix, 0, maxDepth, out)
	return out
}
