package chains

import "sort"

// Empty returns a WordChain with no paths and no resolved start/end words.
// It stands in for every unsatisfiable-but-valid query (absent words,
// unreachable pairs, cross-length lookups), so callers handle "no ladder
// exists" without error branching.
func Empty() *WordChain {
	return &WordChain{}
}

// newChain builds a WordChain from reconstructed paths, sorting them
// lexicographically so enumeration order is stable. paths must be fresh
// slices owned by the chain.
func newChain(start, end string, paths [][]string) *WordChain {
	sort.Slice(paths, func(i, j int) bool {
		return lessPath(paths[i], paths[j])
	})

	return &WordChain{start: start, end: end, paths: paths}
}

// lessPath orders two word sequences lexicographically, element by element.
func lessPath(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// Start returns the start word of the query, or "" for an empty result.
func (c *WordChain) Start() string {
	return c.start
}

// End returns the end word of the query, or "" for an empty result.
func (c *WordChain) End() string {
	return c.end
}

// PathCount returns the number of stored shortest paths.
func (c *WordChain) PathCount() int {
	return len(c.paths)
}

// Contains reports whether path is one of the stored shortest paths.
func (c *WordChain) Contains(path []string) bool {
	for _, p := range c.paths {
		if equalPath(p, path) {
			return true
		}
	}

	return false
}

// Paths returns every stored path exactly once, in stable lexicographic
// order, as freshly allocated copies the caller may keep or mutate.
func (c *WordChain) Paths() [][]string {
	out := make([][]string, len(c.paths))
	for i, p := range c.paths {
		cp := make([]string, len(p))
		copy(cp, p)
		out[i] = cp
	}

	return out
}

// equalPath reports whether two word sequences are identical.
func equalPath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
