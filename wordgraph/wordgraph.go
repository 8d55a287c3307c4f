// Package wordgraph discovers one-letter-apart neighbours over a validated
// word set and assembles them into a cached adjacency map.
package wordgraph

import (
	"sort"

	"github.com/katalvlaran/wordladder/wordset"
)

// alphaFirst and alphaLast bound the 26-letter substitution alphabet.
const (
	alphaFirst = byte('a')
	alphaLast  = byte('z')
)

// New constructs a Graph over ws.
// Returns ErrNilWordSet if ws is nil. The set is shared, not copied: it is
// immutable, so the graph and its owner always agree on the vocabulary.
// Complexity: O(1) — adjacency is computed on first Build.
func New(ws *wordset.WordSet) (*Graph, error) {
	if ws == nil {
		return nil, ErrNilWordSet
	}

	return &Graph{set: ws}, nil
}

// WordSet returns the vocabulary this graph was built over.
func (g *Graph) WordSet() *wordset.WordSet {
	return g.set
}

// Neighbours returns every member word differing from word by exactly one
// letter at one position, as a freshly allocated sorted slice. The word
// itself need not be a member; candidates are always matched against the
// set. Substituting a letter by itself reproduces the input and is skipped,
// so a word is never its own neighbour. An empty result is a normal
// outcome, not an error.
// Complexity: O(L×26) per call, re-derived from the full alphabet scan;
// Build caches per-member results.
func (g *Graph) Neighbours(word string) []string {
	nbrs := make([]string, 0, len(word))
	buf := []byte(word)
	for i := 0; i < len(buf); i++ {
		orig := buf[i]
		for c := alphaFirst; c <= alphaLast; c++ {
			if c == orig {
				continue
			}
			buf[i] = c
			if candidate := string(buf); g.set.Contains(candidate) {
				nbrs = append(nbrs, candidate)
			}
		}
		buf[i] = orig
	}
	sort.Strings(nbrs)

	return nbrs
}

// Build computes Neighbours for every member word exactly once and caches
// the result. Idempotent: repeated calls return the cached adjacency
// without recomputation. The returned map is a fresh top-level copy, so
// callers may add or remove keys without touching the cache; neighbour
// slices are shared and must be treated as read-only.
// Complexity: O(n×L×26) on the first call, O(n) per call thereafter.
func (g *Graph) Build() AdjacencyMap {
	if g.adj == nil {
		adj := make(AdjacencyMap, g.set.Len())
		for _, w := range g.set.Words() {
			adj[w] = g.Neighbours(w)
		}
		g.adj = adj
	}

	out := make(AdjacencyMap, len(g.adj))
	for w, nbrs := range g.adj {
		out[w] = nbrs
	}

	return out
}
