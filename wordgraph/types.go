// Package wordgraph defines the adjacency types and sentinel errors
// for the wordgraph subpackage of github.com/katalvlaran/wordladder.
package wordgraph

import (
	"errors"

	"github.com/katalvlaran/wordladder/wordset"
)

// Sentinel errors for Graph construction.
var (
	// ErrNilWordSet indicates a nil *wordset.WordSet was passed to New.
	ErrNilWordSet = errors.New("wordgraph: word set is nil")
)

// AdjacencyMap maps each word of the vocabulary to its neighbours — the
// member words differing from it by exactly one letter. Neighbour slices
// are sorted; a word with no one-letter variant in the set maps to an
// empty slice, which is a normal outcome, not an error.
type AdjacencyMap map[string][]string

// Graph is the one-letter-apart neighbour graph over an immutable WordSet.
// The adjacency map is computed lazily on first Build and cached for the
// lifetime of the graph; the vocabulary never changes, so the cache is
// never invalidated. Construct via New.
type Graph struct {
	set *wordset.WordSet
	adj AdjacencyMap // nil until the first Build
}
