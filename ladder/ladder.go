// Package ladder dispatches word-ladder queries over a mixed-length
// vocabulary, one independent neighbour graph per word length.
package ladder

import (
	"sort"

	"github.com/katalvlaran/wordladder/chains"
	"github.com/katalvlaran/wordladder/wordgraph"
	"github.com/katalvlaran/wordladder/wordset"
)

// New partitions words by length and builds one graph per distinct length.
// Every word is validated (wordset.ErrNonAlphabetic propagates, naming the
// offender); an empty list yields wordset.ErrEmptyInput. Adjacency is built
// eagerly, so a constructed Index is read-only and its buckets may be
// queried from separate goroutines.
// Complexity: O(n×L×26) time over all buckets.
func New(words []string) (*Index, error) {
	if len(words) == 0 {
		return nil, wordset.ErrEmptyInput
	}

	byLength := make(map[int][]string)
	for _, w := range words {
		byLength[len(w)] = append(byLength[len(w)], w)
	}

	buckets := make(map[int]*wordgraph.Graph, len(byLength))
	for length, bucket := range byLength {
		ws, err := wordset.New(bucket)
		if err != nil {
			return nil, err
		}
		g, err := wordgraph.New(ws)
		if err != nil {
			return nil, err
		}
		g.Build()
		buckets[length] = g
	}

	return &Index{buckets: buckets}, nil
}

// Query finds every shortest ladder from start to end within the bucket
// matching their length. A length mismatch between start and end, or the
// absence of a bucket for that length, is unsatisfiable by definition and
// yields the empty WordChain — explicitly not an error.
func (ix *Index) Query(start, end string) (*chains.WordChain, error) {
	if len(start) != len(end) {
		return chains.Empty(), nil
	}
	g, ok := ix.buckets[len(start)]
	if !ok {
		return chains.Empty(), nil
	}

	return chains.Find(g, start, end)
}

// Lengths returns the distinct word lengths present in the index, sorted.
func (ix *Index) Lengths() []int {
	out := make([]int, 0, len(ix.buckets))
	for l := range ix.buckets {
		out = append(out, l)
	}
	sort.Ints(out)

	return out
}

// Graph returns the neighbour graph for the given word length, or nil when
// no bucket of that length exists.
func (ix *Index) Graph(length int) *wordgraph.Graph {
	return ix.buckets[length]
}
