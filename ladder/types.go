// Package ladder defines the multi-length index type for the ladder
// subpackage of github.com/katalvlaran/wordladder.
package ladder

import "github.com/katalvlaran/wordladder/wordgraph"

// Index partitions a mixed-length vocabulary into per-length buckets, each
// an independent neighbour graph. Buckets are built once at construction
// and never mutated; queries against distinct buckets share no state.
// Construct via New or FromFile.
type Index struct {
	buckets map[int]*wordgraph.Graph
}
