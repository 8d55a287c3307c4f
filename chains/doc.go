// Package chains provides all-shortest-paths search between two words of a
// wordgraph.Graph, returning every minimum-length ladder — not just one.
//
// What
//
//   - Find(g, start, end) runs a breadth-first search that tracks, for every
//     reached word, the full set of predecessors at its minimum distance.
//     Reconstruction then walks that predecessor DAG backward from end,
//     yielding every distinct shortest ladder.
//   - Results come back as an immutable WordChain:
//   - PathCount: number of shortest ladders
//   - Contains:  membership test for a candidate sequence
//   - Paths:     stable, finite enumeration of fresh copies
//   - Supports functional hooks: OnEnqueue (word first reached) and OnVisit
//     (word expanded; may abort with an error).
//
// Why
//
//   - A plain BFS parent map keeps one arbitrary shortest route; ladder
//     puzzles ask for all of them. Recording every same-level predecessor
//     costs nothing asymptotically and makes the full answer recoverable.
//
// Outcomes vs. errors
//
//	Absent words, unreachable pairs, and cross-length queries are ordinary
//	outcomes represented by the empty WordChain — Find returns an error only
//	for contract violations (nil graph) or when an OnVisit hook aborts.
//	Find(A, A) with A in the vocabulary yields exactly one path: [A].
//
// Termination
//
//	The queue is non-decreasing in depth, so the search stops as soon as the
//	level before end is fully expanded; at that point every predecessor of
//	end is recorded and no shorter route can exist. Unreachable ends exhaust
//	the start word's component and come back empty.
//
// Determinism
//
//	Adjacency slices are sorted and WordChain.Paths enumerates in
//	lexicographic order, so results are fully reproducible. No canonical
//	order is promised between distinct shortest paths beyond that stability.
//
// Complexity (V = bucket vocabulary, E = adjacency edges, P = paths found)
//
//   - Search:         O(V + E) time, O(V) memory
//   - Reconstruction: O(P × pathLength)
//
// Errors
//
//   - ErrNilGraph  if the graph pointer is nil.
//   - Wrapped user-supplied hook errors from OnVisit.
package chains
