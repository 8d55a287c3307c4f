// Package wordgraph builds the one-letter-apart neighbour graph over a
// validated wordset.WordSet: vertices are the member words, edges connect
// words differing by exactly one letter at one position.
//
// What
//
//   - New(ws) wraps an immutable vocabulary (ErrNilWordSet for nil input).
//   - Neighbours(word) scans all L positions × 26 lowercase letters and
//     returns the member words one substitution away, sorted. The query
//     word need not be a member; a word with no variant in the set yields
//     an empty slice — a normal outcome, not an error.
//   - Build() assembles Neighbours for every member once and caches the
//     AdjacencyMap; repeated calls return the cache without recomputation.
//
// Why
//
//   - The edit-distance-1 relation over a fixed vocabulary is the whole
//     edge structure of a word ladder; computing it via candidate
//     substitution (O(L×26) set probes per word) beats the naive pairwise
//     comparison (O(n²×L)) for any realistic dictionary.
//
// Invariants
//
//   - Irreflexive: substituting a letter by itself is skipped, so a word is
//     never its own neighbour.
//   - Symmetric: one-letter difference is a symmetric relation, so if B
//     appears in Neighbours(A) then A appears in Neighbours(B).
//   - Stable: the vocabulary is immutable, so the cached adjacency is
//     computed once and never invalidated.
//
// Determinism
//
//	Neighbour slices are sorted, so iteration over a word's neighbours —
//	and therefore every traversal layered on top — is fully reproducible.
//
// Complexity (n = |WordSet|, L = word length)
//
//   - Neighbours: O(L×26) time per call
//   - Build:      O(n×L×26) first call, O(n) thereafter (top-level copy)
//   - Memory:     O(n + E) for the cached adjacency
//
// Errors
//
//   - ErrNilWordSet  if New is given a nil word set.
package wordgraph
