// Package wordset turns a raw list of word strings into a validated,
// deduplicated, immutable vocabulary of one fixed length.
//
// What
//
//   - New([]string) validates and builds a *WordSet:
//   - ErrEmptyInput for a zero-entry list
//   - ErrNonAlphabetic when a word strays outside a–z (the error names the word)
//   - ErrLengthMismatch when word lengths disagree (the first word fixes L)
//   - Accessors: Contains, Words (sorted copy), Len, WordLength.
//
// Why
//
//   - Every graph invariant downstream (adjacency symmetry, bucket
//     independence) rests on the set being uniform-length and alphabetic;
//     rejecting malformed input here keeps the graph and search layers
//     validation-free.
//
// Immutability
//
//	A WordSet never changes after New returns. There is no add/remove API;
//	a new vocabulary means a new WordSet. Words() returns a fresh slice, so
//	callers cannot reach the internal map.
//
// Complexity (n = |words|, L = word length)
//
//   - New:      O(n×L) time, O(n) memory
//   - Contains: O(1)
//   - Words:    O(n log n)
//
// Errors
//
//   - ErrEmptyInput      if the word list has no entries.
//   - ErrNonAlphabetic   if any word contains characters outside a–z.
//   - ErrLengthMismatch  if the words do not all share one length.
package wordset
