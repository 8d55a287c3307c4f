// Package wordset validates raw word lists into immutable fixed-length
// vocabularies — the vertex set of every word-ladder graph.
package wordset

import (
	"fmt"
	"sort"
)

// New validates words and builds a WordSet.
// Validation order: ErrEmptyInput for a zero-entry list, then per word an
// alphabetic check (ErrNonAlphabetic, naming the offending word) and a
// length check against the first word's length (ErrLengthMismatch).
// Duplicates collapse silently. The input slice is never retained.
// Complexity: O(n×L) time, O(n) memory.
func New(words []string) (*WordSet, error) {
	if len(words) == 0 {
		return nil, ErrEmptyInput
	}
	length := len(words[0])
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if !alphabetic(w) {
			return nil, fmt.Errorf("%w: failed on %q", ErrNonAlphabetic, w)
		}
		if len(w) != length {
			return nil, fmt.Errorf("%w: %q has length %d, want %d", ErrLengthMismatch, w, len(w), length)
		}
		set[w] = struct{}{}
	}

	return &WordSet{words: set, length: length}, nil
}

// alphabetic reports whether w consists solely of lowercase letters a–z.
// The ladder alphabet is the 26 lowercase letters, so anything else —
// including uppercase — is rejected at construction.
func alphabetic(w string) bool {
	if len(w) == 0 {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}

	return true
}

// Contains reports whether word is a member of the set. Complexity: O(1).
func (ws *WordSet) Contains(word string) bool {
	_, ok := ws.words[word]
	return ok
}

// Words returns the members as a freshly allocated, sorted slice.
// Mutating the returned slice does not affect the set.
// Complexity: O(n log n).
func (ws *WordSet) Words() []string {
	out := make([]string, 0, len(ws.words))
	for w := range ws.words {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// Len returns the number of distinct words in the set.
func (ws *WordSet) Len() int {
	return len(ws.words)
}

// WordLength returns the common length L shared by every member.
func (ws *WordSet) WordLength() int {
	return ws.length
}
