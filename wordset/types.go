// Package wordset defines the validated vocabulary type and sentinel errors
// for the wordset subpackage of github.com/katalvlaran/wordladder.
package wordset

import "errors"

// Sentinel errors for WordSet construction.
var (
	// ErrEmptyInput indicates the supplied word list has no entries.
	ErrEmptyInput = errors.New("wordset: word list is empty")

	// ErrNonAlphabetic indicates a word contains characters outside a–z.
	// Wrapped with the offending word when returned from New.
	ErrNonAlphabetic = errors.New("wordset: word must contain only lowercase alphabetic characters")

	// ErrLengthMismatch indicates the words do not all share one length.
	ErrLengthMismatch = errors.New("wordset: words must all share one length")
)

// WordSet is a deduplicated, immutable set of lowercase words sharing one
// fixed length. The zero value is not usable; construct via New.
type WordSet struct {
	words  map[string]struct{}
	length int
}
