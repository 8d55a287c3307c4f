// Package chains defines tunable options, sentinel errors and the WordChain
// result type for all-shortest-paths search over a word graph.
package chains

import "errors"

// Sentinel errors for Find execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed to Find.
	ErrNilGraph = errors.New("chains: graph is nil")
)

// Option configures Find behavior via functional arguments.
type Option func(*FindOptions)

// FindOptions holds callbacks to observe the search as it runs.
type FindOptions struct {
	// OnEnqueue is called when a word is first reached, before visiting.
	// Receives the word and its depth (in edges) from the start word.
	OnEnqueue func(word string, depth int)

	// OnVisit is called when a word is dequeued for expansion. If it
	// returns an error, the search aborts and propagates that error.
	OnVisit func(word string, depth int) error
}

// DefaultOptions returns a FindOptions with no-op hooks.
func DefaultOptions() FindOptions {
	return FindOptions{
		OnEnqueue: func(string, int) {},
		OnVisit:   func(string, int) error { return nil },
	}
}

// WithOnEnqueue registers a callback to run when a word is first reached.
func WithOnEnqueue(fn func(word string, depth int)) Option {
	return func(o *FindOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run when a word is expanded; returning
// an error from this callback stops the search.
func WithOnVisit(fn func(word string, depth int) error) Option {
	return func(o *FindOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WordChain is the immutable outcome of a ladder query: the start and end
// words plus every path of minimum length between them. All stored paths
// share one length; an unsatisfiable query yields a WordChain with no paths
// and no resolved start/end. Construct via Find or Empty.
type WordChain struct {
	start string
	end   string
	paths [][]string // sorted lexicographically for stable enumeration
}
