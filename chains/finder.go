// Package chains finds every minimum-length word ladder between two words
// of a wordgraph.Graph via breadth-first search with multi-predecessor
// tracking.
package chains

import (
	"fmt"

	"github.com/katalvlaran/wordladder/wordgraph"
)

// queueItem pairs a word with its BFS depth (in edges) from the start word.
type queueItem struct {
	word  string
	depth int
}

// searcher encapsulates mutable state for one Find call.
type searcher struct {
	adj      wordgraph.AdjacencyMap
	opts     FindOptions
	end      string
	queue    []queueItem
	depth    map[string]int
	preds    map[string][]string // every predecessor at minimum distance
	endDepth int                 // depth of end once reached; -1 before
}

// Find runs an all-shortest-paths search from start to end over g,
// applying any number of functional Options.
// Returns ErrNilGraph for a nil graph and propagates any OnVisit hook
// error; every other outcome is a WordChain. Absent start or end words and
// unreachable pairs yield the empty WordChain, not an error. start == end
// (with the word present) yields the single-word trivial path.
// Complexity: O(V+E) time over the bucket's graph, O(V) memory, after the
// one-time adjacency build.
func Find(g *wordgraph.Graph, start, end string, opts ...Option) (*WordChain, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	adj := g.Build()
	if _, ok := adj[start]; !ok {
		return Empty(), nil
	}
	if _, ok := adj[end]; !ok {
		return Empty(), nil
	}
	if start == end {
		return newChain(start, end, [][]string{{start}}), nil
	}

	s := &searcher{
		adj:      adj,
		opts:     o,
		end:      end,
		queue:    make([]queueItem, 0, len(adj)),
		depth:    make(map[string]int, len(adj)),
		preds:    make(map[string][]string, len(adj)),
		endDepth: -1,
	}
	s.enqueue(start, 0)
	if err := s.loop(); err != nil {
		return nil, err
	}
	if s.endDepth < 0 {
		return Empty(), nil
	}

	return newChain(start, end, s.reconstruct(start)), nil
}

// enqueue fixes word's distance at d, calls OnEnqueue, and appends it to
// the queue. A word is enqueued at most once: the first level that reaches
// it is its minimum distance.
func (s *searcher) enqueue(word string, d int) {
	s.depth[word] = d
	s.opts.OnEnqueue(word, d)
	s.queue = append(s.queue, queueItem{word: word, depth: d})
}

// loop processes the queue until the level before end is exhausted, the
// reachable component runs out, or a hook aborts.
func (s *searcher) loop() error {
	for len(s.queue) > 0 {
		item := s.queue[0]
		s.queue = s.queue[1:]
		// The queue is non-decreasing in depth, so once a word at the
		// end's level is dequeued, every predecessor of end has already
		// been recorded and deeper expansion cannot shorten anything.
		if s.endDepth >= 0 && item.depth >= s.endDepth {
			break
		}
		if err := s.opts.OnVisit(item.word, item.depth); err != nil {
			return fmt.Errorf("chains: OnVisit error at %q: %w", item.word, err)
		}
		s.expand(item)
	}

	return nil
}

// expand relaxes item's neighbours: a word reached for the first time is
// enqueued at depth+1 with item as its predecessor; a word re-reached at
// that same level gains item as an additional predecessor — the branching
// that lets reconstruction recover every shortest path.
func (s *searcher) expand(item queueItem) {
	next := item.depth + 1
	for _, nbr := range s.adj[item.word] {
		d, seen := s.depth[nbr]
		switch {
		case !seen:
			s.preds[nbr] = []string{item.word}
			if nbr == s.end {
				s.endDepth = next
			}
			s.enqueue(nbr, next)
		case d == next:
			s.preds[nbr] = append(s.preds[nbr], item.word)
		}
	}
}

// reconstruct walks the predecessor DAG backward from end, emitting every
// distinct start→end sequence. Each sequence is freshly allocated.
func (s *searcher) reconstruct(start string) [][]string {
	var paths [][]string
	var walk func(word string, suffix []string)
	walk = func(word string, suffix []string) {
		seq := make([]string, 0, len(suffix)+1)
		seq = append(seq, word)
		seq = append(seq, suffix...)
		if word == start {
			paths = append(paths, seq)
			return
		}
		for _, pred := range s.preds[word] {
			walk(pred, seq)
		}
	}
	walk(s.end, nil)

	return paths
}
