// Package wordladder is an in-memory toolkit for building and exploring
// word ladders — chains of equal-length words where each step changes
// exactly one letter.
//
// 🚀 What is wordladder?
//
//	A small, zero-dependency library that brings together:
//		• Validated vocabularies: deduplicated, immutable, fixed-length word sets
//		• Neighbour graphs: one-letter-apart adjacency, built once and cached
//		• All shortest ladders: BFS with multi-predecessor tracking, so every
//		  minimum-length chain is returned — not just one
//		• Mixed-length dictionaries: per-length buckets queried through a
//		  single index
//
// ✨ Why choose wordladder?
//
//   - Minimal API, clear naming — construct, then query
//   - Immutable by construction: no invalidation, no rebuild, no surprises
//   - Pure Go — no cgo, no hidden deps
//   - Extensible — traversal hooks (OnEnqueue, OnVisit) for custom logic
//
// Everything is organized under four subpackages:
//
//	wordset/   — validated fixed-length vocabulary (the graph's vertex set)
//	wordgraph/ — one-letter-apart adjacency over a WordSet
//	chains/    — all-shortest-paths search and the WordChain result value
//	ladder/    — mixed-length index dispatching queries to per-length graphs
//
// Quick ASCII example:
//
//	    bird──bind──bond──bong──song
//	      └───bord────┘
//
//	two ladders of equal length connect "bird" to "song"; both are returned.
//
//	go get github.com/katalvlaran/wordladder
package wordladder
