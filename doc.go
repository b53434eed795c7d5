// Package lvlkit is your in-memory toolbox of classic data-structure
// patterns — bounded caches, order statistics, heaps and ordered search —
// each one a small, self-contained, production-grade package.
//
// 🚀 What is lvlkit?
//
//	A modern, zero-surprise library that brings together:
//		• lru/    — bounded key→value cache with least-recently-used eviction
//		• median/ — running median of a sliding window via dual ordered multisets
//		• topk/   — top-K frequency selection with deterministic tie-breaking
//		• kmerge/ — k-way merge of sorted sequences through a cursor min-heap
//		• prefix/ — prefix search over a sorted dictionary (lower-bound + scan)
//
// ✨ Why choose lvlkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – documented invariants, sentinel errors, no panics
//   - Pure Go – no cgo, generics throughout
//   - Honest complexity – every operation states its bound and keeps it
//
// Each package is a leaf: no package depends on another, and none of them
// spawns goroutines or takes locks. If you need concurrent access, wrap an
// instance with one exclusive lock — the lru package's tests show the pattern.
//
// Quick taste:
//
//	cache, _ := lru.New[string, int](2)
//	cache.Put("a", 1)
//	cache.Put("b", 2)
//	cache.Get("a")      // "a" is now most-recently-used
//	cache.Put("c", 3)   // evicts "b"
//
// Dive into each package's doc.go for full contracts, complexity tables,
// and runnable examples.
//
//	go get github.com/katalvlaran/lvlkit
package lvlkit
