// Package kmerge implements the heap-based k-way merge of sorted slices.
package kmerge

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// cursor marks the current read position inside one input slice.
// value caches lists[list][index] so heap comparisons stay indirection-free.
type cursor[T constraints.Ordered] struct {
	value T
	list  int // which input slice
	index int // position within that slice
}

// cursorHeap orders cursors by cached value, breaking ties by input
// position so equal elements come out in input order.
type cursorHeap[T constraints.Ordered] []cursor[T]

func (h cursorHeap[T]) Len() int { return len(h) }

func (h cursorHeap[T]) Less(i, j int) bool {
	if h[i].value != h[j].value {
		return h[i].value < h[j].value
	}

	return h[i].list < h[j].list
}

func (h cursorHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *cursorHeap[T]) Push(x any) { *h = append(*h, x.(cursor[T])) }

func (h *cursorHeap[T]) Pop() any {
	old := *h
	n := len(old)
	last := old[n-1]
	*h = old[:n-1]

	return last
}

// Merge combines any number of ascending-sorted slices into one ascending
// slice. Nil and empty inputs contribute nothing; Merge with no inputs
// (or only empty ones) returns an empty, non-nil slice.
//
// Inputs must already be sorted ascending; see the package documentation.
//
// Complexity: O(n log k) time, O(k) auxiliary memory.
func Merge[T constraints.Ordered](lists ...[]T) []T {
	// Seed the heap with the head of every non-empty input.
	h := make(cursorHeap[T], 0, len(lists))
	total := 0
	for i, list := range lists {
		total += len(list)
		if len(list) > 0 {
			h = append(h, cursor[T]{value: list[0], list: i, index: 0})
		}
	}
	heap.Init(&h)

	// Repeatedly pop the smallest head and advance its cursor.
	out := make([]T, 0, total)
	for h.Len() > 0 {
		cur := h[0]
		out = append(out, cur.value)

		next := cur.index + 1
		if list := lists[cur.list]; next < len(list) {
			// Replace the root in place: one sift-down instead of pop+push.
			h[0] = cursor[T]{value: list[next], list: cur.list, index: next}
			heap.Fix(&h, 0)
		} else {
			heap.Pop(&h)
		}
	}

	return out
}
