// Package topk implements frequency counting and bounded-heap top-K
// selection with a count-descending, item-ascending total order.
package topk

import (
	"container/heap"
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrBadK is returned by Top when k is not a positive integer.
var ErrBadK = errors.New("topk: k must be positive")

// Entry pairs an item with its occurrence count.
type Entry[T constraints.Ordered] struct {
	Item  T
	Count int
}

// Count tallies the occurrences of each distinct item.
//
// Complexity: O(n) time, O(d) memory for d distinct items.
func Count[T comparable](items []T) map[T]int {
	counts := make(map[T]int, len(items))
	for _, item := range items {
		counts[item]++
	}

	return counts
}

// Top returns the k most frequent items in items, ordered by count
// descending and item ascending on equal counts. When k meets or exceeds
// the number of distinct items the full ranking is returned.
//
// Complexity: O(n + d log k) time — a bounded min-heap of the k best
// entries seen so far, never the whole table sorted.
func Top[T constraints.Ordered](items []T, k int) ([]Entry[T], error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadK, k)
	}

	counts := Count(items)

	// Keep the k strongest entries in a min-heap keyed by "weakest first";
	// whenever the heap overflows, the weakest entry falls out.
	h := make(entryHeap[T], 0, k+1)
	for item, count := range counts {
		heap.Push(&h, Entry[T]{Item: item, Count: count})
		if h.Len() > k {
			heap.Pop(&h)
		}
	}

	// Drain weakest-first into the tail of the result slice.
	ranked := make([]Entry[T], h.Len())
	for i := len(ranked) - 1; i >= 0; i-- {
		ranked[i] = heap.Pop(&h).(Entry[T])
	}

	return ranked, nil
}

// entryHeap is a min-heap whose root is the weakest entry under the
// ranking order: smaller count first, larger item first on equal counts
// (the mirror of the final count-desc/item-asc output order).
type entryHeap[T constraints.Ordered] []Entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].Count != h[j].Count {
		return h[i].Count < h[j].Count
	}

	return h[i].Item > h[j].Item
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(Entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	last := old[n-1]
	*h = old[:n-1]

	return last
}
