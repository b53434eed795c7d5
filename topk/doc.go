// Package topk provides top-K frequency selection over a stream of items,
// with a deterministic tie-break.
//
// What
//
//   - Count tallies occurrences of each distinct item into a frequency map.
//   - Top returns the k most frequent items as Entry values ordered by
//     count descending, then item ascending — ties never reorder between
//     runs.
//
// Why
//
//   - "Most common words", "hottest keys", "top talkers" — the classic
//     heavy-hitters report over a finite input.
//   - Selection via a bounded min-heap of size k beats sorting the whole
//     frequency table when k is small relative to the number of distinct
//     items.
//
// Determinism
//
//	The ordering is a total order: count descending with the ascending
//	item value breaking ties. Equal inputs always produce equal outputs,
//	regardless of map iteration order.
//
// Complexity (n = items, d = distinct items, k = requested size)
//
//   - Count: O(n) time, O(d) memory
//   - Top:   O(n + d log k) time, O(d) memory
//
// Usage
//
//	words := []string{"go", "rust", "go", "zig", "go", "rust"}
//	top, err := topk.Top(words, 2)
//	if err != nil {
//	    // handle ErrBadK
//	}
//	// top == [{go 3} {rust 2}]
//
// Errors
//
//   - ErrBadK  if Top is called with k <= 0. k larger than the number of
//     distinct items is valid and returns the full ranking.
package topk
