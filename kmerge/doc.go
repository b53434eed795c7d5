// Package kmerge provides a k-way merge of ascending-sorted sequences
// through a cursor min-heap.
//
// What
//
//   - Merge takes any number of ascending-sorted slices and returns one
//     ascending slice containing every element of every input.
//   - A min-heap holds one cursor per non-exhausted input; each step pops
//     the globally smallest head and advances that cursor.
//
// Why
//
//   - Combine sorted runs from external sorts, log shards, or time-ordered
//     event streams without concatenating and re-sorting.
//   - O(n log k) beats the O(n log n) of sort-everything when k is small.
//
// Preconditions
//
//	Each input slice must already be sorted ascending. Merge does not
//	verify this: with unsorted inputs the output order is unspecified.
//	Nil and empty inputs are valid and simply contribute nothing.
//
// Determinism
//
//	When two inputs expose equal heads, the cursor with the lower input
//	position wins, so equal elements appear in input order.
//
// Complexity (n = total elements, k = number of inputs)
//
//   - Time:   O(n log k)
//   - Memory: O(k) for the heap plus O(n) for the output
//
// Usage
//
//	out := kmerge.Merge([]int{1, 4, 7}, []int{2, 5, 8}, []int{3, 6, 9})
//	// out == [1 2 3 4 5 6 7 8 9]
package kmerge
