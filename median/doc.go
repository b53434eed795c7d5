// Package median provides a production-grade running-median tracker over a
// changing set of numeric values — the classic dual-multiset pattern behind
// sliding-window median streams.
//
// What
//
//   - A Tracker[T] maintains the currently active values split across two
//     ordered multisets:
//   - lo — the smaller half (holds the extra element on odd totals)
//   - hi — the larger half
//   - Insert adds one occurrence of a value; Erase removes one occurrence
//     (a benign no-op when the value is absent).
//   - Median answers in O(1) from the boundary of the two halves:
//     max(lo) on odd totals, the mean of max(lo) and min(hi) on even ones.
//   - SlidingMedians drives a Tracker across a slice with a fixed window,
//     emitting one median per full window.
//
// Why
//
//   - Running medians over streams: latency percentiles, sensor smoothing,
//     robust outlier-resistant aggregates.
//   - O(log k) per update where k is the number of active values — the
//     window size in the usual insert-then-erase usage.
//
// Balance invariant
//
//	After every operation len(lo) == len(hi) or len(lo) == len(hi)+1, and
//	every value in lo is <= every value in hi. Each Insert or Erase moves at
//	most one element across the boundary to restore the invariant, which
//	keeps the median parity deterministic: odd totals always answer from lo.
//
// Duplicates
//
//	Values are tracked by value, not identity. Inserting 3 twice and erasing
//	3 once leaves one occurrence active.
//
// Empty tracker
//
//	Median on an empty tracker returns 0 as a documented sentinel, never an
//	error. The sentinel is indistinguishable from a genuine zero median, so
//	callers must check Len() > 0 before trusting it as real data.
//
// Concurrency
//
//	A Tracker is NOT safe for concurrent use; serialize access externally.
//
// Complexity (k = currently active values)
//
//   - Insert / Erase: O(log k) expected
//   - Median / Len:   O(log k) / O(1)
//   - Memory:         O(k)
//
// Usage
//
//	tr := median.NewTracker[int]()
//	tr.Insert(1)
//	tr.Insert(3)
//	tr.Insert(2)
//	fmt.Println(tr.Median()) // 2
//
//	// Whole-window convenience:
//	medians, err := median.SlidingMedians([]int{1, 3, -1, -3, 5, 3, 6, 7}, 3)
//	if err != nil {
//	    // handle ErrBadWindow
//	}
//	fmt.Println(medians) // [1 -1 -1 3 5 3 6]
//
// Errors
//
//   - ErrBadWindow  if SlidingMedians is called with window <= 0.
//   - Erase of an absent value and Median on an empty tracker are NOT
//     errors; both are defined, documented outcomes.
package median
