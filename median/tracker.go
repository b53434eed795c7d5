// Package median implements the dual-multiset running-median tracker.
//
// Tracker — running median over a changing multiset of values
//
// Description:
//
//	Keep the active values split into two ordered multisets around the
//	median boundary: lo holds the smaller half (plus the extra element on
//	odd totals), hi holds the larger half. The median is then always on
//	the boundary — max(lo) and min(hi) — so answering it costs one or two
//	extremum lookups and no scanning.
//
// Algorithm outline:
//  1. Insert(x): place x into lo if lo is empty or x <= max(lo), else
//     into hi; rebalance.
//  2. Erase(x): remove one occurrence from lo if present there, else from
//     hi; absent values are ignored; rebalance.
//  3. rebalance: if len(lo) > len(hi)+1, move max(lo) into hi; if
//     len(hi) > len(lo), move min(hi) into lo. Because the invariant held
//     before the call, at most one element moves.
//  4. Median: 0 sentinel when empty; max(lo) when lo is the larger half;
//     otherwise the floating mean of max(lo) and min(hi).
//
// Complexity:
//
//	Insert/Erase O(log k) expected, Median O(log k), Len O(1),
//	with k the number of currently active values.
package median

// Tracker maintains the running median of a changing multiset of values.
//
// The typical caller keeps a sliding window of exactly W elements: Insert
// each arriving value and, once W values are active, Erase the value
// leaving the window after each Insert, querying Median in between. The
// Tracker itself does not enforce that pattern — any interleaving of
// Insert and Erase is valid.
//
// A Tracker is not safe for concurrent use.
type Tracker[T Numeric] struct {
	lo *multiset[T] // smaller half; owns the extra element on odd totals
	hi *multiset[T] // larger half
}

// NewTracker returns an empty Tracker.
func NewTracker[T Numeric]() *Tracker[T] {
	return &Tracker[T]{
		lo: newMultiset[T](),
		hi: newMultiset[T](),
	}
}

// Insert adds one occurrence of x to the active set.
//
// Complexity: O(log k) expected.
func (t *Tracker[T]) Insert(x T) {
	if t.lo.len() == 0 || x <= t.lo.max() {
		t.lo.insert(x)
	} else {
		t.hi.insert(x)
	}
	t.rebalance()
}

// Erase removes one occurrence of x from the active set, looking in the
// lower half first. Erasing a value that is not active is a benign no-op:
// correct callers only erase previously inserted, not-yet-erased values,
// and there is no way for them to observe a stale removal in advance.
//
// Complexity: O(log k) expected.
func (t *Tracker[T]) Erase(x T) {
	if !t.lo.remove(x) {
		t.hi.remove(x)
	}
	t.rebalance()
}

// Median returns the current median as a float64.
//
// Empty tracker: returns 0 as a documented sentinel — check Len() > 0
// before trusting the result as real data. Odd totals: max(lo). Even
// totals: the mean of max(lo) and min(hi), in floating semantics even for
// integral T.
//
// Complexity: O(log k).
func (t *Tracker[T]) Median() float64 {
	switch {
	case t.lo.len() == 0:
		// Empty: hi cannot be non-empty while lo is (balance invariant).
		return 0
	case t.lo.len() > t.hi.len():
		return float64(t.lo.max())
	default:
		return (float64(t.lo.max()) + float64(t.hi.min())) / 2
	}
}

// Len reports the number of currently active values, counting duplicates.
// Use it to distinguish the empty-tracker sentinel from a real zero median.
func (t *Tracker[T]) Len() int {
	return t.lo.len() + t.hi.len()
}

// rebalance restores the size invariant by moving at most one element
// across the lo/hi boundary: lo may exceed hi by exactly one, never more,
// and hi may never exceed lo.
func (t *Tracker[T]) rebalance() {
	switch {
	case t.lo.len() > t.hi.len()+1:
		v := t.lo.max()
		t.lo.remove(v)
		t.hi.insert(v)
	case t.hi.len() > t.lo.len():
		v := t.hi.min()
		t.hi.remove(v)
		t.lo.insert(v)
	}
}

// SlidingMedians reports the median of every full window of the given size
// across values: each element is Inserted and, once the window is full,
// the median is emitted and the element leaving the window is Erased.
//
// Returns ErrBadWindow if window <= 0. A window larger than the input is
// valid and yields no medians.
//
// Complexity: O(n log window) time, O(window) memory.
func SlidingMedians[T Numeric](values []T, window int) ([]float64, error) {
	if window <= 0 {
		return nil, ErrBadWindow
	}

	tracker := NewTracker[T]()
	medians := make([]float64, 0, max(len(values)-window+1, 0))
	for i, v := range values {
		tracker.Insert(v)
		if i >= window-1 {
			medians = append(medians, tracker.Median())
			tracker.Erase(values[i-window+1])
		}
	}

	return medians, nil
}
