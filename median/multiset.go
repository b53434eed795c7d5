// Package median - internal ordered multiset backing the Tracker halves.
//
// The multiset is a treap: a binary search tree ordered by value whose
// nodes also satisfy a max-heap property on random priorities, which keeps
// the expected depth logarithmic without explicit rebalancing bookkeeping.
// Duplicate values share one node with an occurrence counter, so "remove
// one occurrence" is a counter decrement until the last copy goes.
//
// Priorities come from a deterministic splitmix-style stream seeded per
// multiset: same insertion sequence ⇒ identical tree shape across runs and
// platforms. No time-based sources hidden anywhere.
package median

// defaultPrioSeed is the fixed seed for the priority stream. The value is
// arbitrary but stable to keep reproducible tree shapes.
const defaultPrioSeed uint64 = 0x9e3779b97f4a7c15

// node is a single treap node: one distinct value with its occurrence count.
type node[T Numeric] struct {
	value       T
	prio        uint64
	count       int
	left, right *node[T]
}

// multiset is an ordered collection of values with duplicates, supporting
// insert, remove-one-occurrence, min and max in O(log n) expected time.
type multiset[T Numeric] struct {
	root *node[T]
	size int    // total occurrences, counting duplicates
	prng uint64 // splitmix64 state for node priorities
}

func newMultiset[T Numeric]() *multiset[T] {
	return &multiset[T]{prng: defaultPrioSeed}
}

// nextPrio advances the splitmix64 stream and returns the next priority.
// Constants are the canonical SplitMix64 multipliers/finalizer.
func (m *multiset[T]) nextPrio() uint64 {
	m.prng += 0x9e3779b97f4a7c15
	x := m.prng
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// len reports the number of occurrences currently held.
func (m *multiset[T]) len() int { return m.size }

// insert adds one occurrence of v.
//
// Complexity: O(log n) expected.
func (m *multiset[T]) insert(v T) {
	m.root = m.insertNode(m.root, v)
	m.size++
}

func (m *multiset[T]) insertNode(n *node[T], v T) *node[T] {
	if n == nil {
		return &node[T]{value: v, prio: m.nextPrio(), count: 1}
	}
	switch {
	case v == n.value:
		n.count++
	case v < n.value:
		n.left = m.insertNode(n.left, v)
		if n.left.prio > n.prio {
			n = rotateRight(n)
		}
	default:
		n.right = m.insertNode(n.right, v)
		if n.right.prio > n.prio {
			n = rotateLeft(n)
		}
	}

	return n
}

// remove deletes one occurrence of v, reporting whether it was present.
//
// Complexity: O(log n) expected.
func (m *multiset[T]) remove(v T) bool {
	root, removed := removeNode(m.root, v)
	m.root = root
	if removed {
		m.size--
	}

	return removed
}

func removeNode[T Numeric](n *node[T], v T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch {
	case v < n.value:
		n.left, removed = removeNode(n.left, v)
	case v > n.value:
		n.right, removed = removeNode(n.right, v)
	default:
		if n.count > 1 {
			n.count--

			return n, true
		}

		return sinkAndDrop(n), true
	}

	return n, removed
}

// sinkAndDrop rotates n down until it is a leaf, preserving the heap
// property on priorities, then discards it.
func sinkAndDrop[T Numeric](n *node[T]) *node[T] {
	switch {
	case n.left == nil && n.right == nil:
		return nil
	case n.right == nil || (n.left != nil && n.left.prio > n.right.prio):
		n = rotateRight(n)
		n.right = sinkAndDrop(n.right)
	default:
		n = rotateLeft(n)
		n.left = sinkAndDrop(n.left)
	}

	return n
}

// min returns the smallest value held. Callers guarantee len() > 0.
func (m *multiset[T]) min() T {
	n := m.root
	for n.left != nil {
		n = n.left
	}

	return n.value
}

// max returns the largest value held. Callers guarantee len() > 0.
func (m *multiset[T]) max() T {
	n := m.root
	for n.right != nil {
		n = n.right
	}

	return n.value
}

// rotateRight lifts n's left child above n.
//
//	    n            l
//	   / \          / \
//	  l   C   ⇒    A   n
//	 / \              / \
//	A   B            B   C
func rotateRight[T Numeric](n *node[T]) *node[T] {
	l := n.left
	n.left = l.right
	l.right = n

	return l
}

// rotateLeft lifts n's right child above n (mirror of rotateRight).
func rotateLeft[T Numeric](n *node[T]) *node[T] {
	r := n.right
	n.right = r.left
	r.left = n

	return r
}
