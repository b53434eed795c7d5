// Package lru implements a fixed-capacity key→value cache with
// least-recently-used eviction.
//
// The cache pairs a doubly-linked recency list with an index map from key
// to list element, the classic shape that makes every operation O(1):
// a hit splices its element to the front, an insert pushes a fresh element
// to the front, and eviction removes the back.
package lru

import (
	"container/list"
	"fmt"
)

// entry is the payload stored in each recency-list element.
// The key is kept alongside the value because eviction starts from the
// list side and must reach back into the index.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a bounded key→value store with least-recently-used eviction.
//
// Invariants (hold after every operation):
//   - index and recency list contain exactly the same set of keys;
//   - their common size never exceeds the configured capacity;
//   - list front is the most-recently-used entry, list back the least.
//
// The zero Cache is not usable; construct instances with New.
// A Cache is not safe for concurrent use; see the package documentation.
type Cache[K comparable, V any] struct {
	capacity int
	recency  *list.List           // front = MRU, back = LRU
	index    map[K]*list.Element  // key → recency-list element
	onEvict  func(key K, value V) // nil when no hook registered
}

// New returns an empty Cache bounded by capacity, applying any number of
// functional Options. Capacity must be a positive integer; New returns
// ErrBadCapacity otherwise — the cache never clamps a bad capacity.
//
// Complexity: O(1).
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}

	c := &Cache[K, V]{
		capacity: capacity,
		recency:  list.New(),
		index:    make(map[K]*list.Element, capacity),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Get returns the value stored under key and marks the entry as
// most-recently-used. A miss returns the zero value and false, with no
// side effect on recency.
//
// Complexity: O(1).
func (c *Cache[K, V]) Get(key K) (V, bool) {
	elem, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	// Hit: splice to the front so the entry becomes MRU.
	c.recency.MoveToFront(elem)

	return elem.Value.(*entry[K, V]).value, true
}

// Put stores value under key and marks the entry as most-recently-used.
// If key is already present its value is replaced in place. If key is new
// and the cache is full, the least-recently-used entry is evicted first
// (firing the OnEvict hook, if any).
//
// Complexity: O(1) amortized.
func (c *Cache[K, V]) Put(key K, value V) {
	// Existing key: replace value, refresh recency, done.
	if elem, ok := c.index[key]; ok {
		elem.Value.(*entry[K, V]).value = value
		c.recency.MoveToFront(elem)

		return
	}

	// New key at capacity: make room by dropping the back of the list.
	if c.recency.Len() == c.capacity {
		c.evictOldest()
	}

	// Insert the fresh entry at the front and index it.
	elem := c.recency.PushFront(&entry[K, V]{key: key, value: value})
	c.index[key] = elem
}

// Peek returns the value stored under key without touching recency.
// A miss returns the zero value and false.
//
// Complexity: O(1).
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	if elem, ok := c.index[key]; ok {
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V

	return zero, false
}

// Remove deletes the entry stored under key, reporting whether it was
// present. Remove never fires the OnEvict hook: the deletion was asked
// for, not forced by capacity.
//
// Complexity: O(1).
func (c *Cache[K, V]) Remove(key K) bool {
	elem, ok := c.index[key]
	if !ok {
		return false
	}
	c.recency.Remove(elem)
	delete(c.index, key)

	return true
}

// Keys returns all cached keys ordered least-recently-used first, so the
// next eviction victim is always Keys()[0].
//
// Complexity: O(n).
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.index))
	for elem := c.recency.Back(); elem != nil; elem = elem.Prev() {
		keys = append(keys, elem.Value.(*entry[K, V]).key)
	}

	return keys
}

// Len reports the number of entries currently cached.
func (c *Cache[K, V]) Len() int { return len(c.index) }

// Cap reports the fixed capacity the cache was constructed with.
func (c *Cache[K, V]) Cap() int { return c.capacity }

// Purge removes every entry, firing the OnEvict hook for each one in
// least-recently-used order. The capacity is unchanged.
//
// Complexity: O(n).
func (c *Cache[K, V]) Purge() {
	for c.recency.Len() > 0 {
		c.evictOldest()
	}
}

// evictOldest drops the back of the recency list and its index entry,
// then fires the OnEvict hook. Callers guarantee the list is non-empty.
func (c *Cache[K, V]) evictOldest() {
	elem := c.recency.Back()
	ent := elem.Value.(*entry[K, V])
	c.recency.Remove(elem)
	delete(c.index, ent.key)
	if c.onEvict != nil {
		c.onEvict(ent.key, ent.value)
	}
}
