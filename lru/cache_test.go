package lru_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlkit/lru"
)

// TestNew_BadCapacity verifies that non-positive capacities are rejected
// at construction with ErrBadCapacity.
func TestNew_BadCapacity(t *testing.T) {
	_, err := lru.New[string, int](0)
	assert.ErrorIs(t, err, lru.ErrBadCapacity, "capacity 0 must be rejected")

	_, err = lru.New[string, int](-3)
	assert.ErrorIs(t, err, lru.ErrBadCapacity, "negative capacity must be rejected")
}

// TestCache_EvictionOrder replays the canonical capacity-2 scenario:
// touching key 1 protects it, so inserting key 3 evicts key 2.
func TestCache_EvictionOrder(t *testing.T) {
	cache, err := lru.New[int, int](2)
	require.NoError(t, err)

	cache.Put(1, 1)
	cache.Put(2, 2)

	v, ok := cache.Get(1)
	require.True(t, ok, "key 1 must be present")
	assert.Equal(t, 1, v)

	// Key 1 is now MRU; inserting key 3 must evict key 2.
	cache.Put(3, 3)

	_, ok = cache.Get(2)
	assert.False(t, ok, "key 2 must have been evicted")

	v, ok = cache.Get(3)
	require.True(t, ok, "key 3 must be present")
	assert.Equal(t, 3, v)

	v, ok = cache.Get(1)
	require.True(t, ok, "key 1 must have survived")
	assert.Equal(t, 1, v)
}

// TestCache_PutExistingRefreshes ensures that Put on a present key replaces
// the value and protects the key from the next eviction.
func TestCache_PutExistingRefreshes(t *testing.T) {
	cache, err := lru.New[string, int](2)
	require.NoError(t, err)

	cache.Put("a", 1)
	cache.Put("b", 2)
	cache.Put("a", 10) // refresh: "b" becomes LRU
	cache.Put("c", 3)  // evicts "b"

	v, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v, "Put on existing key must replace the value")

	_, ok = cache.Get("b")
	assert.False(t, ok, "refreshing \"a\" must have doomed \"b\"")
	assert.Equal(t, 2, cache.Len())
}

// TestCache_GetRefreshesRecency checks that a Get hit changes the eviction
// victim while a miss leaves recency untouched.
func TestCache_GetRefreshesRecency(t *testing.T) {
	cache, err := lru.New[string, int](2)
	require.NoError(t, err)

	cache.Put("a", 1)
	cache.Put("b", 2)

	// Miss: must not disturb recency.
	_, ok := cache.Get("zzz")
	require.False(t, ok)
	assert.Equal(t, []string{"a", "b"}, cache.Keys(), "a miss must not reorder entries")

	// Hit on the current LRU flips the order.
	_, ok = cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, cache.Keys(), "a hit must move the key to MRU")
}

// TestCache_Peek verifies that Peek reads a value without promoting it.
func TestCache_Peek(t *testing.T) {
	cache, err := lru.New[string, int](2)
	require.NoError(t, err)

	cache.Put("a", 1)
	cache.Put("b", 2)

	v, ok := cache.Peek("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// "a" stayed LRU, so inserting "c" evicts it.
	cache.Put("c", 3)
	_, ok = cache.Get("a")
	assert.False(t, ok, "Peek must not refresh recency")
}

// TestCache_Remove checks explicit deletion, its return value, and that
// the OnEvict hook stays silent for Remove.
func TestCache_Remove(t *testing.T) {
	var evicted []string
	cache, err := lru.New(4, lru.WithOnEvict(func(k string, _ int) {
		evicted = append(evicted, k)
	}))
	require.NoError(t, err)

	cache.Put("a", 1)
	assert.True(t, cache.Remove("a"), "removing a present key reports true")
	assert.False(t, cache.Remove("a"), "removing an absent key reports false")
	assert.Zero(t, cache.Len())
	assert.Empty(t, evicted, "Remove must not fire OnEvict")
}

// TestCache_OnEvictHook verifies the hook fires with the evicted pair on
// capacity pressure, in LRU order on Purge, and never on plain Put within
// capacity.
func TestCache_OnEvictHook(t *testing.T) {
	type pair struct {
		key   string
		value int
	}
	var evicted []pair
	cache, err := lru.New(2, lru.WithOnEvict(func(k string, v int) {
		evicted = append(evicted, pair{k, v})
	}))
	require.NoError(t, err)

	cache.Put("a", 1)
	cache.Put("b", 2)
	require.Empty(t, evicted, "no eviction while under capacity")

	cache.Put("c", 3)
	require.Equal(t, []pair{{"a", 1}}, evicted, "capacity pressure evicts the LRU pair")

	cache.Purge()
	assert.Equal(t, []pair{{"a", 1}, {"b", 2}, {"c", 3}}, evicted, "Purge drains in LRU order")
	assert.Zero(t, cache.Len())
	assert.Equal(t, 2, cache.Cap(), "Purge must not change capacity")
}

// TestCache_SizeInvariant drives a mixed operation sequence and asserts
// Len never exceeds Cap and Keys always mirrors Len.
func TestCache_SizeInvariant(t *testing.T) {
	const capacity = 8
	cache, err := lru.New[int, int](capacity)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		switch i % 4 {
		case 0, 1:
			cache.Put(i%13, i)
		case 2:
			cache.Get(i % 7)
		case 3:
			cache.Remove(i % 17)
		}
		require.LessOrEqual(t, cache.Len(), capacity, "size bound violated at step %d", i)
		require.Len(t, cache.Keys(), cache.Len(), "index/list size mismatch at step %d", i)
	}
}

// TestCache_TouchedKeyNotNextVictim asserts that the key touched by the most
// recent Get or Put is never the next one evicted (capacity >= 2).
func TestCache_TouchedKeyNotNextVictim(t *testing.T) {
	var lastEvicted int
	cache, err := lru.New(3, lru.WithOnEvict(func(k, _ int) {
		lastEvicted = k
	}))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		touched := i % 5
		cache.Put(touched, i)
		lastEvicted = -1
		cache.Put(1000+i, i) // force pressure with a fresh key
		if lastEvicted != -1 {
			require.NotEqual(t, touched, lastEvicted,
				"the most recently touched key must not be evicted next")
		}
	}
}

// TestCache_SingleEntryCapacity exercises the degenerate capacity-1 cache:
// every new key displaces the previous one.
func TestCache_SingleEntryCapacity(t *testing.T) {
	cache, err := lru.New[string, string](1)
	require.NoError(t, err)

	cache.Put("a", "1")
	cache.Put("b", "2")

	_, ok := cache.Get("a")
	assert.False(t, ok)
	v, ok := cache.Get("b")
	require.True(t, ok)
	assert.Equal(t, "2", v)
	assert.Equal(t, 1, cache.Len())
}
