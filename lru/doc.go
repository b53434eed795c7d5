// Package lru provides a production-grade bounded key→value cache with
// least-recently-used eviction, generic over key and value types.
//
// What
//
//   - A Cache[K, V] holds at most Cap() entries; inserting beyond capacity
//     evicts the entry that has gone longest without being accessed.
//   - Get and Put refresh recency (the touched key becomes most-recently-used).
//   - Peek reads without touching recency; Remove deletes a single key;
//     Purge empties the cache.
//   - Keys reports all keys, least-recently-used first.
//   - Supports a functional hook:
//   - OnEvict (after an entry is evicted by capacity pressure or Purge)
//
// Why
//
//   - Bound the memory of memoization tables, page caches, and session maps.
//   - O(1) per operation, regardless of capacity.
//   - Foundation for TTL caches, sharded caches, and admission policies.
//
// Internal shape
//
//	A doubly-linked recency list (front = most-recently-used, back =
//	least-recently-used) paired with an index map from key to list element.
//	The two structures always hold exactly the same set of keys, and their
//	common size never exceeds capacity. Moving a touched entry to the front
//	is a single splice; eviction pops the back.
//
// Determinism
//
//	For a fixed operation sequence the eviction order is fully determined:
//	the evicted key is always the current back of the recency list.
//
// Concurrency
//
//	A Cache is NOT safe for concurrent use. Callers that share one instance
//	across goroutines must serialize all access with one exclusive lock per
//	instance; no operation blocks, so the critical sections stay short.
//
// Complexity (n = current number of entries)
//
//   - Get / Put / Peek / Remove: O(1)
//   - Keys:  O(n)
//   - Purge: O(n) (hook invocations), O(1) otherwise
//   - Memory: O(capacity)
//
// Usage
//
//	cache, err := lru.New[string, int](128)
//	if err != nil {
//	    // handle ErrBadCapacity
//	}
//	cache.Put("alpha", 1)
//	if v, ok := cache.Get("alpha"); ok {
//	    fmt.Println(v) // 1
//	}
//
//	// With an eviction hook:
//	cache, _ = lru.New(2, lru.WithOnEvict(func(k string, v int) {
//	    log.Printf("evicted %s=%d", k, v)
//	}))
//
// Errors
//
//   - ErrBadCapacity  if New is called with capacity <= 0.
//   - A Get/Peek miss is not an error: it is the defined (zero, false) outcome.
package lru
