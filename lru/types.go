// Package lru provides tunable options and error definitions
// for the bounded least-recently-used cache.
package lru

import "errors"

// ErrBadCapacity is returned by New when capacity is not a positive integer.
// The cache rejects bad capacities at construction rather than clamping them,
// so a misconfigured caller fails fast instead of silently caching one entry.
var ErrBadCapacity = errors.New("lru: capacity must be positive")

// Option configures Cache behavior via functional arguments.
type Option[K comparable, V any] func(*Cache[K, V])

// WithOnEvict registers a callback invoked after an entry leaves the cache
// under capacity pressure or Purge. The callback receives the evicted key
// and value. It is NOT invoked for Remove: the caller already holds that
// key and asked for the deletion explicitly.
//
// The callback runs synchronously inside Put/Purge; keep it short.
func WithOnEvict[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		if fn != nil {
			c.onEvict = fn
		}
	}
}
