package snapshot

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Clock supplies the current time; injectable so cache expiry can be
// tested without wall-clock dependency
type Clock func() time.Time

type entry[V any] struct {
	value     V
	fetchedAt time.Time
}

// Cache is a time-bounded memoization layer in front of an idempotent
// fetch. A read past the TTL triggers a synchronous refetch; if the
// refetch fails and a stale value exists, the stale value is served.
// Concurrent callers during a miss may each trigger a redundant fetch;
// fetches are idempotent reads, so there is no single-flight deduplication.
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	clock   Clock
	entries map[K]entry[V]
}

// New creates a cache with the given TTL. A nil clock uses time.Now.
func New[K comparable, V any](ttl time.Duration, clock Clock) *Cache[K, V] {
	if clock == nil {
		clock = time.Now
	}
	return &Cache[K, V]{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[K]entry[V]),
	}
}

// GetOrFetch returns the cached value for key, fetching when the entry
// is missing or expired. On fetch failure the previous value is served
// stale if present; otherwise the error surfaces to the caller.
func (c *Cache[K, V]) GetOrFetch(key K, fetch func() (V, error)) (V, error) {
	now := c.clock()

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && now.Sub(e.fetchedAt) < c.ttl {
		return e.value, nil
	}

	value, err := fetch()
	if err != nil {
		if ok {
			log.Warn().Err(err).Msg("Snapshot refetch failed, serving stale data")
			return e.value, nil
		}
		var zero V
		return zero, err
	}

	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, fetchedAt: now}
	c.mu.Unlock()

	return value, nil
}

// Peek returns the cached value without fetching, expired or not
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return e.value, ok
}

// Invalidate drops a single key
func (c *Cache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len reports the number of cached entries
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
