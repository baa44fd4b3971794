package service

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// SnapshotCache memoizes computed values per key with a TTL. Concurrent
// requests for the same key share a single in-flight computation; a
// value computed for one key never overwrites another, so switching
// stores cannot surface a stale cross-store snapshot.
type SnapshotCache struct {
	ttl   time.Duration
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// NewSnapshotCache creates a cache whose entries expire after ttl
func NewSnapshotCache(ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the cached value for key, or runs compute once and caches
// its result. Concurrent callers with the same key observe the same
// computation.
func (c *SnapshotCache) Get(key string, compute func() (any, error)) (any, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && time.Now().Before(entry.expiresAt) {
		return entry.value, nil
	}

	value, err, _ := c.group.Do(key, func() (any, error) {
		// A concurrent caller may have filled the entry while this
		// caller was waiting on the flight.
		c.mu.RLock()
		entry, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && time.Now().Before(entry.expiresAt) {
			return entry.value, nil
		}

		value, err := compute()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = cacheEntry{value: value, expiresAt: time.Now().Add(c.ttl)}
		c.mu.Unlock()
		return value, nil
	})
	return value, err
}

// Invalidate drops the cached entry for key, forcing the next Get to
// recompute. In-flight computations are unaffected.
func (c *SnapshotCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidatePrefix drops every entry whose key starts with prefix. Used
// after a sale to refresh all dashboard views of the affected store.
func (c *SnapshotCache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	for key := range c.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}
