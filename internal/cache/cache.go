// file: internal/cache/cache.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7a8b-9c0d-1e2f3a4b5c6d

// Package cache holds recently computed verdicts so identical ranking
// requests are answered without re-running the engine.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// Cache is a bounded TTL cache safe for concurrent use. A zero TTL disables
// it: Get always misses and Set stores nothing.
type Cache[T any] struct {
	mu         sync.RWMutex
	items      map[string]entry[T]
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// New creates a cache keeping at most maxEntries values for ttl each.
func New[T any](ttl time.Duration, maxEntries int) *Cache[T] {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Cache[T]{
		items:      make(map[string]entry[T]),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Enabled reports whether values are kept at all.
func (c *Cache[T]) Enabled() bool {
	return c != nil && c.ttl > 0
}

// Get retrieves a value if it exists and hasn't expired.
func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T
	if !c.Enabled() {
		return zero, false
	}
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || c.now().After(e.expiresAt) {
		return zero, false
	}
	return e.value, true
}

// Set stores value under key. When the cache is full, expired entries are
// dropped first and then the entry closest to expiry.
func (c *Cache[T]) Set(key string, value T) {
	if !c.Enabled() {
		return
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; !ok && len(c.items) >= c.maxEntries {
		c.evictLocked(now)
	}
	c.items[key] = entry[T]{value: value, expiresAt: now.Add(c.ttl)}
}

func (c *Cache[T]) evictLocked(now time.Time) {
	oldestKey := ""
	var oldest time.Time
	for k, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, k)
			continue
		}
		if oldestKey == "" || e.expiresAt.Before(oldest) {
			oldestKey, oldest = k, e.expiresAt
		}
	}
	if len(c.items) >= c.maxEntries && oldestKey != "" {
		delete(c.items, oldestKey)
	}
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache[T]) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Key derives a cache key from the JSON encoding of parts.
func Key(parts ...any) (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, p := range parts {
		if err := enc.Encode(p); err != nil {
			return "", fmt.Errorf("failed to encode cache key: %w", err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
