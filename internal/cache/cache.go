// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

// Package cache provides a thread-safe in-memory TTL cache with an
// injected clock, so staleness boundaries are testable without real
// timers.
package cache

import (
	"sync"
	"time"
)

// Clock supplies the current time. Production code passes time.Now;
// tests pass a fake to step across TTL boundaries deterministically.
type Clock func() time.Time

// Stats tracks cache performance counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
}

type entry[V any] struct {
	value    V
	storedAt time.Time
	ttl      time.Duration
}

// Cache is a thread-safe in-memory cache with per-entry TTL. Entries
// expire as whole objects: a stale entry is never partially visible, it
// is simply gone.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	clock   Clock
	stats   Stats
}

// New creates a cache with the given default TTL. A nil clock defaults
// to time.Now.
func New[V any](ttl time.Duration, clock Clock) *Cache[V] {
	if clock == nil {
		clock = time.Now
	}
	return &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get returns the cached value for key. An entry is stale once its age
// reaches its TTL (age >= ttl misses; age < ttl hits), and a stale entry
// is deleted on access.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		return zero, false
	}

	if c.clock().Sub(e.storedAt) >= e.ttl {
		delete(c.entries, key)
		c.stats.Misses++
		c.stats.Evictions++
		return zero, false
	}

	c.stats.Hits++
	return e.value, true
}

// Set stores value under key with the default TTL, replacing any
// existing entry atomically.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a custom TTL.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:    value,
		storedAt: c.clock(),
		ttl:      ttl,
	}
}

// Delete removes the entry for key.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[V])
}

// Prune removes every stale entry and returns how many were evicted.
func (c *Cache[V]) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	evicted := 0
	for key, e := range c.entries {
		if now.Sub(e.storedAt) >= e.ttl {
			delete(c.entries, key)
			evicted++
		}
	}
	c.stats.Evictions += int64(evicted)
	return evicted
}

// Len returns the number of entries, stale ones included.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// GetStats returns a copy of the cache counters.
func (c *Cache[V]) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// HitRate returns the hit rate as a percentage.
func (c *Cache[V]) HitRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.stats.Hits + c.stats.Misses
	if total == 0 {
		return 0
	}
	return float64(c.stats.Hits) / float64(total) * 100
}
