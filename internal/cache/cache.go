// Package cache is a small in-process TTL cache for computed analytics
// results. Entries are stored as msgpack snapshots so readers always decode
// a fresh copy and can never mutate a cached value shared with another
// request.
package cache

import (
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

type entry struct {
	payload   []byte
	expiresAt time.Time
}

// Cache is a mutex-guarded key/value store with a single TTL for all entries.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

// New creates a cache whose entries expire ttl after being set. A zero or
// negative ttl disables caching: Get never hits.
func New(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Set stores a msgpack snapshot of v under key.
func (c *Cache) Set(key string, v interface{}) error {
	if c.ttl <= 0 {
		return nil
	}

	payload, err := msgpack.Marshal(v)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.entries[key] = entry{payload: payload, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}

// Get decodes the snapshot under key into dst and reports whether a fresh
// entry existed. Expired entries are treated as misses and dropped.
func (c *Cache) Get(key string, dst interface{}) bool {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return false
	}

	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return false
	}

	if err := msgpack.Unmarshal(e.payload, dst); err != nil {
		return false
	}
	return true
}

// Invalidate drops a single entry.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}
