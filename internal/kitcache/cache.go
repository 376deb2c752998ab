// Package kitcache memoizes values derived from an (alphabet, bound) pair.
//
// Entries are keyed by an xxHash64 fingerprint of both parts. Hash collisions
// are detected and handled: every entry also stores its full key, and entries
// sharing a hash are chained.
package kitcache

import (
	"sync"

	"github.com/arloliu/axe/internal/hash"
)

// Key identifies a cached value.
type Key struct {
	Alphabet string
	Bound    int
}

func (k Key) sum() uint64 {
	return hash.WithInt(hash.String(k.Alphabet), k.Bound)
}

type entry[V any] struct {
	key   Key
	value V
}

// Cache is a concurrency-safe memo table. Cached values must be immutable,
// because every caller receives the same value.
type Cache[V any] struct {
	mu         sync.RWMutex
	entries    map[uint64][]entry[V] // hash -> chain of entries with that hash
	count      int
	collisions int
	sum        func(Key) uint64
}

// New creates an empty cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{
		entries: make(map[uint64][]entry[V]),
		sum:     Key.sum,
	}
}

// Get returns the value cached for key, if any.
func (c *Cache[V]) Get(key Key) (V, bool) {
	h := c.sum(key)

	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lookup(h, key)
}

// GetOrCompute returns the cached value for key, computing and storing it with
// compute on a miss.
//
// Errors from compute are returned and not cached. compute runs without the
// lock held, so two goroutines may compute the same key concurrently; the first
// stored value wins and both callers receive it.
func (c *Cache[V]) GetOrCompute(key Key, compute func() (V, error)) (V, error) {
	h := c.sum(key)

	c.mu.RLock()
	v, ok := c.lookup(h, key)
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.lookup(h, key); ok {
		return existing, nil
	}

	chain := c.entries[h]
	if len(chain) > 0 {
		// Different key, same hash.
		c.collisions++
	}
	c.entries[h] = append(chain, entry[V]{key: key, value: v})
	c.count++

	return v, nil
}

// Len returns the number of cached values.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.count
}

// Collisions returns how many stored keys shared a hash with an earlier key.
func (c *Cache[V]) Collisions() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.collisions
}

// Reset drops every cached value.
func (c *Cache[V]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	c.count = 0
	c.collisions = 0
}

// lookup must be called with c.mu held.
func (c *Cache[V]) lookup(h uint64, key Key) (V, bool) {
	for _, e := range c.entries[h] {
		if e.key == key {
			return e.value, true
		}
	}

	var zero V

	return zero, false
}
