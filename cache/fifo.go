// Package cache provides small bounded caches used by the brush engine.
package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultCapacity is the default maximum number of entries.
const DefaultCapacity = 50

// Stats holds a snapshot of cache statistics.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// FIFO is a bounded cache with oldest-first eviction.
//
// Eviction is insertion-ordered, not recency-ordered: when the cache is
// full, the entry inserted longest ago is removed regardless of how
// recently it was read. The brush engine favors this over LRU because a
// gesture reuses at most a handful of keys and insertion order is a
// good enough proxy for staleness.
//
// FIFO is safe for concurrent use, although the brush hot path only
// ever touches it from the single host UI goroutine.
type FIFO[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	entries  map[K]V
	order    []K // insertion order, oldest first

	// Statistics (atomic for zero-allocation reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewFIFO creates a FIFO cache holding at most capacity entries.
// If capacity <= 0, DefaultCapacity is used.
func NewFIFO[K comparable, V any](capacity int) *FIFO[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &FIFO[K, V]{
		capacity: capacity,
		entries:  make(map[K]V, capacity),
		order:    make([]K, 0, capacity),
	}
}

// Get retrieves a cached value by key.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *FIFO[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	v, ok := c.entries[key]
	c.mu.Unlock()

	if ok {
		c.hits.Add(1)
		return v, true
	}
	c.misses.Add(1)
	var zero V
	return zero, false
}

// Set stores a value in the cache. If the cache is full, the oldest
// inserted entry is evicted first. Re-setting an existing key updates
// the value without changing its insertion position.
func (c *FIFO[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// GetOrCreate returns a cached value or creates it using the provided
// function. If create fails, nothing is inserted and the error is
// returned; the cache is left exactly as it was.
func (c *FIFO[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[key]; ok {
		c.hits.Add(1)
		return v, nil
	}
	c.misses.Add(1)

	v, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.set(key, v)
	return v, nil
}

// set inserts under the lock, evicting the oldest entry when full.
func (c *FIFO[K, V]) set(key K, value V) {
	if _, ok := c.entries[key]; ok {
		c.entries[key] = value
		return
	}
	for len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		c.evictions.Add(1)
	}
	c.entries[key] = value
	c.order = append(c.order, key)
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *FIFO[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		return false
	}
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes all entries from the cache.
func (c *FIFO[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]V, c.capacity)
	c.order = c.order[:0]
}

// Len returns the current number of entries.
func (c *FIFO[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *FIFO[K, V]) Capacity() int { return c.capacity }

// Stats returns current cache statistics.
func (c *FIFO[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
		HitRate:   hitRate,
	}
}

// ResetStats resets all statistics counters to zero.
func (c *FIFO[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
