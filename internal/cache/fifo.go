package cache

import "sync"

// FIFO is a generic bounded cache that evicts in insertion order.
// When an insertion takes the cache past its capacity, the single oldest
// entry is dropped. Lookups never change eviction order.
//
// FIFO is safe for concurrent use.
// FIFO must not be copied after creation (has mutex).
type FIFO[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*fifoEntry[K, V]
	order    insertionQueue[K]
	capacity int
	onEvict  func(K, V)

	hits      uint64
	misses    uint64
	evictions uint64
}

// fifoEntry holds a cached value and its position in the insertion queue.
type fifoEntry[K comparable, V any] struct {
	value V
	node  *queueNode[K]
}

// NewFIFO creates a cache holding at most capacity entries.
// A capacity of 0 or less means unlimited.
func NewFIFO[K comparable, V any](capacity int) *FIFO[K, V] {
	return &FIFO[K, V]{
		entries:  make(map[K]*fifoEntry[K, V]),
		capacity: capacity,
	}
}

// OnEvict registers fn to be called with each entry removed by capacity
// eviction. fn runs with the cache locked and must not call back into it.
func (c *FIFO[K, V]) OnEvict(fn func(K, V)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.onEvict = fn
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *FIFO[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	return entry.value, true
}

// Set stores a value in the cache. Replacing the value of an existing key
// keeps that key's original insertion position.
func (c *FIFO[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		entry.value = value
		return
	}
	c.insert(key, value)
}

// GetOrCreate returns the cached value for key, or calls create, stores
// its result and returns it. create is called under lock, so concurrent
// callers never create the same key twice.
func (c *FIFO[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.hits++
		return entry.value
	}
	c.misses++

	value := create()
	c.insert(key, value)
	return value
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *FIFO[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return false
	}
	c.order.Remove(entry.node)
	delete(c.entries, key)
	return true
}

// Clear removes all entries from the cache.
func (c *FIFO[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*fifoEntry[K, V])
	c.order.Clear()
}

// Len returns the number of entries in the cache.
func (c *FIFO[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Capacity returns the maximum number of entries (0 = unlimited).
func (c *FIFO[K, V]) Capacity() int {
	return c.capacity
}

// Oldest returns the key that will be evicted next.
func (c *FIFO[K, V]) Oldest() (K, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Oldest()
}

// Stats returns cache statistics.
func (c *FIFO[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	var hitRate float64
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}
	return Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Hits:      c.hits,
		Misses:    c.misses,
		HitRate:   hitRate,
		Evictions: c.evictions,
	}
}

// insert adds a new key and evicts the oldest entry if over capacity.
// Caller must hold c.mu.
func (c *FIFO[K, V]) insert(key K, value V) {
	c.entries[key] = &fifoEntry[K, V]{
		value: value,
		node:  c.order.PushFront(key),
	}

	for c.capacity > 0 && len(c.entries) > c.capacity {
		oldest, ok := c.order.RemoveOldest()
		if !ok {
			return
		}
		evicted := c.entries[oldest]
		delete(c.entries, oldest)
		c.evictions++
		if c.onEvict != nil {
			c.onEvict(oldest, evicted.value)
		}
	}
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries (0 = unlimited).
	Capacity int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that did not.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of entries dropped for capacity.
	Evictions uint64
}
