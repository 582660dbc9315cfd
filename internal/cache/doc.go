// Package cache provides a generic, bounded insertion-order cache.
//
// # FIFO[K, V]
//
// FIFO evicts the entry that was inserted first once the cache grows past
// its capacity. Reading an entry does not refresh it: eviction order is
// insertion order, not access recency.
//
//	c := cache.NewFIFO[string, *Path](100)
//	p := c.GetOrCreate("M0 0 L10 10", compile)
//
// # Thread Safety
//
// FIFO is safe for concurrent use.
// It must not be copied after creation (it contains a mutex).
package cache
