package layers

import "github.com/wikilayers/layers/internal/cache"

// DefaultPathCacheSize is the number of compiled paths a PathCache keeps
// unless configured otherwise.
const DefaultPathCacheSize = 100

// PathCacheOption configures a PathCache during creation.
type PathCacheOption func(*pathCacheOptions)

type pathCacheOptions struct {
	capacity int
}

// WithCacheCapacity sets the maximum number of cached paths. Values below
// 1 are ignored.
func WithCacheCapacity(n int) PathCacheOption {
	return func(o *pathCacheOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// PathCache maps SVG path data strings to compiled paths so that a shape
// drawn or hit-tested every frame is parsed once. When full it drops the
// path that was compiled first, regardless of how recently it was used.
type PathCache struct {
	paths *cache.FIFO[string, *Path]
}

// NewPathCache creates an empty cache.
//
// Example:
//
//	pc := layers.NewPathCache(layers.WithCacheCapacity(256))
//	p := pc.Path("M0 0 L24 0 L12 20 Z")
func NewPathCache(opts ...PathCacheOption) *PathCache {
	o := pathCacheOptions{capacity: DefaultPathCacheSize}
	for _, opt := range opts {
		opt(&o)
	}

	paths := cache.NewFIFO[string, *Path](o.capacity)
	paths.OnEvict(func(data string, _ *Path) {
		Logger().Debug("layers: path cache eviction", "pathLen", len(data), "capacity", o.capacity)
	})
	return &PathCache{paths: paths}
}

// Path returns the compiled path for data, compiling and caching it on
// first use. Repeated calls with the same string return the same *Path.
// Malformed data compiles to the portion that parsed; the problem is
// logged and the result cached like any other.
func (c *PathCache) Path(data string) *Path {
	return c.paths.GetOrCreate(data, func() *Path {
		p, err := ParseSVGPath(data)
		if err != nil {
			Logger().Warn("layers: custom shape path data", "err", err)
		}
		return p
	})
}

// Clear empties the cache.
func (c *PathCache) Clear() {
	c.paths.Clear()
}

// Len returns the number of cached paths.
func (c *PathCache) Len() int {
	return c.paths.Len()
}

// Stats returns hit, miss and eviction counters.
func (c *PathCache) Stats() cache.Stats {
	return c.paths.Stats()
}
