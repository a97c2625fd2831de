package dataset

import "sync"

type cacheKey struct {
	name       string
	unshuffled bool
}

// Cache memoizes one dataset per declared source-list name and shuffle
// mode, so repeated requests for an expensive expansion reuse the first
// result. Safe for concurrent callers.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]*Dataset
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]*Dataset)}
}

// Get returns the cached dataset for the key, running build on the first
// request. A failed build is not cached.
func (c *Cache) Get(name string, unshuffled bool, build func() (*Dataset, error)) (*Dataset, error) {
	key := cacheKey{name: name, unshuffled: unshuffled}

	c.mu.Lock()
	defer c.mu.Unlock()
	if ds, ok := c.entries[key]; ok {
		return ds, nil
	}

	ds, err := build()
	if err != nil {
		return nil, err
	}
	c.entries[key] = ds
	return ds, nil
}

var defaultCache = NewCache()

// Get memoizes against the process-wide cache.
func Get(name string, unshuffled bool, build func() (*Dataset, error)) (*Dataset, error) {
	return defaultCache.Get(name, unshuffled, build)
}
