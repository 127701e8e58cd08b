package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// BuildFunc loads the reference inventories.
type BuildFunc func(ctx context.Context) (*References, error)

// cachedReferences is one entry of the cache.
type cachedReferences struct {
	refs  *References
	built time.Time
}

// Cache holds built references keyed by their source locations.
type Cache struct {
	ttl     time.Duration
	now     func() time.Time
	mu      sync.RWMutex
	entries map[string]cachedReferences
	sf      singleflight.Group
}

// NewCache creates a cache. A zero ttl disables caching: every call builds.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cachedReferences),
	}
}

func (c *Cache) fresh(e cachedReferences) bool {
	if c.ttl <= 0 {
		return false
	}
	return c.now().Sub(e.built) <= c.ttl
}

// GetOrBuild returns the references stored under key, or builds them if they are
// absent or expired. Concurrent callers for the same key share one build.
func (c *Cache) GetOrBuild(ctx context.Context, key string, build BuildFunc) (*References, error) {
	// Fast path: check if entry exists and is fresh
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && c.fresh(e) {
		return e.refs, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		c.mu.RLock()
		e, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && c.fresh(e) {
			return e.refs, nil
		}

		refs, err := build(ctx)
		if err != nil {
			return nil, err
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[key] = cachedReferences{refs: refs, built: c.now()}
			c.mu.Unlock()
		}
		return refs, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*References), nil
}

// Invalidate drops the entry stored under key.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
