package cache

import "time"

// LayeredCache reads through a fast tier into a slow tier and writes to
// both. Misses promoted from the slow tier are backfilled into the fast one.
type LayeredCache struct {
	fast Cache
	slow Cache
}

// NewLayeredCache creates a two-tier cache.
func NewLayeredCache(fast, slow Cache) *LayeredCache {
	return &LayeredCache{fast: fast, slow: slow}
}

// Get checks the fast tier first, then the slow tier
func (c *LayeredCache) Get(key string) ([]byte, bool) {
	if val, ok := c.fast.Get(key); ok {
		return val, true
	}
	if val, ok := c.slow.Get(key); ok {
		_ = c.fast.Set(key, val, 0)
		return val, true
	}
	return nil, false
}

// Set writes to both tiers
func (c *LayeredCache) Set(key string, value []byte, ttl time.Duration) error {
	if err := c.fast.Set(key, value, ttl); err != nil {
		return err
	}
	return c.slow.Set(key, value, ttl)
}

// Delete removes the key from both tiers
func (c *LayeredCache) Delete(key string) error {
	fastErr := c.fast.Delete(key)
	slowErr := c.slow.Delete(key)
	if fastErr != nil {
		return fastErr
	}
	return slowErr
}

// Clear empties both tiers
func (c *LayeredCache) Clear() error {
	fastErr := c.fast.Clear()
	slowErr := c.slow.Clear()
	if fastErr != nil {
		return fastErr
	}
	return slowErr
}
