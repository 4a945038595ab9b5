package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// memoryCleanupInterval is how often expired response bodies are purged
const memoryCleanupInterval = 10 * time.Minute

// MemoryCache holds API response bodies in memory for the hot path:
// repeated queries within a run never touch disk or the network.
type MemoryCache struct {
	defaultTTL time.Duration
	entries    *gocache.Cache
}

// NewMemoryCache creates a memory cache with the given default TTL
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		defaultTTL: defaultTTL,
		entries:    gocache.New(defaultTTL, memoryCleanupInterval),
	}
}

// Get retrieves a response body
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	val, found := c.entries.Get(key)
	if !found {
		return nil, false
	}
	body, ok := val.([]byte)
	return body, ok
}

// Set stores a response body. A zero ttl uses the cache default.
func (c *MemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	c.entries.Set(key, value, ttl)
	return nil
}

// Delete removes a response body
func (c *MemoryCache) Delete(key string) error {
	c.entries.Delete(key)
	return nil
}

// Clear drops every entry
func (c *MemoryCache) Clear() error {
	c.entries.Flush()
	return nil
}
