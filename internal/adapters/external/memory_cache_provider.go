package external

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"weatheredge.app/pkg/errors"
)

const (
	defaultMemoryCacheSize   = 1024
	defaultMemoryCacheMaxAge = 24 * time.Hour
)

// MemoryCacheProvider is a bounded in-process cache. The LRU caps both entry
// count and maximum age; each entry additionally expires at its own TTL.
type MemoryCacheProvider struct {
	lru *expirable.LRU[string, memoryCacheItem]
	now func() time.Time
}

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryCacheProvider(size int, maxAge time.Duration) *MemoryCacheProvider {
	if size <= 0 {
		size = defaultMemoryCacheSize
	}
	if maxAge <= 0 {
		maxAge = defaultMemoryCacheMaxAge
	}
	return &MemoryCacheProvider{
		lru: expirable.NewLRU[string, memoryCacheItem](size, nil, maxAge),
		now: time.Now,
	}
}

func (c *MemoryCacheProvider) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	item, ok := c.lru.Get(key)
	if !ok {
		return nil, errors.NewNotFoundError("cache miss")
	}
	if c.now().After(item.expiresAt) {
		c.lru.Remove(key)
		return nil, errors.NewNotFoundError("cache miss")
	}

	return item.data, nil
}

func (c *MemoryCacheProvider) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	c.lru.Add(key, memoryCacheItem{
		data:      value,
		expiresAt: c.now().Add(ttl),
	})
	return nil
}

func (c *MemoryCacheProvider) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	c.lru.Remove(key)
	return nil
}

// Len reports the number of entries currently held
func (c *MemoryCacheProvider) Len() int {
	return c.lru.Len()
}

// Ping always succeeds; the cache lives in process
func (c *MemoryCacheProvider) Ping(ctx context.Context) error {
	return nil
}
