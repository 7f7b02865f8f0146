package ports

import (
	"context"
	"time"
)

// CacheProvider defines the contract for short-lived byte caching
type CacheProvider interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
