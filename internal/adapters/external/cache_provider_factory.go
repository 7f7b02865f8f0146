package external

import (
	"fmt"
	"time"

	"weatheredge.app/internal/config"
	"weatheredge.app/internal/ports"
	"weatheredge.app/pkg/errors"
)

type CacheProviderFactory struct{}

func NewCacheProviderFactory() *CacheProviderFactory {
	return &CacheProviderFactory{}
}

// CreateCacheProvider builds the forecast cache; maxAge bounds in-memory entries
func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig, maxAge time.Duration) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryCacheProvider(cfg.MemorySize, maxAge), nil
	case config.CacheTypeRedis:
		provider, err := NewRedisCacheProviderAdapter(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}

// CreateFlagStore builds the runtime flag store
func (f *CacheProviderFactory) CreateFlagStore(cfg *config.FlagStoreConfig, redisCfg *config.RedisConfig) (ports.FlagStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("flag store config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		store, err := NewMemoryFlagStoreFromJSON(cfg.Seed)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.CacheTypeRedis:
		store, err := NewRedisFlagStoreAdapter(redisCfg, cfg.RedisKey)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported flag store type: %s", cfg.Type.String()), nil)
	}
}
