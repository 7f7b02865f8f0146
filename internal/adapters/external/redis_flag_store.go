package external

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"weatheredge.app/internal/config"
	"weatheredge.app/internal/core/flags"
	"weatheredge.app/pkg/errors"
)

// RedisFlagStoreAdapter reads runtime flags from a single Redis hash. Field
// values are JSON-decoded when possible so operators can store numbers and
// booleans with HSET.
type RedisFlagStoreAdapter struct {
	client *redis.Client
	key    string
}

func NewRedisFlagStoreAdapter(cfg *config.RedisConfig, key string) (*RedisFlagStoreAdapter, error) {
	if key == "" {
		return nil, errors.NewConfigurationError("flag store redis key cannot be empty", nil)
	}

	client, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &RedisFlagStoreAdapter{client: client, key: key}, nil
}

func (s *RedisFlagStoreAdapter) GetFlags(ctx context.Context) (map[string]interface{}, error) {
	raw, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to read flags from Redis", err)
	}

	out := make(map[string]interface{}, len(raw))
	for field, value := range raw {
		out[field] = flags.DecodeValue(value)
	}
	return out, nil
}

func (s *RedisFlagStoreAdapter) GetFlag(ctx context.Context, key string) (string, error) {
	value, err := s.client.HGet(ctx, s.key, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errors.NewNotFoundError(fmt.Sprintf("flag %s not set", key))
		}
		return "", errors.NewExternalAPIError("failed to read flag from Redis", err)
	}
	return value, nil
}

func (s *RedisFlagStoreAdapter) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.NewExternalAPIError("Redis ping failed", err)
	}
	return nil
}

func (s *RedisFlagStoreAdapter) Close() error {
	return s.client.Close()
}
