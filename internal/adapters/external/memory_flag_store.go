package external

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"weatheredge.app/pkg/errors"
)

// MemoryFlagStore keeps runtime flags in process. It backs local development
// and tests; production deployments point FLAG_STORE_TYPE at Redis.
type MemoryFlagStore struct {
	mu    sync.RWMutex
	flags map[string]interface{}
}

func NewMemoryFlagStore(seed map[string]interface{}) *MemoryFlagStore {
	flags := make(map[string]interface{}, len(seed))
	for k, v := range seed {
		flags[k] = v
	}
	return &MemoryFlagStore{flags: flags}
}

// NewMemoryFlagStoreFromJSON seeds the store from a JSON object; empty input yields an empty store
func NewMemoryFlagStoreFromJSON(seed string) (*MemoryFlagStore, error) {
	if seed == "" {
		return NewMemoryFlagStore(nil), nil
	}
	var flags map[string]interface{}
	if err := json.Unmarshal([]byte(seed), &flags); err != nil {
		return nil, errors.NewConfigurationError("FLAG_STORE_SEED must be a JSON object", err)
	}
	return NewMemoryFlagStore(flags), nil
}

func (s *MemoryFlagStore) GetFlags(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]interface{}, len(s.flags))
	for k, v := range s.flags {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryFlagStore) GetFlag(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	v, ok := s.flags[key]
	s.mu.RUnlock()

	if !ok || v == nil {
		return "", errors.NewNotFoundError(fmt.Sprintf("flag %s not set", key))
	}
	if str, isString := v.(string); isString {
		return str, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return "", errors.NewValidationError(fmt.Sprintf("flag %s is not serializable", key))
	}
	return string(raw), nil
}

// Set stores a flag value
func (s *MemoryFlagStore) Set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[key] = value
}

func (s *MemoryFlagStore) Ping(ctx context.Context) error {
	return nil
}
