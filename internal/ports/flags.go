package ports

import "context"

// FlagStore defines the contract for the externally managed runtime flag store
type FlagStore interface {
	GetFlags(ctx context.Context) (map[string]interface{}, error)
	// GetFlag returns the raw value of key, or a NotFound error when it is unset
	GetFlag(ctx context.Context, key string) (string, error)
}
