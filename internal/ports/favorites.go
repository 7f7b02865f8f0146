package ports

import "context"

// FavoriteData represents a saved city for a device
type FavoriteData struct {
	DeviceID string
	City     string
	Lat      float64
	Lon      float64
	AddedAt  int64 // epoch milliseconds
}

// FavoriteRepository defines the contract for device-scoped favorites persistence
type FavoriteRepository interface {
	ListByDevice(ctx context.Context, deviceID string) ([]*FavoriteData, error)
	AddIfAbsent(ctx context.Context, fav *FavoriteData) error
	Remove(ctx context.Context, deviceID, city string) error
}
