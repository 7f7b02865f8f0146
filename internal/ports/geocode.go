package ports

import "context"

// GeocodeCacheData represents one persisted cache row, keyed by the normalized query
type GeocodeCacheData struct {
	Normalized string
	Query      string
	Latitude   float64
	Longitude  float64
	Hits       int64
	UpdatedAt  int64 // epoch milliseconds
}

// GeocodeCacheRepository defines the contract for the durable geocoding cache table
type GeocodeCacheRepository interface {
	FindByNormalized(ctx context.Context, normalized string) (*GeocodeCacheData, error)
	Upsert(ctx context.Context, entry *GeocodeCacheData) error
	RecordHit(ctx context.Context, normalized string, updatedAt int64) error
	DeleteOlderThan(ctx context.Context, cutoff int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// GeocodeCandidate is a single match returned by an upstream geocoder
type GeocodeCandidate struct {
	Latitude    float64
	Longitude   float64
	DisplayName string
}

// GeocodingProvider defines the contract for upstream geocoding services.
// An empty slice with a nil error means the query matched nothing.
type GeocodingProvider interface {
	Search(ctx context.Context, query string) ([]GeocodeCandidate, error)
	GetProviderName() string
}
