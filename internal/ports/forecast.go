package ports

import "context"

// ForecastProvider defines the contract for upstream forecast services.
// The payload is returned verbatim so it can be cached and proxied as-is.
type ForecastProvider interface {
	GetForecast(ctx context.Context, lat, lon float64) ([]byte, error)
	GetProviderName() string
}
