package external

import (
	"context"
	"time"

	"weatheredge.app/internal/ports"
)

// GeocodingProviderLoggingDecorator writes request/response audit events around a geocoder
type GeocodingProviderLoggingDecorator struct {
	provider ports.GeocodingProvider
	logger   ports.Logger
}

func NewGeocodingProviderLoggingDecorator(provider ports.GeocodingProvider, logger ports.Logger) *GeocodingProviderLoggingDecorator {
	return &GeocodingProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

func (d *GeocodingProviderLoggingDecorator) Search(ctx context.Context, query string) ([]ports.GeocodeCandidate, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Geocoding API request started",
		ports.F("provider", providerName),
		ports.F("query", query),
		ports.F("event", "request"))

	startTime := time.Now()
	candidates, err := d.provider.Search(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Geocoding API request failed",
			ports.F("provider", providerName),
			ports.F("query", query),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	fields := []ports.Field{
		ports.F("provider", providerName),
		ports.F("query", query),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("results", len(candidates)),
	}
	if len(candidates) > 0 {
		fields = append(fields,
			ports.F("latitude", candidates[0].Latitude),
			ports.F("longitude", candidates[0].Longitude),
			ports.F("display_name", candidates[0].DisplayName))
	}
	d.logger.Info("Geocoding API request completed", fields...)

	return candidates, nil
}

// GetProviderName returns the wrapped name unchanged; it is reported to API clients
func (d *GeocodingProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

// ForecastProviderLoggingDecorator decorates forecast providers with structured logging
type ForecastProviderLoggingDecorator struct {
	provider ports.ForecastProvider
	logger   ports.Logger
}

func NewForecastProviderLoggingDecorator(provider ports.ForecastProvider, logger ports.Logger) *ForecastProviderLoggingDecorator {
	return &ForecastProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

func (d *ForecastProviderLoggingDecorator) GetForecast(ctx context.Context, lat, lon float64) ([]byte, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Forecast API request started",
		ports.F("provider", providerName),
		ports.F("lat", lat),
		ports.F("lon", lon),
		ports.F("event", "request"))

	startTime := time.Now()
	body, err := d.provider.GetForecast(ctx, lat, lon)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Forecast API request failed",
			ports.F("provider", providerName),
			ports.F("lat", lat),
			ports.F("lon", lon),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Forecast API request completed",
		ports.F("provider", providerName),
		ports.F("lat", lat),
		ports.F("lon", lon),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("bytes", len(body)))

	return body, nil
}

func (d *ForecastProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
