package external

import (
	"context"
	"time"

	"weatheredge.app/internal/ports"
)

// GeocodingProviderMetricsDecorator records call outcome and latency of a geocoder
type GeocodingProviderMetricsDecorator struct {
	provider ports.GeocodingProvider
	metrics  ports.MetricsCollector
}

func NewGeocodingProviderMetricsDecorator(provider ports.GeocodingProvider, metrics ports.MetricsCollector) *GeocodingProviderMetricsDecorator {
	return &GeocodingProviderMetricsDecorator{provider: provider, metrics: metrics}
}

func (d *GeocodingProviderMetricsDecorator) Search(ctx context.Context, query string) ([]ports.GeocodeCandidate, error) {
	start := time.Now()
	candidates, err := d.provider.Search(ctx, query)
	d.metrics.RecordUpstreamCall(ctx, d.provider.GetProviderName(), err == nil, time.Since(start))
	return candidates, err
}

func (d *GeocodingProviderMetricsDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}

// ForecastProviderMetricsDecorator records call outcome and latency of a forecast provider
type ForecastProviderMetricsDecorator struct {
	provider ports.ForecastProvider
	metrics  ports.MetricsCollector
}

func NewForecastProviderMetricsDecorator(provider ports.ForecastProvider, metrics ports.MetricsCollector) *ForecastProviderMetricsDecorator {
	return &ForecastProviderMetricsDecorator{provider: provider, metrics: metrics}
}

func (d *ForecastProviderMetricsDecorator) GetForecast(ctx context.Context, lat, lon float64) ([]byte, error) {
	start := time.Now()
	body, err := d.provider.GetForecast(ctx, lat, lon)
	d.metrics.RecordUpstreamCall(ctx, d.provider.GetProviderName(), err == nil, time.Since(start))
	return body, err
}

func (d *ForecastProviderMetricsDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
