package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Geocoding
	GeocodeCache      GeocodeCacheRepository
	GeocodingProvider GeocodingProvider

	// Favorites
	FavoriteRepository FavoriteRepository

	// Forecast
	ForecastProvider ForecastProvider
	ForecastCache    CacheProvider

	// Runtime flags
	FlagStore FlagStore

	// Infrastructure
	Metrics      MetricsCollector
	Logger       Logger
	AuditLogger  Logger
	HealthChecks []HealthChecker
	Database     interface{}
}
