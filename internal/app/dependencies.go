package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"weatheredge.app/internal/adapters/database"
	"weatheredge.app/internal/adapters/external"
	"weatheredge.app/internal/adapters/infrastructure"
	"weatheredge.app/internal/config"
	"weatheredge.app/internal/ports"
	"weatheredge.app/pkg/errors"
)

type DependencyContainer struct {
	config  *config.Config
	db      *gorm.DB
	ports   *ports.ApplicationPorts
	metrics *infrastructure.PrometheusMetricsAdapter
	closers []io.Closer
}

// NewDependencyContainer opens the configured database and builds every port
func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{config: cfg}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

// NewDependencyContainerWithDB builds the ports over an already opened database
func NewDependencyContainerWithDB(cfg *config.Config, db *gorm.DB) (*DependencyContainer, error) {
	container := &DependencyContainer{config: cfg}

	if err := container.runMigrations(db); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	container.db = db

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DatabaseDriverPostgres:
		return postgres.Open(cfg.GetDSN()), nil
	case config.DatabaseDriverSQLite:
		return sqlite.Open(cfg.GetDSN()), nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported database driver: %s", cfg.Driver.String()), nil)
	}
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...", "driver", c.config.Database.Driver.String())

	dialector, err := openDialector(c.config.Database)
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	if err := c.runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) runMigrations(db *gorm.DB) error {
	slog.Info("Running database migrations...")

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	slog.Info("Database migrations completed successfully")
	return nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	geocodeCache := database.NewGeocodeCacheRepositoryAdapter(c.db)
	favoriteRepo := database.NewFavoriteRepositoryAdapter(c.db)

	logger := infrastructure.NewSlogLoggerAdapter(nil)

	// Upstream traffic goes to its own audit log when a file is configured
	var auditLogger ports.Logger = logger
	geocoderCfg := c.config.Geocoder
	if geocoderCfg.EnableLogging && geocoderCfg.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(geocoderCfg.LogFilePath)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			auditLogger = fileLogger
			slog.Info("Upstream audit logging enabled", "path", geocoderCfg.LogFilePath)
		}
	}

	c.metrics = infrastructure.NewPrometheusMetricsAdapter()

	nominatim, err := external.NewNominatimProviderAdapter(external.NominatimProviderParams{
		BaseURL:     geocoderCfg.BaseURL,
		UserAgent:   geocoderCfg.UserAgent,
		Timeout:     time.Duration(geocoderCfg.TimeoutSeconds) * time.Second,
		MinInterval: time.Duration(geocoderCfg.MinIntervalMS) * time.Millisecond,
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("create geocoding provider: %w", err)
	}
	var geocoder ports.GeocodingProvider = external.NewGeocodingProviderMetricsDecorator(nominatim, c.metrics)

	var forecaster ports.ForecastProvider = external.NewForecastProviderMetricsDecorator(
		external.NewOpenMeteoProviderAdapter(external.OpenMeteoProviderParams{
			BaseURL: c.config.Forecast.BaseURL,
			Timeout: time.Duration(c.config.Forecast.TimeoutSeconds) * time.Second,
			Logger:  logger,
		}), c.metrics)

	if geocoderCfg.EnableLogging {
		geocoder = external.NewGeocodingProviderLoggingDecorator(geocoder, auditLogger)
		forecaster = external.NewForecastProviderLoggingDecorator(forecaster, auditLogger)
		slog.Info("Upstream provider logging enabled")
	}

	factory := external.NewCacheProviderFactory()
	forecastCache, err := factory.CreateCacheProvider(&c.config.Cache,
		time.Duration(c.config.Forecast.CacheTTLms)*time.Millisecond)
	if err != nil {
		return fmt.Errorf("create cache provider: %w", err)
	}
	c.track(forecastCache)
	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"redis_addr", c.config.Cache.Redis.Addr)

	flagStore, err := factory.CreateFlagStore(&c.config.FlagStore, &c.config.Cache.Redis)
	if err != nil {
		return fmt.Errorf("create flag store: %w", err)
	}
	c.track(flagStore)
	slog.Info("Flag store initialized", "type", c.config.FlagStore.Type.String())

	healthChecks := []ports.HealthChecker{
		infrastructure.NewDatabaseHealthChecker(c.db, geocodeCache),
	}
	if pinger, ok := flagStore.(ports.Pinger); ok {
		healthChecks = append(healthChecks,
			infrastructure.NewPingHealthChecker("flag_store", c.config.FlagStore.Type.String(), pinger))
	}
	if pinger, ok := forecastCache.(ports.Pinger); ok {
		healthChecks = append(healthChecks,
			infrastructure.NewPingHealthChecker("cache", c.config.Cache.Type.String(), pinger))
	}

	c.ports = &ports.ApplicationPorts{
		GeocodeCache:       geocodeCache,
		GeocodingProvider:  geocoder,
		FavoriteRepository: favoriteRepo,
		ForecastProvider:   forecaster,
		ForecastCache:      forecastCache,
		FlagStore:          flagStore,
		Metrics:            c.metrics,
		Logger:             logger,
		AuditLogger:        auditLogger,
		HealthChecks:       healthChecks,
		Database:           c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

// track registers adapters holding network connections for Cleanup
func (c *DependencyContainer) track(v interface{}) {
	if closer, ok := v.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Metrics returns the Prometheus adapter backing the Metrics port
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetricsAdapter {
	return c.metrics
}

// Cleanup closes Redis clients and the database pool
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil

	if c.db != nil {
		if db, err := c.db.DB(); err == nil {
			if err := db.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
