package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"weatheredge.app/internal/adapters/api"
	"weatheredge.app/internal/adapters/infrastructure"
	"weatheredge.app/internal/config"
	"weatheredge.app/internal/core/favorites"
	"weatheredge.app/internal/core/flags"
	"weatheredge.app/internal/core/forecast"
	"weatheredge.app/internal/core/geocode"
	"weatheredge.app/internal/core/maintenance"
	"weatheredge.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	flagService        *flags.Service
	geocodeUseCase     *geocode.UseCase
	maintenanceUseCase *maintenance.UseCase
	favoritesUseCase   *favorites.UseCase
	forecastUseCase    *forecast.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps            *DependencyContainer
	ports           *ports.ApplicationPorts
	cleanupInterval time.Duration
	stopChan        chan struct{}
	stopOnce        sync.Once
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	slog.Info("Initializing application ports...")
	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config:          cfg,
		deps:            deps,
		ports:           deps.ApplicationPorts(),
		cleanupInterval: time.Duration(cfg.Maintenance.CleanupIntervalMinutes) * time.Minute,
		stopChan:        make(chan struct{}),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	geocodeTTL := time.Duration(a.config.Geocoder.CacheTTLms) * time.Millisecond
	forecastTTL := time.Duration(a.config.Forecast.CacheTTLms) * time.Millisecond

	flagService, err := flags.NewService(flags.ServiceDependencies{
		Store:    a.ports.FlagStore,
		Defaults: flags.Defaults(geocodeTTL, forecastTTL),
		Logger:   a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create flag service: %w", err)
	}
	a.flagService = flagService

	geocodeUseCase, err := geocode.NewUseCase(geocode.UseCaseDependencies{
		Cache:      a.ports.GeocodeCache,
		Provider:   a.ports.GeocodingProvider,
		Flags:      flagService,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
		DefaultTTL: geocodeTTL,
	})
	if err != nil {
		return fmt.Errorf("create geocode use case: %w", err)
	}
	a.geocodeUseCase = geocodeUseCase

	maintenanceUseCase, err := maintenance.NewUseCase(maintenance.UseCaseDependencies{
		Cache:       a.ports.GeocodeCache,
		Resolver:    geocodeUseCase,
		Flags:       flagService,
		Logger:      a.ports.Logger,
		Production:  a.config.Server.IsProduction(),
		Concurrency: a.config.Admin.PrewarmConcurrency,
		DefaultTTL:  geocodeTTL,
	})
	if err != nil {
		return fmt.Errorf("create maintenance use case: %w", err)
	}
	a.maintenanceUseCase = maintenanceUseCase

	favoritesUseCase, err := favorites.NewUseCase(favorites.UseCaseDependencies{
		Repository: a.ports.FavoriteRepository,
		Logger:     a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create favorites use case: %w", err)
	}
	a.favoritesUseCase = favoritesUseCase

	forecastUseCase, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		Provider:   a.ports.ForecastProvider,
		Cache:      a.ports.ForecastCache,
		Flags:      flagService,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
		DefaultTTL: forecastTTL,
	})
	if err != nil {
		return fmt.Errorf("create forecast use case: %w", err)
	}
	a.forecastUseCase = forecastUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	if err := api.RegisterValidators(); err != nil {
		slog.Warn("Failed to register binding validators", "error", err)
	}

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers: a.ports.HealthChecks,
		Info: map[string]interface{}{
			"environment": a.config.Server.Environment,
			"db_driver":   a.config.Database.Driver.String(),
			"cache":       a.config.Cache.Type.String(),
			"flag_store":  a.config.FlagStore.Type.String(),
		},
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		GeocodeUseCase:      a.geocodeUseCase,
		MaintenanceUseCase:  a.maintenanceUseCase,
		FavoritesUseCase:    a.favoritesUseCase,
		ForecastUseCase:     a.forecastUseCase,
		ConfigService:       a.flagService,
		MetricsCollector:    a.deps.Metrics(),
		SystemHealthChecker: systemHealthChecker,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	go a.startCleanupScheduler(ctx)

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// startCleanupScheduler periodically evicts stale geocode rows. It never runs in
// production, matching the admin endpoint guard.
func (a *Application) startCleanupScheduler(ctx context.Context) {
	if a.cleanupInterval <= 0 {
		return
	}
	if a.config.Server.IsProduction() {
		slog.Warn("Scheduled cache cleanup is not allowed in production; scheduler disabled")
		return
	}

	slog.Info("Starting cache cleanup scheduler...", "interval", a.cleanupInterval.String())
	ticker := time.NewTicker(a.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Cleanup scheduler stopped due to context cancellation")
			return
		case <-a.stopChan:
			slog.Info("Cleanup scheduler stopped")
			return
		case <-ticker.C:
			a.runCleanup(ctx)
		}
	}
}

func (a *Application) runCleanup(ctx context.Context) {
	result, err := a.maintenanceUseCase.Evict(ctx, maintenance.EvictParams{})
	if err != nil {
		slog.Error("Scheduled cache cleanup failed", "error", err)
		return
	}
	slog.Info("Scheduled cache cleanup finished", "deleted", result.Deleted, "cutoff", result.Cutoff)
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	a.stopOnce.Do(func() { close(a.stopChan) })

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	// let in-flight hit writes and upstream fetches land before stores close
	a.geocodeUseCase.Drain()
	a.forecastUseCase.Drain()

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error releasing resources", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetGeocodeUseCase returns the geocode use case for testing
func (a *Application) GetGeocodeUseCase() *geocode.UseCase {
	return a.geocodeUseCase
}

// GetMaintenanceUseCase returns the maintenance use case for testing
func (a *Application) GetMaintenanceUseCase() *maintenance.UseCase {
	return a.maintenanceUseCase
}
