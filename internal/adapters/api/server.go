// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weatheredge.app/internal/core/favorites"
	"weatheredge.app/internal/core/forecast"
	"weatheredge.app/internal/core/geocode"
	"weatheredge.app/internal/core/maintenance"
	"weatheredge.app/internal/ports"
	"weatheredge.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router              *gin.Engine
	config              ServerConfig
	geocodeUseCase      GeocodeUseCase
	maintenanceUseCase  MaintenanceUseCase
	favoritesUseCase    FavoritesUseCase
	forecastUseCase     ForecastUseCase
	configService       ConfigService
	metricsCollector    MetricsCollector
	systemHealthChecker ports.SystemHealthChecker
}

// Use case interfaces that the HTTP adapter depends on
type GeocodeUseCase interface {
	Resolve(ctx context.Context, request geocode.Request) (*geocode.Result, error)
}

type MaintenanceUseCase interface {
	Evict(ctx context.Context, params maintenance.EvictParams) (*maintenance.EvictResult, error)
	Prewarm(ctx context.Context, params maintenance.PrewarmParams) (*maintenance.PrewarmResult, error)
}

type FavoritesUseCase interface {
	List(ctx context.Context, deviceID string) ([]favorites.Favorite, error)
	Add(ctx context.Context, request favorites.AddRequest) ([]favorites.Favorite, error)
	Remove(ctx context.Context, deviceID, city string) error
}

type ForecastUseCase interface {
	GetForecast(ctx context.Context, request forecast.Request) (*forecast.Forecast, error)
}

type ConfigService interface {
	Merged(ctx context.Context) map[string]interface{}
}

type MetricsCollector interface {
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
	Handler() http.Handler
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	GeocodeUseCase      GeocodeUseCase
	MaintenanceUseCase  MaintenanceUseCase
	FavoritesUseCase    FavoritesUseCase
	ForecastUseCase     ForecastUseCase
	ConfigService       ConfigService
	MetricsCollector    MetricsCollector
	SystemHealthChecker ports.SystemHealthChecker
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(), requestMetrics(opts.MetricsCollector))

	server := &HTTPServerAdapter{
		router:              router,
		config:              opts.Config,
		geocodeUseCase:      opts.GeocodeUseCase,
		maintenanceUseCase:  opts.MaintenanceUseCase,
		favoritesUseCase:    opts.FavoritesUseCase,
		forecastUseCase:     opts.ForecastUseCase,
		configService:       opts.ConfigService,
		metricsCollector:    opts.MetricsCollector,
		systemHealthChecker: opts.SystemHealthChecker,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.GeocodeUseCase == nil {
		return errors.NewValidationError("geocode use case is required")
	}
	if opts.MaintenanceUseCase == nil {
		return errors.NewValidationError("maintenance use case is required")
	}
	if opts.FavoritesUseCase == nil {
		return errors.NewValidationError("favorites use case is required")
	}
	if opts.ForecastUseCase == nil {
		return errors.NewValidationError("forecast use case is required")
	}
	if opts.ConfigService == nil {
		return errors.NewValidationError("config service is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/geocode", s.geocode)
		api.POST("/admin-cleanup", s.adminCleanup)
		api.POST("/admin-prewarm", s.adminPrewarm)
		api.GET("/favorites", s.listFavorites)
		api.POST("/favorites", s.addFavorite)
		api.DELETE("/favorites", s.removeFavorite)
		api.GET("/config", s.getConfig)
		api.GET("/forecast", s.getForecast)
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsCollector.Handler()))
}

// GetRouter returns the router for serving and testing
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
