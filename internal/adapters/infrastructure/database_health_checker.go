package infrastructure

import (
	"context"

	"gorm.io/gorm"
	"weatheredge.app/internal/ports"
)

// Health status values reported by checkers
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// DatabaseHealthChecker pings the database and reports the geocode cache size
type DatabaseHealthChecker struct {
	db    *gorm.DB
	cache ports.GeocodeCacheRepository
}

// NewDatabaseHealthChecker creates a new database health checker; cache may be nil
func NewDatabaseHealthChecker(db *gorm.DB, cache ports.GeocodeCacheRepository) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db, cache: cache}
}

// Check verifies database connectivity
func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "database",
		Details:   make(map[string]interface{}),
	}

	if d.db == nil {
		status.Status = StatusUnhealthy
		status.Error = "database instance is nil"
		return status
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		status.Status = StatusUnhealthy
		status.Error = "failed to get underlying database connection"
		return status
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = StatusHealthy
	status.Details["connected"] = true
	status.Details["driver"] = d.db.Dialector.Name()

	if d.cache != nil {
		if rows, err := d.cache.Count(ctx); err == nil {
			status.Details["geocode_cache_rows"] = rows
		}
	}
	return status
}
