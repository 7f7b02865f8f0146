package infrastructure

import (
	"context"
	"sync"

	"weatheredge.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers []ports.HealthChecker
	info     map[string]interface{}
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	Checkers []ports.HealthChecker
	// Info is reported as an always-healthy "config" component
	Info map[string]interface{}
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make([]ports.HealthChecker, 0, len(config.Checkers))
	for _, c := range config.Checkers {
		if c != nil {
			checkers = append(checkers, c)
		}
	}
	return &SystemHealthChecker{checkers: checkers, info: config.Info}
}

// CheckAll runs every checker concurrently, keyed by component name
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	statuses := make([]ports.HealthStatus, len(s.checkers))

	var wg sync.WaitGroup
	for i, checker := range s.checkers {
		wg.Add(1)
		go func(i int, checker ports.HealthChecker) {
			defer wg.Done()
			statuses[i] = checker.Check(ctx)
		}(i, checker)
	}
	wg.Wait()

	results := make(map[string]ports.HealthStatus, len(statuses)+1)
	for _, status := range statuses {
		results[status.Component] = status
	}

	if len(s.info) > 0 {
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    StatusHealthy,
			Details:   s.info,
		}
	}

	return results
}

// IsHealthy reports whether every status in results is healthy
func IsHealthy(results map[string]ports.HealthStatus) bool {
	for _, status := range results {
		if status.Status != StatusHealthy {
			return false
		}
	}
	return true
}
