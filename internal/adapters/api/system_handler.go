package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weatheredge.app/internal/ports"
)

// HealthResponse aggregates component health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getConfig handles GET /api/config requests; store failures are served as defaults.
// Stored flags override the built-in defaults, the reverse of the older
// {...stored, ...defaults} merge where defaults always won.
func (s *HTTPServerAdapter) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, s.configService.Merged(c.Request.Context()))
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.systemHealthChecker.CheckAll(c.Request.Context())

	status, code := "healthy", http.StatusOK
	for name, component := range components {
		if component.Status != "healthy" {
			slog.Warn("Component unhealthy", "component", name, "error", component.Error)
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
	}

	c.JSON(code, HealthResponse{Status: status, Components: components})
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	metrics, err := s.metricsCollector.GetMetrics(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}
