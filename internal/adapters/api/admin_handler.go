package api

import (
	"bytes"
	"math"
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"weatheredge.app/internal/core/maintenance"
	"weatheredge.app/pkg/errors"
)

// CleanupRequest is the optional body of POST /api/admin-cleanup
type CleanupRequest struct {
	TTLms *float64 `json:"ttl_ms"`
}

// CleanupResponse reports the eviction outcome
type CleanupResponse struct {
	Deleted int64 `json:"deleted"`
	Cutoff  int64 `json:"cutoff"`
}

// PrewarmRequest is the optional body of POST /api/admin-prewarm
type PrewarmRequest struct {
	Cities []string `json:"cities"`
}

// PrewarmCityResponse is one settled city of a prewarm batch
type PrewarmCityResponse struct {
	City   string `json:"city"`
	OK     bool   `json:"ok"`
	Source string `json:"source,omitempty"`
	Error  string `json:"error,omitempty"`
}

// PrewarmResponse reports every city in input order
type PrewarmResponse struct {
	Count   int                   `json:"count"`
	Results []PrewarmCityResponse `json:"results"`
}

// adminCleanup handles POST /api/admin-cleanup requests
func (s *HTTPServerAdapter) adminCleanup(c *gin.Context) {
	var req CleanupRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		s.handleError(c, err)
		return
	}

	params := maintenance.EvictParams{}
	if req.TTLms != nil {
		ttl, ok := millisFromJSON(*req.TTLms)
		if !ok {
			s.handleError(c, errors.NewValidationError("ttl_ms is out of range"))
			return
		}
		params.TTLms = &ttl
	}

	result, err := s.maintenanceUseCase.Evict(c.Request.Context(), params)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, CleanupResponse{Deleted: result.Deleted, Cutoff: result.Cutoff})
}

// adminPrewarm handles POST /api/admin-prewarm requests
func (s *HTTPServerAdapter) adminPrewarm(c *gin.Context) {
	var req PrewarmRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		s.handleError(c, err)
		return
	}

	result, err := s.maintenanceUseCase.Prewarm(c.Request.Context(), maintenance.PrewarmParams{Cities: req.Cities})
	if err != nil {
		s.handleError(c, err)
		return
	}

	response := PrewarmResponse{
		Count:   result.Count,
		Results: make([]PrewarmCityResponse, 0, len(result.Results)),
	}
	for _, r := range result.Results {
		response.Results = append(response.Results, PrewarmCityResponse{
			City:   r.City,
			OK:     r.OK,
			Source: r.Source,
			Error:  r.Error,
		})
	}

	c.JSON(http.StatusOK, response)
}

// bindOptionalJSON binds a JSON body when one is present; an empty body leaves obj untouched
func bindOptionalJSON(c *gin.Context, obj interface{}) error {
	raw, err := c.GetRawData()
	if err != nil {
		return errors.NewValidationError("Invalid request body")
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := binding.JSON.BindBody(raw, obj); err != nil {
		slog.Debug("Request binding error", "error", err, "path", c.Request.URL.Path)
		return errors.NewValidationError("Invalid JSON body")
	}
	return nil
}

// millisFromJSON truncates a JSON number to int64 milliseconds, rejecting
// values the conversion cannot represent
func millisFromJSON(v float64) (int64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v >= float64(math.MaxInt64) || v < float64(math.MinInt64) {
		return 0, false
	}
	return int64(v), true
}
