package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weatheredge.app/internal/core/geocode"
)

// GeocodeResponse represents the HTTP response for a resolved place name
type GeocodeResponse struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Source string  `json:"source"`
}

// geocode handles GET /api/geocode requests
func (s *HTTPServerAdapter) geocode(c *gin.Context) {
	query := c.Query("q")
	slog.Debug("Resolving place name", "q", query)

	result, err := s.geocodeUseCase.Resolve(c.Request.Context(), geocode.Request{Query: query})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, GeocodeResponse{
		Lat:    result.Latitude,
		Lon:    result.Longitude,
		Source: result.Label(),
	})
}
