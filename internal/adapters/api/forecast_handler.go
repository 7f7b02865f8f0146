package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatheredge.app/internal/core/forecast"
	"weatheredge.app/pkg/errors"
	"weatheredge.app/pkg/validation"
)

const headerCache = "X-Cache"

// getForecast handles GET /api/forecast requests; the upstream payload is proxied verbatim
func (s *HTTPServerAdapter) getForecast(c *gin.Context) {
	lat, latOK := validation.ParseCoordinate(c.Query("lat"))
	lon, lonOK := validation.ParseCoordinate(c.Query("lon"))
	if !latOK || !lonOK {
		s.handleError(c, errors.NewValidationError("lat and lon are required numbers"))
		return
	}

	result, err := s.forecastUseCase.GetForecast(c.Request.Context(), forecast.Request{Lat: lat, Lon: lon})
	if err != nil {
		s.handleError(c, err)
		return
	}

	if result.CacheHit {
		c.Header(headerCache, "HIT")
	} else {
		c.Header(headerCache, "MISS")
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", result.Body)
}
