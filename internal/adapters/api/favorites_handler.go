package api

import (
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weatheredge.app/internal/core/favorites"
	"weatheredge.app/pkg/errors"
)

const headerDeviceID = "X-Device-Id"

// FavoriteRequest represents the body of POST /api/favorites
type FavoriteRequest struct {
	City string   `json:"city" binding:"required,notblank"`
	Lat  *float64 `json:"lat" binding:"required"`
	Lon  *float64 `json:"lon" binding:"required"`
}

// FavoriteResponse represents one saved city
type FavoriteResponse struct {
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	AddedAt int64   `json:"added_at"`
}

// OKResponse acknowledges a mutation with no payload
type OKResponse struct {
	OK bool `json:"ok"`
}

// listFavorites handles GET /api/favorites requests
func (s *HTTPServerAdapter) listFavorites(c *gin.Context) {
	list, err := s.favoritesUseCase.List(c.Request.Context(), c.GetHeader(headerDeviceID))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFavoriteResponses(list))
}

// addFavorite handles POST /api/favorites requests
func (s *HTTPServerAdapter) addFavorite(c *gin.Context) {
	deviceID := c.GetHeader(headerDeviceID)
	if deviceID == "" {
		s.handleError(c, errors.NewValidationError(favorites.MessageMissingDeviceID))
		return
	}

	var httpReq FavoriteRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		slog.Debug("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("city, lat and lon are required"))
		return
	}

	list, err := s.favoritesUseCase.Add(c.Request.Context(), favorites.AddRequest{
		DeviceID: deviceID,
		City:     httpReq.City,
		Lat:      httpReq.Lat,
		Lon:      httpReq.Lon,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toFavoriteResponses(list))
}

// removeFavorite handles DELETE /api/favorites?city= requests
func (s *HTTPServerAdapter) removeFavorite(c *gin.Context) {
	if err := s.favoritesUseCase.Remove(c.Request.Context(), c.GetHeader(headerDeviceID), c.Query("city")); err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

func toFavoriteResponses(list []favorites.Favorite) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(list))
	for _, f := range list {
		out = append(out, FavoriteResponse{City: f.City, Lat: f.Lat, Lon: f.Lon, AddedAt: f.AddedAt})
	}
	return out
}
