package api

import (
	"context"
	"fmt"
	"net/http"

	"weatheredge.app/internal/ports"
	"weatheredge.app/pkg/errors"
)

func (s *apiSuite) TestGeocode_MissThenHit() {
	s.expectSearch("Paris", []ports.GeocodeCandidate{{Latitude: 48.8566, Longitude: 2.3522}}, nil).Once()

	w := s.do(s.router, http.MethodGet, "/api/geocode?q=Paris", "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var first GeocodeResponse
	s.decode(w, &first)
	s.Equal(GeocodeResponse{Lat: 48.8566, Lon: 2.3522, Source: "nominatim"}, first)

	w = s.do(s.router, http.MethodGet, "/api/geocode?q=%20%20PARIS%20", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var second GeocodeResponse
	s.decode(w, &second)
	s.Equal("cache", second.Source)
	s.Equal(first.Lat, second.Lat)

	s.geocodeUC.Drain()
	row, err := s.cacheRepo.FindByNormalized(context.Background(), "paris")
	s.Require().NoError(err)
	s.Equal(int64(2), row.Hits)
}

func (s *apiSuite) TestGeocode_MissingQuery() {
	for _, target := range []string{"/api/geocode", "/api/geocode?q=", "/api/geocode?q=%20%20"} {
		w := s.do(s.router, http.MethodGet, target, "")
		s.Equal(http.StatusBadRequest, w.Code, target)
		s.Equal(ErrorResponse{Error: "Missing q"}, s.errorBody(w))
	}
}

func (s *apiSuite) TestGeocode_NoResults() {
	s.expectSearch("Atlantis", []ports.GeocodeCandidate{}, nil)

	w := s.do(s.router, http.MethodGet, "/api/geocode?q=Atlantis", "")
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(ErrorResponse{Error: "No results"}, s.errorBody(w))
}

func (s *apiSuite) TestGeocode_UpstreamFailure() {
	s.expectSearch("Berlin", nil, errors.NewExternalAPIError("nominatim returned status 503", nil))

	w := s.do(s.router, http.MethodGet, "/api/geocode?q=Berlin", "")
	s.Equal(http.StatusBadGateway, w.Code)
	s.Equal(ErrorResponse{Error: "Geocoding failed"}, s.errorBody(w))
}

func (s *apiSuite) TestGeocode_StorageFailure() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())

	w := s.do(s.router, http.MethodGet, "/api/geocode?q=Rome", "")
	s.Equal(http.StatusInternalServerError, w.Code)
	body := s.errorBody(w)
	s.Equal("Server error", body.Error)
	s.NotEmpty(body.Details)
}

func (s *apiSuite) TestErrorResponse_Mapping() {
	tests := []struct {
		err    error
		status int
		body   ErrorResponse
	}{
		{errors.NewValidationError("Missing q"), http.StatusBadRequest, ErrorResponse{Error: "Missing q"}},
		{errors.NewForbiddenError("Not allowed in production"), http.StatusForbidden, ErrorResponse{Error: "Not allowed in production"}},
		{errors.NewNotFoundError("No results"), http.StatusNotFound, ErrorResponse{Error: "No results"}},
		{errors.NewAlreadyExistsError("exists"), http.StatusConflict, ErrorResponse{Error: "exists"}},
		{fmt.Errorf("resolve: %w", errors.NewExternalAPIError("Geocoding failed", nil)), http.StatusBadGateway, ErrorResponse{Error: "Geocoding failed"}},
		{errors.NewDatabaseError("failed to upsert", fmt.Errorf("disk full")), http.StatusInternalServerError,
			ErrorResponse{Error: "Server error", Details: "failed to upsert: disk full"}},
		{errors.NewConfigurationError("bad config", nil), http.StatusInternalServerError,
			ErrorResponse{Error: "Server error", Details: "bad config"}},
		{fmt.Errorf("boom"), http.StatusInternalServerError, ErrorResponse{Error: "Server error", Details: "boom"}},
	}

	for _, tt := range tests {
		status, body := errorResponse(tt.err)
		s.Equal(tt.status, status, tt.err.Error())
		s.Equal(tt.body, body, tt.err.Error())
	}
}
