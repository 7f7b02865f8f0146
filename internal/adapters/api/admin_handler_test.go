package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/stretchr/testify/mock"
	"weatheredge.app/internal/core/geocode"
	"weatheredge.app/internal/ports"
)

func (s *apiSuite) seedCache(normalized string, age time.Duration) {
	s.Require().NoError(s.cacheRepo.Upsert(context.Background(), &ports.GeocodeCacheData{
		Normalized: normalized,
		Query:      normalized,
		Latitude:   1,
		Longitude:  2,
		Hits:       1,
		UpdatedAt:  s.now.Add(-age).UnixMilli(),
	}))
}

func (s *apiSuite) cacheRows() int64 {
	n, err := s.cacheRepo.Count(context.Background())
	s.Require().NoError(err)
	return n
}

func (s *apiSuite) TestAdminCleanup_DefaultTTL() {
	s.seedCache("old town", geocode.DefaultCacheTTL+time.Hour)
	s.seedCache("fresh town", time.Hour)

	for _, body := range []string{"", "{}"} {
		w := s.do(s.router, http.MethodPost, "/api/admin-cleanup", body)
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		var resp CleanupResponse
		s.decode(w, &resp)
		s.Equal(s.now.Add(-geocode.DefaultCacheTTL).UnixMilli(), resp.Cutoff)
	}
	s.Equal(int64(1), s.cacheRows())
}

func (s *apiSuite) TestAdminCleanup_BodyOverride() {
	s.seedCache("a", 2*time.Minute)
	s.seedCache("b", 30*time.Second)

	w := s.do(s.router, http.MethodPost, "/api/admin-cleanup", `{"ttl_ms": 60000}`)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp CleanupResponse
	s.decode(w, &resp)
	s.Equal(int64(1), resp.Deleted)
	s.Equal(s.now.UnixMilli()-60000, resp.Cutoff)
}

func (s *apiSuite) TestAdminCleanup_HugeTTLKeepsRows() {
	s.seedCache("ancient", 365*24*time.Hour)

	w := s.do(s.router, http.MethodPost, "/api/admin-cleanup", `{"ttl_ms": 1e13}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp CleanupResponse
	s.decode(w, &resp)
	s.Equal(int64(0), resp.Deleted)
	s.Less(resp.Cutoff, s.now.UnixMilli())
	s.Equal(int64(1), s.cacheRows())
}

func (s *apiSuite) TestAdminCleanup_UnrepresentableTTL() {
	s.seedCache("ancient", 365*24*time.Hour)

	for _, body := range []string{`{"ttl_ms": 1e19}`, `{"ttl_ms": -1e300}`} {
		w := s.do(s.router, http.MethodPost, "/api/admin-cleanup", body)
		s.Equal(http.StatusBadRequest, w.Code, body)
		s.Equal("ttl_ms is out of range", s.errorBody(w).Error)
	}
	s.Equal(int64(1), s.cacheRows())
}

func (s *apiSuite) TestAdminCleanup_FlagTTL() {
	s.flagStore.Set("geocode_cache_ttl_ms", 3600000)
	s.seedCache("a", 2*time.Hour)

	w := s.do(s.router, http.MethodPost, "/api/admin-cleanup", "")
	s.Require().Equal(http.StatusOK, w.Code)

	var resp CleanupResponse
	s.decode(w, &resp)
	s.Equal(int64(1), resp.Deleted)
	s.Equal(s.now.Add(-time.Hour).UnixMilli(), resp.Cutoff)
}

func (s *apiSuite) TestAdminCleanup_MalformedBody() {
	w := s.do(s.router, http.MethodPost, "/api/admin-cleanup", `{"ttl_ms":`)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Invalid JSON body", s.errorBody(w).Error)
}

func (s *apiSuite) TestAdmin_RefusedInProduction() {
	s.seedCache("ancient", 365*24*time.Hour)
	router := s.buildRouter(true)

	w := s.do(router, http.MethodPost, "/api/admin-cleanup", "{}")
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal(ErrorResponse{Error: "Not allowed in production"}, s.errorBody(w))

	w = s.do(router, http.MethodPost, "/api/admin-prewarm", `{"cities":["Paris"]}`)
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal(ErrorResponse{Error: "Not allowed in production"}, s.errorBody(w))

	s.Equal(int64(1), s.cacheRows())
	s.geocoder.AssertNotCalled(s.T(), "Search", mock.Anything, mock.Anything)
}

func (s *apiSuite) TestAdminPrewarm_PartialFailure() {
	s.expectSearch("Paris", []ports.GeocodeCandidate{{Latitude: 48.85, Longitude: 2.35}}, nil)
	s.expectSearch("Atlantis", []ports.GeocodeCandidate{}, nil)
	s.expectSearch("Tokyo", nil, fmt.Errorf("dial tcp: i/o timeout"))

	w := s.do(s.router, http.MethodPost, "/api/admin-prewarm", `{"cities":["Paris","Atlantis","Tokyo"]}`)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp PrewarmResponse
	s.decode(w, &resp)
	s.Equal(3, resp.Count)
	s.Equal([]PrewarmCityResponse{
		{City: "Paris", OK: true, Source: "nominatim"},
		{City: "Atlantis", OK: false, Error: "No results"},
		{City: "Tokyo", OK: false, Error: "Geocoding failed"},
	}, resp.Results)

	// a second run is served from the cache
	w = s.do(s.router, http.MethodPost, "/api/admin-prewarm", `{"cities":["paris"]}`)
	s.Require().Equal(http.StatusOK, w.Code)
	s.decode(w, &resp)
	s.Equal("cache", resp.Results[0].Source)
}

func (s *apiSuite) TestAdminPrewarm_DefaultCities() {
	s.geocoder.EXPECT().Search(mock.Anything, mock.Anything).
		Return([]ports.GeocodeCandidate{{Latitude: 1, Longitude: 1}}, nil)

	w := s.do(s.router, http.MethodPost, "/api/admin-prewarm", "")
	s.Require().Equal(http.StatusOK, w.Code)

	var resp PrewarmResponse
	s.decode(w, &resp)
	s.Equal(10, resp.Count)
	s.Equal("Tokyo", resp.Results[0].City)
	s.Equal("Toronto", resp.Results[9].City)
	s.Equal(int64(10), s.cacheRows())
}
