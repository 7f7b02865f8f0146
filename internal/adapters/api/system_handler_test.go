package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"weatheredge.app/internal/core/flags"
)

func (s *apiSuite) TestConfig_DefaultsOnly() {
	w := s.do(s.router, http.MethodGet, "/api/config", "")
	s.Require().Equal(http.StatusOK, w.Code)

	var cfg map[string]interface{}
	s.decode(w, &cfg)
	s.Equal(true, cfg[flags.KeyVoiceSearch])
	s.Equal(float64(2592000000), cfg[flags.KeyGeocodeCacheTTL])
	s.Equal(float64(600000), cfg[flags.KeyForecastCacheTTL])
}

func (s *apiSuite) TestConfig_StoredValuesWin() {
	s.flagStore.Set(flags.KeyVoiceSearch, false)
	s.flagStore.Set("beta_banner", "spring")

	w := s.do(s.router, http.MethodGet, "/api/config", "")
	s.Require().Equal(http.StatusOK, w.Code)

	var cfg map[string]interface{}
	s.decode(w, &cfg)
	s.Equal(false, cfg[flags.KeyVoiceSearch])
	s.Equal("spring", cfg["beta_banner"])
	s.Equal(true, cfg[flags.KeyFavoritesEnabled])
}

func (s *apiSuite) TestHealth() {
	w := s.do(s.router, http.MethodGet, "/api/health", "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp HealthResponse
	s.decode(w, &resp)
	s.Equal("healthy", resp.Status)
	s.Contains(resp.Components, "database")
	s.Contains(resp.Components, "flag_store")
	s.Contains(resp.Components, "cache")
}

func (s *apiSuite) TestHealth_DatabaseDown() {
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())

	w := s.do(s.router, http.MethodGet, "/api/health", "")
	s.Require().Equal(http.StatusServiceUnavailable, w.Code)

	var resp HealthResponse
	s.decode(w, &resp)
	s.Equal("unhealthy", resp.Status)
	s.Equal("unhealthy", resp.Components["database"].Status)
}

func (s *apiSuite) TestMetrics() {
	s.do(s.router, http.MethodGet, "/api/geocode", "")

	w := s.do(s.router, http.MethodGet, "/api/metrics", "")
	s.Require().Equal(http.StatusOK, w.Code)
	var snapshot map[string]interface{}
	s.decode(w, &snapshot)
	s.Contains(snapshot, "cache")
	s.Contains(snapshot, "upstream")
	s.Equal(float64(1), snapshot["http_requests"])

	w = s.do(s.router, http.MethodGet, "/metrics", "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.True(strings.Contains(w.Body.String(),
		`weatheredge_http_requests_total{method="GET",route="/api/geocode",status="400"} 1`), w.Body.String())
}

func (s *apiSuite) TestRequestID_OversizedHeaderIsReplaced() {
	oversized := strings.Repeat("x", 129)
	w := s.do(s.router, http.MethodGet, "/api/config", "", withHeader(headerRequestID, oversized))

	id := w.Header().Get(headerRequestID)
	s.NotEqual(oversized, id)
	_, err := uuid.Parse(id)
	s.NoError(err)
}
