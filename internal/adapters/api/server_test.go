package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"weatheredge.app/internal/adapters/database"
	"weatheredge.app/internal/adapters/external"
	"weatheredge.app/internal/adapters/infrastructure"
	"weatheredge.app/internal/core/favorites"
	"weatheredge.app/internal/core/flags"
	"weatheredge.app/internal/core/forecast"
	"weatheredge.app/internal/core/geocode"
	"weatheredge.app/internal/core/maintenance"
	"weatheredge.app/internal/mocks"
	"weatheredge.app/internal/ports"
)

// apiSuite drives the real router over sqlite and in-memory adapters; only
// the upstream providers are mocked.
type apiSuite struct {
	suite.Suite

	db         *gorm.DB
	cacheRepo  *database.GeocodeCacheRepositoryAdapter
	flagStore  *external.MemoryFlagStore
	geocoder   *mocks.GeocodingProvider
	forecaster *mocks.ForecastProvider
	metrics    *infrastructure.PrometheusMetricsAdapter
	geocodeUC  *geocode.UseCase
	router     *gin.Engine
	now        time.Time
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(apiSuite))
}

func (s *apiSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(RegisterValidators())
}

func (s *apiSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(database.Migrate(db))

	s.db = db
	s.cacheRepo = database.NewGeocodeCacheRepositoryAdapter(db)
	s.flagStore = external.NewMemoryFlagStore(nil)
	s.geocoder = mocks.NewGeocodingProvider(s.T())
	s.geocoder.EXPECT().GetProviderName().Return("nominatim").Maybe()
	s.forecaster = mocks.NewForecastProvider(s.T())
	s.forecaster.EXPECT().GetProviderName().Return("open-meteo").Maybe()
	s.metrics = infrastructure.NewPrometheusMetricsAdapter()
	s.now = time.UnixMilli(1_700_000_000_000)

	s.router = s.buildRouter(false)
}

func (s *apiSuite) TearDownTest() {
	if s.geocodeUC != nil {
		s.geocodeUC.Drain()
	}
}

func (s *apiSuite) clock() time.Time {
	return s.now
}

func (s *apiSuite) buildRouter(production bool) *gin.Engine {
	log := infrastructure.NewSlogLoggerAdapter(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	flagService, err := flags.NewService(flags.ServiceDependencies{
		Store:    s.flagStore,
		Defaults: flags.Defaults(geocode.DefaultCacheTTL, forecast.DefaultCacheTTL),
		Logger:   log,
	})
	s.Require().NoError(err)

	geocodeUC, err := geocode.NewUseCase(geocode.UseCaseDependencies{
		Cache:    s.cacheRepo,
		Provider: s.geocoder,
		Flags:    flagService,
		Logger:   log,
		Metrics:  s.metrics,
		Now:      s.clock,
	})
	s.Require().NoError(err)
	s.geocodeUC = geocodeUC

	maintenanceUC, err := maintenance.NewUseCase(maintenance.UseCaseDependencies{
		Cache:       s.cacheRepo,
		Resolver:    geocodeUC,
		Flags:       flagService,
		Logger:      log,
		Production:  production,
		Concurrency: 2,
		Now:         s.clock,
	})
	s.Require().NoError(err)

	favoritesUC, err := favorites.NewUseCase(favorites.UseCaseDependencies{
		Repository: database.NewFavoriteRepositoryAdapter(s.db),
		Logger:     log,
		Now:        s.clock,
	})
	s.Require().NoError(err)

	forecastCache := external.NewMemoryCacheProvider(16, time.Hour)
	forecastUC, err := forecast.NewUseCase(forecast.UseCaseDependencies{
		Provider: s.forecaster,
		Cache:    forecastCache,
		Flags:    flagService,
		Logger:   log,
		Metrics:  s.metrics,
	})
	s.Require().NoError(err)

	health := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers: []ports.HealthChecker{
			infrastructure.NewDatabaseHealthChecker(s.db, s.cacheRepo),
			infrastructure.NewPingHealthChecker("flag_store", "memory", s.flagStore),
			infrastructure.NewPingHealthChecker("cache", "memory", forecastCache),
		},
	})

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:              ServerConfig{Port: 0},
		GeocodeUseCase:      geocodeUC,
		MaintenanceUseCase:  maintenanceUC,
		FavoritesUseCase:    favoritesUC,
		ForecastUseCase:     forecastUC,
		ConfigService:       flagService,
		MetricsCollector:    s.metrics,
		SystemHealthChecker: health,
	})
	s.Require().NoError(err)
	return server.GetRouter()
}

type requestOption func(*http.Request)

func withHeader(key, value string) requestOption {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

func (s *apiSuite) do(router *gin.Engine, method, target, body string, opts ...requestOption) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (s *apiSuite) decode(w *httptest.ResponseRecorder, out interface{}) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}

func (s *apiSuite) errorBody(w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	s.decode(w, &resp)
	return resp
}

func (s *apiSuite) expectSearch(query string, candidates []ports.GeocodeCandidate, err error) *mocks.GeocodingProvider_Search_Call {
	return s.geocoder.EXPECT().Search(mock.Anything, query).Return(candidates, err)
}

func (s *apiSuite) TestRequestID() {
	w := s.do(s.router, http.MethodGet, "/api/config", "", withHeader(headerRequestID, "req-42"))
	s.Equal("req-42", w.Header().Get(headerRequestID))

	w = s.do(s.router, http.MethodGet, "/api/config", "")
	s.Len(w.Header().Get(headerRequestID), 36)
}

func (s *apiSuite) TestUnknownRoute() {
	w := s.do(s.router, http.MethodGet, "/api/nope", "")
	s.Equal(http.StatusNotFound, w.Code)
}

func TestNewHTTPServerAdapter_RequiresDependencies(t *testing.T) {
	_, err := NewHTTPServerAdapter(ServerOptions{})
	if err == nil {
		t.Fatal("expected error for missing dependencies")
	}
}
