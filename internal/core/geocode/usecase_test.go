package geocode

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatheredge.app/internal/mocks"
	"weatheredge.app/internal/ports"
	"weatheredge.app/pkg/errors"
)

var fixedNow = time.UnixMilli(1_700_000_000_000)

type staticTTL time.Duration

func (s staticTTL) TTL(_ context.Context, _ string, fallback time.Duration) time.Duration {
	if s <= 0 {
		return fallback
	}
	return time.Duration(s)
}

func allowLogging(l *mocks.Logger) {
	args := []interface{}{mock.Anything}
	for i := 0; i < 5; i++ {
		l.EXPECT().Debug(args[0], args[1:]...).Maybe()
		l.EXPECT().Info(args[0], args[1:]...).Maybe()
		l.EXPECT().Warn(args[0], args[1:]...).Maybe()
		l.EXPECT().Error(args[0], args[1:]...).Maybe()
		args = append(args, mock.Anything)
	}
}

type fixture struct {
	cache    *mocks.GeocodeCacheRepository
	provider *mocks.GeocodingProvider
	metrics  *mocks.MetricsCollector
	logger   *mocks.Logger
	uc       *UseCase
}

func newFixture(t *testing.T, ttl time.Duration) *fixture {
	f := &fixture{
		cache:    mocks.NewGeocodeCacheRepository(t),
		provider: mocks.NewGeocodingProvider(t),
		metrics:  mocks.NewMetricsCollector(t),
		logger:   mocks.NewLogger(t),
	}
	allowLogging(f.logger)
	f.provider.EXPECT().GetProviderName().Return("nominatim").Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		Cache:    f.cache,
		Provider: f.provider,
		Flags:    staticTTL(ttl),
		Logger:   f.logger,
		Metrics:  f.metrics,
		Now:      func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	f.uc = uc
	return f
}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	full := UseCaseDependencies{
		Cache:    mocks.NewGeocodeCacheRepository(t),
		Provider: mocks.NewGeocodingProvider(t),
		Flags:    staticTTL(0),
		Logger:   mocks.NewLogger(t),
		Metrics:  mocks.NewMetricsCollector(t),
	}

	tests := []struct {
		name   string
		mutate func(d *UseCaseDependencies)
	}{
		{"Cache", func(d *UseCaseDependencies) { d.Cache = nil }},
		{"Provider", func(d *UseCaseDependencies) { d.Provider = nil }},
		{"Flags", func(d *UseCaseDependencies) { d.Flags = nil }},
		{"Logger", func(d *UseCaseDependencies) { d.Logger = nil }},
		{"Metrics", func(d *UseCaseDependencies) { d.Metrics = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := full
			tt.mutate(&deps)
			uc, err := NewUseCase(deps)
			assert.Nil(t, uc)
			assert.True(t, errors.IsValidationError(err))
		})
	}

	uc, err := NewUseCase(full)
	require.NoError(t, err)
	assert.Equal(t, DefaultCacheTTL, uc.defaultTTL)
}

func TestUseCase_Resolve_MissingQuery(t *testing.T) {
	f := newFixture(t, 0)

	for _, q := range []string{"", "   ", "\t\n"} {
		result, err := f.uc.Resolve(context.Background(), Request{Query: q})
		assert.Nil(t, result)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Contains(t, err.Error(), MessageMissingQuery)
	}
}

func TestUseCase_Resolve_FreshHit(t *testing.T) {
	f := newFixture(t, time.Hour)

	f.cache.EXPECT().FindByNormalized(mock.Anything, "paris").Return(&ports.GeocodeCacheData{
		Normalized: "paris",
		Query:      "Paris",
		Latitude:   48.85,
		Longitude:  2.35,
		Hits:       3,
		UpdatedAt:  fixedNow.Add(-time.Hour).UnixMilli(),
	}, nil)
	f.cache.EXPECT().RecordHit(mock.Anything, "paris", fixedNow.UnixMilli()).Return(nil).Once()
	f.metrics.EXPECT().RecordCacheHit(mock.Anything, ports.CacheGeocode).Once()

	result, err := f.uc.Resolve(context.Background(), Request{Query: "  PARIS "})
	require.NoError(t, err)
	f.uc.Drain()

	assert.Equal(t, 48.85, result.Latitude)
	assert.Equal(t, 2.35, result.Longitude)
	assert.Equal(t, SourceCache, result.Source)
	assert.Equal(t, "cache", result.Label())
	f.provider.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestUseCase_Resolve_HitWriteFailureDoesNotFailRequest(t *testing.T) {
	f := newFixture(t, time.Hour)

	f.cache.EXPECT().FindByNormalized(mock.Anything, "tokyo").Return(&ports.GeocodeCacheData{
		Normalized: "tokyo", Latitude: 35.68, Longitude: 139.69, Hits: 1, UpdatedAt: fixedNow.UnixMilli(),
	}, nil)
	f.cache.EXPECT().RecordHit(mock.Anything, "tokyo", mock.Anything).Return(fmt.Errorf("database is locked"))
	f.metrics.EXPECT().RecordCacheHit(mock.Anything, ports.CacheGeocode)

	result, err := f.uc.Resolve(context.Background(), Request{Query: "Tokyo"})
	require.NoError(t, err)
	f.uc.Drain()
	assert.Equal(t, SourceCache, result.Source)
}

func TestUseCase_Resolve_HitWriteSurvivesCancelledRequest(t *testing.T) {
	f := newFixture(t, time.Hour)

	f.cache.EXPECT().FindByNormalized(mock.Anything, "cairo").Return(&ports.GeocodeCacheData{
		Normalized: "cairo", Latitude: 30.04, Longitude: 31.24, Hits: 1, UpdatedAt: fixedNow.UnixMilli(),
	}, nil)
	f.metrics.EXPECT().RecordCacheHit(mock.Anything, ports.CacheGeocode)

	ctx, cancel := context.WithCancel(context.Background())
	var writeErr atomic.Value
	f.cache.EXPECT().RecordHit(mock.Anything, "cairo", mock.Anything).
		Run(func(ctx context.Context, _ string, _ int64) {
			writeErr.Store(fmt.Sprint(ctx.Err()))
		}).Return(nil)

	_, err := f.uc.Resolve(ctx, Request{Query: "Cairo"})
	require.NoError(t, err)
	cancel()
	f.uc.Drain()

	assert.Equal(t, "<nil>", writeErr.Load())
}

func TestUseCase_Resolve_StaleRowRefetches(t *testing.T) {
	f := newFixture(t, time.Hour)

	f.cache.EXPECT().FindByNormalized(mock.Anything, "paris").Return(&ports.GeocodeCacheData{
		Normalized: "paris", Query: "Paris", Latitude: 1, Longitude: 1, Hits: 42,
		UpdatedAt: fixedNow.Add(-time.Hour).UnixMilli() - 1,
	}, nil)
	f.metrics.EXPECT().RecordCacheMiss(mock.Anything, ports.CacheGeocode)
	f.provider.EXPECT().Search(mock.Anything, "Paris").Return([]ports.GeocodeCandidate{
		{Latitude: 48.8566, Longitude: 2.3522, DisplayName: "Paris, France"},
	}, nil)
	f.cache.EXPECT().Upsert(mock.Anything, &ports.GeocodeCacheData{
		Normalized: "paris",
		Query:      "Paris",
		Latitude:   48.8566,
		Longitude:  2.3522,
		Hits:       1,
		UpdatedAt:  fixedNow.UnixMilli(),
	}).Return(nil)

	result, err := f.uc.Resolve(context.Background(), Request{Query: "Paris"})
	require.NoError(t, err)

	assert.Equal(t, SourceUpstream, result.Source)
	assert.Equal(t, "nominatim", result.Label())
	assert.Equal(t, 48.8566, result.Latitude)
	f.cache.AssertNotCalled(t, "RecordHit", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Resolve_MissSendsTrimmedOriginalQuery(t *testing.T) {
	f := newFixture(t, 0)

	f.cache.EXPECT().FindByNormalized(mock.Anything, "new york").Return(nil, errors.NewNotFoundError("not cached"))
	f.metrics.EXPECT().RecordCacheMiss(mock.Anything, ports.CacheGeocode)
	f.provider.EXPECT().Search(mock.Anything, "New   York").Return([]ports.GeocodeCandidate{
		{Latitude: 40.71, Longitude: -74.0},
		{Latitude: 43.0, Longitude: -75.0},
	}, nil)
	f.cache.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(e *ports.GeocodeCacheData) bool {
		return e.Normalized == "new york" && e.Query == "New   York" && e.Hits == 1 && e.Latitude == 40.71
	})).Return(nil)

	result, err := f.uc.Resolve(context.Background(), Request{Query: "  New   York "})
	require.NoError(t, err)
	assert.Equal(t, 40.71, result.Latitude)
	assert.Equal(t, -74.0, result.Longitude)
}

func TestUseCase_Resolve_NoResults(t *testing.T) {
	f := newFixture(t, 0)

	f.cache.EXPECT().FindByNormalized(mock.Anything, "zzzxqqq").Return(nil, errors.NewNotFoundError("not cached"))
	f.metrics.EXPECT().RecordCacheMiss(mock.Anything, ports.CacheGeocode)
	f.provider.EXPECT().Search(mock.Anything, "zzzxqqq").Return([]ports.GeocodeCandidate{}, nil)

	result, err := f.uc.Resolve(context.Background(), Request{Query: "zzzxqqq"})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), MessageNoResults)
	f.cache.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUseCase_Resolve_UpstreamFailure(t *testing.T) {
	f := newFixture(t, 0)

	f.cache.EXPECT().FindByNormalized(mock.Anything, "london").Return(nil, errors.NewNotFoundError("not cached"))
	f.metrics.EXPECT().RecordCacheMiss(mock.Anything, ports.CacheGeocode)
	f.provider.EXPECT().Search(mock.Anything, "London").Return(nil, fmt.Errorf("status 503"))

	result, err := f.uc.Resolve(context.Background(), Request{Query: "London"})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsExternalAPIError(err))
	assert.Contains(t, err.Error(), MessageGeocodingFailed)
	f.cache.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUseCase_Resolve_LookupFailure(t *testing.T) {
	f := newFixture(t, 0)

	f.cache.EXPECT().FindByNormalized(mock.Anything, "oslo").Return(nil, fmt.Errorf("connection refused"))

	result, err := f.uc.Resolve(context.Background(), Request{Query: "Oslo"})
	assert.Nil(t, result)
	assert.True(t, errors.IsDatabaseError(err))
	f.provider.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestUseCase_Resolve_UpsertFailure(t *testing.T) {
	f := newFixture(t, 0)

	f.cache.EXPECT().FindByNormalized(mock.Anything, "oslo").Return(nil, errors.NewNotFoundError("not cached"))
	f.metrics.EXPECT().RecordCacheMiss(mock.Anything, ports.CacheGeocode)
	f.provider.EXPECT().Search(mock.Anything, "Oslo").Return([]ports.GeocodeCandidate{{Latitude: 59.9, Longitude: 10.7}}, nil)
	f.cache.EXPECT().Upsert(mock.Anything, mock.Anything).Return(fmt.Errorf("disk full"))

	result, err := f.uc.Resolve(context.Background(), Request{Query: "Oslo"})
	assert.Nil(t, result)
	assert.True(t, errors.IsDatabaseError(err))
}

func TestUseCase_Resolve_CoalescesConcurrentMisses(t *testing.T) {
	f := newFixture(t, 0)

	release := make(chan struct{})
	var calls, misses int32

	f.cache.EXPECT().FindByNormalized(mock.Anything, "sydney").Return(nil, errors.NewNotFoundError("not cached"))
	f.metrics.EXPECT().RecordCacheMiss(mock.Anything, ports.CacheGeocode).
		Run(func(context.Context, string) { atomic.AddInt32(&misses, 1) })
	f.provider.EXPECT().Search(mock.Anything, "Sydney").
		RunAndReturn(func(context.Context, string) ([]ports.GeocodeCandidate, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return []ports.GeocodeCandidate{{Latitude: -33.87, Longitude: 151.21}}, nil
		})
	f.cache.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Once()

	const callers = 8
	var wg sync.WaitGroup
	results := make([]*Result, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.uc.Resolve(context.Background(), Request{Query: "Sydney"})
		}(i)
	}

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&calls) == 1 && atomic.LoadInt32(&misses) == callers
	}, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, -33.87, results[i].Latitude)
	}
}

func TestUseCase_Resolve_CancelledCallerDoesNotFailOthers(t *testing.T) {
	f := newFixture(t, 0)

	release := make(chan struct{})
	var calls, misses int32

	f.cache.EXPECT().FindByNormalized(mock.Anything, "paris").Return(nil, errors.NewNotFoundError("not cached"))
	f.metrics.EXPECT().RecordCacheMiss(mock.Anything, ports.CacheGeocode).
		Run(func(context.Context, string) { atomic.AddInt32(&misses, 1) })
	f.provider.EXPECT().Search(mock.Anything, "Paris").
		RunAndReturn(func(ctx context.Context, _ string) ([]ports.GeocodeCandidate, error) {
			atomic.AddInt32(&calls, 1)
			select {
			case <-release:
				return []ports.GeocodeCandidate{{Latitude: 48.85, Longitude: 2.35}}, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		})
	f.cache.EXPECT().Upsert(mock.Anything, mock.Anything).Return(nil).Once()

	first, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := f.uc.Resolve(first, Request{Query: "Paris"})
		firstErr <- err
	}()
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, 5*time.Millisecond)

	type outcome struct {
		result *Result
		err    error
	}
	second := make(chan outcome, 1)
	go func() {
		result, err := f.uc.Resolve(context.Background(), Request{Query: "Paris"})
		second <- outcome{result, err}
	}()
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&misses) == 2 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	got := <-second
	require.NoError(t, got.err)
	assert.Equal(t, 48.85, got.result.Latitude)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	f.uc.Drain()
}

func TestUseCase_Resolve_UsesDefaultTTL(t *testing.T) {
	f := newFixture(t, 0)

	thirtyDaysAgo := fixedNow.Add(-DefaultCacheTTL).UnixMilli()
	f.cache.EXPECT().FindByNormalized(mock.Anything, "mumbai").Return(&ports.GeocodeCacheData{
		Normalized: "mumbai", Latitude: 19.07, Longitude: 72.87, Hits: 5, UpdatedAt: thirtyDaysAgo,
	}, nil)
	f.cache.EXPECT().RecordHit(mock.Anything, "mumbai", mock.Anything).Return(nil)
	f.metrics.EXPECT().RecordCacheHit(mock.Anything, ports.CacheGeocode)

	result, err := f.uc.Resolve(context.Background(), Request{Query: "Mumbai"})
	require.NoError(t, err)
	f.uc.Drain()
	assert.Equal(t, SourceCache, result.Source)
}
