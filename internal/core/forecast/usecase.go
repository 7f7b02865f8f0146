package forecast

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"weatheredge.app/internal/ports"
	"weatheredge.app/pkg/errors"
)

const (
	DefaultCacheTTL = 10 * time.Minute
	TTLFlagKey      = "forecast_cache_ttl_ms"

	MessageForecastFailed = "Forecast failed"

	upstreamTimeout = 30 * time.Second
)

// TTLResolver reads a millisecond duration flag, falling back when it is unusable
type TTLResolver interface {
	TTL(ctx context.Context, key string, fallback time.Duration) time.Duration
}

type UseCase struct {
	provider   ports.ForecastProvider
	cache      ports.CacheProvider
	flags      TTLResolver
	logger     ports.Logger
	metrics    ports.MetricsCollector
	defaultTTL time.Duration

	inflight singleflight.Group
	pending  sync.WaitGroup
}

type UseCaseDependencies struct {
	Provider   ports.ForecastProvider
	Cache      ports.CacheProvider
	Flags      TTLResolver
	Logger     ports.Logger
	Metrics    ports.MetricsCollector
	DefaultTTL time.Duration
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("forecast provider is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Flags == nil {
		return nil, errors.NewValidationError("flags are required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	defaultTTL := deps.DefaultTTL
	if defaultTTL <= 0 {
		defaultTTL = DefaultCacheTTL
	}

	return &UseCase{
		provider:   deps.Provider,
		cache:      deps.Cache,
		flags:      deps.Flags,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		defaultTTL: defaultTTL,
	}, nil
}

func (uc *UseCase) GetForecast(ctx context.Context, request Request) (*Forecast, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	request = request.Quantize()
	key := request.CacheKey()

	if body, err := uc.cache.Get(ctx, key); err == nil && body != nil {
		uc.metrics.RecordCacheHit(ctx, ports.CacheForecast)
		uc.logger.Debug("Forecast found in cache", ports.F("key", key))
		return &Forecast{Body: body, CacheHit: true}, nil
	} else if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Warn("Forecast cache read failed", ports.F("key", key), ports.F("error", err))
	}
	uc.metrics.RecordCacheMiss(ctx, ports.CacheForecast)

	body, err := uc.fetchShared(ctx, request, key)
	if err != nil {
		return nil, fmt.Errorf("get forecast %s: %w", key, err)
	}

	return &Forecast{Body: body}, nil
}

// fetchShared coalesces misses per key. The upstream call is detached from
// the caller that started it; every caller waits only as long as its own ctx.
func (uc *UseCase) fetchShared(ctx context.Context, request Request, key string) ([]byte, error) {
	uc.pending.Add(1)
	ch := uc.inflight.DoChan(key, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), upstreamTimeout)
		defer cancel()
		return uc.fetchAndCache(fetchCtx, request, key)
	})

	done := make(chan singleflight.Result, 1)
	go func() {
		defer uc.pending.Done()
		done <- <-ch
	}()

	select {
	case res := <-done:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Drain blocks until in-flight upstream fetches have finished
func (uc *UseCase) Drain() {
	uc.pending.Wait()
}

func (uc *UseCase) fetchAndCache(ctx context.Context, request Request, key string) ([]byte, error) {
	body, err := uc.provider.GetForecast(ctx, request.Lat, request.Lon)
	if err != nil {
		uc.logger.Error("Forecast provider failed",
			ports.F("provider", uc.provider.GetProviderName()),
			ports.F("key", key),
			ports.F("error", err))
		return nil, errors.NewExternalAPIError(MessageForecastFailed, err)
	}

	ttl := uc.flags.TTL(ctx, TTLFlagKey, uc.defaultTTL)
	if cacheErr := uc.cache.Set(ctx, key, body, ttl); cacheErr != nil {
		uc.logger.Warn("Failed to cache forecast",
			ports.F("key", key),
			ports.F("error", cacheErr))
	}
	return body, nil
}
