package geocode

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"weatheredge.app/internal/ports"
	"weatheredge.app/pkg/errors"
)

const (
	// DefaultCacheTTL applies when neither the flag store nor the caller provides one
	DefaultCacheTTL = 30 * 24 * time.Hour
	// TTLFlagKey is the flag store key holding the freshness window in milliseconds
	TTLFlagKey = "geocode_cache_ttl_ms"

	MessageMissingQuery    = "Missing q"
	MessageNoResults       = "No results"
	MessageGeocodingFailed = "Geocoding failed"

	hitWriteTimeout = 5 * time.Second
	// upstreamTimeout bounds a shared fetch that has outlived its callers
	upstreamTimeout = 30 * time.Second
)

// TTLResolver reads a millisecond duration flag, falling back when it is unusable
type TTLResolver interface {
	TTL(ctx context.Context, key string, fallback time.Duration) time.Duration
}

type UseCase struct {
	cache      ports.GeocodeCacheRepository
	provider   ports.GeocodingProvider
	flags      TTLResolver
	logger     ports.Logger
	metrics    ports.MetricsCollector
	defaultTTL time.Duration
	now        func() time.Time

	inflight singleflight.Group
	pending  sync.WaitGroup
}

type UseCaseDependencies struct {
	Cache      ports.GeocodeCacheRepository
	Provider   ports.GeocodingProvider
	Flags      TTLResolver
	Logger     ports.Logger
	Metrics    ports.MetricsCollector
	DefaultTTL time.Duration
	Now        func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Cache == nil {
		return nil, errors.NewValidationError("geocode cache repository is required")
	}
	if deps.Provider == nil {
		return nil, errors.NewValidationError("geocoding provider is required")
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
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &UseCase{
		cache:      deps.Cache,
		provider:   deps.Provider,
		flags:      deps.Flags,
		logger:     deps.Logger,
		metrics:    deps.Metrics,
		defaultTTL: defaultTTL,
		now:        now,
	}, nil
}

// Resolve returns coordinates for a place name, serving fresh cache rows and
// falling back to the upstream provider on a miss or stale row.
func (uc *UseCase) Resolve(ctx context.Context, request Request) (*Result, error) {
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError(MessageMissingQuery)
	}

	normalized := NormalizeQuery(request.Query)
	ttl := uc.flags.TTL(ctx, TTLFlagKey, uc.defaultTTL)
	now := uc.now()

	entry, err := uc.cache.FindByNormalized(ctx, normalized)
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Error("Geocode cache lookup failed",
			ports.F("normalized", normalized),
			ports.F("error", err))
		return nil, uc.storageError("failed to read geocode cache", err)
	}

	if entry != nil && IsFresh(entry.UpdatedAt, now, ttl) {
		uc.metrics.RecordCacheHit(ctx, ports.CacheGeocode)
		uc.recordHit(ctx, normalized, now.UnixMilli())
		uc.logger.Debug("Geocode served from cache",
			ports.F("normalized", normalized),
			ports.F("hits", entry.Hits))
		return &Result{
			Latitude:  entry.Latitude,
			Longitude: entry.Longitude,
			Source:    SourceCache,
		}, nil
	}

	uc.metrics.RecordCacheMiss(ctx, ports.CacheGeocode)
	if entry != nil {
		uc.logger.Debug("Geocode cache entry is stale",
			ports.F("normalized", normalized),
			ports.F("updated_at", entry.UpdatedAt),
			ports.F("ttl_ms", ttl.Milliseconds()))
	}

	query := strings.TrimSpace(request.Query)
	res, err := uc.fetchShared(ctx, query, normalized)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", query, err)
	}
	if res.Shared {
		uc.logger.Debug("Geocode upstream call coalesced", ports.F("normalized", normalized))
	}

	result := *res.Val.(*Result)
	return &result, nil
}

// fetchShared joins the in-flight fetch for normalized or starts one. The
// fetch runs detached from any single caller, so one caller going away does
// not fail the others; each caller still stops waiting when its own ctx ends.
func (uc *UseCase) fetchShared(ctx context.Context, query, normalized string) (singleflight.Result, error) {
	uc.pending.Add(1)
	ch := uc.inflight.DoChan(normalized, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), upstreamTimeout)
		defer cancel()
		return uc.fetchAndStore(fetchCtx, query, normalized)
	})

	done := make(chan singleflight.Result, 1)
	go func() {
		defer uc.pending.Done()
		done <- <-ch
	}()

	select {
	case res := <-done:
		return res, res.Err
	case <-ctx.Done():
		return singleflight.Result{}, ctx.Err()
	}
}

// fetchAndStore queries upstream with the caller's original text and upserts
// the first match, resetting the hit counter.
func (uc *UseCase) fetchAndStore(ctx context.Context, query, normalized string) (*Result, error) {
	candidates, err := uc.provider.Search(ctx, query)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(MessageNoResults)
		}
		return nil, errors.NewExternalAPIError(MessageGeocodingFailed, err)
	}
	if len(candidates) == 0 {
		return nil, errors.NewNotFoundError(MessageNoResults)
	}

	first := candidates[0]
	entry := &ports.GeocodeCacheData{
		Normalized: normalized,
		Query:      query,
		Latitude:   first.Latitude,
		Longitude:  first.Longitude,
		Hits:       1,
		UpdatedAt:  uc.now().UnixMilli(),
	}
	if err := uc.cache.Upsert(ctx, entry); err != nil {
		uc.logger.Error("Failed to store geocode result",
			ports.F("normalized", normalized),
			ports.F("error", err))
		return nil, uc.storageError("failed to store geocode result", err)
	}

	return &Result{
		Latitude:  first.Latitude,
		Longitude: first.Longitude,
		Source:    SourceUpstream,
		Provider:  uc.provider.GetProviderName(),
	}, nil
}

// recordHit bumps the hit counter without holding up the response. Failures
// are logged and dropped.
func (uc *UseCase) recordHit(ctx context.Context, normalized string, at int64) {
	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()

		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), hitWriteTimeout)
		defer cancel()

		if err := uc.cache.RecordHit(writeCtx, normalized, at); err != nil {
			uc.logger.Warn("Failed to record geocode cache hit",
				ports.F("normalized", normalized),
				ports.F("error", err))
		}
	}()
}

// Drain blocks until in-flight hit writes and upstream fetches have finished
func (uc *UseCase) Drain() {
	uc.pending.Wait()
}

func (uc *UseCase) storageError(message string, err error) error {
	if errors.IsDatabaseError(err) {
		return err
	}
	return errors.NewDatabaseError(message, err)
}
