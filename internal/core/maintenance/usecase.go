package maintenance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"weatheredge.app/internal/core/geocode"
	"weatheredge.app/internal/ports"
	"weatheredge.app/pkg/errors"
)

const defaultPrewarmConcurrency = 4

// Resolver is the geocoding path prewarm drives for every city
type Resolver interface {
	Resolve(ctx context.Context, request geocode.Request) (*geocode.Result, error)
}

type UseCase struct {
	cache       ports.GeocodeCacheRepository
	resolver    Resolver
	flags       geocode.TTLResolver
	logger      ports.Logger
	production  bool
	concurrency int
	defaultTTL  time.Duration
	now         func() time.Time
}

type UseCaseDependencies struct {
	Cache       ports.GeocodeCacheRepository
	Resolver    Resolver
	Flags       geocode.TTLResolver
	Logger      ports.Logger
	Production  bool
	Concurrency int
	DefaultTTL  time.Duration
	Now         func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Cache == nil {
		return nil, errors.NewValidationError("geocode cache repository is required")
	}
	if deps.Resolver == nil {
		return nil, errors.NewValidationError("resolver is required")
	}
	if deps.Flags == nil {
		return nil, errors.NewValidationError("flags are required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	concurrency := deps.Concurrency
	if concurrency <= 0 {
		concurrency = defaultPrewarmConcurrency
	}
	defaultTTL := deps.DefaultTTL
	if defaultTTL <= 0 {
		defaultTTL = geocode.DefaultCacheTTL
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &UseCase{
		cache:       deps.Cache,
		resolver:    deps.Resolver,
		flags:       deps.Flags,
		logger:      deps.Logger,
		production:  deps.Production,
		concurrency: concurrency,
		defaultTTL:  defaultTTL,
		now:         now,
	}, nil
}

func (uc *UseCase) guard() error {
	if uc.production {
		return errors.NewForbiddenError(MessageNotAllowed)
	}
	return nil
}

// Evict deletes cache rows last written before now minus the TTL
func (uc *UseCase) Evict(ctx context.Context, params EvictParams) (*EvictResult, error) {
	if err := uc.guard(); err != nil {
		return nil, err
	}

	ttlMs, ok := params.ttlOverride()
	if !ok {
		ttlMs = uc.flags.TTL(ctx, geocode.TTLFlagKey, uc.defaultTTL).Milliseconds()
	}
	cutoff := cutoffBefore(uc.now().UnixMilli(), ttlMs)

	deleted, err := uc.cache.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		uc.logger.Error("Cache eviction failed",
			ports.F("cutoff", cutoff),
			ports.F("error", err))
		if errors.IsDatabaseError(err) {
			return nil, err
		}
		return nil, errors.NewDatabaseError("failed to evict geocode cache", err)
	}

	uc.logger.Info("Evicted stale geocode cache rows",
		ports.F("deleted", deleted),
		ports.F("cutoff", cutoff),
		ports.F("ttl_ms", ttlMs))

	return &EvictResult{Deleted: deleted, Cutoff: cutoff}, nil
}

// Prewarm resolves every city through the live geocoding path. Cities run
// concurrently, bounded by the configured limit, and one failure never
// aborts the batch. Results keep the input order.
func (uc *UseCase) Prewarm(ctx context.Context, params PrewarmParams) (*PrewarmResult, error) {
	if err := uc.guard(); err != nil {
		return nil, err
	}

	cities := params.cities()
	batchID := uuid.NewString()
	results := make([]CityResult, len(cities))

	uc.logger.Info("Prewarm started",
		ports.F("batch_id", batchID),
		ports.F("cities", len(cities)),
		ports.F("concurrency", uc.concurrency))

	var g errgroup.Group
	g.SetLimit(uc.concurrency)
	for i, city := range cities {
		i, city := i, city
		g.Go(func() error {
			results[i] = uc.prewarmCity(ctx, batchID, city)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if !r.OK {
			failed++
		}
	}
	uc.logger.Info("Prewarm finished",
		ports.F("batch_id", batchID),
		ports.F("count", len(results)),
		ports.F("failed", failed))

	return &PrewarmResult{Count: len(results), Results: results}, nil
}

func (uc *UseCase) prewarmCity(ctx context.Context, batchID, city string) CityResult {
	result, err := uc.resolver.Resolve(ctx, geocode.Request{Query: city})
	if err != nil {
		uc.logger.Warn("Prewarm city failed",
			ports.F("batch_id", batchID),
			ports.F("city", city),
			ports.F("error", err))
		return CityResult{City: city, OK: false, Error: errors.MessageOf(err)}
	}
	return CityResult{City: city, OK: true, Source: result.Label()}
}
