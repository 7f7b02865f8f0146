package flags

import (
	"context"
	"time"

	"weatheredge.app/internal/ports"
	"weatheredge.app/pkg/errors"
)

// Result is the outcome of reading the whole flag store
type Result struct {
	Flags map[string]interface{}
	Err   error
}

// Service reads runtime flags. Store failures never propagate: callers get
// defaults or fallbacks and the failure is logged.
type Service struct {
	store    ports.FlagStore
	defaults map[string]interface{}
	logger   ports.Logger
}

type ServiceDependencies struct {
	Store    ports.FlagStore
	Defaults map[string]interface{}
	Logger   ports.Logger
}

func NewService(deps ServiceDependencies) (*Service, error) {
	if deps.Store == nil {
		return nil, errors.NewValidationError("flag store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	defaults := deps.Defaults
	if defaults == nil {
		defaults = map[string]interface{}{}
	}

	return &Service{
		store:    deps.Store,
		defaults: defaults,
		logger:   deps.Logger,
	}, nil
}

// Load reads every stored flag
func (s *Service) Load(ctx context.Context) Result {
	flags, err := s.store.GetFlags(ctx)
	if err != nil {
		return Result{Err: err}
	}
	if flags == nil {
		flags = map[string]interface{}{}
	}
	return Result{Flags: flags}
}

// Merged returns stored flags layered over the defaults
func (s *Service) Merged(ctx context.Context) map[string]interface{} {
	res := s.Load(ctx)
	if res.Err != nil {
		s.logger.Warn("Flag store read failed, serving defaults", ports.F("error", res.Err))
	}
	return MergeWithDefaults(res.Flags, s.defaults)
}

// TTL reads a millisecond flag and falls back when it is unset, unparsable,
// non-positive or unreadable.
func (s *Service) TTL(ctx context.Context, key string, fallback time.Duration) time.Duration {
	raw, err := s.store.GetFlag(ctx, key)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			s.logger.Warn("Flag read failed, using fallback",
				ports.F("key", key),
				ports.F("error", err))
		}
		return fallback
	}

	ttl, ok := ParseMillis(raw)
	if !ok {
		s.logger.Warn("Ignoring invalid duration flag",
			ports.F("key", key),
			ports.F("value", raw))
		return fallback
	}
	return ttl
}
