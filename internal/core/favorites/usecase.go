package favorites

import (
	"context"
	"strings"
	"time"

	"weatheredge.app/internal/ports"
	"weatheredge.app/pkg/errors"
	"weatheredge.app/pkg/validation"
)

type UseCase struct {
	repo   ports.FavoriteRepository
	logger ports.Logger
	now    func() time.Time
}

type UseCaseDependencies struct {
	Repository ports.FavoriteRepository
	Logger     ports.Logger
	Now        func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("favorite repository is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &UseCase{repo: deps.Repository, logger: deps.Logger, now: now}, nil
}

// List returns the device's favorites, newest first
func (uc *UseCase) List(ctx context.Context, deviceID string) ([]Favorite, error) {
	deviceID, ok := validation.TrimAndValidate(deviceID)
	if !ok {
		return nil, errors.NewValidationError(MessageMissingDeviceID)
	}

	rows, err := uc.repo.ListByDevice(ctx, deviceID)
	if err != nil {
		return nil, uc.storageError("failed to list favorites", err)
	}

	out := make([]Favorite, 0, len(rows))
	for _, row := range rows {
		out = append(out, Favorite{City: row.City, Lat: row.Lat, Lon: row.Lon, AddedAt: row.AddedAt})
	}
	return out, nil
}

// Add saves a city for the device, ignoring duplicates, and returns the full list
func (uc *UseCase) Add(ctx context.Context, request AddRequest) ([]Favorite, error) {
	deviceID, ok := validation.TrimAndValidate(request.DeviceID)
	if !ok {
		return nil, errors.NewValidationError(MessageMissingDeviceID)
	}
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	fav := &ports.FavoriteData{
		DeviceID: deviceID,
		City:     strings.TrimSpace(request.City),
		Lat:      *request.Lat,
		Lon:      *request.Lon,
		AddedAt:  uc.now().UnixMilli(),
	}
	if err := uc.repo.AddIfAbsent(ctx, fav); err != nil {
		return nil, uc.storageError("failed to add favorite", err)
	}

	uc.logger.Debug("Favorite saved",
		ports.F("device_id", deviceID),
		ports.F("city", fav.City))

	return uc.List(ctx, deviceID)
}

// Remove deletes the device's favorite for city. Removing an absent city succeeds.
func (uc *UseCase) Remove(ctx context.Context, deviceID, city string) error {
	deviceID, ok := validation.TrimAndValidate(deviceID)
	if !ok {
		return errors.NewValidationError(MessageMissingDeviceID)
	}
	city, ok = validation.TrimAndValidate(city)
	if !ok {
		return errors.NewValidationError("city is required")
	}

	if err := uc.repo.Remove(ctx, deviceID, city); err != nil {
		return uc.storageError("failed to remove favorite", err)
	}
	return nil
}

func (uc *UseCase) storageError(message string, err error) error {
	uc.logger.Error(message, ports.F("error", err))
	if errors.IsDatabaseError(err) {
		return err
	}
	return errors.NewDatabaseError(message, err)
}
