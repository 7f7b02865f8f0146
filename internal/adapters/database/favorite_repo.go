package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatheredge.app/internal/ports"
	"weatheredge.app/pkg/errors"
)

// FavoriteModel represents the database model for a device's saved city
type FavoriteModel struct {
	ID       uint    `gorm:"primaryKey"`
	DeviceID string  `gorm:"uniqueIndex:idx_favorites_device_city;not null"`
	City     string  `gorm:"uniqueIndex:idx_favorites_device_city;not null"`
	Lat      float64 `gorm:"not null"`
	Lon      float64 `gorm:"not null"`
	AddedAt  int64   `gorm:"not null"`
}

func (FavoriteModel) TableName() string {
	return "favorites"
}

// FavoriteRepositoryAdapter implements the FavoriteRepository port using GORM
type FavoriteRepositoryAdapter struct {
	db *gorm.DB
}

func NewFavoriteRepositoryAdapter(db *gorm.DB) *FavoriteRepositoryAdapter {
	return &FavoriteRepositoryAdapter{db: db}
}

// ListByDevice returns the device's favorites, newest first
func (r *FavoriteRepositoryAdapter) ListByDevice(ctx context.Context, deviceID string) ([]*ports.FavoriteData, error) {
	if deviceID == "" {
		return nil, errors.NewValidationError("device ID cannot be empty")
	}

	var models []FavoriteModel
	result := r.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("added_at DESC").
		Order("id DESC").
		Find(&models)
	if result.Error != nil {
		return nil, errors.NewDatabaseError("failed to list favorites", result.Error)
	}

	out := make([]*ports.FavoriteData, 0, len(models))
	for i := range models {
		out = append(out, r.modelToData(&models[i]))
	}
	return out, nil
}

// AddIfAbsent inserts the favorite; an existing (device, city) pair is left untouched
func (r *FavoriteRepositoryAdapter) AddIfAbsent(ctx context.Context, fav *ports.FavoriteData) error {
	if fav == nil {
		return errors.NewValidationError("favorite cannot be nil")
	}
	if fav.DeviceID == "" || fav.City == "" {
		return errors.NewValidationError("device ID and city are required")
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(r.dataToModel(fav))
	if result.Error != nil {
		return errors.NewDatabaseError("failed to add favorite", result.Error)
	}

	return nil
}

// Remove deletes the device's favorite for city. Removing an absent row is not an error.
func (r *FavoriteRepositoryAdapter) Remove(ctx context.Context, deviceID, city string) error {
	if deviceID == "" || city == "" {
		return errors.NewValidationError("device ID and city are required")
	}

	result := r.db.WithContext(ctx).
		Where("device_id = ? AND city = ?", deviceID, city).
		Delete(&FavoriteModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to remove favorite", result.Error)
	}

	return nil
}

func (r *FavoriteRepositoryAdapter) dataToModel(data *ports.FavoriteData) *FavoriteModel {
	return &FavoriteModel{
		DeviceID: data.DeviceID,
		City:     data.City,
		Lat:      data.Lat,
		Lon:      data.Lon,
		AddedAt:  data.AddedAt,
	}
}

func (r *FavoriteRepositoryAdapter) modelToData(model *FavoriteModel) *ports.FavoriteData {
	return &ports.FavoriteData{
		DeviceID: model.DeviceID,
		City:     model.City,
		Lat:      model.Lat,
		Lon:      model.Lon,
		AddedAt:  model.AddedAt,
	}
}
