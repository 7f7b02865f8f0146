package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatheredge.app/internal/ports"
	"weatheredge.app/pkg/errors"
)

// GeocodeCacheModel is one durable geocoding result, keyed by normalized query.
// UpdatedAtMillis is managed by the application clock, not by GORM.
type GeocodeCacheModel struct {
	Normalized      string  `gorm:"primaryKey"`
	Query           string  `gorm:"not null"`
	Latitude        float64 `gorm:"not null"`
	Longitude       float64 `gorm:"not null"`
	Hits            int64   `gorm:"not null;default:1"`
	UpdatedAtMillis int64   `gorm:"column:updated_at;index;not null"`
}

func (GeocodeCacheModel) TableName() string {
	return "geocode_cache"
}

// GeocodeCacheRepositoryAdapter implements the GeocodeCacheRepository port using GORM
type GeocodeCacheRepositoryAdapter struct {
	db *gorm.DB
}

func NewGeocodeCacheRepositoryAdapter(db *gorm.DB) *GeocodeCacheRepositoryAdapter {
	return &GeocodeCacheRepositoryAdapter{db: db}
}

// FindByNormalized returns the row for a normalized query, or a NotFound error
func (r *GeocodeCacheRepositoryAdapter) FindByNormalized(ctx context.Context, normalized string) (*ports.GeocodeCacheData, error) {
	if normalized == "" {
		return nil, errors.NewValidationError("normalized query cannot be empty")
	}

	var model GeocodeCacheModel
	result := r.db.WithContext(ctx).Where("normalized = ?", normalized).Take(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("geocode cache entry not found")
		}
		return nil, errors.NewDatabaseError("failed to read geocode cache", result.Error)
	}

	return r.modelToData(&model), nil
}

// Upsert inserts the row or replaces coordinates, hits and timestamp of the
// existing one. The first-seen query text is kept.
func (r *GeocodeCacheRepositoryAdapter) Upsert(ctx context.Context, entry *ports.GeocodeCacheData) error {
	if entry == nil {
		return errors.NewValidationError("geocode cache entry cannot be nil")
	}
	if entry.Normalized == "" {
		return errors.NewValidationError("normalized query cannot be empty")
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "normalized"}},
		DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "hits", "updated_at"}),
	}).Create(r.dataToModel(entry))
	if result.Error != nil {
		return errors.NewDatabaseError("failed to upsert geocode cache entry", result.Error)
	}

	return nil
}

// RecordHit increments the hit counter and bumps the timestamp in one statement
func (r *GeocodeCacheRepositoryAdapter) RecordHit(ctx context.Context, normalized string, updatedAt int64) error {
	result := r.db.WithContext(ctx).
		Model(&GeocodeCacheModel{}).
		Where("normalized = ?", normalized).
		UpdateColumns(map[string]interface{}{
			"hits":       gorm.Expr("hits + ?", 1),
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to record geocode cache hit", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("geocode cache entry not found")
	}

	return nil
}

// DeleteOlderThan removes rows written strictly before cutoff (epoch ms)
func (r *GeocodeCacheRepositoryAdapter) DeleteOlderThan(ctx context.Context, cutoff int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("updated_at < ?", cutoff).Delete(&GeocodeCacheModel{})
	if result.Error != nil {
		return 0, errors.NewDatabaseError("failed to delete stale geocode cache entries", result.Error)
	}

	return result.RowsAffected, nil
}

func (r *GeocodeCacheRepositoryAdapter) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&GeocodeCacheModel{}).Count(&count).Error; err != nil {
		return 0, errors.NewDatabaseError("failed to count geocode cache entries", err)
	}
	return count, nil
}

func (r *GeocodeCacheRepositoryAdapter) dataToModel(data *ports.GeocodeCacheData) *GeocodeCacheModel {
	return &GeocodeCacheModel{
		Normalized:      data.Normalized,
		Query:           data.Query,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		Hits:            data.Hits,
		UpdatedAtMillis: data.UpdatedAt,
	}
}

func (r *GeocodeCacheRepositoryAdapter) modelToData(model *GeocodeCacheModel) *ports.GeocodeCacheData {
	return &ports.GeocodeCacheData{
		Normalized: model.Normalized,
		Query:      model.Query,
		Latitude:   model.Latitude,
		Longitude:  model.Longitude,
		Hits:       model.Hits,
		UpdatedAt:  model.UpdatedAtMillis,
	}
}
