package database

import "gorm.io/gorm"

// Models lists every table the service owns, in migration order
func Models() []interface{} {
	return []interface{}{
		&GeocodeCacheModel{},
		&FavoriteModel{},
	}
}

// Migrate creates or updates all tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
