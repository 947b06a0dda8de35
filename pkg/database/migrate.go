package database

import (
	"Scribe/models"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Blog{},
		&models.Recommendation{},
		&models.Follow{},
		&models.Mute{},
		&models.Notification{},
	)
}
