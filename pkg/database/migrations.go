package database

import (
	"github.com/glowmate/api/pkg/entities"
	"gorm.io/gorm"
)

// AutoMigrate runs database migrations
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.VerificationToken{},
		&entities.PasswordResetToken{},
		&entities.WaitlistEntry{},
		&entities.Product{},
		&entities.Review{},
		&entities.Ingredient{},
		&entities.RoutineItem{},
		&entities.AIAnalysis{},
	)
}
