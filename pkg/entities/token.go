package entities

import "time"

// VerificationToken is a single-use email verification token. It is
// deleted on consumption; expired tokens are rejected at lookup time.
type VerificationToken struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Token     string    `gorm:"uniqueIndex;type:varchar(64);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// PasswordResetToken is valid only while UsedAt is null and ExpiresAt is
// in the future. Consumption sets UsedAt in the same transaction that
// updates the password.
type PasswordResetToken struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Token     string    `gorm:"uniqueIndex;type:varchar(64);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	UsedAt    *time.Time
	CreatedAt time.Time
}
