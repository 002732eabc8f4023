package entities

import "time"

// WaitlistEntry holds one waitlist signup. Position is derived on demand
// from points and creation time, never stored. ReferredBy is a label
// pointing at another entry's referral code, not a foreign key.
// Waitlist verification tokens carry no expiry; nulling the token on
// verification is the consumption mechanism.
type WaitlistEntry struct {
	ID                uint    `json:"id" gorm:"primaryKey"`
	Email             string  `json:"email" gorm:"uniqueIndex;not null"`
	ReferralCode      string  `json:"referral_code" gorm:"uniqueIndex;type:varchar(32);not null"`
	ReferredBy        *string `json:"referred_by" gorm:"type:varchar(32)"`
	Points            int     `json:"points" gorm:"not null;default:0"`
	IsVerified        bool    `json:"is_verified" gorm:"default:false"`
	VerificationToken *string `json:"-" gorm:"uniqueIndex;type:varchar(64)"`
	CreatedAt         time.Time
}
