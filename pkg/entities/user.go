package entities

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email            string     `json:"email" gorm:"uniqueIndex;not null"`
	Password         string     `json:"-" gorm:"not null"`
	Name             string     `json:"name" gorm:"type:varchar(100);not null"`
	Age              int        `json:"age" gorm:"not null"`
	SkinType         string     `json:"skin_type" gorm:"type:varchar(20);not null"`
	SkinConditions   StringList `json:"skin_conditions" gorm:"type:text"`
	Allergens        StringList `json:"allergens" gorm:"type:text"`
	IsVerified       bool       `json:"is_verified" gorm:"default:false"`
	IsPremium        bool       `json:"is_premium" gorm:"default:false"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at"`
}
