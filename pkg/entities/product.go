package entities

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Barcode       *string    `json:"barcode" gorm:"uniqueIndex;type:varchar(64)"`
	Name          string     `json:"name" gorm:"type:varchar(255);not null"`
	Brand         string     `json:"brand" gorm:"type:varchar(255);index"`
	Category      string     `json:"category" gorm:"type:varchar(100);index"`
	Description   string     `json:"description"`
	Ingredients   StringList `json:"ingredients" gorm:"type:text"`
	Tags          StringList `json:"tags" gorm:"type:text"`
	ImageURL      string     `json:"image_url"`
	Price         float64    `json:"price"`
	AverageRating float64    `json:"average_rating" gorm:"default:0"`
	ReviewCount   int        `json:"review_count" gorm:"default:0"`
}

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex:idx_reviews_user_product;not null"`
	ProductID uint      `json:"product_id" gorm:"uniqueIndex:idx_reviews_user_product;not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Ingredient struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"index;type:varchar(255);not null"`
	Category string `json:"category" gorm:"type:varchar(100)"`
}
