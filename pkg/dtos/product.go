package dtos

import "github.com/glowmate/api/pkg/entities"

type CreateProductDTO struct {
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl"`
	Price       float64  `json:"price"`
	Barcode     string   `json:"barcode"`
}

// ProductFilter collects the catalog query parameters.
type ProductFilter struct {
	Query     string
	Brand     string
	Category  string
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	Sort      string
	Page      int
	Limit     int
}

type ProductListMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type ProductListResponse struct {
	Data []entities.Product `json:"data"`
	Meta ProductListMeta    `json:"meta"`
}

type CreateReviewDTO struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type UpdateReviewDTO struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

// ReviewWithProduct decorates a review with a short product summary for
// the "my reviews" listing.
type ReviewWithProduct struct {
	entities.Review
	Product ProductSummary `json:"product"`
}

type ProductSummary struct {
	ID      uint    `json:"id"`
	Barcode *string `json:"barcode"`
	Name    string  `json:"name"`
	Brand   string  `json:"brand"`
}

// ReviewWithUser decorates a review with the reviewer's display name.
type ReviewWithUser struct {
	entities.Review
	UserName string `json:"userName"`
}
