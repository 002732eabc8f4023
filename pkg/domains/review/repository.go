package review

import (
	"context"

	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/entities"
	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, id uint) (entities.Review, error)
	FindByUserAndProduct(ctx context.Context, userID, productID uint) (entities.Review, error)
	Create(ctx context.Context, review *entities.Review) error
	Update(ctx context.Context, review entities.Review) error
	Delete(ctx context.Context, id uint) error
	ListByProduct(ctx context.Context, productID uint, limit, offset int) ([]dtos.ReviewWithUser, int64, error)
	ListByUser(ctx context.Context, userID uint) ([]dtos.ReviewWithProduct, error)
	RecalcProductStats(ctx context.Context, productID uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) FindByID(ctx context.Context, id uint) (entities.Review, error) {
	var review entities.Review
	err := r.db.WithContext(ctx).First(&review, id).Error
	return review, err
}

func (r *repository) FindByUserAndProduct(ctx context.Context, userID, productID uint) (entities.Review, error) {
	var review entities.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&review).Error
	return review, err
}

func (r *repository) Create(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *repository) Update(ctx context.Context, review entities.Review) error {
	return r.db.WithContext(ctx).Save(&review).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.Review{}, id).Error
}

func (r *repository) ListByProduct(ctx context.Context, productID uint, limit, offset int) ([]dtos.ReviewWithUser, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.Review{}).
		Where("product_id = ?", productID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []dtos.ReviewWithUser
	err := r.db.WithContext(ctx).Model(&entities.Review{}).
		Select("reviews.*, users.name AS user_name").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.product_id = ?", productID).
		Order("reviews.created_at desc").
		Limit(limit).Offset(offset).
		Scan(&reviews).Error
	return reviews, total, err
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]dtos.ReviewWithProduct, error) {
	var reviews []entities.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}

	out := make([]dtos.ReviewWithProduct, 0, len(reviews))
	for _, review := range reviews {
		var product entities.Product
		if err := r.db.WithContext(ctx).First(&product, review.ProductID).Error; err != nil {
			return nil, err
		}
		out = append(out, dtos.ReviewWithProduct{
			Review: review,
			Product: dtos.ProductSummary{
				ID:      product.ID,
				Barcode: product.Barcode,
				Name:    product.Name,
				Brand:   product.Brand,
			},
		})
	}
	return out, nil
}

// RecalcProductStats recomputes the denormalized rating aggregate from
// the review rows in one statement.
func (r *repository) RecalcProductStats(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE products SET
			average_rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE product_id = ?), 0),
			review_count = (SELECT COUNT(*) FROM reviews WHERE product_id = ?)
		WHERE id = ?`, productID, productID, productID).Error
}
