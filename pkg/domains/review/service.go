package review

import (
	"context"
	"errors"

	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/constant"
	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/entities"
	"gorm.io/gorm"
)

type ProductGetter interface {
	FindByBarcode(ctx context.Context, barcode string) (entities.Product, error)
}

type Service interface {
	Create(ctx context.Context, userID uint, barcode string, req dtos.CreateReviewDTO) (entities.Review, error)
	Update(ctx context.Context, userID uint, reviewID uint, req dtos.UpdateReviewDTO) (entities.Review, error)
	Delete(ctx context.Context, userID uint, reviewID uint) error
	ListForProduct(ctx context.Context, barcode string, limit, offset int) ([]dtos.ReviewWithUser, int64, error)
	ListMine(ctx context.Context, userID uint) ([]dtos.ReviewWithProduct, error)
}

type service struct {
	repository Repository
	products   ProductGetter
}

func NewService(r Repository, products ProductGetter) Service {
	return &service{
		repository: r,
		products:   products,
	}
}

func (s *service) Create(ctx context.Context, userID uint, barcode string, req dtos.CreateReviewDTO) (entities.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return entities.Review{}, apperr.Validation("Rating must be between 1 and 5")
	}

	product, err := s.products.FindByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Review{}, apperr.NotFound(constant.PRODUCT_NOT_FOUND)
		}
		return entities.Review{}, err
	}

	if _, err := s.repository.FindByUserAndProduct(ctx, userID, product.ID); err == nil {
		return entities.Review{}, apperr.Duplicate(apperr.CodeDuplicateReview, constant.DUPLICATE_REVIEW_MSG)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Review{}, err
	}

	review := entities.Review{
		UserID:    userID,
		ProductID: product.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.repository.Create(ctx, &review); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.Review{}, apperr.Duplicate(apperr.CodeDuplicateReview, constant.DUPLICATE_REVIEW_MSG)
		}
		return entities.Review{}, err
	}

	if err := s.repository.RecalcProductStats(ctx, product.ID); err != nil {
		return entities.Review{}, err
	}

	return review, nil
}

func (s *service) Update(ctx context.Context, userID uint, reviewID uint, req dtos.UpdateReviewDTO) (entities.Review, error) {
	review, err := s.repository.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Review{}, apperr.NotFound(constant.REVIEW_NOT_FOUND)
		}
		return entities.Review{}, err
	}
	if review.UserID != userID {
		return entities.Review{}, apperr.Forbidden(constant.REVIEW_NOT_OWNED)
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return entities.Review{}, apperr.Validation("Rating must be between 1 and 5")
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := s.repository.Update(ctx, review); err != nil {
		return entities.Review{}, err
	}
	if err := s.repository.RecalcProductStats(ctx, review.ProductID); err != nil {
		return entities.Review{}, err
	}
	return review, nil
}

func (s *service) Delete(ctx context.Context, userID uint, reviewID uint) error {
	review, err := s.repository.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(constant.REVIEW_NOT_FOUND)
		}
		return err
	}
	if review.UserID != userID {
		return apperr.Forbidden(constant.REVIEW_NOT_OWNED)
	}

	if err := s.repository.Delete(ctx, review.ID); err != nil {
		return err
	}
	return s.repository.RecalcProductStats(ctx, review.ProductID)
}

func (s *service) ListForProduct(ctx context.Context, barcode string, limit, offset int) ([]dtos.ReviewWithUser, int64, error) {
	product, err := s.products.FindByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperr.NotFound(constant.PRODUCT_NOT_FOUND)
		}
		return nil, 0, err
	}

	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	reviews, total, err := s.repository.ListByProduct(ctx, product.ID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if reviews == nil {
		reviews = []dtos.ReviewWithUser{}
	}
	return reviews, total, nil
}

func (s *service) ListMine(ctx context.Context, userID uint) ([]dtos.ReviewWithProduct, error) {
	reviews, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []dtos.ReviewWithProduct{}
	}
	return reviews, nil
}
