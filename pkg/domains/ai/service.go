// Package ai is a placeholder analysis engine. Results are canned but
// every request and response is persisted for when a real model lands.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/constant"
	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/entities"
	"gorm.io/gorm"
)

type ProductFinder interface {
	FindByID(ctx context.Context, id uint) (entities.Product, error)
	FindByBarcodes(ctx context.Context, barcodes []string) ([]entities.Product, error)
}

type UserGetter interface {
	FindByID(ctx context.Context, id uint) (entities.User, error)
}

type Service interface {
	AnalyzeRoutine(ctx context.Context, userID uint, req dtos.AnalyzeRoutineDTO) (dtos.RoutineAnalysis, error)
	AskProduct(ctx context.Context, userID uint, req dtos.AskProductDTO) (dtos.ProductAdvice, error)
}

type service struct {
	db       *gorm.DB
	products ProductFinder
	users    UserGetter
}

func NewService(db *gorm.DB, products ProductFinder, users UserGetter) Service {
	return &service{
		db:       db,
		products: products,
		users:    users,
	}
}

func (s *service) AnalyzeRoutine(ctx context.Context, userID uint, req dtos.AnalyzeRoutineDTO) (dtos.RoutineAnalysis, error) {
	if req.ProductBarcodes == nil {
		return dtos.RoutineAnalysis{}, apperr.Validation("productBarcodes must be an array")
	}

	if _, err := s.products.FindByBarcodes(ctx, req.ProductBarcodes); err != nil {
		return dtos.RoutineAnalysis{}, err
	}

	analysis := dtos.RoutineAnalysis{
		OverallScore: 85,
		Strengths: []string{
			"Good hydration coverage with multiple humectants",
			"Balanced actives for anti-aging",
			"No conflicting ingredients detected",
		},
		Concerns: []string{
			"Consider adding a dedicated sunscreen for daytime",
			"Retinol and AHA should not be used together in the same routine",
		},
		Recommendations: []string{
			"Move AHA exfoliant to evening routine only",
			"Add a broad-spectrum SPF 30+ product for morning",
		},
		IngredientInteractions: map[string][]string{
			"positive": {"Niacinamide + Hyaluronic Acid"},
			"negative": {"Retinol + AHA (use separately)"},
		},
	}

	record := entities.AIAnalysis{
		UserID:       userID,
		AnalysisType: "routine",
		InputData:    entities.JSONMap{"productBarcodes": req.ProductBarcodes},
		Result: entities.JSONMap{
			"overallScore":    analysis.OverallScore,
			"strengths":       analysis.Strengths,
			"concerns":        analysis.Concerns,
			"recommendations": analysis.Recommendations,
		},
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return dtos.RoutineAnalysis{}, err
	}

	return analysis, nil
}

func (s *service) AskProduct(ctx context.Context, userID uint, req dtos.AskProductDTO) (dtos.ProductAdvice, error) {
	if req.ProductID == 0 || req.Question == "" {
		return dtos.ProductAdvice{}, apperr.Validation("productId and question are required")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dtos.ProductAdvice{}, apperr.NotFound(constant.USER_NOT_FOUND)
		}
		return dtos.ProductAdvice{}, err
	}

	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dtos.ProductAdvice{}, apperr.NotFound(constant.PRODUCT_NOT_FOUND)
		}
		return dtos.ProductAdvice{}, err
	}

	advice := buildAdvice(product, user)

	record := entities.AIAnalysis{
		UserID:       userID,
		AnalysisType: "product_question",
		InputData:    entities.JSONMap{"productId": req.ProductID, "question": req.Question},
		Result:       entities.JSONMap{"answer": advice},
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return dtos.ProductAdvice{}, err
	}

	return dtos.ProductAdvice{Answer: advice}, nil
}

func buildAdvice(product entities.Product, user entities.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s by %s is generally suitable for %s skin.", product.Name, product.Brand, user.SkinType)
	for _, allergen := range user.Allergens {
		for _, ingredient := range product.Ingredients {
			if strings.EqualFold(strings.TrimSpace(ingredient), strings.TrimSpace(allergen)) {
				fmt.Fprintf(&b, " Caution: it contains %s, which is on your allergen list.", ingredient)
			}
		}
	}
	b.WriteString(" Patch-test before regular use and introduce one new product at a time.")
	return b.String()
}
