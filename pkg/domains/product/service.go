package product

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"

	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/clients"
	"github.com/glowmate/api/pkg/constant"
	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/entities"
	"gorm.io/gorm"
)

const recommendationPool = 50

type UserGetter interface {
	FindByID(ctx context.Context, id uint) (entities.User, error)
}

type Service interface {
	List(ctx context.Context, filter dtos.ProductFilter) (dtos.ProductListResponse, error)
	Create(ctx context.Context, req dtos.CreateProductDTO) (entities.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (entities.Product, error)
	RecommendFor(ctx context.Context, userID uint) ([]entities.Product, error)
}

type service struct {
	repository Repository
	users      UserGetter
	obf        *clients.OpenBeautyFactsClient
}

func NewService(r Repository, users UserGetter, obf *clients.OpenBeautyFactsClient) Service {
	return &service{
		repository: r,
		users:      users,
		obf:        obf,
	}
}

func (s *service) List(ctx context.Context, filter dtos.ProductFilter) (dtos.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	products, total, err := s.repository.List(ctx, filter)
	if err != nil {
		return dtos.ProductListResponse{}, err
	}
	if products == nil {
		products = []entities.Product{}
	}

	return dtos.ProductListResponse{
		Data: products,
		Meta: dtos.ProductListMeta{
			Total:      total,
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		},
	}, nil
}

func (s *service) Create(ctx context.Context, req dtos.CreateProductDTO) (entities.Product, error) {
	if req.Name == "" {
		return entities.Product{}, apperr.Validation("Name is required")
	}

	product := entities.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    req.Category,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Tags:        req.Tags,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
	}
	if req.Barcode != "" {
		if _, err := s.repository.FindByBarcode(ctx, req.Barcode); err == nil {
			return entities.Product{}, apperr.Duplicate(apperr.CodeDuplicateEntry, constant.DUPLICATE_BARCODE)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Product{}, err
		}
		product.Barcode = &req.Barcode
	}

	if err := s.repository.Create(ctx, &product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.Product{}, apperr.Duplicate(apperr.CodeDuplicateEntry, constant.DUPLICATE_BARCODE)
		}
		return entities.Product{}, err
	}

	return product, nil
}

// GetByBarcode serves the local catalog first and falls back to
// OpenBeautyFacts; a successful import is persisted so the next lookup
// is local.
func (s *service) GetByBarcode(ctx context.Context, barcode string) (entities.Product, error) {
	product, err := s.repository.FindByBarcode(ctx, barcode)
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Product{}, err
	}

	imported, err := s.obf.FetchProduct(ctx, barcode)
	if err != nil {
		log.Printf("[warn] OpenBeautyFacts lookup failed for %s: %v", barcode, err)
		return entities.Product{}, apperr.NotFound(constant.PRODUCT_NOT_FOUND)
	}
	if imported == nil {
		return entities.Product{}, apperr.NotFound(constant.PRODUCT_NOT_FOUND)
	}

	product = entities.Product{
		Barcode:     &barcode,
		Name:        imported.Name,
		Brand:       imported.Brand,
		Category:    constant.OBF_DEFAULT_CATEGORY,
		Description: constant.OBF_IMPORT_DESCRIPTION,
		ImageURL:    imported.ImageURL,
		Ingredients: imported.Ingredients,
		Tags:        imported.Tags,
	}
	if err := s.repository.Create(ctx, &product); err != nil {
		// A concurrent import may have won the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.repository.FindByBarcode(ctx, barcode)
		}
		return entities.Product{}, err
	}

	log.Printf("[info] product %s created from external API", barcode)
	return product, nil
}

// RecommendFor returns top-rated products that do not contain any of the
// user's allergens.
func (s *service) RecommendFor(ctx context.Context, userID uint) ([]entities.Product, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(constant.USER_NOT_FOUND)
		}
		return nil, err
	}

	candidates, err := s.repository.TopRated(ctx, recommendationPool)
	if err != nil {
		return nil, err
	}

	recommended := make([]entities.Product, 0, 10)
	for _, product := range candidates {
		if containsAny(product.Ingredients, user.Allergens) {
			continue
		}
		recommended = append(recommended, product)
		if len(recommended) == 10 {
			break
		}
	}
	return recommended, nil
}

func containsAny(ingredients, allergens []string) bool {
	for _, allergen := range allergens {
		for _, ingredient := range ingredients {
			if strings.EqualFold(strings.TrimSpace(ingredient), strings.TrimSpace(allergen)) {
				return true
			}
		}
	}
	return false
}
