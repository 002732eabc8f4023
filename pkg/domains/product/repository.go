package product

import (
	"context"
	"strings"

	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/entities"
	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context, filter dtos.ProductFilter) ([]entities.Product, int64, error)
	Create(ctx context.Context, product *entities.Product) error
	FindByID(ctx context.Context, id uint) (entities.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (entities.Product, error)
	FindByBarcodes(ctx context.Context, barcodes []string) ([]entities.Product, error)
	TopRated(ctx context.Context, limit int) ([]entities.Product, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) List(ctx context.Context, filter dtos.ProductFilter) ([]entities.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Product{})

	if filter.Query != "" {
		q := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ?", q, q)
	}
	if filter.Brand != "" {
		query = query.Where("LOWER(brand) = ?", strings.ToLower(filter.Brand))
	}
	if filter.Category != "" {
		query = query.Where("LOWER(category) = ?", strings.ToLower(filter.Category))
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinRating != nil {
		query = query.Where("average_rating >= ?", *filter.MinRating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.Sort {
	case "price_asc":
		query = query.Order("price asc")
	case "price_desc":
		query = query.Order("price desc")
	case "newest":
		query = query.Order("created_at desc")
	default:
		query = query.Order("average_rating desc")
	}

	var products []entities.Product
	offset := (filter.Page - 1) * filter.Limit
	err := query.Limit(filter.Limit).Offset(offset).Find(&products).Error
	return products, total, err
}

func (r *repository) Create(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (entities.Product, error) {
	var product entities.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	return product, err
}

func (r *repository) FindByBarcode(ctx context.Context, barcode string) (entities.Product, error) {
	var product entities.Product
	err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&product).Error
	return product, err
}

func (r *repository) FindByBarcodes(ctx context.Context, barcodes []string) ([]entities.Product, error) {
	var products []entities.Product
	err := r.db.WithContext(ctx).Where("barcode IN ?", barcodes).Find(&products).Error
	return products, err
}

func (r *repository) TopRated(ctx context.Context, limit int) ([]entities.Product, error) {
	var products []entities.Product
	err := r.db.WithContext(ctx).
		Order("average_rating desc").
		Limit(limit).
		Find(&products).Error
	return products, err
}
