package ingredient

import (
	"context"
	"strings"

	"github.com/glowmate/api/pkg/entities"
	"gorm.io/gorm"
)

type Repository interface {
	Suggest(ctx context.Context, query string, limit int) ([]entities.Ingredient, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) Suggest(ctx context.Context, query string, limit int) ([]entities.Ingredient, error) {
	var ingredients []entities.Ingredient
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Order("name asc").
		Limit(limit).
		Find(&ingredients).Error
	return ingredients, err
}
