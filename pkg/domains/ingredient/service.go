package ingredient

import (
	"context"

	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/constant"
	"github.com/glowmate/api/pkg/entities"
)

type Service interface {
	Suggest(ctx context.Context, query string, limit int) ([]entities.Ingredient, error)
}

type service struct {
	repository Repository
}

func NewService(r Repository) Service {
	return &service{
		repository: r,
	}
}

func (s *service) Suggest(ctx context.Context, query string, limit int) ([]entities.Ingredient, error) {
	if query == "" {
		return nil, apperr.Validation(`Query parameter "q" is required`)
	}
	if limit < 1 || limit > constant.INGREDIENT_SUGGEST_MAX {
		limit = 10
	}

	ingredients, err := s.repository.Suggest(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	if ingredients == nil {
		ingredients = []entities.Ingredient{}
	}
	return ingredients, nil
}
