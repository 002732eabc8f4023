package user

import (
	"context"
	"errors"

	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/constant"
	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/entities"
	"gorm.io/gorm"
)

type Service interface {
	GetMe(ctx context.Context, userID uint) (dtos.UserResponse, error)
	UpdateMe(ctx context.Context, userID uint, req dtos.UpdateProfileDTO) error
	DeleteMe(ctx context.Context, userID uint) error
	GetRoutine(ctx context.Context, userID uint) (dtos.RoutineResponse, error)
	UpdateRoutine(ctx context.Context, userID uint, req dtos.UpdateRoutineDTO) error
}

type service struct {
	repository Repository
}

func NewService(r Repository) Service {
	return &service{
		repository: r,
	}
}

func (s *service) GetMe(ctx context.Context, userID uint) (dtos.UserResponse, error) {
	user, err := s.repository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dtos.UserResponse{}, apperr.NotFound(constant.USER_NOT_FOUND)
		}
		return dtos.UserResponse{}, err
	}
	return dtos.NewUserResponse(user), nil
}

func (s *service) UpdateMe(ctx context.Context, userID uint, req dtos.UpdateProfileDTO) error {
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := s.repository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(constant.USER_NOT_FOUND)
		}
		return err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.SkinType != nil {
		fields["skin_type"] = *req.SkinType
	}
	if req.SkinConditions != nil {
		fields["skin_conditions"] = entities.StringList(req.SkinConditions)
	}
	if req.Allergens != nil {
		fields["allergens"] = entities.StringList(req.Allergens)
	}
	if len(fields) == 0 {
		return nil
	}

	return s.repository.UpdateFields(ctx, user.ID, fields)
}

func (s *service) DeleteMe(ctx context.Context, userID uint) error {
	return s.repository.SoftDelete(ctx, userID)
}

func (s *service) GetRoutine(ctx context.Context, userID uint) (dtos.RoutineResponse, error) {
	items, err := s.repository.FindRoutine(ctx, userID)
	if err != nil {
		return dtos.RoutineResponse{}, err
	}

	routine := dtos.RoutineResponse{Morning: []uint{}, Evening: []uint{}}
	for _, item := range items {
		switch item.TimeOfDay {
		case entities.RoutineMorning:
			routine.Morning = append(routine.Morning, item.ProductID)
		case entities.RoutineEvening:
			routine.Evening = append(routine.Evening, item.ProductID)
		}
	}
	return routine, nil
}

func (s *service) UpdateRoutine(ctx context.Context, userID uint, req dtos.UpdateRoutineDTO) error {
	if req.Morning == nil || req.Evening == nil {
		return apperr.Validation("Morning and evening must be arrays of product IDs")
	}
	if len(req.Morning) > constant.ROUTINE_MAX_ITEMS || len(req.Evening) > constant.ROUTINE_MAX_ITEMS {
		return apperr.Validation("Maximum 20 items per routine")
	}

	items := make([]entities.RoutineItem, 0, len(req.Morning)+len(req.Evening))
	for i, productID := range req.Morning {
		items = append(items, entities.RoutineItem{
			UserID:     userID,
			ProductID:  productID,
			TimeOfDay:  entities.RoutineMorning,
			OrderIndex: i,
		})
	}
	for i, productID := range req.Evening {
		items = append(items, entities.RoutineItem{
			UserID:     userID,
			ProductID:  productID,
			TimeOfDay:  entities.RoutineEvening,
			OrderIndex: i,
		})
	}

	return s.repository.ReplaceRoutine(ctx, userID, items)
}
