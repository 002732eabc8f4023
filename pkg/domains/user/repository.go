package user

import (
	"context"

	"github.com/glowmate/api/pkg/entities"
	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, id uint) (entities.User, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, id uint) error
	FindRoutine(ctx context.Context, userID uint) ([]entities.RoutineItem, error)
	ReplaceRoutine(ctx context.Context, userID uint, items []entities.RoutineItem) error
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) FindByID(ctx context.Context, id uint) (entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	return user, err
}

func (r *repository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).Updates(fields).Error
}

// SoftDelete marks the row deleted; gorm excludes it from all further
// lookups, including login.
func (r *repository) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.User{}, id).Error
}

func (r *repository) FindRoutine(ctx context.Context, userID uint) ([]entities.RoutineItem, error) {
	var items []entities.RoutineItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("order_index asc").
		Find(&items).Error
	return items, err
}

// ReplaceRoutine swaps the user's whole routine in one transaction.
func (r *repository) ReplaceRoutine(ctx context.Context, userID uint, items []entities.RoutineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&entities.RoutineItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}
