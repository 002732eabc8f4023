// Package premium is a mock subscription flow; a real payment provider
// would slot in behind the same service surface.
package premium

import (
	"context"
	"time"

	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/constant"
	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/entities"
	"gorm.io/gorm"
)

type Service interface {
	Subscribe(ctx context.Context, userID uint, req dtos.SubscribeDTO) (dtos.SubscribeResponse, error)
}

type service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) Service {
	return &service{
		db: db,
	}
}

func (s *service) Subscribe(ctx context.Context, userID uint, req dtos.SubscribeDTO) (dtos.SubscribeResponse, error) {
	if req.Tier != "monthly" && req.Tier != "yearly" {
		return dtos.SubscribeResponse{}, apperr.Validation(`Tier must be either "monthly" or "yearly"`)
	}

	months := 1
	if req.Tier == "yearly" {
		months = 12
	}
	expiresAt := time.Now().AddDate(0, months, 0)

	err := s.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"is_premium":         true,
			"premium_expires_at": &expiresAt,
		}).Error
	if err != nil {
		return dtos.SubscribeResponse{}, err
	}

	return dtos.SubscribeResponse{
		Message:   constant.PREMIUM_SUBSCRIBED,
		Tier:      req.Tier,
		ExpiresAt: expiresAt,
	}, nil
}
