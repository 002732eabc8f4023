package waitlist

import (
	"context"

	"github.com/glowmate/api/pkg/entities"
	"gorm.io/gorm"
)

type Repository interface {
	FindByEmail(ctx context.Context, email string) (entities.WaitlistEntry, error)
	FindByReferralCode(ctx context.Context, code string) (entities.WaitlistEntry, error)
	FindByVerificationToken(ctx context.Context, token string) (entities.WaitlistEntry, error)
	Create(ctx context.Context, entry *entities.WaitlistEntry) error
	SetVerificationToken(ctx context.Context, id uint, token string) error
	IncrementPoints(ctx context.Context, id uint, delta int) error
	MarkVerified(ctx context.Context, id uint) error
	PositionOf(ctx context.Context, entry entities.WaitlistEntry) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) FindByEmail(ctx context.Context, email string) (entities.WaitlistEntry, error) {
	var entry entities.WaitlistEntry
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&entry).Error
	return entry, err
}

func (r *repository) FindByReferralCode(ctx context.Context, code string) (entities.WaitlistEntry, error) {
	var entry entities.WaitlistEntry
	err := r.db.WithContext(ctx).Where("referral_code = ?", code).First(&entry).Error
	return entry, err
}

func (r *repository) FindByVerificationToken(ctx context.Context, token string) (entities.WaitlistEntry, error) {
	var entry entities.WaitlistEntry
	err := r.db.WithContext(ctx).Where("verification_token = ?", token).First(&entry).Error
	return entry, err
}

func (r *repository) Create(ctx context.Context, entry *entities.WaitlistEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) SetVerificationToken(ctx context.Context, id uint, token string) error {
	return r.db.WithContext(ctx).Model(&entities.WaitlistEntry{}).
		Where("id = ?", id).
		Update("verification_token", token).Error
}

// IncrementPoints awards points with an atomic SQL increment, never a
// read-then-write, so concurrent referrals cannot lose updates.
func (r *repository) IncrementPoints(ctx context.Context, id uint, delta int) error {
	return r.db.WithContext(ctx).Model(&entities.WaitlistEntry{}).
		Where("id = ?", id).
		Update("points", gorm.Expr("points + ?", delta)).Error
}

// MarkVerified sets the verified flag and nulls the token in the same
// update; nulling the token is the consumption mechanism.
func (r *repository) MarkVerified(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&entities.WaitlistEntry{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_verified":        true,
			"verification_token": nil,
		}).Error
}

// PositionOf computes the 1-based rank under the points-desc,
// createdAt-asc total order. Always computed on demand, never stored.
func (r *repository) PositionOf(ctx context.Context, entry entities.WaitlistEntry) (int, error) {
	var ahead int64
	err := r.db.WithContext(ctx).Model(&entities.WaitlistEntry{}).
		Where("points > ? OR (points = ? AND created_at < ?)", entry.Points, entry.Points, entry.CreatedAt).
		Count(&ahead).Error
	return int(ahead) + 1, err
}
