package auth

import (
	"context"
	"time"

	"github.com/glowmate/api/pkg/entities"
	"gorm.io/gorm"
)

type Repository interface {
	CreateUserWithToken(ctx context.Context, user *entities.User, token *entities.VerificationToken) error
	FindUserByEmail(ctx context.Context, email string) (entities.User, error)
	FindUserByID(ctx context.Context, id uint) (entities.User, error)
	FindVerificationToken(ctx context.Context, token string) (entities.VerificationToken, error)
	ConsumeVerificationToken(ctx context.Context, token entities.VerificationToken) error
	CreatePasswordResetToken(ctx context.Context, token *entities.PasswordResetToken) error
	FindActiveResetToken(ctx context.Context, token string, now time.Time) (entities.PasswordResetToken, error)
	ConsumeResetToken(ctx context.Context, token entities.PasswordResetToken, passwordHash string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// CreateUserWithToken persists the user and its verification token in a
// single transaction; if either insert fails, neither persists.
func (r *repository) CreateUserWithToken(ctx context.Context, user *entities.User, token *entities.VerificationToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		token.UserID = user.ID
		return tx.Create(token).Error
	})
}

func (r *repository) FindUserByEmail(ctx context.Context, email string) (entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return user, err
}

func (r *repository) FindUserByID(ctx context.Context, id uint) (entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	return user, err
}

func (r *repository) FindVerificationToken(ctx context.Context, token string) (entities.VerificationToken, error) {
	var vt entities.VerificationToken
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&vt).Error
	return vt, err
}

// ConsumeVerificationToken flips the user to verified and deletes the
// token as one atomic unit, so a concurrent double-submission can never
// observe a verified user with a live token.
func (r *repository) ConsumeVerificationToken(ctx context.Context, token entities.VerificationToken) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.User{}).Where("id = ?", token.UserID).Update("is_verified", true).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.VerificationToken{}, token.ID).Error
	})
}

func (r *repository) CreatePasswordResetToken(ctx context.Context, token *entities.PasswordResetToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// FindActiveResetToken matches only unused, unexpired tokens. Not found,
// expired and already-used all look identical to the caller.
func (r *repository) FindActiveResetToken(ctx context.Context, token string, now time.Time) (entities.PasswordResetToken, error) {
	var rt entities.PasswordResetToken
	err := r.db.WithContext(ctx).
		Where("token = ? AND used_at IS NULL AND expires_at > ?", token, now).
		First(&rt).Error
	return rt, err
}

// ConsumeResetToken updates the password and marks the token used in a
// single transaction.
func (r *repository) ConsumeResetToken(ctx context.Context, token entities.PasswordResetToken, passwordHash string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.User{}).Where("id = ?", token.UserID).Update("password", passwordHash).Error; err != nil {
			return err
		}
		now := time.Now()
		return tx.Model(&entities.PasswordResetToken{}).Where("id = ?", token.ID).Update("used_at", &now).Error
	})
}
