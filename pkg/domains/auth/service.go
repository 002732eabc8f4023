package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/constant"
	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/entities"
	"github.com/glowmate/api/pkg/mailer"
	"github.com/glowmate/api/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const (
	sessionTTL    = 7 * 24 * time.Hour
	verifyTTL     = 24 * time.Hour
	resetTokenTTL = time.Hour
)

// Config carries the session-signing secret and the password pepper,
// injected at startup.
type Config struct {
	Secret string
	Pepper string
}

type Service interface {
	Register(ctx context.Context, req dtos.RegisterDTO) (dtos.AuthResponse, error)
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, req dtos.LoginDTO) (dtos.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token string, newPassword string) error
}

type service struct {
	repository Repository
	notifier   mailer.Notifier
	cfg        Config
}

func NewService(r Repository, n mailer.Notifier, cfg Config) Service {
	return &service{
		repository: r,
		notifier:   n,
		cfg:        cfg,
	}
}

func (s *service) Register(ctx context.Context, req dtos.RegisterDTO) (dtos.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return dtos.AuthResponse{}, err
	}

	// Check if user already exists (case-exact match)
	_, err := s.repository.FindUserByEmail(ctx, req.Email)
	if err == nil {
		return dtos.AuthResponse{}, apperr.Duplicate(apperr.CodeEmailExists, constant.EMAIL_EXISTS_MSG)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dtos.AuthResponse{}, err
	}

	passwordHash, err := utils.HashPassword(req.Password, s.cfg.Pepper)
	if err != nil {
		return dtos.AuthResponse{}, err
	}

	user := entities.User{
		Email:          req.Email,
		Password:       passwordHash,
		Name:           req.Name,
		Age:            *req.Age,
		SkinType:       req.SkinType,
		SkinConditions: req.SkinConditions,
		Allergens:      req.Allergens,
		IsVerified:     false,
	}
	verification := entities.VerificationToken{
		Token:     utils.GenerateSecureToken(),
		ExpiresAt: time.Now().Add(verifyTTL),
	}

	if err := s.repository.CreateUserWithToken(ctx, &user, &verification); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dtos.AuthResponse{}, apperr.Duplicate(apperr.CodeEmailExists, constant.EMAIL_EXISTS_MSG)
		}
		return dtos.AuthResponse{}, err
	}

	// Best-effort: the user row is already committed, a failed email must
	// not fail the registration.
	if err := s.notifier.SendVerificationEmail(user.Email, verification.Token); err != nil {
		log.Printf("[warn] failed to send verification email to %s: %v", user.Email, err)
	}

	token, err := s.issueSessionToken(user)
	if err != nil {
		return dtos.AuthResponse{}, err
	}

	return dtos.AuthResponse{
		Token:   token,
		User:    dtos.NewUserResponse(user),
		Message: constant.REGISTRATION_SUCCESS,
	}, nil
}

func (s *service) VerifyEmail(ctx context.Context, token string) error {
	vt, err := s.repository.FindVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.InvalidToken(constant.INVALID_TOKEN_MSG)
		}
		return err
	}

	// Expired tokens are rejected at lookup time and stay in the store.
	if vt.ExpiresAt.Before(time.Now()) {
		return apperr.ExpiredToken(constant.TOKEN_EXPIRED_MSG)
	}

	return s.repository.ConsumeVerificationToken(ctx, vt)
}

func (s *service) Login(ctx context.Context, req dtos.LoginDTO) (dtos.AuthResponse, error) {
	// Missing, soft-deleted and wrong-password all collapse into the same
	// 401 to prevent account enumeration.
	user, err := s.repository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dtos.AuthResponse{}, apperr.InvalidCredentials(constant.INVALID_CREDENTIALS)
		}
		return dtos.AuthResponse{}, err
	}

	if err := utils.CheckPassword(user.Password, req.Password, s.cfg.Pepper); err != nil {
		return dtos.AuthResponse{}, apperr.InvalidCredentials(constant.INVALID_CREDENTIALS)
	}

	// isVerified is surfaced in the response but does not gate login; the
	// client decides what to restrict for unverified accounts.

	token, err := s.issueSessionToken(user)
	if err != nil {
		return dtos.AuthResponse{}, err
	}

	return dtos.AuthResponse{
		Token: token,
		User:  dtos.NewUserResponse(user),
	}, nil
}

func (s *service) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Respond identically whether or not the account exists.
			return nil
		}
		return err
	}

	reset := entities.PasswordResetToken{
		UserID:    user.ID,
		Token:     utils.GenerateSecureToken(),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.repository.CreatePasswordResetToken(ctx, &reset); err != nil {
		return err
	}

	if err := s.notifier.SendPasswordResetEmail(user.Email, reset.Token); err != nil {
		log.Printf("[warn] failed to send password reset email to %s: %v", user.Email, err)
	}

	return nil
}

func (s *service) ResetPassword(ctx context.Context, token string, newPassword string) error {
	if len(newPassword) < 8 {
		return apperr.Validation("Password must be at least 8 characters")
	}

	rt, err := s.repository.FindActiveResetToken(ctx, token, time.Now())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.InvalidToken(constant.INVALID_TOKEN_MSG)
		}
		return err
	}

	passwordHash, err := utils.HashPassword(newPassword, s.cfg.Pepper)
	if err != nil {
		return err
	}

	return s.repository.ConsumeResetToken(ctx, rt, passwordHash)
}

func (s *service) issueSessionToken(user entities.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": user.ID,
		"email":  user.Email,
		"exp":    time.Now().Add(sessionTTL).Unix(),
	})
	return token.SignedString([]byte(s.cfg.Secret))
}
