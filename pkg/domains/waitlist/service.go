package waitlist

import (
	"context"
	"errors"
	"log"

	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/constant"
	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/entities"
	"github.com/glowmate/api/pkg/mailer"
	"github.com/glowmate/api/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// referral code inserts are retried a few times on a unique-constraint
// collision before giving up
const maxCodeAttempts = 3

type Service interface {
	Join(ctx context.Context, req dtos.JoinWaitlistDTO) (dtos.WaitlistStatus, bool, error)
	Verify(ctx context.Context, token string) error
}

type service struct {
	repository Repository
	notifier   mailer.Notifier
}

func NewService(r Repository, n mailer.Notifier) Service {
	return &service{
		repository: r,
		notifier:   n,
	}
}

// Join adds an email to the waitlist. Joining twice is not an error:
// existing unverified entries get their verification email resent (with
// a lazily backfilled token if missing), existing verified entries are
// returned unchanged. The returned bool reports whether a new entry was
// created.
func (s *service) Join(ctx context.Context, req dtos.JoinWaitlistDTO) (dtos.WaitlistStatus, bool, error) {
	if !utils.ValidEmail(req.Email) {
		return dtos.WaitlistStatus{}, false, apperr.Validation("Invalid email address")
	}

	existing, err := s.repository.FindByEmail(ctx, req.Email)
	if err == nil {
		return s.rejoin(ctx, existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dtos.WaitlistStatus{}, false, err
	}

	// Referral award happens before the insert and is deliberately not
	// atomic with it; a crash in between leaves an award without an
	// invitee row, which is tolerated.
	var referredBy *string
	if req.ReferredBy != "" {
		referrer, err := s.repository.FindByReferralCode(ctx, req.ReferredBy)
		switch {
		case err == nil:
			if err := s.repository.IncrementPoints(ctx, referrer.ID, constant.WAITLIST_REFERRAL_POINTS); err != nil {
				return dtos.WaitlistStatus{}, false, err
			}
			referredBy = &referrer.ReferralCode
		case errors.Is(err, gorm.ErrRecordNotFound):
			// Unknown referral codes are silently ignored.
		default:
			return dtos.WaitlistStatus{}, false, err
		}
	}

	token := uuid.NewString()
	entry := entities.WaitlistEntry{
		Email:             req.Email,
		ReferredBy:        referredBy,
		Points:            0,
		IsVerified:        false,
		VerificationToken: &token,
	}

	for attempt := 0; ; attempt++ {
		entry.ReferralCode = GenerateReferralCode(req.Email)
		err = s.repository.Create(ctx, &entry)
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < maxCodeAttempts-1 {
			continue
		}
		return dtos.WaitlistStatus{}, false, err
	}

	if err := s.notifier.SendWaitlistVerificationEmail(entry.Email, token); err != nil {
		log.Printf("[warn] failed to send waitlist verification email to %s: %v", entry.Email, err)
	}

	position, err := s.repository.PositionOf(ctx, entry)
	if err != nil {
		return dtos.WaitlistStatus{}, false, err
	}

	return dtos.WaitlistStatus{
		Position:     position,
		ReferralCode: entry.ReferralCode,
		Points:       entry.Points,
		IsVerified:   false,
	}, true, nil
}

func (s *service) rejoin(ctx context.Context, existing entities.WaitlistEntry) (dtos.WaitlistStatus, bool, error) {
	position, err := s.repository.PositionOf(ctx, existing)
	if err != nil {
		return dtos.WaitlistStatus{}, false, err
	}

	status := dtos.WaitlistStatus{
		Position:     position,
		ReferralCode: existing.ReferralCode,
		Points:       existing.Points,
		IsVerified:   existing.IsVerified,
	}

	if existing.IsVerified {
		return status, false, nil
	}

	// Backfill a token if one was never stored, then resend.
	token := existing.VerificationToken
	if token == nil {
		fresh := uuid.NewString()
		if err := s.repository.SetVerificationToken(ctx, existing.ID, fresh); err != nil {
			return dtos.WaitlistStatus{}, false, err
		}
		token = &fresh
	}

	if err := s.notifier.SendWaitlistVerificationEmail(existing.Email, *token); err != nil {
		log.Printf("[warn] failed to resend waitlist verification email to %s: %v", existing.Email, err)
	}

	return status, false, nil
}

// Verify consumes a waitlist verification token. A consumed token is
// nulled out and can never match again, so "unknown" and "already used"
// are indistinguishable here. Waitlist tokens do not expire.
func (s *service) Verify(ctx context.Context, token string) error {
	entry, err := s.repository.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.InvalidToken(constant.INVALID_TOKEN_MSG)
		}
		return err
	}

	return s.repository.MarkVerified(ctx, entry.ID)
}
