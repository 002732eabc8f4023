package waitlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/entities"
	"github.com/glowmate/api/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotifier struct {
	sent []string // tokens in send order
}

func (f *fakeNotifier) SendVerificationEmail(to, token string) error   { return nil }
func (f *fakeNotifier) SendPasswordResetEmail(to, token string) error  { return nil }
func (f *fakeNotifier) SendWaitlistVerificationEmail(to, token string) error {
	f.sent = append(f.sent, token)
	return nil
}

func newTestService(t *testing.T) (Service, Repository, *gorm.DB, *fakeNotifier) {
	t.Helper()
	db := testutil.NewTestDB(t)
	repo := NewRepo(db)
	notifier := &fakeNotifier{}
	return NewService(repo, notifier), repo, db, notifier
}

func mustEntry(t *testing.T, db *gorm.DB, email string) entities.WaitlistEntry {
	t.Helper()
	var entry entities.WaitlistEntry
	require.NoError(t, db.Where("email = ?", email).First(&entry).Error)
	return entry
}

func TestJoinCreatesEntry(t *testing.T) {
	svc, _, db, notifier := newTestService(t)

	status, created, err := svc.Join(context.Background(), dtos.JoinWaitlistDTO{Email: "maya@example.com"})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, status.Position)
	assert.Equal(t, 0, status.Points)
	assert.False(t, status.IsVerified)
	assert.Regexp(t, `^[a-z0-9]{0,6}-[a-z0-9]{4}$`, status.ReferralCode)

	entry := mustEntry(t, db, "maya@example.com")
	require.NotNil(t, entry.VerificationToken)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, *entry.VerificationToken, notifier.sent[0])
}

func TestJoinRejectsInvalidEmail(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, _, err := svc.Join(context.Background(), dtos.JoinWaitlistDTO{Email: "not-an-email"})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)
}

func TestJoinTwiceResendsSameToken(t *testing.T) {
	svc, _, db, notifier := newTestService(t)
	ctx := context.Background()

	_, created, err := svc.Join(ctx, dtos.JoinWaitlistDTO{Email: "maya@example.com"})
	require.NoError(t, err)
	require.True(t, created)
	first := mustEntry(t, db, "maya@example.com")

	status, created, err := svc.Join(ctx, dtos.JoinWaitlistDTO{Email: "maya@example.com"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ReferralCode, status.ReferralCode)

	second := mustEntry(t, db, "maya@example.com")
	assert.Equal(t, first.ID, second.ID)
	require.Len(t, notifier.sent, 2)
	assert.Equal(t, notifier.sent[0], notifier.sent[1])
}

func TestJoinBackfillsMissingToken(t *testing.T) {
	svc, _, db, notifier := newTestService(t)

	entry := entities.WaitlistEntry{
		Email:        "old@example.com",
		ReferralCode: "old-abcd",
	}
	require.NoError(t, db.Create(&entry).Error)

	_, created, err := svc.Join(context.Background(), dtos.JoinWaitlistDTO{Email: "old@example.com"})
	require.NoError(t, err)
	assert.False(t, created)

	refreshed := mustEntry(t, db, "old@example.com")
	require.NotNil(t, refreshed.VerificationToken)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, *refreshed.VerificationToken, notifier.sent[0])
}

func TestJoinVerifiedEntryIsLeftAlone(t *testing.T) {
	svc, _, db, notifier := newTestService(t)

	entry := entities.WaitlistEntry{
		Email:        "done@example.com",
		ReferralCode: "done-abcd",
		IsVerified:   true,
	}
	require.NoError(t, db.Create(&entry).Error)

	status, created, err := svc.Join(context.Background(), dtos.JoinWaitlistDTO{Email: "done@example.com"})
	require.NoError(t, err)
	assert.False(t, created)
	assert.True(t, status.IsVerified)
	assert.Empty(t, notifier.sent)
}

func TestReferralAwardsPoints(t *testing.T) {
	svc, _, db, _ := newTestService(t)
	ctx := context.Background()

	referrer, _, err := svc.Join(ctx, dtos.JoinWaitlistDTO{Email: "anna@example.com"})
	require.NoError(t, err)

	_, _, err = svc.Join(ctx, dtos.JoinWaitlistDTO{Email: "ben@example.com", ReferredBy: referrer.ReferralCode})
	require.NoError(t, err)

	anna := mustEntry(t, db, "anna@example.com")
	ben := mustEntry(t, db, "ben@example.com")
	assert.Equal(t, 10, anna.Points)
	assert.Equal(t, 0, ben.Points)
	require.NotNil(t, ben.ReferredBy)
	assert.Equal(t, referrer.ReferralCode, *ben.ReferredBy)
}

func TestUnknownReferralCodeIsIgnored(t *testing.T) {
	svc, _, db, _ := newTestService(t)

	_, created, err := svc.Join(context.Background(), dtos.JoinWaitlistDTO{Email: "solo@example.com", ReferredBy: "nobody-zzzz"})
	require.NoError(t, err)
	assert.True(t, created)

	entry := mustEntry(t, db, "solo@example.com")
	assert.Nil(t, entry.ReferredBy)
}

func TestPositionOrdering(t *testing.T) {
	_, repo, db, _ := newTestService(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	seed := []entities.WaitlistEntry{
		{Email: "a@example.com", ReferralCode: "a-0001", Points: 30, CreatedAt: base},
		{Email: "b@example.com", ReferralCode: "b-0001", Points: 30, CreatedAt: base.Add(time.Hour)},
		{Email: "c@example.com", ReferralCode: "c-0001", Points: 10, CreatedAt: base.Add(-time.Hour)},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	for i, want := range []int{1, 2, 3} {
		entry := mustEntry(t, db, seed[i].Email)
		got, err := repo.PositionOf(ctx, entry)
		require.NoError(t, err)
		assert.Equal(t, want, got, "position of %s", entry.Email)
	}
}

func TestReferralMovesEntryAhead(t *testing.T) {
	svc, repo, db, _ := newTestService(t)
	ctx := context.Background()

	first, _, err := svc.Join(ctx, dtos.JoinWaitlistDTO{Email: "early@example.com"})
	require.NoError(t, err)
	second, _, err := svc.Join(ctx, dtos.JoinWaitlistDTO{Email: "late@example.com"})
	require.NoError(t, err)
	require.Equal(t, 1, first.Position)
	require.Equal(t, 2, second.Position)

	// The late joiner recruits someone and overtakes the early one.
	_, _, err = svc.Join(ctx, dtos.JoinWaitlistDTO{Email: "friend@example.com", ReferredBy: second.ReferralCode})
	require.NoError(t, err)

	late := mustEntry(t, db, "late@example.com")
	pos, err := repo.PositionOf(ctx, late)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	early := mustEntry(t, db, "early@example.com")
	pos, err = repo.PositionOf(ctx, early)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
}

func TestVerifyConsumesToken(t *testing.T) {
	svc, _, db, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Join(ctx, dtos.JoinWaitlistDTO{Email: "maya@example.com"})
	require.NoError(t, err)
	entry := mustEntry(t, db, "maya@example.com")
	require.NotNil(t, entry.VerificationToken)
	token := *entry.VerificationToken

	require.NoError(t, svc.Verify(ctx, token))

	verified := mustEntry(t, db, "maya@example.com")
	assert.True(t, verified.IsVerified)
	assert.Nil(t, verified.VerificationToken)

	// The nulled token can never match again.
	err = svc.Verify(ctx, token)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeInvalidToken, appErr.Code)
}

func TestVerifyUnknownToken(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	err := svc.Verify(context.Background(), "no-such-token")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeInvalidToken, appErr.Code)
}

func TestCreateRetriesOnCodeCollision(t *testing.T) {
	svc, _, db, _ := newTestService(t)
	ctx := context.Background()

	// Many joins sharing one email local part must all land despite the
	// narrow prefix space.
	for _, email := range []string{"sam@a.com", "sam@b.com", "sam@c.com", "sam@d.com"} {
		_, created, err := svc.Join(ctx, dtos.JoinWaitlistDTO{Email: email})
		require.NoError(t, err)
		require.True(t, created)
	}

	var count int64
	require.NoError(t, db.Model(&entities.WaitlistEntry{}).Count(&count).Error)
	assert.EqualValues(t, 4, count)
}

func TestDuplicateEmailSurfacesAsRejoinNotError(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Join(ctx, dtos.JoinWaitlistDTO{Email: "maya@example.com"})
	require.NoError(t, err)

	// A raw duplicate insert is a unique violation at the repo level.
	err = repo.Create(ctx, &entities.WaitlistEntry{Email: "maya@example.com", ReferralCode: "x-0000"})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	// But the service path treats it as a rejoin.
	_, created, err := svc.Join(ctx, dtos.JoinWaitlistDTO{Email: "maya@example.com"})
	require.NoError(t, err)
	assert.False(t, created)
}
