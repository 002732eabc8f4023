package premium

import (
	"context"
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

func seedUser(t *testing.T, db *gorm.DB) entities.User {
	t.Helper()
	u := entities.User{Email: "maya@example.com", Password: "irrelevant-hash", Name: "Maya", Age: 28, SkinType: "normal"}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func TestSubscribeMonthly(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(db)
	u := seedUser(t, db)

	resp, err := svc.Subscribe(context.Background(), u.ID, dtos.SubscribeDTO{Tier: "monthly"})
	require.NoError(t, err)
	assert.Equal(t, "monthly", resp.Tier)

	var updated entities.User
	require.NoError(t, db.First(&updated, u.ID).Error)
	assert.True(t, updated.IsPremium)
	require.NotNil(t, updated.PremiumExpiresAt)
	assert.WithinDuration(t, time.Now().AddDate(0, 1, 0), *updated.PremiumExpiresAt, time.Minute)
}

func TestSubscribeYearly(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(db)
	u := seedUser(t, db)

	resp, err := svc.Subscribe(context.Background(), u.ID, dtos.SubscribeDTO{Tier: "yearly"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().AddDate(0, 12, 0), resp.ExpiresAt, time.Minute)
}

func TestSubscribeInvalidTier(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(db)
	u := seedUser(t, db)

	_, err := svc.Subscribe(context.Background(), u.ID, dtos.SubscribeDTO{Tier: "weekly"})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)
}
