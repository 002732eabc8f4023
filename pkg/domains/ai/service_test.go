package ai

import (
	"context"
	"testing"

	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/domains/product"
	"github.com/glowmate/api/pkg/domains/user"
	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/entities"
	"github.com/glowmate/api/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewService(db, product.NewRepo(db), user.NewRepo(db)), db
}

func seedUser(t *testing.T, db *gorm.DB, allergens ...string) entities.User {
	t.Helper()
	u := entities.User{
		Email:     "maya@example.com",
		Password:  "irrelevant-hash",
		Name:      "Maya",
		Age:       28,
		SkinType:  "sensitive",
		Allergens: entities.StringList(allergens),
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func TestAnalyzeRoutinePersistsRecord(t *testing.T) {
	svc, db := newTestService(t)
	u := seedUser(t, db)

	analysis, err := svc.AnalyzeRoutine(context.Background(), u.ID, dtos.AnalyzeRoutineDTO{
		ProductBarcodes: []string{"1234567890123"},
	})
	require.NoError(t, err)
	assert.Equal(t, 85, analysis.OverallScore)
	assert.NotEmpty(t, analysis.Recommendations)

	var records []entities.AIAnalysis
	require.NoError(t, db.Where("user_id = ?", u.ID).Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, "routine", records[0].AnalysisType)
}

func TestAnalyzeRoutineRequiresArray(t *testing.T) {
	svc, db := newTestService(t)
	u := seedUser(t, db)

	_, err := svc.AnalyzeRoutine(context.Background(), u.ID, dtos.AnalyzeRoutineDTO{})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)
}

func TestAskProductFlagsAllergens(t *testing.T) {
	svc, db := newTestService(t)
	u := seedUser(t, db, "fragrance")
	p := entities.Product{Name: "Scented Cream", Brand: "GlowLab", Ingredients: entities.StringList{"aqua", "Fragrance"}}
	require.NoError(t, db.Create(&p).Error)

	advice, err := svc.AskProduct(context.Background(), u.ID, dtos.AskProductDTO{
		ProductID: p.ID,
		Question:  "Is this safe for me?",
	})
	require.NoError(t, err)
	assert.Contains(t, advice.Answer, "Scented Cream")
	assert.Contains(t, advice.Answer, "allergen list")
}

func TestAskProductUnknownProduct(t *testing.T) {
	svc, db := newTestService(t)
	u := seedUser(t, db)

	_, err := svc.AskProduct(context.Background(), u.ID, dtos.AskProductDTO{ProductID: 999, Question: "?"})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeNotFound, appErr.Code)
}

func TestAskProductValidation(t *testing.T) {
	svc, db := newTestService(t)
	u := seedUser(t, db)

	_, err := svc.AskProduct(context.Background(), u.ID, dtos.AskProductDTO{})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)
}
