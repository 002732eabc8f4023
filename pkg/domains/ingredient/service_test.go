package ingredient

import (
	"context"
	"testing"

	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/entities"
	"github.com/glowmate/api/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(NewRepo(db))
	ctx := context.Background()

	seed := []entities.Ingredient{
		{Name: "Hyaluronic Acid", Category: "humectant"},
		{Name: "Salicylic Acid", Category: "exfoliant"},
		{Name: "Niacinamide", Category: "active"},
	}
	require.NoError(t, db.Create(&seed).Error)

	got, err := svc.Suggest(ctx, "acid", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Hyaluronic Acid", got[0].Name)
	assert.Equal(t, "Salicylic Acid", got[1].Name)

	got, err = svc.Suggest(ctx, "ACID", 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.Suggest(ctx, "zinc", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSuggestRequiresQuery(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewService(NewRepo(db))

	_, err := svc.Suggest(context.Background(), "", 10)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)
}
