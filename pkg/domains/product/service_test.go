package product

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/clients"
	"github.com/glowmate/api/pkg/domains/user"
	"github.com/glowmate/api/pkg/dtos"
	"github.com/glowmate/api/pkg/entities"
	"github.com/glowmate/api/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T, obfURL string) (Service, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	svc := NewService(NewRepo(db), user.NewRepo(db), clients.NewOpenBeautyFactsClientWithBase(obfURL))
	return svc, db
}

// obfStub answers like the OpenBeautyFacts v2 product endpoint for a
// single known barcode.
func obfStub(t *testing.T, barcode string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != fmt.Sprintf("/product/%s.json", barcode) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"status":0}`)
			return
		}
		fmt.Fprint(w, `{"status":1,"product":{"product_name":"Hydra Boost Gel","brands":"Neutro","image_url":"https://img.example/p.jpg","ingredients_text":"aqua, glycerin, fragrance","categories_tags":["en:moisturizers"]}}`)
	}))
}

func seedProducts(t *testing.T, db *gorm.DB, products ...entities.Product) {
	t.Helper()
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
}

func strptr(s string) *string { return &s }

func TestListFiltersAndPaginates(t *testing.T) {
	svc, db := newTestService(t, "http://127.0.0.1:0")
	ctx := context.Background()
	seedProducts(t, db,
		entities.Product{Name: "Hydra Boost Gel", Brand: "Neutro", Category: "moisturizer", Price: 12, AverageRating: 4.5},
		entities.Product{Name: "Gentle Cleanser", Brand: "GlowLab", Category: "cleanser", Price: 8, AverageRating: 4.0},
		entities.Product{Name: "Retinol Serum", Brand: "GlowLab", Category: "serum", Price: 30, AverageRating: 4.8},
	)

	resp, err := svc.List(ctx, dtos.ProductFilter{Brand: "glowlab"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, resp.Meta.Total)

	resp, err = svc.List(ctx, dtos.ProductFilter{Query: "serum"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Retinol Serum", resp.Data[0].Name)

	maxPrice := 15.0
	resp, err = svc.List(ctx, dtos.ProductFilter{MaxPrice: &maxPrice, Sort: "price_asc"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Gentle Cleanser", resp.Data[0].Name)

	resp, err = svc.List(ctx, dtos.ProductFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 2, resp.Meta.TotalPages)
}

func TestCreateProduct(t *testing.T) {
	svc, _ := newTestService(t, "http://127.0.0.1:0")
	ctx := context.Background()

	created, err := svc.Create(ctx, dtos.CreateProductDTO{Name: "Retinol Serum", Barcode: "1234567890123"})
	require.NoError(t, err)
	require.NotNil(t, created.Barcode)

	_, err = svc.Create(ctx, dtos.CreateProductDTO{Name: "Copycat", Barcode: "1234567890123"})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeDuplicateEntry, appErr.Code)

	_, err = svc.Create(ctx, dtos.CreateProductDTO{})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)
}

func TestGetByBarcodePrefersLocalCatalog(t *testing.T) {
	stub := obfStub(t, "1234567890123")
	defer stub.Close()
	svc, db := newTestService(t, stub.URL)
	seedProducts(t, db, entities.Product{Barcode: strptr("1234567890123"), Name: "Local Product"})

	product, err := svc.GetByBarcode(context.Background(), "1234567890123")
	require.NoError(t, err)
	assert.Equal(t, "Local Product", product.Name)
}

func TestGetByBarcodeImportsFromOpenBeautyFacts(t *testing.T) {
	stub := obfStub(t, "1234567890123")
	defer stub.Close()
	svc, db := newTestService(t, stub.URL)
	ctx := context.Background()

	product, err := svc.GetByBarcode(ctx, "1234567890123")
	require.NoError(t, err)
	assert.Equal(t, "Hydra Boost Gel", product.Name)
	assert.Equal(t, "Neutro", product.Brand)
	assert.Equal(t, []string{"aqua", "glycerin", "fragrance"}, []string(product.Ingredients))

	// The import is persisted, so the next lookup is served locally.
	var count int64
	require.NoError(t, db.Model(&entities.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	again, err := svc.GetByBarcode(ctx, "1234567890123")
	require.NoError(t, err)
	assert.Equal(t, product.ID, again.ID)
}

func TestGetByBarcodeUnknownUpstream(t *testing.T) {
	stub := obfStub(t, "1234567890123")
	defer stub.Close()
	svc, _ := newTestService(t, stub.URL)

	_, err := svc.GetByBarcode(context.Background(), "0000000000000")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeNotFound, appErr.Code)
}

func TestRecommendForExcludesAllergens(t *testing.T) {
	svc, db := newTestService(t, "http://127.0.0.1:0")

	u := entities.User{
		Email:     "maya@example.com",
		Password:  "irrelevant-hash",
		Name:      "Maya",
		Age:       28,
		SkinType:  "sensitive",
		Allergens: entities.StringList{"Fragrance"},
	}
	require.NoError(t, db.Create(&u).Error)
	seedProducts(t, db,
		entities.Product{Name: "Scented Cream", Ingredients: entities.StringList{"aqua", "fragrance"}, AverageRating: 4.9},
		entities.Product{Name: "Plain Cream", Ingredients: entities.StringList{"aqua", "glycerin"}, AverageRating: 4.2},
	)

	recommended, err := svc.RecommendFor(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, recommended, 1)
	assert.Equal(t, "Plain Cream", recommended[0].Name)
}

func TestRecommendForUnknownUser(t *testing.T) {
	svc, _ := newTestService(t, "http://127.0.0.1:0")

	_, err := svc.RecommendFor(context.Background(), 999)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeNotFound, appErr.Code)
}
