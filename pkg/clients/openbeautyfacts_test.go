package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProductFieldFallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product/123.json", r.URL.Path)
		fmt.Fprint(w, `{"status":1,"product":{"product_name_en":"Cleanser EN","image_front_url":"https://img.example/front.jpg","ingredients_text_en":"aqua, glycerin"}}`)
	}))
	defer srv.Close()

	c := NewOpenBeautyFactsClientWithBase(srv.URL)
	p, err := c.FetchProduct(context.Background(), "123")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Cleanser EN", p.Name)
	assert.Equal(t, "Unknown Brand", p.Brand)
	assert.Equal(t, "https://img.example/front.jpg", p.ImageURL)
	assert.Equal(t, []string{"aqua", "glycerin"}, p.Ingredients)
}

func TestFetchProductUnknownBarcode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"status":0}`)
	}))
	defer srv.Close()

	c := NewOpenBeautyFactsClientWithBase(srv.URL)
	p, err := c.FetchProduct(context.Background(), "000")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestFetchProductStatusZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":0,"product":{}}`)
	}))
	defer srv.Close()

	c := NewOpenBeautyFactsClientWithBase(srv.URL)
	p, err := c.FetchProduct(context.Background(), "123")
	require.NoError(t, err)
	assert.Nil(t, p)
}
