// Package clients holds thin wrappers around external HTTP APIs.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const obfBaseURL = "https://world.openbeautyfacts.org/api/v2"

// OBFProduct is the subset of an OpenBeautyFacts record the catalog
// imports.
type OBFProduct struct {
	Name        string
	Brand       string
	ImageURL    string
	Ingredients []string
	Tags        []string
}

type OpenBeautyFactsClient struct {
	baseURL string
	http    *http.Client
}

// NewOpenBeautyFactsClient builds a client with a bounded timeout so a
// slow third party cannot stall product lookups.
func NewOpenBeautyFactsClient() *OpenBeautyFactsClient {
	return &OpenBeautyFactsClient{
		baseURL: obfBaseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// NewOpenBeautyFactsClientWithBase is used by tests to point the client
// at a stub server.
func NewOpenBeautyFactsClientWithBase(baseURL string) *OpenBeautyFactsClient {
	c := NewOpenBeautyFactsClient()
	c.baseURL = baseURL
	return c
}

type obfResponse struct {
	Status  int `json:"status"`
	Product struct {
		ProductName     string   `json:"product_name"`
		ProductNameEn   string   `json:"product_name_en"`
		Brands          string   `json:"brands"`
		ImageURL        string   `json:"image_url"`
		ImageFrontURL   string   `json:"image_front_url"`
		IngredientsText string   `json:"ingredients_text"`
		IngredientsEn   string   `json:"ingredients_text_en"`
		CategoriesTags  []string `json:"categories_tags"`
	} `json:"product"`
}

// FetchProduct looks a barcode up on OpenBeautyFacts. A nil product with
// a nil error means the barcode is unknown upstream.
func (c *OpenBeautyFactsClient) FetchProduct(ctx context.Context, barcode string) (*OBFProduct, error) {
	url := fmt.Sprintf("%s/product/%s.json", c.baseURL, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var body obfResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status != 1 {
		return nil, nil
	}

	p := body.Product
	name := p.ProductName
	if name == "" {
		name = p.ProductNameEn
	}
	if name == "" {
		name = "Unknown Product"
	}
	brand := p.Brands
	if brand == "" {
		brand = "Unknown Brand"
	}
	imageURL := p.ImageURL
	if imageURL == "" {
		imageURL = p.ImageFrontURL
	}
	ingredientsText := p.IngredientsText
	if ingredientsText == "" {
		ingredientsText = p.IngredientsEn
	}

	return &OBFProduct{
		Name:        name,
		Brand:       brand,
		ImageURL:    imageURL,
		Ingredients: splitIngredients(ingredientsText),
		Tags:        p.CategoriesTags,
	}, nil
}

func splitIngredients(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
