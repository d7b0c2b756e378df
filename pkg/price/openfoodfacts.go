package price

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const offUserAgent = "Pantry - Price Collector"

// Per-kilogram (or per-litre) estimates by category. Open Food Facts has
// no real prices, so quotes derived from it carry reduced confidence.
var categoryPricePerKg = map[string]float64{
	"vegetables": 3.0,
	"fruits":     4.0,
	"meat":       15.0,
	"fish":       18.0,
	"dairy":      5.0,
	"cheese":     12.0,
	"pasta":      2.5,
	"rice":       2.0,
	"bread":      4.0,
	"beverages":  2.0,
}

const defaultPricePerKg = 5.0

type offProduct struct {
	Code          string   `json:"code"`
	ProductName   string   `json:"product_name"`
	Quantity      string   `json:"quantity"`
	Brands        string   `json:"brands"`
	ImageURL      string   `json:"image_url"`
	CategoryTags  []string `json:"categories_tags"`
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

// OpenFoodFacts searches the collaborative food database and estimates
// prices from category averages.
type OpenFoodFacts struct {
	client *resty.Client
}

func NewOpenFoodFacts(baseURL string) *OpenFoodFacts {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", offUserAgent).
		SetTimeout(10 * time.Second).
		SetRetryCount(3).
		SetRetryWaitTime(2 * time.Second)
	return &OpenFoodFacts{client: client}
}

func (o *OpenFoodFacts) Name() string { return "openfoodfacts" }

func (o *OpenFoodFacts) Search(ctx context.Context, name, category string) ([]Quote, error) {
	var parsed offSearchResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"search_terms": name,
			"page_size":    "20",
			"json":         "1",
			"fields":       "code,product_name,quantity,brands,image_url,categories_tags",
		}).
		SetResult(&parsed).
		Get("/cgi/search.pl")
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts search: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("openfoodfacts search: status %d", resp.StatusCode())
	}

	quotes := make([]Quote, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		q, ok := o.quote(p, name)
		if ok {
			quotes = append(quotes, q)
		}
	}
	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].Confidence > quotes[j].Confidence })
	if len(quotes) > 10 {
		quotes = quotes[:10]
	}
	return quotes, nil
}

func (o *OpenFoodFacts) quote(p offProduct, searched string) (Quote, bool) {
	name := strings.TrimSpace(p.ProductName)
	if name == "" {
		return Quote{}, false
	}
	qty, unit, ok := ParseQuantity(p.Quantity)
	if !ok {
		return Quote{}, false
	}
	native, ok := ToNativeUnits(qty, unit)
	if !ok || native <= 0 {
		return Quote{}, false
	}

	perKg := defaultPricePerKg
	for _, tag := range p.CategoryTags {
		found := false
		for key, v := range categoryPricePerKg {
			if strings.Contains(tag, key) {
				perKg = v
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	// Estimate per native unit: per-kg divided down to per-gram (same
	// arithmetic for litres to millilitres).
	pricePerUnit := perKg / 1000

	confidence := ConfidenceScore(MatchScore(name, searched), p.Code != "", p.ImageURL != "")
	confidence *= 0.6 // estimates, not observed prices

	url := ""
	if p.Code != "" {
		url = "https://world.openfoodfacts.org/product/" + p.Code
	}
	return Quote{
		ProductName: name,
		Price:       pricePerUnit,
		RefQuantity: native,
		RefUnit:     nativeUnitFor(unit),
		Barcode:     p.Code,
		URL:         url,
		Confidence:  round2(confidence),
		Source:      o.Name(),
	}, true
}

func nativeUnitFor(parsed string) string {
	switch parsed {
	case "l", "ml", "cl":
		return "ml"
	}
	return "g"
}
