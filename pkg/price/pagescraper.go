package price

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// PageScraper extracts real prices from configured product pages. It
// only quotes ingredients that have a page URL registered, so it acts
// as a high-confidence complement to the estimated sources.
type PageScraper struct {
	client *resty.Client
	pages  map[string]string // normalized ingredient name -> product URL
}

func NewPageScraper(pages map[string]string) *PageScraper {
	client := resty.New().
		SetHeader("User-Agent", offUserAgent).
		SetTimeout(10 * time.Second).
		SetRetryCount(2)
	normalized := make(map[string]string, len(pages))
	for name, url := range pages {
		normalized[NormalizeName(name)] = url
	}
	return &PageScraper{client: client, pages: normalized}
}

func (p *PageScraper) Name() string { return "productpage" }

func (p *PageScraper) Search(ctx context.Context, name, category string) ([]Quote, error) {
	url, ok := p.pages[NormalizeName(name)]
	if !ok {
		return nil, nil
	}
	resp, err := p.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch product page: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch product page: status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse product page: %w", err)
	}

	price, ok := extractPrice(doc)
	if !ok {
		return nil, nil
	}
	qty, unit, ok := extractQuantity(doc)
	if !ok {
		return nil, nil
	}
	native, ok := ToNativeUnits(qty, unit)
	if !ok || native <= 0 {
		return nil, nil
	}

	productName := strings.TrimSpace(doc.Find("h1").First().Text())
	if productName == "" {
		productName = name
	}
	return []Quote{{
		ProductName: productName,
		Price:       round4(price / native),
		RefQuantity: native,
		RefUnit:     nativeUnitFor(unit),
		URL:         url,
		Confidence:  0.9, // observed price, known page
		Source:      p.Name(),
	}}, nil
}

var priceSelectors = []string{
	`[itemprop="price"]`,
	".product-price",
	".price",
}

func extractPrice(doc *goquery.Document) (float64, bool) {
	for _, sel := range priceSelectors {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		if content, ok := node.Attr("content"); ok {
			if v, err := strconv.ParseFloat(strings.TrimSpace(content), 64); err == nil && v > 0 {
				return v, true
			}
		}
		if v, ok := parsePriceText(node.Text()); ok {
			return v, true
		}
	}
	return 0, false
}

func extractQuantity(doc *goquery.Document) (float64, string, bool) {
	for _, sel := range []string{`[itemprop="weight"]`, ".product-quantity", ".quantity"} {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		if q, u, ok := ParseQuantity(node.Text()); ok {
			return q, u, true
		}
	}
	// Some shops put the packaging size in the title.
	return ParseQuantity(doc.Find("h1").First().Text())
}

// parsePriceText reads "3,49 €" or "EUR 3.49" style strings.
func parsePriceText(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", ".")
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		} else if b.Len() > 0 {
			break
		}
	}
	v, err := strconv.ParseFloat(strings.Trim(b.String(), "."), 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
