// Package price collects ingredient prices from external sources. It
// writes price history and ingredient prices only; stock, shopping list
// and meal plans are out of its reach.
package price

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// Quote is one price observation offered by a scraper. Price is already
// normalized to one native unit (per gram or per millilitre).
type Quote struct {
	ProductName string
	Price       float64
	RefQuantity float64
	RefUnit     string
	Barcode     string
	URL         string
	Confidence  float64
	Source      string
}

// Scraper looks up price quotes for an ingredient name.
type Scraper interface {
	Name() string
	Search(ctx context.Context, name, category string) ([]Quote, error)
}

// NormalizeName prepares an ingredient name for searching: lowercase,
// leading articles stripped, parenthesized qualifiers removed.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, article := range []string{"le ", "la ", "les ", "un ", "une ", "des ", "du ", "de la ", "the ", "a "} {
		if strings.HasPrefix(name, article) {
			name = name[len(article):]
			break
		}
	}
	name = parenRe.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

var parenRe = regexp.MustCompile(`\([^)]*\)`)

var quantityPatterns = []struct {
	re   *regexp.Regexp
	unit string
}{
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*kg`), "kg"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*g`), "g"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*l`), "l"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*ml`), "ml"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*cl`), "cl"},
}

// ParseQuantity reads a packaging label like "500g", "1,5 L" or "25cl".
// Returns ok=false when no recognizable quantity is present.
func ParseQuantity(s string) (quantity float64, unit string, ok bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, "", false
	}
	// ml must win over l and kg over g, so try the longer suffixes first.
	order := []string{"kg", "ml", "cl", "g", "l"}
	for _, u := range order {
		for _, p := range quantityPatterns {
			if p.unit != u {
				continue
			}
			m := p.re.FindStringSubmatch(s)
			if m == nil {
				continue
			}
			v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
			if err != nil || v <= 0 {
				continue
			}
			return v, u, true
		}
	}
	return 0, "", false
}

// ToNativeUnits converts a parsed packaging quantity to grams or
// millilitres. Returns ok=false for units it does not know.
func ToNativeUnits(quantity float64, unit string) (float64, bool) {
	switch unit {
	case "g", "ml":
		return quantity, true
	case "kg", "l":
		return quantity * 1000, true
	case "cl":
		return quantity * 10, true
	}
	return 0, false
}

// MatchScore rates how well a product name matches the searched name,
// in [0,1]. Exact substring wins outright, otherwise the share of
// searched words present in the product name.
func MatchScore(productName, searched string) float64 {
	if searched == "" {
		return 0.8
	}
	productName = strings.ToLower(productName)
	searched = strings.ToLower(searched)
	if strings.Contains(productName, searched) {
		return 1.0
	}
	searchWords := strings.Fields(searched)
	if len(searchWords) == 0 {
		return 0.5
	}
	productWords := map[string]bool{}
	for _, w := range strings.Fields(productName) {
		productWords[w] = true
	}
	var common int
	for _, w := range searchWords {
		if productWords[w] {
			common++
		}
	}
	score := float64(common) / float64(len(searchWords))
	if score > 1 {
		score = 1
	}
	return score
}

// ConfidenceScore combines the name match with barcode and image
// presence: 60% name, 30% barcode, 10% image.
func ConfidenceScore(matchScore float64, hasBarcode, hasImage bool) float64 {
	score := matchScore * 0.6
	if hasBarcode {
		score += 0.3
	}
	if hasImage {
		score += 0.1
	}
	if score > 1 {
		score = 1
	}
	return score
}
