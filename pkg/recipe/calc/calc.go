// Package calc computes availability, cost and nutrition for recipe
// lines. Everything here is pure; callers supply the stock snapshot.
package calc

import (
	"math"

	"pantry/entities"
)

// Availability describes how much of a recipe the current stock covers.
type Availability struct {
	Percent        float64       `json:"percent"`
	Feasible       bool          `json:"feasible"`
	AvailableCount int           `json:"available_count"`
	Missing        []MissingItem `json:"missing,omitempty"`
}

// MissingItem is one recipe line the stock cannot fully cover.
type MissingItem struct {
	IngredientID uint    `json:"ingredient_id"`
	Name         string  `json:"name"`
	Needed       float64 `json:"needed"`
	InStock      float64 `json:"in_stock"`
	Shortfall    float64 `json:"shortfall"`
}

// Nutrition is the per-recipe total, derived from per-100-unit facts.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Salt     float64 `json:"salt"`
}

// ComputeAvailability checks each line against the stock snapshot, keyed
// by ingredient ID in native units. A recipe with no lines is 0% and not
// feasible.
func ComputeAvailability(lines []entities.RecipeIngredient, stock map[uint]float64) Availability {
	if len(lines) == 0 {
		return Availability{}
	}
	var a Availability
	for _, l := range lines {
		have := stock[l.IngredientID]
		if have >= l.Quantity {
			a.AvailableCount++
			continue
		}
		a.Missing = append(a.Missing, MissingItem{
			IngredientID: l.IngredientID,
			Name:         l.Ingredient.Name,
			Needed:       l.Quantity,
			InStock:      have,
			Shortfall:    l.Quantity - have,
		})
	}
	a.Percent = round1(100 * float64(a.AvailableCount) / float64(len(lines)))
	a.Feasible = a.AvailableCount == len(lines)
	return a
}

// ComputeCost sums quantity times per-unit price over all lines, rounded
// to cents. Lines without a known price contribute zero.
func ComputeCost(lines []entities.RecipeIngredient) float64 {
	var total float64
	for _, l := range lines {
		if l.Ingredient.PricePerUnit <= 0 {
			continue
		}
		total += l.Quantity * l.Ingredient.PricePerUnit
	}
	return round2(total)
}

// ComputeNutrition scales each ingredient's per-100-unit facts by the
// line quantity and sums. Salt keeps two decimals, the rest one.
func ComputeNutrition(lines []entities.RecipeIngredient) Nutrition {
	var n Nutrition
	for _, l := range lines {
		f := l.Quantity / 100
		n.Calories += l.Ingredient.Calories * f
		n.Protein += l.Ingredient.Protein * f
		n.Carbs += l.Ingredient.Carbs * f
		n.Fat += l.Ingredient.Fat * f
		n.Fiber += l.Ingredient.Fiber * f
		n.Sugar += l.Ingredient.Sugar * f
		n.Salt += l.Ingredient.Salt * f
	}
	n.Calories = round1(n.Calories)
	n.Protein = round1(n.Protein)
	n.Carbs = round1(n.Carbs)
	n.Fat = round1(n.Fat)
	n.Fiber = round1(n.Fiber)
	n.Sugar = round1(n.Sugar)
	n.Salt = round2(n.Salt)
	return n
}

// TotalMinutes is prep plus cook time; nil parts count as zero, and a
// recipe with neither returns 0 so callers can treat it as unknown.
func TotalMinutes(r *entities.Recipe) int {
	var t int
	if r.PrepMinutes != nil {
		t += *r.PrepMinutes
	}
	if r.CookMinutes != nil {
		t += *r.CookMinutes
	}
	return t
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
