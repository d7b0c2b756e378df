package entities

import "time"

// StockEntry is the pantry stock for one ingredient, at most one row per
// ingredient. Quantity is in the ingredient's native unit. A quantity set
// to zero deletes the row; a remove that bottoms out keeps the empty row
// so callers can tell "exhausted" from "never stocked".
type StockEntry struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	IngredientID uint       `gorm:"not null;uniqueIndex" json:"ingredient_id"`
	Quantity     float64    `json:"quantity"`
	Ingredient   Ingredient `json:"ingredient,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
