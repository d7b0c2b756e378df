package entities

import "time"

type Recipe struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Instructions string `gorm:"type:text" json:"instructions"`
	Type         string `gorm:"size:50;index" json:"type,omitempty"`
	PrepMinutes  *int   `json:"prep_minutes,omitempty"`
	CookMinutes  *int   `json:"cook_minutes,omitempty"`
	Image        string `gorm:"size:200" json:"image,omitempty"`

	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Steps       []RecipeStep       `gorm:"constraint:OnDelete:CASCADE" json:"steps,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecipeIngredient is one line of a recipe. Quantity is in the referenced
// ingredient's native unit (2 for two eggs, 500 for 500g of flour).
type RecipeIngredient struct {
	ID           uint       `gorm:"primaryKey" json:"-"`
	RecipeID     uint       `gorm:"not null;index:idx_recipe_ingredient,priority:1" json:"recipe_id"`
	IngredientID uint       `gorm:"not null;index:idx_recipe_ingredient,priority:2" json:"ingredient_id"`
	Quantity     float64    `gorm:"not null" json:"quantity"`
	Ingredient   Ingredient `json:"ingredient,omitempty"`
}

type RecipeStep struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	RecipeID     uint   `gorm:"not null;index" json:"recipe_id"`
	Ordinal      int    `gorm:"not null" json:"ordinal"`
	Description  string `gorm:"type:text;not null" json:"description"`
	TimerMinutes *int   `json:"timer_minutes,omitempty"`
}
