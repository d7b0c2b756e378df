package entities

import "time"

// MealPlan tracks a planned recipe. Prepared plans are kept as history;
// cancelled plans are deleted outright.
type MealPlan struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	RecipeID   uint       `gorm:"not null;index" json:"recipe_id"`
	PlannedAt  time.Time  `gorm:"index" json:"planned_at"`
	Prepared   bool       `gorm:"index;default:false" json:"prepared"`
	PreparedAt *time.Time `gorm:"index" json:"prepared_at,omitempty"`
	Recipe     Recipe     `gorm:"constraint:OnDelete:CASCADE" json:"recipe,omitempty"`
}
