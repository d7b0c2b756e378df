package entities

import "time"

// Ingredient is the permanent catalog entry. Quantities everywhere in the
// system are stored in the ingredient's native unit (g, ml or piece);
// PricePerUnit is the price of one native unit.
type Ingredient struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	Name         string   `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Unit         string   `gorm:"size:20;default:g" json:"unit"` // g|ml|piece
	PricePerUnit float64  `json:"price_per_unit"`
	PieceWeightG *float64 `json:"piece_weight_g,omitempty"` // grams per piece, piece unit only
	Category     string   `gorm:"size:50;index" json:"category"`
	Image        string   `gorm:"size:200" json:"image,omitempty"`

	// Nutrition facts per 100 native units.
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Salt     float64 `json:"salt"`

	Seasons []IngredientSeason `gorm:"constraint:OnDelete:CASCADE" json:"seasons,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IngredientSeason marks one season in which the ingredient is available.
// No rows at all means available all year.
type IngredientSeason struct {
	ID           uint   `gorm:"primaryKey" json:"-"`
	IngredientID uint   `gorm:"index" json:"-"`
	Season       string `gorm:"size:20;index" json:"season"` // spring|summer|autumn|winter
}

// SeasonSet returns the ingredient's seasons as a lookup set.
func (i *Ingredient) SeasonSet() map[string]bool {
	if len(i.Seasons) == 0 {
		return nil
	}
	set := make(map[string]bool, len(i.Seasons))
	for _, s := range i.Seasons {
		set[s.Season] = true
	}
	return set
}
