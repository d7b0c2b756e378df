package entities

import "time"

// PriceRecord is one collected price observation. Append-only; pruning
// removes old low-confidence rows, nothing is ever updated in place.
type PriceRecord struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	IngredientID uint      `gorm:"not null;index" json:"ingredient_id"`
	Price        float64   `gorm:"not null" json:"price"` // per native unit
	Source       string    `gorm:"size:50;not null" json:"source"`
	SourceURL    string    `gorm:"size:500" json:"source_url,omitempty"`
	Barcode      string    `gorm:"size:20" json:"barcode,omitempty"`
	ProductName  string    `gorm:"size:200" json:"product_name,omitempty"`
	RefQuantity  float64   `json:"ref_quantity,omitempty"`
	RefUnit      string    `gorm:"size:20" json:"ref_unit,omitempty"`
	Confidence   float64   `gorm:"default:1" json:"confidence"` // 0..1
	CollectedAt  time.Time `gorm:"index" json:"collected_at"`
}

// PriceSource is the per-source collector configuration.
type PriceSource struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Name              string     `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Active            bool       `gorm:"default:true" json:"active"`
	Priority          int        `gorm:"default:50" json:"priority"`
	Reliability       float64    `gorm:"default:0.8" json:"reliability"`
	LastRunAt         *time.Time `json:"last_run_at,omitempty"`
	ConsecutiveErrors int        `json:"consecutive_errors"`
	Description       string     `gorm:"type:text" json:"description,omitempty"`
}

// ProductMapping remembers which search term matched well for an
// ingredient on a given source, so later runs search smarter.
type ProductMapping struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	IngredientID uint      `gorm:"not null;index" json:"ingredient_id"`
	SearchTerm   string    `gorm:"size:200;not null" json:"search_term"`
	Source       string    `gorm:"size:50;not null" json:"source"`
	Barcode      string    `gorm:"size:20" json:"barcode,omitempty"`
	ProductName  string    `gorm:"size:200" json:"product_name,omitempty"`
	Validity     float64   `gorm:"default:1" json:"validity"`
	UseCount     int       `json:"use_count"`
	LastUsedAt   time.Time `json:"last_used_at"`
	CreatedAt    time.Time `json:"created_at"`
}
