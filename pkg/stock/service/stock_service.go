package service

import "pantry/entities"

// Action is a stock ledger operation. The set is closed; anything else is
// rejected before touching the ledger.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
	ActionSet    Action = "set"
)

// View is a stock row with its display quantity precomputed.
type View struct {
	entities.StockEntry
	DisplayQuantity float64 `json:"display_quantity"`
	DisplayUnit     string  `json:"display_unit"`
}

// Summary is the full stock listing plus its valuation.
type Summary struct {
	Entries    []View  `json:"entries"`
	TotalValue float64 `json:"total_value"`
}

type StockService interface {
	// Adjust applies one ledger action and returns the resulting entry,
	// or nil when the action deleted the row.
	Adjust(ingredientID uint, action Action, quantity float64) (*entities.StockEntry, error)
	Get(ingredientID uint) (*entities.StockEntry, error)
	Delete(ingredientID uint) error
	Clear() error
	List() (*Summary, error)
}
