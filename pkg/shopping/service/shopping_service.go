package service

import "pantry/entities"

// Item is a shopping list row with its cost estimate and display values.
type Item struct {
	entities.ShoppingListItem
	DisplayQuantity float64 `json:"display_quantity"`
	DisplayUnit     string  `json:"display_unit"`
	EstimatedCost   float64 `json:"estimated_cost"`
}

// List is the whole unpurchased list plus its totals.
type List struct {
	Items      []Item   `json:"items"`
	TotalCost  float64  `json:"total_cost"`
	Budget     *float64 `json:"budget,omitempty"`
	OverBudget bool     `json:"over_budget"`
}

// Reconciliation counts what one recipe pass did to the open list.
type Reconciliation struct {
	Added     int     `json:"added"`
	Merged    int     `json:"merged"`
	Removed   int     `json:"removed"`
	Reduced   int     `json:"reduced"`
	TotalCost float64 `json:"total_cost"`
}

// PurchaseEvent reports one bought item. PurchasedQuantity may differ
// from the listed quantity; zero or negative means "as listed".
type PurchaseEvent struct {
	ItemID            uint    `json:"item_id"`
	PurchasedQuantity float64 `json:"purchased_quantity"`
	Purchased         bool    `json:"purchased"`
}

type ShoppingService interface {
	// AddMissingForRecipe puts one recipe's current shortfall on the
	// list, incrementing any open entry for the same ingredient. Calling
	// it twice with unchanged stock doubles the quantities; callers
	// invoke it once per planning action.
	AddMissingForRecipe(recipeID uint) (*Reconciliation, error)
	// RemoveForRecipe undoes a planning addition: open entries shrink by
	// the recipe's required quantity and are deleted when that empties
	// them. Stock is not re-checked, so the reversal is approximate.
	RemoveForRecipe(recipeID uint) (*Reconciliation, error)
	// SyncPurchases marks items bought and routes the purchased
	// quantities into stock. Unknown item ids are skipped. Returns the
	// number of items modified.
	SyncPurchases(events []PurchaseEvent) (int, error)
	// Generate rebuilds the unpurchased list from the pending meal plans.
	// Quantities are replaced, never accumulated, so it is idempotent.
	Generate() (*List, error)
	List(budget *float64) (*List, error)
	AddManual(ingredientID uint, quantity float64) (*Item, error)
	UpdateQuantity(itemID uint, quantity float64) (*Item, error)
	DeleteItem(itemID uint) error
	// Purchase marks the item bought and moves its quantity into stock.
	Purchase(itemID uint) (*Item, error)
	History() ([]Item, error)
	ClearHistory() error
	// ExportXLSX renders the unpurchased list as a spreadsheet.
	ExportXLSX() ([]byte, error)
}
