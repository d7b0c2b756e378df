package entities

// ShoppingListItem holds a quantity to buy, in the ingredient's native
// unit. At most one unpurchased item exists per ingredient; the
// reconciler merges into it instead of inserting duplicates. Purchased
// items are kept as purchase history.
type ShoppingListItem struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	IngredientID uint       `gorm:"not null;index:idx_shopping_purchased_ingredient,priority:2" json:"ingredient_id"`
	Quantity     float64    `gorm:"not null" json:"quantity"`
	Purchased    bool       `gorm:"default:false;index:idx_shopping_purchased_ingredient,priority:1" json:"purchased"`
	Ingredient   Ingredient `json:"ingredient,omitempty"`
}
