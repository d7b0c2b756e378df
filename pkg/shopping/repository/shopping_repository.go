package repository

import "pantry/entities"

type ShoppingRepository interface {
	FindUnpurchasedByIngredient(ingredientID uint) (*entities.ShoppingListItem, error)
	FindByID(id uint) (*entities.ShoppingListItem, error)
	Save(item *entities.ShoppingListItem) error
	Delete(id uint) error
	DeleteUnpurchasedByIngredient(ingredientID uint) error
	ListUnpurchased() ([]entities.ShoppingListItem, error)
	ListPurchased() ([]entities.ShoppingListItem, error)
	DeletePurchased() error
}
