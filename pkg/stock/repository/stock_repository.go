package repository

import "pantry/entities"

type StockRepository interface {
	FindByIngredient(ingredientID uint) (*entities.StockEntry, error)
	Save(e *entities.StockEntry) error
	DeleteByIngredient(ingredientID uint) error
	Clear() error
	List() ([]entities.StockEntry, error)
}
