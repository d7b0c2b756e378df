package repository

import "pantry/entities"

type IngredientRepository interface {
	Create(i *entities.Ingredient) error
	Update(i *entities.Ingredient) error
	Delete(id uint) error
	FindByID(id uint) (*entities.Ingredient, error)
	List(category string) ([]entities.Ingredient, error)
	ReplaceSeasons(id uint, seasons []string) error
	RecipeRefCount(id uint) (int64, error)
	StockRefCount(id uint) (int64, error)
}
