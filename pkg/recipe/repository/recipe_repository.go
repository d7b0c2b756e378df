package repository

import "pantry/entities"

type RecipeRepository interface {
	Create(r *entities.Recipe) error
	Update(r *entities.Recipe) error
	Delete(id uint) error
	FindByID(id uint) (*entities.Recipe, error)
	List(recipeType string) ([]entities.Recipe, error)
	ReplaceLines(id uint, lines []entities.RecipeIngredient, steps []entities.RecipeStep) error
	StockSnapshot() (map[uint]float64, error)
}
