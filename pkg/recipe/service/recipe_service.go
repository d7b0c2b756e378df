package service

import (
	"pantry/entities"
	"pantry/pkg/recipe/calc"
)

// Detail is a recipe with its derived numbers attached.
type Detail struct {
	entities.Recipe
	Availability calc.Availability `json:"availability"`
	Cost         float64           `json:"cost"`
	Nutrition    calc.Nutrition    `json:"nutrition"`
	TotalMinutes int               `json:"total_minutes"`
}

type RecipeService interface {
	Create(r *entities.Recipe, lines []entities.RecipeIngredient, steps []entities.RecipeStep) (*entities.Recipe, error)
	Update(r *entities.Recipe, lines []entities.RecipeIngredient, steps []entities.RecipeStep) (*entities.Recipe, error)
	Delete(id uint) error
	Get(id uint) (*Detail, error)
	List(recipeType string) ([]Detail, error)
}
