package service

import "pantry/entities"

type IngredientService interface {
	Create(i *entities.Ingredient, seasons []string) (*entities.Ingredient, error)
	Update(i *entities.Ingredient, seasons []string) (*entities.Ingredient, error)
	Delete(id uint) error
	Get(id uint) (*entities.Ingredient, error)
	List(category string) ([]entities.Ingredient, error)
}
