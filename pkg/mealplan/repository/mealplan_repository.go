package repository

import (
	"time"

	"pantry/entities"
)

type MealPlanRepository interface {
	Create(p *entities.MealPlan) error
	Save(p *entities.MealPlan) error
	Delete(id uint) error
	FindByID(id uint) (*entities.MealPlan, error)
	List(prepared *bool, from, to *time.Time) ([]entities.MealPlan, error)
}
