package service

import (
	"time"

	"pantry/entities"
)

type MealPlanService interface {
	Plan(recipeID uint, plannedAt time.Time) (*entities.MealPlan, error)
	List(prepared *bool, from, to *time.Time) ([]entities.MealPlan, error)
	Get(id uint) (*entities.MealPlan, error)
	// Prepare marks the plan cooked and deducts the recipe's quantities
	// from stock, flooring at zero.
	Prepare(id uint) (*entities.MealPlan, error)
	// Cancel removes a pending plan. Prepared plans are history and stay.
	Cancel(id uint) error
	History() ([]entities.MealPlan, error)
}
