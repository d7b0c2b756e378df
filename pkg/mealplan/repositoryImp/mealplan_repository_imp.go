package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"pantry/entities"
	"pantry/pkg/apperr"
	"pantry/pkg/mealplan/repository"
)

type mealPlanRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MealPlanRepository { return &mealPlanRepo{db} }

func (r *mealPlanRepo) Create(p *entities.MealPlan) error { return r.db.Create(p).Error }

func (r *mealPlanRepo) Save(p *entities.MealPlan) error { return r.db.Save(p).Error }

func (r *mealPlanRepo) Delete(id uint) error {
	return r.db.Delete(&entities.MealPlan{}, id).Error
}

func (r *mealPlanRepo) FindByID(id uint) (*entities.MealPlan, error) {
	var p entities.MealPlan
	err := r.db.Preload("Recipe.Ingredients.Ingredient").
		Preload("Recipe.Ingredients").
		Preload("Recipe").
		First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("meal plan", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *mealPlanRepo) List(prepared *bool, from, to *time.Time) ([]entities.MealPlan, error) {
	q := r.db.Preload("Recipe").Order("planned_at")
	if prepared != nil {
		q = q.Where("prepared = ?", *prepared)
	}
	if from != nil {
		q = q.Where("planned_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("planned_at < ?", *to)
	}
	var out []entities.MealPlan
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
