package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"pantry/entities"
	"pantry/pkg/apperr"
	"pantry/pkg/stock/repository"
)

type stockRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StockRepository { return &stockRepo{db} }

func (r *stockRepo) FindByIngredient(ingredientID uint) (*entities.StockEntry, error) {
	var e entities.StockEntry
	err := r.db.Preload("Ingredient").Where("ingredient_id = ?", ingredientID).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("stock entry for ingredient", ingredientID)
		}
		return nil, err
	}
	return &e, nil
}

func (r *stockRepo) Save(e *entities.StockEntry) error { return r.db.Save(e).Error }

func (r *stockRepo) DeleteByIngredient(ingredientID uint) error {
	return r.db.Where("ingredient_id = ?", ingredientID).Delete(&entities.StockEntry{}).Error
}

func (r *stockRepo) Clear() error {
	return r.db.Where("1 = 1").Delete(&entities.StockEntry{}).Error
}

func (r *stockRepo) List() ([]entities.StockEntry, error) {
	var out []entities.StockEntry
	err := r.db.Preload("Ingredient").Preload("Ingredient.Seasons").
		Joins("JOIN ingredients ON ingredients.id = stock_entries.ingredient_id").
		Order("ingredients.name").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
