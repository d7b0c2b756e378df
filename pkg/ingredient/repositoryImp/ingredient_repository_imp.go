package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"pantry/entities"
	"pantry/pkg/apperr"
	"pantry/pkg/ingredient/repository"
)

type ingredientRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.IngredientRepository { return &ingredientRepo{db} }

func (r *ingredientRepo) Create(i *entities.Ingredient) error { return r.db.Create(i).Error }

func (r *ingredientRepo) Update(i *entities.Ingredient) error {
	return r.db.Omit("Seasons").Save(i).Error
}

func (r *ingredientRepo) Delete(id uint) error {
	return r.db.Select("Seasons").Delete(&entities.Ingredient{ID: id}).Error
}

func (r *ingredientRepo) FindByID(id uint) (*entities.Ingredient, error) {
	var i entities.Ingredient
	if err := r.db.Preload("Seasons").First(&i, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("ingredient", id)
		}
		return nil, err
	}
	return &i, nil
}

func (r *ingredientRepo) List(category string) ([]entities.Ingredient, error) {
	q := r.db.Preload("Seasons").Order("name")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []entities.Ingredient
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ingredientRepo) ReplaceSeasons(id uint, seasons []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ingredient_id = ?", id).Delete(&entities.IngredientSeason{}).Error; err != nil {
			return err
		}
		for _, s := range seasons {
			if err := tx.Create(&entities.IngredientSeason{IngredientID: id, Season: s}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ingredientRepo) RecipeRefCount(id uint) (int64, error) {
	var n int64
	err := r.db.Model(&entities.RecipeIngredient{}).Where("ingredient_id = ?", id).Count(&n).Error
	return n, err
}

func (r *ingredientRepo) StockRefCount(id uint) (int64, error) {
	var n int64
	err := r.db.Model(&entities.StockEntry{}).
		Where("ingredient_id = ? AND quantity > 0", id).Count(&n).Error
	return n, err
}
