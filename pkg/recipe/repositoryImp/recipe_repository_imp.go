package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"pantry/entities"
	"pantry/pkg/apperr"
	"pantry/pkg/recipe/repository"
)

type recipeRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecipeRepository { return &recipeRepo{db} }

func (r *recipeRepo) Create(rec *entities.Recipe) error { return r.db.Create(rec).Error }

func (r *recipeRepo) Update(rec *entities.Recipe) error {
	return r.db.Omit("Ingredients", "Steps").Save(rec).Error
}

func (r *recipeRepo) Delete(id uint) error {
	return r.db.Select("Ingredients", "Steps").Delete(&entities.Recipe{ID: id}).Error
}

func (r *recipeRepo) FindByID(id uint) (*entities.Recipe, error) {
	var rec entities.Recipe
	err := r.db.Preload("Ingredients.Ingredient.Seasons").
		Preload("Ingredients.Ingredient").
		Preload("Ingredients").
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("ordinal") }).
		First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("recipe", id)
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recipeRepo) List(recipeType string) ([]entities.Recipe, error) {
	q := r.db.Preload("Ingredients.Ingredient.Seasons").
		Preload("Ingredients.Ingredient").
		Preload("Ingredients").
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("ordinal") }).
		Order("name")
	if recipeType != "" {
		q = q.Where("type = ?", recipeType)
	}
	var out []entities.Recipe
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *recipeRepo) ReplaceLines(id uint, lines []entities.RecipeIngredient, steps []entities.RecipeStep) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeStep{}).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].ID = 0
			lines[i].RecipeID = id
			if err := tx.Create(&lines[i]).Error; err != nil {
				return err
			}
		}
		for i := range steps {
			steps[i].ID = 0
			steps[i].RecipeID = id
			if err := tx.Create(&steps[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// StockSnapshot loads quantities keyed by ingredient for the calculators.
func (r *recipeRepo) StockSnapshot() (map[uint]float64, error) {
	var entries []entities.StockEntry
	if err := r.db.Find(&entries).Error; err != nil {
		return nil, err
	}
	snap := make(map[uint]float64, len(entries))
	for _, e := range entries {
		snap[e.IngredientID] = e.Quantity
	}
	return snap, nil
}
