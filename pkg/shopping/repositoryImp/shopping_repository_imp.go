package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"pantry/entities"
	"pantry/pkg/apperr"
	"pantry/pkg/shopping/repository"
)

type shoppingRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ShoppingRepository { return &shoppingRepo{db} }

func (r *shoppingRepo) FindUnpurchasedByIngredient(ingredientID uint) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	err := r.db.Preload("Ingredient").
		Where("ingredient_id = ? AND purchased = ?", ingredientID, false).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("shopping item for ingredient", ingredientID)
		}
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepo) FindByID(id uint) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	if err := r.db.Preload("Ingredient").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("shopping item", id)
		}
		return nil, err
	}
	return &item, nil
}

func (r *shoppingRepo) Save(item *entities.ShoppingListItem) error { return r.db.Save(item).Error }

func (r *shoppingRepo) Delete(id uint) error {
	return r.db.Delete(&entities.ShoppingListItem{}, id).Error
}

func (r *shoppingRepo) DeleteUnpurchasedByIngredient(ingredientID uint) error {
	return r.db.Where("ingredient_id = ? AND purchased = ?", ingredientID, false).
		Delete(&entities.ShoppingListItem{}).Error
}

func (r *shoppingRepo) ListUnpurchased() ([]entities.ShoppingListItem, error) {
	return r.list(false)
}

func (r *shoppingRepo) ListPurchased() ([]entities.ShoppingListItem, error) {
	return r.list(true)
}

func (r *shoppingRepo) DeletePurchased() error {
	return r.db.Where("purchased = ?", true).Delete(&entities.ShoppingListItem{}).Error
}

func (r *shoppingRepo) list(purchased bool) ([]entities.ShoppingListItem, error) {
	var out []entities.ShoppingListItem
	err := r.db.Preload("Ingredient").
		Joins("JOIN ingredients ON ingredients.id = shopping_list_items.ingredient_id").
		Where("purchased = ?", purchased).
		Order("ingredients.name").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
