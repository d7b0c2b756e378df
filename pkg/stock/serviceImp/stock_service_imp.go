package serviceImp

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"pantry/entities"
	"pantry/pkg/apperr"
	stockRepoImp "pantry/pkg/stock/repositoryImp"
	"pantry/pkg/stock/service"
	"pantry/pkg/units"
)

type stockSvc struct{ db *gorm.DB }

func New(db *gorm.DB) service.StockService { return &stockSvc{db} }

func (s *stockSvc) Adjust(ingredientID uint, action service.Action, quantity float64) (*entities.StockEntry, error) {
	var out *entities.StockEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		out, err = adjust(tx, ingredientID, action, quantity)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func adjust(tx *gorm.DB, ingredientID uint, action service.Action, quantity float64) (*entities.StockEntry, error) {
	r := stockRepoImp.New(tx)

	switch action {
	case service.ActionAdd:
		if quantity <= 0 {
			return nil, apperr.Invalidf("add quantity must be positive")
		}
		if err := ingredientExists(tx, ingredientID); err != nil {
			return nil, err
		}
		e, err := r.FindByIngredient(ingredientID)
		if apperr.IsNotFound(err) {
			e = &entities.StockEntry{IngredientID: ingredientID, Quantity: quantity}
		} else if err != nil {
			return nil, err
		} else {
			e.Quantity += quantity
		}
		if err := r.Save(e); err != nil {
			return nil, err
		}
		return e, nil

	case service.ActionRemove:
		if quantity <= 0 {
			return nil, apperr.Invalidf("remove quantity must be positive")
		}
		e, err := r.FindByIngredient(ingredientID)
		if apperr.IsNotFound(err) {
			// Nothing stocked means nothing to remove. No row is created.
			return &entities.StockEntry{IngredientID: ingredientID}, nil
		}
		if err != nil {
			return nil, err
		}
		// Bottoming out keeps the row at zero so "exhausted" stays
		// distinguishable from "never stocked".
		e.Quantity -= quantity
		if e.Quantity < 0 {
			e.Quantity = 0
		}
		if err := r.Save(e); err != nil {
			return nil, err
		}
		return e, nil

	case service.ActionSet:
		if quantity < 0 {
			return nil, apperr.Invalidf("set quantity must not be negative")
		}
		if quantity == 0 {
			if err := r.DeleteByIngredient(ingredientID); err != nil {
				return nil, err
			}
			return nil, nil
		}
		if err := ingredientExists(tx, ingredientID); err != nil {
			return nil, err
		}
		e, err := r.FindByIngredient(ingredientID)
		if apperr.IsNotFound(err) {
			e = &entities.StockEntry{IngredientID: ingredientID}
		} else if err != nil {
			return nil, err
		}
		e.Quantity = quantity
		if err := r.Save(e); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, apperr.Invalidf("unknown stock action %q", action)
}

func ingredientExists(tx *gorm.DB, id uint) error {
	var i entities.Ingredient
	if err := tx.First(&i, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("ingredient", id)
		}
		return err
	}
	return nil
}

func (s *stockSvc) Get(ingredientID uint) (*entities.StockEntry, error) {
	return stockRepoImp.New(s.db).FindByIngredient(ingredientID)
}

func (s *stockSvc) Delete(ingredientID uint) error {
	r := stockRepoImp.New(s.db)
	if _, err := r.FindByIngredient(ingredientID); err != nil {
		return err
	}
	return r.DeleteByIngredient(ingredientID)
}

func (s *stockSvc) Clear() error {
	return stockRepoImp.New(s.db).Clear()
}

func (s *stockSvc) List() (*service.Summary, error) {
	entries, err := stockRepoImp.New(s.db).List()
	if err != nil {
		return nil, err
	}
	sum := &service.Summary{Entries: make([]service.View, 0, len(entries))}
	var value float64
	for _, e := range entries {
		dq, du := units.Display(e.Quantity, e.Ingredient.Unit)
		sum.Entries = append(sum.Entries, service.View{StockEntry: e, DisplayQuantity: dq, DisplayUnit: du})
		if e.Ingredient.PricePerUnit > 0 {
			value += e.Quantity * e.Ingredient.PricePerUnit
		}
	}
	sum.TotalValue = math.Round(value*100) / 100
	return sum, nil
}
