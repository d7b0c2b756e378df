package serviceImp

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"pantry/entities"
	"pantry/pkg/apperr"
	shoppingRepoImp "pantry/pkg/shopping/repositoryImp"
	"pantry/pkg/shopping/service"
	stockRepoImp "pantry/pkg/stock/repositoryImp"
	"pantry/pkg/units"
)

type shoppingSvc struct{ db *gorm.DB }

func New(db *gorm.DB) service.ShoppingService { return &shoppingSvc{db} }

// AddMissingForRecipe walks one recipe's lines and puts each shortfall
// on the open list, incrementing an existing entry rather than replacing
// it. Planning the same recipe twice therefore doubles the quantities.
func (s *shoppingSvc) AddMissingForRecipe(recipeID uint) (*service.Reconciliation, error) {
	res := &service.Reconciliation{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		rec, err := findRecipe(tx, recipeID)
		if err != nil {
			return err
		}
		r := shoppingRepoImp.New(tx)
		sr := stockRepoImp.New(tx)
		for _, l := range rec.Ingredients {
			available := 0.0
			entry, err := sr.FindByIngredient(l.IngredientID)
			if err == nil {
				available = entry.Quantity
			} else if !apperr.IsNotFound(err) {
				return err
			}
			shortfall := l.Quantity - available
			if shortfall <= 0 {
				continue
			}
			item, err := r.FindUnpurchasedByIngredient(l.IngredientID)
			if apperr.IsNotFound(err) {
				item = &entities.ShoppingListItem{IngredientID: l.IngredientID, Quantity: shortfall}
				res.Added++
			} else if err != nil {
				return err
			} else {
				item.Quantity += shortfall
				res.Merged++
			}
			item.Ingredient = entities.Ingredient{}
			if err := r.Save(item); err != nil {
				return err
			}
			res.TotalCost += shortfall * l.Ingredient.PricePerUnit
		}
		res.TotalCost = round2(res.TotalCost)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// RemoveForRecipe reverses a planning addition. Open entries shrink by
// the recipe's required quantity and disappear when that empties them.
// Current stock is deliberately not consulted, so cancelling after stock
// moved is an approximate undo.
func (s *shoppingSvc) RemoveForRecipe(recipeID uint) (*service.Reconciliation, error) {
	res := &service.Reconciliation{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		rec, err := findRecipe(tx, recipeID)
		if err != nil {
			return err
		}
		r := shoppingRepoImp.New(tx)
		for _, l := range rec.Ingredients {
			item, err := r.FindUnpurchasedByIngredient(l.IngredientID)
			if apperr.IsNotFound(err) {
				continue
			}
			if err != nil {
				return err
			}
			if item.Quantity <= l.Quantity {
				if err := r.Delete(item.ID); err != nil {
					return err
				}
				res.Removed++
				continue
			}
			item.Quantity -= l.Quantity
			item.Ingredient = entities.Ingredient{}
			if err := r.Save(item); err != nil {
				return err
			}
			res.Reduced++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// SyncPurchases marks the reported items bought and moves the purchased
// quantities into stock. The bought amount may differ from the listed
// one; the stored quantity is updated to what was actually purchased.
func (s *shoppingSvc) SyncPurchases(events []service.PurchaseEvent) (int, error) {
	count := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		r := shoppingRepoImp.New(tx)
		sr := stockRepoImp.New(tx)
		for _, ev := range events {
			if !ev.Purchased {
				continue
			}
			item, err := r.FindByID(ev.ItemID)
			if apperr.IsNotFound(err) {
				continue
			}
			if err != nil {
				return err
			}
			qty := ev.PurchasedQuantity
			if qty <= 0 {
				qty = item.Quantity
			}
			item.Purchased = true
			item.Quantity = qty
			item.Ingredient = entities.Ingredient{}
			if err := r.Save(item); err != nil {
				return err
			}

			entry, err := sr.FindByIngredient(item.IngredientID)
			if apperr.IsNotFound(err) {
				entry = &entities.StockEntry{IngredientID: item.IngredientID}
			} else if err != nil {
				return err
			}
			entry.Quantity += qty
			entry.Ingredient = entities.Ingredient{}
			if err := sr.Save(entry); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func findRecipe(tx *gorm.DB, id uint) (*entities.Recipe, error) {
	var rec entities.Recipe
	err := tx.Preload("Ingredients.Ingredient").First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("recipe", id)
		}
		return nil, err
	}
	return &rec, nil
}

// Generate recomputes the shortfall of every ingredient referenced by a
// pending meal plan and reconciles the open list against it. Quantities
// are replaced, entries whose shortfall dropped to zero are removed, and
// entries for ingredients no pending plan references are left alone.
func (s *shoppingSvc) Generate() (*service.List, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		r := shoppingRepoImp.New(tx)

		var plans []entities.MealPlan
		if err := tx.Preload("Recipe.Ingredients").
			Where("prepared = ?", false).Find(&plans).Error; err != nil {
			return err
		}

		needed := map[uint]float64{}
		for _, p := range plans {
			for _, l := range p.Recipe.Ingredients {
				needed[l.IngredientID] += l.Quantity
			}
		}

		var stock []entities.StockEntry
		if err := tx.Find(&stock).Error; err != nil {
			return err
		}
		inStock := map[uint]float64{}
		for _, e := range stock {
			inStock[e.IngredientID] = e.Quantity
		}

		for ingID, qty := range needed {
			shortfall := qty - inStock[ingID]
			if shortfall <= 0 {
				if err := r.DeleteUnpurchasedByIngredient(ingID); err != nil {
					return err
				}
				continue
			}
			item, err := r.FindUnpurchasedByIngredient(ingID)
			if apperr.IsNotFound(err) {
				item = &entities.ShoppingListItem{IngredientID: ingID}
			} else if err != nil {
				return err
			}
			item.Quantity = shortfall
			item.Ingredient = entities.Ingredient{}
			if err := r.Save(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.List(nil)
}

func (s *shoppingSvc) List(budget *float64) (*service.List, error) {
	items, err := shoppingRepoImp.New(s.db).ListUnpurchased()
	if err != nil {
		return nil, err
	}
	out := &service.List{Items: make([]service.Item, 0, len(items)), Budget: budget}
	for _, it := range items {
		v := view(it)
		out.TotalCost += v.EstimatedCost
		out.Items = append(out.Items, v)
	}
	out.TotalCost = round2(out.TotalCost)
	if budget != nil && out.TotalCost > *budget {
		out.OverBudget = true
	}
	return out, nil
}

func (s *shoppingSvc) AddManual(ingredientID uint, quantity float64) (*service.Item, error) {
	if quantity <= 0 {
		return nil, apperr.Invalidf("quantity must be positive")
	}
	var saved *entities.ShoppingListItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var ing entities.Ingredient
		if err := tx.First(&ing, ingredientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("ingredient", ingredientID)
			}
			return err
		}
		r := shoppingRepoImp.New(tx)
		item, err := r.FindUnpurchasedByIngredient(ingredientID)
		if apperr.IsNotFound(err) {
			item = &entities.ShoppingListItem{IngredientID: ingredientID}
		} else if err != nil {
			return err
		}
		item.Quantity += quantity
		item.Ingredient = entities.Ingredient{}
		if err := r.Save(item); err != nil {
			return err
		}
		saved = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.item(saved.ID)
}

func (s *shoppingSvc) UpdateQuantity(itemID uint, quantity float64) (*service.Item, error) {
	if quantity < 0 {
		return nil, apperr.Invalidf("quantity must not be negative")
	}
	r := shoppingRepoImp.New(s.db)
	item, err := r.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if item.Purchased {
		return nil, apperr.Invalidf("item already purchased")
	}
	if quantity == 0 {
		return nil, r.Delete(itemID)
	}
	item.Quantity = quantity
	item.Ingredient = entities.Ingredient{}
	if err := r.Save(item); err != nil {
		return nil, err
	}
	return s.item(itemID)
}

func (s *shoppingSvc) DeleteItem(itemID uint) error {
	r := shoppingRepoImp.New(s.db)
	if _, err := r.FindByID(itemID); err != nil {
		return err
	}
	return r.Delete(itemID)
}

func (s *shoppingSvc) Purchase(itemID uint) (*service.Item, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		r := shoppingRepoImp.New(tx)
		item, err := r.FindByID(itemID)
		if err != nil {
			return err
		}
		if item.Purchased {
			return apperr.Invalidf("item already purchased")
		}
		item.Purchased = true
		item.Ingredient = entities.Ingredient{}
		if err := r.Save(item); err != nil {
			return err
		}

		sr := stockRepoImp.New(tx)
		entry, err := sr.FindByIngredient(item.IngredientID)
		if apperr.IsNotFound(err) {
			entry = &entities.StockEntry{IngredientID: item.IngredientID}
		} else if err != nil {
			return err
		}
		entry.Quantity += item.Quantity
		entry.Ingredient = entities.Ingredient{}
		return sr.Save(entry)
	})
	if err != nil {
		return nil, err
	}
	return s.item(itemID)
}

func (s *shoppingSvc) History() ([]service.Item, error) {
	items, err := shoppingRepoImp.New(s.db).ListPurchased()
	if err != nil {
		return nil, err
	}
	out := make([]service.Item, 0, len(items))
	for _, it := range items {
		out = append(out, view(it))
	}
	return out, nil
}

func (s *shoppingSvc) ClearHistory() error {
	return shoppingRepoImp.New(s.db).DeletePurchased()
}

func (s *shoppingSvc) item(id uint) (*service.Item, error) {
	it, err := shoppingRepoImp.New(s.db).FindByID(id)
	if err != nil {
		return nil, err
	}
	v := view(*it)
	return &v, nil
}

func view(it entities.ShoppingListItem) service.Item {
	dq, du := units.Display(it.Quantity, it.Ingredient.Unit)
	return service.Item{
		ShoppingListItem: it,
		DisplayQuantity:  dq,
		DisplayUnit:      du,
		EstimatedCost:    round2(it.Quantity * it.Ingredient.PricePerUnit),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
