package serviceImp

import (
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"pantry/entities"
	"pantry/pkg/apperr"
	mealPlanRepoImp "pantry/pkg/mealplan/repositoryImp"
	"pantry/pkg/mealplan/service"
	shopService "pantry/pkg/shopping/service"
	shopSvcImp "pantry/pkg/shopping/serviceImp"
	stockRepoImp "pantry/pkg/stock/repositoryImp"
)

type mealPlanSvc struct {
	db   *gorm.DB
	shop shopService.ShoppingService
}

func New(db *gorm.DB) service.MealPlanService {
	return &mealPlanSvc{db: db, shop: shopSvcImp.New(db)}
}

func (s *mealPlanSvc) Plan(recipeID uint, plannedAt time.Time) (*entities.MealPlan, error) {
	var rec entities.Recipe
	if err := s.db.First(&rec, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("recipe", recipeID)
		}
		return nil, err
	}
	p := &entities.MealPlan{RecipeID: recipeID, PlannedAt: plannedAt}
	if err := mealPlanRepoImp.New(s.db).Create(p); err != nil {
		return nil, err
	}
	// Planning a meal puts its missing ingredients on the shopping list.
	if _, err := s.shop.AddMissingForRecipe(recipeID); err != nil {
		return nil, err
	}
	return mealPlanRepoImp.New(s.db).FindByID(p.ID)
}

func (s *mealPlanSvc) List(prepared *bool, from, to *time.Time) ([]entities.MealPlan, error) {
	return mealPlanRepoImp.New(s.db).List(prepared, from, to)
}

func (s *mealPlanSvc) Get(id uint) (*entities.MealPlan, error) {
	return mealPlanRepoImp.New(s.db).FindByID(id)
}

func (s *mealPlanSvc) Prepare(id uint) (*entities.MealPlan, error) {
	var out *entities.MealPlan
	err := s.db.Transaction(func(tx *gorm.DB) error {
		r := mealPlanRepoImp.New(tx)
		p, err := r.FindByID(id)
		if err != nil {
			return err
		}
		if p.Prepared {
			return apperr.Invalidf("meal plan %d already prepared", id)
		}

		// Deduct what the recipe consumes. Rows floor at zero and stay,
		// ingredients never stocked are skipped.
		sr := stockRepoImp.New(tx)
		for _, l := range p.Recipe.Ingredients {
			entry, err := sr.FindByIngredient(l.IngredientID)
			if apperr.IsNotFound(err) {
				continue
			}
			if err != nil {
				return err
			}
			entry.Quantity -= l.Quantity
			if entry.Quantity < 0 {
				entry.Quantity = 0
			}
			entry.Ingredient = entities.Ingredient{}
			if err := sr.Save(entry); err != nil {
				return err
			}
		}

		now := time.Now()
		p.Prepared = true
		p.PreparedAt = &now
		p.Recipe = entities.Recipe{}
		if err := r.Save(p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mealPlanRepoImp.New(s.db).FindByID(out.ID)
}

func (s *mealPlanSvc) Cancel(id uint) error {
	r := mealPlanRepoImp.New(s.db)
	p, err := r.FindByID(id)
	if err != nil {
		return err
	}
	if p.Prepared {
		return apperr.Invalidf("meal plan %d already prepared, cannot cancel", id)
	}
	// Undo the planning addition before dropping the plan. The reversal
	// does not re-check stock, so it is approximate when stock moved in
	// between.
	if _, err := s.shop.RemoveForRecipe(p.RecipeID); err != nil {
		return err
	}
	return r.Delete(id)
}

func (s *mealPlanSvc) History() ([]entities.MealPlan, error) {
	prepared := true
	plans, err := mealPlanRepoImp.New(s.db).List(&prepared, nil, nil)
	if err != nil {
		return nil, err
	}
	// Most recently cooked first.
	sort.Slice(plans, func(i, j int) bool {
		a, b := plans[i].PreparedAt, plans[j].PreparedAt
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return a.After(*b)
	})
	return plans, nil
}
