package serviceImp

import (
	"errors"

	"gorm.io/gorm"

	"pantry/entities"
	"pantry/pkg/apperr"
	"pantry/pkg/recipe/calc"
	repo "pantry/pkg/recipe/repository"
	"pantry/pkg/recipe/service"
)

type recipeSvc struct {
	db *gorm.DB
	r  repo.RecipeRepository
}

func New(db *gorm.DB, r repo.RecipeRepository) service.RecipeService {
	return &recipeSvc{db, r}
}

func (s *recipeSvc) validate(r *entities.Recipe, lines []entities.RecipeIngredient, steps []entities.RecipeStep) error {
	if r.Name == "" {
		return apperr.Invalidf("name is required")
	}
	if r.PrepMinutes != nil && *r.PrepMinutes < 0 {
		return apperr.Invalidf("prep minutes must not be negative")
	}
	if r.CookMinutes != nil && *r.CookMinutes < 0 {
		return apperr.Invalidf("cook minutes must not be negative")
	}
	seen := map[uint]bool{}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return apperr.Invalidf("line quantity must be positive")
		}
		if seen[l.IngredientID] {
			return apperr.Invalidf("ingredient %d appears twice", l.IngredientID)
		}
		seen[l.IngredientID] = true
		var i entities.Ingredient
		if err := s.db.First(&i, l.IngredientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("ingredient", l.IngredientID)
			}
			return err
		}
	}
	for _, st := range steps {
		if st.Description == "" {
			return apperr.Invalidf("step %d has no description", st.Ordinal)
		}
	}
	return nil
}

func (s *recipeSvc) Create(r *entities.Recipe, lines []entities.RecipeIngredient, steps []entities.RecipeStep) (*entities.Recipe, error) {
	if err := s.validate(r, lines, steps); err != nil {
		return nil, err
	}
	if err := s.r.Create(r); err != nil {
		return nil, err
	}
	if err := s.r.ReplaceLines(r.ID, lines, steps); err != nil {
		return nil, err
	}
	return s.r.FindByID(r.ID)
}

func (s *recipeSvc) Update(r *entities.Recipe, lines []entities.RecipeIngredient, steps []entities.RecipeStep) (*entities.Recipe, error) {
	if _, err := s.r.FindByID(r.ID); err != nil {
		return nil, err
	}
	if err := s.validate(r, lines, steps); err != nil {
		return nil, err
	}
	if err := s.r.Update(r); err != nil {
		return nil, err
	}
	if err := s.r.ReplaceLines(r.ID, lines, steps); err != nil {
		return nil, err
	}
	return s.r.FindByID(r.ID)
}

func (s *recipeSvc) Delete(id uint) error {
	if _, err := s.r.FindByID(id); err != nil {
		return err
	}
	return s.r.Delete(id)
}

func (s *recipeSvc) Get(id uint) (*service.Detail, error) {
	rec, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	snap, err := s.r.StockSnapshot()
	if err != nil {
		return nil, err
	}
	d := detail(rec, snap)
	return &d, nil
}

func (s *recipeSvc) List(recipeType string) ([]service.Detail, error) {
	recs, err := s.r.List(recipeType)
	if err != nil {
		return nil, err
	}
	snap, err := s.r.StockSnapshot()
	if err != nil {
		return nil, err
	}
	out := make([]service.Detail, 0, len(recs))
	for i := range recs {
		out = append(out, detail(&recs[i], snap))
	}
	return out, nil
}

func detail(r *entities.Recipe, stock map[uint]float64) service.Detail {
	return service.Detail{
		Recipe:       *r,
		Availability: calc.ComputeAvailability(r.Ingredients, stock),
		Cost:         calc.ComputeCost(r.Ingredients),
		Nutrition:    calc.ComputeNutrition(r.Ingredients),
		TotalMinutes: calc.TotalMinutes(r),
	}
}
