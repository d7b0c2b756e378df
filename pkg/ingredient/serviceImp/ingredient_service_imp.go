package serviceImp

import (
	"pantry/entities"
	"pantry/pkg/apperr"
	repo "pantry/pkg/ingredient/repository"
	"pantry/pkg/ingredient/service"
	"pantry/pkg/season"
	"pantry/pkg/units"
)

type ingredientSvc struct{ r repo.IngredientRepository }

func New(r repo.IngredientRepository) service.IngredientService { return &ingredientSvc{r} }

func validate(i *entities.Ingredient, seasons []string) error {
	if i.Name == "" {
		return apperr.Invalidf("name is required")
	}
	if err := units.Validate(i.Unit); err != nil {
		return err
	}
	if i.PricePerUnit < 0 {
		return apperr.Invalidf("price per unit must not be negative")
	}
	if i.Unit != units.Piece && i.PieceWeightG != nil {
		return apperr.Invalidf("piece weight only applies to piece ingredients")
	}
	for _, s := range seasons {
		if !season.Valid(s) {
			return apperr.Invalidf("unknown season %q", s)
		}
	}
	return nil
}

func (s *ingredientSvc) Create(i *entities.Ingredient, seasons []string) (*entities.Ingredient, error) {
	if err := validate(i, seasons); err != nil {
		return nil, err
	}
	if err := s.r.Create(i); err != nil {
		return nil, err
	}
	if len(seasons) > 0 {
		if err := s.r.ReplaceSeasons(i.ID, seasons); err != nil {
			return nil, err
		}
	}
	return s.r.FindByID(i.ID)
}

func (s *ingredientSvc) Update(i *entities.Ingredient, seasons []string) (*entities.Ingredient, error) {
	if _, err := s.r.FindByID(i.ID); err != nil {
		return nil, err
	}
	if err := validate(i, seasons); err != nil {
		return nil, err
	}
	if err := s.r.Update(i); err != nil {
		return nil, err
	}
	if seasons != nil {
		if err := s.r.ReplaceSeasons(i.ID, seasons); err != nil {
			return nil, err
		}
	}
	return s.r.FindByID(i.ID)
}

// Delete refuses while the ingredient is still referenced by a recipe or
// held in stock, so recipe lines never dangle.
func (s *ingredientSvc) Delete(id uint) error {
	if _, err := s.r.FindByID(id); err != nil {
		return err
	}
	if n, err := s.r.RecipeRefCount(id); err != nil {
		return err
	} else if n > 0 {
		return apperr.Invalidf("ingredient is used by %d recipe line(s)", n)
	}
	if n, err := s.r.StockRefCount(id); err != nil {
		return err
	} else if n > 0 {
		return apperr.Invalidf("ingredient is still in stock")
	}
	return s.r.Delete(id)
}

func (s *ingredientSvc) Get(id uint) (*entities.Ingredient, error) { return s.r.FindByID(id) }

func (s *ingredientSvc) List(category string) ([]entities.Ingredient, error) {
	return s.r.List(category)
}
