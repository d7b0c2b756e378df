package serviceImp

import (
	"time"

	"gorm.io/gorm"

	"pantry/config"
	"pantry/entities"
	"pantry/pkg/apperr"
	"pantry/pkg/recipe/calc"
	recipeRepo "pantry/pkg/recipe/repository"
	"pantry/pkg/recommend/engine"
	"pantry/pkg/recommend/service"
	"pantry/pkg/season"
)

type recommendSvc struct {
	db  *gorm.DB
	r   recipeRepo.RecipeRepository
	cfg config.AppConfig
}

func New(db *gorm.DB, r recipeRepo.RecipeRepository, cfg config.AppConfig) service.RecommendService {
	return &recommendSvc{db, r, cfg}
}

func (s *recommendSvc) Recommend(req service.Request) ([]engine.Ranked, error) {
	if req.Limit != nil && *req.Limit <= 0 {
		return []engine.Ranked{}, nil
	}
	ref := req.Season
	if ref == "" {
		ref = season.Of(time.Now())
	} else if !season.Valid(ref) {
		return nil, apperr.Invalidf("unknown season %q", ref)
	}

	recipes, err := s.r.List(req.Type)
	if err != nil {
		return nil, err
	}
	snap, err := s.r.StockSnapshot()
	if err != nil {
		return nil, err
	}
	lastPrepared, err := s.lastPrepared()
	if err != nil {
		return nil, err
	}

	candidates := make([]engine.Candidate, 0, len(recipes))
	for i := range recipes {
		rec := &recipes[i]
		avail := calc.ComputeAvailability(rec.Ingredients, snap)
		if req.FeasibleOnly && !avail.Feasible {
			continue
		}
		candidates = append(candidates, engine.Candidate{
			Recipe:       rec,
			Availability: avail,
			Cost:         calc.ComputeCost(rec.Ingredients),
			TotalMinutes: calc.TotalMinutes(rec),
			LastPrepared: lastPrepared[rec.ID],
		})
	}

	ranked := engine.Rank(candidates, weights(req.Weights), engine.Options{
		CostCeiling:     s.cfg.CostCeiling,
		TimeCeilingMin:  s.cfg.TimeCeilingM,
		VarietyWindow:   s.cfg.VarietyWindow,
		ReferenceSeason: ref,
	})
	if req.Limit != nil && *req.Limit < len(ranked) {
		ranked = ranked[:*req.Limit]
	}
	return ranked, nil
}

func weights(overrides map[string]float64) engine.Weights {
	w := engine.DefaultWeights()
	for name, v := range overrides {
		switch name {
		case "season":
			w.Season = v
		case "availability":
			w.Availability = v
		case "cost":
			w.Cost = v
		case "time":
			w.Time = v
		case "nutrition":
			w.Nutrition = v
		case "variety":
			w.Variety = v
		}
	}
	return w
}

// lastPrepared returns the most recent preparation time per recipe.
func (s *recommendSvc) lastPrepared() (map[uint]*time.Time, error) {
	var plans []entities.MealPlan
	if err := s.db.Where("prepared = ? AND prepared_at IS NOT NULL", true).
		Find(&plans).Error; err != nil {
		return nil, err
	}
	out := map[uint]*time.Time{}
	for i := range plans {
		p := plans[i]
		if cur, ok := out[p.RecipeID]; !ok || p.PreparedAt.After(*cur) {
			out[p.RecipeID] = p.PreparedAt
		}
	}
	return out, nil
}
