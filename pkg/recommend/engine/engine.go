// Package engine ranks recipes by weighted multi-criteria scoring. It is
// pure computation over a snapshot assembled by the caller; nothing here
// touches storage.
package engine

import (
	"math"
	"sort"
	"time"

	"pantry/entities"
	"pantry/pkg/recipe/calc"
)

// Weights maps each criterion to its importance in [0,1]. Out-of-range
// values are clamped, never rejected.
type Weights struct {
	Season       float64 `json:"season"`
	Availability float64 `json:"availability"`
	Cost         float64 `json:"cost"`
	Time         float64 `json:"time"`
	Nutrition    float64 `json:"nutrition"`
	Variety      float64 `json:"variety"`
}

// DefaultWeights is the balanced profile.
func DefaultWeights() Weights {
	return Weights{
		Season:       0.7,
		Availability: 1.0,
		Cost:         0.5,
		Time:         0.4,
		Nutrition:    0.3,
		Variety:      0.6,
	}
}

func (w Weights) clamped() Weights {
	c := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	return Weights{
		Season:       c(w.Season),
		Availability: c(w.Availability),
		Cost:         c(w.Cost),
		Time:         c(w.Time),
		Nutrition:    c(w.Nutrition),
		Variety:      c(w.Variety),
	}
}

// Candidate is one recipe with everything scoring needs, fetched once
// before ranking starts.
type Candidate struct {
	Recipe       *entities.Recipe
	Availability calc.Availability
	Cost         float64
	TotalMinutes int
	LastPrepared *time.Time
}

// Subscores holds the per-criterion values, each in [0,100].
type Subscores struct {
	Season       float64 `json:"season"`
	Availability float64 `json:"availability"`
	Cost         float64 `json:"cost"`
	Time         float64 `json:"time"`
	Nutrition    float64 `json:"nutrition"`
	Variety      float64 `json:"variety"`
}

// Ranked is one scored recipe in the result list.
type Ranked struct {
	Recipe    *entities.Recipe `json:"recipe"`
	Total     float64          `json:"total"`
	Subscores Subscores        `json:"subscores"`
	Cost      float64          `json:"cost"`
	Feasible  bool             `json:"feasible"`
}

// Options tunes the scoring ceilings and the variety lookback.
type Options struct {
	// CostCeiling and TimeCeiling bound the inverse scores. When zero
	// they derive from the candidate corpus, floored to stay away from
	// division by tiny numbers.
	CostCeiling     float64
	TimeCeilingMin  int
	VarietyWindow   int // days; <=0 falls back to 14
	ReferenceSeason string
	Now             time.Time
}

const neutral = 50.0

// Rank scores every candidate and returns them ordered by total score
// descending, ties broken by availability then recipe ID. The input
// slice is not modified.
func Rank(candidates []Candidate, w Weights, opt Options) []Ranked {
	w = w.clamped()
	if opt.Now.IsZero() {
		opt.Now = time.Now()
	}
	if opt.VarietyWindow <= 0 {
		opt.VarietyWindow = 14
	}
	opt.CostCeiling = corpusCeiling(opt.CostCeiling, candidates, func(c Candidate) float64 { return c.Cost })
	opt.TimeCeilingMin = int(corpusCeiling(float64(opt.TimeCeilingMin), candidates, func(c Candidate) float64 { return float64(c.TotalMinutes) }))

	out := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		sub := score(c, w, opt)
		out = append(out, Ranked{
			Recipe:    c.Recipe,
			Total:     total(sub, w),
			Subscores: sub,
			Cost:      c.Cost,
			Feasible:  c.Availability.Feasible,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		if out[i].Subscores.Availability != out[j].Subscores.Availability {
			return out[i].Subscores.Availability > out[j].Subscores.Availability
		}
		return out[i].Recipe.ID < out[j].Recipe.ID
	})
	return out
}

func corpusCeiling(configured float64, candidates []Candidate, value func(Candidate) float64) float64 {
	if configured > 0 {
		return configured
	}
	var max float64
	for _, c := range candidates {
		if v := value(c); v > max {
			max = v
		}
	}
	if max < 1 {
		max = 1
	}
	return max
}

func score(c Candidate, w Weights, opt Options) Subscores {
	return Subscores{
		Season:       seasonScore(c.Recipe.Ingredients, opt.ReferenceSeason),
		Availability: c.Availability.Percent,
		Cost:         inverseScore(c.Cost, opt.CostCeiling, c.Cost <= 0),
		Time:         inverseScore(float64(c.TotalMinutes), float64(opt.TimeCeilingMin), c.TotalMinutes <= 0),
		Nutrition:    nutritionScore(c.Recipe.Ingredients),
		Variety:      varietyScore(c.LastPrepared, opt.Now, opt.VarietyWindow),
	}
}

func total(s Subscores, w Weights) float64 {
	type pair struct{ weight, score float64 }
	pairs := []pair{
		{w.Season, s.Season},
		{w.Availability, s.Availability},
		{w.Cost, s.Cost},
		{w.Time, s.Time},
		{w.Nutrition, s.Nutrition},
		{w.Variety, s.Variety},
	}
	var num, den float64
	for _, p := range pairs {
		if p.weight <= 0 {
			continue
		}
		num += p.weight * p.score
		den += p.weight
	}
	if den == 0 {
		return 0
	}
	return round1(num / den)
}

// seasonScore is the share of season-tagged lines that match the
// reference season. Lines without season data are excluded from the
// denominator; a recipe with no season data at all scores neutral.
func seasonScore(lines []entities.RecipeIngredient, ref string) float64 {
	var tagged, matching int
	for _, l := range lines {
		set := l.Ingredient.SeasonSet()
		if set == nil {
			continue
		}
		tagged++
		if set[ref] {
			matching++
		}
	}
	if tagged == 0 {
		return neutral
	}
	return round1(100 * float64(matching) / float64(tagged))
}

// inverseScore rewards low cost or time linearly up to the ceiling.
// Unknown values score neutral instead of topping the ranking.
func inverseScore(v, ceiling float64, unknown bool) float64 {
	if unknown {
		return neutral
	}
	frac := v / ceiling
	if frac > 1 {
		frac = 1
	}
	return round1(100 * (1 - frac))
}

// Macro calorie split targets with a tolerance band, in percent.
const (
	targetProteinPct = 20.0
	targetCarbPct    = 50.0
	targetFatPct     = 30.0
	macroBandPct     = 10.0
)

// nutritionScore rates the protein/carb/fat calorie split against the
// target proportions. Each macro scores 100 inside the tolerance band
// and loses 5 points per percent beyond it; the three average.
func nutritionScore(lines []entities.RecipeIngredient) float64 {
	n := calc.ComputeNutrition(lines)
	calProtein := n.Protein * 4
	calCarb := n.Carbs * 4
	calFat := n.Fat * 9
	calTotal := calProtein + calCarb + calFat
	if calTotal <= 0 {
		return neutral
	}

	macro := func(cal, target float64) float64 {
		pct := 100 * cal / calTotal
		gap := math.Abs(pct - target)
		if gap <= macroBandPct {
			return 100
		}
		s := 100 - (gap-macroBandPct)*5
		if s < 0 {
			return 0
		}
		return s
	}
	return round1((macro(calProtein, targetProteinPct) +
		macro(calCarb, targetCarbPct) +
		macro(calFat, targetFatPct)) / 3)
}

// varietyScore grows linearly with days since the last preparation and
// saturates at the window. Never-prepared recipes get full credit.
func varietyScore(last *time.Time, now time.Time, windowDays int) float64 {
	if last == nil {
		return 100
	}
	days := now.Sub(*last).Hours() / 24
	if days < 0 {
		days = 0
	}
	frac := days / float64(windowDays)
	if frac > 1 {
		frac = 1
	}
	return round1(100 * frac)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
