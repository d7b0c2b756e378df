package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pantry/entities"
)

func line(ingID uint, qty float64, ing entities.Ingredient) entities.RecipeIngredient {
	ing.ID = ingID
	return entities.RecipeIngredient{IngredientID: ingID, Quantity: qty, Ingredient: ing}
}

func TestComputeAvailability(t *testing.T) {
	t.Parallel()

	lines := []entities.RecipeIngredient{
		line(1, 500, entities.Ingredient{Name: "flour"}),
		line(2, 2, entities.Ingredient{Name: "egg"}),
		line(3, 200, entities.Ingredient{Name: "milk"}),
	}
	stock := map[uint]float64{1: 1000, 2: 2}

	a := ComputeAvailability(lines, stock)
	assert.Equal(t, 66.7, a.Percent)
	assert.False(t, a.Feasible)
	assert.Equal(t, 2, a.AvailableCount)
	if assert.Len(t, a.Missing, 1) {
		assert.Equal(t, uint(3), a.Missing[0].IngredientID)
		assert.Equal(t, 200.0, a.Missing[0].Shortfall)
	}
}

func TestComputeAvailabilityFeasible(t *testing.T) {
	t.Parallel()

	lines := []entities.RecipeIngredient{
		line(1, 500, entities.Ingredient{Name: "flour"}),
	}
	a := ComputeAvailability(lines, map[uint]float64{1: 500})
	assert.True(t, a.Feasible)
	assert.Equal(t, 100.0, a.Percent)
	assert.Empty(t, a.Missing)
}

func TestComputeAvailabilityEmptyRecipe(t *testing.T) {
	t.Parallel()

	a := ComputeAvailability(nil, map[uint]float64{1: 500})
	assert.Equal(t, 0.0, a.Percent)
	assert.False(t, a.Feasible)
	assert.Equal(t, 0, a.AvailableCount)
}

func TestComputeCost(t *testing.T) {
	t.Parallel()

	lines := []entities.RecipeIngredient{
		line(1, 500, entities.Ingredient{PricePerUnit: 0.0015}),
		line(2, 2, entities.Ingredient{PricePerUnit: 0.3}),
		line(3, 100, entities.Ingredient{}), // no price known
	}
	assert.Equal(t, 1.35, ComputeCost(lines))
	assert.Equal(t, 0.0, ComputeCost(nil))
}

func TestComputeNutrition(t *testing.T) {
	t.Parallel()

	lines := []entities.RecipeIngredient{
		line(1, 200, entities.Ingredient{Calories: 364, Protein: 10, Carbs: 76, Fat: 1, Fiber: 2.7, Sugar: 0.3, Salt: 0.002}),
		line(2, 50, entities.Ingredient{Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, Fiber: 2.4, Sugar: 10, Salt: 0}),
	}
	n := ComputeNutrition(lines)
	assert.Equal(t, 754.0, n.Calories)
	assert.Equal(t, 20.2, n.Protein)
	assert.Equal(t, 159.0, n.Carbs)
	assert.Equal(t, 2.1, n.Fat)
	assert.Equal(t, 6.6, n.Fiber)
	assert.Equal(t, 5.6, n.Sugar)
	assert.Equal(t, 0.0, n.Salt)
}

func TestTotalMinutes(t *testing.T) {
	t.Parallel()

	prep, cook := 15, 30
	assert.Equal(t, 45, TotalMinutes(&entities.Recipe{PrepMinutes: &prep, CookMinutes: &cook}))
	assert.Equal(t, 15, TotalMinutes(&entities.Recipe{PrepMinutes: &prep}))
	assert.Equal(t, 0, TotalMinutes(&entities.Recipe{}))
}
