package serviceImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pantry/config"
	"pantry/database"
	"pantry/entities"
	"pantry/pkg/apperr"
	recipeRepoImp "pantry/pkg/recipe/repositoryImp"
	"pantry/pkg/recommend/service"
)

func setup(t *testing.T) (*gorm.DB, service.RecommendService) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	cfg := config.AppConfig{CostCeiling: 50, TimeCeilingM: 120, VarietyWindow: 14}
	return db, New(db, recipeRepoImp.New(db), cfg)
}

// seed creates two recipes: "soup" (feasible, ingredient in stock) and
// "roast" (nothing in stock).
func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	leek := entities.Ingredient{Name: "leek", Unit: "g"}
	beef := entities.Ingredient{Name: "beef", Unit: "g"}
	require.NoError(t, db.Create(&leek).Error)
	require.NoError(t, db.Create(&beef).Error)

	soup := entities.Recipe{Name: "soup", Type: "starter"}
	roast := entities.Recipe{Name: "roast", Type: "main"}
	require.NoError(t, db.Create(&soup).Error)
	require.NoError(t, db.Create(&roast).Error)
	require.NoError(t, db.Create(&entities.RecipeIngredient{RecipeID: soup.ID, IngredientID: leek.ID, Quantity: 300}).Error)
	require.NoError(t, db.Create(&entities.RecipeIngredient{RecipeID: roast.ID, IngredientID: beef.ID, Quantity: 800}).Error)

	require.NoError(t, db.Create(&entities.StockEntry{IngredientID: leek.ID, Quantity: 500}).Error)
}

func TestRecommendRanksFeasibleFirst(t *testing.T) {
	db, svc := setup(t)
	seed(t, db)

	ranked, err := svc.Recommend(service.Request{Season: "summer"})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "soup", ranked[0].Recipe.Name)
	assert.True(t, ranked[0].Feasible)
}

func TestRecommendLimitZeroIsEmpty(t *testing.T) {
	db, svc := setup(t)
	seed(t, db)

	zero := 0
	ranked, err := svc.Recommend(service.Request{Limit: &zero})
	require.NoError(t, err)
	assert.Empty(t, ranked)

	neg := -3
	ranked, err = svc.Recommend(service.Request{Limit: &neg})
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRecommendFiltersBeforeLimit(t *testing.T) {
	db, svc := setup(t)
	seed(t, db)

	one := 1
	ranked, err := svc.Recommend(service.Request{
		Season: "summer", FeasibleOnly: true, Limit: &one,
	})
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "soup", ranked[0].Recipe.Name)

	ranked, err = svc.Recommend(service.Request{Season: "summer", Type: "main"})
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "roast", ranked[0].Recipe.Name)
}

func TestRecommendUnknownSeason(t *testing.T) {
	db, svc := setup(t)
	seed(t, db)

	_, err := svc.Recommend(service.Request{Season: "monsoon"})
	assert.True(t, apperr.IsInvalidInput(err))
}

func TestRecommendWeightOverrides(t *testing.T) {
	db, svc := setup(t)
	seed(t, db)

	// Availability alone: soup 100, roast 0.
	ranked, err := svc.Recommend(service.Request{
		Season: "summer",
		Weights: map[string]float64{
			"season": 0, "cost": 0, "time": 0, "nutrition": 0, "variety": 0,
			"availability": 1,
		},
	})
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, 100.0, ranked[0].Total)
	assert.Equal(t, 0.0, ranked[1].Total)
}
