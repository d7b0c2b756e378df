package serviceImp

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pantry/database"
	"pantry/entities"
	"pantry/pkg/apperr"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

// seedRecipe creates a recipe needing 500g flour and 2 eggs.
func seedRecipe(t *testing.T, db *gorm.DB) (recipeID, flourID, eggID uint) {
	t.Helper()
	flour := entities.Ingredient{Name: "flour", Unit: "g"}
	require.NoError(t, db.Create(&flour).Error)
	w := 60.0
	egg := entities.Ingredient{Name: "egg", Unit: "piece", PieceWeightG: &w}
	require.NoError(t, db.Create(&egg).Error)
	rec := entities.Recipe{Name: "pancakes"}
	require.NoError(t, db.Create(&rec).Error)
	require.NoError(t, db.Create(&entities.RecipeIngredient{RecipeID: rec.ID, IngredientID: flour.ID, Quantity: 500}).Error)
	require.NoError(t, db.Create(&entities.RecipeIngredient{RecipeID: rec.ID, IngredientID: egg.ID, Quantity: 2}).Error)
	return rec.ID, flour.ID, egg.ID
}

func TestPlanAndCancelRoundTrip(t *testing.T) {
	db := setupDB(t)
	recipeID, _, _ := seedRecipe(t, db)
	svc := New(db)

	p, err := svc.Plan(recipeID, time.Now().AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, p.Prepared)

	// Nothing in stock: planning put both missing ingredients on the
	// shopping list.
	var items int64
	require.NoError(t, db.Model(&entities.ShoppingListItem{}).Count(&items).Error)
	assert.Equal(t, int64(2), items)

	// Cancelling restores the pre-plan list.
	require.NoError(t, svc.Cancel(p.ID))
	require.NoError(t, db.Model(&entities.ShoppingListItem{}).Count(&items).Error)
	assert.Equal(t, int64(0), items)

	_, err = svc.Get(p.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCancelRestoresPrePlanQuantities(t *testing.T) {
	db := setupDB(t)
	recipeID, flourID, _ := seedRecipe(t, db)
	require.NoError(t, db.Create(&entities.ShoppingListItem{
		IngredientID: flourID, Quantity: 100,
	}).Error)
	svc := New(db)

	p, err := svc.Plan(recipeID, time.Now())
	require.NoError(t, err)

	var item entities.ShoppingListItem
	require.NoError(t, db.Where("ingredient_id = ? AND purchased = ?", flourID, false).
		First(&item).Error)
	assert.Equal(t, 600.0, item.Quantity) // 100 manual + 500 shortfall

	require.NoError(t, svc.Cancel(p.ID))
	require.NoError(t, db.Where("ingredient_id = ? AND purchased = ?", flourID, false).
		First(&item).Error)
	assert.Equal(t, 100.0, item.Quantity)
}

func TestPlanUnknownRecipe(t *testing.T) {
	db := setupDB(t)
	svc := New(db)

	_, err := svc.Plan(42, time.Now())
	assert.True(t, apperr.IsNotFound(err))
}

func TestPrepareDeductsAndFloors(t *testing.T) {
	db := setupDB(t)
	recipeID, flourID, eggID := seedRecipe(t, db)
	// Less flour than the recipe needs, more eggs.
	require.NoError(t, db.Create(&entities.StockEntry{IngredientID: flourID, Quantity: 300}).Error)
	require.NoError(t, db.Create(&entities.StockEntry{IngredientID: eggID, Quantity: 6}).Error)
	svc := New(db)

	p, err := svc.Plan(recipeID, time.Now())
	require.NoError(t, err)

	prepared, err := svc.Prepare(p.ID)
	require.NoError(t, err)
	assert.True(t, prepared.Prepared)
	require.NotNil(t, prepared.PreparedAt)

	var flourEntry, eggEntry entities.StockEntry
	require.NoError(t, db.Where("ingredient_id = ?", flourID).First(&flourEntry).Error)
	require.NoError(t, db.Where("ingredient_id = ?", eggID).First(&eggEntry).Error)
	assert.Equal(t, 0.0, flourEntry.Quantity) // floored, row kept
	assert.Equal(t, 4.0, eggEntry.Quantity)
}

func TestPrepareSkipsUnstockedIngredients(t *testing.T) {
	db := setupDB(t)
	recipeID, flourID, _ := seedRecipe(t, db)
	svc := New(db)

	p, err := svc.Plan(recipeID, time.Now())
	require.NoError(t, err)
	_, err = svc.Prepare(p.ID)
	require.NoError(t, err)

	// No rows were invented for never-stocked ingredients.
	var count int64
	require.NoError(t, db.Model(&entities.StockEntry{}).
		Where("ingredient_id = ?", flourID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestInvalidTransitions(t *testing.T) {
	db := setupDB(t)
	recipeID, _, _ := seedRecipe(t, db)
	svc := New(db)

	p, err := svc.Plan(recipeID, time.Now())
	require.NoError(t, err)
	_, err = svc.Prepare(p.ID)
	require.NoError(t, err)

	_, err = svc.Prepare(p.ID)
	assert.True(t, apperr.IsInvalidInput(err))
	err = svc.Cancel(p.ID)
	assert.True(t, apperr.IsInvalidInput(err))

	_, err = svc.Prepare(999)
	assert.True(t, apperr.IsNotFound(err))
	err = svc.Cancel(999)
	assert.True(t, apperr.IsNotFound(err))
}

func TestHistoryOrdersByPreparedAt(t *testing.T) {
	db := setupDB(t)
	recipeID, _, _ := seedRecipe(t, db)
	svc := New(db)

	p1, err := svc.Plan(recipeID, time.Now())
	require.NoError(t, err)
	p2, err := svc.Plan(recipeID, time.Now())
	require.NoError(t, err)

	_, err = svc.Prepare(p1.ID)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = svc.Prepare(p2.ID)
	require.NoError(t, err)

	history, err := svc.History()
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, p2.ID, history[0].ID)
}
