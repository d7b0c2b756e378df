package serviceImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pantry/database"
	"pantry/entities"
	"pantry/pkg/apperr"
	ingRepoImp "pantry/pkg/ingredient/repositoryImp"
	"pantry/pkg/ingredient/service"
)

func setup(t *testing.T) (*gorm.DB, service.IngredientService) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db, New(ingRepoImp.New(db))
}

func TestCreateValidation(t *testing.T) {
	_, svc := setup(t)

	_, err := svc.Create(&entities.Ingredient{Unit: "g"}, nil)
	assert.True(t, apperr.IsInvalidInput(err))

	_, err = svc.Create(&entities.Ingredient{Name: "flour", Unit: "bag"}, nil)
	assert.True(t, apperr.IsInvalidInput(err))

	_, err = svc.Create(&entities.Ingredient{Name: "flour", Unit: "g", PricePerUnit: -1}, nil)
	assert.True(t, apperr.IsInvalidInput(err))

	w := 60.0
	_, err = svc.Create(&entities.Ingredient{Name: "flour", Unit: "g", PieceWeightG: &w}, nil)
	assert.True(t, apperr.IsInvalidInput(err))

	_, err = svc.Create(&entities.Ingredient{Name: "tomato", Unit: "g"}, []string{"monsoon"})
	assert.True(t, apperr.IsInvalidInput(err))
}

func TestCreateWithSeasons(t *testing.T) {
	_, svc := setup(t)

	out, err := svc.Create(&entities.Ingredient{Name: "tomato", Unit: "g"}, []string{"summer", "autumn"})
	require.NoError(t, err)
	assert.Len(t, out.Seasons, 2)
}

func TestDeleteRefusedWhileReferenced(t *testing.T) {
	db, svc := setup(t)

	ing, err := svc.Create(&entities.Ingredient{Name: "flour", Unit: "g"}, nil)
	require.NoError(t, err)

	rec := entities.Recipe{Name: "bread"}
	require.NoError(t, db.Create(&rec).Error)
	require.NoError(t, db.Create(&entities.RecipeIngredient{
		RecipeID: rec.ID, IngredientID: ing.ID, Quantity: 500,
	}).Error)

	err = svc.Delete(ing.ID)
	assert.True(t, apperr.IsInvalidInput(err))

	// Unreference, then deletion goes through.
	require.NoError(t, db.Where("recipe_id = ?", rec.ID).Delete(&entities.RecipeIngredient{}).Error)
	require.NoError(t, svc.Delete(ing.ID))

	_, err = svc.Get(ing.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteRefusedWhileStocked(t *testing.T) {
	db, svc := setup(t)

	ing, err := svc.Create(&entities.Ingredient{Name: "milk", Unit: "ml"}, nil)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entities.StockEntry{IngredientID: ing.ID, Quantity: 500}).Error)

	err = svc.Delete(ing.ID)
	assert.True(t, apperr.IsInvalidInput(err))
}

func TestUpdateReplacesSeasons(t *testing.T) {
	_, svc := setup(t)

	ing, err := svc.Create(&entities.Ingredient{Name: "leek", Unit: "g"}, []string{"winter"})
	require.NoError(t, err)

	ing.Category = "vegetables"
	out, err := svc.Update(ing, []string{"autumn", "winter"})
	require.NoError(t, err)
	assert.Equal(t, "vegetables", out.Category)
	assert.Len(t, out.Seasons, 2)
}
