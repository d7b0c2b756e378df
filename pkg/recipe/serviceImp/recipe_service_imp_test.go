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
	recipeRepoImp "pantry/pkg/recipe/repositoryImp"
	"pantry/pkg/recipe/service"
)

func setup(t *testing.T) (*gorm.DB, service.RecipeService) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db, New(db, recipeRepoImp.New(db))
}

func seedIngredient(t *testing.T, db *gorm.DB, name string, price float64) uint {
	t.Helper()
	ing := entities.Ingredient{Name: name, Unit: "g", PricePerUnit: price}
	require.NoError(t, db.Create(&ing).Error)
	return ing.ID
}

func TestCreateValidation(t *testing.T) {
	db, svc := setup(t)
	flour := seedIngredient(t, db, "flour", 0.0015)

	_, err := svc.Create(&entities.Recipe{}, nil, nil)
	assert.True(t, apperr.IsInvalidInput(err))

	_, err = svc.Create(&entities.Recipe{Name: "bread"},
		[]entities.RecipeIngredient{{IngredientID: flour, Quantity: 0}}, nil)
	assert.True(t, apperr.IsInvalidInput(err))

	_, err = svc.Create(&entities.Recipe{Name: "bread"},
		[]entities.RecipeIngredient{
			{IngredientID: flour, Quantity: 500},
			{IngredientID: flour, Quantity: 200},
		}, nil)
	assert.True(t, apperr.IsInvalidInput(err))

	_, err = svc.Create(&entities.Recipe{Name: "bread"},
		[]entities.RecipeIngredient{{IngredientID: 999, Quantity: 500}}, nil)
	assert.True(t, apperr.IsNotFound(err))

	_, err = svc.Create(&entities.Recipe{Name: "bread"},
		[]entities.RecipeIngredient{{IngredientID: flour, Quantity: 500}},
		[]entities.RecipeStep{{Ordinal: 1}})
	assert.True(t, apperr.IsInvalidInput(err))
}

func TestGetDerivesNumbers(t *testing.T) {
	db, svc := setup(t)
	flour := seedIngredient(t, db, "flour", 0.0015)
	milk := seedIngredient(t, db, "milk", 0.001)
	prep, cook := 10, 25

	rec, err := svc.Create(
		&entities.Recipe{Name: "pancakes", Type: "main", PrepMinutes: &prep, CookMinutes: &cook},
		[]entities.RecipeIngredient{
			{IngredientID: flour, Quantity: 200},
			{IngredientID: milk, Quantity: 300},
		},
		[]entities.RecipeStep{
			{Ordinal: 1, Description: "mix"},
			{Ordinal: 2, Description: "fry"},
		})
	require.NoError(t, err)

	// Only flour is in stock, so the recipe is half available.
	require.NoError(t, db.Create(&entities.StockEntry{IngredientID: flour, Quantity: 500}).Error)

	d, err := svc.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, d.Availability.Percent)
	assert.False(t, d.Availability.Feasible)
	assert.Equal(t, 0.6, d.Cost) // 200*0.0015 + 300*0.001
	assert.Equal(t, 35, d.TotalMinutes)
	require.Len(t, d.Steps, 2)
	assert.Equal(t, "mix", d.Steps[0].Description)
}

func TestUpdateReplacesLines(t *testing.T) {
	db, svc := setup(t)
	flour := seedIngredient(t, db, "flour", 0.0015)
	milk := seedIngredient(t, db, "milk", 0.001)

	rec, err := svc.Create(&entities.Recipe{Name: "bread"},
		[]entities.RecipeIngredient{{IngredientID: flour, Quantity: 500}},
		[]entities.RecipeStep{{Ordinal: 1, Description: "bake"}})
	require.NoError(t, err)

	rec.Name = "milk bread"
	out, err := svc.Update(rec,
		[]entities.RecipeIngredient{
			{IngredientID: flour, Quantity: 400},
			{IngredientID: milk, Quantity: 150},
		},
		[]entities.RecipeStep{{Ordinal: 1, Description: "knead"}, {Ordinal: 2, Description: "bake"}})
	require.NoError(t, err)
	assert.Equal(t, "milk bread", out.Name)
	assert.Len(t, out.Ingredients, 2)
	assert.Len(t, out.Steps, 2)
}

func TestDeleteUnknownRecipe(t *testing.T) {
	_, svc := setup(t)

	err := svc.Delete(42)
	assert.True(t, apperr.IsNotFound(err))
}

func TestListFiltersByType(t *testing.T) {
	db, svc := setup(t)
	flour := seedIngredient(t, db, "flour", 0.0015)

	_, err := svc.Create(&entities.Recipe{Name: "bread", Type: "main"},
		[]entities.RecipeIngredient{{IngredientID: flour, Quantity: 500}}, nil)
	require.NoError(t, err)
	_, err = svc.Create(&entities.Recipe{Name: "crepes", Type: "dessert"},
		[]entities.RecipeIngredient{{IngredientID: flour, Quantity: 200}}, nil)
	require.NoError(t, err)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	desserts, err := svc.List("dessert")
	require.NoError(t, err)
	require.Len(t, desserts, 1)
	assert.Equal(t, "crepes", desserts[0].Name)
}
