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
	"pantry/pkg/stock/service"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func seedIngredient(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	ing := entities.Ingredient{Name: name, Unit: "g", PricePerUnit: 0.002}
	require.NoError(t, db.Create(&ing).Error)
	return ing.ID
}

func TestAdjustAddCreatesAndAccumulates(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	id := seedIngredient(t, db, "flour")

	e, err := svc.Adjust(id, service.ActionAdd, 500)
	require.NoError(t, err)
	assert.Equal(t, 500.0, e.Quantity)

	e, err = svc.Adjust(id, service.ActionAdd, 250)
	require.NoError(t, err)
	assert.Equal(t, 750.0, e.Quantity)
}

func TestAdjustAddRejectsNonPositive(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	id := seedIngredient(t, db, "flour")

	_, err := svc.Adjust(id, service.ActionAdd, 0)
	assert.True(t, apperr.IsInvalidInput(err))
	_, err = svc.Adjust(id, service.ActionAdd, -5)
	assert.True(t, apperr.IsInvalidInput(err))
}

func TestAdjustAddUnknownIngredient(t *testing.T) {
	db := setupDB(t)
	svc := New(db)

	_, err := svc.Adjust(999, service.ActionAdd, 100)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAdjustRemoveFloorsAtZeroAndKeepsRow(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	id := seedIngredient(t, db, "flour")

	_, err := svc.Adjust(id, service.ActionAdd, 300)
	require.NoError(t, err)

	e, err := svc.Adjust(id, service.ActionRemove, 1000)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e.Quantity)

	// Exhausted, but the row remains visible.
	got, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Quantity)
}

func TestAdjustRemoveWithoutRow(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	id := seedIngredient(t, db, "flour")

	// Nothing stocked: removing succeeds at quantity 0 and creates no row.
	e, err := svc.Adjust(id, service.ActionRemove, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e.Quantity)

	_, err = svc.Get(id)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAdjustSetZeroDeletesRow(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	id := seedIngredient(t, db, "flour")

	_, err := svc.Adjust(id, service.ActionAdd, 300)
	require.NoError(t, err)

	e, err := svc.Adjust(id, service.ActionSet, 0)
	require.NoError(t, err)
	assert.Nil(t, e)

	_, err = svc.Get(id)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAdjustSetUpserts(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	id := seedIngredient(t, db, "milk")

	e, err := svc.Adjust(id, service.ActionSet, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, e.Quantity)

	e, err = svc.Adjust(id, service.ActionSet, 400)
	require.NoError(t, err)
	assert.Equal(t, 400.0, e.Quantity)
}

func TestAdjustUnknownAction(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	id := seedIngredient(t, db, "flour")

	_, err := svc.Adjust(id, service.Action("pour"), 10)
	assert.True(t, apperr.IsInvalidInput(err))
}

func TestListComputesDisplayQuantitiesAndValue(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	id := seedIngredient(t, db, "flour")

	_, err := svc.Adjust(id, service.ActionAdd, 1500)
	require.NoError(t, err)

	sum, err := svc.List()
	require.NoError(t, err)
	require.Len(t, sum.Entries, 1)
	assert.Equal(t, 1.5, sum.Entries[0].DisplayQuantity)
	assert.Equal(t, "kg", sum.Entries[0].DisplayUnit)
	assert.Equal(t, 3.0, sum.TotalValue) // 1500 x 0.002
}

func TestDeleteRemovesRow(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	id := seedIngredient(t, db, "flour")

	require.NoError(t, db.Create(&entities.StockEntry{IngredientID: id, Quantity: 200}).Error)
	require.NoError(t, svc.Delete(id))

	_, err := svc.Get(id)
	assert.True(t, apperr.IsNotFound(err))

	// Deleting again reports the missing row.
	err = svc.Delete(id)
	assert.True(t, apperr.IsNotFound(err))
}

func TestClearEmptiesTheLedger(t *testing.T) {
	db := setupDB(t)
	svc := New(db)
	flour := seedIngredient(t, db, "flour")
	milk := seedIngredient(t, db, "milk")

	require.NoError(t, db.Create(&entities.StockEntry{IngredientID: flour, Quantity: 200}).Error)
	require.NoError(t, db.Create(&entities.StockEntry{IngredientID: milk, Quantity: 500}).Error)

	require.NoError(t, svc.Clear())

	sum, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, sum.Entries)
	assert.Equal(t, 0.0, sum.TotalValue)
}
