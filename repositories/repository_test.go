package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-api/models"
	"gorm.io/gorm"
)

func TestGormRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewRepository[models.Food](func() *gorm.DB { return db })

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	food := models.Food{Name: "Ajiaco", Price: decimal.NewFromInt(100)}
	ok, err := repo.Insert(ctx, &food)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotZero(t, food.ID)

	exists, err := repo.Any(ctx, NameEquals("  ajiACO "))
	require.NoError(t, err)
	assert.True(t, exists)

	found, err := repo.FirstOrDefault(ctx, ByID(food.ID))
	require.NoError(t, err)
	got, present := found.Get()
	require.True(t, present)
	assert.Equal(t, "Ajiaco", got.Name)

	got.Price = decimal.NewFromInt(120)
	ok, err = repo.Update(ctx, &got)
	require.NoError(t, err)
	assert.True(t, ok)

	matches, err := repo.Find(ctx, WhereIf(true, "price > ?", 110))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "120", matches[0].Price.String())

	ok, err = repo.Delete(ctx, &got)
	require.NoError(t, err)
	assert.True(t, ok)

	found, err = repo.FirstOrDefault(ctx, ByID(food.ID))
	require.NoError(t, err)
	assert.True(t, found.IsAbsent())
}

func TestGormRepository_UpdateNeverInserts(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewRepository[models.DiningTable](func() *gorm.DB { return db })

	ok, err := repo.Update(ctx, &models.DiningTable{ID: 77, Name: "Ghost", Chairs: 2})
	require.NoError(t, err)
	assert.False(t, ok)

	exists, err := repo.Any(ctx, ByID(77))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormRepository_InsertDuplicateIsTranslated(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewRepository[models.DiningTable](func() *gorm.DB { return db })

	_, err := repo.Insert(ctx, &models.DiningTable{Name: "Terraza", Chairs: 4})
	require.NoError(t, err)

	ok, err := repo.Insert(ctx, &models.DiningTable{Name: " terraza", Chairs: 2})
	assert.False(t, ok)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestGormRepository_InsertManyIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	f := seed(t, db)
	repo := NewRepository[models.BillDetail](func() *gorm.DB { return db })

	before, err := repo.GetAll(ctx)
	require.NoError(t, err)

	details := []models.BillDetail{
		{BillID: f.bills[0].ID, FoodID: f.foods[0].ID, Quantity: 1, Price: decimal.NewFromInt(100)},
		{BillID: f.bills[0].ID, FoodID: 9999, Quantity: 1, Price: decimal.NewFromInt(1)},
	}
	ok, err := repo.InsertMany(ctx, details)
	assert.Error(t, err)
	assert.False(t, ok)

	after, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))

	valid := []models.BillDetail{
		{BillID: f.bills[0].ID, FoodID: f.foods[0].ID, Quantity: 1, Price: decimal.NewFromInt(100)},
		{BillID: f.bills[0].ID, FoodID: f.foods[1].ID, Quantity: 2, Price: decimal.NewFromInt(100)},
	}
	ok, err = repo.InsertMany(ctx, valid)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotZero(t, valid[0].ID)
	assert.NotZero(t, valid[1].ID)

	ok, err = repo.InsertMany(ctx, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}
