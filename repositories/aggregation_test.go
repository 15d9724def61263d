package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/models"
)

func TestCustomerRepository_GetCustomerSpend(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	seed(t, db)
	repo := NewUnitOfWork(db).Customers()
	start, end := marchRange()
	march2024 := dtos.DateRange{StartDate: &start, EndDate: &end}

	t.Run("all customers over zero", func(t *testing.T) {
		spend, err := repo.GetCustomerSpend(ctx, dtos.CustomerSpendFilter{DateRange: march2024})
		require.NoError(t, err)
		require.Len(t, spend, 2)
		assert.Equal(t, "Ana", spend[0].FirstName)
		assert.Equal(t, "370", spend[0].Spent.String())
		assert.Equal(t, "Juan", spend[1].FirstName)
		assert.Equal(t, "150", spend[1].Spent.String())
	})

	t.Run("minimum spend is inclusive", func(t *testing.T) {
		spend, err := repo.GetCustomerSpend(ctx, dtos.CustomerSpendFilter{DateRange: march2024, Spent: 370})
		require.NoError(t, err)
		require.Len(t, spend, 1)
		assert.Equal(t, "Torres", spend[0].LastName)
	})

	t.Run("without a window every bill counts", func(t *testing.T) {
		spend, err := repo.GetCustomerSpend(ctx, dtos.CustomerSpendFilter{})
		require.NoError(t, err)
		require.Len(t, spend, 2)
		assert.Equal(t, "250", spend[1].Spent.String())
	})

	t.Run("nobody reaches the minimum", func(t *testing.T) {
		spend, err := repo.GetCustomerSpend(ctx, dtos.CustomerSpendFilter{DateRange: march2024, Spent: 1000})
		require.NoError(t, err)
		assert.Empty(t, spend)
	})
}

func TestFoodRepository_GetSalesFood(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	seed(t, db)
	repo := NewUnitOfWork(db).Foods()
	start, end := marchRange()

	best, err := repo.GetSalesFood(ctx, dtos.DateRange{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	food, ok := best.Get()
	require.True(t, ok)
	assert.Equal(t, "Sancocho", food.Name)
	assert.Equal(t, 4, food.Quantity)
	assert.Equal(t, "200", food.Total.String())

	best, err = repo.GetSalesFood(ctx, dtos.DateRange{})
	require.NoError(t, err)
	food, ok = best.Get()
	require.True(t, ok)
	assert.Equal(t, "Limonada", food.Name)
	assert.Equal(t, 12, food.Quantity)

	empty := march(20)
	best, err = repo.GetSalesFood(ctx, dtos.DateRange{StartDate: &empty, EndDate: &end})
	require.NoError(t, err)
	assert.True(t, best.IsAbsent())
}

func TestFoodRepository_GetSalesFood_TieKeepsFirstSeen(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	f := seed(t, db)

	// ties Ajiaco with Sancocho at 4 units
	extra := []models.BillDetail{{BillID: f.bills[2].ID, FoodID: f.foods[0].ID, Quantity: 1, Price: decimal.NewFromInt(100)}}
	require.NoError(t, db.Omit("Food").Create(&extra).Error)
	start, end := marchRange()

	best, err := NewUnitOfWork(db).Foods().GetSalesFood(ctx, dtos.DateRange{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	food, ok := best.Get()
	require.True(t, ok)
	assert.Equal(t, "Ajiaco", food.Name)
	assert.Equal(t, 4, food.Quantity)
	assert.Equal(t, "400", food.Total.String())
}

func TestWaiterRepository_GetWaiterSales(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	seed(t, db)
	repo := NewUnitOfWork(db).Waiters()
	start, end := marchRange()

	sales, err := repo.GetWaiterSales(ctx, dtos.DateRange{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Len(t, sales, 3)

	assert.Equal(t, "Luis", sales[0].FirstName)
	assert.Equal(t, "270", sales[0].Sales.String())
	assert.Equal(t, "Maria", sales[1].FirstName)
	assert.Equal(t, "250", sales[1].Sales.String())
	assert.Equal(t, "Pedro", sales[2].FirstName)
	assert.True(t, sales[2].Sales.IsZero())

	sales, err = repo.GetWaiterSales(ctx, dtos.DateRange{})
	require.NoError(t, err)
	require.Len(t, sales, 3)
	assert.Equal(t, "350", sales[1].Sales.String())
}

func TestWaiterRepository_GetWaiterSales_BillWithoutLines(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	f := seed(t, db)

	orphan := models.Bill{CustomerID: "1111111111", DiningTableID: f.tables[0].ID, WaiterID: f.waiters[2].ID, CreationDate: march(3)}
	require.NoError(t, db.Omit("Customer", "Waiter", "DiningTable", "BillDetails").Create(&orphan).Error)

	sales, err := NewUnitOfWork(db).Waiters().GetWaiterSales(ctx, dtos.DateRange{})
	require.NoError(t, err)
	require.Len(t, sales, 3)
	assert.Equal(t, "Pedro", sales[2].FirstName)
	assert.True(t, sales[2].Sales.IsZero())
}
