package mocks

import (
	"context"

	"github.com/samber/mo"
	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/repositories"
)

type CustomerRepository struct {
	Repository[models.Customer]
}

func NewCustomerRepository(t testingT) *CustomerRepository {
	m := &CustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CustomerRepository) GetCustomerSpend(ctx context.Context, filter dtos.CustomerSpendFilter) ([]dtos.CustomerSpend, error) {
	args := m.Called(ctx, filter)
	spend, _ := args.Get(0).([]dtos.CustomerSpend)
	return spend, args.Error(1)
}

type WaiterRepository struct {
	Repository[models.Waiter]
}

func NewWaiterRepository(t testingT) *WaiterRepository {
	m := &WaiterRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *WaiterRepository) GetWaiterSales(ctx context.Context, dateRange dtos.DateRange) ([]dtos.WaiterSales, error) {
	args := m.Called(ctx, dateRange)
	sales, _ := args.Get(0).([]dtos.WaiterSales)
	return sales, args.Error(1)
}

type FoodRepository struct {
	Repository[models.Food]
}

func NewFoodRepository(t testingT) *FoodRepository {
	m := &FoodRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *FoodRepository) GetSalesFood(ctx context.Context, dateRange dtos.DateRange) (mo.Option[dtos.SalesFood], error) {
	args := m.Called(ctx, dateRange)
	best, _ := args.Get(0).(mo.Option[dtos.SalesFood])
	return best, args.Error(1)
}

type BillRepository struct {
	Repository[models.Bill]
}

func NewBillRepository(t testingT) *BillRepository {
	m := &BillRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *BillRepository) GetBillsWithDetails(ctx context.Context, filter dtos.BillFilter) ([]dtos.BillWithDetails, error) {
	args := m.Called(ctx, filter)
	bills, _ := args.Get(0).([]dtos.BillWithDetails)
	return bills, args.Error(1)
}

var (
	_ repositories.CustomerRepository             = (*CustomerRepository)(nil)
	_ repositories.WaiterRepository               = (*WaiterRepository)(nil)
	_ repositories.FoodRepository                 = (*FoodRepository)(nil)
	_ repositories.BillRepository                 = (*BillRepository)(nil)
	_ repositories.Repository[models.DiningTable] = (*Repository[models.DiningTable])(nil)
	_ repositories.Repository[models.BillDetail]  = (*Repository[models.BillDetail])(nil)
)
