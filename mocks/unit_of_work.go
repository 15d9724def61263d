package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/repositories"
)

// UnitOfWork mocks the transaction calls and hands out the repository
// mocks it was built with.
type UnitOfWork struct {
	mock.Mock

	CustomerRepo    *CustomerRepository
	WaiterRepo      *WaiterRepository
	FoodRepo        *FoodRepository
	DiningTableRepo *Repository[models.DiningTable]
	BillRepo        *BillRepository
	BillDetailRepo  *Repository[models.BillDetail]
}

var _ repositories.UnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(t testingT) *UnitOfWork {
	m := &UnitOfWork{
		CustomerRepo:    NewCustomerRepository(t),
		WaiterRepo:      NewWaiterRepository(t),
		FoodRepo:        NewFoodRepository(t),
		DiningTableRepo: NewRepository[models.DiningTable](t),
		BillRepo:        NewBillRepository(t),
		BillDetailRepo:  NewRepository[models.BillDetail](t),
	}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UnitOfWork) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *UnitOfWork) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *UnitOfWork) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *UnitOfWork) Close(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *UnitOfWork) Customers() repositories.CustomerRepository { return m.CustomerRepo }

func (m *UnitOfWork) Waiters() repositories.WaiterRepository { return m.WaiterRepo }

func (m *UnitOfWork) Foods() repositories.FoodRepository { return m.FoodRepo }

func (m *UnitOfWork) DiningTables() repositories.Repository[models.DiningTable] {
	return m.DiningTableRepo
}

func (m *UnitOfWork) Bills() repositories.BillRepository { return m.BillRepo }

func (m *UnitOfWork) BillDetails() repositories.Repository[models.BillDetail] {
	return m.BillDetailRepo
}
