package services

import (
	"context"

	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/utils"
)

type BillServiceInterface interface {
	CreateBill(ctx context.Context, request dtos.CreateBillRequest) (*utils.ServiceResponse, error)
	GetBillsWithDetails(ctx context.Context, filter dtos.BillFilter) (*utils.ServiceResponse, error)
}

type BillDetailServiceInterface interface {
	CreateBillDetails(ctx context.Context, details []dtos.CreateBillDetailRequest) (*utils.ServiceResponse, error)
}

type CustomerServiceInterface interface {
	GetCustomers(ctx context.Context) (*utils.ServiceResponse, error)
	CreateCustomer(ctx context.Context, request dtos.CustomerRequest) (*utils.ServiceResponse, error)
	UpdateCustomer(ctx context.Context, request dtos.CustomerRequest) (*utils.ServiceResponse, error)
	DeleteCustomer(ctx context.Context, customerID string) (*utils.ServiceResponse, error)
	GetCustomerSpend(ctx context.Context, filter dtos.CustomerSpendFilter) (*utils.ServiceResponse, error)
}

type WaiterServiceInterface interface {
	GetWaiters(ctx context.Context) (*utils.ServiceResponse, error)
	CreateWaiter(ctx context.Context, request dtos.CreateWaiterRequest) (*utils.ServiceResponse, error)
	UpdateWaiter(ctx context.Context, request dtos.UpdateWaiterRequest) (*utils.ServiceResponse, error)
	DeleteWaiter(ctx context.Context, waiterID uint) (*utils.ServiceResponse, error)
	GetWaiterSales(ctx context.Context, dateRange dtos.DateRange) (*utils.ServiceResponse, error)
}

type FoodServiceInterface interface {
	GetFoods(ctx context.Context) (*utils.ServiceResponse, error)
	CreateFood(ctx context.Context, request dtos.CreateFoodRequest) (*utils.ServiceResponse, error)
	UpdateFood(ctx context.Context, request dtos.UpdateFoodRequest) (*utils.ServiceResponse, error)
	DeleteFood(ctx context.Context, foodID uint) (*utils.ServiceResponse, error)
	GetSalesFood(ctx context.Context, dateRange dtos.DateRange) (*utils.ServiceResponse, error)
}

type DiningTableServiceInterface interface {
	GetDiningTables(ctx context.Context) (*utils.ServiceResponse, error)
	CreateDiningTable(ctx context.Context, request dtos.CreateDiningTableRequest) (*utils.ServiceResponse, error)
	UpdateDiningTable(ctx context.Context, request dtos.UpdateDiningTableRequest) (*utils.ServiceResponse, error)
	DeleteDiningTable(ctx context.Context, tableID uint) (*utils.ServiceResponse, error)
	GetDiningTableQRCode(ctx context.Context, tableID uint) (*utils.ServiceResponse, error)
}

var (
	_ BillServiceInterface        = (*BillService)(nil)
	_ BillDetailServiceInterface  = (*BillDetailService)(nil)
	_ CustomerServiceInterface    = (*CustomerService)(nil)
	_ WaiterServiceInterface      = (*WaiterService)(nil)
	_ FoodServiceInterface        = (*FoodService)(nil)
	_ DiningTableServiceInterface = (*DiningTableService)(nil)
)
