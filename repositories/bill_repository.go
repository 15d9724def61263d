package repositories

import (
	"context"

	"github.com/samber/lo"
	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/models"
	"gorm.io/gorm"
)

type BillRepository interface {
	Repository[models.Bill]
	GetBillsWithDetails(ctx context.Context, filter dtos.BillFilter) ([]dtos.BillWithDetails, error)
}

type GormBillRepository struct {
	*GormRepository[models.Bill]
}

func NewBillRepository(conn func() *gorm.DB) *GormBillRepository {
	return &GormBillRepository{GormRepository: NewRepository[models.Bill](conn)}
}

// billFilterScope applies every filter that is set, joined with AND.
func billFilterScope(filter dtos.BillFilter) Scope {
	return Chain(
		WhereIf(filter.BillID != nil, "bills.id = ?", lo.FromPtr(filter.BillID)),
		WhereIf(lo.FromPtr(filter.CustomerID) != "", "bills.customer_id = ?", lo.FromPtr(filter.CustomerID)),
		WhereIf(filter.DiningTableID != nil, "bills.dining_table_id = ?", lo.FromPtr(filter.DiningTableID)),
		WhereIf(filter.WaiterID != nil, "bills.waiter_id = ?", lo.FromPtr(filter.WaiterID)),
		WhereIf(filter.FoodID != nil,
			"EXISTS (SELECT 1 FROM bill_details bd WHERE bd.bill_id = bills.id AND bd.food_id = ?)",
			lo.FromPtr(filter.FoodID)),
		CreatedBetween("bills.creation_date", filter.DateRange),
	)
}

func (r *GormBillRepository) GetBillsWithDetails(ctx context.Context, filter dtos.BillFilter) ([]dtos.BillWithDetails, error) {
	var bills []models.Bill
	err := r.db(ctx).
		Scopes(billFilterScope(filter)).
		Preload("Customer").
		Preload("Waiter").
		Preload("DiningTable").
		Preload("BillDetails", func(db *gorm.DB) *gorm.DB {
			return db.Order("bill_details.id")
		}).
		Preload("BillDetails.Food").
		Order("bills.id").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}

	return lo.Map(bills, func(bill models.Bill, _ int) dtos.BillWithDetails {
		return dtos.NewBillWithDetails(bill)
	}), nil
}
