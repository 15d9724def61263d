package repositories

import (
	"context"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/models"
	"gorm.io/gorm"
)

type WaiterRepository interface {
	Repository[models.Waiter]
	GetWaiterSales(ctx context.Context, dateRange dtos.DateRange) ([]dtos.WaiterSales, error)
}

type GormWaiterRepository struct {
	*GormRepository[models.Waiter]
}

func NewWaiterRepository(conn func() *gorm.DB) *GormWaiterRepository {
	return &GormWaiterRepository{GormRepository: NewRepository[models.Waiter](conn)}
}

type waiterSalesRow struct {
	WaiterID  uint
	FirstName string
	LastName  string
	Price     decimal.NullDecimal
}

// GetWaiterSales totals the sales of every waiter in the range. Waiters
// without bills, or with bills without lines, report zero.
func (r *GormWaiterRepository) GetWaiterSales(ctx context.Context, dateRange dtos.DateRange) ([]dtos.WaiterSales, error) {
	join := "LEFT JOIN bills ON bills.waiter_id = waiters.id"
	var args []interface{}
	if dateRange.StartDate != nil {
		join += " AND bills.creation_date >= ?"
		args = append(args, dateRange.StartDate.UTC())
	}
	if dateRange.EndDate != nil {
		join += " AND bills.creation_date <= ?"
		args = append(args, dateRange.EndDate.UTC())
	}

	var rows []waiterSalesRow
	err := r.db(ctx).
		Table("waiters").
		Select("waiters.id AS waiter_id, waiters.first_name, waiters.last_name, bill_details.price").
		Joins(join, args...).
		Joins("LEFT JOIN bill_details ON bill_details.bill_id = bills.id").
		Order("waiters.id").
		Order("bill_details.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	keys, groups := groupInOrder(rows, func(row waiterSalesRow) uint { return row.WaiterID })
	return lo.Map(keys, func(key uint, _ int) dtos.WaiterSales {
		group := groups[key]
		return dtos.WaiterSales{
			FirstName: group[0].FirstName,
			LastName:  group[0].LastName,
			Sales: sumDecimal(group, func(row waiterSalesRow) decimal.Decimal {
				if !row.Price.Valid {
					return decimal.Zero
				}
				return row.Price.Decimal
			}),
		}
	}), nil
}
