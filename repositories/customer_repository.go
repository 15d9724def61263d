package repositories

import (
	"context"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/models"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Repository[models.Customer]
	GetCustomerSpend(ctx context.Context, filter dtos.CustomerSpendFilter) ([]dtos.CustomerSpend, error)
}

type GormCustomerRepository struct {
	*GormRepository[models.Customer]
}

func NewCustomerRepository(conn func() *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{GormRepository: NewRepository[models.Customer](conn)}
}

type customerSpendRow struct {
	CustomerID string
	FirstName  string
	LastName   string
	Price      decimal.Decimal
}

// GetCustomerSpend totals line prices per customer for bills created in the
// range and keeps customers whose total reaches the minimum spend.
func (r *GormCustomerRepository) GetCustomerSpend(ctx context.Context, filter dtos.CustomerSpendFilter) ([]dtos.CustomerSpend, error) {
	var rows []customerSpendRow
	err := r.db(ctx).
		Table("bill_details").
		Select("customers.id AS customer_id, customers.first_name, customers.last_name, bill_details.price").
		Joins("JOIN bills ON bills.id = bill_details.bill_id").
		Joins("JOIN customers ON customers.id = bills.customer_id").
		Scopes(CreatedBetween("bills.creation_date", filter.DateRange)).
		Order("bill_details.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	minimum := filter.MinimumSpend()
	keys, groups := groupInOrder(rows, func(row customerSpendRow) string { return row.CustomerID })

	return lo.FilterMap(keys, func(key string, _ int) (dtos.CustomerSpend, bool) {
		group := groups[key]
		spent := sumDecimal(group, func(row customerSpendRow) decimal.Decimal { return row.Price })
		return dtos.CustomerSpend{
			FirstName: group[0].FirstName,
			LastName:  group[0].LastName,
			Spent:     spent,
		}, spent.GreaterThanOrEqual(minimum)
	}), nil
}
