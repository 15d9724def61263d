package repositories

import (
	"context"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-api/dtos"
	"github.com/yeremiapane/restaurant-api/models"
	"gorm.io/gorm"
)

type FoodRepository interface {
	Repository[models.Food]
	GetSalesFood(ctx context.Context, dateRange dtos.DateRange) (mo.Option[dtos.SalesFood], error)
}

type GormFoodRepository struct {
	*GormRepository[models.Food]
}

func NewFoodRepository(conn func() *gorm.DB) *GormFoodRepository {
	return &GormFoodRepository{GormRepository: NewRepository[models.Food](conn)}
}

type foodSalesRow struct {
	FoodID   uint
	Name     string
	Quantity int
	Price    decimal.Decimal
}

// GetSalesFood returns the food with the highest sold quantity in the range.
// On a tie the food sold first wins.
func (r *GormFoodRepository) GetSalesFood(ctx context.Context, dateRange dtos.DateRange) (mo.Option[dtos.SalesFood], error) {
	var rows []foodSalesRow
	err := r.db(ctx).
		Table("bill_details").
		Select("foods.id AS food_id, foods.name, bill_details.quantity, bill_details.price").
		Joins("JOIN bills ON bills.id = bill_details.bill_id").
		Joins("JOIN foods ON foods.id = bill_details.food_id").
		Scopes(CreatedBetween("bills.creation_date", dateRange)).
		Order("bill_details.id").
		Scan(&rows).Error
	if err != nil {
		return mo.None[dtos.SalesFood](), err
	}
	if len(rows) == 0 {
		return mo.None[dtos.SalesFood](), nil
	}

	keys, groups := groupInOrder(rows, func(row foodSalesRow) uint { return row.FoodID })
	sales := lo.Map(keys, func(key uint, _ int) dtos.SalesFood {
		group := groups[key]
		return dtos.SalesFood{
			Name:     group[0].Name,
			Quantity: lo.SumBy(group, func(row foodSalesRow) int { return row.Quantity }),
			Total:    sumDecimal(group, func(row foodSalesRow) decimal.Decimal { return row.Price }),
		}
	})

	best := lo.MaxBy(sales, func(a, b dtos.SalesFood) bool { return a.Quantity > b.Quantity })
	return mo.Some(best), nil
}
