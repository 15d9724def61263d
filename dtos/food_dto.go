package dtos

import (
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-api/models"
)

type CreateFoodRequest struct {
	Name  string          `json:"name" binding:"required,max=50"`
	Price decimal.Decimal `json:"price"`
}

func (r CreateFoodRequest) ToModel() models.Food {
	return models.Food{Name: r.Name, Price: r.Price}
}

type UpdateFoodRequest struct {
	ID uint `json:"id" binding:"required"`
	CreateFoodRequest
}

func (r UpdateFoodRequest) ToModel() models.Food {
	return models.Food{ID: r.ID, Name: r.Name, Price: r.Price}
}

// SalesFood is the best selling food of a period.
type SalesFood struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}
