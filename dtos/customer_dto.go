package dtos

import (
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-api/models"
)

// CustomerRequest is used for both create and update; the id is the
// customer's document number.
type CustomerRequest struct {
	ID          string `json:"id" binding:"required,max=10"`
	FirstName   string `json:"first_name" binding:"required,max=50"`
	LastName    string `json:"last_name" binding:"required,max=50"`
	Address     string `json:"address" binding:"max=50"`
	PhoneNumber string `json:"phone_number" binding:"max=10"`
}

func (r CustomerRequest) ToModel() models.Customer {
	return models.Customer{
		ID:          r.ID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
	}
}

type CustomerSpendFilter struct {
	DateRange
	Spent float64 `form:"spent" json:"spent"`
}

func (f CustomerSpendFilter) MinimumSpend() decimal.Decimal {
	return decimal.NewFromFloat(f.Spent)
}

type CustomerSpend struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Spent     decimal.Decimal `json:"spent"`
}
