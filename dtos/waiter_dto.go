package dtos

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-api/models"
)

type CreateWaiterRequest struct {
	FirstName     string     `json:"first_name" binding:"required,max=50"`
	LastName      string     `json:"last_name" binding:"required,max=50"`
	Age           int        `json:"age" binding:"gte=0"`
	AdmissionDate *time.Time `json:"admission_date"`
}

func (r CreateWaiterRequest) ToModel() models.Waiter {
	return models.Waiter{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Age:           r.Age,
		AdmissionDate: r.AdmissionDate,
	}
}

type UpdateWaiterRequest struct {
	ID uint `json:"id" binding:"required"`
	CreateWaiterRequest
}

func (r UpdateWaiterRequest) ToModel() models.Waiter {
	waiter := r.CreateWaiterRequest.ToModel()
	waiter.ID = r.ID
	return waiter
}

type WaiterSales struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Sales     decimal.Decimal `json:"sales"`
}
