package dtos

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/yeremiapane/restaurant-api/models"
)

type CreateBillDetailRequest struct {
	BillID   uint            `json:"bill_id"`
	FoodID   uint            `json:"food_id" binding:"required"`
	Quantity int             `json:"quantity" binding:"required,gt=0"`
	Price    decimal.Decimal `json:"price"`
}

func (r CreateBillDetailRequest) ToModel() models.BillDetail {
	return models.BillDetail{
		BillID:   r.BillID,
		FoodID:   r.FoodID,
		Quantity: r.Quantity,
		Price:    r.Price,
	}
}

type CreateBillRequest struct {
	CustomerID    string                    `json:"customer_id" binding:"required,max=10"`
	DiningTableID uint                      `json:"dining_table_id" binding:"required"`
	WaiterID      uint                      `json:"waiter_id" binding:"required"`
	CreationDate  time.Time                 `json:"creation_date"`
	Details       []CreateBillDetailRequest `json:"details" binding:"required,min=1,dive"`
}

// ToModel maps the header only; details are written separately once the
// bill id is known.
func (r CreateBillRequest) ToModel() models.Bill {
	return models.Bill{
		CustomerID:    r.CustomerID,
		DiningTableID: r.DiningTableID,
		WaiterID:      r.WaiterID,
		CreationDate:  r.CreationDate.UTC(),
	}
}

// Total sums the line prices of the request.
func (r CreateBillRequest) Total() decimal.Decimal {
	return lo.Reduce(r.Details, func(acc decimal.Decimal, d CreateBillDetailRequest, _ int) decimal.Decimal {
		return acc.Add(d.Price)
	}, decimal.Zero)
}

type BillFilter struct {
	DateRange
	BillID        *uint   `form:"bill_id" json:"bill_id,omitempty"`
	CustomerID    *string `form:"customer_id" json:"customer_id,omitempty"`
	DiningTableID *uint   `form:"dining_table_id" json:"dining_table_id,omitempty"`
	WaiterID      *uint   `form:"waiter_id" json:"waiter_id,omitempty"`
	FoodID        *uint   `form:"food_id" json:"food_id,omitempty"`
}

type BillDetailLine struct {
	Food     string          `json:"food"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// BillWithDetails is the denormalized report row for one bill.
type BillWithDetails struct {
	BillID       uint             `json:"bill_id"`
	CreationDate time.Time        `json:"creation_date"`
	Customer     string           `json:"customer"`
	Waiter       string           `json:"waiter"`
	DiningTable  string           `json:"dining_table"`
	Price        decimal.Decimal  `json:"price"`
	Details      []BillDetailLine `json:"details"`
}

func NewBillWithDetails(bill models.Bill) BillWithDetails {
	lines := lo.Map(bill.BillDetails, func(d models.BillDetail, _ int) BillDetailLine {
		return BillDetailLine{Food: d.Food.Name, Quantity: d.Quantity, Price: d.Price}
	})

	return BillWithDetails{
		BillID:       bill.ID,
		CreationDate: bill.CreationDate,
		Customer:     bill.Customer.FullName(),
		Waiter:       bill.Waiter.FullName(),
		DiningTable:  bill.DiningTable.Name,
		Price: lo.Reduce(lines, func(acc decimal.Decimal, l BillDetailLine, _ int) decimal.Decimal {
			return acc.Add(l.Price)
		}, decimal.Zero),
		Details: lines,
	}
}
