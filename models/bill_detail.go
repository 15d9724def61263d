package models

import "github.com/shopspring/decimal"

// BillDetail is one line of a bill. Price holds the line total
// (quantity times unit price) as computed by the caller.
type BillDetail struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	BillID   uint            `gorm:"not null;index" json:"bill_id"`
	FoodID   uint            `gorm:"not null;index" json:"food_id"`
	Food     Food            `gorm:"foreignKey:FoodID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quantity int             `gorm:"not null" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"price"`
}
