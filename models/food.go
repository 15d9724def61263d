package models

import "github.com/shopspring/decimal"

type Food struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(10,3);not null" json:"price"`
}
