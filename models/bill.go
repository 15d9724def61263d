package models

import (
	"time"

	"gorm.io/gorm"
)

// Bill is an order header. It is written once, together with its details,
// and never updated afterwards.
type Bill struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	CustomerID    string       `gorm:"type:varchar(10);not null;index" json:"customer_id"`
	Customer      Customer     `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	DiningTableID uint         `gorm:"not null;index" json:"dining_table_id"`
	DiningTable   DiningTable  `gorm:"foreignKey:DiningTableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	WaiterID      uint         `gorm:"not null;index" json:"waiter_id"`
	Waiter        Waiter       `gorm:"foreignKey:WaiterID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CreationDate  time.Time    `gorm:"not null;index" json:"creation_date"`
	BillDetails   []BillDetail `gorm:"foreignKey:BillID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"details,omitempty"`
}

// BeforeSave stores the creation date in UTC so text-backed stores compare
// instants, not offsets.
func (b *Bill) BeforeSave(tx *gorm.DB) error {
	b.CreationDate = b.CreationDate.UTC()
	return nil
}
