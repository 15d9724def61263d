package models

type DiningTable struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
	Reserved bool   `gorm:"not null;default:false" json:"reserved"`
	Chairs   int    `gorm:"not null" json:"chairs"`
}
