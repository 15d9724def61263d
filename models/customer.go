package models

// Customer is identified by an external document number (national ID).
type Customer struct {
	ID          string `gorm:"primaryKey;type:varchar(10)" json:"id"`
	FirstName   string `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName    string `gorm:"type:varchar(50);not null" json:"last_name"`
	Address     string `gorm:"type:varchar(50)" json:"address"`
	PhoneNumber string `gorm:"type:varchar(10)" json:"phone_number"`
}

// FullName joins first and last name the way reports print them.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
