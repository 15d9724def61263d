package models

import "time"

type Waiter struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	FirstName     string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_waiters_full_name" json:"first_name"`
	LastName      string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_waiters_full_name" json:"last_name"`
	Age           int        `json:"age"`
	AdmissionDate *time.Time `gorm:"type:date" json:"admission_date,omitempty"`
}

func (w Waiter) FullName() string {
	return w.FirstName + " " + w.LastName
}
