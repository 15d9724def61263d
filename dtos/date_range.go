package dtos

import "time"

// DateRange bounds a query on bill creation date. Each bound is inclusive
// and only applied when set. Query values use RFC3339.
type DateRange struct {
	StartDate *time.Time `form:"start_date" json:"start_date,omitempty"`
	EndDate   *time.Time `form:"end_date" json:"end_date,omitempty"`
}
