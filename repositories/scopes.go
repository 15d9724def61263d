package repositories

import (
	"strings"

	"github.com/yeremiapane/restaurant-api/dtos"
	"gorm.io/gorm"
)

func WhereIf(condition bool, query interface{}, args ...interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if !condition {
			return db
		}
		return db.Where(query, args...)
	}
}

func ByID(id interface{}) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// NameEquals compares the name column ignoring case and surrounding spaces.
func NameEquals(name string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(TRIM(name)) = ?", normalize(name))
	}
}

func FullNameEquals(firstName, lastName string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(TRIM(first_name)) = ? AND LOWER(TRIM(last_name)) = ?",
			normalize(firstName), normalize(lastName))
	}
}

// CreatedBetween restricts column to the set bounds of r, both inclusive.
// Bounds are compared in UTC, the zone bills are stored in.
func CreatedBetween(column string, r dtos.DateRange) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if r.StartDate != nil {
			db = db.Where(column+" >= ?", r.StartDate.UTC())
		}
		if r.EndDate != nil {
			db = db.Where(column+" <= ?", r.EndDate.UTC())
		}
		return db
	}
}

func Chain(scopes ...Scope) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Scopes(scopes...)
	}
}
