package database

import (
	"fmt"
	"strings"

	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/utils"
	"gorm.io/gorm"
)

type uniqueIndex struct {
	model       interface{}
	table       string
	name        string
	expressions []string
}

// Names compare ignoring case and surrounding spaces, so the plain unique
// columns are backed by expression indexes.
var uniqueIndexes = []uniqueIndex{
	{&models.Food{}, "foods", "idx_foods_name_ci", []string{"LOWER(TRIM(name))"}},
	{&models.DiningTable{}, "dining_tables", "idx_dining_tables_name_ci", []string{"LOWER(TRIM(name))"}},
	{&models.Waiter{}, "waiters", "idx_waiters_full_name_ci", []string{"LOWER(TRIM(first_name))", "LOWER(TRIM(last_name))"}},
}

func indexStatement(dialect string, idx uniqueIndex) string {
	parts := idx.expressions
	if dialect == "mysql" {
		// functional key parts must be parenthesized on MySQL
		parts = make([]string, len(idx.expressions))
		for i, expr := range idx.expressions {
			parts[i] = "(" + expr + ")"
		}
	}
	return fmt.Sprintf("CREATE UNIQUE INDEX %s ON %s (%s)", idx.name, idx.table, strings.Join(parts, ", "))
}

func EnsureUniqueIndexes(db *gorm.DB) error {
	dialect := db.Dialector.Name()

	for _, idx := range uniqueIndexes {
		if db.Migrator().HasIndex(idx.model, idx.name) {
			continue
		}

		stmt := indexStatement(dialect, idx)
		if err := db.Exec(stmt).Error; err != nil {
			utils.ErrorLogger.Printf("Error creating index: %v\nStatement: %s", err, stmt)
			return fmt.Errorf("create index %s: %w", idx.name, err)
		}
		utils.InfoLogger.Printf("Created unique index %s on %s", idx.name, idx.table)
	}

	return nil
}
