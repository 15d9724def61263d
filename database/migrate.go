package database

import (
	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/utils"
	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&models.Customer{},
		&models.Waiter{},
		&models.DiningTable{},
		&models.Food{},
		&models.Bill{},
		&models.BillDetail{},
	}
}

// Migrate creates or updates the schema and the storage level uniqueness
// rules.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		utils.ErrorLogger.Errorf("Auto migration failed: %v", err)
		return err
	}
	utils.InfoLogger.Info("Database schema migrated")

	return EnsureUniqueIndexes(db)
}
