package repositories

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-api/database"
	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

func march(day int) time.Time {
	return time.Date(2024, time.March, day, 12, 0, 0, 0, time.UTC)
}

type fixture struct {
	customers []models.Customer
	waiters   []models.Waiter
	tables    []models.DiningTable
	foods     []models.Food
	bills     []models.Bill
}

// seed stores four bills: three in March 2024 and one in April.
//
//	bill 1: Ana,  Mesa 1, Luis,  Mar 1  -> Ajiaco x1 100, Limonada x2 20
//	bill 2: Juan, Mesa 2, Luis,  Mar 5  -> Sancocho x3 150
//	bill 3: Ana,  Mesa 1, Maria, Mar 10 -> Ajiaco x2 200, Sancocho x1 50
//	bill 4: Juan, Mesa 2, Maria, Apr 15 -> Limonada x10 100
//
// Pedro has no bills.
func seed(t *testing.T, db *gorm.DB) fixture {
	f := fixture{
		customers: []models.Customer{
			{ID: "1111111111", FirstName: "Ana", LastName: "Torres"},
			{ID: "2222222222", FirstName: "Juan", LastName: "Perez"},
		},
		waiters: []models.Waiter{
			{FirstName: "Luis", LastName: "Gomez", Age: 30},
			{FirstName: "Maria", LastName: "Diaz", Age: 25},
			{FirstName: "Pedro", LastName: "Ruiz", Age: 40},
		},
		tables: []models.DiningTable{
			{Name: "Mesa 1", Chairs: 4},
			{Name: "Mesa 2", Chairs: 2},
		},
		foods: []models.Food{
			{Name: "Ajiaco", Price: decimal.NewFromInt(100)},
			{Name: "Sancocho", Price: decimal.NewFromInt(50)},
			{Name: "Limonada", Price: decimal.NewFromInt(10)},
		},
	}
	require.NoError(t, db.Create(&f.customers).Error)
	require.NoError(t, db.Create(&f.waiters).Error)
	require.NoError(t, db.Create(&f.tables).Error)
	require.NoError(t, db.Create(&f.foods).Error)

	ajiaco, sancocho, limonada := f.foods[0].ID, f.foods[1].ID, f.foods[2].ID
	line := func(food uint, qty int, price int64) models.BillDetail {
		return models.BillDetail{FoodID: food, Quantity: qty, Price: decimal.NewFromInt(price)}
	}

	f.bills = []models.Bill{
		{CustomerID: "1111111111", DiningTableID: f.tables[0].ID, WaiterID: f.waiters[0].ID, CreationDate: march(1),
			BillDetails: []models.BillDetail{line(ajiaco, 1, 100), line(limonada, 2, 20)}},
		{CustomerID: "2222222222", DiningTableID: f.tables[1].ID, WaiterID: f.waiters[0].ID, CreationDate: march(5),
			BillDetails: []models.BillDetail{line(sancocho, 3, 150)}},
		{CustomerID: "1111111111", DiningTableID: f.tables[0].ID, WaiterID: f.waiters[1].ID, CreationDate: march(10),
			BillDetails: []models.BillDetail{line(ajiaco, 2, 200), line(sancocho, 1, 50)}},
		{CustomerID: "2222222222", DiningTableID: f.tables[1].ID, WaiterID: f.waiters[1].ID,
			CreationDate: time.Date(2024, time.April, 15, 9, 0, 0, 0, time.UTC),
			BillDetails:  []models.BillDetail{line(limonada, 10, 100)}},
	}
	for i := range f.bills {
		details := f.bills[i].BillDetails
		f.bills[i].BillDetails = nil
		require.NoError(t, db.Omit("Customer", "Waiter", "DiningTable").Create(&f.bills[i]).Error)
		for j := range details {
			details[j].BillID = f.bills[i].ID
		}
		require.NoError(t, db.Omit("Food").Create(&details).Error)
		f.bills[i].BillDetails = details
	}
	return f
}

func marchRange() (time.Time, time.Time) {
	return time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC)
}
