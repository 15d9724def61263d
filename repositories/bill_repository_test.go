package repositories

import (
	"context"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-api/dtos"
)

func billIDs(rows []dtos.BillWithDetails) []uint {
	return lo.Map(rows, func(row dtos.BillWithDetails, _ int) uint { return row.BillID })
}

func TestBillRepository_GetBillsWithDetails(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	f := seed(t, db)
	repo := NewUnitOfWork(db).Bills()
	start, end := marchRange()
	b := func(i int) uint { return f.bills[i].ID }

	tests := []struct {
		name     string
		filter   dtos.BillFilter
		expected []uint
	}{
		{name: "no filter", filter: dtos.BillFilter{}, expected: []uint{b(0), b(1), b(2), b(3)}},
		{name: "by bill", filter: dtos.BillFilter{BillID: lo.ToPtr(b(1))}, expected: []uint{b(1)}},
		{name: "by customer", filter: dtos.BillFilter{CustomerID: lo.ToPtr("1111111111")}, expected: []uint{b(0), b(2)}},
		{name: "empty customer is ignored", filter: dtos.BillFilter{CustomerID: lo.ToPtr("")}, expected: []uint{b(0), b(1), b(2), b(3)}},
		{name: "by table", filter: dtos.BillFilter{DiningTableID: lo.ToPtr(f.tables[1].ID)}, expected: []uint{b(1), b(3)}},
		{name: "by waiter", filter: dtos.BillFilter{WaiterID: lo.ToPtr(f.waiters[1].ID)}, expected: []uint{b(2), b(3)}},
		{name: "by food alone", filter: dtos.BillFilter{FoodID: lo.ToPtr(f.foods[2].ID)}, expected: []uint{b(0), b(3)}},
		{
			name:     "by waiter and food",
			filter:   dtos.BillFilter{WaiterID: lo.ToPtr(f.waiters[1].ID), FoodID: lo.ToPtr(f.foods[0].ID)},
			expected: []uint{b(2)},
		},
		{
			name:     "by date range",
			filter:   dtos.BillFilter{DateRange: dtos.DateRange{StartDate: &start, EndDate: &end}},
			expected: []uint{b(0), b(1), b(2)},
		},
		{
			name:     "open ended range",
			filter:   dtos.BillFilter{DateRange: dtos.DateRange{StartDate: lo.ToPtr(march(5))}},
			expected: []uint{b(1), b(2), b(3)},
		},
		{name: "nothing matches", filter: dtos.BillFilter{CustomerID: lo.ToPtr("0000000000")}, expected: []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := repo.GetBillsWithDetails(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, billIDs(rows))
		})
	}
}

func TestBillRepository_GetBillsWithDetails_ReportShape(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	f := seed(t, db)

	rows, err := NewUnitOfWork(db).Bills().GetBillsWithDetails(ctx, dtos.BillFilter{BillID: lo.ToPtr(f.bills[2].ID)})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Ana Torres", row.Customer)
	assert.Equal(t, "Maria Diaz", row.Waiter)
	assert.Equal(t, "Mesa 1", row.DiningTable)
	assert.True(t, row.CreationDate.Equal(march(10)))
	assert.Equal(t, "250", row.Price.String())
	require.Len(t, row.Details, 2)
	assert.Equal(t, "Ajiaco", row.Details[0].Food)
	assert.Equal(t, 2, row.Details[0].Quantity)
	assert.Equal(t, "200", row.Details[0].Price.String())
	assert.Equal(t, "Sancocho", row.Details[1].Food)
}
