package cost_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
)

func roomExpense(amount int64, roomID *uuid.UUID) *cost.Expense {
	return &cost.Expense{
		ID:           uuid.New(),
		AmountCents:  amount,
		PaidByID:     anna,
		SplitBetween: []uuid.UUID{anna},
		RoomID:       roomID,
	}
}

func TestRoomBudgetSummary(t *testing.T) {
	kitchen := uuid.New()
	bedroom := uuid.New()

	expenses := []*cost.Expense{
		roomExpense(30000, &kitchen),
		roomExpense(25000, &kitchen),
		roomExpense(10000, &bedroom),
		roomExpense(9999, nil),
	}

	summary := cost.RoomBudgetSummary(kitchen, 50000, expenses)

	assert.Equal(t, kitchen, summary.RoomID)
	assert.Equal(t, int64(50000), summary.AllocatedCents)
	assert.Equal(t, int64(55000), summary.SpentCents)
	assert.Equal(t, int64(-5000), summary.RemainingCents)
	assert.Equal(t, 2, summary.ExpenseCount)
	assert.True(t, summary.IsOverBudget)
}

func TestRoomBudgetSummary_OverBudgetEdgeCases(t *testing.T) {
	roomID := uuid.New()

	tests := []struct {
		name      string
		allocated int64
		spent     int64
		want      bool
	}{
		{name: "unbudgeted room is never flagged", allocated: 0, spent: 500, want: false},
		{name: "spend equal to budget is not over", allocated: 500, spent: 500, want: false},
		{name: "one cent over", allocated: 500, spent: 501, want: true},
		{name: "no spend", allocated: 500, spent: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var expenses []*cost.Expense
			if tt.spent > 0 {
				expenses = append(expenses, roomExpense(tt.spent, &roomID))
			}

			summary := cost.RoomBudgetSummary(roomID, tt.allocated, expenses)
			assert.Equal(t, tt.want, summary.IsOverBudget)
		})
	}
}

func TestRoomBudgetSummary_DanglingRoomReference(t *testing.T) {
	// An expense pointing at a room that no longer exists contributes to
	// no room's summary.
	gone := uuid.New()
	kitchen := uuid.New()

	expenses := []*cost.Expense{
		roomExpense(1000, &gone),
	}

	summary := cost.RoomBudgetSummary(kitchen, 2000, expenses)
	assert.Zero(t, summary.SpentCents)
	assert.Zero(t, summary.ExpenseCount)
}

func TestTotalBudgetStats(t *testing.T) {
	kitchen := uuid.New()
	bedroom := uuid.New()
	hall := uuid.New()

	rooms := []cost.RoomAllocation{
		{RoomID: kitchen, AllocatedCents: 40000},
		{RoomID: bedroom, AllocatedCents: 20000},
		{RoomID: hall, AllocatedCents: 0},
	}

	expenses := []*cost.Expense{
		roomExpense(45000, &kitchen),
		roomExpense(5000, &bedroom),
		roomExpense(99999, &hall),
	}

	stats := cost.TotalBudgetStats(rooms, expenses)

	assert.Equal(t, int64(60000), stats.TotalAllocatedCents)
	assert.Equal(t, int64(149999), stats.TotalSpentCents)
	assert.Equal(t, int64(-89999), stats.TotalRemainingCents)
	// Only the kitchen counts: the hall has no allocation.
	assert.Equal(t, 1, stats.RoomsOverBudget)
}
