package cost

import "github.com/google/uuid"

// RoomAllocation pairs a room with its optional budget. A zero
// AllocatedCents means the room is not tracked against a cap.
type RoomAllocation struct {
	RoomID         uuid.UUID
	AllocatedCents int64
}

// BudgetSummary is the spend-vs-allocation view for a single room.
type BudgetSummary struct {
	RoomID         uuid.UUID
	AllocatedCents int64
	SpentCents     int64
	RemainingCents int64
	ExpenseCount   int
	// IsOverBudget is only ever true for rooms with a nonzero
	// allocation; unbudgeted rooms are never flagged.
	IsOverBudget bool
}

// BudgetStats aggregates the per-room summaries across a project.
type BudgetStats struct {
	TotalAllocatedCents int64
	TotalSpentCents     int64
	TotalRemainingCents int64
	RoomsOverBudget     int
}

// RoomBudgetSummary sums the expenses linked to the given room against
// its allocation. Expenses linked to other rooms, or to no room at all,
// are ignored.
func RoomBudgetSummary(roomID uuid.UUID, allocatedCents int64, expenses []*Expense) BudgetSummary {
	var spent int64

	var count int

	for _, e := range expenses {
		if e.RoomID == nil || *e.RoomID != roomID {
			continue
		}

		spent += e.AmountCents
		count++
	}

	return BudgetSummary{
		RoomID:         roomID,
		AllocatedCents: allocatedCents,
		SpentCents:     spent,
		RemainingCents: allocatedCents - spent,
		ExpenseCount:   count,
		IsOverBudget:   spent > allocatedCents && allocatedCents > 0,
	}
}

// TotalBudgetStats sums RoomBudgetSummary over all given rooms.
func TotalBudgetStats(rooms []RoomAllocation, expenses []*Expense) BudgetStats {
	var stats BudgetStats

	for _, room := range rooms {
		summary := RoomBudgetSummary(room.RoomID, room.AllocatedCents, expenses)

		stats.TotalAllocatedCents += summary.AllocatedCents
		stats.TotalSpentCents += summary.SpentCents

		if summary.IsOverBudget {
			stats.RoomsOverBudget++
		}
	}

	stats.TotalRemainingCents = stats.TotalAllocatedCents - stats.TotalSpentCents

	return stats
}
