package cost

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
	"github.com/MrJamesThe3rd/verhuizer/internal/packing"
	"github.com/MrJamesThe3rd/verhuizer/internal/project"
)

type expenseResponse struct {
	ID             uuid.UUID     `json:"id"`
	ProjectID      uuid.UUID     `json:"project_id"`
	Description    string        `json:"description"`
	AmountCents    int64         `json:"amount_cents"`
	Amount         string        `json:"amount"`
	PaidByID       uuid.UUID     `json:"paid_by_id"`
	SplitBetween   []uuid.UUID   `json:"split_between"`
	Date           time.Time     `json:"date"`
	Category       cost.Category `json:"category"`
	RoomID         *uuid.UUID    `json:"room_id,omitempty"`
	LinkedSourceID *uuid.UUID    `json:"linked_source_id,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      *time.Time    `json:"updated_at,omitempty"`
}

func toResponse(e *cost.Expense) expenseResponse {
	return expenseResponse{
		ID:             e.ID,
		ProjectID:      e.ProjectID,
		Description:    e.Description,
		AmountCents:    e.AmountCents,
		Amount:         cost.FormatCents(e.AmountCents),
		PaidByID:       e.PaidByID,
		SplitBetween:   e.SplitBetween,
		Date:           e.Date,
		Category:       e.Category,
		RoomID:         e.RoomID,
		LinkedSourceID: e.LinkedSourceID,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toResponseList(expenses []*cost.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toResponse(e)
	}

	return resp
}

type settlementDTO struct {
	FromID      uuid.UUID `json:"from_id"`
	FromName    string    `json:"from_name"`
	ToID        uuid.UUID `json:"to_id"`
	ToName      string    `json:"to_name"`
	AmountCents int64     `json:"amount_cents"`
	Amount      string    `json:"amount"`
}

type settlementListResponse struct {
	Settlements []settlementDTO `json:"settlements"`
}

func toSettlementResponse(settlements []cost.Settlement, people []*project.Person) settlementListResponse {
	names := make(map[uuid.UUID]string, len(people))
	for _, p := range people {
		names[p.ID] = p.Name
	}

	dtos := make([]settlementDTO, len(settlements))
	for i, s := range settlements {
		dtos[i] = settlementDTO{
			FromID:      s.FromID,
			FromName:    names[s.FromID],
			ToID:        s.ToID,
			ToName:      names[s.ToID],
			AmountCents: s.AmountCents,
			Amount:      cost.FormatCents(s.AmountCents),
		}
	}

	return settlementListResponse{Settlements: dtos}
}

type roomBudgetDTO struct {
	RoomID         uuid.UUID `json:"room_id"`
	RoomName       string    `json:"room_name"`
	AllocatedCents int64     `json:"allocated_cents"`
	SpentCents     int64     `json:"spent_cents"`
	RemainingCents int64     `json:"remaining_cents"`
	ExpenseCount   int       `json:"expense_count"`
	IsOverBudget   bool      `json:"is_over_budget"`
}

type budgetResponse struct {
	Rooms               []roomBudgetDTO `json:"rooms"`
	TotalAllocatedCents int64           `json:"total_allocated_cents"`
	TotalSpentCents     int64           `json:"total_spent_cents"`
	TotalRemainingCents int64           `json:"total_remaining_cents"`
	RoomsOverBudget     int             `json:"rooms_over_budget"`
}

func toBudgetResponse(rooms []*packing.Room, allocations []cost.RoomAllocation, expenses []*cost.Expense) budgetResponse {
	dtos := make([]roomBudgetDTO, len(rooms))

	for i, room := range rooms {
		summary := cost.RoomBudgetSummary(room.ID, room.AllocatedCents, expenses)

		dtos[i] = roomBudgetDTO{
			RoomID:         summary.RoomID,
			RoomName:       room.Name,
			AllocatedCents: summary.AllocatedCents,
			SpentCents:     summary.SpentCents,
			RemainingCents: summary.RemainingCents,
			ExpenseCount:   summary.ExpenseCount,
			IsOverBudget:   summary.IsOverBudget,
		}
	}

	stats := cost.TotalBudgetStats(allocations, expenses)

	return budgetResponse{
		Rooms:               dtos,
		TotalAllocatedCents: stats.TotalAllocatedCents,
		TotalSpentCents:     stats.TotalSpentCents,
		TotalRemainingCents: stats.TotalRemainingCents,
		RoomsOverBudget:     stats.RoomsOverBudget,
	}
}
