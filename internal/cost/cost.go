package cost

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies what an expense was for.
type Category string

const (
	CategoryMeubels     Category = "meubels"
	CategoryVerlichting Category = "verlichting"
	CategoryKeuken      Category = "keuken"
	CategoryRenovatie   Category = "renovatie"
	CategoryDiensten    Category = "diensten"
	CategoryVerhuizing  Category = "verhuizing"
	CategoryOverig      Category = "overig"
)

// Expense represents a shared expense paid by one person and split
// between one or more people. Amounts are in cents.
type Expense struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Description string
	AmountCents int64
	PaidByID    uuid.UUID
	// SplitBetween lists who shares the cost. The payer need not be
	// a member.
	SplitBetween []uuid.UUID
	Date         time.Time
	Category     Category
	// RoomID links the expense to a room for budget tracking.
	RoomID *uuid.UUID
	// LinkedSourceID points back at the shopping item this expense
	// originated from, if any. The link is weak: the expense stays
	// valid when the item is deleted.
	LinkedSourceID *uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
}

// Settlement is a single directed debt resolution: FromID owes ToID
// AmountCents.
type Settlement struct {
	FromID      uuid.UUID
	ToID        uuid.UUID
	AmountCents int64
}
