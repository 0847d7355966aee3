package cost

import "errors"

var (
	// ErrNotFound is returned when an expense does not exist.
	ErrNotFound = errors.New("expense not found")

	// ErrUnknownParticipant is returned by CalculateSettlements when an
	// expense references a payer or split member that is not in the
	// supplied participant list.
	ErrUnknownParticipant = errors.New("expense references unknown participant")

	// ErrEmptySplit is returned when an expense has nobody to split between.
	ErrEmptySplit = errors.New("expense split is empty")

	// ErrInvalidAmount is returned for amounts that are not a positive
	// number of cents.
	ErrInvalidAmount = errors.New("amount must be a positive number of cents")
)
