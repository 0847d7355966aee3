package cost

import (
	"context"
	"fmt"
	"time"
)

// ImportResult is the outcome of an expense import. When conflicts are
// found nothing is written; the caller reviews them and confirms the
// subset to keep via CreateBatch.
type ImportResult struct {
	Imported  []*Expense
	New       []CreateParams
	Conflicts []Conflict
}

// Conflict pairs an incoming expense with the stored one it collides
// with.
type Conflict struct {
	Incoming CreateParams
	Existing *Expense
}

// ImportBatch checks incoming expenses against the project's stored
// ones and creates the batch when it is conflict-free. An expense
// counts as a duplicate when date, amount, and description all match.
func (s *Service) ImportBatch(ctx context.Context, params []CreateParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	minDate, maxDate := dateRange(params)
	projectID := params[0].ProjectID

	existing, err := s.repo.ListExpenses(ctx, ListFilter{
		ProjectID: &projectID,
		StartDate: &minDate,
		EndDate:   &maxDate,
	})
	if err != nil {
		return nil, fmt.Errorf("listing existing expenses: %w", err)
	}

	type dupKey struct {
		Date        string
		AmountCents int64
		Description string
	}

	lookup := make(map[dupKey]*Expense, len(existing))

	for _, e := range existing {
		k := dupKey{
			Date:        e.Date.Format(time.DateOnly),
			AmountCents: e.AmountCents,
			Description: e.Description,
		}
		lookup[k] = e
	}

	var newParams []CreateParams

	var conflicts []Conflict

	for _, p := range params {
		k := dupKey{
			Date:        p.Date.Format(time.DateOnly),
			AmountCents: p.AmountCents,
			Description: p.Description,
		}

		if existing, found := lookup[k]; found {
			conflicts = append(conflicts, Conflict{Incoming: p, Existing: existing})
			continue
		}

		newParams = append(newParams, p)
	}

	if len(conflicts) > 0 {
		return &ImportResult{New: newParams, Conflicts: conflicts}, nil
	}

	imported, err := s.CreateBatch(ctx, newParams)
	if err != nil {
		return nil, err
	}

	return &ImportResult{Imported: imported}, nil
}

func dateRange(params []CreateParams) (time.Time, time.Time) {
	minDate := params[0].Date
	maxDate := params[0].Date

	for _, p := range params[1:] {
		if p.Date.Before(minDate) {
			minDate = p.Date
		}

		if p.Date.After(maxDate) {
			maxDate = p.Date
		}
	}

	return minDate, maxDate
}
