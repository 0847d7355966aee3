package cost

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=cost
type Repository interface {
	CreateExpense(ctx context.Context, e *Expense) error
	CreateExpenses(ctx context.Context, es []*Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*Expense, error)
	ListExpenses(ctx context.Context, filter ListFilter) ([]*Expense, error)
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ProjectID      uuid.UUID
	Description    string
	AmountCents    int64
	PaidByID       uuid.UUID
	SplitBetween   []uuid.UUID
	Date           time.Time
	Category       Category
	RoomID         *uuid.UUID
	LinkedSourceID *uuid.UUID
}

type ListFilter struct {
	ProjectID *uuid.UUID
	PaidByID  *uuid.UUID
	RoomID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

func validate(amountCents int64, splitBetween []uuid.UUID) error {
	if amountCents <= 0 {
		return ErrInvalidAmount
	}

	if len(splitBetween) == 0 {
		return ErrEmptySplit
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	if err := validate(params.AmountCents, params.SplitBetween); err != nil {
		return nil, err
	}

	e := &Expense{
		ProjectID:      params.ProjectID,
		Description:    params.Description,
		AmountCents:    params.AmountCents,
		PaidByID:       params.PaidByID,
		SplitBetween:   params.SplitBetween,
		Date:           params.Date,
		Category:       params.Category,
		RoomID:         params.RoomID,
		LinkedSourceID: params.LinkedSourceID,
	}
	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Expense, error) {
	if len(params) == 0 {
		return nil, nil
	}

	es := make([]*Expense, len(params))

	for i, p := range params {
		if err := validate(p.AmountCents, p.SplitBetween); err != nil {
			return nil, fmt.Errorf("expense %d: %w", i, err)
		}

		es[i] = &Expense{
			ProjectID:      p.ProjectID,
			Description:    p.Description,
			AmountCents:    p.AmountCents,
			PaidByID:       p.PaidByID,
			SplitBetween:   p.SplitBetween,
			Date:           p.Date,
			Category:       p.Category,
			RoomID:         p.RoomID,
			LinkedSourceID: p.LinkedSourceID,
		}
	}

	if err := s.repo.CreateExpenses(ctx, es); err != nil {
		return nil, fmt.Errorf("creating expenses: %w", err)
	}

	return es, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Expense, error) {
	return s.repo.GetExpense(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx, filter)
}

func (s *Service) Update(ctx context.Context, e *Expense) error {
	if err := validate(e.AmountCents, e.SplitBetween); err != nil {
		return err
	}

	return s.repo.UpdateExpense(ctx, e)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, id)
}

// Settlements loads a project's expenses and reduces them to pairwise
// transfers between the given participants.
func (s *Service) Settlements(ctx context.Context, projectID uuid.UUID, personIDs []uuid.UUID) ([]Settlement, error) {
	expenses, err := s.repo.ListExpenses(ctx, ListFilter{ProjectID: &projectID})
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	return CalculateSettlements(expenses, personIDs)
}
