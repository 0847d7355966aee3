package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectExpenseColumns = `
	id, project_id, description, amount, paid_by_id, split_between, date,
	category, room_id, linked_source_id, created_at, updated_at, deleted_at
`

// scanExpense reads an expense row and returns a populated Expense.
// split_between is stored as a JSONB array of person ids.
func scanExpense(s scanner) (*cost.Expense, error) {
	var e cost.Expense

	var category sql.NullString

	var split []byte

	if err := s.Scan(
		&e.ID, &e.ProjectID, &e.Description, &e.AmountCents, &e.PaidByID, &split, &e.Date,
		&category, &e.RoomID, &e.LinkedSourceID,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	); err != nil {
		return nil, err
	}

	e.Category = cost.Category(category.String)

	if err := json.Unmarshal(split, &e.SplitBetween); err != nil {
		return nil, fmt.Errorf("decoding split: %w", err)
	}

	return &e, nil
}

func (s *Store) CreateExpense(ctx context.Context, e *cost.Expense) error {
	split, err := json.Marshal(e.SplitBetween)
	if err != nil {
		return fmt.Errorf("encoding split: %w", err)
	}

	query := `
		INSERT INTO expenses (project_id, description, amount, paid_by_id, split_between, date, category, room_id, linked_source_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		e.ProjectID,
		e.Description,
		e.AmountCents,
		e.PaidByID,
		split,
		e.Date,
		e.Category,
		e.RoomID,
		e.LinkedSourceID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) CreateExpenses(ctx context.Context, es []*cost.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO expenses (project_id, description, amount, paid_by_id, split_between, date, category, room_id, linked_source_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	for _, e := range es {
		split, err := json.Marshal(e.SplitBetween)
		if err != nil {
			return fmt.Errorf("encoding split: %w", err)
		}

		err = tx.QueryRowContext(ctx, query,
			e.ProjectID,
			e.Description,
			e.AmountCents,
			e.PaidByID,
			split,
			e.Date,
			e.Category,
			e.RoomID,
			e.LinkedSourceID,
		).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating expense: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing expenses: %w", err)
	}

	return nil
}

func (s *Store) GetExpense(ctx context.Context, id uuid.UUID) (*cost.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses
		WHERE id = $1 AND deleted_at IS NULL`

	e, err := scanExpense(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, cost.ErrNotFound
		}

		return nil, fmt.Errorf("getting expense: %w", err)
	}

	return e, nil
}

func (s *Store) ListExpenses(ctx context.Context, filter cost.ListFilter) ([]*cost.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses
		WHERE deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.ProjectID != nil {
		query += fmt.Sprintf(" AND project_id = $%d", argIdx)

		args = append(args, *filter.ProjectID)
		argIdx++
	}

	if filter.PaidByID != nil {
		query += fmt.Sprintf(" AND paid_by_id = $%d", argIdx)

		args = append(args, *filter.PaidByID)
		argIdx++
	}

	if filter.RoomID != nil {
		query += fmt.Sprintf(" AND room_id = $%d", argIdx)

		args = append(args, *filter.RoomID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY date ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var es []*cost.Expense

	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		es = append(es, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expense rows: %w", err)
	}

	return es, nil
}

func (s *Store) UpdateExpense(ctx context.Context, e *cost.Expense) error {
	split, err := json.Marshal(e.SplitBetween)
	if err != nil {
		return fmt.Errorf("encoding split: %w", err)
	}

	query := `
		UPDATE expenses
		SET description = $1, amount = $2, paid_by_id = $3, split_between = $4, date = $5, category = $6, room_id = $7, updated_at = NOW()
		WHERE id = $8 AND deleted_at IS NULL
	`

	_, err = s.db.ExecContext(ctx, query,
		e.Description,
		e.AmountCents,
		e.PaidByID,
		split,
		e.Date,
		e.Category,
		e.RoomID,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE expenses
		SET deleted_at = NOW()
		WHERE id = $1
	`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	return nil
}
