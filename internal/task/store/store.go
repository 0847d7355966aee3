package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/task"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectTaskColumns = `
	id, project_id, title, description, assignee_id, category, deadline, status,
	is_template, days_before_move, created_at, updated_at
`

func scanTask(s scanner) (*task.Task, error) {
	var t task.Task

	var description sql.NullString

	var category, status string

	if err := s.Scan(
		&t.ID, &t.ProjectID, &t.Title, &description, &t.AssigneeID, &category,
		&t.Deadline, &status, &t.IsTemplate, &t.DaysBeforeMove, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}

	t.Description = description.String
	t.Category = task.Category(category)
	t.Status = task.Status(status)

	return &t, nil
}

func (s *Store) CreateTask(ctx context.Context, t *task.Task) error {
	query := `
		INSERT INTO tasks (project_id, title, description, assignee_id, category, deadline, status, is_template, days_before_move, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		t.ProjectID,
		t.Title,
		t.Description,
		t.AssigneeID,
		t.Category,
		t.Deadline,
		t.Status,
		t.IsTemplate,
		t.DaysBeforeMove,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating task: %w", err)
	}

	return nil
}

// CreateTasks inserts the batch in one transaction so a template
// generation either lands completely or not at all.
func (s *Store) CreateTasks(ctx context.Context, tasks []*task.Task) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO tasks (project_id, title, description, assignee_id, category, deadline, status, is_template, days_before_move, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	for _, t := range tasks {
		err := tx.QueryRowContext(ctx, query,
			t.ProjectID,
			t.Title,
			t.Description,
			t.AssigneeID,
			t.Category,
			t.Deadline,
			t.Status,
			t.IsTemplate,
			t.DaysBeforeMove,
		).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating task %q: %w", t.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTask(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	query := `SELECT ` + selectTaskColumns + ` FROM tasks WHERE id = $1`

	t, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, task.ErrNotFound
		}

		return nil, fmt.Errorf("getting task: %w", err)
	}

	return t, nil
}

func (s *Store) ListTasks(ctx context.Context, filter task.ListFilter) ([]*task.Task, error) {
	query := `SELECT ` + selectTaskColumns + ` FROM tasks WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.ProjectID != nil {
		query += fmt.Sprintf(" AND project_id = $%d", argIdx)

		args = append(args, *filter.ProjectID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Category != nil {
		query += fmt.Sprintf(" AND category = $%d", argIdx)

		args = append(args, *filter.Category)
		argIdx++
	}

	if filter.AssigneeID != nil {
		query += fmt.Sprintf(" AND assignee_id = $%d", argIdx)

		args = append(args, *filter.AssigneeID)
		argIdx++
	}

	query += " ORDER BY deadline ASC NULLS LAST, created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*task.Task

	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}

		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}

	return tasks, nil
}

func (s *Store) UpdateTask(ctx context.Context, t *task.Task) error {
	query := `
		UPDATE tasks
		SET title = $1, description = $2, assignee_id = $3, category = $4, deadline = $5, status = $6, updated_at = NOW()
		WHERE id = $7
	`

	_, err := s.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		t.AssigneeID,
		t.Category,
		t.Deadline,
		t.Status,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}

	return nil
}

func (s *Store) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	return nil
}
