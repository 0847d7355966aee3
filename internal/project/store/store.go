package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/project"
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

const selectProjectColumns = `
	id, name, moving_date,
	new_street, new_house_number, new_postal_code, new_city,
	current_street, current_house_number, current_postal_code, current_city,
	created_at, updated_at
`

// The current address is flattened into nullable columns; a NULL
// street means no current address was recorded.
func scanProject(s scanner) (*project.Project, error) {
	var p project.Project

	var curStreet, curHouseNumber, curPostalCode, curCity sql.NullString

	if err := s.Scan(
		&p.ID, &p.Name, &p.MovingDate,
		&p.NewAddress.Street, &p.NewAddress.HouseNumber, &p.NewAddress.PostalCode, &p.NewAddress.City,
		&curStreet, &curHouseNumber, &curPostalCode, &curCity,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if curStreet.Valid {
		p.CurrentAddress = &project.Address{
			Street:      curStreet.String,
			HouseNumber: curHouseNumber.String,
			PostalCode:  curPostalCode.String,
			City:        curCity.String,
		}
	}

	return &p, nil
}

func (s *Store) CreateProject(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (name, moving_date, new_street, new_house_number, new_postal_code, new_city, current_street, current_house_number, current_postal_code, current_city, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	var curStreet, curHouseNumber, curPostalCode, curCity *string

	if p.CurrentAddress != nil {
		curStreet = &p.CurrentAddress.Street
		curHouseNumber = &p.CurrentAddress.HouseNumber
		curPostalCode = &p.CurrentAddress.PostalCode
		curCity = &p.CurrentAddress.City
	}

	err := s.db.QueryRowContext(ctx, query,
		p.Name,
		p.MovingDate,
		p.NewAddress.Street,
		p.NewAddress.HouseNumber,
		p.NewAddress.PostalCode,
		p.NewAddress.City,
		curStreet,
		curHouseNumber,
		curPostalCode,
		curCity,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating project: %w", err)
	}

	return nil
}

func (s *Store) GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + selectProjectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, project.ErrNotFound
		}

		return nil, fmt.Errorf("getting project: %w", err)
	}

	return p, nil
}

func (s *Store) ListProjects(ctx context.Context) ([]*project.Project, error) {
	query := `SELECT ` + selectProjectColumns + ` FROM projects ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*project.Project

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}

		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project rows: %w", err)
	}

	return projects, nil
}

func (s *Store) UpdateProject(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects
		SET name = $1, moving_date = $2,
			new_street = $3, new_house_number = $4, new_postal_code = $5, new_city = $6,
			current_street = $7, current_house_number = $8, current_postal_code = $9, current_city = $10,
			updated_at = NOW()
		WHERE id = $11
	`

	var curStreet, curHouseNumber, curPostalCode, curCity *string

	if p.CurrentAddress != nil {
		curStreet = &p.CurrentAddress.Street
		curHouseNumber = &p.CurrentAddress.HouseNumber
		curPostalCode = &p.CurrentAddress.PostalCode
		curCity = &p.CurrentAddress.City
	}

	_, err := s.db.ExecContext(ctx, query,
		p.Name,
		p.MovingDate,
		p.NewAddress.Street,
		p.NewAddress.HouseNumber,
		p.NewAddress.PostalCode,
		p.NewAddress.City,
		curStreet,
		curHouseNumber,
		curPostalCode,
		curCity,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}

	return nil
}

// DeleteProject removes the project and everything hanging off it.
func (s *Store) DeleteProject(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	cleanups := []string{
		`DELETE FROM journal_entries WHERE project_id = $1`,
		`DELETE FROM playbook_notes WHERE project_id = $1`,
		`DELETE FROM tasks WHERE project_id = $1`,
		`DELETE FROM shopping_items WHERE project_id = $1`,
		`DELETE FROM box_items WHERE box_id IN (SELECT b.id FROM boxes b JOIN rooms r ON b.room_id = r.id WHERE r.project_id = $1)`,
		`DELETE FROM boxes WHERE room_id IN (SELECT id FROM rooms WHERE project_id = $1)`,
		`DELETE FROM expenses WHERE project_id = $1`,
		`DELETE FROM rooms WHERE project_id = $1`,
		`DELETE FROM people WHERE project_id = $1`,
		`DELETE FROM projects WHERE id = $1`,
	}

	for _, query := range cleanups {
		if _, err := tx.ExecContext(ctx, query, id); err != nil {
			return fmt.Errorf("deleting project data: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) CreatePerson(ctx context.Context, p *project.Person) error {
	query := `
		INSERT INTO people (project_id, name, color, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, p.ProjectID, p.Name, p.Color).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating person: %w", err)
	}

	return nil
}

func (s *Store) ListPeople(ctx context.Context, projectID uuid.UUID) ([]*project.Person, error) {
	query := `SELECT id, project_id, name, color, created_at FROM people WHERE project_id = $1 ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	defer rows.Close()

	var people []*project.Person

	for rows.Next() {
		var p project.Person

		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Name, &p.Color, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}

		people = append(people, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating person rows: %w", err)
	}

	return people, nil
}

func (s *Store) DeletePerson(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM people WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting person: %w", err)
	}

	return nil
}
