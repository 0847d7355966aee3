package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/shopping"
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

const selectItemColumns = `
	id, project_id, name, acquisition_type, category, status, max_price, actual_price,
	room_id, saved_links, marketplace, service, renovation, notes, created_at, updated_at
`

// The variant payload and saved links are stored as JSONB: they are
// read and written whole, never queried field-by-field.
func scanItem(s scanner) (*shopping.Item, error) {
	var item shopping.Item

	var acquisitionType, category, status string

	var notes sql.NullString

	var links, marketplace, service, renovation []byte

	if err := s.Scan(
		&item.ID, &item.ProjectID, &item.Name, &acquisitionType, &category, &status,
		&item.MaxPriceCents, &item.ActualPriceCents, &item.RoomID,
		&links, &marketplace, &service, &renovation,
		&notes, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}

	item.AcquisitionType = shopping.AcquisitionType(acquisitionType)
	item.Category = shopping.Category(category)
	item.Status = shopping.Status(status)
	item.Notes = notes.String

	if len(links) > 0 {
		if err := json.Unmarshal(links, &item.SavedLinks); err != nil {
			return nil, fmt.Errorf("decoding saved links: %w", err)
		}
	}

	if len(marketplace) > 0 {
		if err := json.Unmarshal(marketplace, &item.Marketplace); err != nil {
			return nil, fmt.Errorf("decoding marketplace data: %w", err)
		}
	}

	if len(service) > 0 {
		if err := json.Unmarshal(service, &item.Service); err != nil {
			return nil, fmt.Errorf("decoding service data: %w", err)
		}
	}

	if len(renovation) > 0 {
		if err := json.Unmarshal(renovation, &item.Renovation); err != nil {
			return nil, fmt.Errorf("decoding renovation data: %w", err)
		}
	}

	return &item, nil
}

type payloads struct {
	links, marketplace, service, renovation []byte
}

func encodePayloads(item *shopping.Item) (payloads, error) {
	var p payloads

	var err error

	if p.links, err = json.Marshal(item.SavedLinks); err != nil {
		return p, fmt.Errorf("encoding saved links: %w", err)
	}

	if item.Marketplace != nil {
		if p.marketplace, err = json.Marshal(item.Marketplace); err != nil {
			return p, fmt.Errorf("encoding marketplace data: %w", err)
		}
	}

	if item.Service != nil {
		if p.service, err = json.Marshal(item.Service); err != nil {
			return p, fmt.Errorf("encoding service data: %w", err)
		}
	}

	if item.Renovation != nil {
		if p.renovation, err = json.Marshal(item.Renovation); err != nil {
			return p, fmt.Errorf("encoding renovation data: %w", err)
		}
	}

	return p, nil
}

func (s *Store) CreateItem(ctx context.Context, item *shopping.Item) error {
	p, err := encodePayloads(item)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO shopping_items (project_id, name, acquisition_type, category, status, max_price, actual_price, room_id, saved_links, marketplace, service, renovation, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		item.ProjectID,
		item.Name,
		item.AcquisitionType,
		item.Category,
		item.Status,
		item.MaxPriceCents,
		item.ActualPriceCents,
		item.RoomID,
		p.links,
		p.marketplace,
		p.service,
		p.renovation,
		item.Notes,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating shopping item: %w", err)
	}

	return nil
}

func (s *Store) GetItem(ctx context.Context, id uuid.UUID) (*shopping.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM shopping_items WHERE id = $1`

	item, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shopping.ErrNotFound
		}

		return nil, fmt.Errorf("getting shopping item: %w", err)
	}

	return item, nil
}

func (s *Store) ListItems(ctx context.Context, filter shopping.ListFilter) ([]*shopping.Item, error) {
	query := `SELECT ` + selectItemColumns + ` FROM shopping_items WHERE TRUE`

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

	if filter.AcquisitionType != nil {
		query += fmt.Sprintf(" AND acquisition_type = $%d", argIdx)

		args = append(args, *filter.AcquisitionType)
		argIdx++
	}

	if filter.RoomID != nil {
		query += fmt.Sprintf(" AND room_id = $%d", argIdx)

		args = append(args, *filter.RoomID)
		argIdx++
	}

	query += " ORDER BY created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing shopping items: %w", err)
	}
	defer rows.Close()

	var items []*shopping.Item

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning shopping item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shopping item rows: %w", err)
	}

	return items, nil
}

func (s *Store) UpdateItem(ctx context.Context, item *shopping.Item) error {
	p, err := encodePayloads(item)
	if err != nil {
		return err
	}

	query := `
		UPDATE shopping_items
		SET name = $1, acquisition_type = $2, category = $3, status = $4, max_price = $5, actual_price = $6, room_id = $7, saved_links = $8, marketplace = $9, service = $10, renovation = $11, notes = $12, updated_at = NOW()
		WHERE id = $13
	`

	_, err = s.db.ExecContext(ctx, query,
		item.Name,
		item.AcquisitionType,
		item.Category,
		item.Status,
		item.MaxPriceCents,
		item.ActualPriceCents,
		item.RoomID,
		p.links,
		p.marketplace,
		p.service,
		p.renovation,
		item.Notes,
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating shopping item: %w", err)
	}

	return nil
}

func (s *Store) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM shopping_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting shopping item: %w", err)
	}

	return nil
}
