package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/packing"
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

func scanRoom(s scanner) (*packing.Room, error) {
	var room packing.Room

	var roomType string

	var widthMm, lengthMm, heightMm sql.NullInt64

	if err := s.Scan(
		&room.ID, &room.ProjectID, &room.Name, &roomType, &room.Order,
		&widthMm, &lengthMm, &heightMm, &room.AllocatedCents, &room.CreatedAt,
	); err != nil {
		return nil, err
	}

	room.RoomType = packing.RoomType(roomType)

	if widthMm.Valid && lengthMm.Valid {
		room.Dimensions = &packing.Dimensions{
			WidthMm:  int(widthMm.Int64),
			LengthMm: int(lengthMm.Int64),
			HeightMm: int(heightMm.Int64),
		}
	}

	return &room, nil
}

const selectRoomColumns = `
	id, project_id, name, room_type, sort_order, width_mm, length_mm, height_mm, budget_cents, created_at
`

func (s *Store) CreateRoom(ctx context.Context, room *packing.Room) error {
	query := `
		INSERT INTO rooms (project_id, name, room_type, sort_order, width_mm, length_mm, height_mm, budget_cents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	var widthMm, lengthMm, heightMm *int
	if room.Dimensions != nil {
		widthMm = &room.Dimensions.WidthMm
		lengthMm = &room.Dimensions.LengthMm
		heightMm = &room.Dimensions.HeightMm
	}

	err := s.db.QueryRowContext(ctx, query,
		room.ProjectID,
		room.Name,
		room.RoomType,
		room.Order,
		widthMm,
		lengthMm,
		heightMm,
		room.AllocatedCents,
	).Scan(&room.ID, &room.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating room: %w", err)
	}

	return nil
}

func (s *Store) GetRoom(ctx context.Context, id uuid.UUID) (*packing.Room, error) {
	query := `SELECT ` + selectRoomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, packing.ErrRoomNotFound
		}

		return nil, fmt.Errorf("getting room: %w", err)
	}

	return room, nil
}

func (s *Store) ListRooms(ctx context.Context, projectID uuid.UUID) ([]*packing.Room, error) {
	query := `SELECT ` + selectRoomColumns + ` FROM rooms WHERE project_id = $1 ORDER BY sort_order ASC`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*packing.Room

	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning room: %w", err)
		}

		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating room rows: %w", err)
	}

	return rooms, nil
}

func (s *Store) UpdateRoom(ctx context.Context, room *packing.Room) error {
	query := `
		UPDATE rooms
		SET name = $1, room_type = $2, sort_order = $3, budget_cents = $4
		WHERE id = $5
	`

	_, err := s.db.ExecContext(ctx, query,
		room.Name,
		room.RoomType,
		room.Order,
		room.AllocatedCents,
		room.ID,
	)
	if err != nil {
		return fmt.Errorf("updating room: %w", err)
	}

	return nil
}

// DeleteRoom cascades to the room's boxes and their items.
func (s *Store) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM box_items WHERE box_id IN (SELECT id FROM boxes WHERE room_id = $1)`, id); err != nil {
		return fmt.Errorf("deleting box items: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM boxes WHERE room_id = $1`, id); err != nil {
		return fmt.Errorf("deleting boxes: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting room: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing room delete: %w", err)
	}

	return nil
}

const selectBoxColumns = `
	id, room_id, number, label, is_fragile, priority, status, created_at
`

func scanBox(s scanner) (*packing.Box, error) {
	var box packing.Box

	var label sql.NullString

	var priority, status string

	if err := s.Scan(
		&box.ID, &box.RoomID, &box.Number, &label, &box.IsFragile, &priority, &status, &box.CreatedAt,
	); err != nil {
		return nil, err
	}

	box.Label = label.String
	box.Priority = packing.BoxPriority(priority)
	box.Status = packing.BoxStatus(status)

	return &box, nil
}

func (s *Store) CreateBox(ctx context.Context, box *packing.Box) error {
	query := `
		INSERT INTO boxes (room_id, number, label, is_fragile, priority, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		box.RoomID,
		box.Number,
		box.Label,
		box.IsFragile,
		box.Priority,
		box.Status,
	).Scan(&box.ID, &box.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating box: %w", err)
	}

	return nil
}

func (s *Store) GetBox(ctx context.Context, id uuid.UUID) (*packing.Box, error) {
	query := `SELECT ` + selectBoxColumns + ` FROM boxes WHERE id = $1`

	box, err := scanBox(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, packing.ErrBoxNotFound
		}

		return nil, fmt.Errorf("getting box: %w", err)
	}

	return box, nil
}

func (s *Store) ListBoxes(ctx context.Context, roomID uuid.UUID) ([]*packing.Box, error) {
	query := `SELECT ` + selectBoxColumns + ` FROM boxes WHERE room_id = $1 ORDER BY number ASC`

	rows, err := s.db.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("listing boxes: %w", err)
	}
	defer rows.Close()

	var boxes []*packing.Box

	for rows.Next() {
		box, err := scanBox(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning box: %w", err)
		}

		boxes = append(boxes, box)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating box rows: %w", err)
	}

	return boxes, nil
}

func (s *Store) MaxBoxNumber(ctx context.Context, roomID uuid.UUID) (int, error) {
	query := `SELECT COALESCE(MAX(number), 0) FROM boxes WHERE room_id = $1`

	var maxNumber int
	if err := s.db.QueryRowContext(ctx, query, roomID).Scan(&maxNumber); err != nil {
		return 0, fmt.Errorf("reading box counter: %w", err)
	}

	return maxNumber, nil
}

func (s *Store) UpdateBox(ctx context.Context, box *packing.Box) error {
	query := `
		UPDATE boxes
		SET label = $1, is_fragile = $2, priority = $3, status = $4
		WHERE id = $5
	`

	_, err := s.db.ExecContext(ctx, query,
		box.Label,
		box.IsFragile,
		box.Priority,
		box.Status,
		box.ID,
	)
	if err != nil {
		return fmt.Errorf("updating box: %w", err)
	}

	return nil
}

func (s *Store) DeleteBox(ctx context.Context, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM box_items WHERE box_id = $1`, id); err != nil {
		return fmt.Errorf("deleting box items: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM boxes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting box: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing box delete: %w", err)
	}

	return nil
}

func (s *Store) CreateBoxItem(ctx context.Context, item *packing.BoxItem) error {
	query := `
		INSERT INTO box_items (box_id, description, sort_order, is_fragile, quantity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		item.BoxID,
		item.Description,
		item.Order,
		item.IsFragile,
		item.Quantity,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("creating box item: %w", err)
	}

	return nil
}

func (s *Store) ListBoxItems(ctx context.Context, boxID uuid.UUID) ([]*packing.BoxItem, error) {
	query := `
		SELECT id, box_id, description, sort_order, is_fragile, quantity
		FROM box_items
		WHERE box_id = $1
		ORDER BY sort_order ASC
	`

	rows, err := s.db.QueryContext(ctx, query, boxID)
	if err != nil {
		return nil, fmt.Errorf("listing box items: %w", err)
	}
	defer rows.Close()

	var items []*packing.BoxItem

	for rows.Next() {
		var item packing.BoxItem
		if err := rows.Scan(&item.ID, &item.BoxID, &item.Description, &item.Order, &item.IsFragile, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scanning box item: %w", err)
		}

		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating box item rows: %w", err)
	}

	return items, nil
}

func (s *Store) CountBoxItems(ctx context.Context, boxID uuid.UUID) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM box_items WHERE box_id = $1`, boxID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting box items: %w", err)
	}

	return count, nil
}

func (s *Store) DeleteBoxItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM box_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting box item: %w", err)
	}

	return nil
}
