package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/playbook"
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

const selectEntryColumns = `
	id, project_id, timestamp, event_type, event_category, title, description,
	room_id, related_type, related_id, monetary_value, is_highlight, is_auto_generated
`

func scanEntry(s scanner) (*playbook.JournalEntry, error) {
	var entry playbook.JournalEntry

	var eventType, eventCategory string

	var description, relatedType sql.NullString

	if err := s.Scan(
		&entry.ID, &entry.ProjectID, &entry.Timestamp, &eventType, &eventCategory,
		&entry.Title, &description, &entry.RoomID, &relatedType, &entry.RelatedID,
		&entry.MonetaryCents, &entry.IsHighlight, &entry.IsAutoGenerated,
	); err != nil {
		return nil, err
	}

	entry.EventType = playbook.EventType(eventType)
	entry.EventCategory = playbook.EventCategory(eventCategory)
	entry.Description = description.String
	entry.RelatedType = playbook.EntityType(relatedType.String)

	return &entry, nil
}

func (s *Store) CreateEntry(ctx context.Context, entry *playbook.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (project_id, timestamp, event_type, event_category, title, description, room_id, related_type, related_id, monetary_value, is_highlight, is_auto_generated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		entry.ProjectID,
		entry.Timestamp,
		entry.EventType,
		entry.EventCategory,
		entry.Title,
		entry.Description,
		entry.RoomID,
		entry.RelatedType,
		entry.RelatedID,
		entry.MonetaryCents,
		entry.IsHighlight,
		entry.IsAutoGenerated,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("creating journal entry: %w", err)
	}

	return nil
}

func (s *Store) GetEntry(ctx context.Context, id uuid.UUID) (*playbook.JournalEntry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM journal_entries WHERE id = $1`

	entry, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, playbook.ErrEntryNotFound
		}

		return nil, fmt.Errorf("getting journal entry: %w", err)
	}

	return entry, nil
}

func (s *Store) ListEntries(ctx context.Context, filter playbook.EntryFilter) ([]*playbook.JournalEntry, error) {
	query := `SELECT ` + selectEntryColumns + ` FROM journal_entries WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.ProjectID != nil {
		query += fmt.Sprintf(" AND project_id = $%d", argIdx)

		args = append(args, *filter.ProjectID)
		argIdx++
	}

	if filter.EventType != nil {
		query += fmt.Sprintf(" AND event_type = $%d", argIdx)

		args = append(args, *filter.EventType)
		argIdx++
	}

	if filter.Category != nil {
		query += fmt.Sprintf(" AND event_category = $%d", argIdx)

		args = append(args, *filter.Category)
		argIdx++
	}

	if filter.RoomID != nil {
		query += fmt.Sprintf(" AND room_id = $%d", argIdx)

		args = append(args, *filter.RoomID)
		argIdx++
	}

	query += " ORDER BY timestamp DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	defer rows.Close()

	var entries []*playbook.JournalEntry

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal entry rows: %w", err)
	}

	return entries, nil
}

func (s *Store) UpdateEntry(ctx context.Context, entry *playbook.JournalEntry) error {
	query := `
		UPDATE journal_entries
		SET title = $1, description = $2, is_highlight = $3
		WHERE id = $4
	`

	_, err := s.db.ExecContext(ctx, query, entry.Title, entry.Description, entry.IsHighlight, entry.ID)
	if err != nil {
		return fmt.Errorf("updating journal entry: %w", err)
	}

	return nil
}

func (s *Store) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting journal entry: %w", err)
	}

	return nil
}

const selectNoteColumns = `
	id, project_id, title, content, room_id, tags, is_pinned, created_at, updated_at
`

func scanNote(s scanner) (*playbook.Note, error) {
	var note playbook.Note

	var tags []byte

	if err := s.Scan(
		&note.ID, &note.ProjectID, &note.Title, &note.Content, &note.RoomID,
		&tags, &note.IsPinned, &note.CreatedAt, &note.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &note.Tags); err != nil {
			return nil, fmt.Errorf("decoding note tags: %w", err)
		}
	}

	return &note, nil
}

func (s *Store) CreateNote(ctx context.Context, note *playbook.Note) error {
	tags, err := json.Marshal(note.Tags)
	if err != nil {
		return fmt.Errorf("encoding note tags: %w", err)
	}

	query := `
		INSERT INTO playbook_notes (project_id, title, content, room_id, tags, is_pinned, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		note.ProjectID,
		note.Title,
		note.Content,
		note.RoomID,
		tags,
		note.IsPinned,
	).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating note: %w", err)
	}

	return nil
}

func (s *Store) GetNote(ctx context.Context, id uuid.UUID) (*playbook.Note, error) {
	query := `SELECT ` + selectNoteColumns + ` FROM playbook_notes WHERE id = $1`

	note, err := scanNote(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, playbook.ErrNoteNotFound
		}

		return nil, fmt.Errorf("getting note: %w", err)
	}

	return note, nil
}

func (s *Store) ListNotes(ctx context.Context, projectID uuid.UUID) ([]*playbook.Note, error) {
	query := `SELECT ` + selectNoteColumns + ` FROM playbook_notes WHERE project_id = $1 ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var notes []*playbook.Note

	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}

		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating note rows: %w", err)
	}

	return notes, nil
}

func (s *Store) UpdateNote(ctx context.Context, note *playbook.Note) error {
	tags, err := json.Marshal(note.Tags)
	if err != nil {
		return fmt.Errorf("encoding note tags: %w", err)
	}

	query := `
		UPDATE playbook_notes
		SET title = $1, content = $2, room_id = $3, tags = $4, is_pinned = $5, updated_at = NOW()
		WHERE id = $6
	`

	_, err = s.db.ExecContext(ctx, query,
		note.Title,
		note.Content,
		note.RoomID,
		tags,
		note.IsPinned,
		note.ID,
	)
	if err != nil {
		return fmt.Errorf("updating note: %w", err)
	}

	return nil
}

func (s *Store) DeleteNote(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM playbook_notes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}

	return nil
}
