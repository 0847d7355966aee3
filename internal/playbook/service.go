package playbook

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=playbook
type Repository interface {
	CreateEntry(ctx context.Context, entry *JournalEntry) error
	GetEntry(ctx context.Context, id uuid.UUID) (*JournalEntry, error)
	ListEntries(ctx context.Context, filter EntryFilter) ([]*JournalEntry, error)
	UpdateEntry(ctx context.Context, entry *JournalEntry) error
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	CreateNote(ctx context.Context, note *Note) error
	GetNote(ctx context.Context, id uuid.UUID) (*Note, error)
	ListNotes(ctx context.Context, projectID uuid.UUID) ([]*Note, error)
	UpdateNote(ctx context.Context, note *Note) error
	DeleteNote(ctx context.Context, id uuid.UUID) error
}

type EntryFilter struct {
	ProjectID *uuid.UUID
	EventType *EventType
	Category  *EventCategory
	RoomID    *uuid.UUID
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) AddEntry(ctx context.Context, entry *JournalEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}

	return s.repo.CreateEntry(ctx, entry)
}

func (s *Service) Entries(ctx context.Context, filter EntryFilter) ([]*JournalEntry, error) {
	return s.repo.ListEntries(ctx, filter)
}

// Timeline returns the project's journal grouped by day with its
// stats. Stats always cover the whole journal, even when a filter
// narrows the timeline.
func (s *Service) Timeline(ctx context.Context, projectID uuid.UUID) ([]DayGroup, Stats, error) {
	entries, err := s.repo.ListEntries(ctx, EntryFilter{ProjectID: &projectID})
	if err != nil {
		return nil, Stats{}, fmt.Errorf("listing journal entries: %w", err)
	}

	return GroupEntriesByDate(entries), CalculateStats(entries), nil
}

func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteEntry(ctx, id)
}

// ToggleHighlight flips the highlight flag on an entry.
func (s *Service) ToggleHighlight(ctx context.Context, id uuid.UUID) (*JournalEntry, error) {
	entry, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.IsHighlight = !entry.IsHighlight
	if err := s.repo.UpdateEntry(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// LogPurchase records a completed acquisition on the timeline.
func (s *Service) LogPurchase(ctx context.Context, projectID uuid.UUID, itemName string, priceCents int64, roomID, itemID *uuid.UUID) error {
	return s.AddEntry(ctx, &JournalEntry{
		ProjectID:       projectID,
		EventType:       EventPurchase,
		EventCategory:   CategoryAcquisition,
		Title:           fmt.Sprintf("%s gekocht", itemName),
		RoomID:          roomID,
		RelatedType:     EntityShoppingItem,
		RelatedID:       itemID,
		MonetaryCents:   priceCents,
		IsAutoGenerated: true,
	})
}

// LogTaskComplete records a finished task on the timeline.
func (s *Service) LogTaskComplete(ctx context.Context, projectID uuid.UUID, taskTitle string, taskID *uuid.UUID) error {
	return s.AddEntry(ctx, &JournalEntry{
		ProjectID:       projectID,
		EventType:       EventTaskComplete,
		EventCategory:   CategoryAdmin,
		Title:           taskTitle,
		RelatedType:     EntityTask,
		RelatedID:       taskID,
		IsAutoGenerated: true,
	})
}

// LogExpense records a booked expense on the timeline.
func (s *Service) LogExpense(ctx context.Context, projectID uuid.UUID, description string, amountCents int64, roomID, expenseID *uuid.UUID) error {
	return s.AddEntry(ctx, &JournalEntry{
		ProjectID:       projectID,
		EventType:       EventExpense,
		EventCategory:   CategoryAcquisition,
		Title:           description,
		RoomID:          roomID,
		RelatedType:     EntityExpense,
		RelatedID:       expenseID,
		MonetaryCents:   amountCents,
		IsAutoGenerated: true,
	})
}

// LogPacking records a packed box on the timeline.
func (s *Service) LogPacking(ctx context.Context, projectID uuid.UUID, boxLabel string, roomID, boxID *uuid.UUID) error {
	return s.AddEntry(ctx, &JournalEntry{
		ProjectID:       projectID,
		EventType:       EventPacking,
		EventCategory:   CategoryPacking,
		Title:           fmt.Sprintf("%s ingepakt", boxLabel),
		RoomID:          roomID,
		RelatedType:     EntityBox,
		RelatedID:       boxID,
		IsAutoGenerated: true,
	})
}

// LogMilestone records a hand-written milestone, highlighted by
// default.
func (s *Service) LogMilestone(ctx context.Context, projectID uuid.UUID, title, description string) error {
	return s.AddEntry(ctx, &JournalEntry{
		ProjectID:     projectID,
		EventType:     EventMilestone,
		EventCategory: CategoryCustom,
		Title:         title,
		Description:   description,
		IsHighlight:   true,
	})
}

func (s *Service) AddNote(ctx context.Context, note *Note) error {
	return s.repo.CreateNote(ctx, note)
}

func (s *Service) GetNote(ctx context.Context, id uuid.UUID) (*Note, error) {
	return s.repo.GetNote(ctx, id)
}

// Notes returns the project's notes, pinned first then newest first.
func (s *Service) Notes(ctx context.Context, projectID uuid.UUID) ([]*Note, error) {
	notes, err := s.repo.ListNotes(ctx, projectID)
	if err != nil {
		return nil, err
	}

	SortNotes(notes)

	return notes, nil
}

func (s *Service) UpdateNote(ctx context.Context, note *Note) error {
	return s.repo.UpdateNote(ctx, note)
}

func (s *Service) DeleteNote(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteNote(ctx, id)
}

// TogglePin flips a note's pin flag.
func (s *Service) TogglePin(ctx context.Context, id uuid.UUID) (*Note, error) {
	note, err := s.repo.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}

	note.IsPinned = !note.IsPinned
	if err := s.repo.UpdateNote(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}
