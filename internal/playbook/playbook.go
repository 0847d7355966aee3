package playbook

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies what a journal entry records.
type EventType string

const (
	EventPurchase     EventType = "purchase"
	EventTaskComplete EventType = "task_complete"
	EventExpense      EventType = "expense"
	EventPacking      EventType = "packing"
	EventMilestone    EventType = "milestone"
	EventNote         EventType = "note"
)

// EventCategory is the coarse grouping used by timeline filters.
type EventCategory string

const (
	CategoryAcquisition EventCategory = "acquisition"
	CategoryAdmin       EventCategory = "admin"
	CategoryPacking     EventCategory = "packing"
	CategoryCustom      EventCategory = "custom"
)

// EntityType names the record a journal entry was generated from.
type EntityType string

const (
	EntityShoppingItem EntityType = "shopping_item"
	EntityTask         EntityType = "task"
	EntityExpense      EntityType = "expense"
	EntityBox          EntityType = "box"
)

// JournalEntry is one event on the relocation timeline. Most entries
// are auto generated when something happens elsewhere; milestones and
// notes are written by hand.
type JournalEntry struct {
	ID              uuid.UUID
	ProjectID       uuid.UUID
	Timestamp       time.Time
	EventType       EventType
	EventCategory   EventCategory
	Title           string
	Description     string
	RoomID          *uuid.UUID
	RelatedType     EntityType
	RelatedID       *uuid.UUID
	MonetaryCents   int64
	IsHighlight     bool
	IsAutoGenerated bool
}

// Note is a free-form playbook note. Pinned notes sort before the
// rest.
type Note struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Title     string
	Content   string
	RoomID    *uuid.UUID
	Tags      []string
	IsPinned  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
