package playbook

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/playbook"
)

type entryResponse struct {
	ID              uuid.UUID              `json:"id"`
	ProjectID       uuid.UUID              `json:"project_id"`
	Timestamp       time.Time              `json:"timestamp"`
	EventType       playbook.EventType     `json:"event_type"`
	EventCategory   playbook.EventCategory `json:"event_category"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description,omitempty"`
	RoomID          *uuid.UUID             `json:"room_id,omitempty"`
	RelatedType     playbook.EntityType    `json:"related_type,omitempty"`
	RelatedID       *uuid.UUID             `json:"related_id,omitempty"`
	MonetaryCents   int64                  `json:"monetary_cents,omitempty"`
	IsHighlight     bool                   `json:"is_highlight"`
	IsAutoGenerated bool                   `json:"is_auto_generated"`
}

func toEntryResponse(entry *playbook.JournalEntry) entryResponse {
	return entryResponse{
		ID:              entry.ID,
		ProjectID:       entry.ProjectID,
		Timestamp:       entry.Timestamp,
		EventType:       entry.EventType,
		EventCategory:   entry.EventCategory,
		Title:           entry.Title,
		Description:     entry.Description,
		RoomID:          entry.RoomID,
		RelatedType:     entry.RelatedType,
		RelatedID:       entry.RelatedID,
		MonetaryCents:   entry.MonetaryCents,
		IsHighlight:     entry.IsHighlight,
		IsAutoGenerated: entry.IsAutoGenerated,
	}
}

func toEntryResponseList(entries []*playbook.JournalEntry) []entryResponse {
	resp := make([]entryResponse, len(entries))
	for i, entry := range entries {
		resp[i] = toEntryResponse(entry)
	}

	return resp
}

type dayGroupDTO struct {
	Date    time.Time       `json:"date"`
	Entries []entryResponse `json:"entries"`
}

type timelineResponse struct {
	Days            []dayGroupDTO `json:"days"`
	Purchases       int           `json:"purchases"`
	TasksCompleted  int           `json:"tasks_completed"`
	TotalSpentCents int64         `json:"total_spent_cents"`
	Highlights      int           `json:"highlights"`
}

func toTimelineResponse(days []playbook.DayGroup, stats playbook.Stats) timelineResponse {
	dtos := make([]dayGroupDTO, len(days))
	for i, day := range days {
		dtos[i] = dayGroupDTO{
			Date:    day.Date,
			Entries: toEntryResponseList(day.Entries),
		}
	}

	return timelineResponse{
		Days:            dtos,
		Purchases:       stats.Purchases,
		TasksCompleted:  stats.TasksCompleted,
		TotalSpentCents: stats.TotalSpentCents,
		Highlights:      stats.Highlights,
	}
}

type noteResponse struct {
	ID        uuid.UUID  `json:"id"`
	ProjectID uuid.UUID  `json:"project_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	RoomID    *uuid.UUID `json:"room_id,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	IsPinned  bool       `json:"is_pinned"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func toNoteResponse(note *playbook.Note) noteResponse {
	return noteResponse{
		ID:        note.ID,
		ProjectID: note.ProjectID,
		Title:     note.Title,
		Content:   note.Content,
		RoomID:    note.RoomID,
		Tags:      note.Tags,
		IsPinned:  note.IsPinned,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func toNoteResponseList(notes []*playbook.Note) []noteResponse {
	resp := make([]noteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}

	return resp
}
