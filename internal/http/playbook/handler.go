package playbook

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/playbook"
)

type Handler struct {
	svc *playbook.Service
}

func NewHandler(svc *playbook.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/timeline", h.timeline)

	r.Route("/entries", func(r chi.Router) {
		r.Post("/", h.addEntry)
		r.Get("/", h.listEntries)
		r.Delete("/{id}", h.deleteEntry)
		r.Patch("/{id}/highlight", h.toggleHighlight)
	})

	r.Route("/notes", func(r chi.Router) {
		r.Post("/", h.addNote)
		r.Get("/", h.listNotes)
		r.Patch("/{id}", h.updateNote)
		r.Delete("/{id}", h.deleteNote)
		r.Patch("/{id}/pin", h.togglePin)
	})
}

func (h *Handler) timeline(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.URL.Query().Get("project_id"))
	if err != nil {
		http.Error(w, "project_id is required", http.StatusBadRequest)
		return
	}

	days, stats, err := h.svc.Timeline(r.Context(), projectID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toTimelineResponse(days, stats)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type addEntryRequest struct {
	ProjectID     uuid.UUID              `json:"project_id"`
	Timestamp     *time.Time             `json:"timestamp,omitempty"`
	EventType     playbook.EventType     `json:"event_type"`
	EventCategory playbook.EventCategory `json:"event_category"`
	Title         string                 `json:"title"`
	Description   string                 `json:"description,omitempty"`
	RoomID        *uuid.UUID             `json:"room_id,omitempty"`
	MonetaryCents int64                  `json:"monetary_cents,omitempty"`
	IsHighlight   bool                   `json:"is_highlight,omitempty"`
}

func (h *Handler) addEntry(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry := &playbook.JournalEntry{
		ProjectID:     req.ProjectID,
		EventType:     req.EventType,
		EventCategory: req.EventCategory,
		Title:         req.Title,
		Description:   req.Description,
		RoomID:        req.RoomID,
		MonetaryCents: req.MonetaryCents,
		IsHighlight:   req.IsHighlight,
	}

	if req.Timestamp != nil {
		entry.Timestamp = *req.Timestamp
	}

	if err := h.svc.AddEntry(r.Context(), entry); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toEntryResponse(entry)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	filter := playbook.EntryFilter{}

	if s := r.URL.Query().Get("project_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.ProjectID = new(id)
		}
	}

	if s := r.URL.Query().Get("event_type"); s != "" {
		filter.EventType = new(playbook.EventType(s))
	}

	if s := r.URL.Query().Get("category"); s != "" {
		filter.Category = new(playbook.EventCategory(s))
	}

	if s := r.URL.Query().Get("room_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.RoomID = new(id)
		}
	}

	entries, err := h.svc.Entries(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toEntryResponseList(entries)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) toggleHighlight(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	entry, err := h.svc.ToggleHighlight(r.Context(), id)
	if err != nil {
		if errors.Is(err, playbook.ErrEntryNotFound) {
			http.Error(w, "entry not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toEntryResponse(entry)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type addNoteRequest struct {
	ProjectID uuid.UUID  `json:"project_id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	RoomID    *uuid.UUID `json:"room_id,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	IsPinned  bool       `json:"is_pinned,omitempty"`
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	var req addNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	note := &playbook.Note{
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Content:   req.Content,
		RoomID:    req.RoomID,
		Tags:      req.Tags,
		IsPinned:  req.IsPinned,
	}

	if err := h.svc.AddNote(r.Context(), note); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toNoteResponse(note)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.URL.Query().Get("project_id"))
	if err != nil {
		http.Error(w, "project_id is required", http.StatusBadRequest)
		return
	}

	notes, err := h.svc.Notes(r.Context(), projectID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toNoteResponseList(notes)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateNoteRequest struct {
	Title    *string    `json:"title,omitempty"`
	Content  *string    `json:"content,omitempty"`
	RoomID   *uuid.UUID `json:"room_id,omitempty"`
	Tags     []string   `json:"tags,omitempty"`
	IsPinned *bool      `json:"is_pinned,omitempty"`
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	note, err := h.svc.GetNote(r.Context(), id)
	if err != nil {
		if errors.Is(err, playbook.ErrNoteNotFound) {
			http.Error(w, "note not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Title != nil {
		note.Title = *req.Title
	}

	if req.Content != nil {
		note.Content = *req.Content
	}

	if req.RoomID != nil {
		note.RoomID = req.RoomID
	}

	if req.Tags != nil {
		note.Tags = req.Tags
	}

	if req.IsPinned != nil {
		note.IsPinned = *req.IsPinned
	}

	if err := h.svc.UpdateNote(r.Context(), note); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toNoteResponse(note)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteNote(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) togglePin(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	note, err := h.svc.TogglePin(r.Context(), id)
	if err != nil {
		if errors.Is(err, playbook.ErrNoteNotFound) {
			http.Error(w, "note not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toNoteResponse(note)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
