package task

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/playbook"
	"github.com/MrJamesThe3rd/verhuizer/internal/task"
)

// defaultUpcomingWindowDays bounds the upcoming view when the client
// does not pass one.
const defaultUpcomingWindowDays = 14

type Handler struct {
	svc         *task.Service
	playbookSvc *playbook.Service
}

func NewHandler(svc *task.Service, playbookSvc *playbook.Service) *Handler {
	return &Handler{
		svc:         svc,
		playbookSvc: playbookSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/upcoming", h.upcoming)
	r.Get("/grouped", h.grouped)
	r.Post("/generate", h.generate)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Patch("/{id}/status", h.updateStatus)
	r.Delete("/{id}", h.delete)
}

type createTaskRequest struct {
	ProjectID   uuid.UUID     `json:"project_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	AssigneeID  *uuid.UUID    `json:"assignee_id,omitempty"`
	Category    task.Category `json:"category"`
	Deadline    *time.Time    `json:"deadline,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Create(r.Context(), task.CreateParams{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		AssigneeID:  req.AssigneeID,
		Category:    req.Category,
		Deadline:    req.Deadline,
	})
	if err != nil {
		if errors.Is(err, task.ErrEmptyTitle) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := task.ListFilter{}

	if s := r.URL.Query().Get("project_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.ProjectID = new(id)
		}
	}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(task.Status(s))
	}

	if s := r.URL.Query().Get("category"); s != "" {
		filter.Category = new(task.Category(s))
	}

	if s := r.URL.Query().Get("assignee_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.AssigneeID = new(id)
		}
	}

	tasks, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(tasks)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) upcoming(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.URL.Query().Get("project_id"))
	if err != nil {
		http.Error(w, "project_id is required", http.StatusBadRequest)
		return
	}

	windowDays := defaultUpcomingWindowDays

	if s := r.URL.Query().Get("window_days"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			windowDays = n
		}
	}

	tasks, err := h.svc.Upcoming(r.Context(), projectID, windowDays, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(tasks)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) grouped(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.URL.Query().Get("project_id"))
	if err != nil {
		http.Error(w, "project_id is required", http.StatusBadRequest)
		return
	}

	groups, err := h.svc.Grouped(r.Context(), projectID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toGroupedResponse(groups)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type generateRequest struct {
	ProjectID  uuid.UUID `json:"project_id"`
	MovingDate time.Time `json:"moving_date"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tasks, err := h.svc.Generate(r.Context(), req.ProjectID, req.MovingDate, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponseList(tasks)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateTaskRequest struct {
	Title       *string        `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	AssigneeID  *uuid.UUID     `json:"assignee_id,omitempty"`
	Category    *task.Category `json:"category,omitempty"`
	Deadline    *time.Time     `json:"deadline,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Title != nil {
		t.Title = *req.Title
	}

	if req.Description != nil {
		t.Description = *req.Description
	}

	if req.AssigneeID != nil {
		t.AssigneeID = req.AssigneeID
	}

	if req.Category != nil {
		t.Category = *req.Category
	}

	if req.Deadline != nil {
		t.Deadline = req.Deadline
	}

	if err := h.svc.Update(r.Context(), t); err != nil {
		if errors.Is(err, task.ErrEmptyTitle) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateStatusRequest struct {
	Status task.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.svc.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			http.Error(w, "task not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	if t.Status == task.StatusDone {
		if err := h.playbookSvc.LogTaskComplete(r.Context(), t.ProjectID, t.Title, &t.ID); err != nil {
			slog.Error("failed to record journal entry", "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(t)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
