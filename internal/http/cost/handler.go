package cost

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
	"github.com/MrJamesThe3rd/verhuizer/internal/packing"
	"github.com/MrJamesThe3rd/verhuizer/internal/playbook"
	"github.com/MrJamesThe3rd/verhuizer/internal/project"
)

type Handler struct {
	svc         *cost.Service
	projectSvc  *project.Service
	packingSvc  *packing.Service
	playbookSvc *playbook.Service
}

func NewHandler(svc *cost.Service, projectSvc *project.Service, packingSvc *packing.Service, playbookSvc *playbook.Service) *Handler {
	return &Handler{
		svc:         svc,
		projectSvc:  projectSvc,
		packingSvc:  packingSvc,
		playbookSvc: playbookSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/settlements", h.settlements)
	r.Get("/budget", h.budget)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createExpenseRequest struct {
	ProjectID      uuid.UUID     `json:"project_id"`
	Description    string        `json:"description"`
	AmountCents    int64         `json:"amount_cents"`
	PaidByID       uuid.UUID     `json:"paid_by_id"`
	SplitBetween   []uuid.UUID   `json:"split_between"`
	Date           time.Time     `json:"date"`
	Category       cost.Category `json:"category"`
	RoomID         *uuid.UUID    `json:"room_id,omitempty"`
	LinkedSourceID *uuid.UUID    `json:"linked_source_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	expense, err := h.svc.Create(r.Context(), cost.CreateParams{
		ProjectID:      req.ProjectID,
		Description:    req.Description,
		AmountCents:    req.AmountCents,
		PaidByID:       req.PaidByID,
		SplitBetween:   req.SplitBetween,
		Date:           req.Date,
		Category:       req.Category,
		RoomID:         req.RoomID,
		LinkedSourceID: req.LinkedSourceID,
	})
	if err != nil {
		if errors.Is(err, cost.ErrInvalidAmount) || errors.Is(err, cost.ErrEmptySplit) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	if err := h.playbookSvc.LogExpense(r.Context(), expense.ProjectID, expense.Description, expense.AmountCents, expense.RoomID, &expense.ID); err != nil {
		slog.Error("failed to record journal entry", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(expense)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := cost.ListFilter{}

	if s := r.URL.Query().Get("project_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.ProjectID = new(id)
		}
	}

	if s := r.URL.Query().Get("paid_by"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.PaidByID = new(id)
		}
	}

	if s := r.URL.Query().Get("room_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.RoomID = new(id)
		}
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	expenses, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(expenses)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	expense, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, cost.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(expense)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateExpenseRequest struct {
	Description  *string        `json:"description,omitempty"`
	AmountCents  *int64         `json:"amount_cents,omitempty"`
	PaidByID     *uuid.UUID     `json:"paid_by_id,omitempty"`
	SplitBetween []uuid.UUID    `json:"split_between,omitempty"`
	Date         *time.Time     `json:"date,omitempty"`
	Category     *cost.Category `json:"category,omitempty"`
	RoomID       *uuid.UUID     `json:"room_id,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	expense, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, cost.ErrNotFound) {
			http.Error(w, "expense not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Description != nil {
		expense.Description = *req.Description
	}

	if req.AmountCents != nil {
		expense.AmountCents = *req.AmountCents
	}

	if req.PaidByID != nil {
		expense.PaidByID = *req.PaidByID
	}

	if req.SplitBetween != nil {
		expense.SplitBetween = req.SplitBetween
	}

	if req.Date != nil {
		expense.Date = *req.Date
	}

	if req.Category != nil {
		expense.Category = *req.Category
	}

	if req.RoomID != nil {
		expense.RoomID = req.RoomID
	}

	if err := h.svc.Update(r.Context(), expense); err != nil {
		if errors.Is(err, cost.ErrInvalidAmount) || errors.Is(err, cost.ErrEmptySplit) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(expense)); err != nil {
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

func (h *Handler) settlements(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.URL.Query().Get("project_id"))
	if err != nil {
		http.Error(w, "project_id is required", http.StatusBadRequest)
		return
	}

	people, err := h.projectSvc.People(r.Context(), projectID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	personIDs := make([]uuid.UUID, len(people))
	for i, p := range people {
		personIDs[i] = p.ID
	}

	settlements, err := h.svc.Settlements(r.Context(), projectID, personIDs)
	if err != nil {
		if errors.Is(err, cost.ErrUnknownParticipant) || errors.Is(err, cost.ErrEmptySplit) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSettlementResponse(settlements, people)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) budget(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.URL.Query().Get("project_id"))
	if err != nil {
		http.Error(w, "project_id is required", http.StatusBadRequest)
		return
	}

	rooms, err := h.packingSvc.Rooms(r.Context(), projectID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	expenses, err := h.svc.List(r.Context(), cost.ListFilter{ProjectID: new(projectID)})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	allocations := make([]cost.RoomAllocation, len(rooms))
	for i, room := range rooms {
		allocations[i] = cost.RoomAllocation{
			RoomID:         room.ID,
			AllocatedCents: room.AllocatedCents,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBudgetResponse(rooms, allocations, expenses)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
