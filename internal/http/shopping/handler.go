package shopping

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/playbook"
	"github.com/MrJamesThe3rd/verhuizer/internal/shopping"
)

type Handler struct {
	svc         *shopping.Service
	playbookSvc *playbook.Service
}

func NewHandler(svc *shopping.Service, playbookSvc *playbook.Service) *Handler {
	return &Handler{
		svc:         svc,
		playbookSvc: playbookSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/board", h.board)
	r.Get("/stats", h.stats)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}/status", h.updateStatus)
	r.Patch("/{id}/negotiation", h.setNegotiation)
	r.Post("/{id}/negotiation/advance", h.advanceNegotiation)
	r.Post("/{id}/links", h.addLink)
	r.Delete("/{id}/links", h.removeLink)
}

type createItemRequest struct {
	ProjectID       uuid.UUID                `json:"project_id"`
	Name            string                   `json:"name"`
	AcquisitionType shopping.AcquisitionType `json:"acquisition_type"`
	Category        shopping.Category        `json:"category"`
	MaxPriceCents   int64                    `json:"max_price_cents"`
	RoomID          *uuid.UUID               `json:"room_id,omitempty"`
	Notes           string                   `json:"notes,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.Create(r.Context(), shopping.CreateParams{
		ProjectID:       req.ProjectID,
		Name:            req.Name,
		AcquisitionType: req.AcquisitionType,
		Category:        req.Category,
		MaxPriceCents:   req.MaxPriceCents,
		RoomID:          req.RoomID,
		Notes:           req.Notes,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(item)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := shopping.ListFilter{}

	if s := r.URL.Query().Get("project_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.ProjectID = new(id)
		}
	}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(shopping.Status(s))
	}

	if s := r.URL.Query().Get("category"); s != "" {
		filter.Category = new(shopping.Category(s))
	}

	if s := r.URL.Query().Get("acquisition_type"); s != "" {
		filter.AcquisitionType = new(shopping.AcquisitionType(s))
	}

	if s := r.URL.Query().Get("room_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.RoomID = new(id)
		}
	}

	items, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(items)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) board(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.URL.Query().Get("project_id"))
	if err != nil {
		http.Error(w, "project_id is required", http.StatusBadRequest)
		return
	}

	columns, stats, err := h.svc.Board(r.Context(), projectID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBoardResponse(columns, stats)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.URL.Query().Get("project_id"))
	if err != nil {
		http.Error(w, "project_id is required", http.StatusBadRequest)
		return
	}

	items, err := h.svc.List(r.Context(), shopping.ListFilter{ProjectID: &projectID})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toStatsResponse(shopping.ListStats(items))); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, shopping.ErrNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(item)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateItemRequest struct {
	Name             *string            `json:"name,omitempty"`
	Category         *shopping.Category `json:"category,omitempty"`
	MaxPriceCents    *int64             `json:"max_price_cents,omitempty"`
	ActualPriceCents *int64             `json:"actual_price_cents,omitempty"`
	RoomID           *uuid.UUID         `json:"room_id,omitempty"`
	Notes            *string            `json:"notes,omitempty"`
	Marketplace      *marketplaceDTO    `json:"marketplace,omitempty"`
	Service          *serviceDTO        `json:"service,omitempty"`
	Renovation       *renovationDTO     `json:"renovation,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, shopping.ErrNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}

	if req.Category != nil {
		item.Category = *req.Category
	}

	if req.MaxPriceCents != nil {
		item.MaxPriceCents = *req.MaxPriceCents
	}

	if req.ActualPriceCents != nil {
		item.ActualPriceCents = *req.ActualPriceCents
	}

	if req.RoomID != nil {
		item.RoomID = req.RoomID
	}

	if req.Notes != nil {
		item.Notes = *req.Notes
	}

	if req.Marketplace != nil {
		item.Marketplace = toMarketplaceData(req.Marketplace)
	}

	if req.Service != nil {
		item.Service = toServiceData(req.Service)
	}

	if req.Renovation != nil {
		item.Renovation = toRenovationData(req.Renovation)
	}

	if err := h.svc.Update(r.Context(), item); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(item)); err != nil {
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

type updateStatusRequest struct {
	Status shopping.Status `json:"status"`
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

	item, err := h.svc.SetStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, shopping.ErrNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	if item.Status == shopping.StatusBought {
		if err := h.playbookSvc.LogPurchase(r.Context(), item.ProjectID, item.Name, item.FinalPrice(), item.RoomID, &item.ID); err != nil {
			slog.Error("failed to record journal entry", "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(item)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type setNegotiationRequest struct {
	Status shopping.NegotiationStatus `json:"status"`
}

func (h *Handler) setNegotiation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req setNegotiationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.SetNegotiationStatus(r.Context(), id, req.Status)
	if err != nil {
		writeNegotiationError(w, err)
		return
	}

	h.logIfWon(r.Context(), item)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(item)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) advanceNegotiation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := h.svc.AdvanceNegotiation(r.Context(), id)
	if err != nil {
		writeNegotiationError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(item)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// logIfWon records a purchase journal entry when a negotiation closed
// with a win.
func (h *Handler) logIfWon(ctx context.Context, item *shopping.Item) {
	if item.Marketplace == nil || item.Marketplace.NegotiationStatus != shopping.NegotiationWon {
		return
	}

	if err := h.playbookSvc.LogPurchase(ctx, item.ProjectID, item.Name, item.FinalPrice(), item.RoomID, &item.ID); err != nil {
		slog.Error("failed to record journal entry", "error", err)
	}
}

func writeNegotiationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shopping.ErrNotFound):
		http.Error(w, "item not found", http.StatusNotFound)
	case errors.Is(err, shopping.ErrNotMarketplace), errors.Is(err, shopping.ErrNoNextStatus):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type addLinkRequest struct {
	URL        string `json:"url"`
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
}

func (h *Handler) addLink(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req addLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.AddLink(r.Context(), id, shopping.SavedLink{
		URL:        req.URL,
		Title:      req.Title,
		PriceCents: req.PriceCents,
	}, time.Now())
	if err != nil {
		if errors.Is(err, shopping.ErrNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(item)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type removeLinkRequest struct {
	URL string `json:"url"`
}

func (h *Handler) removeLink(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req removeLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.RemoveLink(r.Context(), id, req.URL)
	if err != nil {
		if errors.Is(err, shopping.ErrNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(item)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
