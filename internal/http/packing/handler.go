package packing

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/packing"
	"github.com/MrJamesThe3rd/verhuizer/internal/playbook"
)

type Handler struct {
	svc         *packing.Service
	playbookSvc *playbook.Service
}

func NewHandler(svc *packing.Service, playbookSvc *playbook.Service) *Handler {
	return &Handler{
		svc:         svc,
		playbookSvc: playbookSvc,
	}
}

// Routes registers the room, box and box item resources. Boxes and
// items get their own top level routes because they are addressed by
// id across rooms.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/rooms", func(r chi.Router) {
		r.Post("/", h.createRoom)
		r.Get("/", h.listRooms)
		r.Get("/{id}", h.getRoom)
		r.Patch("/{id}", h.updateRoom)
		r.Delete("/{id}", h.deleteRoom)
		r.Get("/{id}/boxes", h.listBoxes)
		r.Post("/{id}/boxes", h.createBox)
	})

	r.Route("/boxes", func(r chi.Router) {
		r.Patch("/{id}/status", h.updateBoxStatus)
		r.Delete("/{id}", h.deleteBox)
		r.Get("/{id}/items", h.listItems)
		r.Post("/{id}/items", h.addItem)
		r.Delete("/{id}/items/{itemID}", h.deleteItem)
	})
}

type dimensionsDTO struct {
	WidthMm  int `json:"width_mm"`
	LengthMm int `json:"length_mm"`
	HeightMm int `json:"height_mm"`
}

type createRoomRequest struct {
	ProjectID      uuid.UUID        `json:"project_id"`
	Name           string           `json:"name"`
	RoomType       packing.RoomType `json:"room_type"`
	Dimensions     *dimensionsDTO   `json:"dimensions,omitempty"`
	AllocatedCents int64            `json:"allocated_cents"`
}

func (h *Handler) createRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := packing.CreateRoomParams{
		ProjectID:      req.ProjectID,
		Name:           req.Name,
		RoomType:       req.RoomType,
		AllocatedCents: req.AllocatedCents,
	}

	if req.Dimensions != nil {
		params.Dimensions = &packing.Dimensions{
			WidthMm:  req.Dimensions.WidthMm,
			LengthMm: req.Dimensions.LengthMm,
			HeightMm: req.Dimensions.HeightMm,
		}
	}

	room, err := h.svc.CreateRoom(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toRoomResponse(room)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listRooms(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(r.URL.Query().Get("project_id"))
	if err != nil {
		http.Error(w, "project_id is required", http.StatusBadRequest)
		return
	}

	rooms, err := h.svc.Rooms(r.Context(), projectID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toRoomResponseList(rooms)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) getRoom(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	room, err := h.svc.GetRoom(r.Context(), id)
	if err != nil {
		if errors.Is(err, packing.ErrRoomNotFound) {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toRoomResponse(room)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateRoomRequest struct {
	Name           *string           `json:"name,omitempty"`
	RoomType       *packing.RoomType `json:"room_type,omitempty"`
	Dimensions     *dimensionsDTO    `json:"dimensions,omitempty"`
	AllocatedCents *int64            `json:"allocated_cents,omitempty"`
}

func (h *Handler) updateRoom(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	room, err := h.svc.GetRoom(r.Context(), id)
	if err != nil {
		if errors.Is(err, packing.ErrRoomNotFound) {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		room.Name = *req.Name
	}

	if req.RoomType != nil {
		room.RoomType = *req.RoomType
	}

	if req.Dimensions != nil {
		room.Dimensions = &packing.Dimensions{
			WidthMm:  req.Dimensions.WidthMm,
			LengthMm: req.Dimensions.LengthMm,
			HeightMm: req.Dimensions.HeightMm,
		}
	}

	if req.AllocatedCents != nil {
		room.AllocatedCents = *req.AllocatedCents
	}

	if err := h.svc.UpdateRoom(r.Context(), room); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toRoomResponse(room)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deleteRoom(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteRoom(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createBoxRequest struct {
	Label     string              `json:"label"`
	IsFragile bool                `json:"is_fragile"`
	Priority  packing.BoxPriority `json:"priority"`
}

func (h *Handler) createBox(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req createBoxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	box, err := h.svc.CreateBox(r.Context(), packing.CreateBoxParams{
		RoomID:    roomID,
		Label:     req.Label,
		IsFragile: req.IsFragile,
		Priority:  req.Priority,
	})
	if err != nil {
		if errors.Is(err, packing.ErrRoomNotFound) {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toBoxResponse(box)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listBoxes(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	boxes, err := h.svc.Boxes(r.Context(), roomID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBoxResponseList(boxes)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateBoxStatusRequest struct {
	Status packing.BoxStatus `json:"status"`
}

func (h *Handler) updateBoxStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateBoxStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	box, err := h.svc.SetBoxStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, packing.ErrBoxNotFound) {
			http.Error(w, "box not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	if box.Status == packing.BoxStatusPacked {
		if room, err := h.svc.GetRoom(r.Context(), box.RoomID); err == nil {
			label := packing.BoxCode(room.Name, box.Number)
			if err := h.playbookSvc.LogPacking(r.Context(), room.ProjectID, label, &box.RoomID, &box.ID); err != nil {
				slog.Error("failed to record journal entry", "error", err)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toBoxResponse(box)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deleteBox(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteBox(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addItemRequest struct {
	Description string `json:"description"`
	IsFragile   bool   `json:"is_fragile"`
	Quantity    int    `json:"quantity"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	boxID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.AddItem(r.Context(), packing.CreateBoxItemParams{
		BoxID:       boxID,
		Description: req.Description,
		IsFragile:   req.IsFragile,
		Quantity:    req.Quantity,
	})
	if err != nil {
		if errors.Is(err, packing.ErrBoxNotFound) {
			http.Error(w, "box not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toItemResponse(item)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	boxID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	items, err := h.svc.Items(r.Context(), boxID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toItemResponseList(items)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteItem(r.Context(), itemID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
