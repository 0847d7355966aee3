package packing

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/packing"
)

type roomResponse struct {
	ID             uuid.UUID        `json:"id"`
	ProjectID      uuid.UUID        `json:"project_id"`
	Name           string           `json:"name"`
	RoomType       packing.RoomType `json:"room_type"`
	Order          int              `json:"order"`
	Dimensions     *dimensionsDTO   `json:"dimensions,omitempty"`
	AllocatedCents int64            `json:"allocated_cents"`
	CreatedAt      time.Time        `json:"created_at"`
}

type boxResponse struct {
	ID        uuid.UUID           `json:"id"`
	RoomID    uuid.UUID           `json:"room_id"`
	Number    int                 `json:"number"`
	Label     string              `json:"label"`
	IsFragile bool                `json:"is_fragile"`
	Priority  packing.BoxPriority `json:"priority"`
	Status    packing.BoxStatus   `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

type boxItemResponse struct {
	ID          uuid.UUID `json:"id"`
	BoxID       uuid.UUID `json:"box_id"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	IsFragile   bool      `json:"is_fragile"`
	Quantity    int       `json:"quantity"`
}

func toRoomResponse(room *packing.Room) roomResponse {
	resp := roomResponse{
		ID:             room.ID,
		ProjectID:      room.ProjectID,
		Name:           room.Name,
		RoomType:       room.RoomType,
		Order:          room.Order,
		AllocatedCents: room.AllocatedCents,
		CreatedAt:      room.CreatedAt,
	}

	if room.Dimensions != nil {
		resp.Dimensions = &dimensionsDTO{
			WidthMm:  room.Dimensions.WidthMm,
			LengthMm: room.Dimensions.LengthMm,
			HeightMm: room.Dimensions.HeightMm,
		}
	}

	return resp
}

func toRoomResponseList(rooms []*packing.Room) []roomResponse {
	resp := make([]roomResponse, len(rooms))
	for i, room := range rooms {
		resp[i] = toRoomResponse(room)
	}

	return resp
}

func toBoxResponse(box *packing.Box) boxResponse {
	return boxResponse{
		ID:        box.ID,
		RoomID:    box.RoomID,
		Number:    box.Number,
		Label:     box.Label,
		IsFragile: box.IsFragile,
		Priority:  box.Priority,
		Status:    box.Status,
		CreatedAt: box.CreatedAt,
	}
}

func toBoxResponseList(boxes []*packing.Box) []boxResponse {
	resp := make([]boxResponse, len(boxes))
	for i, box := range boxes {
		resp[i] = toBoxResponse(box)
	}

	return resp
}

func toItemResponse(item *packing.BoxItem) boxItemResponse {
	return boxItemResponse{
		ID:          item.ID,
		BoxID:       item.BoxID,
		Description: item.Description,
		Order:       item.Order,
		IsFragile:   item.IsFragile,
		Quantity:    item.Quantity,
	}
}

func toItemResponseList(items []*packing.BoxItem) []boxItemResponse {
	resp := make([]boxItemResponse, len(items))
	for i, item := range items {
		resp[i] = toItemResponse(item)
	}

	return resp
}
