package packing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RoomType classifies a room for display defaults.
type RoomType string

const (
	RoomTypeWoonkamer  RoomType = "woonkamer"
	RoomTypeKeuken     RoomType = "keuken"
	RoomTypeSlaapkamer RoomType = "slaapkamer"
	RoomTypeBadkamer   RoomType = "badkamer"
	RoomTypeHal        RoomType = "hal"
	RoomTypeBerging    RoomType = "berging"
	RoomTypeTuin       RoomType = "tuin"
	RoomTypeOverig     RoomType = "overig"
)

// Dimensions holds room measurements in millimeters.
type Dimensions struct {
	WidthMm  int
	LengthMm int
	HeightMm int
}

// Room groups boxes and budget within a project. Order determines the
// stable display sequence; gaps are fine.
type Room struct {
	ID             uuid.UUID
	ProjectID      uuid.UUID
	Name           string
	RoomType       RoomType
	Order          int
	Dimensions     *Dimensions
	AllocatedCents int64
	CreatedAt      time.Time
}

// BoxPriority indicates how urgently a box should be unpacked.
type BoxPriority string

const (
	PriorityLow    BoxPriority = "low"
	PriorityMedium BoxPriority = "medium"
	PriorityHigh   BoxPriority = "high"
)

// BoxStatus is the packing lifecycle of a box.
type BoxStatus string

const (
	BoxStatusEmpty    BoxStatus = "empty"
	BoxStatusPacking  BoxStatus = "packing"
	BoxStatusPacked   BoxStatus = "packed"
	BoxStatusMoved    BoxStatus = "moved"
	BoxStatusUnpacked BoxStatus = "unpacked"
)

// Box is a moving box belonging to a room. Number is a 1-based per-room
// counter assigned at creation and never reused, so deleting a box
// leaves a gap.
type Box struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	Number    int
	Label     string
	IsFragile bool
	Priority  BoxPriority
	Status    BoxStatus
	CreatedAt time.Time
}

// BoxItem is a single thing packed in a box. Order defines the display
// sequence within the box.
type BoxItem struct {
	ID          uuid.UUID
	BoxID       uuid.UUID
	Description string
	Order       int
	IsFragile   bool
	Quantity    int
}

// BoxCode builds the short label printed on a box, e.g. "WK-1" for the
// first box of the woonkamer.
func BoxCode(roomName string, boxNumber int) string {
	prefix := []rune(roomName)
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}

	return fmt.Sprintf("%s-%d", strings.ToUpper(string(prefix)), boxNumber)
}
