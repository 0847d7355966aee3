package packing

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=packing
type Repository interface {
	CreateRoom(ctx context.Context, room *Room) error
	GetRoom(ctx context.Context, id uuid.UUID) (*Room, error)
	ListRooms(ctx context.Context, projectID uuid.UUID) ([]*Room, error)
	UpdateRoom(ctx context.Context, room *Room) error
	DeleteRoom(ctx context.Context, id uuid.UUID) error

	CreateBox(ctx context.Context, box *Box) error
	GetBox(ctx context.Context, id uuid.UUID) (*Box, error)
	ListBoxes(ctx context.Context, roomID uuid.UUID) ([]*Box, error)
	// MaxBoxNumber returns the highest number ever assigned in the room,
	// including deleted boxes, or 0 when the room has none.
	MaxBoxNumber(ctx context.Context, roomID uuid.UUID) (int, error)
	UpdateBox(ctx context.Context, box *Box) error
	DeleteBox(ctx context.Context, id uuid.UUID) error

	CreateBoxItem(ctx context.Context, item *BoxItem) error
	ListBoxItems(ctx context.Context, boxID uuid.UUID) ([]*BoxItem, error)
	CountBoxItems(ctx context.Context, boxID uuid.UUID) (int, error)
	DeleteBoxItem(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateRoomParams struct {
	ProjectID      uuid.UUID
	Name           string
	RoomType       RoomType
	Dimensions     *Dimensions
	AllocatedCents int64
}

func (s *Service) CreateRoom(ctx context.Context, params CreateRoomParams) (*Room, error) {
	rooms, err := s.repo.ListRooms(ctx, params.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("listing rooms: %w", err)
	}

	roomType := params.RoomType
	if roomType == "" {
		roomType = RoomTypeOverig
	}

	room := &Room{
		ProjectID:      params.ProjectID,
		Name:           params.Name,
		RoomType:       roomType,
		Order:          len(rooms),
		Dimensions:     params.Dimensions,
		AllocatedCents: params.AllocatedCents,
	}
	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

// Rooms returns a project's rooms in display order.
func (s *Service) Rooms(ctx context.Context, projectID uuid.UUID) ([]*Room, error) {
	rooms, err := s.repo.ListRooms(ctx, projectID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].Order < rooms[j].Order })

	return rooms, nil
}

func (s *Service) GetRoom(ctx context.Context, id uuid.UUID) (*Room, error) {
	return s.repo.GetRoom(ctx, id)
}

func (s *Service) UpdateRoom(ctx context.Context, room *Room) error {
	return s.repo.UpdateRoom(ctx, room)
}

func (s *Service) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRoom(ctx, id)
}

type CreateBoxParams struct {
	RoomID    uuid.UUID
	Label     string
	IsFragile bool
	Priority  BoxPriority
}

// CreateBox assigns the next per-room box number. Numbers only grow;
// deleted boxes leave gaps.
func (s *Service) CreateBox(ctx context.Context, params CreateBoxParams) (*Box, error) {
	maxNumber, err := s.repo.MaxBoxNumber(ctx, params.RoomID)
	if err != nil {
		return nil, fmt.Errorf("finding box number: %w", err)
	}

	priority := params.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	box := &Box{
		RoomID:    params.RoomID,
		Number:    maxNumber + 1,
		Label:     params.Label,
		IsFragile: params.IsFragile,
		Priority:  priority,
		Status:    BoxStatusEmpty,
	}
	if err := s.repo.CreateBox(ctx, box); err != nil {
		return nil, err
	}

	return box, nil
}

// Boxes returns a room's boxes ordered by number.
func (s *Service) Boxes(ctx context.Context, roomID uuid.UUID) ([]*Box, error) {
	boxes, err := s.repo.ListBoxes(ctx, roomID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(boxes, func(i, j int) bool { return boxes[i].Number < boxes[j].Number })

	return boxes, nil
}

func (s *Service) SetBoxStatus(ctx context.Context, id uuid.UUID, status BoxStatus) (*Box, error) {
	box, err := s.repo.GetBox(ctx, id)
	if err != nil {
		return nil, err
	}

	box.Status = status
	if err := s.repo.UpdateBox(ctx, box); err != nil {
		return nil, err
	}

	return box, nil
}

func (s *Service) DeleteBox(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteBox(ctx, id)
}

type CreateBoxItemParams struct {
	BoxID       uuid.UUID
	Description string
	IsFragile   bool
	Quantity    int
}

// AddItem appends an item to a box; its order is the current item count.
func (s *Service) AddItem(ctx context.Context, params CreateBoxItemParams) (*BoxItem, error) {
	count, err := s.repo.CountBoxItems(ctx, params.BoxID)
	if err != nil {
		return nil, fmt.Errorf("counting box items: %w", err)
	}

	quantity := params.Quantity
	if quantity == 0 {
		quantity = 1
	}

	item := &BoxItem{
		BoxID:       params.BoxID,
		Description: params.Description,
		Order:       count,
		IsFragile:   params.IsFragile,
		Quantity:    quantity,
	}
	if err := s.repo.CreateBoxItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Items returns a box's contents in display order.
func (s *Service) Items(ctx context.Context, boxID uuid.UUID) ([]*BoxItem, error) {
	items, err := s.repo.ListBoxItems(ctx, boxID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })

	return items, nil
}

func (s *Service) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteBoxItem(ctx, id)
}
