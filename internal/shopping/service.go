package shopping

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=shopping
type Repository interface {
	CreateItem(ctx context.Context, item *Item) error
	GetItem(ctx context.Context, id uuid.UUID) (*Item, error)
	ListItems(ctx context.Context, filter ListFilter) ([]*Item, error)
	UpdateItem(ctx context.Context, item *Item) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ProjectID       uuid.UUID
	Name            string
	AcquisitionType AcquisitionType
	Category        Category
	MaxPriceCents   int64
	RoomID          *uuid.UUID
	Notes           string
}

type ListFilter struct {
	ProjectID       *uuid.UUID
	Status          *Status
	Category        *Category
	AcquisitionType *AcquisitionType
	RoomID          *uuid.UUID
}

// Create initializes the variant payload matching the acquisition type
// so later accessors start from the documented defaults.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Item, error) {
	acquisitionType := params.AcquisitionType
	if acquisitionType == "" {
		acquisitionType = AcquisitionRetail
	}

	item := &Item{
		ProjectID:       params.ProjectID,
		Name:            params.Name,
		AcquisitionType: acquisitionType,
		Category:        params.Category,
		Status:          StatusNeeded,
		MaxPriceCents:   params.MaxPriceCents,
		RoomID:          params.RoomID,
		Notes:           params.Notes,
	}

	switch acquisitionType {
	case AcquisitionMarketplace:
		item.Marketplace = &MarketplaceData{
			Platform:          "marktplaats",
			NegotiationStatus: NegotiationWatching,
		}
	case AcquisitionService:
		item.Service = &ServiceData{Status: ServiceResearching}
	case AcquisitionRenovation:
		item.Renovation = &RenovationData{}
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Item, error) {
	return s.repo.ListItems(ctx, filter)
}

func (s *Service) Update(ctx context.Context, item *Item) error {
	return s.repo.UpdateItem(ctx, item)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteItem(ctx, id)
}

func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status Status) (*Item, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Status = status
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// SetNegotiationStatus moves a marketplace item to any funnel stage.
// Transition legality is deliberately not enforced; winning marks the
// item bought with pickup done, losing puts it back to needed.
func (s *Service) SetNegotiationStatus(ctx context.Context, id uuid.UUID, status NegotiationStatus) (*Item, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if item.AcquisitionType != AcquisitionMarketplace {
		return nil, ErrNotMarketplace
	}

	if item.Marketplace == nil {
		item.Marketplace = &MarketplaceData{}
	}

	item.Marketplace.NegotiationStatus = status

	switch status {
	case NegotiationWon:
		item.Marketplace.PickupCompleted = true
		item.Status = StatusBought
	case NegotiationLost:
		item.Status = StatusNeeded
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// AdvanceNegotiation moves an item one stage along the canonical
// funnel. Past agreed there is no automatic next stage.
func (s *Service) AdvanceNegotiation(ctx context.Context, id uuid.UUID) (*Item, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if item.AcquisitionType != AcquisitionMarketplace {
		return nil, ErrNotMarketplace
	}

	next, ok := NextNegotiationStatus(item.NegotiationStage())
	if !ok {
		return nil, ErrNoNextStatus
	}

	return s.SetNegotiationStatus(ctx, id, next)
}

// AddLink appends a saved listing to the item.
func (s *Service) AddLink(ctx context.Context, id uuid.UUID, link SavedLink, now time.Time) (*Item, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	link.AddedAt = now
	item.SavedLinks = append(item.SavedLinks, link)

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// RemoveLink drops all saved links with the given URL.
func (s *Service) RemoveLink(ctx context.Context, id uuid.UUID, linkURL string) (*Item, error) {
	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	links := item.SavedLinks[:0]

	for _, l := range item.SavedLinks {
		if l.URL != linkURL {
			links = append(links, l)
		}
	}

	item.SavedLinks = links

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// Board returns the project's negotiation board.
func (s *Service) Board(ctx context.Context, projectID uuid.UUID) ([]BoardColumn, BoardStats, error) {
	marketplace := AcquisitionMarketplace

	items, err := s.repo.ListItems(ctx, ListFilter{
		ProjectID:       &projectID,
		AcquisitionType: &marketplace,
	})
	if err != nil {
		return nil, BoardStats{}, fmt.Errorf("listing marketplace items: %w", err)
	}

	return GroupByNegotiationStatus(items), NegotiationBoardStats(items), nil
}
