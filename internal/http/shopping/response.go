package shopping

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/shopping"
)

type savedLinkDTO struct {
	URL        string    `json:"url"`
	Title      string    `json:"title"`
	PriceCents int64     `json:"price_cents"`
	AddedAt    time.Time `json:"added_at"`
}

type marketplaceDTO struct {
	Platform          string                     `json:"platform"`
	NegotiationStatus shopping.NegotiationStatus `json:"negotiation_status"`
	AskingPriceCents  int64                      `json:"asking_price_cents"`
	OfferPriceCents   int64                      `json:"offer_price_cents"`
	AgreedPriceCents  int64                      `json:"agreed_price_cents"`
	PickupDate        *time.Time                 `json:"pickup_date,omitempty"`
	PickupCompleted   bool                       `json:"pickup_completed"`
	ConversationNotes string                     `json:"conversation_notes,omitempty"`
}

type serviceDTO struct {
	Provider      string                 `json:"provider"`
	Status        shopping.ServiceStatus `json:"status"`
	QuoteCents    int64                  `json:"quote_cents"`
	ScheduledDate *time.Time             `json:"scheduled_date,omitempty"`
}

type renovationDTO struct {
	Contractor string     `json:"contractor"`
	QuoteCents int64      `json:"quote_cents"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	Completed  bool       `json:"completed"`
}

type itemResponse struct {
	ID               uuid.UUID                `json:"id"`
	ProjectID        uuid.UUID                `json:"project_id"`
	Name             string                   `json:"name"`
	AcquisitionType  shopping.AcquisitionType `json:"acquisition_type"`
	Category         shopping.Category        `json:"category"`
	Status           shopping.Status          `json:"status"`
	EffectiveStatus  string                   `json:"effective_status"`
	MaxPriceCents    int64                    `json:"max_price_cents"`
	ActualPriceCents int64                    `json:"actual_price_cents"`
	RoomID           *uuid.UUID               `json:"room_id,omitempty"`
	SavedLinks       []savedLinkDTO           `json:"saved_links"`
	Marketplace      *marketplaceDTO          `json:"marketplace,omitempty"`
	Service          *serviceDTO              `json:"service,omitempty"`
	Renovation       *renovationDTO           `json:"renovation,omitempty"`
	Notes            string                   `json:"notes,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        *time.Time               `json:"updated_at,omitempty"`
}

func toMarketplaceDTO(m *shopping.MarketplaceData) *marketplaceDTO {
	if m == nil {
		return nil
	}

	return &marketplaceDTO{
		Platform:          m.Platform,
		NegotiationStatus: m.NegotiationStatus,
		AskingPriceCents:  m.AskingPriceCents,
		OfferPriceCents:   m.OfferPriceCents,
		AgreedPriceCents:  m.AgreedPriceCents,
		PickupDate:        m.PickupDate,
		PickupCompleted:   m.PickupCompleted,
		ConversationNotes: m.ConversationNotes,
	}
}

func toMarketplaceData(dto *marketplaceDTO) *shopping.MarketplaceData {
	if dto == nil {
		return nil
	}

	return &shopping.MarketplaceData{
		Platform:          dto.Platform,
		NegotiationStatus: dto.NegotiationStatus,
		AskingPriceCents:  dto.AskingPriceCents,
		OfferPriceCents:   dto.OfferPriceCents,
		AgreedPriceCents:  dto.AgreedPriceCents,
		PickupDate:        dto.PickupDate,
		PickupCompleted:   dto.PickupCompleted,
		ConversationNotes: dto.ConversationNotes,
	}
}

func toServiceDTO(s *shopping.ServiceData) *serviceDTO {
	if s == nil {
		return nil
	}

	return &serviceDTO{
		Provider:      s.Provider,
		Status:        s.Status,
		QuoteCents:    s.QuoteCents,
		ScheduledDate: s.ScheduledDate,
	}
}

func toServiceData(dto *serviceDTO) *shopping.ServiceData {
	if dto == nil {
		return nil
	}

	return &shopping.ServiceData{
		Provider:      dto.Provider,
		Status:        dto.Status,
		QuoteCents:    dto.QuoteCents,
		ScheduledDate: dto.ScheduledDate,
	}
}

func toRenovationDTO(r *shopping.RenovationData) *renovationDTO {
	if r == nil {
		return nil
	}

	return &renovationDTO{
		Contractor: r.Contractor,
		QuoteCents: r.QuoteCents,
		StartDate:  r.StartDate,
		Completed:  r.Completed,
	}
}

func toRenovationData(dto *renovationDTO) *shopping.RenovationData {
	if dto == nil {
		return nil
	}

	return &shopping.RenovationData{
		Contractor: dto.Contractor,
		QuoteCents: dto.QuoteCents,
		StartDate:  dto.StartDate,
		Completed:  dto.Completed,
	}
}

func toResponse(item *shopping.Item) itemResponse {
	links := make([]savedLinkDTO, len(item.SavedLinks))
	for i, l := range item.SavedLinks {
		links[i] = savedLinkDTO{
			URL:        l.URL,
			Title:      l.Title,
			PriceCents: l.PriceCents,
			AddedAt:    l.AddedAt,
		}
	}

	return itemResponse{
		ID:               item.ID,
		ProjectID:        item.ProjectID,
		Name:             item.Name,
		AcquisitionType:  item.AcquisitionType,
		Category:         item.Category,
		Status:           item.Status,
		EffectiveStatus:  item.EffectiveStatus(),
		MaxPriceCents:    item.MaxPriceCents,
		ActualPriceCents: item.ActualPriceCents,
		RoomID:           item.RoomID,
		SavedLinks:       links,
		Marketplace:      toMarketplaceDTO(item.Marketplace),
		Service:          toServiceDTO(item.Service),
		Renovation:       toRenovationDTO(item.Renovation),
		Notes:            item.Notes,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}

func toResponseList(items []*shopping.Item) []itemResponse {
	resp := make([]itemResponse, len(items))
	for i, item := range items {
		resp[i] = toResponse(item)
	}

	return resp
}

type boardColumnDTO struct {
	Status shopping.NegotiationStatus `json:"status"`
	Items  []itemResponse             `json:"items"`
}

type boardResponse struct {
	Columns    []boardColumnDTO `json:"columns"`
	Total      int              `json:"total"`
	Active     int              `json:"active"`
	Won        int              `json:"won"`
	SavedCents int64            `json:"saved_cents"`
}

func toBoardResponse(columns []shopping.BoardColumn, stats shopping.BoardStats) boardResponse {
	dtos := make([]boardColumnDTO, len(columns))
	for i, c := range columns {
		dtos[i] = boardColumnDTO{
			Status: c.Status,
			Items:  toResponseList(c.Items),
		}
	}

	return boardResponse{
		Columns:    dtos,
		Total:      stats.Total,
		Active:     stats.Active,
		Won:        stats.Won,
		SavedCents: stats.SavedCents,
	}
}

type statsResponse struct {
	TotalBudgetCents int64 `json:"total_budget_cents"`
	TotalSpentCents  int64 `json:"total_spent_cents"`
	Needed           int   `json:"needed"`
	Found            int   `json:"found"`
	Bought           int   `json:"bought"`
}

func toStatsResponse(stats shopping.Stats) statsResponse {
	return statsResponse{
		TotalBudgetCents: stats.TotalBudgetCents,
		TotalSpentCents:  stats.TotalSpentCents,
		Needed:           stats.Needed,
		Found:            stats.Found,
		Bought:           stats.Bought,
	}
}
