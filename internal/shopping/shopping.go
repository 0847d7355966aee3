package shopping

import (
	"time"

	"github.com/google/uuid"
)

// AcquisitionType is the procurement channel for an item. It is the
// authoritative discriminant for which variant payload applies.
type AcquisitionType string

const (
	AcquisitionMarketplace AcquisitionType = "marketplace"
	AcquisitionRetail      AcquisitionType = "retail"
	AcquisitionService     AcquisitionType = "service"
	AcquisitionRenovation  AcquisitionType = "renovation"
)

// Status is the plain shopping lifecycle used by retail and renovation
// items.
type Status string

const (
	StatusNeeded Status = "needed"
	StatusFound  Status = "found"
	StatusBought Status = "bought"
)

// Category groups items for display and for marketplace search paths.
type Category string

const (
	CategoryMeubels     Category = "meubels"
	CategoryVerlichting Category = "verlichting"
	CategoryKeuken      Category = "keuken"
	CategoryDecoratie   Category = "decoratie"
	CategoryElektronica Category = "elektronica"
	CategoryBadkamer    Category = "badkamer"
	CategorySlaapkamer  Category = "slaapkamer"
	CategoryTuin        Category = "tuin"
	CategoryOverig      Category = "overig"
)

// NegotiationStatus is a stage in the marketplace funnel. The canonical
// order is watching, contacted, negotiating, agreed, won, lost; lost is
// reachable from any non-terminal stage.
type NegotiationStatus string

const (
	NegotiationWatching    NegotiationStatus = "watching"
	NegotiationContacted   NegotiationStatus = "contacted"
	NegotiationNegotiating NegotiationStatus = "negotiating"
	NegotiationAgreed      NegotiationStatus = "agreed"
	NegotiationWon         NegotiationStatus = "won"
	NegotiationLost        NegotiationStatus = "lost"
)

// NegotiationFunnel lists the stages in canonical board order.
var NegotiationFunnel = []NegotiationStatus{
	NegotiationWatching,
	NegotiationContacted,
	NegotiationNegotiating,
	NegotiationAgreed,
	NegotiationWon,
	NegotiationLost,
}

// ServiceStatus is the lifecycle of a booked service (movers, cleaners).
type ServiceStatus string

const (
	ServiceResearching ServiceStatus = "researching"
	ServiceQuoted      ServiceStatus = "quoted"
	ServiceScheduled   ServiceStatus = "scheduled"
	ServiceActive      ServiceStatus = "active"
	ServiceCancelled   ServiceStatus = "cancelled"
)

// SavedLink is a bookmarked listing for an item.
type SavedLink struct {
	URL        string
	Title      string
	PriceCents int64
	AddedAt    time.Time
}

// MarketplaceData carries the negotiation state for marketplace items.
type MarketplaceData struct {
	Platform          string
	NegotiationStatus NegotiationStatus
	AskingPriceCents  int64
	OfferPriceCents   int64
	AgreedPriceCents  int64
	PickupDate        *time.Time
	PickupCompleted   bool
	ConversationNotes string
}

// ServiceData carries the booking state for service items.
type ServiceData struct {
	Provider      string
	Status        ServiceStatus
	QuoteCents    int64
	ScheduledDate *time.Time
}

// RenovationData carries contractor details for renovation items.
type RenovationData struct {
	Contractor string
	QuoteCents int64
	StartDate  *time.Time
	Completed  bool
}

// Item is something to acquire for the new home. Exactly one of
// Marketplace, Service, or Renovation is populated, selected by
// AcquisitionType; accessors tolerate a nil payload and substitute
// defaults.
type Item struct {
	ID               uuid.UUID
	ProjectID        uuid.UUID
	Name             string
	AcquisitionType  AcquisitionType
	Category         Category
	Status           Status
	MaxPriceCents    int64
	ActualPriceCents int64
	RoomID           *uuid.UUID
	SavedLinks       []SavedLink
	Marketplace      *MarketplaceData
	Service          *ServiceData
	Renovation       *RenovationData
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}
