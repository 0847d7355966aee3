package shopping

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Create_MarketplaceDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	repo.EXPECT().CreateItem(ctx, gomock.Any()).Return(nil)

	item, err := svc.Create(ctx, CreateParams{
		ProjectID:       uuid.New(),
		Name:            "eettafel",
		AcquisitionType: AcquisitionMarketplace,
		Category:        CategoryMeubels,
		MaxPriceCents:   25000,
	})

	require.NoError(t, err)
	assert.Equal(t, StatusNeeded, item.Status)
	require.NotNil(t, item.Marketplace)
	assert.Equal(t, "marktplaats", item.Marketplace.Platform)
	assert.Equal(t, NegotiationWatching, item.Marketplace.NegotiationStatus)
	assert.Nil(t, item.Service)
	assert.Nil(t, item.Renovation)
}

func TestService_Create_ServiceDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	repo.EXPECT().CreateItem(ctx, gomock.Any()).Return(nil)

	item, err := svc.Create(ctx, CreateParams{
		ProjectID:       uuid.New(),
		Name:            "verhuisbedrijf",
		AcquisitionType: AcquisitionService,
	})

	require.NoError(t, err)
	require.NotNil(t, item.Service)
	assert.Equal(t, ServiceResearching, item.Service.Status)
	assert.Nil(t, item.Marketplace)
}

func TestService_Create_DefaultsToRetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	repo.EXPECT().CreateItem(ctx, gomock.Any()).Return(nil)

	item, err := svc.Create(ctx, CreateParams{
		ProjectID: uuid.New(),
		Name:      "wasmachine",
	})

	require.NoError(t, err)
	assert.Equal(t, AcquisitionRetail, item.AcquisitionType)
	assert.Nil(t, item.Marketplace)
	assert.Nil(t, item.Service)
	assert.Nil(t, item.Renovation)
}

func TestService_SetNegotiationStatus_Won(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	id := uuid.New()
	stored := &Item{
		ID:              id,
		AcquisitionType: AcquisitionMarketplace,
		Status:          StatusFound,
		Marketplace:     &MarketplaceData{NegotiationStatus: NegotiationAgreed},
	}

	repo.EXPECT().GetItem(ctx, id).Return(stored, nil)
	repo.EXPECT().UpdateItem(ctx, stored).Return(nil)

	item, err := svc.SetNegotiationStatus(ctx, id, NegotiationWon)

	require.NoError(t, err)
	assert.Equal(t, NegotiationWon, item.Marketplace.NegotiationStatus)
	assert.Equal(t, StatusBought, item.Status)
	assert.True(t, item.Marketplace.PickupCompleted)
}

func TestService_SetNegotiationStatus_Lost(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	id := uuid.New()
	stored := &Item{
		ID:              id,
		AcquisitionType: AcquisitionMarketplace,
		Status:          StatusFound,
		Marketplace:     &MarketplaceData{NegotiationStatus: NegotiationNegotiating},
	}

	repo.EXPECT().GetItem(ctx, id).Return(stored, nil)
	repo.EXPECT().UpdateItem(ctx, stored).Return(nil)

	item, err := svc.SetNegotiationStatus(ctx, id, NegotiationLost)

	require.NoError(t, err)
	assert.Equal(t, NegotiationLost, item.Marketplace.NegotiationStatus)
	assert.Equal(t, StatusNeeded, item.Status)
	assert.False(t, item.Marketplace.PickupCompleted)
}

func TestService_SetNegotiationStatus_NotMarketplace(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	id := uuid.New()
	stored := &Item{ID: id, AcquisitionType: AcquisitionRetail}

	repo.EXPECT().GetItem(ctx, id).Return(stored, nil)

	_, err := svc.SetNegotiationStatus(ctx, id, NegotiationWon)

	assert.ErrorIs(t, err, ErrNotMarketplace)
}

func TestService_SetNegotiationStatus_MissingPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	id := uuid.New()
	stored := &Item{ID: id, AcquisitionType: AcquisitionMarketplace}

	repo.EXPECT().GetItem(ctx, id).Return(stored, nil)
	repo.EXPECT().UpdateItem(ctx, stored).Return(nil)

	item, err := svc.SetNegotiationStatus(ctx, id, NegotiationContacted)

	require.NoError(t, err)
	require.NotNil(t, item.Marketplace)
	assert.Equal(t, NegotiationContacted, item.Marketplace.NegotiationStatus)
}

func TestService_AdvanceNegotiation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	id := uuid.New()
	stored := &Item{
		ID:              id,
		AcquisitionType: AcquisitionMarketplace,
		Marketplace:     &MarketplaceData{NegotiationStatus: NegotiationWatching},
	}

	repo.EXPECT().GetItem(ctx, id).Return(stored, nil).Times(2)
	repo.EXPECT().UpdateItem(ctx, stored).Return(nil)

	item, err := svc.AdvanceNegotiation(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, NegotiationContacted, item.Marketplace.NegotiationStatus)
}

func TestService_AdvanceNegotiation_NoNextStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	id := uuid.New()
	stored := &Item{
		ID:              id,
		AcquisitionType: AcquisitionMarketplace,
		Marketplace:     &MarketplaceData{NegotiationStatus: NegotiationAgreed},
	}

	repo.EXPECT().GetItem(ctx, id).Return(stored, nil)

	_, err := svc.AdvanceNegotiation(ctx, id)

	assert.ErrorIs(t, err, ErrNoNextStatus)
}

func TestService_AddLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	id := uuid.New()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	stored := &Item{ID: id, AcquisitionType: AcquisitionMarketplace}

	repo.EXPECT().GetItem(ctx, id).Return(stored, nil)
	repo.EXPECT().UpdateItem(ctx, stored).Return(nil)

	item, err := svc.AddLink(ctx, id, SavedLink{
		URL:        "https://www.marktplaats.nl/v/meubels/m123-bank",
		Title:      "bank",
		PriceCents: 15000,
	}, now)

	require.NoError(t, err)
	require.Len(t, item.SavedLinks, 1)
	assert.Equal(t, now, item.SavedLinks[0].AddedAt)
}

func TestService_RemoveLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	id := uuid.New()
	stored := &Item{
		ID: id,
		SavedLinks: []SavedLink{
			{URL: "https://example.com/a"},
			{URL: "https://example.com/b"},
			{URL: "https://example.com/a"},
		},
	}

	repo.EXPECT().GetItem(ctx, id).Return(stored, nil)
	repo.EXPECT().UpdateItem(ctx, stored).Return(nil)

	item, err := svc.RemoveLink(ctx, id, "https://example.com/a")

	require.NoError(t, err)
	require.Len(t, item.SavedLinks, 1)
	assert.Equal(t, "https://example.com/b", item.SavedLinks[0].URL)
}

func TestService_Board(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	projectID := uuid.New()
	items := []*Item{
		{
			AcquisitionType: AcquisitionMarketplace,
			Marketplace:     &MarketplaceData{NegotiationStatus: NegotiationContacted},
		},
		{
			AcquisitionType: AcquisitionMarketplace,
			Marketplace:     &MarketplaceData{NegotiationStatus: NegotiationWon, AskingPriceCents: 10000, AgreedPriceCents: 8000},
		},
	}

	repo.EXPECT().ListItems(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, filter ListFilter) ([]*Item, error) {
			assert.Equal(t, projectID, *filter.ProjectID)
			assert.Equal(t, AcquisitionMarketplace, *filter.AcquisitionType)

			return items, nil
		})

	columns, stats, err := svc.Board(ctx, projectID)

	require.NoError(t, err)
	assert.Len(t, columns, len(NegotiationFunnel))
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Won)
	assert.Equal(t, int64(2000), stats.SavedCents)
}
