package playbook

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_LogPurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	projectID := uuid.New()
	itemID := uuid.New()

	repo.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *JournalEntry) error {
			assert.Equal(t, EventPurchase, entry.EventType)
			assert.Equal(t, CategoryAcquisition, entry.EventCategory)
			assert.Equal(t, "eettafel gekocht", entry.Title)
			assert.Equal(t, int64(15000), entry.MonetaryCents)
			assert.Equal(t, EntityShoppingItem, entry.RelatedType)
			assert.True(t, entry.IsAutoGenerated)
			assert.False(t, entry.Timestamp.IsZero())

			return nil
		})

	err := svc.LogPurchase(ctx, projectID, "eettafel", 15000, nil, &itemID)

	require.NoError(t, err)
}

func TestService_LogTaskComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	repo.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *JournalEntry) error {
			assert.Equal(t, EventTaskComplete, entry.EventType)
			assert.Equal(t, CategoryAdmin, entry.EventCategory)
			assert.Equal(t, EntityTask, entry.RelatedType)
			assert.True(t, entry.IsAutoGenerated)

			return nil
		})

	err := svc.LogTaskComplete(ctx, uuid.New(), "adreswijziging doorgeven", nil)

	require.NoError(t, err)
}

func TestService_LogMilestone(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	repo.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, entry *JournalEntry) error {
			assert.Equal(t, EventMilestone, entry.EventType)
			assert.Equal(t, CategoryCustom, entry.EventCategory)
			assert.True(t, entry.IsHighlight)
			assert.False(t, entry.IsAutoGenerated)

			return nil
		})

	err := svc.LogMilestone(ctx, uuid.New(), "Sleutels gekregen", "Eindelijk!")

	require.NoError(t, err)
}

func TestService_AddEntry_KeepsTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	ts := time.Date(2025, 8, 10, 14, 0, 0, 0, time.UTC)
	entry := &JournalEntry{ProjectID: uuid.New(), Timestamp: ts, Title: "achteraf ingevoerd"}

	repo.EXPECT().CreateEntry(ctx, entry).Return(nil)

	require.NoError(t, svc.AddEntry(ctx, entry))
	assert.Equal(t, ts, entry.Timestamp)
}

func TestService_Timeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	projectID := uuid.New()
	entries := []*JournalEntry{
		{EventType: EventPurchase, MonetaryCents: 5000, Timestamp: time.Date(2025, 8, 11, 10, 0, 0, 0, time.Local)},
		{EventType: EventTaskComplete, Timestamp: time.Date(2025, 8, 10, 10, 0, 0, 0, time.Local)},
	}

	repo.EXPECT().ListEntries(ctx, EntryFilter{ProjectID: &projectID}).Return(entries, nil)

	groups, stats, err := svc.Timeline(ctx, projectID)

	require.NoError(t, err)
	assert.Len(t, groups, 2)
	assert.Equal(t, 1, stats.Purchases)
	assert.Equal(t, 1, stats.TasksCompleted)
	assert.Equal(t, int64(5000), stats.TotalSpentCents)
}

func TestService_ToggleHighlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	id := uuid.New()
	stored := &JournalEntry{ID: id, IsHighlight: false}

	repo.EXPECT().GetEntry(ctx, id).Return(stored, nil)
	repo.EXPECT().UpdateEntry(ctx, stored).Return(nil)

	entry, err := svc.ToggleHighlight(ctx, id)

	require.NoError(t, err)
	assert.True(t, entry.IsHighlight)
}

func TestService_Notes_SortedPinnedFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	projectID := uuid.New()
	older := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().ListNotes(ctx, projectID).Return([]*Note{
		{Title: "nieuw", CreatedAt: newer},
		{Title: "vastgezet", CreatedAt: older, IsPinned: true},
	}, nil)

	notes, err := svc.Notes(ctx, projectID)

	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "vastgezet", notes[0].Title)
}

func TestService_TogglePin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	id := uuid.New()
	stored := &Note{ID: id, IsPinned: true}

	repo.EXPECT().GetNote(ctx, id).Return(stored, nil)
	repo.EXPECT().UpdateNote(ctx, stored).Return(nil)

	note, err := svc.TogglePin(ctx, id)

	require.NoError(t, err)
	assert.False(t, note.IsPinned)
}
