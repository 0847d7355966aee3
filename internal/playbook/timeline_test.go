package playbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(title string, ts time.Time) *JournalEntry {
	return &JournalEntry{Title: title, Timestamp: ts}
}

func TestGroupEntriesByDate(t *testing.T) {
	day1Morning := time.Date(2025, 8, 10, 9, 0, 0, 0, time.Local)
	day1Evening := time.Date(2025, 8, 10, 21, 30, 0, 0, time.Local)
	day2 := time.Date(2025, 8, 11, 12, 0, 0, 0, time.Local)

	// Timeline feeds entries newest first; the grouping keeps that
	// order inside and across days.
	entries := []*JournalEntry{
		entryAt("tweede dag", day2),
		entryAt("avond", day1Evening),
		entryAt("ochtend", day1Morning),
	}

	groups := GroupEntriesByDate(entries)

	require.Len(t, groups, 2)

	assert.Equal(t, time.Date(2025, 8, 11, 0, 0, 0, 0, time.Local), groups[0].Date)
	require.Len(t, groups[0].Entries, 1)
	assert.Equal(t, "tweede dag", groups[0].Entries[0].Title)

	require.Len(t, groups[1].Entries, 2)
	assert.Equal(t, "avond", groups[1].Entries[0].Title)
	assert.Equal(t, "ochtend", groups[1].Entries[1].Title)
}

func TestGroupEntriesByDate_Empty(t *testing.T) {
	assert.Empty(t, GroupEntriesByDate(nil))
}

func TestCalculateStats(t *testing.T) {
	entries := []*JournalEntry{
		{EventType: EventPurchase, MonetaryCents: 15000},
		{EventType: EventPurchase, MonetaryCents: 5000, IsHighlight: true},
		{EventType: EventExpense, MonetaryCents: 2500},
		{EventType: EventTaskComplete},
		{EventType: EventTaskComplete},
		{EventType: EventMilestone, IsHighlight: true},
		{EventType: EventPacking},
	}

	stats := CalculateStats(entries)

	assert.Equal(t, 2, stats.Purchases)
	assert.Equal(t, 2, stats.TasksCompleted)
	assert.Equal(t, int64(22500), stats.TotalSpentCents)
	assert.Equal(t, 2, stats.Highlights)
}

func TestCalculateStats_SpendCountsEveryEventType(t *testing.T) {
	entries := []*JournalEntry{
		{EventType: EventPurchase, MonetaryCents: 100},
		{EventType: EventMilestone, MonetaryCents: 250},
		{EventType: EventPacking, MonetaryCents: 50},
	}

	stats := CalculateStats(entries)

	assert.Equal(t, int64(400), stats.TotalSpentCents)
	assert.Equal(t, 1, stats.Purchases)
}

func TestFilterEntries(t *testing.T) {
	entries := []*JournalEntry{
		{Title: "bank", EventType: EventPurchase, EventCategory: CategoryAcquisition},
		{Title: "gemeente", EventType: EventTaskComplete, EventCategory: CategoryAdmin},
		{Title: "keuken doos", EventType: EventPacking, EventCategory: CategoryPacking, IsHighlight: true},
	}

	byType := FilterByType(entries, EventPurchase)
	require.Len(t, byType, 1)
	assert.Equal(t, "bank", byType[0].Title)

	byCategory := FilterByCategory(entries, CategoryAdmin)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "gemeente", byCategory[0].Title)

	highlights := Highlights(entries)
	require.Len(t, highlights, 1)
	assert.Equal(t, "keuken doos", highlights[0].Title)
}

func TestSortNotes(t *testing.T) {
	older := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)

	notes := []*Note{
		{Title: "oud", CreatedAt: older},
		{Title: "nieuw", CreatedAt: newer},
		{Title: "vastgezet", CreatedAt: older, IsPinned: true},
	}

	SortNotes(notes)

	assert.Equal(t, "vastgezet", notes[0].Title)
	assert.Equal(t, "nieuw", notes[1].Title)
	assert.Equal(t, "oud", notes[2].Title)
}
