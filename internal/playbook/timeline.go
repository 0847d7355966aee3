package playbook

import (
	"sort"
	"time"
)

// DayGroup is one calendar day on the timeline.
type DayGroup struct {
	Date    time.Time
	Entries []*JournalEntry
}

// GroupEntriesByDate buckets entries into local calendar days. The
// relative order of entries within a day is preserved, and days appear
// in the order their first entry does.
func GroupEntriesByDate(entries []*JournalEntry) []DayGroup {
	var groups []DayGroup

	index := make(map[time.Time]int)

	for _, entry := range entries {
		ts := entry.Timestamp.Local()
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())

		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i

			groups = append(groups, DayGroup{Date: day})
		}

		groups[i].Entries = append(groups[i].Entries, entry)
	}

	return groups
}

// Stats summarizes a project's journal.
type Stats struct {
	Purchases       int
	TasksCompleted  int
	TotalSpentCents int64
	Highlights      int
}

// CalculateStats tallies the journal. Spend sums the monetary value of
// every entry regardless of event type.
func CalculateStats(entries []*JournalEntry) Stats {
	var stats Stats

	for _, entry := range entries {
		switch entry.EventType {
		case EventPurchase:
			stats.Purchases++
		case EventTaskComplete:
			stats.TasksCompleted++
		}

		stats.TotalSpentCents += entry.MonetaryCents

		if entry.IsHighlight {
			stats.Highlights++
		}
	}

	return stats
}

// FilterByType returns entries with the given event type.
func FilterByType(entries []*JournalEntry, eventType EventType) []*JournalEntry {
	var filtered []*JournalEntry

	for _, entry := range entries {
		if entry.EventType == eventType {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}

// FilterByCategory returns entries with the given event category.
func FilterByCategory(entries []*JournalEntry, category EventCategory) []*JournalEntry {
	var filtered []*JournalEntry

	for _, entry := range entries {
		if entry.EventCategory == category {
			filtered = append(filtered, entry)
		}
	}

	return filtered
}

// Highlights returns highlighted entries only.
func Highlights(entries []*JournalEntry) []*JournalEntry {
	var highlights []*JournalEntry

	for _, entry := range entries {
		if entry.IsHighlight {
			highlights = append(highlights, entry)
		}
	}

	return highlights
}

// SortNotes orders notes pinned first, then newest first.
func SortNotes(notes []*Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].IsPinned != notes[j].IsPinned {
			return notes[i].IsPinned
		}

		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})
}
