package task

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// TaskFilter narrows a task list. Nil fields match everything.
type TaskFilter struct {
	Status     *Status
	Category   *Category
	AssigneeID *uuid.UUID
}

// Filter returns the tasks matching every set field of the filter.
func Filter(tasks []*Task, filter TaskFilter) []*Task {
	var matched []*Task

	for _, t := range tasks {
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}

		if filter.Category != nil && t.Category != *filter.Category {
			continue
		}

		if filter.AssigneeID != nil && (t.AssigneeID == nil || *t.AssigneeID != *filter.AssigneeID) {
			continue
		}

		matched = append(matched, t)
	}

	return matched
}

// Upcoming returns tasks whose deadline falls on or before now plus
// windowDays and that are not done. There is no lower bound, so
// overdue tasks stay in the window until they are completed. The
// result is sorted by deadline ascending.
func Upcoming(tasks []*Task, windowDays int, now time.Time) []*Task {
	cutoff := now.AddDate(0, 0, windowDays)

	var upcoming []*Task

	for _, t := range tasks {
		if t.Deadline == nil || t.Status == StatusDone {
			continue
		}

		if t.Deadline.After(cutoff) {
			continue
		}

		upcoming = append(upcoming, t)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Deadline.Before(*upcoming[j].Deadline)
	})

	return upcoming
}

// CategoryGroup is one section of the grouped task list.
type CategoryGroup struct {
	Category Category
	Tasks    []*Task
}

// GroupByCategory buckets tasks into canonical category order. Unknown
// categories fall into overig; categories without tasks are omitted.
func GroupByCategory(tasks []*Task) []CategoryGroup {
	buckets := make(map[Category][]*Task, len(Categories))

	for _, t := range tasks {
		category := t.Category
		if _, ok := categoryIndex[category]; !ok {
			category = CategoryOverig
		}

		buckets[category] = append(buckets[category], t)
	}

	var groups []CategoryGroup

	for _, category := range Categories {
		if len(buckets[category]) == 0 {
			continue
		}

		groups = append(groups, CategoryGroup{Category: category, Tasks: buckets[category]})
	}

	return groups
}

var categoryIndex = func() map[Category]int {
	index := make(map[Category]int, len(Categories))
	for i, c := range Categories {
		index[c] = i
	}

	return index
}()

// Progress counts tasks by completion.
type Progress struct {
	Total int
	Done  int
}

func CountProgress(tasks []*Task) Progress {
	progress := Progress{Total: len(tasks)}

	for _, t := range tasks {
		if t.Status == StatusDone {
			progress.Done++
		}
	}

	return progress
}
