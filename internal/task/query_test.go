package task

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deadlineTask(title string, deadline time.Time, status Status) *Task {
	return &Task{Title: title, Deadline: &deadline, Status: status}
}

func TestUpcoming(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tasks := []*Task{
		deadlineTask("within window", now.AddDate(0, 0, 3), StatusTodo),
		deadlineTask("beyond window", now.AddDate(0, 0, 10), StatusTodo),
		deadlineTask("overdue", now.AddDate(0, 0, -14), StatusInProgress),
		deadlineTask("done", now.AddDate(0, 0, 2), StatusDone),
		{Title: "no deadline", Status: StatusTodo},
	}

	upcoming := Upcoming(tasks, 7, now)

	require.Len(t, upcoming, 2)
	// Sorted by deadline, so the overdue task comes first.
	assert.Equal(t, "overdue", upcoming[0].Title)
	assert.Equal(t, "within window", upcoming[1].Title)
}

func TestUpcoming_NoLowerBound(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	// A task overdue by a year still shows up until it is done.
	tasks := []*Task{deadlineTask("long overdue", now.AddDate(-1, 0, 0), StatusTodo)}

	upcoming := Upcoming(tasks, 7, now)

	require.Len(t, upcoming, 1)
	assert.Equal(t, "long overdue", upcoming[0].Title)
}

func TestUpcoming_Empty(t *testing.T) {
	now := time.Now()

	assert.Empty(t, Upcoming(nil, 7, now))
	assert.Empty(t, Upcoming([]*Task{{Title: "no deadline"}}, 7, now))
}

func TestFilter(t *testing.T) {
	anna := uuid.New()
	bram := uuid.New()

	tasks := []*Task{
		{Title: "adreswijziging", Status: StatusTodo, Category: CategoryAdministratie, AssigneeID: &anna},
		{Title: "lampen ophangen", Status: StatusTodo, Category: CategoryKlussen, AssigneeID: &bram},
		{Title: "dozen bestellen", Status: StatusDone, Category: CategoryInkopen, AssigneeID: &anna},
		{Title: "onverdeeld", Status: StatusInProgress, Category: CategoryKlussen},
	}

	todo := StatusTodo
	klussen := CategoryKlussen

	tests := []struct {
		name   string
		filter TaskFilter
		want   []string
	}{
		{"empty filter matches all", TaskFilter{}, []string{"adreswijziging", "lampen ophangen", "dozen bestellen", "onverdeeld"}},
		{"status only", TaskFilter{Status: &todo}, []string{"adreswijziging", "lampen ophangen"}},
		{"category only", TaskFilter{Category: &klussen}, []string{"lampen ophangen", "onverdeeld"}},
		{"assignee only", TaskFilter{AssigneeID: &anna}, []string{"adreswijziging", "dozen bestellen"}},
		{"status and category", TaskFilter{Status: &todo, Category: &klussen}, []string{"lampen ophangen"}},
		{"all fields, no match", TaskFilter{Status: &todo, Category: &klussen, AssigneeID: &anna}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := Filter(tasks, tt.filter)

			var titles []string
			for _, match := range matched {
				titles = append(titles, match.Title)
			}

			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestFilter_UnassignedNeverMatchesAssignee(t *testing.T) {
	anna := uuid.New()

	tasks := []*Task{{Title: "onverdeeld", Status: StatusTodo}}

	assert.Empty(t, Filter(tasks, TaskFilter{AssigneeID: &anna}))
}

func TestGroupByCategory(t *testing.T) {
	tasks := []*Task{
		{Title: "lampen ophangen", Category: CategoryKlussen},
		{Title: "adreswijziging", Category: CategoryAdministratie},
		{Title: "dozen bestellen", Category: CategoryInkopen},
		{Title: "gordijnrails", Category: CategoryKlussen},
		{Title: "mystery", Category: Category("bogus")},
	}

	groups := GroupByCategory(tasks)

	require.Len(t, groups, 4)

	// Canonical order: administratie before klussen before inkopen,
	// with overig last. Schoonmaken and verhuizing have no tasks and
	// are omitted.
	assert.Equal(t, CategoryAdministratie, groups[0].Category)
	assert.Equal(t, CategoryKlussen, groups[1].Category)
	assert.Equal(t, CategoryInkopen, groups[2].Category)
	assert.Equal(t, CategoryOverig, groups[3].Category)

	assert.Len(t, groups[1].Tasks, 2)

	// Unknown categories fall back to overig.
	require.Len(t, groups[3].Tasks, 1)
	assert.Equal(t, "mystery", groups[3].Tasks[0].Title)
}

func TestGroupByCategory_Empty(t *testing.T) {
	assert.Empty(t, GroupByCategory(nil))
}

func TestCountProgress(t *testing.T) {
	tasks := []*Task{
		{Status: StatusDone},
		{Status: StatusTodo},
		{Status: StatusInProgress},
		{Status: StatusDone},
	}

	progress := CountProgress(tasks)

	assert.Equal(t, 4, progress.Total)
	assert.Equal(t, 2, progress.Done)
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	assert.True(t, (&Task{Deadline: &past, Status: StatusTodo}).IsOverdue(now))
	assert.False(t, (&Task{Deadline: &past, Status: StatusDone}).IsOverdue(now))
	assert.False(t, (&Task{Deadline: &future, Status: StatusTodo}).IsOverdue(now))
	assert.False(t, (&Task{Status: StatusTodo}).IsOverdue(now))
}
