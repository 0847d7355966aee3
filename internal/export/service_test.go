package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
	"github.com/MrJamesThe3rd/verhuizer/internal/project"
	"github.com/MrJamesThe3rd/verhuizer/internal/task"
)

func TestWriteTasksCSV(t *testing.T) {
	annaID := uuid.New()
	deadline := time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC)

	tasks := []*task.Task{
		{
			Title:       "Bank adreswijziging",
			Status:      task.StatusTodo,
			Category:    task.CategoryAdministratie,
			AssigneeID:  &annaID,
			Deadline:    &deadline,
			Description: "Alle rekeningen",
		},
		{
			Title:    "Dozen uitpakken",
			Status:   task.StatusDone,
			Category: task.CategoryVerhuizing,
		},
	}

	people := []*project.Person{{ID: annaID, Name: "Anna"}}

	var buf bytes.Buffer
	require.NoError(t, WriteTasksCSV(&buf, tasks, people))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Titel", "Status", "Categorie", "Toegewezen aan", "Deadline", "Beschrijving"}, records[0])
	assert.Equal(t, []string{"Bank adreswijziging", "todo", "administratie", "Anna", "2025-08-18", "Alle rekeningen"}, records[1])
	assert.Equal(t, []string{"Dozen uitpakken", "done", "verhuizing", "", "", ""}, records[2])
}

func TestWriteCostsCSV(t *testing.T) {
	anna := uuid.New()
	bram := uuid.New()

	expenses := []*cost.Expense{
		{
			Description:  "Verf",
			AmountCents:  4550,
			PaidByID:     anna,
			SplitBetween: []uuid.UUID{anna, bram},
			Date:         time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			Category:     cost.CategoryRenovatie,
		},
	}

	people := []*project.Person{
		{ID: anna, Name: "Anna"},
		{ID: bram, Name: "Bram"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCostsCSV(&buf, expenses, people))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{"Verf", "€45,50", "Anna", "Anna, Bram", "2025-08-01", "renovatie"}, records[1])
}

func TestGenerateICal(t *testing.T) {
	deadline := time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	tasks := []*task.Task{
		{
			ID:       uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			Title:    "Sleutels ophalen, nieuw huis",
			Status:   task.StatusTodo,
			Deadline: &deadline,
		},
		{Title: "Geen deadline", Status: task.StatusTodo},
		{Title: "Al klaar", Status: task.StatusDone, Deadline: &deadline},
	}

	ical := GenerateICal(tasks, "Verhuizing; Amsterdam", now)

	assert.True(t, strings.HasPrefix(ical, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(ical, "END:VCALENDAR\r\n"))
	assert.Contains(t, ical, "X-WR-CALNAME:Verhuizing Verhuizing\\; Amsterdam")
	assert.Contains(t, ical, "UID:00000000-0000-0000-0000-000000000001@verhuizer")
	assert.Contains(t, ical, "DTSTART;VALUE=DATE:20250818")
	assert.Contains(t, ical, "DTSTAMP:20250801T120000Z")
	assert.Contains(t, ical, `SUMMARY:Sleutels ophalen\, nieuw huis`)

	// Only the one open task with a deadline becomes an event.
	assert.Equal(t, 1, strings.Count(ical, "BEGIN:VEVENT"))
}

func TestService_TasksCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	projectID := uuid.New()

	taskRepo := task.NewMockRepository(ctrl)
	taskRepo.EXPECT().ListTasks(ctx, gomock.Any()).Return([]*task.Task{
		{Title: "Dozen bestellen", Status: task.StatusTodo, Category: task.CategoryInkopen},
	}, nil)

	projectRepo := project.NewMockRepository(ctrl)
	projectRepo.EXPECT().ListPeople(ctx, projectID).Return(nil, nil)

	svc := NewService(
		project.NewService(projectRepo, nil),
		task.NewService(taskRepo),
		nil,
	)

	dir := t.TempDir()

	path, err := svc.TasksCSV(ctx, projectID, filepath.Join(dir, "export"))

	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Dozen bestellen")
}
