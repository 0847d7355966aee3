package task

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFromTemplates(t *testing.T) {
	projectID := uuid.New()
	movingDate := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)

	templates := []Template{
		{Title: "offertes aanvragen", Category: CategoryVerhuizing, DaysBeforeMove: 42},
		{Title: "meterstanden noteren", Category: CategoryAdministratie, DaysBeforeMove: 0},
		{Title: "lampen ophangen", Category: CategoryKlussen, DaysBeforeMove: -2},
	}

	tasks := GenerateFromTemplates(projectID, movingDate, templates, now)

	require.Len(t, tasks, 3)

	for _, task := range tasks {
		assert.Equal(t, projectID, task.ProjectID)
		assert.Equal(t, StatusTodo, task.Status)
		assert.True(t, task.IsTemplate)
		assert.Equal(t, now, task.CreatedAt)
		require.NotNil(t, task.Deadline)
		require.NotNil(t, task.DaysBeforeMove)
	}

	assert.Equal(t, time.Date(2025, 7, 21, 0, 0, 0, 0, time.UTC), *tasks[0].Deadline)
	assert.Equal(t, movingDate, *tasks[1].Deadline)
	// Negative offsets land after the move.
	assert.Equal(t, time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC), *tasks[2].Deadline)
}

func TestDefaultTemplates(t *testing.T) {
	require.NotEmpty(t, DefaultTemplates)

	for _, tmpl := range DefaultTemplates {
		assert.NotEmpty(t, tmpl.Title)
		assert.Contains(t, Categories, tmpl.Category)
	}

	// The checklist spans preparation through settling in.
	first := DefaultTemplates[0]
	last := DefaultTemplates[len(DefaultTemplates)-1]

	assert.Equal(t, 42, first.DaysBeforeMove)
	assert.Negative(t, last.DaysBeforeMove)
}
