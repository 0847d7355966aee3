package task

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	repo.EXPECT().CreateTask(ctx, gomock.Any()).Return(nil)

	created, err := svc.Create(ctx, CreateParams{
		ProjectID: uuid.New(),
		Title:     "sleutels ophalen",
	})

	require.NoError(t, err)
	assert.Equal(t, StatusTodo, created.Status)
	assert.Equal(t, CategoryOverig, created.Category)
	assert.False(t, created.IsTemplate)
}

func TestService_Create_EmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateParams{ProjectID: uuid.New()})

	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestService_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	id := uuid.New()
	stored := &Task{ID: id, Title: "dozen inpakken", Status: StatusTodo}

	repo.EXPECT().GetTask(ctx, id).Return(stored, nil)
	repo.EXPECT().UpdateTask(ctx, stored).Return(nil)

	updated, err := svc.SetStatus(ctx, id, StatusDone)

	require.NoError(t, err)
	assert.Equal(t, StatusDone, updated.Status)
}

func TestService_Upcoming(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	projectID := uuid.New()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	soon := now.AddDate(0, 0, 2)
	later := now.AddDate(0, 0, 30)

	repo.EXPECT().ListTasks(ctx, ListFilter{ProjectID: &projectID}).Return([]*Task{
		{Title: "soon", Deadline: &soon, Status: StatusTodo},
		{Title: "later", Deadline: &later, Status: StatusTodo},
	}, nil)

	upcoming, err := svc.Upcoming(ctx, projectID, 7, now)

	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "soon", upcoming[0].Title)
}

func TestService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	projectID := uuid.New()
	movingDate := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().ListTasks(ctx, ListFilter{ProjectID: &projectID}).Return(nil, nil)
	repo.EXPECT().CreateTasks(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, tasks []*Task) error {
			assert.Len(t, tasks, len(DefaultTemplates))

			return nil
		})

	created, err := svc.Generate(ctx, projectID, movingDate, now)

	require.NoError(t, err)
	assert.Len(t, created, len(DefaultTemplates))
}

func TestService_Generate_SkipsExistingTemplateTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	projectID := uuid.New()
	movingDate := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	existing := []*Task{
		{Title: DefaultTemplates[0].Title, IsTemplate: true},
		// Same title added by hand does not block generation.
		{Title: DefaultTemplates[1].Title, IsTemplate: false},
	}

	repo.EXPECT().ListTasks(ctx, ListFilter{ProjectID: &projectID}).Return(existing, nil)
	repo.EXPECT().CreateTasks(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, tasks []*Task) error {
			assert.Len(t, tasks, len(DefaultTemplates)-1)

			for _, created := range tasks {
				assert.NotEqual(t, DefaultTemplates[0].Title, created.Title)
			}

			return nil
		})

	created, err := svc.Generate(ctx, projectID, movingDate, now)

	require.NoError(t, err)
	assert.Len(t, created, len(DefaultTemplates)-1)
}

func TestService_Generate_AllExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	svc := NewService(repo)
	ctx := context.Background()

	projectID := uuid.New()

	existing := make([]*Task, len(DefaultTemplates))
	for i, tmpl := range DefaultTemplates {
		existing[i] = &Task{Title: tmpl.Title, IsTemplate: true}
	}

	repo.EXPECT().ListTasks(ctx, ListFilter{ProjectID: &projectID}).Return(existing, nil)

	created, err := svc.Generate(ctx, projectID, time.Now(), time.Now())

	require.NoError(t, err)
	assert.Empty(t, created)
}
