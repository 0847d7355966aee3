package task

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=task
type Repository interface {
	CreateTask(ctx context.Context, t *Task) error
	CreateTasks(ctx context.Context, tasks []*Task) error
	GetTask(ctx context.Context, id uuid.UUID) (*Task, error)
	ListTasks(ctx context.Context, filter ListFilter) ([]*Task, error)
	UpdateTask(ctx context.Context, t *Task) error
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ProjectID   uuid.UUID
	Title       string
	Description string
	AssigneeID  *uuid.UUID
	Category    Category
	Deadline    *time.Time
}

type ListFilter struct {
	ProjectID  *uuid.UUID
	Status     *Status
	Category   *Category
	AssigneeID *uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Task, error) {
	if params.Title == "" {
		return nil, ErrEmptyTitle
	}

	category := params.Category
	if category == "" {
		category = CategoryOverig
	}

	t := &Task{
		ProjectID:   params.ProjectID,
		Title:       params.Title,
		Description: params.Description,
		AssigneeID:  params.AssigneeID,
		Category:    category,
		Deadline:    params.Deadline,
		Status:      StatusTodo,
	}

	if err := s.repo.CreateTask(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Task, error) {
	return s.repo.GetTask(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Task, error) {
	return s.repo.ListTasks(ctx, filter)
}

func (s *Service) Update(ctx context.Context, t *Task) error {
	if t.Title == "" {
		return ErrEmptyTitle
	}

	return s.repo.UpdateTask(ctx, t)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTask(ctx, id)
}

func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status Status) (*Task, error) {
	t, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Status = status
	if err := s.repo.UpdateTask(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// Upcoming returns the project's open tasks due within windowDays.
func (s *Service) Upcoming(ctx context.Context, projectID uuid.UUID, windowDays int, now time.Time) ([]*Task, error) {
	tasks, err := s.repo.ListTasks(ctx, ListFilter{ProjectID: &projectID})
	if err != nil {
		return nil, err
	}

	return Upcoming(tasks, windowDays, now), nil
}

// Grouped returns the project's tasks bucketed by category.
func (s *Service) Grouped(ctx context.Context, projectID uuid.UUID) ([]CategoryGroup, error) {
	tasks, err := s.repo.ListTasks(ctx, ListFilter{ProjectID: &projectID})
	if err != nil {
		return nil, err
	}

	return GroupByCategory(tasks), nil
}

// Generate materializes the default checklist for a project. Template
// tasks that already exist, matched by title, are skipped so the
// operation can be repeated safely.
func (s *Service) Generate(ctx context.Context, projectID uuid.UUID, movingDate time.Time, now time.Time) ([]*Task, error) {
	existing, err := s.repo.ListTasks(ctx, ListFilter{ProjectID: &projectID})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(existing))

	for _, t := range existing {
		if t.IsTemplate {
			seen[t.Title] = true
		}
	}

	generated := GenerateFromTemplates(projectID, movingDate, DefaultTemplates, now)

	fresh := generated[:0]

	for _, t := range generated {
		if !seen[t.Title] {
			fresh = append(fresh, t)
		}
	}

	if len(fresh) == 0 {
		return nil, nil
	}

	if err := s.repo.CreateTasks(ctx, fresh); err != nil {
		return nil, err
	}

	return fresh, nil
}
