package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
	"github.com/MrJamesThe3rd/verhuizer/internal/project"
	"github.com/MrJamesThe3rd/verhuizer/internal/task"
)

// Service writes project exports to disk.
type Service struct {
	projects *project.Service
	tasks    *task.Service
	costs    *cost.Service
}

func NewService(projects *project.Service, tasks *task.Service, costs *cost.Service) *Service {
	return &Service{
		projects: projects,
		tasks:    tasks,
		costs:    costs,
	}
}

// TasksCSV exports the project's tasks and returns the file path.
func (s *Service) TasksCSV(ctx context.Context, projectID uuid.UUID, outputDir string) (string, error) {
	tasks, err := s.tasks.List(ctx, task.ListFilter{ProjectID: &projectID})
	if err != nil {
		return "", fmt.Errorf("listing tasks: %w", err)
	}

	people, err := s.projects.People(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("listing people: %w", err)
	}

	path := filepath.Join(outputDir, "taken-verhuizing.csv")

	if err := s.writeFile(path, func(f *os.File) error {
		return WriteTasksCSV(f, tasks, people)
	}); err != nil {
		return "", err
	}

	return path, nil
}

// CostsCSV exports the project's expenses and returns the file path.
func (s *Service) CostsCSV(ctx context.Context, projectID uuid.UUID, outputDir string) (string, error) {
	expenses, err := s.costs.List(ctx, cost.ListFilter{ProjectID: &projectID})
	if err != nil {
		return "", fmt.Errorf("listing expenses: %w", err)
	}

	people, err := s.projects.People(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("listing people: %w", err)
	}

	path := filepath.Join(outputDir, "kosten-verhuizing.csv")

	if err := s.writeFile(path, func(f *os.File) error {
		return WriteCostsCSV(f, expenses, people)
	}); err != nil {
		return "", err
	}

	return path, nil
}

// Calendar exports open task deadlines as an iCalendar file and
// returns the file path.
func (s *Service) Calendar(ctx context.Context, projectID uuid.UUID, outputDir string) (string, error) {
	p, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return "", fmt.Errorf("getting project: %w", err)
	}

	tasks, err := s.tasks.List(ctx, task.ListFilter{ProjectID: &projectID})
	if err != nil {
		return "", fmt.Errorf("listing tasks: %w", err)
	}

	path := filepath.Join(outputDir, "verhuizing.ics")

	if err := s.writeFile(path, func(f *os.File) error {
		_, err := f.WriteString(GenerateICal(tasks, p.Name, time.Now()))
		return err
	}); err != nil {
		return "", err
	}

	return path, nil
}

func (s *Service) writeFile(path string, write func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}

	return nil
}
