package project

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=project
type Repository interface {
	CreateProject(ctx context.Context, p *Project) error
	GetProject(ctx context.Context, id uuid.UUID) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	UpdateProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error

	CreatePerson(ctx context.Context, p *Person) error
	ListPeople(ctx context.Context, projectID uuid.UUID) ([]*Person, error)
	DeletePerson(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo     Repository
	postcode *PostcodeClient
}

func NewService(repo Repository, postcode *PostcodeClient) *Service {
	return &Service{repo: repo, postcode: postcode}
}

type CreateParams struct {
	Name           string
	MovingDate     time.Time
	NewAddress     Address
	CurrentAddress *Address
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Project, error) {
	if params.Name == "" {
		return nil, ErrEmptyName
	}

	p := &Project{
		Name:           params.Name,
		MovingDate:     params.MovingDate,
		NewAddress:     params.NewAddress,
		CurrentAddress: params.CurrentAddress,
	}

	if err := s.repo.CreateProject(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Project, error) {
	return s.repo.GetProject(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Project, error) {
	return s.repo.ListProjects(ctx)
}

func (s *Service) Update(ctx context.Context, p *Project) error {
	if p.Name == "" {
		return ErrEmptyName
	}

	return s.repo.UpdateProject(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProject(ctx, id)
}

func (s *Service) AddPerson(ctx context.Context, projectID uuid.UUID, name, color string) (*Person, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	p := &Person{
		ProjectID: projectID,
		Name:      name,
		Color:     color,
	}

	if err := s.repo.CreatePerson(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) People(ctx context.Context, projectID uuid.UUID) ([]*Person, error) {
	return s.repo.ListPeople(ctx, projectID)
}

func (s *Service) RemovePerson(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePerson(ctx, id)
}

// ResolveAddress completes an address from its postcode and house
// number. It returns the input unchanged when no lookup client is
// configured or the postcode is unknown.
func (s *Service) ResolveAddress(ctx context.Context, a Address) (Address, error) {
	if s.postcode == nil {
		return a, nil
	}

	result, err := s.postcode.Lookup(ctx, a.PostalCode, a.HouseNumber)
	if err != nil {
		return a, err
	}

	if result == nil {
		return a, nil
	}

	a.Street = result.Street
	a.City = result.City

	return a, nil
}
