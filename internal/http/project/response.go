package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/project"
)

type projectResponse struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	MovingDate     time.Time   `json:"moving_date"`
	NewAddress     addressDTO  `json:"new_address"`
	CurrentAddress *addressDTO `json:"current_address,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      *time.Time  `json:"updated_at,omitempty"`
}

type personResponse struct {
	ID        uuid.UUID `json:"id"`
	ProjectID uuid.UUID `json:"project_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(p *project.Project) projectResponse {
	resp := projectResponse{
		ID:         p.ID,
		Name:       p.Name,
		MovingDate: p.MovingDate,
		NewAddress: toAddressDTO(p.NewAddress),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}

	if p.CurrentAddress != nil {
		resp.CurrentAddress = new(toAddressDTO(*p.CurrentAddress))
	}

	return resp
}

func toResponseList(projects []*project.Project) []projectResponse {
	resp := make([]projectResponse, len(projects))
	for i, p := range projects {
		resp[i] = toResponse(p)
	}

	return resp
}

func toPersonResponse(p *project.Person) personResponse {
	return personResponse{
		ID:        p.ID,
		ProjectID: p.ProjectID,
		Name:      p.Name,
		Color:     p.Color,
		CreatedAt: p.CreatedAt,
	}
}

func toPersonResponseList(people []*project.Person) []personResponse {
	resp := make([]personResponse, len(people))
	for i, p := range people {
		resp[i] = toPersonResponse(p)
	}

	return resp
}
