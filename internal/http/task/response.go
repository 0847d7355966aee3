package task

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/task"
)

type taskResponse struct {
	ID             uuid.UUID     `json:"id"`
	ProjectID      uuid.UUID     `json:"project_id"`
	Title          string        `json:"title"`
	Description    string        `json:"description,omitempty"`
	AssigneeID     *uuid.UUID    `json:"assignee_id,omitempty"`
	Category       task.Category `json:"category"`
	Deadline       *time.Time    `json:"deadline,omitempty"`
	Status         task.Status   `json:"status"`
	IsTemplate     bool          `json:"is_template"`
	DaysBeforeMove *int          `json:"days_before_move,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      *time.Time    `json:"updated_at,omitempty"`
}

func toResponse(t *task.Task) taskResponse {
	return taskResponse{
		ID:             t.ID,
		ProjectID:      t.ProjectID,
		Title:          t.Title,
		Description:    t.Description,
		AssigneeID:     t.AssigneeID,
		Category:       t.Category,
		Deadline:       t.Deadline,
		Status:         t.Status,
		IsTemplate:     t.IsTemplate,
		DaysBeforeMove: t.DaysBeforeMove,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func toResponseList(tasks []*task.Task) []taskResponse {
	resp := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = toResponse(t)
	}

	return resp
}

type categoryGroupResponse struct {
	Category task.Category  `json:"category"`
	Tasks    []taskResponse `json:"tasks"`
}

func toGroupedResponse(groups []task.CategoryGroup) []categoryGroupResponse {
	resp := make([]categoryGroupResponse, len(groups))
	for i, g := range groups {
		resp[i] = categoryGroupResponse{
			Category: g.Category,
			Tasks:    toResponseList(g.Tasks),
		}
	}

	return resp
}
