package task

import (
	"time"

	"github.com/google/uuid"
)

// Category groups tasks on the board and in exports.
type Category string

const (
	CategoryAdministratie Category = "administratie"
	CategoryKlussen       Category = "klussen"
	CategoryInkopen       Category = "inkopen"
	CategorySchoonmaken   Category = "schoonmaken"
	CategoryVerhuizing    Category = "verhuizing"
	CategoryOverig        Category = "overig"
)

// Categories lists all categories in canonical display order.
var Categories = []Category{
	CategoryAdministratie,
	CategoryKlussen,
	CategoryInkopen,
	CategorySchoonmaken,
	CategoryVerhuizing,
	CategoryOverig,
}

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Task is a moving-related todo. Template tasks carry DaysBeforeMove so
// their deadline can be recomputed when the moving date shifts;
// positive values fall before the move, negative after.
type Task struct {
	ID             uuid.UUID
	ProjectID      uuid.UUID
	Title          string
	Description    string
	AssigneeID     *uuid.UUID
	Category       Category
	Deadline       *time.Time
	Status         Status
	IsTemplate     bool
	DaysBeforeMove *int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// IsOverdue reports whether the task has a deadline in the past and is
// not done yet.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Deadline != nil && t.Deadline.Before(now) && t.Status != StatusDone
}
