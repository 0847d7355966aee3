package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
	"github.com/MrJamesThe3rd/verhuizer/internal/project"
	"github.com/MrJamesThe3rd/verhuizer/internal/task"
)

// personNames maps ids to display names, falling back to the raw id
// for people that have since been removed.
func personNames(people []*project.Person) func(uuid.UUID) string {
	byID := make(map[uuid.UUID]string, len(people))
	for _, p := range people {
		byID[p.ID] = p.Name
	}

	return func(id uuid.UUID) string {
		if name, ok := byID[id]; ok {
			return name
		}

		return id.String()
	}
}

// WriteTasksCSV writes the task list as CSV.
func WriteTasksCSV(w io.Writer, tasks []*task.Task, people []*project.Person) error {
	name := personNames(people)

	cw := csv.NewWriter(w)

	header := []string{"Titel", "Status", "Categorie", "Toegewezen aan", "Deadline", "Beschrijving"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, t := range tasks {
		assignee := ""
		if t.AssigneeID != nil {
			assignee = name(*t.AssigneeID)
		}

		deadline := ""
		if t.Deadline != nil {
			deadline = t.Deadline.Format(time.DateOnly)
		}

		record := []string{t.Title, string(t.Status), string(t.Category), assignee, deadline, t.Description}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing task %q: %w", t.Title, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteCostsCSV writes the expense list as CSV.
func WriteCostsCSV(w io.Writer, expenses []*cost.Expense, people []*project.Person) error {
	name := personNames(people)

	cw := csv.NewWriter(w)

	header := []string{"Beschrijving", "Bedrag", "Betaald door", "Gedeeld door", "Datum", "Categorie"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, e := range expenses {
		shared := make([]string, len(e.SplitBetween))
		for i, id := range e.SplitBetween {
			shared[i] = name(id)
		}

		record := []string{
			e.Description,
			cost.FormatCents(e.AmountCents),
			name(e.PaidByID),
			strings.Join(shared, ", "),
			e.Date.Format(time.DateOnly),
			string(e.Category),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing expense %q: %w", e.Description, err)
		}
	}

	cw.Flush()

	return cw.Error()
}
