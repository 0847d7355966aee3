package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
	"github.com/MrJamesThe3rd/verhuizer/internal/importer/splitcsv"
	"github.com/MrJamesThe3rd/verhuizer/internal/project"
)

type Service struct {
	splitImporter Importer
}

func NewService() *Service {
	return &Service{
		splitImporter: splitcsv.NewParser(),
	}
}

func (s *Service) Parse(format Format, r io.Reader) ([]splitcsv.Row, error) {
	var importer Importer

	switch format {
	case FormatSplitCSV:
		importer = s.splitImporter
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return importer.Parse(r)
}

// ToCreateParams resolves the names in parsed rows against the
// household and turns them into expense params. Names match case
// insensitively; a row without a split is shared by everyone.
func (s *Service) ToCreateParams(projectID uuid.UUID, rows []splitcsv.Row, people []*project.Person) ([]cost.CreateParams, error) {
	everyone := make([]uuid.UUID, len(people))
	for i, p := range people {
		everyone[i] = p.ID
	}

	resolve := func(name string) (uuid.UUID, bool) {
		for _, p := range people {
			if strings.EqualFold(p.Name, name) {
				return p.ID, true
			}
		}

		return uuid.Nil, false
	}

	params := make([]cost.CreateParams, 0, len(rows))

	for i, row := range rows {
		paidByID, ok := resolve(row.PaidBy)
		if !ok {
			return nil, fmt.Errorf("row %d: %w: %q", i+1, cost.ErrUnknownParticipant, row.PaidBy)
		}

		split := everyone

		if len(row.Split) > 0 {
			split = make([]uuid.UUID, 0, len(row.Split))

			for _, name := range row.Split {
				id, ok := resolve(name)
				if !ok {
					return nil, fmt.Errorf("row %d: %w: %q", i+1, cost.ErrUnknownParticipant, name)
				}

				split = append(split, id)
			}
		}

		params = append(params, cost.CreateParams{
			ProjectID:    projectID,
			Description:  row.Description,
			AmountCents:  row.AmountCents,
			PaidByID:     paidByID,
			SplitBetween: split,
			Date:         row.Date,
			Category:     cost.CategoryOverig,
		})
	}

	return params, nil
}
