package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
	"github.com/MrJamesThe3rd/verhuizer/internal/importer/splitcsv"
	"github.com/MrJamesThe3rd/verhuizer/internal/project"
)

func household() (uuid.UUID, uuid.UUID, []*project.Person) {
	anna := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	bram := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	return anna, bram, []*project.Person{
		{ID: anna, Name: "Anna"},
		{ID: bram, Name: "Bram"},
	}
}

func TestService_Parse(t *testing.T) {
	svc := NewService()

	input := strings.Join([]string{
		"Datum;Omschrijving;Bedrag;Betaald door;Verdeling",
		"01-08-2025;Verf;45,50;Anna;Anna, Bram",
	}, "\n")

	rows, err := svc.Parse(FormatSplitCSV, strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Verf", rows[0].Description)
}

func TestService_Parse_UnknownFormat(t *testing.T) {
	svc := NewService()

	_, err := svc.Parse(Format("xlsx"), strings.NewReader(""))

	assert.ErrorContains(t, err, "unknown format")
}

func TestService_ToCreateParams(t *testing.T) {
	svc := NewService()
	projectID := uuid.New()
	anna, bram, people := household()

	rows := []splitcsv.Row{
		{
			Date:        time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			Description: "Verf",
			AmountCents: 4550,
			PaidBy:      "anna",
			Split:       []string{"Anna", "Bram"},
		},
		{
			Date:        time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC),
			Description: "Bezorgkosten",
			AmountCents: 1200,
			PaidBy:      "Bram",
		},
	}

	params, err := svc.ToCreateParams(projectID, rows, people)

	require.NoError(t, err)
	require.Len(t, params, 2)

	assert.Equal(t, anna, params[0].PaidByID)
	assert.Equal(t, []uuid.UUID{anna, bram}, params[0].SplitBetween)
	assert.Equal(t, cost.CategoryOverig, params[0].Category)

	// No split column means shared by the whole household.
	assert.Equal(t, bram, params[1].PaidByID)
	assert.Equal(t, []uuid.UUID{anna, bram}, params[1].SplitBetween)
}

func TestService_ToCreateParams_UnknownPayer(t *testing.T) {
	svc := NewService()
	_, _, people := household()

	rows := []splitcsv.Row{
		{Date: time.Now(), Description: "Verf", AmountCents: 100, PaidBy: "Chris"},
	}

	_, err := svc.ToCreateParams(uuid.New(), rows, people)

	assert.ErrorIs(t, err, cost.ErrUnknownParticipant)
}

func TestService_ToCreateParams_UnknownSplitMember(t *testing.T) {
	svc := NewService()
	_, _, people := household()

	rows := []splitcsv.Row{
		{Date: time.Now(), Description: "Verf", AmountCents: 100, PaidBy: "Anna", Split: []string{"Daan"}},
	}

	_, err := svc.ToCreateParams(uuid.New(), rows, people)

	assert.ErrorIs(t, err, cost.ErrUnknownParticipant)
}
