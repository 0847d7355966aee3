package splitcsv

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_StandaardLayout(t *testing.T) {
	input := strings.Join([]string{
		"Datum;Omschrijving;Bedrag;Betaald door;Verdeling",
		"01-08-2025;Verf en kwasten;45,50;Anna;Anna, Bram",
		"03-08-2025;Bezorgkosten bank;€ 12,00;Bram;",
		"",
	}, "\n")

	rows, err := NewParser().Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), rows[0].Date)
	assert.Equal(t, "Verf en kwasten", rows[0].Description)
	assert.Equal(t, int64(4550), rows[0].AmountCents)
	assert.Equal(t, "Anna", rows[0].PaidBy)
	assert.Equal(t, []string{"Anna", "Bram"}, rows[0].Split)

	assert.Equal(t, int64(1200), rows[1].AmountCents)
	assert.Empty(t, rows[1].Split)
}

func TestParser_EngelsLayout(t *testing.T) {
	input := strings.Join([]string{
		"Date;Description;Amount;Paid by;Split",
		"2025-08-01;Moving truck;150,00;Anna;",
	}, "\n")

	rows, err := NewParser().Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(15000), rows[0].AmountCents)
	assert.Equal(t, "Moving truck", rows[0].Description)
}

func TestParser_SkipsPreambleAndFooter(t *testing.T) {
	input := strings.Join([]string{
		"Export gedeelde kosten",
		"Periode;augustus 2025",
		"",
		"Datum;Omschrijving;Bedrag;Betaald door;Verdeling",
		"01-08-2025;Verf;45,50;Anna;",
		"Totaal;;45,50;;",
	}, "\n")

	rows, err := NewParser().Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Verf", rows[0].Description)
}

func TestParser_NegativeAmountStoredAbsolute(t *testing.T) {
	input := strings.Join([]string{
		"Datum;Omschrijving;Bedrag;Betaald door;Verdeling",
		"01-08-2025;Retour kwasten;-12,50;Anna;",
	}, "\n")

	rows, err := NewParser().Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1250), rows[0].AmountCents)
}

func TestParser_ThousandSeparator(t *testing.T) {
	input := strings.Join([]string{
		"Datum;Omschrijving;Bedrag;Betaald door;Verdeling",
		"01-08-2025;Keuken aanbetaling;1.234,56;Anna;",
	}, "\n")

	rows, err := NewParser().Parse(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(123456), rows[0].AmountCents)
}

func TestParser_MissingDescription(t *testing.T) {
	input := strings.Join([]string{
		"Datum;Omschrijving;Bedrag;Betaald door;Verdeling",
		"01-08-2025;;45,50;Anna;",
	}, "\n")

	_, err := NewParser().Parse(strings.NewReader(input))

	assert.ErrorContains(t, err, "missing description")
}

func TestParser_NoMatchingLayout(t *testing.T) {
	input := "kolom1;kolom2\nfoo;bar\n"

	_, err := NewParser().Parse(strings.NewReader(input))

	assert.ErrorContains(t, err, "no matching csv layout")
}

func TestParser_Windows1252Input(t *testing.T) {
	// "Reëel" with ë encoded as Windows-1252 0xEB.
	input := []byte("Datum;Omschrijving;Bedrag;Betaald door;Verdeling\n01-08-2025;Re\xebel;10,00;Anna;\n")

	rows, err := NewParser().Parse(strings.NewReader(string(input)))

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Reëel", rows[0].Description)
}
