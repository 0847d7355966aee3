package splitcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/MrJamesThe3rd/verhuizer/internal/encoding"
)

// Parser reads shared-expense CSV exports. It auto-detects which
// layout is being used by matching column headers against known
// profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]Row, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching csv layout found: expected columns like Datum, Omschrijving, Bedrag, Betaald door")
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are
// present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts expense rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]Row, error) {
	dateIdx := cols[p.DateCol]
	descIdx := cols[p.DescCol]
	amountIdx := cols[p.AmountCol]
	paidByIdx := cols[p.PaidByCol]

	splitIdx := -1
	if p.SplitCol != "" {
		if i, ok := cols[p.SplitCol]; ok {
			splitIdx = i
		}
	}

	var parsed []Row

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(row, dateIdx)
		if !ok {
			// Footer or blank row.
			continue
		}

		desc := cellValue(row, descIdx)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		amountStr := cellValue(row, amountIdx)
		if amountStr == "" {
			continue
		}

		cents, err := parseEuropeanAmount(amountStr)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", rowNum, amountStr, err)
		}

		if cents == 0 {
			continue
		}

		// Refunds show up as negatives; store the absolute amount.
		if cents < 0 {
			cents = -cents
		}

		parsed = append(parsed, Row{
			Date:        date,
			Description: desc,
			AmountCents: cents,
			PaidBy:      cellValue(row, paidByIdx),
			Split:       parseSplit(row, splitIdx),
		})
	}

	return parsed, nil
}

var dateLayouts = []string{"02-01-2006", "2006-01-02", "02/01/2006"}

// parseDate tries the known date layouts. Returns false for empty
// cells or unparseable values (footer rows, etc).
func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseSplit reads the comma-separated list of names sharing the
// expense. Empty means everyone.
func parseSplit(row []string, idx int) []string {
	if idx < 0 {
		return nil
	}

	var names []string

	for _, name := range strings.Split(cellValue(row, idx), ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	return names
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
