package splitcsv

// Profile describes the column layout of a shared-expense CSV export.
// Adding a new format is just adding a new Profile to the profiles
// slice.
type Profile struct {
	Name      string
	DateCol   string
	DescCol   string
	AmountCol string
	PaidByCol string
	SplitCol  string // optional; empty means the format has no split column
}

// requiredCols returns the column names that must be present for this
// profile to match.
func (p Profile) requiredCols() []string {
	return []string{p.DateCol, p.DescCol, p.AmountCol, p.PaidByCol}
}

// profiles is the ordered list of export formats to try during
// auto-detection. More specific profiles come first to avoid false
// matches.
var profiles = []Profile{
	{
		Name:      "standaard",
		DateCol:   "Datum",
		DescCol:   "Omschrijving",
		AmountCol: "Bedrag",
		PaidByCol: "Betaald door",
		SplitCol:  "Verdeling",
	},
	{
		Name:      "engels",
		DateCol:   "Date",
		DescCol:   "Description",
		AmountCol: "Amount",
		PaidByCol: "Paid by",
		SplitCol:  "Split",
	},
}
