package splitcsv

import "time"

// Row is one shared expense parsed from a CSV export. PaidBy and Split
// carry names as written in the file; resolving them to household
// members happens at import time. An empty Split means the expense is
// shared by everyone.
type Row struct {
	Date        time.Time
	Description string
	AmountCents int64
	PaidBy      string
	Split       []string
}
