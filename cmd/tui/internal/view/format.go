package view

import (
	"context"
	"time"

	"github.com/MrJamesThe3rd/verhuizer/internal/cost"
)

const dbTimeout = 5 * time.Second

// FormatAmount renders an amount stored as cents, e.g. "€12,50".
func FormatAmount(cents int64) string {
	return cost.FormatCents(cents)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
