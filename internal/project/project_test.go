package project

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatAddress(t *testing.T) {
	formatted := FormatAddress(Address{
		Street:      "Keizersgracht",
		HouseNumber: "42-B",
		PostalCode:  "1015 CR",
		City:        "Amsterdam",
	})

	assert.Equal(t, "Keizersgracht 42-B, 1015 CR Amsterdam", formatted)
}

func TestDaysUntilMove(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	p := &Project{MovingDate: time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)}
	assert.Equal(t, 14, p.DaysUntilMove(now))

	past := &Project{MovingDate: time.Date(2025, 7, 30, 12, 0, 0, 0, time.UTC)}
	assert.Equal(t, -2, past.DaysUntilMove(now))
}
