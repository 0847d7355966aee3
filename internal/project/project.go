package project

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Address is a Dutch street address.
type Address struct {
	Street      string
	HouseNumber string
	PostalCode  string
	City        string
}

// FormatAddress renders an address for display, street and number
// first.
func FormatAddress(a Address) string {
	return fmt.Sprintf("%s %s, %s %s", a.Street, a.HouseNumber, a.PostalCode, a.City)
}

// Project is one relocation. CurrentAddress is nil for people moving
// out of temporary housing.
type Project struct {
	ID             uuid.UUID
	Name           string
	MovingDate     time.Time
	NewAddress     Address
	CurrentAddress *Address
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// DaysUntilMove counts whole days from now to the moving date,
// negative once the move is behind us.
func (p *Project) DaysUntilMove(now time.Time) int {
	return int(p.MovingDate.Sub(now).Hours() / 24)
}

// Person is a household member taking part in the move. Color is a hex
// color used to identify them in lists.
type Person struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
	Color     string
	CreatedAt time.Time
}
