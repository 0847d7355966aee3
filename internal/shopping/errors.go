package shopping

import "errors"

var (
	// ErrNotFound is returned when a shopping item does not exist.
	ErrNotFound = errors.New("shopping item not found")

	// ErrNoNextStatus is returned when a negotiation cannot be advanced
	// automatically: from agreed onward, won or lost must be chosen
	// explicitly.
	ErrNoNextStatus = errors.New("no automatic next negotiation status")

	// ErrNotMarketplace is returned for negotiation operations on items
	// that are not acquired via a marketplace.
	ErrNotMarketplace = errors.New("item is not a marketplace acquisition")
)
