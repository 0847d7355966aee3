package share

import "errors"

var (
	ErrSharingDisabled = errors.New("sharing is not configured")
	ErrInvalidToken    = errors.New("invalid share token")
)
