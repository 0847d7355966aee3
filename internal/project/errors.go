package project

import "errors"

var (
	ErrNotFound       = errors.New("project not found")
	ErrPersonNotFound = errors.New("person not found")
	ErrEmptyName      = errors.New("name must not be empty")
)
