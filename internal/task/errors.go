package task

import "errors"

var (
	ErrNotFound   = errors.New("task not found")
	ErrEmptyTitle = errors.New("task title must not be empty")
)
