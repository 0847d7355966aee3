package playbook

import "errors"

var (
	ErrEntryNotFound = errors.New("journal entry not found")
	ErrNoteNotFound  = errors.New("note not found")
)
