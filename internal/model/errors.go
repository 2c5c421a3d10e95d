package model

import "fmt"

// ValidationError reports a user-input problem found before any
// external write. State stays in the pre-submission editing state.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StoreWriteError reports a failed create, update, or remove against
// one of the external stores. No partial state is assumed committed;
// no compensating rollback is attempted.
type StoreWriteError struct {
	Op  string // e.g. "bookmarks.update", "tags.set"
	Err error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}
