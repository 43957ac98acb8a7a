package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by update and delete operations whose target record
// does not exist. Read operations report a miss as a nil record instead.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a field-level constraint violation. No write is
// attempted once one is detected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// DuplicateNameError reports a band name collision under case-insensitive
// comparison.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("a band named %q already exists", e.Name)
}

// BookingConflictError reports a venue already booked on a calendar date.
type BookingConflictError struct {
	Venue string
	Date  string
}

func (e *BookingConflictError) Error() string {
	return fmt.Sprintf("venue %q is already booked on %s", e.Venue, e.Date)
}

// ConflictError reports an operation refused because of related records,
// currently only deleting a band that still has tour dates.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// StorageError wraps an underlying persistence failure. It is never retried
// and never swallowed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
