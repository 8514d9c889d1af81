package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers both missing rows and rows owned by someone else.
	ErrNotFound = errors.New("not found")
	// ErrSaveFailed is returned when a transactional write was rolled back.
	ErrSaveFailed = errors.New("failed to save")
	// ErrReminderConflict means a second open reminder for the same vehicle and kind was attempted.
	ErrReminderConflict = errors.New("an open reminder of this kind already exists for the vehicle")
)

// ValidationError rejects malformed input before anything is written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
