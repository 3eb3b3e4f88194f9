package booking

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound means the wizard session expired or never existed.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ErrStaleSlot means the chosen start time became unavailable between
// resolution and confirmation. Recoverable: the user re-picks a time.
var ErrStaleSlot = errors.New("selected slot is no longer available")

// ErrCannotGoBack is returned when backing out of the first step.
var ErrCannotGoBack = errors.New("already at the first step")

// InvalidSelectionError rejects a transition whose precondition is not
// met and names the missing or invalid field.
type InvalidSelectionError struct {
	Field  string
	Reason string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid selection: %s (%s)", e.Field, e.Reason)
}

func invalidSelection(field, reason string) error {
	return &InvalidSelectionError{Field: field, Reason: reason}
}
