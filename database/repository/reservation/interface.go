// Package reservation provides the ReservationStore: the single mutable
// collection of the system. Reservations are appended on confirmation
// and soft-cancelled; they are never hard-deleted.
package reservation

import (
	"context"
	"time"

	"fitbook/models"
)

// Store is the persistence boundary for reservations. The in-memory and
// the Mongo implementation both satisfy it.
type Store interface {
	// List returns every reservation regardless of status.
	List(ctx context.Context) ([]models.Reservation, error)
	// ListForDay returns the reservations for one location and date.
	ListForDay(ctx context.Context, locationID, date string) ([]models.Reservation, error)
	// ListByUser returns the reservations created by one user.
	ListByUser(ctx context.Context, userID string) ([]models.Reservation, error)
	// Create appends a CONFIRMED reservation, assigning id and timestamp.
	Create(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error)
	// Cancel flips a CONFIRMED reservation to CANCELLED. Missing or
	// already-cancelled ids are a no-op, not an error.
	Cancel(ctx context.Context, id string) error
	// CompleteBefore flips CONFIRMED reservations that ended before the
	// given instant to COMPLETED and returns how many were flipped.
	CompleteBefore(ctx context.Context, now time.Time) (int, error)
}
