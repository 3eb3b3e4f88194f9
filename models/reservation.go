package models

import "time"

// ReservationStatus is the lifecycle state of a reservation.
// Reservations are never hard-deleted; cancellation flips the status.
type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationCompleted ReservationStatus = "COMPLETED"
)

// Reservation is one booked slot.
type Reservation struct {
	ID            string            `bson:"id" json:"id"`
	UserID        string            `bson:"user_id" json:"user_id"`
	LocationID    string            `bson:"location_id" json:"location_id"`
	ServiceTypeID string            `bson:"service_type_id" json:"service_type_id"`
	Provider      ProviderRef       `bson:"provider" json:"provider"`
	Date          string            `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start         MinuteOfDay       `bson:"start" json:"start"`
	End           MinuteOfDay       `bson:"end" json:"end"`
	Status        ReservationStatus `bson:"status" json:"status"`
	CreatedAt     time.Time         `bson:"created_at" json:"created_at"`
}

// ReservationDraft carries the fields the booking flow accumulates;
// the store assigns id, status and creation timestamp on create.
type ReservationDraft struct {
	UserID        string      `json:"user_id"`
	LocationID    string      `json:"location_id"`
	ServiceTypeID string      `json:"service_type_id"`
	Provider      ProviderRef `json:"provider"`
	Date          string      `json:"date"`
	Start         MinuteOfDay `json:"start"`
	End           MinuteOfDay `json:"end"`
}
