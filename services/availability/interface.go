// Package availability resolves the valid appointment start times for a
// selection of location, service type, optional provider and date. The
// pipeline is rule matching -> slot expansion -> conflict filtering; every
// stage is a pure function of its inputs and is recomputed in full on each
// call.
package availability

import (
	"fitbook/models"
)

// Selection parameterizes one resolution run.
type Selection struct {
	LocationID    string
	ServiceTypeID string
	// Provider must be AnyProvider (generic flow) or SpecificProvider.
	Provider models.ProviderRef
	Date     string // "YYYY-MM-DD"
}

// Engine resolves available slots for a selection against a set of
// existing reservations.
type Engine interface {
	Resolve(sel Selection, reservations []models.Reservation) ([]models.MinuteOfDay, error)
}
