package availability

import (
	"fitbook/models"
)

// FilterConflicts removes candidates that collide with existing
// reservations. Only CONFIRMED reservations for the selection's date and
// location count. A candidate is dropped when the selected provider
// already holds a reservation at that start time, or when the
// (location, service, date, start) group has reached the service's
// capacity.
func FilterConflicts(candidates []models.MinuteOfDay, reservations []models.Reservation, sel Selection, capacity int) []models.MinuteOfDay {
	out := make([]models.MinuteOfDay, 0, len(candidates))
	for _, t := range candidates {
		if SlotFree(t, reservations, sel, capacity) {
			out = append(out, t)
		}
	}
	return out
}

// SlotFree reports whether one candidate start time survives the
// conflict rules. Exposed separately so the confirm path can re-validate
// a single slot under its commit lock.
func SlotFree(t models.MinuteOfDay, reservations []models.Reservation, sel Selection, capacity int) bool {
	sameService := 0
	for _, res := range reservations {
		if res.Status != models.ReservationConfirmed {
			continue
		}
		if res.Date != sel.Date || res.LocationID != sel.LocationID || res.Start != t {
			continue
		}
		if selID, ok := sel.Provider.Specific(); ok {
			if resID, bound := res.Provider.Specific(); bound && resID == selID {
				return false
			}
		}
		if res.ServiceTypeID == sel.ServiceTypeID {
			sameService++
		}
	}
	return sameService < capacity
}
