package availability

import (
	"fmt"
	"time"

	"fitbook/catalog"
	"fitbook/models"
)

// DefaultEngine implements Engine against a loaded catalogue.
type DefaultEngine struct {
	Catalog *catalog.Catalog
}

func NewEngine(cat *catalog.Catalog) *DefaultEngine {
	return &DefaultEngine{Catalog: cat}
}

// Resolve runs the full pipeline for one selection. The reservation
// slice is the caller's snapshot of existing bookings; the engine reads
// it and nothing else, so identical inputs always yield identical
// output.
func (e *DefaultEngine) Resolve(sel Selection, reservations []models.Reservation) ([]models.MinuteOfDay, error) {
	if !sel.Provider.Chosen() {
		return nil, fmt.Errorf("selection has no provider dimension")
	}
	svc, ok := e.Catalog.ServiceTypeByID(sel.ServiceTypeID)
	if !ok {
		return nil, fmt.Errorf("unknown service type %s", sel.ServiceTypeID)
	}
	day, err := Weekday(sel.Date)
	if err != nil {
		return nil, err
	}

	rules := MatchRules(e.Catalog.Rules, sel.LocationID, sel.ServiceTypeID, sel.Provider, day)
	candidates := ExpandSlots(rules, svc.DurationMinutes)
	return FilterConflicts(candidates, reservations, sel, svc.Capacity), nil
}

// Weekday parses a "YYYY-MM-DD" date and returns its weekday
// (0=Sunday per time.Weekday).
func Weekday(date string) (time.Weekday, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return d.Weekday(), nil
}
