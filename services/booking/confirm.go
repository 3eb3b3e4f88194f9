package booking

import (
	"context"
	"sync"

	"fitbook/models"
	"fitbook/services/availability"
)

// slotLocks hands out one mutex per slot key so concurrent confirms of
// the same slot serialize while unrelated slots proceed in parallel.
type slotLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *slotLocks) acquire(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}

// Confirm commits the session's selection as a CONFIRMED reservation.
// The slot is re-validated against current reservations under a lock
// keyed by location, date and start time, so two confirms racing for
// the last unit of capacity cannot both pass the check. Returns
// ErrStaleSlot when the slot was taken in the meantime.
func (s *DefaultFlowService) Confirm(ctx context.Context, sessionID string) (*models.Reservation, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirm || session.Time == nil {
		return nil, invalidSelection("confirmation", "session is not ready to confirm")
	}
	svc, ok := s.Catalog.ServiceTypeByID(session.ServiceTypeID)
	if !ok {
		return nil, invalidSelection("service", "unknown service type")
	}

	start := *session.Time
	end := start + models.MinuteOfDay(svc.DurationMinutes)

	lock := s.commitLocks.acquire(session.LocationID + "|" + session.Date + "|" + start.String())
	lock.Lock()
	defer lock.Unlock()

	reservations, err := s.Reservations.ListForDay(ctx, session.LocationID, session.Date)
	if err != nil {
		return nil, err
	}
	sel := availability.Selection{
		LocationID:    session.LocationID,
		ServiceTypeID: session.ServiceTypeID,
		Provider:      session.Provider,
		Date:          session.Date,
	}
	if !availability.SlotFree(start, reservations, sel, svc.Capacity) {
		return nil, ErrStaleSlot
	}

	res, err := s.Reservations.Create(ctx, models.ReservationDraft{
		UserID:        session.UserID,
		LocationID:    session.LocationID,
		ServiceTypeID: session.ServiceTypeID,
		Provider:      session.Provider,
		Date:          session.Date,
		Start:         start,
		End:           end,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.Delete(ctx, session.SessionID); err != nil {
		return nil, err
	}
	return res, nil
}
