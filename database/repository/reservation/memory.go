package reservation

import (
	"context"
	"sync"
	"time"

	"fitbook/models"

	"github.com/google/uuid"
)

// MemoryStore keeps reservations in process memory. It backs tests and
// database-less runs.
type MemoryStore struct {
	mu           sync.RWMutex
	reservations []models.Reservation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) List(ctx context.Context) ([]models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out, nil
}

func (s *MemoryStore) ListForDay(ctx context.Context, locationID, date string) ([]models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reservation, 0)
	for _, r := range s.reservations {
		if r.LocationID == locationID && r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryStore) ListByUser(ctx context.Context, userID string) ([]models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reservation, 0)
	for _, r := range s.reservations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryStore) Create(ctx context.Context, draft models.ReservationDraft) (*models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := models.Reservation{
		ID:            uuid.New().String(),
		UserID:        draft.UserID,
		LocationID:    draft.LocationID,
		ServiceTypeID: draft.ServiceTypeID,
		Provider:      draft.Provider,
		Date:          draft.Date,
		Start:         draft.Start,
		End:           draft.End,
		Status:        models.ReservationConfirmed,
		CreatedAt:     time.Now(),
	}
	s.reservations = append(s.reservations, res)
	return &res, nil
}

func (s *MemoryStore) Cancel(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reservations {
		if s.reservations[i].ID == id && s.reservations[i].Status == models.ReservationConfirmed {
			s.reservations[i].Status = models.ReservationCancelled
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) CompleteBefore(ctx context.Context, now time.Time) (int, error) {
	today := now.Format("2006-01-02")
	minute := models.MinuteOfDay(now.Hour()*60 + now.Minute())

	s.mu.Lock()
	defer s.mu.Unlock()
	flipped := 0
	for i := range s.reservations {
		r := &s.reservations[i]
		if r.Status != models.ReservationConfirmed {
			continue
		}
		if r.Date < today || (r.Date == today && r.End <= minute) {
			r.Status = models.ReservationCompleted
			flipped++
		}
	}
	return flipped, nil
}
