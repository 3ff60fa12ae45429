package repositories

import (
	"sync"
	"time"

	"sleeperbus/internal/domain"
	"sleeperbus/internal/domain/models"
)

// BookingStore is the in-memory, append-only booking history.
type BookingStore struct {
	mu       sync.RWMutex
	bookings []models.Booking
	byID     map[string]int
}

func NewBookingStore() *BookingStore {
	return &BookingStore{byID: map[string]int{}}
}

func (s *BookingStore) Append(b models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.byID[b.ID]; dup {
		return domain.ConflictError{Resource: "booking", Msg: "duplicate id " + b.ID}
	}
	s.byID[b.ID] = len(s.bookings)
	s.bookings = append(s.bookings, b.Clone())
	return nil
}

func (s *BookingStore) Get(id string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", ID: id, Err: domain.ErrBookingNotFound}
	}
	return s.bookings[i].Clone(), nil
}

// List returns every booking, all statuses, in creation order.
func (s *BookingStore) List() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, b.Clone())
	}
	return out
}

// MarkCancelled flips confirmed to cancelled under the store lock, so two
// concurrent cancels cannot both succeed.
func (s *BookingStore) MarkCancelled(id string, at time.Time) (models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", ID: id, Err: domain.ErrBookingNotFound}
	}
	b := &s.bookings[i]
	if b.IsCancelled() {
		return b.Clone(), domain.ConflictError{Resource: "booking", Msg: "booking " + id + " is already cancelled", Err: domain.ErrAlreadyCancelled}
	}
	b.Status = models.BookingCancelled
	t := at
	b.CancelledAt = &t
	return b.Clone(), nil
}

func (s *BookingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}
