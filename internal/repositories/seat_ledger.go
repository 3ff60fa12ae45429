package repositories

import (
	"sync"

	"sleeperbus/internal/domain"
	"sleeperbus/internal/domain/models"
)

// SeatLedger holds, per seat, the segments currently sold on it. It does not
// decide whether a write is allowed; BookingService checks availability
// before calling AddSegment.
type SeatLedger struct {
	mu    sync.RWMutex
	route *domain.Route
	seats map[string]*models.Seat
	order []string
}

func NewSeatLedger(route *domain.Route, seats []models.Seat) *SeatLedger {
	l := &SeatLedger{
		route: route,
		seats: make(map[string]*models.Seat, len(seats)),
		order: make([]string, 0, len(seats)),
	}
	for _, s := range seats {
		seat := s
		seat.BookedSegments = append([]models.Segment{}, s.BookedSegments...)
		if _, dup := l.seats[seat.ID]; dup {
			continue
		}
		l.seats[seat.ID] = &seat
		l.order = append(l.order, seat.ID)
	}
	return l
}

func unknownSeat(id string) error {
	return domain.NotFoundError{Resource: "seat", ID: id, Err: domain.ErrUnknownSeat}
}

func (l *SeatLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.order)
}

func (l *SeatLedger) Has(seatID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.seats[seatID]
	return ok
}

func (l *SeatLedger) AddSegment(seatID string, seg models.Segment) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	seat, ok := l.seats[seatID]
	if !ok {
		return unknownSeat(seatID)
	}
	seat.BookedSegments = append(seat.BookedSegments, seg)
	return nil
}

// RemoveSegment drops one exact match of seg. Other bookings on the same
// seat keep their segments even when identical ranges were sold twice
// after a cancellation.
func (l *SeatLedger) RemoveSegment(seatID string, seg models.Segment) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	seat, ok := l.seats[seatID]
	if !ok {
		return false, unknownSeat(seatID)
	}
	for i, s := range seat.BookedSegments {
		if s == seg {
			seat.BookedSegments = append(seat.BookedSegments[:i], seat.BookedSegments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (l *SeatLedger) IsAvailable(seatID, from, to string) (bool, error) {
	req, err := l.route.Span(models.Segment{From: from, To: to})
	if err != nil {
		return false, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	seat, ok := l.seats[seatID]
	if !ok {
		return false, unknownSeat(seatID)
	}
	return l.availableLocked(seat, req)
}

func (l *SeatLedger) availableLocked(seat *models.Seat, req domain.Span) (bool, error) {
	booked := make([]domain.Span, 0, len(seat.BookedSegments))
	for _, seg := range seat.BookedSegments {
		sp, err := l.route.Span(seg)
		if err != nil {
			return false, err
		}
		booked = append(booked, sp)
	}
	return domain.AvailableFor(booked, req), nil
}

func (l *SeatLedger) Seat(seatID string) (models.Seat, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	seat, ok := l.seats[seatID]
	if !ok {
		return models.Seat{}, unknownSeat(seatID)
	}
	return copySeat(seat), nil
}

// Seats returns a snapshot in seat declaration order.
func (l *SeatLedger) Seats() []models.Seat {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Seat, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, copySeat(l.seats[id]))
	}
	return out
}

// OccupiedCount counts seats carrying at least one active segment.
func (l *SeatLedger) OccupiedCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, id := range l.order {
		if l.seats[id].IsBooked() {
			n++
		}
	}
	return n
}

func copySeat(s *models.Seat) models.Seat {
	out := *s
	out.BookedSegments = append([]models.Segment{}, s.BookedSegments...)
	return out
}
