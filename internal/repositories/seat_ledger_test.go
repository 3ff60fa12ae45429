package repositories

import (
	"errors"
	"testing"

	"sleeperbus/internal/domain"
	"sleeperbus/internal/domain/models"
)

func testRoute(t *testing.T) *domain.Route {
	t.Helper()
	r, err := domain.NewRoute([]models.Station{
		{ID: "ST001", Name: "Ahmedabad", Distance: 0},
		{ID: "ST002", Name: "Vadodara", Distance: 110},
		{ID: "ST003", Name: "Surat", Distance: 260},
		{ID: "ST004", Name: "Mumbai", Distance: 530},
	})
	if err != nil {
		t.Fatalf("route init error: %v", err)
	}
	return r
}

func TestSeatLedgerFreshSeatsAreAvailable(t *testing.T) {
	l := NewSeatLedger(testRoute(t), models.GenerateSeats(4))
	for _, s := range l.Seats() {
		ok, err := l.IsAvailable(s.ID, "ST001", "ST004")
		if err != nil || !ok {
			t.Fatalf("seat %s should be available before any booking: %v %v", s.ID, ok, err)
		}
		if s.IsBooked() {
			t.Fatalf("seat %s should not be booked", s.ID)
		}
	}
	if l.OccupiedCount() != 0 {
		t.Fatalf("occupied = %d", l.OccupiedCount())
	}
}

func TestSeatLedgerAddAndRemoveExactSegment(t *testing.T) {
	l := NewSeatLedger(testRoute(t), models.GenerateSeats(2))
	ab := models.Segment{From: "ST001", To: "ST002"}
	bc := models.Segment{From: "ST002", To: "ST003"}

	if err := l.AddSegment("S001", ab); err != nil {
		t.Fatalf("AddSegment error: %v", err)
	}
	if err := l.AddSegment("S001", bc); err != nil {
		t.Fatalf("AddSegment error: %v", err)
	}
	if ok, _ := l.IsAvailable("S001", "ST001", "ST002"); ok {
		t.Fatalf("booked segment reported available")
	}
	if ok, _ := l.IsAvailable("S001", "ST003", "ST004"); !ok {
		t.Fatalf("adjacent segment should be available")
	}

	removed, err := l.RemoveSegment("S001", ab)
	if err != nil || !removed {
		t.Fatalf("RemoveSegment = %v, %v", removed, err)
	}
	seat, _ := l.Seat("S001")
	if len(seat.BookedSegments) != 1 || seat.BookedSegments[0] != bc {
		t.Fatalf("other segment should survive, got %+v", seat.BookedSegments)
	}

	removed, _ = l.RemoveSegment("S001", ab)
	if removed {
		t.Fatalf("removing a missing segment should report false")
	}
	l.RemoveSegment("S001", bc)
	seat, _ = l.Seat("S001")
	if seat.IsBooked() {
		t.Fatalf("seat with no segments must be free")
	}
}

func TestSeatLedgerUnknownSeat(t *testing.T) {
	l := NewSeatLedger(testRoute(t), models.GenerateSeats(1))
	if _, err := l.IsAvailable("S999", "ST001", "ST002"); !errors.Is(err, domain.ErrUnknownSeat) {
		t.Fatalf("expected ErrUnknownSeat, got %v", err)
	}
	if err := l.AddSegment("S999", models.Segment{From: "ST001", To: "ST002"}); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSeatLedgerUnknownStation(t *testing.T) {
	l := NewSeatLedger(testRoute(t), models.GenerateSeats(1))
	if _, err := l.IsAvailable("S001", "ST001", "XX"); !errors.Is(err, domain.ErrUnknownStation) {
		t.Fatalf("expected ErrUnknownStation, got %v", err)
	}
}

func TestSeatLedgerSnapshotIsDetached(t *testing.T) {
	l := NewSeatLedger(testRoute(t), models.GenerateSeats(1))
	l.AddSegment("S001", models.Segment{From: "ST001", To: "ST002"})
	snap := l.Seats()
	snap[0].BookedSegments[0].To = "ST004"
	seat, _ := l.Seat("S001")
	if seat.BookedSegments[0].To != "ST002" {
		t.Fatalf("snapshot mutation leaked into ledger")
	}
}
