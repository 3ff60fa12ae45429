package models

import "fmt"

const (
	BerthLower = "lower"
	BerthUpper = "upper"
)

// Seat holds the active booked segments for one berth.
type Seat struct {
	ID             string
	Number         int
	Type           string
	BookedSegments []Segment
}

// IsBooked is derived from the ledger, never stored.
func (s Seat) IsBooked() bool {
	return len(s.BookedSegments) > 0
}

// SeatView is the wire shape of a seat. Available and Fare are only set
// when the seat was evaluated against a requested segment.
type SeatView struct {
	ID             string    `json:"id"`
	Number         int       `json:"number"`
	Type           string    `json:"type"`
	IsBooked       bool      `json:"isBooked"`
	BookedSegments []Segment `json:"bookedSegments"`
	Available      *bool     `json:"available,omitempty"`
	Fare           *int64    `json:"fare,omitempty"`
}

func (s Seat) View() SeatView {
	return SeatView{
		ID:             s.ID,
		Number:         s.Number,
		Type:           s.Type,
		IsBooked:       s.IsBooked(),
		BookedSegments: append([]Segment{}, s.BookedSegments...),
	}
}

// GenerateSeats builds count seats S001.. alternating lower and upper berths.
func GenerateSeats(count int) []Seat {
	types := []string{BerthLower, BerthUpper}
	out := make([]Seat, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, Seat{
			ID:             fmt.Sprintf("S%03d", i+1),
			Number:         i + 1,
			Type:           types[i%len(types)],
			BookedSegments: []Segment{},
		})
	}
	return out
}
