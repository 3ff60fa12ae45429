package models

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Passenger is the lead traveller named on a booking.
type Passenger struct {
	Name   string `json:"name"`
	Age    int    `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Email  string `json:"email,omitempty"`
}

// Booking is append-only history. Only Status and CancelledAt change after creation.
type Booking struct {
	ID          string        `json:"id"`
	SeatIDs     []string      `json:"seatIds"`
	FromStation string        `json:"fromStation"`
	ToStation   string        `json:"toStation"`
	Segment     Segment       `json:"segment"`
	Passenger   Passenger     `json:"passenger"`
	Meals       []string      `json:"meals"`
	FarePerSeat int64         `json:"farePerSeat"`
	Fare        int64         `json:"fare"`
	MealTotal   int64         `json:"mealTotal"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	CancelledAt *time.Time    `json:"cancelledAt,omitempty"`
}

func (b Booking) IsCancelled() bool {
	return b.Status == BookingCancelled
}

// Clone returns a copy that shares no slices with b.
func (b Booking) Clone() Booking {
	out := b
	out.SeatIDs = append([]string(nil), b.SeatIDs...)
	out.Meals = append([]string{}, b.Meals...)
	if b.CancelledAt != nil {
		t := *b.CancelledAt
		out.CancelledAt = &t
	}
	return out
}

// BookingInput is the create-booking request after JSON binding.
type BookingInput struct {
	SeatIDs     []string   `json:"seatIds"`
	FromStation string     `json:"fromStation"`
	ToStation   string     `json:"toStation"`
	Passenger   *Passenger `json:"passenger"`
	Meals       []string   `json:"meals"`
}
