package services

import (
	"errors"
	"time"

	"sleeperbus/internal/domain"
	"sleeperbus/internal/domain/models"
	"sleeperbus/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
)

const ticketIssuer = "sleeperbus"

// TicketClaims is what a conductor's scanner reads back from a ticket code.
type TicketClaims struct {
	BookingID string   `json:"bid"`
	SeatIDs   []string `json:"seats"`
	From      string   `json:"from"`
	To        string   `json:"to"`
	jwt.RegisteredClaims
}

// TicketVerification pairs verified claims with the booking's current status.
type TicketVerification struct {
	Claims TicketClaims         `json:"claims"`
	Status models.BookingStatus `json:"status"`
	Valid  bool                 `json:"valid"`
}

// TicketService signs and verifies HS256 ticket codes.
type TicketService struct {
	Secret   []byte
	Bookings *repositories.BookingStore
}

func (s TicketService) IssueCode(b models.Booking) (string, error) {
	if len(s.Secret) == 0 {
		return "", domain.InternalError{Msg: "ticket secret not configured"}
	}
	claims := TicketClaims{
		BookingID: b.ID,
		SeatIDs:   b.SeatIDs,
		From:      b.Segment.From,
		To:        b.Segment.To,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   ticketIssuer,
			Subject:  b.ID,
			IssuedAt: jwt.NewNumericDate(b.CreatedAt.Truncate(time.Second)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// Verify checks the signature, then that the booking still exists and still
// matches the coded seats and segment. A cancelled booking verifies but is
// reported as not valid for travel.
func (s TicketService) Verify(code string) (TicketVerification, error) {
	var out TicketVerification
	if code == "" {
		return out, domain.ValidationError{Field: "code", Msg: "required"}
	}
	claims := &TicketClaims{}
	_, err := jwt.ParseWithClaims(code, claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(ticketIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return out, domain.ValidationError{Field: "code", Msg: "signature mismatch", Err: err}
		}
		return out, domain.ValidationError{Field: "code", Msg: "malformed ticket code", Err: err}
	}

	b, err := s.Bookings.Get(claims.BookingID)
	if err != nil {
		return out, err
	}
	if b.Segment.From != claims.From || b.Segment.To != claims.To || !sameSeats(b.SeatIDs, claims.SeatIDs) {
		return out, domain.ValidationError{Field: "code", Msg: "ticket does not match booking"}
	}

	out.Claims = *claims
	out.Status = b.Status
	out.Valid = b.Status == models.BookingConfirmed
	return out, nil
}

func sameSeats(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
