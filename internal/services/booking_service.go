package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"sleeperbus/internal/domain"
	"sleeperbus/internal/domain/models"
	"sleeperbus/internal/repositories"
	"sleeperbus/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingRecorder receives every booking after it is created or cancelled.
// Failures are logged and never fail the request.
type BookingRecorder interface {
	Record(ctx context.Context, b models.Booking) error
}

// BookingService is the only writer of the seat ledger and booking store.
type BookingService struct {
	Route    *domain.Route
	Ledger   *repositories.SeatLedger
	Bookings *repositories.BookingStore
	Fares    FareService
	Meals    []models.Meal
	Locker   SeatLocker
	Journal  BookingRecorder

	RequestID string
	Now       func() time.Time
	NewID     func() string
}

// WithRequestID returns a copy whose log lines carry rid.
func (s *BookingService) WithRequestID(rid string) *BookingService {
	cp := *s
	cp.RequestID = rid
	return &cp
}

func (s *BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s *BookingService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return NewBookingID()
}

func (s *BookingService) locker() SeatLocker {
	if s.Locker != nil {
		return s.Locker
	}
	return noopLocker{}
}

// NewBookingID returns "BK" plus 12 upper-case hex characters.
func NewBookingID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "BK" + strings.ToUpper(hex[:12])
}

type noopLocker struct{}

func (noopLocker) Lock(context.Context, []string) (func(), error) { return func() {}, nil }

func (s *BookingService) Stations() []models.Station {
	return s.Route.Stations()
}

func (s *BookingService) MealCatalog() []models.Meal {
	return append([]models.Meal(nil), s.Meals...)
}

func (s *BookingService) mealPrice(id string) (int64, bool) {
	for _, m := range s.Meals {
		if strings.EqualFold(m.ID, id) {
			return m.Price, true
		}
	}
	return 0, false
}

// ListSeats annotates every seat with availability and per-seat fare for
// the requested journey.
func (s *BookingService) ListSeats(from, to string) ([]models.SeatView, error) {
	from, to = utils.NormalizeID(from), utils.NormalizeID(to)
	if from == "" || to == "" {
		return nil, domain.ValidationError{Msg: "From & To required"}
	}
	seg, err := s.Route.Normalize(from, to)
	if err != nil {
		return nil, err
	}
	req, err := s.Route.Span(seg)
	if err != nil {
		return nil, err
	}
	fare, err := s.Fares.Fare(seg.From, seg.To)
	if err != nil {
		return nil, err
	}

	seats := s.Ledger.Seats()
	out := make([]models.SeatView, 0, len(seats))
	for _, seat := range seats {
		ok, err := s.availableOn(seat, req)
		if err != nil {
			return nil, err
		}
		v := seat.View()
		f := fare
		v.Available = &ok
		v.Fare = &f
		out = append(out, v)
	}
	return out, nil
}

func (s *BookingService) availableOn(seat models.Seat, req domain.Span) (bool, error) {
	booked := make([]domain.Span, 0, len(seat.BookedSegments))
	for _, seg := range seat.BookedSegments {
		sp, err := s.Route.Span(seg)
		if err != nil {
			return false, err
		}
		booked = append(booked, sp)
	}
	return domain.AvailableFor(booked, req), nil
}

// SeatAvailability answers the single-seat question. An unknown seat is
// reported before station errors.
func (s *BookingService) SeatAvailability(seatID, from, to string) (bool, error) {
	seatID = utils.NormalizeID(seatID)
	if seatID == "" {
		return false, domain.ValidationError{Field: "seatId", Msg: "required"}
	}
	if !s.Ledger.Has(seatID) {
		return false, domain.NotFoundError{Resource: "seat", ID: seatID, Err: domain.ErrUnknownSeat}
	}
	from, to = utils.NormalizeID(from), utils.NormalizeID(to)
	if from == "" || to == "" {
		return false, domain.ValidationError{Msg: "From & To required"}
	}
	return s.Ledger.IsAvailable(seatID, from, to)
}

func (s *BookingService) validate(in models.BookingInput) (models.BookingInput, error) {
	for _, id := range in.SeatIDs {
		if utils.NormalizeID(id) == "" {
			return in, domain.ValidationError{Field: "seatIds", Msg: "blank seat id"}
		}
	}
	in.SeatIDs = utils.NormalizeIDs(in.SeatIDs)
	in.FromStation = utils.NormalizeID(in.FromStation)
	in.ToStation = utils.NormalizeID(in.ToStation)
	if in.Passenger != nil {
		p := *in.Passenger
		p.Name = utils.TrimOrEmpty(p.Name)
		p.Phone = utils.TrimOrEmpty(p.Phone)
		p.Email = utils.TrimOrEmpty(p.Email)
		in.Passenger = &p
	}

	missing := []string{}
	if len(in.SeatIDs) == 0 {
		missing = append(missing, "seatIds")
	}
	if in.FromStation == "" {
		missing = append(missing, "fromStation")
	}
	if in.ToStation == "" {
		missing = append(missing, "toStation")
	}
	if in.Passenger == nil || in.Passenger.Name == "" {
		missing = append(missing, "passenger")
	}
	if len(missing) > 0 {
		return in, domain.ValidationError{Msg: "Missing fields: " + strings.Join(missing, ", ")}
	}

	if utils.HasDuplicates(in.SeatIDs) {
		return in, domain.ValidationError{Field: "seatIds", Msg: "duplicate seat"}
	}
	if in.FromStation == in.ToStation {
		return in, domain.ValidationError{Field: "toStation", Msg: "origin and destination must differ"}
	}

	meals := make([]string, 0, len(in.Meals))
	for _, id := range utils.NormalizeIDs(in.Meals) {
		if _, ok := s.mealPrice(id); !ok {
			return in, domain.ValidationError{Field: "meals", Msg: "unknown meal " + id}
		}
		meals = append(meals, id)
	}
	in.Meals = meals
	return in, nil
}

// Create reserves every requested seat for the segment or none of them.
func (s *BookingService) Create(ctx context.Context, in models.BookingInput) (models.Booking, error) {
	in, err := s.validate(in)
	if err != nil {
		return models.Booking{}, err
	}
	seg, err := s.Route.Normalize(in.FromStation, in.ToStation)
	if err != nil {
		return models.Booking{}, err
	}

	release, err := s.locker().Lock(ctx, in.SeatIDs)
	if err != nil {
		return models.Booking{}, domain.ConflictError{Resource: "seat", Msg: "seats are busy, retry", Err: err}
	}
	defer release()

	conflicts := []string{}
	for _, id := range in.SeatIDs {
		ok, err := s.Ledger.IsAvailable(id, seg.From, seg.To)
		if err != nil {
			return models.Booking{}, err
		}
		if !ok {
			conflicts = append(conflicts, id)
		}
	}
	if len(conflicts) > 0 {
		utils.LogEvent(s.RequestID, "booking", "create_rejected", "seat conflict",
			zap.Strings("seats", conflicts), zap.String("from", seg.From), zap.String("to", seg.To))
		return models.Booking{}, domain.SeatUnavailableError{SeatIDs: conflicts}
	}

	perSeat, err := s.Fares.Fare(seg.From, seg.To)
	if err != nil {
		return models.Booking{}, err
	}
	var mealTotal int64
	for _, id := range in.Meals {
		p, _ := s.mealPrice(id)
		mealTotal += p
	}

	b := models.Booking{
		ID:          s.newID(),
		SeatIDs:     in.SeatIDs,
		FromStation: in.FromStation,
		ToStation:   in.ToStation,
		Segment:     seg,
		Passenger:   *in.Passenger,
		Meals:       in.Meals,
		FarePerSeat: perSeat,
		Fare:        perSeat * int64(len(in.SeatIDs)),
		MealTotal:   mealTotal,
		Status:      models.BookingConfirmed,
		CreatedAt:   s.now(),
	}

	for i, id := range b.SeatIDs {
		if err := s.Ledger.AddSegment(id, seg); err != nil {
			s.rollback(b.SeatIDs[:i], seg)
			return models.Booking{}, domain.InternalError{Msg: "ledger update failed", Err: err}
		}
	}
	if err := s.Bookings.Append(b); err != nil {
		s.rollback(b.SeatIDs, seg)
		return models.Booking{}, domain.InternalError{Msg: "booking store failed", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "create", "booking confirmed",
		zap.String("booking_id", b.ID), zap.Int("seats", len(b.SeatIDs)), zap.Int64("fare", b.Fare))
	s.record(ctx, b)
	return b, nil
}

func (s *BookingService) rollback(seatIDs []string, seg models.Segment) {
	for _, id := range seatIDs {
		_, _ = s.Ledger.RemoveSegment(id, seg)
	}
}

// Cancel retracts exactly this booking's segment from each of its seats.
func (s *BookingService) Cancel(ctx context.Context, id string) (models.Booking, error) {
	id = utils.NormalizeID(id)
	b, err := s.Bookings.Get(id)
	if err != nil {
		return models.Booking{}, err
	}

	release, err := s.locker().Lock(ctx, b.SeatIDs)
	if err != nil {
		return models.Booking{}, domain.ConflictError{Resource: "seat", Msg: "seats are busy, retry", Err: err}
	}
	defer release()

	b, err = s.Bookings.MarkCancelled(id, s.now())
	if err != nil {
		return b, err
	}
	for _, seatID := range b.SeatIDs {
		removed, err := s.Ledger.RemoveSegment(seatID, b.Segment)
		if err != nil {
			return b, domain.InternalError{Msg: "ledger update failed", Err: err}
		}
		if !removed {
			utils.GetLogger().Warn("cancelled segment missing from ledger",
				zap.String("booking_id", b.ID), zap.String("seat", seatID))
		}
	}

	utils.LogEvent(s.RequestID, "booking", "cancel", "booking cancelled", zap.String("booking_id", b.ID))
	s.record(ctx, b)
	return b, nil
}

func (s *BookingService) Get(id string) (models.Booking, error) {
	return s.Bookings.Get(utils.NormalizeID(id))
}

// List returns every booking, cancelled ones included.
func (s *BookingService) List() []models.Booking {
	return s.Bookings.List()
}

func (s *BookingService) record(ctx context.Context, b models.Booking) {
	if s.Journal == nil {
		return
	}
	if err := s.Journal.Record(ctx, b); err != nil {
		utils.GetLogger().Warn("booking journal write failed",
			zap.String("booking_id", b.ID), zap.String("status", string(b.Status)), zap.Error(err))
	}
}

// Describe renders "Ahmedabad -> Surat" for a segment, falling back to ids.
func (s *BookingService) Describe(seg models.Segment) string {
	name := func(id string) string {
		if st, err := s.Route.Station(id); err == nil && st.Name != "" {
			return st.Name
		}
		return id
	}
	return fmt.Sprintf("%s -> %s", name(seg.From), name(seg.To))
}
