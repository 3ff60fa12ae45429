package services

import (
	"sleeperbus/internal/domain/models"
	"sleeperbus/internal/repositories"
	"sleeperbus/internal/utils"
)

// StatisticsService is read-only over the booking store and seat ledger.
type StatisticsService struct {
	Bookings *repositories.BookingStore
	Ledger   *repositories.SeatLedger
}

func (s StatisticsService) Compute() models.Statistics {
	var out models.Statistics
	for _, b := range s.Bookings.List() {
		out.TotalBookings++
		switch b.Status {
		case models.BookingConfirmed:
			out.ConfirmedBookings++
			out.ConfirmedRevenue += b.Fare
		case models.BookingCancelled:
			out.CancelledBookings++
		}
	}
	out.OccupiedSeats = s.Ledger.OccupiedCount()
	out.TotalSeats = s.Ledger.Len()
	out.OccupancyRate = utils.FormatPercent(out.OccupiedSeats, out.TotalSeats)
	return out
}
