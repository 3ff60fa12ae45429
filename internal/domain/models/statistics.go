package models

type Statistics struct {
	TotalBookings     int    `json:"totalBookings"`
	ConfirmedBookings int    `json:"confirmedBookings"`
	CancelledBookings int    `json:"cancelledBookings"`
	OccupiedSeats     int    `json:"occupiedSeats"`
	TotalSeats        int    `json:"totalSeats"`
	OccupancyRate     string `json:"occupancyRate"`
	ConfirmedRevenue  int64  `json:"confirmedRevenue"`
}
