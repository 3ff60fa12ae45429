package utils

import "time"

const layoutTicketTime = "02 Jan 2006 15:04 MST"

// NowUTC returns current time in UTC. Booking timestamps are always UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatDateTime renders a booking timestamp for printed tickets, e.g.
// "19 Oct 2026 08:00 UTC".
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(layoutTicketTime)
}
