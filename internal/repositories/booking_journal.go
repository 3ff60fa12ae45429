package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	intdb "sleeperbus/internal/db"
	"sleeperbus/internal/domain/models"
)

const journalTable = "booking_journal"

// BookingJournal mirrors booking records into MySQL for audit. It is write
// only: the engine never rebuilds its ledger from it.
type BookingJournal struct {
	DB *sql.DB

	mu    sync.Mutex
	ready bool
}

func NewBookingJournal(db *sql.DB) *BookingJournal {
	return &BookingJournal{DB: db}
}

// ensureTable creates the table on first use. A failed attempt is retried
// on the next call.
func (j *BookingJournal) ensureTable(ctx context.Context) error {
	if j.DB == nil {
		return fmt.Errorf("journal database not configured")
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.ready {
		return nil
	}
	if !intdb.HasTable(ctx, j.DB, journalTable) {
		if _, err := j.DB.ExecContext(ctx, journalDDL); err != nil {
			return err
		}
	}
	j.ready = true
	return nil
}

const journalDDL = `
CREATE TABLE IF NOT EXISTS booking_journal (
	id VARCHAR(32) PRIMARY KEY,
	seat_ids VARCHAR(512) NOT NULL,
	from_station VARCHAR(32) NOT NULL,
	to_station VARCHAR(32) NOT NULL,
	passenger_name VARCHAR(255) NOT NULL,
	passenger_phone VARCHAR(64) NULL,
	meals VARCHAR(255) NOT NULL DEFAULT '',
	fare_per_seat BIGINT NOT NULL,
	fare BIGINT NOT NULL,
	meal_total BIGINT NOT NULL DEFAULT 0,
	status VARCHAR(16) NOT NULL,
	created_at DATETIME NOT NULL,
	cancelled_at DATETIME NULL,
	KEY idx_status (status)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`

// Record upserts the booking row; a second call with the same id only
// refreshes status and cancelled_at.
func (j *BookingJournal) Record(ctx context.Context, b models.Booking) error {
	if err := j.ensureTable(ctx); err != nil {
		return err
	}
	var cancelledAt any
	if b.CancelledAt != nil {
		cancelledAt = b.CancelledAt.UTC()
	}
	_, err := j.DB.ExecContext(ctx, `
		INSERT INTO booking_journal
			(id, seat_ids, from_station, to_station, passenger_name, passenger_phone, meals,
			 fare_per_seat, fare, meal_total, status, created_at, cancelled_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE status=VALUES(status), cancelled_at=VALUES(cancelled_at)`,
		b.ID,
		strings.Join(b.SeatIDs, ","),
		b.FromStation,
		b.ToStation,
		b.Passenger.Name,
		intdb.NullIfEmpty(b.Passenger.Phone),
		strings.Join(b.Meals, ","),
		b.FarePerSeat,
		b.Fare,
		b.MealTotal,
		string(b.Status),
		b.CreatedAt.UTC(),
		cancelledAt,
	)
	return err
}

// Count returns the number of journaled bookings by status.
func (j *BookingJournal) Count(ctx context.Context) (map[string]int, error) {
	if err := j.ensureTable(ctx); err != nil {
		return nil, err
	}
	rows, err := j.DB.QueryContext(ctx, `SELECT status, COUNT(*) FROM booking_journal GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return out, err
		}
		out[status] = n
	}
	return out, rows.Err()
}
