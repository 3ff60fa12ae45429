package services

import (
	"context"
	"testing"
)

func TestStatisticsEmpty(t *testing.T) {
	svc := newTestService(t, 40)
	stats := StatisticsService{Bookings: svc.Bookings, Ledger: svc.Ledger}.Compute()
	if stats.TotalBookings != 0 || stats.OccupiedSeats != 0 || stats.OccupancyRate != "0.00%" {
		t.Fatalf("unexpected empty stats %+v", stats)
	}
	if stats.TotalSeats != 40 {
		t.Fatalf("total seats = %d", stats.TotalSeats)
	}
}

func TestStatisticsFullAndCancelled(t *testing.T) {
	svc := newTestService(t, 3)
	ctx := context.Background()
	if _, err := svc.Create(ctx, book([]string{"S001", "S002"}, ahmedabad, vadodara)); err != nil {
		t.Fatalf("create error: %v", err)
	}
	if _, err := svc.Create(ctx, book([]string{"S003"}, surat, mumbai)); err != nil {
		t.Fatalf("create error: %v", err)
	}
	stats := StatisticsService{Bookings: svc.Bookings, Ledger: svc.Ledger}.Compute()
	if stats.OccupancyRate != "100.00%" || stats.OccupiedSeats != 3 {
		t.Fatalf("every seat booked should be 100%%, got %+v", stats)
	}
	if stats.ConfirmedRevenue != 88*2+216 {
		t.Fatalf("revenue = %d", stats.ConfirmedRevenue)
	}

	last, _ := svc.Create(ctx, book([]string{"S001"}, vadodara, surat))
	if _, err := svc.Cancel(ctx, last.ID); err != nil {
		t.Fatalf("cancel error: %v", err)
	}
	stats = StatisticsService{Bookings: svc.Bookings, Ledger: svc.Ledger}.Compute()
	if stats.TotalBookings != 3 || stats.ConfirmedBookings != 2 || stats.CancelledBookings != 1 {
		t.Fatalf("unexpected counts %+v", stats)
	}

	bookings := svc.List()
	if _, err := svc.Cancel(ctx, bookings[1].ID); err != nil {
		t.Fatalf("cancel error: %v", err)
	}
	stats = StatisticsService{Bookings: svc.Bookings, Ledger: svc.Ledger}.Compute()
	if stats.OccupancyRate != "66.67%" {
		t.Fatalf("occupancy after freeing S003 = %s", stats.OccupancyRate)
	}
}
