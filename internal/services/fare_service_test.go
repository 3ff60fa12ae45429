package services

import (
	"errors"
	"testing"

	"sleeperbus/internal/domain"
)

func TestFareIsSymmetric(t *testing.T) {
	svc := newTestService(t, 1)
	ids := []string{ahmedabad, vadodara, surat, mumbai}
	for _, x := range ids {
		for _, y := range ids {
			a, err := svc.Fares.Fare(x, y)
			if err != nil {
				t.Fatalf("Fare(%s,%s) error: %v", x, y, err)
			}
			b, _ := svc.Fares.Fare(y, x)
			if a != b {
				t.Fatalf("Fare(%s,%s)=%d but Fare(%s,%s)=%d", x, y, a, y, x, b)
			}
		}
	}
}

func TestFareUnknownStation(t *testing.T) {
	svc := newTestService(t, 1)
	if _, err := svc.Fares.Fare("ST404", mumbai); !errors.Is(err, domain.ErrUnknownStation) {
		t.Fatalf("expected ErrUnknownStation, got %v", err)
	}
}
