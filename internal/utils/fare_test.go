package utils

import "testing"

func TestComputeFareRoundsAndIsSymmetric(t *testing.T) {
	if got := ComputeFare(0, 530, 0.8); got != 424 {
		t.Fatalf("ComputeFare(0,530) = %d, want 424", got)
	}
	if got := ComputeFare(110, 260, 0.8); got != 120 {
		t.Fatalf("ComputeFare(110,260) = %d, want 120", got)
	}
	if ComputeFare(260, 0, 0.8) != ComputeFare(0, 260, 0.8) {
		t.Fatalf("fare should not depend on direction")
	}
	if got := ComputeFare(0, 5, 0.5); got != 3 {
		t.Fatalf("2.5 should round half away from zero, got %d", got)
	}
	if got := ComputeFare(0, 100, 0); got != 0 {
		t.Fatalf("zero rate should price 0, got %d", got)
	}
}
