package utils

import (
	"testing"
	"time"
)

func TestFormatDateTimeUsesUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	at := time.Date(2026, 10, 19, 13, 30, 0, 0, ist)
	if got := FormatDateTime(at); got != "19 Oct 2026 08:00 UTC" {
		t.Fatalf("unexpected format %q", got)
	}
}
