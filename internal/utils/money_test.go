package utils

import "testing"

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		n, d int
		want string
	}{
		{0, 40, "0.00%"},
		{40, 40, "100.00%"},
		{1, 3, "33.33%"},
		{2, 3, "66.67%"},
		{5, 0, "0.00%"},
	}
	for _, tc := range cases {
		if got := FormatPercent(tc.n, tc.d); got != tc.want {
			t.Fatalf("FormatPercent(%d,%d) = %q, want %q", tc.n, tc.d, got, tc.want)
		}
	}
}

func TestFormatRupee(t *testing.T) {
	cases := map[int64]string{
		0:       "Rs 0",
		424:     "Rs 424",
		1272:    "Rs 1,272",
		123456:  "Rs 1,23,456",
		-15000:  "-Rs 15,000",
		1234567: "Rs 12,34,567",
	}
	for in, want := range cases {
		if got := FormatRupee(in); got != want {
			t.Fatalf("FormatRupee(%d) = %q, want %q", in, got, want)
		}
	}
}
