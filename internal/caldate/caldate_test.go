package caldate_test

import (
	"testing"

	"github.com/aravindcleaerr/DietWise/internal/caldate"
)

func TestParseValidatesFormat(t *testing.T) {
	t.Parallel()
	d, err := caldate.Parse(" 2024-01-31 ")
	if err != nil {
		t.Fatalf("parse valid date: %v", err)
	}
	if d != "2024-01-31" {
		t.Fatalf("expected 2024-01-31, got %s", d)
	}
	for _, bad := range []string{"", "2024-1-31", "31-01-2024", "2024-13-01", "not-a-date"} {
		if _, err := caldate.Parse(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestAddDaysCrossesBoundaries(t *testing.T) {
	t.Parallel()
	cases := []struct {
		start caldate.Date
		days  int
		want  caldate.Date
	}{
		{"2024-01-31", 1, "2024-02-01"},
		{"2024-02-28", 1, "2024-02-29"}, // leap year
		{"2023-12-31", 1, "2024-01-01"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2024-01-01", 30, "2024-01-31"},
	}
	for _, tc := range cases {
		if got := tc.start.AddDays(tc.days); got != tc.want {
			t.Fatalf("%s + %d days: expected %s, got %s", tc.start, tc.days, tc.want, got)
		}
	}
}

func TestIsNextDayAfter(t *testing.T) {
	t.Parallel()
	if !caldate.Date("2024-01-02").IsNextDayAfter("2024-01-01") {
		t.Fatalf("expected 2024-01-02 to be next day after 2024-01-01")
	}
	if !caldate.Date("2024-03-01").IsNextDayAfter("2024-02-29") {
		t.Fatalf("expected leap-day rollover to count as consecutive")
	}
	if caldate.Date("2024-01-03").IsNextDayAfter("2024-01-01") {
		t.Fatalf("two-day gap must not count as consecutive")
	}
	if caldate.Date("2024-01-01").IsNextDayAfter("2024-01-02") {
		t.Fatalf("earlier date must not count as consecutive")
	}
	if caldate.Date("2024-01-01").IsNextDayAfter("2024-01-01") {
		t.Fatalf("same date must not count as consecutive")
	}
}
