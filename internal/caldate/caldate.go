// Package caldate provides a calendar-date value keyed as YYYY-MM-DD.
// Dates compare and sort correctly as plain strings; arithmetic goes
// through time.Time so month and year boundaries behave.
package caldate

import (
	"fmt"
	"strings"
	"time"
)

const Layout = "2006-01-02"

// Date is a YYYY-MM-DD calendar date string.
type Date string

// Parse validates value and returns it as a Date.
func Parse(value string) (Date, error) {
	value = strings.TrimSpace(value)
	t, err := time.Parse(Layout, value)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return Date(t.Format(Layout)), nil
}

// Today returns the current local calendar date.
func Today() Date {
	return FromTime(time.Now())
}

// FromTime truncates t to its local calendar date.
func FromTime(t time.Time) Date {
	return Date(t.Format(Layout))
}

func (d Date) String() string {
	return string(d)
}

// Time returns midnight local time for the date. Invalid dates yield the
// zero time.
func (d Date) Time() time.Time {
	t, err := time.ParseInLocation(Layout, string(d), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays returns the date n calendar days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date(d.Time().AddDate(0, 0, n).Format(Layout))
}

// IsNextDayAfter reports whether d is exactly one calendar day after prev.
func (d Date) IsNextDayAfter(prev Date) bool {
	return prev.AddDays(1) == d
}
