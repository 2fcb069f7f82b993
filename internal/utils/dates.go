package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// DateOf returns the calendar date as midnight UTC
func DateOf(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CalendarDate drops the clock and location from t, keeping its calendar date
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return DateOf(y, m, d)
}

// ParseDate converts a yyyy-mm-dd formatted string into a calendar date
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd: %w", err)
	}
	return t, nil
}

// DueDate returns the date the tool is due back, rentalDays calendar days after checkout
func DueDate(checkoutDate time.Time, rentalDays int) time.Time {
	return CalendarDate(checkoutDate).AddDate(0, 0, rentalDays)
}

// SameDate reports whether a and b fall on the same calendar date
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsWeekend reports whether the date is a Saturday or Sunday
func IsWeekend(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}
