package utils

import "time"

// Holidays returns the observed Independence Day and Labor Day for a year
func Holidays(year int) [2]time.Time {
	return [2]time.Time{IndependenceDayObserved(year), LaborDay(year)}
}

// IndependenceDayObserved returns July 4, moved to the Friday before when it
// falls on a Saturday and to the Monday after when it falls on a Sunday
func IndependenceDayObserved(year int) time.Time {
	july4 := DateOf(year, time.July, 4)
	switch july4.Weekday() {
	case time.Saturday:
		return july4.AddDate(0, 0, -1)
	case time.Sunday:
		return july4.AddDate(0, 0, 1)
	default:
		return july4
	}
}

// LaborDay returns the first Monday in September
func LaborDay(year int) time.Time {
	sept1 := DateOf(year, time.September, 1)
	offset := (int(time.Monday) - int(sept1.Weekday()) + 7) % 7
	return sept1.AddDate(0, 0, offset)
}

// IsHoliday reports whether the date is one of the observed holidays of its own year
func IsHoliday(t time.Time) bool {
	for _, h := range Holidays(t.Year()) {
		if SameDate(t, h) {
			return true
		}
	}
	return false
}
