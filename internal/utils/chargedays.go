package utils

import (
	"time"

	"tool-rental-pos/internal/domain"
)

// CalculateChargeDays counts the billable days of a rental. It starts from
// rentalDays and walks every day after checkoutDate through dueDate, taking a
// day off the count whenever the policy does not bill it. At most one day comes
// off per date: a holiday the policy does not bill is free, and any other day
// is judged as a weekend or a weekday.
func CalculateChargeDays(checkoutDate, dueDate time.Time, policy domain.ChargePolicy, rentalDays int) int {
	chargeDays := rentalDays
	last := CalendarDate(dueDate)

	for day := CalendarDate(checkoutDate).AddDate(0, 0, 1); !day.After(last); day = day.AddDate(0, 0, 1) {
		if !isChargeable(day, policy) {
			chargeDays--
		}
	}

	if chargeDays < 0 {
		return 0
	}
	return chargeDays
}

func isChargeable(day time.Time, policy domain.ChargePolicy) bool {
	switch {
	case IsHoliday(day) && !policy.HolidayCharge:
		return false
	case IsWeekend(day):
		return policy.WeekendCharge
	default:
		return policy.WeekdayCharge
	}
}
