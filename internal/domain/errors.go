package domain

import "errors"

var (
	// ErrInvalidRentalDays is returned when the rental day count is outside [1, 28]
	ErrInvalidRentalDays = errors.New("rental days must be a whole number between 1 and 28")

	// ErrInvalidDiscountPercent is returned when the discount is outside [0, 100]
	ErrInvalidDiscountPercent = errors.New("discount percent must be a whole number between 0 and 100")

	// ErrInvalidCheckoutDate is returned when the checkout date is missing or malformed
	ErrInvalidCheckoutDate = errors.New("checkout date must be a calendar date in yyyy-mm-dd format")

	// ErrToolNotFound is returned when the catalog has no tool with the given code
	ErrToolNotFound = errors.New("tool not found")
)
