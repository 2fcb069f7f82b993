package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"

	"tool-rental-pos/internal/domain"
	"tool-rental-pos/internal/utils"
)

var (
	rentalDaysTag      = fmt.Sprintf("min=%d,max=%d", domain.MinRentalDays, domain.MaxRentalDays)
	discountPercentTag = fmt.Sprintf("min=%d,max=%d", domain.MinDiscountPercent, domain.MaxDiscountPercent)
)

// New returns a configured validator for checkout input
func New() *validatorv10.Validate {
	return validatorv10.New(validatorv10.WithRequiredStructEnabled())
}

// ValidateCheckout checks a checkout request and reports every rejected field
// as the matching domain error, joined together.
func ValidateCheckout(v *validatorv10.Validate, req domain.CheckoutRequest) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var ve validatorv10.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	errs := make([]error, 0, len(ve))
	for _, fe := range ve {
		errs = append(errs, fieldError(fe))
	}
	return errors.Join(errs...)
}

// ValidateRentalDays rejects a rental day count outside [1, 28]
func ValidateRentalDays(v *validatorv10.Validate, days int) error {
	if err := v.Var(days, rentalDaysTag); err != nil {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidRentalDays, days)
	}
	return nil
}

// ValidateDiscountPercent rejects a discount outside [0, 100]
func ValidateDiscountPercent(v *validatorv10.Validate, percent int) error {
	if err := v.Var(percent, discountPercentTag); err != nil {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidDiscountPercent, percent)
	}
	return nil
}

// ParseRentalDays reads a clerk-entered rental day count
func ParseRentalDays(v *validatorv10.Validate, input string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", domain.ErrInvalidRentalDays, input)
	}
	if err := ValidateRentalDays(v, days); err != nil {
		return 0, err
	}
	return days, nil
}

// ParseDiscountPercent reads a clerk-entered discount percentage
func ParseDiscountPercent(v *validatorv10.Validate, input string) (int, error) {
	percent, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(input), "%")))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", domain.ErrInvalidDiscountPercent, input)
	}
	if err := ValidateDiscountPercent(v, percent); err != nil {
		return 0, err
	}
	return percent, nil
}

// ParseCheckoutDate reads a yyyy-mm-dd checkout date
func ParseCheckoutDate(input string) (time.Time, error) {
	date, err := utils.ParseDate(strings.TrimSpace(input))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidCheckoutDate, err)
	}
	return date, nil
}

func fieldError(fe validatorv10.FieldError) error {
	switch fe.StructField() {
	case "RentalDays":
		return fmt.Errorf("%w: got %v", domain.ErrInvalidRentalDays, fe.Value())
	case "DiscountPercent":
		return fmt.Errorf("%w: got %v", domain.ErrInvalidDiscountPercent, fe.Value())
	case "CheckoutDate":
		return domain.ErrInvalidCheckoutDate
	case "ToolCode":
		return fmt.Errorf("%w: tool code is required", domain.ErrToolNotFound)
	default:
		return fmt.Errorf("%s failed %s validation", fe.StructNamespace(), fe.Tag())
	}
}
