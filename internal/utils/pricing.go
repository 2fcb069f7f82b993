package utils

import (
	"fmt"

	"github.com/shopspring/decimal"

	"tool-rental-pos/internal/domain"
)

// CurrencyPlaces is the number of fraction digits kept for currency amounts
const CurrencyPlaces = 2

var hundred = decimal.NewFromInt(100)

// ChargeBreakdown holds the monetary figures of one rental
type ChargeBreakdown struct {
	PreDiscountCharge decimal.Decimal
	DiscountAmount    decimal.Decimal
	FinalCharge       decimal.Decimal
}

// CalculateCharges prices a rental. The discount is taken directly as a
// percentage of the pre-discount charge and rounded half-up to cents; the
// final charge is the exact difference of the two.
func CalculateCharges(chargeDays int, dailyCharge decimal.Decimal, discountPercent int) (ChargeBreakdown, error) {
	if chargeDays < 0 {
		return ChargeBreakdown{}, fmt.Errorf("charge days must not be negative, got %d", chargeDays)
	}
	if dailyCharge.IsNegative() {
		return ChargeBreakdown{}, fmt.Errorf("daily charge must not be negative, got %s", dailyCharge)
	}
	if discountPercent < domain.MinDiscountPercent || discountPercent > domain.MaxDiscountPercent {
		return ChargeBreakdown{}, fmt.Errorf("%w: got %d", domain.ErrInvalidDiscountPercent, discountPercent)
	}

	preDiscount := dailyCharge.Mul(decimal.NewFromInt(int64(chargeDays)))
	discount := RoundCurrency(preDiscount.Mul(decimal.NewFromInt(int64(discountPercent))).Div(hundred))

	return ChargeBreakdown{
		PreDiscountCharge: preDiscount,
		DiscountAmount:    discount,
		FinalCharge:       preDiscount.Sub(discount),
	}, nil
}

// RoundCurrency rounds half away from zero to cents. Amounts here are never
// negative, so this is half-up rounding.
func RoundCurrency(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(CurrencyPlaces)
}
