package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	MinRentalDays      = 1
	MaxRentalDays      = 28
	MinDiscountPercent = 0
	MaxDiscountPercent = 100
)

// CheckoutRequest is the clerk's input for a single checkout.
type CheckoutRequest struct {
	ToolCode        string    `json:"tool_code" validate:"required"`
	CheckoutDate    time.Time `json:"checkout_date" validate:"required"`
	RentalDays      int       `json:"rental_days" validate:"min=1,max=28"`
	DiscountPercent int       `json:"discount_percent" validate:"min=0,max=100"`
}

// RentalAgreement is the result of a checkout. It is returned by value and
// never modified after the checkout service assembles it.
type RentalAgreement struct {
	ToolCode          string          `json:"tool_code"`
	ToolType          string          `json:"tool_type"`
	ToolBrand         string          `json:"tool_brand"`
	RentalDays        int             `json:"rental_days"`
	CheckoutDate      time.Time       `json:"checkout_date"`
	DueDate           time.Time       `json:"due_date"`
	DailyRentalCharge decimal.Decimal `json:"daily_rental_charge"`
	ChargeDays        int             `json:"charge_days"`
	PreDiscountCharge decimal.Decimal `json:"pre_discount_charge"`
	DiscountPercent   int             `json:"discount_percent"`
	DiscountAmount    decimal.Decimal `json:"discount_amount"`
	FinalCharge       decimal.Decimal `json:"final_charge"`
}
