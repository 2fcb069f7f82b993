package domain

import "github.com/shopspring/decimal"

// ChargePolicy says which kinds of occupied days are billable for a tool.
// Any combination is legal, including all false.
type ChargePolicy struct {
	WeekdayCharge bool `json:"weekday_charge"`
	WeekendCharge bool `json:"weekend_charge"`
	HolidayCharge bool `json:"holiday_charge"`
}

// ToolType carries the pricing shared by every tool of one type.
type ToolType struct {
	Name        string          `json:"name"`
	DailyCharge decimal.Decimal `json:"daily_charge"`
	ChargePolicy
}

type Tool struct {
	Code        string          `json:"code"`
	Type        string          `json:"type"`
	Brand       string          `json:"brand"`
	DailyCharge decimal.Decimal `json:"daily_charge"`
	ChargePolicy
}

// NewTool builds a rentable tool that inherits pricing from its type.
func NewTool(code, brand string, toolType ToolType) Tool {
	return Tool{
		Code:         code,
		Type:         toolType.Name,
		Brand:        brand,
		DailyCharge:  toolType.DailyCharge,
		ChargePolicy: toolType.ChargePolicy,
	}
}
