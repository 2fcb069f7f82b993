package printer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tool-rental-pos/internal/domain"
	"tool-rental-pos/internal/utils"
)

func TestRenderAgreement(t *testing.T) {
	t.Run("Blank agreement", func(t *testing.T) {
		date := utils.DateOf(2021, time.February, 28)
		a := domain.RentalAgreement{
			ToolCode:          "LADW",
			ToolType:          "Ladder",
			ToolBrand:         "WBrand",
			RentalDays:        1,
			CheckoutDate:      date,
			DueDate:           date,
			DailyRentalCharge: decimal.RequireFromString("1.99"),
			ChargeDays:        0,
			PreDiscountCharge: decimal.Zero,
			DiscountPercent:   0,
			DiscountAmount:    decimal.Zero,
			FinalCharge:       decimal.Zero,
		}

		expected := "Tool code: LADW\n" +
			"Tool type: Ladder\n" +
			"Tool brand: WBrand\n" +
			"Rental days: 1\n" +
			"Check out date: 02/28/2021\n" +
			"Due date: 02/28/2021\n" +
			"Daily rental charge: $1.99\n" +
			"Charge days: 0\n" +
			"Pre-discount charge: $0.00\n" +
			"Discount percent: 0%\n" +
			"Discount amount: $0.00\n" +
			"Final charge: $0.00"

		assert.Equal(t, expected, RenderAgreement(a))
	})

	t.Run("Chainsaw checkout", func(t *testing.T) {
		a := domain.RentalAgreement{
			ToolCode:          "CHNS",
			ToolType:          "Chainsaw",
			ToolBrand:         "Stihl",
			RentalDays:        5,
			CheckoutDate:      utils.DateOf(2015, time.July, 2),
			DueDate:           utils.DateOf(2015, time.July, 7),
			DailyRentalCharge: decimal.RequireFromString("1.49"),
			ChargeDays:        3,
			PreDiscountCharge: decimal.RequireFromString("4.47"),
			DiscountPercent:   25,
			DiscountAmount:    decimal.RequireFromString("1.12"),
			FinalCharge:       decimal.RequireFromString("3.35"),
		}

		expected := "Tool code: CHNS\n" +
			"Tool type: Chainsaw\n" +
			"Tool brand: Stihl\n" +
			"Rental days: 5\n" +
			"Check out date: 07/02/2015\n" +
			"Due date: 07/07/2015\n" +
			"Daily rental charge: $1.49\n" +
			"Charge days: 3\n" +
			"Pre-discount charge: $4.47\n" +
			"Discount percent: 25%\n" +
			"Discount amount: $1.12\n" +
			"Final charge: $3.35"

		assert.Equal(t, expected, RenderAgreement(a))
	})
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "$0.00"},
		{"1.5", "$1.50"},
		{"8.97", "$8.97"},
		{"999.99", "$999.99"},
		{"1234.5", "$1,234.50"},
		{"1234567.891", "$1,234,567.89"},
		{"0.005", "$0.01"},
		{"-3.35", "-$3.35"},
		{"92233720368547758.07", "$92,233,720,368,547,758.07"},
		{"12345678901234567890.125", "$12,345,678,901,234,567,890.13"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestGroupDollars(t *testing.T) {
	assert.Equal(t, "0", groupDollars("0"))
	assert.Equal(t, "999", groupDollars("999"))
	assert.Equal(t, "1,000", groupDollars("1000"))
	assert.Equal(t, "123,456,789,012,345,678,901", groupDollars("123456789012345678901"))
}
