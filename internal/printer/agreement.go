package printer

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"tool-rental-pos/internal/domain"
	"tool-rental-pos/internal/utils"
)

// AgreementDateLayout is MM/dd/yyyy
const AgreementDateLayout = "01/02/2006"

var usd = message.NewPrinter(language.AmericanEnglish)

// RenderAgreement formats an agreement for the clerk, one field per line and
// no trailing newline.
func RenderAgreement(a domain.RentalAgreement) string {
	var b strings.Builder

	usd.Fprintf(&b, "Tool code: %s\n", a.ToolCode)
	usd.Fprintf(&b, "Tool type: %s\n", a.ToolType)
	usd.Fprintf(&b, "Tool brand: %s\n", a.ToolBrand)
	usd.Fprintf(&b, "Rental days: %d\n", a.RentalDays)
	usd.Fprintf(&b, "Check out date: %s\n", a.CheckoutDate.Format(AgreementDateLayout))
	usd.Fprintf(&b, "Due date: %s\n", a.DueDate.Format(AgreementDateLayout))
	usd.Fprintf(&b, "Daily rental charge: %s\n", FormatCurrency(a.DailyRentalCharge))
	usd.Fprintf(&b, "Charge days: %d\n", a.ChargeDays)
	usd.Fprintf(&b, "Pre-discount charge: %s\n", FormatCurrency(a.PreDiscountCharge))
	usd.Fprintf(&b, "Discount percent: %d%%\n", a.DiscountPercent)
	usd.Fprintf(&b, "Discount amount: %s\n", FormatCurrency(a.DiscountAmount))
	usd.Fprintf(&b, "Final charge: %s", FormatCurrency(a.FinalCharge))

	return b.String()
}

// FormatCurrency renders an amount as US dollars, e.g. $1,234.50
func FormatCurrency(amount decimal.Decimal) string {
	rounded := utils.RoundCurrency(amount)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	dollars, cents, _ := strings.Cut(rounded.StringFixed(utils.CurrencyPlaces), ".")
	return sign + "$" + groupDollars(dollars) + "." + cents
}

// groupDollars inserts US thousands separators into a string of digits
func groupDollars(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return usd.Sprintf("%d", n)
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
