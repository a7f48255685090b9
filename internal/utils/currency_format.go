package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyPrecision returns the number of decimals an amount is displayed with.
// USD is shown to the cent, SYP in whole units.
func CurrencyPrecision(currency domain.Currency) int32 {
	if currency == domain.SYP {
		return 0
	}
	return 2
}

// FormatAmount formats an amount for display with the currency symbol and thousands grouping.
// Example: 1204.25 USD returns "$1,204.25"
// Example: 1775000 SYP returns "£1,775,000"
// Example: -45.75 USD returns "-$45.75"
// Unknown currencies are shown as the plain rounded amount followed by the code.
// NaN and infinities have no decimal form and are shown as "NaN USD", "+Inf SYP".
func FormatAmount(amount float64, currency domain.Currency) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', -1, 64) + " " + string(currency)
	}
	if !currency.IsSupported() {
		return FormatWithPrecision(decimal.NewFromFloat(amount), 2) + " " + string(currency)
	}

	precision := CurrencyPrecision(currency)
	d := decimal.NewFromFloat(amount).Round(precision)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	intPart, fracPart, _ := strings.Cut(d.StringFixed(precision), ".")

	out := sign + currency.Symbol() + groupThousands(intPart)
	if fracPart != "" {
		out += "." + fracPart
	}
	return out
}

// groupThousands inserts a comma every three digits from the right.
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int32) string {
	return amount.Round(precision).StringFixed(precision)
}
