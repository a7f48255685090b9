package domain

import "strings"

// Currency is one of the two currencies the application books amounts in.
type Currency string

const (
	USD Currency = "USD" // base currency
	SYP Currency = "SYP" // secondary currency
)

// BaseCurrency is the currency unscoped amounts are assumed to be expressed in.
const BaseCurrency = USD

// SecondaryCurrency is the currency convertible to and from the base via an exchange rate.
const SecondaryCurrency = SYP

// SupportedCurrencies lists every currency in display order.
func SupportedCurrencies() []Currency {
	return []Currency{USD, SYP}
}

// IsSupported reports whether c is USD or SYP.
func (c Currency) IsSupported() bool {
	return c == USD || c == SYP
}

// Symbol returns the display symbol, or the code itself for unknown currencies.
func (c Currency) Symbol() string {
	switch c {
	case USD:
		return "$"
	case SYP:
		return "£"
	default:
		return string(c)
	}
}

// Other returns the opposite supported currency. Unknown currencies return themselves.
func (c Currency) Other() Currency {
	switch c {
	case USD:
		return SYP
	case SYP:
		return USD
	default:
		return c
	}
}

// ParseCurrency normalizes a currency code and reports whether it is supported.
func ParseCurrency(code string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	return c, c.IsSupported()
}
