package domain

import "math"

// DefaultExchangeRate is the built-in secondary-per-base rate (SYP per 1 USD)
// used before any override is loaded or set.
const DefaultExchangeRate = 3500.0

// DefaultExchangeRateKey is the settings key the default rate is persisted under.
const DefaultExchangeRateKey = "defaultExchangeRate"

// IsUsableRate reports whether r can be multiplied or divided by safely:
// strictly positive and finite.
func IsUsableRate(r float64) bool {
	return r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}
