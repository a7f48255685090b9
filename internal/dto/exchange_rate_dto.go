package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/shopdesk_erp/internal/apperrors"
	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
)

// UpdateDefaultRateRequest defines the structure for changing the default exchange rate.
type UpdateDefaultRateRequest struct {
	Rate *float64 `json:"rate" binding:"required,gt=0"`
}

// DefaultRateResponse reports the current default exchange rate.
type DefaultRateResponse struct {
	Rate     float64 `json:"rate"`
	Currency string  `json:"currency"` // secondary units per one unit of Base
	Base     string  `json:"base"`
}

// ToDefaultRateResponse builds the response for the current default rate.
func ToDefaultRateResponse(rate float64) DefaultRateResponse {
	return DefaultRateResponse{
		Rate:     rate,
		Currency: string(domain.SecondaryCurrency),
		Base:     string(domain.BaseCurrency),
	}
}

// ConvertRequest defines the query parameters of a conversion.
// Rate is optional; 0 or absent falls back to the default rate.
type ConvertRequest struct {
	Amount *float64 `form:"amount" binding:"required,finite"`
	From   string   `form:"from" binding:"required,currency"`
	To     string   `form:"to" binding:"required,currency"`
	Rate   float64  `form:"rate"`
}

// ConvertResponse defines the result of a conversion.
type ConvertResponse struct {
	Amount        float64 `json:"amount"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	Rate          float64 `json:"rate"` // effective rate; 1 for same-currency conversions
	Result        float64 `json:"result"`
	FormattedFrom string  `json:"formattedFrom"`
	FormattedTo   string  `json:"formattedTo"`
}

// ParseExchangeRateInput validates a user-entered exchange rate.
// Non-numeric, zero, negative and non-finite input is rejected with apperrors.ErrValidation.
func ParseExchangeRateInput(input string) (float64, error) {
	rate, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || !domain.IsUsableRate(rate) {
		return 0, fmt.Errorf("%w: invalid exchange rate %q, please enter a valid positive number", apperrors.ErrValidation, input)
	}
	return rate, nil
}
