package services

import (
	"context"

	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
)

// CurrencyConverterSvc defines rate resolution and conversion between the supported currencies.
// None of these calls block; they only read the in-memory default rate.
type CurrencyConverterSvc interface {
	// GetDefaultRate returns the current process-wide default rate. It never fails.
	GetDefaultRate() float64

	// ResolveRate returns explicitRate when it is positive, the default rate otherwise.
	// An explicit rate of 0 is indistinguishable from "not provided".
	ResolveRate(explicitRate float64) float64

	// Convert converts amount from one currency to the other. A rate of 0 means
	// "use the default". It returns apperrors.ErrInvalidRate when the resolved
	// rate is zero or non-finite.
	Convert(amount float64, from, to domain.Currency, rate float64) (float64, error)
}

// DefaultRateWriterSvc defines the lifecycle of the persisted default rate.
type DefaultRateWriterSvc interface {
	// LoadDefaultRate reads the persisted default, falling back to the built-in
	// constant when it is missing or unusable, and returns the effective rate.
	LoadDefaultRate(ctx context.Context) float64

	// SetDefaultRate replaces the default and persists it. Callers validate positivity.
	SetDefaultRate(ctx context.Context, rate float64)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyConverterSvc
	DefaultRateWriterSvc
}
