package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"sync"

	"github.com/SscSPs/shopdesk_erp/internal/apperrors"
	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/shopdesk_erp/internal/core/ports/repositories"
)

// CurrencyService owns the default exchange rate and converts between USD and SYP.
// It is constructed once at startup and shared by every consumer.
type CurrencyService struct {
	BaseService
	settingRepo portsrepo.SettingRepositoryFacade

	mu          sync.RWMutex
	defaultRate float64
}

// NewCurrencyService creates a CurrencyService starting at the built-in default rate.
// Call LoadDefaultRate to pick up a persisted override.
func NewCurrencyService(settingRepo portsrepo.SettingRepositoryFacade) *CurrencyService {
	return &CurrencyService{
		settingRepo: settingRepo,
		defaultRate: domain.DefaultExchangeRate,
	}
}

// LoadDefaultRate replaces the in-memory default with the persisted one.
// A missing, unreadable or unusable stored value leaves the current default in place.
func (s *CurrencyService) LoadDefaultRate(ctx context.Context) float64 {
	raw, err := s.settingRepo.FindSetting(ctx, domain.DefaultExchangeRateKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "No stored default exchange rate, using current default",
				slog.Float64("rate", s.GetDefaultRate()))
		} else {
			s.LogWarn(ctx, "Failed to read stored default exchange rate, using current default",
				slog.String("error", err.Error()))
		}
		return s.GetDefaultRate()
	}

	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || !domain.IsUsableRate(rate) {
		s.LogWarn(ctx, "Ignoring unusable stored default exchange rate", slog.String("value", raw))
		return s.GetDefaultRate()
	}

	s.mu.Lock()
	s.defaultRate = rate
	s.mu.Unlock()

	s.LogInfo(ctx, "Loaded stored default exchange rate", slog.Float64("rate", rate))
	return rate
}

// GetDefaultRate returns the current default rate.
func (s *CurrencyService) GetDefaultRate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defaultRate
}

// SetDefaultRate replaces the default rate and persists it. Rates already captured on
// transactions are unaffected. A persistence failure is logged and otherwise ignored;
// the new rate stays in effect for this process.
func (s *CurrencyService) SetDefaultRate(ctx context.Context, rate float64) {
	s.mu.Lock()
	s.defaultRate = rate
	s.mu.Unlock()

	value := strconv.FormatFloat(rate, 'f', -1, 64)
	if err := s.settingRepo.SaveSetting(ctx, domain.DefaultExchangeRateKey, value); err != nil {
		s.LogWarn(ctx, "Failed to persist default exchange rate", slog.String("error", err.Error()))
		return
	}
	s.LogInfo(ctx, "Default exchange rate updated", slog.Float64("rate", rate))
}

// ResolveRate returns explicitRate when it is positive, otherwise the default.
// NaN and zero both count as "not provided".
func (s *CurrencyService) ResolveRate(explicitRate float64) float64 {
	if explicitRate > 0 {
		return explicitRate
	}
	return s.GetDefaultRate()
}

// Convert converts amount between the two supported currencies.
// Same-currency conversions return amount unchanged without looking at any rate.
// USD to SYP multiplies by the resolved rate, SYP to USD divides by it.
// Amounts of any sign pass through; a zero or non-finite resolved rate fails
// with apperrors.ErrInvalidRate, a non-finite result (overflow, NaN amount) with apperrors.ErrValidation.
func (s *CurrencyService) Convert(amount float64, from, to domain.Currency, rate float64) (float64, error) {
	if from == to {
		return amount, nil
	}

	resolved := s.ResolveRate(rate)
	if resolved == 0 || math.IsNaN(resolved) || math.IsInf(resolved, 0) {
		return 0, fmt.Errorf("%w: resolved rate %v converting %s to %s", apperrors.ErrInvalidRate, resolved, from, to)
	}

	var result float64
	switch {
	case from == domain.BaseCurrency && to == domain.SecondaryCurrency:
		result = amount * resolved
	case from == domain.SecondaryCurrency && to == domain.BaseCurrency:
		result = amount / resolved
	default:
		// Pairs outside USD/SYP are not convertible; the amount passes through.
		return amount, nil
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, fmt.Errorf("%w: converting %v %s to %s gives no finite result", apperrors.ErrValidation, amount, from, to)
	}
	return result, nil
}
