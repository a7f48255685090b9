package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/SscSPs/shopdesk_erp/internal/apperrors"
	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/shopdesk_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shopdesk_erp/internal/core/ports/services"
	"github.com/SscSPs/shopdesk_erp/internal/dto"
	"github.com/SscSPs/shopdesk_erp/internal/utils/accounting"
	"github.com/google/uuid"
)

const defaultListLimit = 20

// CashRegisterService records register transactions and derives balances from them.
type CashRegisterService struct {
	BaseService
	repo     portsrepo.CashRegisterRepositoryFacade
	currency portssvc.CurrencyConverterSvc
	now      func() time.Time
}

// CashRegisterServiceOption configures a CashRegisterService.
type CashRegisterServiceOption func(*CashRegisterService)

// WithCashRegisterClock overrides the clock used for transaction timestamps.
func WithCashRegisterClock(now func() time.Time) CashRegisterServiceOption {
	return func(s *CashRegisterService) {
		s.now = now
	}
}

// NewCashRegisterService creates a new CashRegisterService.
func NewCashRegisterService(repo portsrepo.CashRegisterRepositoryFacade, currency portssvc.CurrencyConverterSvc, opts ...CashRegisterServiceOption) *CashRegisterService {
	s := &CashRegisterService{
		repo:     repo,
		currency: currency,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordTransaction records a sale, expense, deposit or withdrawal. SYP transactions
// capture the supplied rate, or the current default when none is supplied.
func (s *CashRegisterService) RecordTransaction(ctx context.Context, req dto.RecordCashTransactionRequest) (*domain.CashTransaction, error) {
	txType := domain.CashTransactionType(strings.ToLower(strings.TrimSpace(req.Type)))
	switch txType {
	case domain.Sale, domain.Expense, domain.Deposit, domain.Withdrawal:
	case domain.Exchange:
		return nil, fmt.Errorf("%w: exchanges must be recorded as a currency exchange", apperrors.ErrValidation)
	default:
		return nil, fmt.Errorf("%w: unknown transaction type '%s'", apperrors.ErrValidation, req.Type)
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	currency, ok := domain.ParseCurrency(req.Currency)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, req.Currency)
	}
	if req.ExchangeRate != nil && !domain.IsUsableRate(*req.ExchangeRate) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}

	now := s.now()
	tx := domain.CashTransaction{
		TransactionID:   uuid.NewString(),
		TransactionDate: dateOrNow(req.TransactionDate, now),
		Type:            txType,
		Description:     strings.TrimSpace(req.Description),
		Amount:          req.Amount,
		Currency:        currency,
		Reference:       nonEmpty(req.Reference),
		AuditFields:     domain.AuditFields{CreatedAt: now},
	}
	if currency == domain.SecondaryCurrency {
		rate := s.currency.ResolveRate(valueOrZero(req.ExchangeRate))
		tx.ExchangeRate = &rate
	}

	if err := s.repo.SaveTransaction(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to save cash transaction", slog.String("type", string(txType)))
		return nil, fmt.Errorf("failed to record cash transaction in service: %w", err)
	}

	s.LogInfo(ctx, "Cash transaction recorded",
		slog.String("transaction_id", tx.TransactionID),
		slog.String("type", string(tx.Type)),
		slog.String("currency", string(tx.Currency)))
	return &tx, nil
}

// RecordExchange records money leaving one currency and arriving in the other.
// Both legs capture the rate in effect, which is the supplied rate or the default.
func (s *CashRegisterService) RecordExchange(ctx context.Context, req dto.RecordExchangeRequest) (*domain.ExchangePair, error) {
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	from, ok := domain.ParseCurrency(req.FromCurrency)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, req.FromCurrency)
	}
	to, ok := domain.ParseCurrency(req.ToCurrency)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, req.ToCurrency)
	}
	if from == to {
		return nil, fmt.Errorf("%w: from and to currencies cannot be the same", apperrors.ErrValidation)
	}
	if req.ExchangeRate != nil && !domain.IsUsableRate(*req.ExchangeRate) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}

	rate := s.currency.ResolveRate(valueOrZero(req.ExchangeRate))
	converted, err := s.currency.Convert(req.Amount, from, to, rate)
	if err != nil {
		return nil, fmt.Errorf("failed to convert exchange amount: %w", err)
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = fmt.Sprintf("Exchange from %s to %s", from, to)
	}

	now := s.now()
	date := dateOrNow(req.ExchangeDate, now)
	pairID := uuid.NewString()
	outLeg, inLeg := domain.LegOut, domain.LegIn
	newLeg := func(amount float64, currency domain.Currency, leg *domain.ExchangeLeg) domain.CashTransaction {
		r := rate
		return domain.CashTransaction{
			TransactionID:   uuid.NewString(),
			TransactionDate: date,
			Type:            domain.Exchange,
			Description:     description,
			Amount:          amount,
			Currency:        currency,
			ExchangeRate:    &r,
			PairID:          &pairID,
			PairLeg:         leg,
			AuditFields:     domain.AuditFields{CreatedAt: now},
		}
	}

	pair := domain.ExchangePair{
		PairID: pairID,
		Out:    newLeg(req.Amount, from, &outLeg),
		In:     newLeg(converted, to, &inLeg),
	}

	if err := s.repo.SaveExchangePair(ctx, pair); err != nil {
		s.LogError(ctx, err, "Failed to save currency exchange", slog.String("pair_id", pairID))
		return nil, fmt.Errorf("failed to record currency exchange in service: %w", err)
	}

	s.LogInfo(ctx, "Currency exchange recorded",
		slog.String("pair_id", pairID),
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.Float64("rate", rate))
	return &pair, nil
}

// ListEntries returns a filtered page of register entries, newest first.
func (s *CashRegisterService) ListEntries(ctx context.Context, params dto.ListCashEntriesParams) (*dto.ListCashEntriesResponse, error) {
	filter := domain.CashEntryFilter{
		From:      params.From,
		To:        params.To,
		Limit:     params.Limit,
		NextToken: params.NextToken,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if params.Type != "" {
		t := domain.CashTransactionType(strings.ToLower(params.Type))
		if !t.IsKnown() {
			return nil, fmt.Errorf("%w: unknown transaction type '%s'", apperrors.ErrValidation, params.Type)
		}
		filter.Type = &t
	}
	if params.Currency != "" {
		c, ok := domain.ParseCurrency(params.Currency)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, params.Currency)
		}
		filter.Currency = &c
	}

	entries, nextToken, err := s.repo.ListEntries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash register entries in service: %w", err)
	}

	return &dto.ListCashEntriesResponse{
		Entries:   dto.ToListRegisterEntryResponse(entries),
		NextToken: nextToken,
	}, nil
}

// GetBalance recomputes the balance of currency from every recorded entry.
func (s *CashRegisterService) GetBalance(ctx context.Context, currency domain.Currency) (float64, error) {
	entries, err := s.repo.ListAllEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load cash register entries in service: %w", err)
	}
	balance, err := accounting.CashRegisterBalance(entries, currency, s.currency)
	if err != nil {
		return 0, fmt.Errorf("failed to compute %s balance: %w", currency, err)
	}
	return balance, nil
}

// GetBalanceSummary recomputes both balances and their equivalents at the default rate.
func (s *CashRegisterService) GetBalanceSummary(ctx context.Context) (*domain.BalanceSummary, error) {
	entries, err := s.repo.ListAllEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cash register entries in service: %w", err)
	}

	usd, err := accounting.CashRegisterBalance(entries, domain.USD, s.currency)
	if err != nil {
		return nil, fmt.Errorf("failed to compute USD balance: %w", err)
	}
	syp, err := accounting.CashRegisterBalance(entries, domain.SYP, s.currency)
	if err != nil {
		return nil, fmt.Errorf("failed to compute SYP balance: %w", err)
	}

	usdInSYP, err := s.currency.Convert(usd, domain.USD, domain.SYP, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to convert USD balance: %w", err)
	}
	sypInUSD, err := s.currency.Convert(syp, domain.SYP, domain.USD, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to convert SYP balance: %w", err)
	}

	return &domain.BalanceSummary{
		USD:         usd,
		SYP:         syp,
		USDInSYP:    usdInSYP,
		SYPInUSD:    sypInUSD,
		DefaultRate: s.currency.GetDefaultRate(),
	}, nil
}

func validateAmount(amount float64) error {
	if !(amount > 0) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: amount must be a positive number", apperrors.ErrValidation)
	}
	return nil
}

func dateOrNow(date *time.Time, now time.Time) time.Time {
	if date == nil || date.IsZero() {
		return now
	}
	return *date
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func nonEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
