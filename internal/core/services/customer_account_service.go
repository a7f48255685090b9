package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/shopdesk_erp/internal/apperrors"
	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/shopdesk_erp/internal/core/ports/repositories"
	"github.com/SscSPs/shopdesk_erp/internal/dto"
	"github.com/SscSPs/shopdesk_erp/internal/utils/accounting"
	"github.com/google/uuid"
)

var referencePrefixes = map[domain.CustomerTransactionType]string{
	domain.Invoice: "INV",
	domain.Payment: "PMT",
	domain.Refund:  "REF",
}

// CustomerAccountService tracks what customers owe. Amounts are single-currency.
type CustomerAccountService struct {
	BaseService
	repo portsrepo.CustomerAccountRepositoryFacade
	now  func() time.Time
}

// NewCustomerAccountService creates a new CustomerAccountService.
func NewCustomerAccountService(repo portsrepo.CustomerAccountRepositoryFacade) *CustomerAccountService {
	return &CustomerAccountService{repo: repo, now: time.Now}
}

// RecordTransaction validates and stores an invoice, payment or refund for a customer.
// A blank reference is replaced by one generated from the type prefix, the year and the ID.
func (s *CustomerAccountService) RecordTransaction(ctx context.Context, customerID string, req dto.RecordCustomerTransactionRequest) (*domain.CustomerTransaction, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer ID is required", apperrors.ErrValidation)
	}
	txType := domain.CustomerTransactionType(strings.ToLower(strings.TrimSpace(req.Type)))
	if !txType.IsKnown() {
		return nil, fmt.Errorf("%w: unknown transaction type '%s'", apperrors.ErrValidation, req.Type)
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	now := s.now()
	id := uuid.NewString()
	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		reference = fmt.Sprintf("%s-%d-%s", referencePrefixes[txType], now.Year(), strings.ToUpper(id[:8]))
	}

	tx := domain.CustomerTransaction{
		TransactionID:   id,
		CustomerID:      customerID,
		TransactionDate: dateOrNow(req.TransactionDate, now),
		Type:            txType,
		Amount:          req.Amount,
		Description:     strings.TrimSpace(req.Description),
		Reference:       reference,
		AuditFields:     domain.AuditFields{CreatedAt: now},
	}

	if err := s.repo.SaveCustomerTransaction(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to save customer transaction", slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to record customer transaction in service: %w", err)
	}

	s.LogInfo(ctx, "Customer transaction recorded",
		slog.String("customer_id", customerID),
		slog.String("transaction_id", id),
		slog.String("type", string(txType)))
	return &tx, nil
}

// ListTransactions returns every transaction recorded for the customer, never nil.
func (s *CustomerAccountService) ListTransactions(ctx context.Context, customerID string) ([]domain.CustomerTransaction, error) {
	txs, err := s.repo.ListCustomerTransactions(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer transactions in service: %w", err)
	}
	if txs == nil {
		return []domain.CustomerTransaction{}, nil
	}
	return txs, nil
}

// GetBalance returns invoices minus payments and refunds for the customer.
func (s *CustomerAccountService) GetBalance(ctx context.Context, customerID string) (float64, error) {
	txs, err := s.ListTransactions(ctx, customerID)
	if err != nil {
		return 0, err
	}
	return accounting.CustomerBalance(txs), nil
}
