package services

import (
	"context"

	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	"github.com/SscSPs/shopdesk_erp/internal/dto"
)

// CustomerAccountReaderSvc defines read operations for customer accounts
type CustomerAccountReaderSvc interface {
	ListTransactions(ctx context.Context, customerID string) ([]domain.CustomerTransaction, error)

	// GetBalance returns what the customer currently owes.
	GetBalance(ctx context.Context, customerID string) (float64, error)
}

// CustomerAccountWriterSvc defines write operations for customer accounts
type CustomerAccountWriterSvc interface {
	RecordTransaction(ctx context.Context, customerID string, req dto.RecordCustomerTransactionRequest) (*domain.CustomerTransaction, error)
}

// CustomerAccountSvcFacade combines all customer account service interfaces
type CustomerAccountSvcFacade interface {
	CustomerAccountReaderSvc
	CustomerAccountWriterSvc
}
