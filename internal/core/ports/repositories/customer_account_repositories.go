package repositories

import (
	"context"

	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
)

// CustomerAccountReader defines read operations for customer account transactions
type CustomerAccountReader interface {
	// ListCustomerTransactions returns a customer's transactions, newest first.
	ListCustomerTransactions(ctx context.Context, customerID string) ([]domain.CustomerTransaction, error)
}

// CustomerAccountWriter defines write operations for customer account transactions
type CustomerAccountWriter interface {
	SaveCustomerTransaction(ctx context.Context, tx domain.CustomerTransaction) error
}

// CustomerAccountRepositoryFacade combines all customer account repository interfaces
type CustomerAccountRepositoryFacade interface {
	CustomerAccountReader
	CustomerAccountWriter
}
