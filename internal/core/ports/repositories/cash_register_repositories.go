package repositories

import (
	"context"

	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
)

// CashRegisterReader defines read operations for cash register data
type CashRegisterReader interface {
	// ListAllEntries returns every register entry, newest first.
	ListAllEntries(ctx context.Context) ([]domain.RegisterEntry, error)

	// ListEntries returns a filtered page of entries and the token for the next page, if any.
	ListEntries(ctx context.Context, filter domain.CashEntryFilter) ([]domain.RegisterEntry, *string, error)
}

// CashRegisterWriter defines write operations for cash register data.
// Recorded transactions are immutable, so there is no update or delete.
type CashRegisterWriter interface {
	// SaveTransaction persists a standalone transaction.
	SaveTransaction(ctx context.Context, tx domain.CashTransaction) error

	// SaveExchangePair persists both legs of an exchange atomically.
	SaveExchangePair(ctx context.Context, pair domain.ExchangePair) error
}

// CashRegisterRepositoryFacade combines all cash register repository interfaces
type CashRegisterRepositoryFacade interface {
	CashRegisterReader
	CashRegisterWriter
}
