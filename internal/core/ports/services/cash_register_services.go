package services

import (
	"context"

	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	"github.com/SscSPs/shopdesk_erp/internal/dto"
)

// CashRegisterReaderSvc defines read operations for the cash register
type CashRegisterReaderSvc interface {
	// ListEntries returns a filtered page of register entries.
	ListEntries(ctx context.Context, params dto.ListCashEntriesParams) (*dto.ListCashEntriesResponse, error)

	// GetBalance returns the signed balance of a single currency.
	GetBalance(ctx context.Context, currency domain.Currency) (float64, error)

	// GetBalanceSummary returns both balances with their equivalents at the default rate.
	GetBalanceSummary(ctx context.Context) (*domain.BalanceSummary, error)
}

// CashRegisterWriterSvc defines write operations for the cash register
type CashRegisterWriterSvc interface {
	// RecordTransaction records a sale, expense, deposit or withdrawal.
	RecordTransaction(ctx context.Context, req dto.RecordCashTransactionRequest) (*domain.CashTransaction, error)

	// RecordExchange records a currency exchange as an outgoing and an incoming leg.
	RecordExchange(ctx context.Context, req dto.RecordExchangeRequest) (*domain.ExchangePair, error)
}

// CashRegisterSvcFacade combines all cash register service interfaces
type CashRegisterSvcFacade interface {
	CashRegisterReaderSvc
	CashRegisterWriterSvc
}
