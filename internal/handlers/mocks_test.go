package handlers_test

import (
	"context"

	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	portssvc "github.com/SscSPs/shopdesk_erp/internal/core/ports/services"
	"github.com/SscSPs/shopdesk_erp/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetDefaultRate() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

func (m *MockCurrencyService) ResolveRate(explicitRate float64) float64 {
	args := m.Called(explicitRate)
	return args.Get(0).(float64)
}

func (m *MockCurrencyService) Convert(amount float64, from, to domain.Currency, rate float64) (float64, error) {
	args := m.Called(amount, from, to, rate)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockCurrencyService) LoadDefaultRate(ctx context.Context) float64 {
	args := m.Called(ctx)
	return args.Get(0).(float64)
}

func (m *MockCurrencyService) SetDefaultRate(ctx context.Context, rate float64) {
	m.Called(ctx, rate)
}

// --- Mock CashRegisterService ---
type MockCashRegisterService struct {
	mock.Mock
}

func (m *MockCashRegisterService) ListEntries(ctx context.Context, params dto.ListCashEntriesParams) (*dto.ListCashEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListCashEntriesResponse), args.Error(1)
}

func (m *MockCashRegisterService) GetBalance(ctx context.Context, currency domain.Currency) (float64, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockCashRegisterService) GetBalanceSummary(ctx context.Context) (*domain.BalanceSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSummary), args.Error(1)
}

func (m *MockCashRegisterService) RecordTransaction(ctx context.Context, req dto.RecordCashTransactionRequest) (*domain.CashTransaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashTransaction), args.Error(1)
}

func (m *MockCashRegisterService) RecordExchange(ctx context.Context, req dto.RecordExchangeRequest) (*domain.ExchangePair, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangePair), args.Error(1)
}

// --- Mock CustomerAccountService ---
type MockCustomerAccountService struct {
	mock.Mock
}

func (m *MockCustomerAccountService) ListTransactions(ctx context.Context, customerID string) ([]domain.CustomerTransaction, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerTransaction), args.Error(1)
}

func (m *MockCustomerAccountService) GetBalance(ctx context.Context, customerID string) (float64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockCustomerAccountService) RecordTransaction(ctx context.Context, customerID string, req dto.RecordCustomerTransactionRequest) (*domain.CustomerTransaction, error) {
	args := m.Called(ctx, customerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerTransaction), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.CurrencySvcFacade        = (*MockCurrencyService)(nil)
	_ portssvc.CashRegisterSvcFacade    = (*MockCashRegisterService)(nil)
	_ portssvc.CustomerAccountSvcFacade = (*MockCustomerAccountService)(nil)
)
