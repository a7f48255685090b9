package services_test

import (
	"context"
	"sync"

	"github.com/SscSPs/shopdesk_erp/internal/apperrors"
	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/shopdesk_erp/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock SettingRepository ---
type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) FindSetting(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockSettingRepository) SaveSetting(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// memorySettingRepository survives across service instances, standing in for a reload.
type memorySettingRepository struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemorySettingRepository() *memorySettingRepository {
	return &memorySettingRepository{values: make(map[string]string)}
}

func (r *memorySettingRepository) FindSetting(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (r *memorySettingRepository) SaveSetting(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

// --- Mock CashRegisterRepository ---
type MockCashRegisterRepository struct {
	mock.Mock
}

func (m *MockCashRegisterRepository) ListAllEntries(ctx context.Context) ([]domain.RegisterEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegisterEntry), args.Error(1)
}

func (m *MockCashRegisterRepository) ListEntries(ctx context.Context, filter domain.CashEntryFilter) ([]domain.RegisterEntry, *string, error) {
	args := m.Called(ctx, filter)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	if args.Get(0) == nil {
		return nil, next, args.Error(2)
	}
	return args.Get(0).([]domain.RegisterEntry), next, args.Error(2)
}

func (m *MockCashRegisterRepository) SaveTransaction(ctx context.Context, tx domain.CashTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockCashRegisterRepository) SaveExchangePair(ctx context.Context, pair domain.ExchangePair) error {
	args := m.Called(ctx, pair)
	return args.Error(0)
}

// --- Mock CustomerAccountRepository ---
type MockCustomerAccountRepository struct {
	mock.Mock
}

func (m *MockCustomerAccountRepository) ListCustomerTransactions(ctx context.Context, customerID string) ([]domain.CustomerTransaction, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerTransaction), args.Error(1)
}

func (m *MockCustomerAccountRepository) SaveCustomerTransaction(ctx context.Context, tx domain.CustomerTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

var (
	_ portsrepo.SettingRepositoryFacade         = (*MockSettingRepository)(nil)
	_ portsrepo.SettingRepositoryFacade         = (*memorySettingRepository)(nil)
	_ portsrepo.CashRegisterRepositoryFacade    = (*MockCashRegisterRepository)(nil)
	_ portsrepo.CustomerAccountRepositoryFacade = (*MockCustomerAccountRepository)(nil)
)
