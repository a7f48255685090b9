package services

import (
	portsrepo "github.com/SscSPs/shopdesk_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shopdesk_erp/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The currency service is shared so every consumer sees the same default rate.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	currency := NewCurrencyService(repos.SettingRepo)

	return &portssvc.ServiceContainer{
		Currency:        currency,
		CashRegister:    NewCashRegisterService(repos.CashRegisterRepo, currency),
		CustomerAccount: NewCustomerAccountService(repos.CustomerAccountRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade        = (*CurrencyService)(nil)
	_ portssvc.CashRegisterSvcFacade    = (*CashRegisterService)(nil)
	_ portssvc.CustomerAccountSvcFacade = (*CustomerAccountService)(nil)
)
