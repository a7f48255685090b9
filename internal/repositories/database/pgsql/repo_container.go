package pgsql

import (
	portsrepo "github.com/SscSPs/shopdesk_erp/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres repositories. A non-nil settingRepo
// replaces the Postgres-backed settings store.
func NewRepositoryProvider(dbPool *pgxpool.Pool, settingRepo portsrepo.SettingRepositoryFacade) portsrepo.RepositoryProvider {
	if settingRepo == nil {
		settingRepo = NewPgxSettingRepository(dbPool)
	}

	return portsrepo.RepositoryProvider{
		SettingRepo:         settingRepo,
		CashRegisterRepo:    NewPgxCashRegisterRepository(dbPool),
		CustomerAccountRepo: NewPgxCustomerAccountRepository(dbPool),
	}
}

var (
	_ portsrepo.SettingRepositoryFacade         = (*PgxSettingRepository)(nil)
	_ portsrepo.CashRegisterRepositoryFacade    = (*PgxCashRegisterRepository)(nil)
	_ portsrepo.CustomerAccountRepositoryFacade = (*PgxCustomerAccountRepository)(nil)
	_ portsrepo.TransactionManager              = (*PgxCashRegisterRepository)(nil)
)
