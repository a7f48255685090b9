package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is implemented by repositories that write several rows as one unit,
// such as the two legs of a currency exchange.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}
