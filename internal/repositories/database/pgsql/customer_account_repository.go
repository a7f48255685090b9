package pgsql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	"github.com/SscSPs/shopdesk_erp/internal/models"
	"github.com/SscSPs/shopdesk_erp/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCustomerAccountRepository implements the customer account repository using pgxpool.
type PgxCustomerAccountRepository struct {
	BaseRepository
}

// NewPgxCustomerAccountRepository creates a new PgxCustomerAccountRepository.
func NewPgxCustomerAccountRepository(db *pgxpool.Pool) *PgxCustomerAccountRepository {
	return &PgxCustomerAccountRepository{BaseRepository: newBaseRepository(db)}
}

// SaveCustomerTransaction inserts a customer transaction.
func (r *PgxCustomerAccountRepository) SaveCustomerTransaction(ctx context.Context, tx domain.CustomerTransaction) error {
	m := mapping.ToModelCustomerTransaction(tx)
	query, args, err := r.sqlBuilder.
		Insert("customer_transactions").
		Columns("transaction_id", "customer_id", "transaction_date", "transaction_type",
			"amount", "description", "reference", "created_at").
		Values(m.TransactionID, m.CustomerID, m.TransactionDate, m.TransactionType,
			m.Amount, m.Description, m.Reference, m.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build SaveCustomerTransaction query: %w", err)
	}

	if _, err := r.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert customer transaction %s: %w", tx.TransactionID, err)
	}
	return nil
}

// ListCustomerTransactions returns a customer's transactions, newest first.
func (r *PgxCustomerAccountRepository) ListCustomerTransactions(ctx context.Context, customerID string) ([]domain.CustomerTransaction, error) {
	query, args, err := r.sqlBuilder.
		Select("transaction_id", "customer_id", "transaction_date", "transaction_type",
			"amount", "description", "reference", "created_at").
		From("customer_transactions").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("transaction_date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListCustomerTransactions query: %w", err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer transactions: %w", err)
	}
	defer rows.Close()

	txs := []domain.CustomerTransaction{}
	for rows.Next() {
		var m models.CustomerTransaction
		if err := rows.Scan(&m.TransactionID, &m.CustomerID, &m.TransactionDate, &m.TransactionType,
			&m.Amount, &m.Description, &m.Reference, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer transaction: %w", err)
		}
		txs = append(txs, mapping.ToDomainCustomerTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer transaction rows: %w", err)
	}
	return txs, nil
}
