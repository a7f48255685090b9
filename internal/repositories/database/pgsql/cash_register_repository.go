package pgsql

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/shopdesk_erp/internal/apperrors"
	"github.com/SscSPs/shopdesk_erp/internal/core/domain"
	"github.com/SscSPs/shopdesk_erp/internal/models"
	"github.com/SscSPs/shopdesk_erp/internal/utils/mapping"
	"github.com/SscSPs/shopdesk_erp/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	cashTransactionsTable = "cash_transactions"
	// entryKeyExpr identifies a register entry: the pair ID for exchange legs, the row ID otherwise.
	entryKeyExpr = "COALESCE(pair_id, transaction_id)"
)

var cashTransactionColumns = []string{
	"transaction_id", "transaction_date", "transaction_type", "description", "amount",
	"currency_code", "exchange_rate", "reference", "pair_id", "pair_leg", "created_at",
}

// PgxCashRegisterRepository implements the cash register repository using pgxpool.
type PgxCashRegisterRepository struct {
	BaseRepository
}

// NewPgxCashRegisterRepository creates a new PgxCashRegisterRepository.
func NewPgxCashRegisterRepository(db *pgxpool.Pool) *PgxCashRegisterRepository {
	return &PgxCashRegisterRepository{BaseRepository: newBaseRepository(db)}
}

// SaveTransaction inserts a standalone transaction.
func (r *PgxCashRegisterRepository) SaveTransaction(ctx context.Context, tx domain.CashTransaction) error {
	query, args, err := r.insertQuery(tx)
	if err != nil {
		return err
	}
	if _, err := r.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert cash transaction %s: %w", tx.TransactionID, err)
	}
	return nil
}

// SaveExchangePair inserts both legs of an exchange in one database transaction.
func (r *PgxCashRegisterRepository) SaveExchangePair(ctx context.Context, pair domain.ExchangePair) error {
	dbTx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, dbTx) }()

	for _, leg := range pair.Transactions() {
		query, args, err := r.insertQuery(leg)
		if err != nil {
			return err
		}
		if _, err := dbTx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert exchange leg %s of pair %s: %w", leg.TransactionID, pair.PairID, err)
		}
	}

	return r.Commit(ctx, dbTx)
}

func (r *PgxCashRegisterRepository) insertQuery(tx domain.CashTransaction) (string, []any, error) {
	m := mapping.ToModelCashTransaction(tx)
	query, args, err := r.sqlBuilder.
		Insert(cashTransactionsTable).
		Columns(cashTransactionColumns...).
		Values(
			m.TransactionID, m.TransactionDate, m.TransactionType, m.Description, m.Amount,
			m.CurrencyCode, m.ExchangeRate, m.Reference, m.PairID, m.PairLeg, m.CreatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build insert cash transaction query: %w", err)
	}
	return query, args, nil
}

// ListAllEntries returns every register entry, newest first.
func (r *PgxCashRegisterRepository) ListAllEntries(ctx context.Context) ([]domain.RegisterEntry, error) {
	query, args, err := r.sqlBuilder.
		Select(cashTransactionColumns...).
		From(cashTransactionsTable).
		OrderBy("transaction_date DESC", "created_at DESC", "transaction_id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListAllEntries query: %w", err)
	}

	txs, err := r.queryTransactions(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return domain.GroupRegisterEntries(txs), nil
}

type entryKey struct {
	key       string
	date      time.Time
	createdAt time.Time
}

// ListEntries returns one page of entries matching filter, newest first.
// Paging is done on entries rather than rows so both legs of an exchange
// always land on the same page.
func (r *PgxCashRegisterRepository) ListEntries(ctx context.Context, filter domain.CashEntryFilter) ([]domain.RegisterEntry, *string, error) {
	keys, err := r.pageEntryKeys(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if filter.Limit > 0 && len(keys) > filter.Limit {
		keys = keys[:filter.Limit]
		last := keys[len(keys)-1]
		token := pagination.EncodeEntryToken(last.date, last.createdAt, last.key)
		nextToken = &token
	}
	if len(keys) == 0 {
		return []domain.RegisterEntry{}, nil, nil
	}

	ids := make([]string, len(keys))
	for i, k := range keys {
		ids[i] = k.key
	}
	query, args, err := r.sqlBuilder.
		Select(cashTransactionColumns...).
		From(cashTransactionsTable).
		Where(sq.Eq{entryKeyExpr: ids}).
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("build ListEntries rows query: %w", err)
	}
	txs, err := r.queryTransactions(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	// Reorder rows to follow the page's entry order before grouping.
	byKey := make(map[string][]domain.CashTransaction, len(keys))
	for _, tx := range txs {
		k := tx.TransactionID
		if tx.PairID != nil {
			k = *tx.PairID
		}
		byKey[k] = append(byKey[k], tx)
	}
	ordered := make([]domain.CashTransaction, 0, len(txs))
	for _, k := range keys {
		ordered = append(ordered, byKey[k.key]...)
	}

	return domain.GroupRegisterEntries(ordered), nextToken, nil
}

func (r *PgxCashRegisterRepository) pageEntryKeys(ctx context.Context, filter domain.CashEntryFilter) ([]entryKey, error) {
	builder := r.sqlBuilder.
		Select(entryKeyExpr+" AS entry_key", "MAX(transaction_date) AS entry_date", "MAX(created_at) AS entry_created_at").
		From(cashTransactionsTable).
		GroupBy(entryKeyExpr).
		OrderBy("entry_date DESC", "entry_created_at DESC", "entry_key DESC")

	if filter.Type != nil {
		builder = builder.Where(sq.Eq{"transaction_type": string(*filter.Type)})
	}
	if filter.Currency != nil {
		builder = builder.Where(sq.Eq{"currency_code": string(*filter.Currency)})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"transaction_date": *filter.From})
	}
	if filter.To != nil {
		// The upper bound is a calendar day and includes the whole of it.
		builder = builder.Where(sq.Lt{"transaction_date": filter.To.AddDate(0, 0, 1)})
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		date, createdAt, key, err := pagination.DecodeEntryToken(*filter.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		builder = builder.Having(
			"(MAX(transaction_date), MAX(created_at), "+entryKeyExpr+") < (?, ?, ?)",
			date, createdAt, key,
		)
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit) + 1)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ListEntries page query: %w", err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash register entry keys: %w", err)
	}
	defer rows.Close()

	var keys []entryKey
	for rows.Next() {
		var k entryKey
		if err := rows.Scan(&k.key, &k.date, &k.createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan cash register entry key: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash register entry keys: %w", err)
	}
	return keys, nil
}

func (r *PgxCashRegisterRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.CashTransaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash transactions: %w", err)
	}
	defer rows.Close()

	var modelTxs []models.CashTransaction
	for rows.Next() {
		var m models.CashTransaction
		if err := scanCashTransaction(rows, &m); err != nil {
			return nil, fmt.Errorf("failed to scan cash transaction: %w", err)
		}
		modelTxs = append(modelTxs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash transaction rows: %w", err)
	}
	return mapping.ToDomainCashTransactions(modelTxs), nil
}

func scanCashTransaction(row pgx.Row, m *models.CashTransaction) error {
	return row.Scan(
		&m.TransactionID, &m.TransactionDate, &m.TransactionType, &m.Description, &m.Amount,
		&m.CurrencyCode, &m.ExchangeRate, &m.Reference, &m.PairID, &m.PairLeg, &m.CreatedAt,
	)
}
