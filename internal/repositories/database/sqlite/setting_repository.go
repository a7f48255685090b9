package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/shopdesk_erp/internal/apperrors"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

const createSettingsTable = `
CREATE TABLE IF NOT EXISTS app_settings (
	setting_key   TEXT PRIMARY KEY,
	setting_value TEXT NOT NULL,
	updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// SettingRepository is a single-file settings store for deployments without
// Postgres-backed settings and for the command line tool.
type SettingRepository struct {
	db         *sql.DB
	sqlBuilder sq.StatementBuilderType
}

// NewSettingRepository opens (creating if needed) the SQLite database at dbPath.
func NewSettingRepository(ctx context.Context, dbPath string) (*SettingRepository, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: sqlite path cannot be empty", apperrors.ErrValidation)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, createSettingsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create settings table: %w", err)
	}

	return &SettingRepository{
		db:         db,
		sqlBuilder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}, nil
}

// Close closes the database connection.
func (r *SettingRepository) Close() error {
	return r.db.Close()
}

// FindSetting returns the raw value stored under key.
func (r *SettingRepository) FindSetting(ctx context.Context, key string) (string, error) {
	query, args, err := r.sqlBuilder.
		Select("setting_value").
		From("app_settings").
		Where(sq.Eq{"setting_key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build FindSetting query: %w", err)
	}

	var value string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to find setting %s: %w", key, err)
	}
	return value, nil
}

// SaveSetting inserts or replaces the value stored under key.
func (r *SettingRepository) SaveSetting(ctx context.Context, key, value string) error {
	query, args, err := r.sqlBuilder.
		Insert("app_settings").
		Columns("setting_key", "setting_value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(setting_key) DO UPDATE SET setting_value = excluded.setting_value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build SaveSetting query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}
