package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/shopdesk_erp/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSettingRepository stores application settings in the app_settings table.
type PgxSettingRepository struct {
	BaseRepository
}

// NewPgxSettingRepository creates a new PgxSettingRepository.
func NewPgxSettingRepository(db *pgxpool.Pool) *PgxSettingRepository {
	return &PgxSettingRepository{BaseRepository: newBaseRepository(db)}
}

// FindSetting returns the raw value stored under key.
func (r *PgxSettingRepository) FindSetting(ctx context.Context, key string) (string, error) {
	query, args, err := r.sqlBuilder.
		Select("setting_value").
		From("app_settings").
		Where("setting_key = ?", key).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build FindSetting query: %w", err)
	}

	var value string
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to find setting %s: %w", key, err)
	}
	return value, nil
}

// SaveSetting inserts or replaces the value stored under key.
func (r *PgxSettingRepository) SaveSetting(ctx context.Context, key, value string) error {
	query, args, err := r.sqlBuilder.
		Insert("app_settings").
		Columns("setting_key", "setting_value", "updated_at").
		Values(key, value, sqNow).
		Suffix("ON CONFLICT (setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build SaveSetting query: %w", err)
	}

	if _, err := r.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}
