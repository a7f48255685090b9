package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/shopdesk_erp/internal/core/services"
	"github.com/SscSPs/shopdesk_erp/internal/middleware"
	"github.com/SscSPs/shopdesk_erp/internal/repositories/database/sqlite"
	"github.com/spf13/viper"
)

// withCurrencyService opens the settings store, loads the persisted default rate and
// hands a ready currency service to fn.
func withCurrencyService(ctx context.Context, v *viper.Viper, fn func(context.Context, *services.CurrencyService) error) error {
	path := v.GetString("SQLITE_PATH")
	ctx = middleware.WithLogger(ctx, slog.Default().With(slog.String("store", path)))

	store, err := sqlite.NewSettingRepository(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to open settings store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("failed to close settings store", "error", closeErr)
		}
	}()

	svc := services.NewCurrencyService(store)
	svc.LoadDefaultRate(ctx)
	return fn(ctx, svc)
}
