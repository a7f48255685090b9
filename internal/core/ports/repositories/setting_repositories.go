package repositories

import "context"

// SettingReader defines read operations for persisted application settings.
type SettingReader interface {
	// FindSetting returns the raw value stored under key, or apperrors.ErrNotFound.
	FindSetting(ctx context.Context, key string) (string, error)
}

// SettingWriter defines write operations for persisted application settings.
type SettingWriter interface {
	// SaveSetting inserts or replaces the value stored under key.
	SaveSetting(ctx context.Context, key, value string) error
}

// SettingRepositoryFacade combines all setting-related repository interfaces
type SettingRepositoryFacade interface {
	SettingReader
	SettingWriter
}
