package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings store backends.
const (
	SettingsStorePostgres = "postgres"
	SettingsStoreSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	MigrationsPath     string
	SettingsStore      string
	SQLitePath         string
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("SETTINGS_STORE", SettingsStorePostgres)
	v.SetDefault("SQLITE_PATH", "data/settings.db")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		SettingsStore:  strings.ToLower(strings.TrimSpace(v.GetString("SETTINGS_STORE"))),
		SQLitePath:     v.GetString("SQLITE_PATH"),
		RateLimit:      v.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.SettingsStore {
	case SettingsStorePostgres, SettingsStoreSQLite:
	default:
		log.Printf("Warning: Invalid value for SETTINGS_STORE ('%s'). Defaulting to %s.\n", cfg.SettingsStore, SettingsStorePostgres)
		cfg.SettingsStore = SettingsStorePostgres
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
