package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store driver names accepted for STORE_DRIVER.
const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
	StoreDriverPgsql  = "pgsql"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Persistence
	StoreDriver string // memory | sqlite | pgsql
	SQLitePath  string
	DatabaseURL string

	// Presentation defaults
	DefaultLocale string // en | bn

	// HTTP surface
	FrontendBaseURL string
	RateLimit       string // ulule/limiter formatted, e.g. "300-M"
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORE_DRIVER", StoreDriverSQLite)
	viper.SetDefault("SQLITE_PATH", "hishab.db")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("DEFAULT_LOCALE", "en")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		StoreDriver:     viper.GetString("STORE_DRIVER"),
		SQLitePath:      viper.GetString("SQLITE_PATH"),
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		DefaultLocale:   viper.GetString("DEFAULT_LOCALE"),
		FrontendBaseURL: viper.GetString("FRONTEND_BASE_URL"),
		RateLimit:       viper.GetString("RATE_LIMIT"),
	}

	switch cfg.StoreDriver {
	case StoreDriverMemory, StoreDriverSQLite, StoreDriverPgsql:
	default:
		log.Printf("Warning: unknown STORE_DRIVER %q. Defaulting to %s.\n", cfg.StoreDriver, StoreDriverSQLite)
		cfg.StoreDriver = StoreDriverSQLite
	}

	if cfg.StoreDriver == StoreDriverPgsql && cfg.DatabaseURL == "" {
		log.Println("Warning: STORE_DRIVER is pgsql but PGSQL_URL is not set.")
	}

	switch cfg.DefaultLocale {
	case "en", "bn":
	default:
		log.Printf("Warning: unsupported DEFAULT_LOCALE %q. Defaulting to en.\n", cfg.DefaultLocale)
		cfg.DefaultLocale = "en"
	}

	return cfg, nil
}
