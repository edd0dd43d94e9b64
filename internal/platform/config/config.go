package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	// Posting
	BalanceTolerance decimal.Decimal

	// Rate limit for write routes in ulule/limiter format, e.g. "60-M"
	RateLimit string

	// Chart of accounts cache; size 0 disables it
	AccountCacheSize int
	AccountCacheTTL  time.Duration

	PosthogAPIKey   string `mapstructure:"POSTHOG_API_KEY"`
	PosthogEndpoint string `mapstructure:"POSTHOG_ENDPOINT"`
}

const (
	defaultTolerance = "0.01"
	defaultCacheTTL  = 5 * time.Minute
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("BALANCE_TOLERANCE", defaultTolerance)
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("ACCOUNT_CACHE_SIZE", 1024)
	viper.SetDefault("ACCOUNT_CACHE_TTL", defaultCacheTTL.String())
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "")

	// Environment variables override .env values, which override the defaults above.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	toleranceStr := viper.GetString("BALANCE_TOLERANCE")
	tolerance, err := decimal.NewFromString(toleranceStr)
	if err != nil || !tolerance.IsPositive() {
		tolerance = decimal.RequireFromString(defaultTolerance)
		log.Printf("Warning: Invalid value for BALANCE_TOLERANCE ('%s'). Defaulting to %s.\n", toleranceStr, tolerance.String())
	}

	cacheTTLStr := viper.GetString("ACCOUNT_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil || cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
		log.Printf("Warning: Invalid value for ACCOUNT_CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL.String())
	}

	cacheSize := viper.GetInt("ACCOUNT_CACHE_SIZE")
	if cacheSize < 0 {
		log.Printf("Warning: Negative ACCOUNT_CACHE_SIZE (%d). Disabling the account cache.\n", cacheSize)
		cacheSize = 0
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.BalanceTolerance = tolerance
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.AccountCacheSize = cacheSize
	cfg.AccountCacheTTL = cacheTTL
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	return cfg, nil
}
