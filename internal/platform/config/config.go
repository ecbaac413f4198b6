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
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M" for 100
	// requests per minute per IP.
	RateLimit string

	// RewardRate is the fraction of a purchase total awarded as points.
	RewardRate decimal.Decimal

	MigrationsPath string

	// Pool sizing and startup connection retries.
	DBMaxConns        int32
	DBConnectAttempts int
	DBConnectBackoff  time.Duration
}

const (
	defaultJWTSecret  = "a-very-secret-key-should-be-longer-and-random"
	defaultRewardRate = "0.10"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("REWARD_RATE", defaultRewardRate)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_CONNECT_ATTEMPTS", 5)
	viper.SetDefault("DB_CONNECT_BACKOFF", "1s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	cfg.DBMaxConns = viper.GetInt32("DB_MAX_CONNS")
	cfg.DBConnectAttempts = viper.GetInt("DB_CONNECT_ATTEMPTS")
	cfg.DBConnectBackoff = viper.GetDuration("DB_CONNECT_BACKOFF")

	rewardRateStr := viper.GetString("REWARD_RATE")
	rewardRate, err := decimal.NewFromString(rewardRateStr)
	if err != nil || rewardRate.IsNegative() {
		log.Printf("Warning: Invalid value for REWARD_RATE ('%s'). Defaulting to %s.\n", rewardRateStr, defaultRewardRate)
		rewardRate = decimal.RequireFromString(defaultRewardRate)
	}
	cfg.RewardRate = rewardRate

	return cfg, nil
}
