package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Env string `mapstructure:"APP_ENV"` // development | production

	// Mongo
	MongoURI string `mapstructure:"MONGO_URI"`
	MongoDB  string `mapstructure:"MONGO_DB"`

	// Redis (report cache); empty disables caching
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth
	BcryptCost int `mapstructure:"BCRYPT_COST"`

	// Ledger reconciler
	ReconcileIntervalSeconds int `mapstructure:"RECONCILE_INTERVAL_SECONDS"`
	PendingTTLMinutes        int `mapstructure:"PENDING_TTL_MINUTES"`

	// Reporting
	ReportCacheTTLSeconds int `mapstructure:"REPORT_CACHE_TTL_SECONDS"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "znpos")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("BCRYPT_COST", 12)
	viper.SetDefault("RECONCILE_INTERVAL_SECONDS", 60)
	viper.SetDefault("PENDING_TTL_MINUTES", 5)
	viper.SetDefault("REPORT_CACHE_TTL_SECONDS", 30)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
