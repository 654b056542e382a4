// Package config provides configuration for the ledger service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Environment names recognized in the ENV variable.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort int
	Env      string

	// Backing services
	DatabaseURL string
	RedisURL    string

	// Rate limiting (requests per minute per client)
	RateLimitMax int

	// Summary cache
	SummaryTTL time.Duration

	// Session cookie lifetime
	SessionMaxAge time.Duration

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:      getEnvInt("HTTP_PORT", 3333),
		Env:           getEnv("ENV", EnvDevelopment),
		DatabaseURL:   getEnv("DATABASE_URL", "file:fintx.db?cache=shared&mode=rwc"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		RateLimitMax:  getEnvInt("RATE_LIMIT_MAX", 100),
		SummaryTTL:    time.Duration(getEnvInt("SUMMARY_TTL_SECONDS", 60)) * time.Second,
		SessionMaxAge: 7 * 24 * time.Hour,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
	if cfg.Env == EnvDevelopment {
		// Keep the limiter out of the way during local development.
		cfg.RateLimitMax = getEnvInt("RATE_LIMIT_MAX", 1000)
	}
	return cfg
}

// IsProduction reports whether the service runs with production settings.
// Session cookies are marked Secure only in production.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
