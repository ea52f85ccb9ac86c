package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Provider exposes the configuration values the application depends on.
// Handlers and tests depend on this interface rather than on *Config so
// individual values can be stubbed.
type Provider interface {
	GetAppEnv() string
	GetAppAddr() string
	GetLogFormat() string
	GetLogLevel() string
	GetSessionSecret() string
	GetSessionEncryptionKey() string
	GetGraphQLEndpoint() string
	GetAuthTimeout() time.Duration
	GetFormTTL() time.Duration
	GetRateLimitPerMinute() int
	IsDevelopment() bool
}

// Config holds all configuration for the application.
type Config struct {
	AppEnv  string
	AppAddr string

	LogFormat string
	LogLevel  string

	SessionSecret        string
	SessionEncryptionKey string

	GraphQLEndpoint string
	AuthTimeout     time.Duration
	FormTTL         time.Duration

	RateLimitPerMinute int
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet at this point.
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		AppEnv:  getEnv("APP_ENV", "development"),
		AppAddr: getEnv("APP_ADDR", ":8080"),

		LogFormat: getEnv("LOG_FORMAT", "text"),
		LogLevel:  getEnv("LOG_LEVEL", "debug"),

		SessionSecret:        os.Getenv("SESSION_SECRET"),
		SessionEncryptionKey: os.Getenv("SESSION_ENCRYPTION_KEY"),

		GraphQLEndpoint: os.Getenv("GRAPHQL_ENDPOINT"),
		AuthTimeout:     getEnvDuration("AUTH_TIMEOUT", 10*time.Second),
		FormTTL:         getEnvDuration("FORM_TTL", 30*time.Minute),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 10),
	}

	if cfg.GraphQLEndpoint == "" {
		return nil, errors.New("GRAPHQL_ENDPOINT is required")
	}
	if cfg.AuthTimeout <= 0 {
		return nil, fmt.Errorf("AUTH_TIMEOUT must be positive, got %s", cfg.AuthTimeout)
	}

	return cfg, nil
}

// ValidateServer checks the values only the web server needs. The CLI loads
// the same configuration without them.
func (c *Config) ValidateServer() error {
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required")
	}
	switch len(c.SessionEncryptionKey) {
	case 0, 16, 24, 32:
	default:
		return fmt.Errorf("SESSION_ENCRYPTION_KEY must be 16, 24 or 32 bytes, got %d", len(c.SessionEncryptionKey))
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", c.RateLimitPerMinute)
	}
	return nil
}

func (c *Config) GetAppEnv() string               { return c.AppEnv }
func (c *Config) GetAppAddr() string              { return c.AppAddr }
func (c *Config) GetLogFormat() string            { return c.LogFormat }
func (c *Config) GetLogLevel() string             { return c.LogLevel }
func (c *Config) GetSessionSecret() string        { return c.SessionSecret }
func (c *Config) GetSessionEncryptionKey() string { return c.SessionEncryptionKey }
func (c *Config) GetGraphQLEndpoint() string      { return c.GraphQLEndpoint }
func (c *Config) GetAuthTimeout() time.Duration   { return c.AuthTimeout }
func (c *Config) GetFormTTL() time.Duration       { return c.FormTTL }
func (c *Config) GetRateLimitPerMinute() int      { return c.RateLimitPerMinute }
func (c *Config) IsDevelopment() bool             { return c.AppEnv == "development" }

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
