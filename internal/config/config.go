package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server config
	Server ServerConfig

	// Gemini API config
	Gemini GeminiConfig

	// sentiment tagging
	Sentiment SentimentConfig

	// CORS and debug endpoints
	Security SecurityConfig

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Address         string        `env:"SERVER_ADDRESS" envDefault:":5000"`
	Environment     string        `env:"APP_ENV" envDefault:"development"` // development, staging, production
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"90s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MaxBodyBytes    int64         `env:"MAX_BODY_BYTES" envDefault:"20971520"`
}

// GeminiConfig holds the model credential and call settings.
// An empty APIKey is allowed; model calls fail at call time instead.
type GeminiConfig struct {
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"60s"`
	BaseURL string        `env:"GEMINI_BASE_URL"`
}

// SentimentConfig controls the isPositive tag on text analysis.
// The keyword classifier sets isPositive when the reply contains "positive",
// which is the contract clients rely on. The vader classifier scores the
// reply instead and does not keep that contract.
type SentimentConfig struct {
	Enabled    bool   `env:"SENTIMENT_ENABLED" envDefault:"true"`
	Classifier string `env:"SENTIMENT_CLASSIFIER" envDefault:"keyword"` // keyword, vader
}

// SecurityConfig holds cross-origin and credential-debugging settings.
type SecurityConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	// ExposeKeyStatus mounts /api-key-status, which leaks a key prefix.
	ExposeKeyStatus bool `env:"EXPOSE_KEY_STATUS" envDefault:"true"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// HasAPIKey reports whether a Gemini credential was configured.
func (c *Config) HasAPIKey() bool {
	return c.Gemini.APIKey != ""
}

func Load() (*Config, error) {
	// .env is a local development convenience, missing is fine
	_ = godotenv.Load()

	return parse()
}

func parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.Sentiment.Classifier = strings.ToLower(strings.TrimSpace(cfg.Sentiment.Classifier))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	for i, origin := range cfg.Security.AllowedOrigins {
		cfg.Security.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that the configuration is usable.
// A missing GEMINI_API_KEY is deliberately not an error here.
func (c *Config) validate() error {
	var errs []error

	if c.Server.Address == "" {
		errs = append(errs, errors.New("SERVER_ADDRESS is required"))
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.Server.Environment] {
		errs = append(errs, fmt.Errorf("APP_ENV must be one of: development, staging, production (got: %s)", c.Server.Environment))
	}

	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_BYTES must be positive"))
	}

	if c.Gemini.Model == "" {
		errs = append(errs, errors.New("GEMINI_MODEL must not be empty"))
	}

	if c.Gemini.Timeout <= 0 {
		errs = append(errs, errors.New("GEMINI_TIMEOUT must be positive"))
	} else if c.Server.WriteTimeout > 0 && c.Server.WriteTimeout <= c.Gemini.Timeout {
		errs = append(errs, fmt.Errorf("SERVER_WRITE_TIMEOUT (%s) must exceed GEMINI_TIMEOUT (%s)", c.Server.WriteTimeout, c.Gemini.Timeout))
	}

	switch c.Sentiment.Classifier {
	case "keyword", "vader":
	default:
		errs = append(errs, fmt.Errorf("SENTIMENT_CLASSIFIER must be one of: keyword, vader (got: %s)", c.Sentiment.Classifier))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error (got: %s)", c.LogLevel))
	}

	if len(c.Security.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must list at least one origin"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%w", errors.Join(errs...))
	}

	return nil
}

// MustLoad is like Load but panics on error.
// Used in main() where its required to fail fast
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
