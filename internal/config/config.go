// Package config loads application configuration from environment variables,
// with optional values from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/mobil-koeln/flights-cli/internal/logger"
)

// Config holds all application configuration.
type Config struct {
	Search  SearchConfig
	API     APIConfig
	Cache   CacheConfig
	Logging logger.Config
}

// SearchConfig holds settings for the search itself.
type SearchConfig struct {
	// Delay is the artificial latency of the built-in catalog search
	Delay   time.Duration `env:"SEARCH_DELAY" envDefault:"2s"`
	Timeout time.Duration `env:"SEARCH_TIMEOUT" envDefault:"30s"`
}

// APIConfig holds settings for the optional live offers backend.
// The backend is only used when URL is set.
type APIConfig struct {
	URL     string        `env:"FLIGHTS_API_URL"`
	Key     string        `env:"FLIGHTS_API_KEY"`
	Host    string        `env:"FLIGHTS_API_HOST" envDefault:"sky-scrapper.p.rapidapi.com"`
	Timeout time.Duration `env:"FLIGHTS_API_TIMEOUT" envDefault:"10s"`
	Retries int           `env:"FLIGHTS_API_RETRIES" envDefault:"3"`
}

// CacheConfig holds settings for the live API response cache.
type CacheConfig struct {
	Enabled bool          `env:"CACHE_ENABLED" envDefault:"true"`
	TTL     time.Duration `env:"CACHE_TTL" envDefault:"90s"`
	// Dir overrides the default cache directory
	Dir string `env:"CACHE_DIR"`
}

// Load reads configuration from environment variables.
// A .env file is loaded first when present; a missing file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return parse()
}

func parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration values for correctness.
func (c *Config) Validate() error {
	if c.Search.Delay < 0 {
		return fmt.Errorf("SEARCH_DELAY must not be negative, got %s", c.Search.Delay)
	}
	if c.Search.Timeout <= 0 {
		return fmt.Errorf("SEARCH_TIMEOUT must be positive")
	}

	if c.API.URL != "" {
		u, err := url.Parse(c.API.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("FLIGHTS_API_URL must be an absolute URL, got %q", c.API.URL)
		}
		if c.API.Key == "" {
			return fmt.Errorf("FLIGHTS_API_KEY is required when FLIGHTS_API_URL is set")
		}
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("FLIGHTS_API_TIMEOUT must be positive")
	}
	if c.API.Retries < 0 {
		return fmt.Errorf("FLIGHTS_API_RETRIES must not be negative, got %d", c.API.Retries)
	}

	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when caching is enabled")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", c.Logging.Format)
	}

	return nil
}

// UsesLiveAPI reports whether searches go to the live backend instead of
// the built-in catalog.
func (c *Config) UsesLiveAPI() bool {
	return c.API.URL != ""
}
