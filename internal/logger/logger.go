// Package logger provides structured logging using zerolog.
// The interactive UI owns the terminal, so output defaults to a file or
// is discarded; the non-interactive commands log to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the output format (json, console)
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// File is an optional path logs are appended to
	File string `env:"LOG_FILE"`
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "json",
	}
}

// Logger wraps zerolog.Logger with additional context.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to cfg.File, or to fallback when no file is
// configured. The returned closer releases the file, if any.
func New(cfg Config, fallback io.Writer) (*Logger, io.Closer, error) {
	if cfg.File == "" {
		return NewWithOutput(cfg, fallback), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0750); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	// #nosec G304 -- log path comes from the user's own configuration
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWithOutput(cfg, f), f, nil
}

// NewWithOutput creates a new Logger with custom output writer.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	if output == nil {
		output = io.Discard
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var writer = output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	return &Logger{
		Logger: zerolog.New(writer).
			Level(level).
			With().
			Timestamp().
			Str("app", "flights").
			Logger(),
	}
}

// WithContext returns a new logger with an additional context field.
func (l *Logger) WithContext(key, value string) *Logger {
	return &Logger{
		Logger: l.With().Str(key, value).Logger(),
	}
}

// WithSearchID returns a logger tagged with a search id.
func (l *Logger) WithSearchID(id string) *Logger {
	return l.WithContext("search_id", id)
}

// Nop returns a disabled logger that produces no output.
func Nop() *Logger {
	return &Logger{
		Logger: zerolog.Nop(),
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
