// Package logger builds log/slog loggers for command-line tools, configured
// through functional options or the process environment.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/optkit/pkg/config"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for terminals.
	FormatText Format = "text"
)

type factoryConfig struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// Option configures logger creation.
type Option func(*factoryConfig)

func WithLevel(l slog.Level) Option {
	return func(c *factoryConfig) { c.level = l }
}

// WithFormat sets output format. Panics for invalid formats to enforce
// fail-fast initialization.
func WithFormat(f Format) Option {
	return func(c *factoryConfig) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets a custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *factoryConfig) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *factoryConfig) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// New creates a slog.Logger. Defaults: info level, text format, stderr output
// (CLI tools keep stdout for command results).
func New(options ...Option) *slog.Logger {
	cfg := &factoryConfig{
		level:  slog.LevelInfo,
		format: FormatText,
		output: os.Stderr,
	}
	for _, option := range options {
		option(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	var handler slog.Handler
	switch cfg.format {
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	default:
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}
	return slog.New(handler)
}

// EnvConfig holds environment-driven logger settings.
type EnvConfig struct {
	Level  string `env:"OPTKIT_LOG_LEVEL" envDefault:"info"`
	Format string `env:"OPTKIT_LOG_FORMAT" envDefault:"text"`
}

// NewFromEnv creates a logger configured from OPTKIT_LOG_LEVEL and
// OPTKIT_LOG_FORMAT, falling back to defaults when the variables are unset
// or unparsable.
func NewFromEnv(options ...Option) *slog.Logger {
	var cfg EnvConfig
	if err := config.Load(&cfg); err != nil {
		return New(options...)
	}
	opts := []Option{WithLevel(parseLevel(cfg.Level))}
	if f := Format(strings.ToLower(cfg.Format)); f == FormatJSON || f == FormatText {
		opts = append(opts, WithFormat(f))
	}
	return New(append(opts, options...)...)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
