// Package config loads the launcher configuration from the environment.
package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"

	"go.inout.gg/passmeter"
)

// Prefix is prepended to every environment variable name.
const Prefix = "PASSMETER_"

//nolint:gochecknoglobals
var (
	modifier = modifiers.New()
	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Config is the configuration of the passmeter binary.
type Config struct {
	ShakeDuration time.Duration `env:"SHAKE_DURATION" envDefault:"500ms" validate:"gte=1ms,lte=10s"`
	BarWidth      int           `env:"BAR_WIDTH" envDefault:"40" validate:"gte=10,lte=200"`
	Theme         string        `env:"THEME" envDefault:"auto" mod:"trim,lcase" validate:"oneof=auto dark light"`
	LogFile       string        `env:"LOG_FILE" mod:"trim"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info" mod:"trim,lcase" validate:"oneof=debug info warn error"`

	// Reveal starts with the password unmasked.
	Reveal bool `env:"REVEAL"`
}

// Load reads the configuration from environ, falling back to the process
// environment when environ is nil.
func Load(ctx context.Context, environ map[string]string) (*Config, error) {
	//nolint:exhaustruct
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      Prefix,
		Environment: environ,
	}); err != nil {
		return nil, fmt.Errorf("%w: failed to parse environment: %w", passmeter.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(ctx); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate normalises string fields and checks every field against its
// constraints.
func (c *Config) Validate(ctx context.Context) error {
	if err := modifier.Struct(ctx, c); err != nil {
		return fmt.Errorf("%w: failed to normalise: %w", passmeter.ErrInvalidConfig, err)
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", passmeter.ErrInvalidConfig, err)
	}

	return nil
}

// Logger builds the logger described by c.
//
// Without a log file the logger discards everything, since stdout and
// stderr belong to the terminal UI. The returned closer must be closed
// once the logger is no longer used.
func (c *Config) Logger() (*slog.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("%w: unknown log level %q: %w", passmeter.ErrInvalidConfig, c.LogLevel, err)
	}

	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("passmeter/config: failed to open log file: %w", err)
	}

	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
