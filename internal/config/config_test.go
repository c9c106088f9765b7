package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.inout.gg/passmeter"
	"go.inout.gg/passmeter/internal/config"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("Load should apply defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Load(context.Background(), map[string]string{})
		require.NoError(t, err)

		assert.Equal(t, &config.Config{
			ShakeDuration: 500 * time.Millisecond,
			BarWidth:      40,
			Theme:         "auto",
			LogLevel:      "info",
		}, cfg)
	})

	t.Run("Load should read prefixed variables", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Load(context.Background(), map[string]string{
			"PASSMETER_SHAKE_DURATION": "250ms",
			"PASSMETER_BAR_WIDTH":      "64",
			"PASSMETER_THEME":          "  Dark ",
			"PASSMETER_LOG_LEVEL":      "DEBUG",
			"PASSMETER_REVEAL":         "true",
			"THEME":                    "light",
		})
		require.NoError(t, err)

		assert.Equal(t, 250*time.Millisecond, cfg.ShakeDuration)
		assert.Equal(t, 64, cfg.BarWidth)
		assert.Equal(t, "dark", cfg.Theme)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.True(t, cfg.Reveal)
	})

	tests := []struct {
		name    string
		environ map[string]string
	}{
		{"Load should reject unknown themes", map[string]string{"PASSMETER_THEME": "neon"}},
		{"Load should reject narrow bars", map[string]string{"PASSMETER_BAR_WIDTH": "5"}},
		{"Load should reject long shakes", map[string]string{"PASSMETER_SHAKE_DURATION": "1m"}},
		{"Load should reject malformed durations", map[string]string{"PASSMETER_SHAKE_DURATION": "soon"}},
		{"Load should reject unknown log levels", map[string]string{"PASSMETER_LOG_LEVEL": "trace"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(context.Background(), tt.environ)
			require.ErrorIs(t, err, passmeter.ErrInvalidConfig)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("Validate should catch overrides", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Load(context.Background(), map[string]string{})
		require.NoError(t, err)

		cfg.BarWidth = 1000
		require.ErrorIs(t, cfg.Validate(context.Background()), passmeter.ErrInvalidConfig)
	})
}

func TestLogger(t *testing.T) {
	t.Parallel()

	t.Run("Logger should discard without a log file", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Load(context.Background(), map[string]string{})
		require.NoError(t, err)

		logger, closer, err := cfg.Logger()
		require.NoError(t, err)
		require.NoError(t, closer.Close())

		assert.False(t, logger.Enabled(context.Background(), 12))
	})

	t.Run("Logger should write JSON to the log file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "passmeter.log")

		cfg, err := config.Load(context.Background(), map[string]string{
			"PASSMETER_LOG_FILE":  path,
			"PASSMETER_LOG_LEVEL": "warn",
		})
		require.NoError(t, err)

		logger, closer, err := cfg.Logger()
		require.NoError(t, err)

		logger.Info("dropped")
		logger.Warn("kept")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		assert.Contains(t, string(data), `"msg":"kept"`)
		assert.NotContains(t, string(data), "dropped")
	})
}
