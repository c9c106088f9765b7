package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.inout.gg/passmeter"
)

func TestLoadConfig(t *testing.T) {
	t.Run("flags should override the environment", func(t *testing.T) {
		t.Setenv("PASSMETER_THEME", "light")
		t.Setenv("PASSMETER_BAR_WIDTH", "50")

		cmd := newRootCmd()
		cmd.SetContext(context.Background())
		require.NoError(t, cmd.ParseFlags([]string{"--theme", "dark", "--shake-duration", "1s", "--reveal"}))

		cfg, err := loadConfig(cmd)
		require.NoError(t, err)

		assert.Equal(t, "dark", cfg.Theme)
		assert.Equal(t, 50, cfg.BarWidth)
		assert.Equal(t, time.Second, cfg.ShakeDuration)
		assert.True(t, cfg.Reveal)
	})

	t.Run("invalid flags should be rejected", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetContext(context.Background())
		require.NoError(t, cmd.ParseFlags([]string{"--bar-width", "3"}))

		_, err := loadConfig(cmd)
		require.ErrorIs(t, err, passmeter.ErrInvalidConfig)
	})

	t.Run("positional arguments should be rejected", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetArgs([]string{"hunter2"})

		assert.Error(t, cmd.Execute())
	})
}
