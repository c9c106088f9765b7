package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"go.inout.gg/passmeter/internal/config"
	"go.inout.gg/passmeter/passmetertui"
	"go.inout.gg/passmeter/passmeterview"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passmeter",
		Short: "Interactive password strength meter",
		Long: `passmeter scores a password on every keystroke and shows a strength
bar, a verdict and the criteria the password meets.

The password is never stored, sent anywhere or logged.

Settings are read from PASSMETER_* environment variables (and a .env file)
and can be overridden with flags.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			return run(cmd, cfg)
		},
	}

	fs := cmd.Flags()
	fs.Duration("shake-duration", 0, "how long the weak password feedback lasts")
	fs.Int("bar-width", 0, "maximum width of the strength bar")
	fs.String("theme", "", "color theme: auto, dark or light")
	fs.Bool("reveal", false, "start with the password visible")
	fs.String("log-file", "", "write logs to this file")
	fs.String("log-level", "", "log level: debug, info, warn or error")

	return cmd
}

// loadConfig reads the environment and applies the flags that were set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx, nil)
	if err != nil {
		return nil, err
	}

	fs := cmd.Flags()
	if fs.Changed("shake-duration") {
		cfg.ShakeDuration, _ = fs.GetDuration("shake-duration")
	}

	if fs.Changed("bar-width") {
		cfg.BarWidth, _ = fs.GetInt("bar-width")
	}

	if fs.Changed("theme") {
		cfg.Theme, _ = fs.GetString("theme")
	}

	if fs.Changed("reveal") {
		cfg.Reveal, _ = fs.GetBool("reveal")
	}

	if fs.Changed("log-file") {
		cfg.LogFile, _ = fs.GetString("log-file")
	}

	if fs.Changed("log-level") {
		cfg.LogLevel, _ = fs.GetString("log-level")
	}

	if err := cfg.Validate(ctx); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	logger, closer, err := cfg.Logger()
	if err != nil {
		return err
	}

	defer func() { _ = closer.Close() }()

	theme, err := passmetertui.ParseTheme(cfg.Theme)
	if err != nil {
		return err
	}

	presenterOpts := []func(*passmeterview.Config){
		passmeterview.WithLogger(logger),
		passmeterview.WithShakeDuration(cfg.ShakeDuration),
	}
	if cfg.Reveal {
		presenterOpts = append(presenterOpts, passmeterview.WithVisible())
	}

	model := passmetertui.New(passmetertui.NewConfig(
		passmetertui.WithLogger(logger),
		passmetertui.WithTheme(theme),
		passmetertui.WithBarWidth(cfg.BarWidth),
		passmetertui.WithPresenter(passmeterview.NewConfig(presenterOpts...)),
	))
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	model.Attach(p)

	logger.Info("passmeter: started", slog.String("theme", cfg.Theme))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("passmeter: terminal UI failed: %w", err)
	}

	logger.Info("passmeter: stopped")

	return nil
}
