package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/inputform/internal/config"
	"github.com/jask/inputform/internal/form"
	"github.com/jask/inputform/internal/logging"
	"github.com/jask/inputform/internal/tui"
	"github.com/jask/inputform/internal/view"
)

func main() {
	Execute()
}

// setup loads config and opens the log file shared by every subcommand.
func setup(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("config: %w", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("logging: %w", err)
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
	return cfg, logger, nil
}

func themeFrom(cfg config.UIConfig) view.Theme {
	t := cfg.Theme
	return view.NewTheme(view.Colors{
		Title:      t.Title,
		Frame:      t.Frame,
		Label:      t.Label,
		Value:      t.Value,
		Hint:       t.Hint,
		Button:     t.Button,
		ButtonText: t.ButtonText,
		Focus:      t.Focus,
	}, cfg.Width)
}

func runTUI(cmd *cobra.Command) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctrl := form.NewController(form.WithLogger(logger))
	logger.Info("starting form", zap.String("session", ctrl.ID()), zap.Bool("alt_screen", cfg.UI.AltScreen))

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	opts = append(opts, tea.WithContext(ctx))

	p := tea.NewProgram(tui.New(ctx, ctrl, themeFrom(cfg.UI), logger), opts...)
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return err
	}
	logger.Info("form closed", zap.String("session", ctrl.ID()), zap.Stringer("mode", ctrl.Mode()))
	return nil
}
