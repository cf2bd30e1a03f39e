package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/inputform/internal/form"
	"github.com/jask/inputform/internal/prompt"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Fill the form through line-by-line prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		output := cfg.Prompt.Output
		if cmd.Flags().Changed("output") {
			output, _ = cmd.Flags().GetString("output")
		}
		format, err := prompt.ParseFormat(output)
		if err != nil {
			return err
		}

		ctrl := form.NewController(form.WithLogger(logger))
		s := prompt.NewSession(ctrl, prompt.NewSurveyDriver(cmd.OutOrStdout()),
			prompt.WithOutput(cmd.OutOrStdout()),
			prompt.WithFormat(format),
			prompt.WithLogger(logger),
		)
		if err := s.Run(cmd.Context()); err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				logger.Info("prompt session aborted")
				return nil
			}
			logger.Error("prompt session failed", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	promptCmd.Flags().String("output", "", "Result format: pretty, json or yaml")
	rootCmd.AddCommand(promptCmd)
}
