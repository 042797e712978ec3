package main

import (
	"github.com/sandevgo/ragconf/internal/service/installer"
	"github.com/sandevgo/ragconf/pkg/log"
	"github.com/spf13/cobra"
)

var force bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the .env file interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Str("path", envFile).Msg("starting setup")

		state, err := installer.RunWizard(envFile, force)
		if err != nil {
			return err
		}

		// Read the new file back so mistakes surface now rather than at startup
		settings, err := readSavedSettings(ctx, state.EnvPath)
		if err != nil {
			return err
		}
		if err := settings.Validate(); err != nil {
			logger.Warn().Err(err).Msg("saved settings do not validate")
		}

		logger.Info().Object("settings", settings).Msg("setup complete")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing .env file")
	rootCmd.AddCommand(initCmd)
}
