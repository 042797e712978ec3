package main

import (
	"errors"
	"fmt"

	"github.com/sandevgo/ragconf/internal/config"
	"github.com/sandevgo/ragconf/internal/service/ui"
	"github.com/spf13/cobra"
)

var errInvalidSettings = errors.New("settings are invalid")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		settings, err := loadSettings(ctx, envFile)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !settings.HasAPIKey() {
			fmt.Fprintln(out, ui.WarnStyle.Render("warning:"), config.APIKeyVar, "is not set")
		}

		problems := config.FieldErrors(settings.Validate())
		for _, p := range problems {
			fmt.Fprintln(out, ui.ErrorStyle.Render("error:"), p.Error())
		}
		if len(problems) > 0 {
			return errInvalidSettings
		}

		fmt.Fprintln(out, ui.OKStyle.Render("ok:"), "settings are valid")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
