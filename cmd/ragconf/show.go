package main

import (
	"fmt"

	"github.com/sandevgo/ragconf/internal/service/ui"
	"github.com/sandevgo/ragconf/pkg/log"
	"github.com/spf13/cobra"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings with the API key masked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		settings, err := loadSettings(ctx, envFile)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch showFormat {
		case "table":
			fmt.Fprintln(out, ui.RenderSettings(settings))
		case "env":
			content, err := settings.DotEnv()
			if err != nil {
				return err
			}
			fmt.Fprint(out, content)
		default:
			return fmt.Errorf("unknown format %q, want table or env", showFormat)
		}

		if !settings.HasAPIKey() {
			log.FromCtx(ctx).Warn().Msg("OPENROUTER_API_KEY is not set")
		}
		return nil
	},
}

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "table", "output format: table or env")
	rootCmd.AddCommand(showCmd)
}
