package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/sideline/internal/cli"
	"github.com/spf13/cobra"
)

func settingsCmd() *cobra.Command {
	var dark, russian bool

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the theme and language",
		Example: `  sideline settings
  sideline settings --dark --russian=false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc, cleanup, err := openSettings(ctx, cfg, slog.Default())
			if err != nil {
				return err
			}
			defer cleanup()

			changed := false
			if cmd.Flags().Changed("dark") {
				if _, err := svc.SetDarkTheme(ctx, dark); err != nil {
					return err
				}
				changed = true
			}
			if cmd.Flags().Changed("russian") {
				if _, err := svc.SetRussian(ctx, russian); err != nil {
					return err
				}
				changed = true
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.RenderSettings(svc.Current()))
			if changed {
				fmt.Fprintln(out, cli.FormatSuccess("Settings saved"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dark, "dark", false, "use the dark theme")
	cmd.Flags().BoolVar(&russian, "russian", false, "show the interface in Russian")
	return cmd
}
