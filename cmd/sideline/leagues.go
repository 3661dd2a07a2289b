package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Veraticus/sideline/internal/cli"
	"github.com/Veraticus/sideline/internal/common"
	"github.com/Veraticus/sideline/internal/league"
	"github.com/Veraticus/sideline/internal/model"
	"github.com/spf13/cobra"
)

func leaguesCmd() *cobra.Command {
	var categories []string

	cmd := &cobra.Command{
		Use:   "leagues",
		Short: "List leagues, optionally filtered by sport",
		Long: `Fetch every league from the sports API and print it as a table.

Each --category selects one sport button, exactly as on the main screen:
leagues whose name contains any selected sport are shown. Soccer also
matches football leagues.`,
		Example: `  sideline leagues
  sideline leagues --category Soccer --category Hockey`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			selected, err := categoryButtons(categories)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fetcher, err := newFetcher(cfg, slog.Default())
			if err != nil {
				return err
			}

			var leagues []model.LeagueRecord
			err = withSpinner(cmd.ErrOrStderr(), "Fetching leagues...", func() error {
				var fetchErr error
				leagues, fetchErr = fetcher.Leagues(cmd.Context())
				return fetchErr
			})
			if err != nil {
				return err
			}

			filtered := league.Filter(league.SelectedLabels(selected), leagues)
			out := cmd.OutOrStdout()
			if len(filtered) == 0 {
				fmt.Fprintln(out, cli.FormatWarning("No leagues match selected sports"))
				return nil
			}

			fmt.Fprintln(out, cli.RenderLeagues(filtered))
			fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("%d of %d leagues", len(filtered), len(leagues))))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil,
		"sport to filter by: "+strings.Join(model.CategoryLabels[:], ", "))
	return cmd
}

// categoryButtons selects the buttons named by labels, case-insensitively.
func categoryButtons(labels []string) ([]model.CategoryButton, error) {
	buttons := model.DefaultCategoryButtons()
	for _, label := range labels {
		index := -1
		for i, b := range buttons {
			if strings.EqualFold(b.Label, strings.TrimSpace(label)) {
				index = i
				break
			}
		}
		if index < 0 {
			return nil, common.NewUserError(fmt.Sprintf("Unknown category %q", label), nil)
		}
		buttons[index].Selected = true
	}
	return buttons, nil
}

func teamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "teams <league-id>",
		Short:   "List the teams of a league",
		Example: "  sideline teams 39",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leagueID, err := strconv.Atoi(args[0])
			if err != nil {
				return common.NewUserError(fmt.Sprintf("League id must be a number, got %q", args[0]), err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fetcher, err := newFetcher(cfg, slog.Default())
			if err != nil {
				return err
			}

			var teams []model.TeamRecord
			err = withSpinner(cmd.ErrOrStderr(), "Fetching teams...", func() error {
				var fetchErr error
				teams, fetchErr = fetcher.Teams(cmd.Context(), leagueID)
				return fetchErr
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderTeams(teams))
			return nil
		},
	}
}
