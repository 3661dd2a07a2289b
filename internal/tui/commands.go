package tui

import (
	"context"
	"time"

	"github.com/Veraticus/sideline/internal/common"
	"github.com/Veraticus/sideline/internal/league"
	"github.com/Veraticus/sideline/internal/model"
	"github.com/Veraticus/sideline/internal/settings"
	"github.com/Veraticus/sideline/internal/sportsapi"
	"github.com/Veraticus/sideline/internal/transfers"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fetchTimeout = 30 * time.Second
	saveTimeout  = 10 * time.Second
)

// errNoFetcher is reported when the UI runs without an API client.
var errNoFetcher = common.NewUserError("Sports API is not configured", nil)

// fetchLeaguesCmd fetches all leagues under ticket.
func fetchLeaguesCmd(ctx context.Context, fetcher sportsapi.Fetcher, ticket league.Ticket) tea.Cmd {
	return func() tea.Msg {
		if fetcher == nil {
			return leaguesFetchedMsg{ticket: ticket, result: common.Fail[[]model.LeagueRecord](errNoFetcher)}
		}

		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()

		leagues, err := fetcher.Leagues(ctx)
		return leaguesFetchedMsg{ticket: ticket, result: common.ResultOf(leagues, err)}
	}
}

// fetchTeamsCmd fetches the teams of one league under ticket.
func fetchTeamsCmd(ctx context.Context, fetcher sportsapi.Fetcher, ticket league.Ticket, leagueID int) tea.Cmd {
	return func() tea.Msg {
		if fetcher == nil {
			return teamsFetchedMsg{ticket: ticket, result: common.Fail[[]model.TeamRecord](errNoFetcher)}
		}

		ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()

		teams, err := fetcher.Teams(ctx, leagueID)
		return teamsFetchedMsg{ticket: ticket, result: common.ResultOf(teams, err)}
	}
}

// loadTransfersCmd reads the persisted transfer flags.
func loadTransfersCmd(ctx context.Context, board *transfers.Board) tea.Cmd {
	return func() tea.Msg {
		return transfersLoadedMsg{state: board.Load(ctx)}
	}
}

// awaitSaveCmd reports when a background save finishes.
func awaitSaveCmd(ctx context.Context, task *common.Task[model.ToggleVector]) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, saveTimeout)
		defer cancel()
		return transferSavedMsg{result: task.Wait(ctx)}
	}
}

// loadSettingsCmd reads stored settings.
func loadSettingsCmd(ctx context.Context, svc *settings.Service) tea.Cmd {
	return func() tea.Msg {
		_, err := svc.Load(ctx)
		return settingsLoadedMsg{err: err}
	}
}

// saveSettingCmd persists the current value of one switch.
func saveSettingCmd(ctx context.Context, svc *settings.Service, key string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, saveTimeout)
		defer cancel()
		return settingsSavedMsg{err: svc.Persist(ctx, key)}
	}
}
