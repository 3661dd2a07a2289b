package tui

import (
	"github.com/Veraticus/sideline/internal/common"
	"github.com/Veraticus/sideline/internal/league"
	"github.com/Veraticus/sideline/internal/model"
	"github.com/Veraticus/sideline/internal/transfers"
)

// Fetch results carry the ticket they were issued under so stale ones can be dropped.
type leaguesFetchedMsg struct {
	result common.Result[[]model.LeagueRecord]
	ticket league.Ticket
}

type teamsFetchedMsg struct {
	result common.Result[[]model.TeamRecord]
	ticket league.Ticket
}

// Transfer board messages.
type transfersLoadedMsg struct {
	state transfers.State
}

type transferSavedMsg struct {
	result common.Result[model.ToggleVector]
}

// Settings messages.
type settingsLoadedMsg struct {
	err error
}

type settingsSavedMsg struct {
	err error
}
