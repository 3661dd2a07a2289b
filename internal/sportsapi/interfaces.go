package sportsapi

import (
	"context"

	"github.com/Veraticus/sideline/internal/model"
)

// Fetcher defines the contract for reading leagues and teams.
// This interface allows for easy mocking in tests and swapping data sources.
type Fetcher interface {
	Leagues(ctx context.Context) ([]model.LeagueRecord, error)
	Teams(ctx context.Context, leagueID int) ([]model.TeamRecord, error)
}
