package sportsapi

import (
	"context"
	"sync"

	"github.com/Veraticus/sideline/internal/model"
)

// MockClient is a mock implementation of Fetcher for testing.
type MockClient struct {
	// Functions that can be set by tests to control behavior
	LeaguesFn func(ctx context.Context) ([]model.LeagueRecord, error)
	TeamsFn   func(ctx context.Context, leagueID int) ([]model.TeamRecord, error)

	// Call tracking
	TeamsCalls   []int
	LeaguesCalls int

	mu sync.Mutex
}

// NewMockClient creates a new mock client.
func NewMockClient() *MockClient {
	return &MockClient{
		TeamsCalls: []int{},
	}
}

// Leagues implements Fetcher.Leagues.
func (m *MockClient) Leagues(ctx context.Context) ([]model.LeagueRecord, error) {
	m.mu.Lock()
	m.LeaguesCalls++
	fn := m.LeaguesFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx)
	}

	// Default behavior: return empty slice
	return []model.LeagueRecord{}, nil
}

// Teams implements Fetcher.Teams.
func (m *MockClient) Teams(ctx context.Context, leagueID int) ([]model.TeamRecord, error) {
	m.mu.Lock()
	m.TeamsCalls = append(m.TeamsCalls, leagueID)
	fn := m.TeamsFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, leagueID)
	}

	return []model.TeamRecord{}, nil
}

// LeaguesCallCount returns the number of Leagues calls so far.
func (m *MockClient) LeaguesCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.LeaguesCalls
}

// TeamsCallArgs returns the league IDs Teams was called with.
func (m *MockClient) TeamsCallArgs() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.TeamsCalls...)
}

// Reset clears all call tracking.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TeamsCalls = []int{}
	m.LeaguesCalls = 0
}

// Ensure MockClient implements Fetcher interface.
var _ Fetcher = (*MockClient)(nil)
