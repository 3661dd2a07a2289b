package league

import (
	"errors"
	"testing"

	"github.com/Veraticus/sideline/internal/common"
	"github.com/Veraticus/sideline/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Defaults(t *testing.T) {
	c := NewCatalog()

	assert.Len(t, c.Buttons(), model.CategoryCount)
	assert.Empty(t, c.FilteredLeagues())
	assert.Nil(t, c.Teams())
	assert.False(t, c.LoadingLeagues())
	assert.False(t, c.LoadingTeams())
	assert.Empty(t, c.Error())
}

func TestCatalog_LeaguesLifecycle(t *testing.T) {
	c := NewCatalog()

	ticket := c.BeginLeagues()
	assert.True(t, c.LoadingLeagues())

	applied := c.ApplyLeagues(ticket, common.Ok(sampleLeagues()))
	require.True(t, applied)
	assert.False(t, c.LoadingLeagues())
	assert.Equal(t, sampleLeagues(), c.AllLeagues())
	assert.Equal(t, sampleLeagues(), c.FilteredLeagues(), "no selection shows everything")
}

func TestCatalog_ToggleRecomputesFilter(t *testing.T) {
	c := NewCatalog()
	c.ApplyLeagues(c.BeginLeagues(), common.Ok(sampleLeagues()))

	require.NoError(t, c.ToggleCategory(2)) // Hockey
	assert.Equal(t, []string{"Ice Hockey Cup"}, names(c.FilteredLeagues()))

	require.NoError(t, c.ToggleCategory(0)) // Soccer
	assert.Equal(t,
		[]string{"Football Conference", "Major League Soccer", "Ice Hockey Cup", "Women's Football League"},
		names(c.FilteredLeagues()))

	require.NoError(t, c.ToggleCategory(2))
	require.NoError(t, c.ToggleCategory(0))
	assert.Equal(t, sampleLeagues(), c.FilteredLeagues())

	assert.ErrorIs(t, c.ToggleCategory(9), common.ErrIndexOutOfRange)
}

func TestCatalog_LeaguesFailure(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want string
	}{
		{name: "network", err: &common.NetworkError{Err: errors.New("dial tcp: refused")}, want: "Network error: dial tcp: refused"},
		{name: "server", err: &common.ServerError{Code: 500}, want: "Server error: 500"},
		{name: "empty", err: &common.EmptyResultError{Resource: "leagues"}, want: "No leagues found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog()
			c.ApplyLeagues(c.BeginLeagues(), common.Ok(sampleLeagues()))

			ticket := c.BeginLeagues()
			assert.Empty(t, c.Error(), "starting a fetch clears the error")
			c.ApplyLeagues(ticket, common.Fail[[]model.LeagueRecord](tt.err))

			assert.Equal(t, tt.want, c.Error())
			assert.Empty(t, c.AllLeagues())
			assert.Empty(t, c.FilteredLeagues())
			assert.False(t, c.LoadingLeagues())
		})
	}
}

func TestCatalog_StaleLeagueResponseDropped(t *testing.T) {
	c := NewCatalog()

	first := c.BeginLeagues()
	second := c.BeginLeagues()

	fresh := []model.LeagueRecord{{ID: 2, Name: "Fresh League"}}
	require.True(t, c.ApplyLeagues(second, common.Ok(fresh)))

	assert.False(t, c.ApplyLeagues(first, common.Ok(sampleLeagues())))
	assert.Equal(t, fresh, c.AllLeagues())
}

func TestCatalog_TeamsLifecycle(t *testing.T) {
	c := NewCatalog()

	ticket := c.BeginTeams(39)
	assert.True(t, c.LoadingTeams())
	assert.Equal(t, 39, c.TeamsLeagueID())

	teams := []model.TeamRecord{{ID: 33, Name: "Manchester United"}}
	require.True(t, c.ApplyTeams(ticket, common.Ok(teams)))
	assert.Equal(t, teams, c.Teams())
	assert.False(t, c.LoadingTeams())

	ticket = c.BeginTeams(40)
	c.ApplyTeams(ticket, common.Fail[[]model.TeamRecord](&common.EmptyResultError{Resource: "teams"}))
	assert.Nil(t, c.Teams())
	assert.Equal(t, "No teams found", c.Error())
	assert.True(t, c.TeamsFailed())

	c.BeginLeagues()
	assert.False(t, c.TeamsFailed(), "a new fetch clears the failure")
}

func TestCatalog_StaleTeamResponseDropped(t *testing.T) {
	c := NewCatalog()

	first := c.BeginTeams(1)
	second := c.BeginTeams(2)

	assert.False(t, c.ApplyTeams(first, common.Ok([]model.TeamRecord{{Name: "Old"}})))
	assert.True(t, c.LoadingTeams(), "newer request still pending")

	assert.True(t, c.ApplyTeams(second, common.Ok([]model.TeamRecord{{Name: "New"}})))
	assert.Equal(t, "New", c.Teams()[0].Name)
}

func TestCatalog_TicketsAreIndependentPerResource(t *testing.T) {
	c := NewCatalog()

	leagues := c.BeginLeagues()
	teams := c.BeginTeams(39)

	assert.NotEqual(t, leagues, teams)
	assert.False(t, c.ApplyLeagues(teams, common.Ok(sampleLeagues())))
	assert.True(t, c.ApplyLeagues(leagues, common.Ok(sampleLeagues())))
	assert.True(t, c.LoadingTeams())
}

func TestCatalog_Fields(t *testing.T) {
	c := NewCatalog()
	c.SetField1("hello")
	c.SetField2("world")

	assert.Equal(t, "hello", c.Field1())
	assert.Equal(t, "world", c.Field2())
}
