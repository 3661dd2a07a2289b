package league

import (
	"github.com/Veraticus/sideline/internal/common"
	"github.com/Veraticus/sideline/internal/model"
)

// Ticket identifies one fetch request. Only the response to the most recently
// issued ticket of each kind is applied; older responses are dropped.
type Ticket uint64

// Catalog owns the main screen's state: category buttons, the fetched league
// set, the filtered view, the teams of the chosen league, and the last error.
// It does no I/O; callers run the fetches and hand results back.
type Catalog struct {
	err            string
	field1         string
	field2         string
	buttons        []model.CategoryButton
	all            []model.LeagueRecord
	filtered       []model.LeagueRecord
	teams          []model.TeamRecord
	lastTicket     Ticket
	leaguesTicket  Ticket
	teamsTicket    Ticket
	teamsLeagueID  int
	loadingLeagues bool
	loadingTeams   bool
	teamsFailed    bool
}

// NewCatalog returns a catalog with the default buttons and no leagues.
func NewCatalog() Catalog {
	return Catalog{
		buttons: model.DefaultCategoryButtons(),
	}
}

// Buttons returns the category buttons in grid order.
func (c *Catalog) Buttons() []model.CategoryButton { return c.buttons }

// AllLeagues returns the last fetched league set.
func (c *Catalog) AllLeagues() []model.LeagueRecord { return c.all }

// FilteredLeagues returns the leagues matching the selected categories.
func (c *Catalog) FilteredLeagues() []model.LeagueRecord { return c.filtered }

// Teams returns the teams of the last fetched league, or nil.
func (c *Catalog) Teams() []model.TeamRecord { return c.teams }

// TeamsLeagueID returns the league the teams belong to.
func (c *Catalog) TeamsLeagueID() int { return c.teamsLeagueID }

// Error returns the message to display, or "".
func (c *Catalog) Error() string { return c.err }

// LoadingLeagues reports whether a league fetch is in flight.
func (c *Catalog) LoadingLeagues() bool { return c.loadingLeagues }

// LoadingTeams reports whether a team fetch is in flight.
func (c *Catalog) LoadingTeams() bool { return c.loadingTeams }

// TeamsFailed reports whether the last team fetch failed. The main screen
// shows the error in place of the league list until the next fetch.
func (c *Catalog) TeamsFailed() bool { return c.teamsFailed }

// Field1 returns the first free-text field.
func (c *Catalog) Field1() string { return c.field1 }

// Field2 returns the second free-text field.
func (c *Catalog) Field2() string { return c.field2 }

// SetField1 updates the first free-text field.
func (c *Catalog) SetField1(text string) { c.field1 = text }

// SetField2 updates the second free-text field.
func (c *Catalog) SetField2(text string) { c.field2 = text }

// ToggleCategory flips one category button and recomputes the filtered view.
func (c *Catalog) ToggleCategory(index int) error {
	buttons, err := model.ToggleCategory(c.buttons, index)
	if err != nil {
		return err
	}
	c.buttons = buttons
	c.refilter()
	return nil
}

// BeginLeagues marks a league fetch as started and returns its ticket.
func (c *Catalog) BeginLeagues() Ticket {
	c.loadingLeagues = true
	c.teamsFailed = false
	c.err = ""
	c.leaguesTicket = c.issue()
	return c.leaguesTicket
}

// ApplyLeagues stores a league fetch result. It returns false, and changes
// nothing, when the ticket has been superseded.
func (c *Catalog) ApplyLeagues(t Ticket, r common.Result[[]model.LeagueRecord]) bool {
	if t != c.leaguesTicket || !c.loadingLeagues {
		return false
	}

	c.loadingLeagues = false
	if r.IsOk() {
		c.all = r.Value()
	} else {
		c.all = nil
		c.err = common.UserMessage(r.Err())
	}
	c.refilter()
	return true
}

// BeginTeams marks a team fetch for leagueID as started and returns its ticket.
func (c *Catalog) BeginTeams(leagueID int) Ticket {
	c.loadingTeams = true
	c.teamsFailed = false
	c.err = ""
	c.teamsLeagueID = leagueID
	c.teamsTicket = c.issue()
	return c.teamsTicket
}

// ApplyTeams stores a team fetch result, dropping superseded tickets.
func (c *Catalog) ApplyTeams(t Ticket, r common.Result[[]model.TeamRecord]) bool {
	if t != c.teamsTicket || !c.loadingTeams {
		return false
	}

	c.loadingTeams = false
	if r.IsOk() {
		c.teams = r.Value()
	} else {
		c.teams = nil
		c.teamsFailed = true
		c.err = common.UserMessage(r.Err())
	}
	return true
}

func (c *Catalog) issue() Ticket {
	c.lastTicket++
	return c.lastTicket
}

func (c *Catalog) refilter() {
	c.filtered = Filter(SelectedLabels(c.buttons), c.all)
}
