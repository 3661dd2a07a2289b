package model

import "fmt"

// LeagueRecord is a league flattened from the API's league/country wrapper.
type LeagueRecord struct {
	Name        string
	CountryName string
	ID          int
}

// Label renders the league the way the league list shows it.
func (l LeagueRecord) Label() string {
	if l.CountryName == "" {
		return l.Name
	}
	return fmt.Sprintf("%s (%s)", l.Name, l.CountryName)
}

// TeamRecord is a team flattened from the API's team wrapper.
type TeamRecord struct {
	Name string
	Logo string
	ID   int
}
