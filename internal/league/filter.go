// Package league implements league filtering and the main-screen league browser state.
package league

import (
	"strings"

	"github.com/Veraticus/sideline/internal/model"
)

// The API is football-only, so "soccer" also has to match football league names.
// The alias is one-directional.
const (
	soccerLabel  = "soccer"
	footballName = "football"
)

// Filter returns the leagues whose name contains any of the selected labels,
// case-insensitively. With no selection the input is returned unchanged.
// Relative order is preserved.
func Filter(selected []string, leagues []model.LeagueRecord) []model.LeagueRecord {
	if len(selected) == 0 {
		return leagues
	}

	sports := make([]string, 0, len(selected))
	for _, label := range selected {
		sports = append(sports, strings.ToLower(label))
	}

	filtered := make([]model.LeagueRecord, 0, len(leagues))
	for _, l := range leagues {
		if matchesAny(strings.ToLower(l.Name), sports) {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

func matchesAny(name string, sports []string) bool {
	for _, sport := range sports {
		if strings.Contains(name, sport) {
			return true
		}
		if sport == soccerLabel && strings.Contains(name, footballName) {
			return true
		}
	}
	return false
}

// SelectedLabels returns the labels of the selected buttons in grid order.
func SelectedLabels(buttons []model.CategoryButton) []string {
	var labels []string
	for _, b := range buttons {
		if b.Selected {
			labels = append(labels, b.Label)
		}
	}
	return labels
}
