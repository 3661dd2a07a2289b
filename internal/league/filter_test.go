package league

import (
	"strings"
	"testing"

	"github.com/Veraticus/sideline/internal/model"
	"github.com/stretchr/testify/assert"
)

func sampleLeagues() []model.LeagueRecord {
	return []model.LeagueRecord{
		{ID: 39, Name: "Premier League", CountryName: "England"},
		{ID: 1, Name: "Football Conference", CountryName: "England"},
		{ID: 253, Name: "Major League Soccer", CountryName: "USA"},
		{ID: 900, Name: "Ice Hockey Cup", CountryName: "Canada"},
		{ID: 12, Name: "Women's Football League", CountryName: "Sweden"},
	}
}

func names(leagues []model.LeagueRecord) []string {
	out := make([]string, 0, len(leagues))
	for _, l := range leagues {
		out = append(out, l.Name)
	}
	return out
}

func TestFilter_EmptySelectionIsIdentity(t *testing.T) {
	leagues := sampleLeagues()

	got := Filter(nil, leagues)
	assert.Equal(t, leagues, got)

	got = Filter([]string{}, leagues)
	assert.Equal(t, leagues, got)

	assert.Nil(t, Filter(nil, nil))
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		want     []string
	}{
		{
			name:     "soccer matches soccer and football names",
			selected: []string{"Soccer"},
			want:     []string{"Football Conference", "Major League Soccer", "Women's Football League"},
		},
		{
			name:     "football does not match soccer names",
			selected: []string{"Football"},
			want:     []string{"Football Conference", "Women's Football League"},
		},
		{
			name:     "case-insensitive substring",
			selected: []string{"HOCKEY"},
			want:     []string{"Ice Hockey Cup"},
		},
		{
			name:     "any label matches",
			selected: []string{"Hockey", "Premier"},
			want:     []string{"Premier League", "Ice Hockey Cup"},
		},
		{
			name:     "substring not token",
			selected: []string{"league"},
			want:     []string{"Premier League", "Major League Soccer", "Women's Football League"},
		},
		{
			name:     "no match",
			selected: []string{"Curling"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.selected, sampleLeagues())
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFilter_SoccerAlias(t *testing.T) {
	leagues := []model.LeagueRecord{{Name: "Football Premier"}}

	assert.Equal(t, leagues, Filter([]string{"soccer"}, leagues))
}

func TestFilter_SubstringProperty(t *testing.T) {
	leagues := sampleLeagues()

	for _, l := range leagues {
		lower := strings.ToLower(l.Name)
		for start := 0; start < len(lower); start++ {
			for end := start + 1; end <= len(lower); end++ {
				label := lower[start:end]
				assert.Contains(t, Filter([]string{label}, leagues), l, "label %q", label)
			}
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	leagues := sampleLeagues()
	before := append([]model.LeagueRecord(nil), leagues...)

	_ = Filter([]string{"soccer"}, leagues)
	assert.Equal(t, before, leagues)
}

func TestSelectedLabels(t *testing.T) {
	buttons := model.DefaultCategoryButtons()
	assert.Empty(t, SelectedLabels(buttons))

	buttons[2].Selected = true
	buttons[0].Selected = true
	assert.Equal(t, []string{"Soccer", "Hockey"}, SelectedLabels(buttons))
}
