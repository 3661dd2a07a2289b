package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Veraticus/sideline/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// RenderToggleGrid draws the nine transfer flags as a numbered 3x3 grid.
func RenderToggleGrid(v model.ToggleVector) string {
	rows := make([]string, 0, model.ToggleSlots/model.GridColumns)
	for start := 0; start < model.ToggleSlots; start += model.GridColumns {
		cells := make([]string, 0, model.GridColumns)
		for i := start; i < start+model.GridColumns; i++ {
			icon := OffIcon
			if v[i] {
				icon = OnIcon
			}
			cells = append(cells, TableCellStyle.Render(fmt.Sprintf("%s %d", icon, i)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// RenderLeagues renders leagues as an ID/name/country table.
func RenderLeagues(leagues []model.LeagueRecord) string {
	rows := make([][]string, 0, len(leagues))
	for _, l := range leagues {
		rows = append(rows, []string{strconv.Itoa(l.ID), l.Name, l.CountryName})
	}
	return renderTable([]string{"ID", "League", "Country"}, rows)
}

// RenderTeams renders teams as an ID/name table.
func RenderTeams(teams []model.TeamRecord) string {
	rows := make([][]string, 0, len(teams))
	for _, team := range teams {
		rows = append(rows, []string{strconv.Itoa(team.ID), team.Name})
	}
	return renderTable([]string{"ID", "Team"}, rows)
}

// RenderSettings renders the two switches.
func RenderSettings(s model.Settings) string {
	return strings.Join([]string{
		fmt.Sprintf("%s Dark Theme", switchIcon(s.DarkTheme)),
		fmt.Sprintf("%s Russian Language", switchIcon(s.Russian)),
	}, "\n")
}

func switchIcon(on bool) string {
	if on {
		return OnIcon
	}
	return OffIcon
}

func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	header := make([]string, len(headers))
	for i, h := range headers {
		header[i] = TableHeaderStyle.Width(widths[i] + 2).Render(h)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for _, row := range rows {
		b.WriteString("\n")
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = TableCellStyle.Width(widths[i] + 2).Render(cell)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return b.String()
}
