package tui

import (
	"strconv"
	"strings"

	"github.com/Veraticus/sideline/internal/i18n"
	"github.com/Veraticus/sideline/internal/model"
	"github.com/Veraticus/sideline/internal/transfers"
	"github.com/Veraticus/sideline/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	leagueWindow = 8
	teamWindow   = 10
	columnWidth  = 16
	placeholder  = "—"
)

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.screen {
	case ScreenNews:
		body = m.renderArticles(i18n.ScreenNews, newsItems)
	case ScreenSchedule:
		body = m.renderSchedule()
	case ScreenHistory:
		body = m.renderArticles(i18n.ScreenHistory, historyItems)
	case ScreenTransfers:
		body = m.renderTransfers()
	case ScreenSettings:
		body = m.renderSettings()
	default:
		body = m.renderMain()
	}

	if m.drawerOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderDrawer(), "  ", body)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		"",
		body,
		"",
		m.help.View(m.keymap),
	)
}

func (m Model) renderHeader() string {
	title := m.theme.Header.Render(themes.GetSportIcon("Soccer") + " " + m.tr.T(i18n.AppTitle))
	screen := m.theme.Bold.Render(m.tr.T(m.screen.titleID()))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", screen)
}

func (m Model) renderDrawer() string {
	lines := make([]string, 0, len(drawerScreens))
	for i, s := range drawerScreens {
		title := m.tr.T(s.titleID())
		if i == m.drawerCursor {
			lines = append(lines, m.theme.DrawerCursor.Render("▸ "+title))
			continue
		}
		lines = append(lines, m.theme.DrawerItem.Render(title))
	}
	return m.theme.Drawer.Render(strings.Join(lines, "\n"))
}

// renderGrid draws a 3x3 grid of toggle buttons.
func (m Model) renderGrid(labels []string, on []bool, cursor int, focused bool) string {
	rows := make([]string, 0, len(labels)/model.GridColumns)
	for start := 0; start < len(labels); start += model.GridColumns {
		cells := make([]string, 0, model.GridColumns)
		for i := start; i < start+model.GridColumns && i < len(labels); i++ {
			style := m.theme.Button
			if on[i] {
				style = m.theme.ButtonOn
			}
			if focused && i == cursor {
				style = style.Border(lipgloss.ThickBorder()).BorderForeground(m.theme.Secondary)
			}
			cells = append(cells, style.Render(labels[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderMain() string {
	buttons := m.catalog.Buttons()
	labels := make([]string, len(buttons))
	on := make([]bool, len(buttons))
	for i, b := range buttons {
		labels[i] = themes.GetSportIcon(b.Label) + " " + b.Label
		on[i] = b.Selected
	}

	sections := []string{
		m.theme.Title.Render(m.tr.T(i18n.MainCategories)),
		m.renderGrid(labels, on, m.gridCursor, m.focus == focusGrid),
		"",
		m.renderField(m.tr.T(i18n.MainField1), m.field1.View(), m.focus == focusField1),
		m.renderField(m.tr.T(i18n.MainField2), m.field2.View(), m.focus == focusField2),
		"",
		m.theme.Title.Render(m.tr.T(i18n.MainLeagues)),
		m.renderLeagues(),
	}

	if teams := m.renderTeams(); teams != "" {
		sections = append(sections, "", teams)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderField(label, view string, focused bool) string {
	style := m.theme.Faint
	if focused {
		style = m.theme.Bold
	}
	return style.Render(label+": ") + view
}

func (m Model) renderLeagues() string {
	switch {
	case m.catalog.LoadingLeagues():
		return m.spinner.View() + " " + m.theme.StatusPending.Render(m.tr.T(i18n.Loading))
	case m.catalog.Error() != "" && (m.catalog.TeamsFailed() || len(m.catalog.AllLeagues()) == 0):
		return m.theme.StatusError.Render(m.catalog.Error())
	}

	leagues := m.catalog.FilteredLeagues()
	if len(leagues) == 0 {
		return m.theme.Faint.Render(m.tr.T(i18n.MainNoMatch))
	}

	start, end := window(m.leagueCursor, len(leagues), leagueWindow)
	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		label := leagues[i].Label()
		if m.focus == focusLeagues && i == m.leagueCursor {
			lines = append(lines, m.theme.Selected.Render("> "+label))
			continue
		}
		lines = append(lines, m.theme.Normal.Render("  "+label))
	}
	lines = append(lines, m.theme.Faint.Render(m.tr.Tf(i18n.MainLeagueCount, map[string]any{
		"Shown": len(leagues),
		"Total": len(m.catalog.AllLeagues()),
	})))
	return strings.Join(lines, "\n")
}

func (m Model) renderTeams() string {
	if m.catalog.LoadingTeams() {
		return m.spinner.View() + " " + m.theme.StatusPending.Render(m.tr.T(i18n.Loading))
	}
	if m.catalog.TeamsFailed() {
		return ""
	}

	teams := m.catalog.Teams()
	if len(teams) == 0 {
		if len(m.catalog.FilteredLeagues()) > 0 {
			return m.theme.Faint.Render(m.tr.T(i18n.MainPickLeague))
		}
		return ""
	}

	lines := []string{m.theme.Title.Render(m.tr.Tf(i18n.MainTeams, map[string]any{
		"League": m.leagueName(m.catalog.TeamsLeagueID()),
	}))}
	for i, team := range teams {
		if i == teamWindow {
			lines = append(lines, m.theme.Faint.Render("  …"))
			break
		}
		lines = append(lines, m.theme.Normal.Render("  "+team.Name))
	}
	return strings.Join(lines, "\n")
}

func (m Model) leagueName(id int) string {
	for _, l := range m.catalog.AllLeagues() {
		if l.ID == id {
			return l.Name
		}
	}
	return strconv.Itoa(id)
}

func (m Model) renderTransfers() string {
	labels := model.CategoryLabels[:]
	vector := m.transfers.Vector

	sections := []string{
		m.theme.Title.Render(m.tr.T(i18n.ScreenTransfers)),
		m.renderGrid(labels, vector[:], m.transferCursor, true),
		"",
	}

	switch {
	case m.transfersLoading:
		sections = append(sections, m.spinner.View()+" "+m.theme.StatusPending.Render(m.tr.T(i18n.Loading)))
	case m.transfers.Phase == transfers.Saving:
		sections = append(sections, m.spinner.View()+" "+m.theme.StatusPending.Render(m.tr.T(i18n.Saving)))
	default:
		sections = append(sections, m.theme.Faint.Render(m.tr.Tf(i18n.TransfersCount, map[string]any{
			"Count": vector.Count(),
		})))
	}

	if msg := m.transfers.Message(); msg != "" {
		sections = append(sections, m.theme.StatusError.Render(msg))
	}

	sections = append(sections, "", m.renderTable(
		m.tr.T(i18n.TransfersPlayer),
		m.tr.T(i18n.TransfersPrice),
		m.tr.T(i18n.TransfersWhereTo),
	))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderSchedule() string {
	labels := make([]string, model.ToggleSlots)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render(m.tr.T(i18n.ScreenSchedule)),
		m.renderGrid(labels, m.schedule[:], m.scheduleCursor, true),
		"",
		m.renderTable(
			m.tr.T(i18n.ScheduleTeam1),
			m.tr.T(i18n.ScheduleTime),
			m.tr.T(i18n.ScheduleTeam2),
		),
	)
}

// renderTable draws a placeholder table with the given headers.
func (m Model) renderTable(headers ...string) string {
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Title: h, Width: columnWidth}
	}

	rows := make([]table.Row, tableRows)
	for i := range rows {
		row := make(table.Row, len(headers))
		for j := range row {
			row[j] = placeholder
		}
		rows[i] = row
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(tableRows+1),
	)

	styles := table.DefaultStyles()
	styles.Header = m.theme.TableHeader
	styles.Selected = lipgloss.NewStyle()
	t.SetStyles(styles)

	return t.View()
}

func (m Model) renderArticles(titleID string, items []string) string {
	lines := []string{m.theme.Title.Render(m.tr.T(titleID))}
	for _, item := range items {
		lines = append(lines, m.theme.Normal.Render("• "+item))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderSettings() string {
	names := [settingsSwitches]string{
		m.tr.T(i18n.SettingsDarkTheme),
		m.tr.T(i18n.SettingsRussian),
	}
	values := [settingsSwitches]bool{m.prefs.DarkTheme, m.prefs.Russian}

	lines := []string{m.theme.Title.Render(m.tr.T(i18n.ScreenSettings))}
	for i, name := range names {
		state := m.tr.T(i18n.SettingsOff)
		stateStyle := m.theme.Faint
		if values[i] {
			state = m.tr.T(i18n.SettingsOn)
			stateStyle = m.theme.StatusSuccess
		}

		cursor := "  "
		nameStyle := m.theme.Normal
		if i == m.settingsCursor {
			cursor = "> "
			nameStyle = m.theme.Bold
		}
		lines = append(lines, cursor+nameStyle.Render(name)+"  "+stateStyle.Render("["+state+"]"))
	}

	if m.settingsErr != "" {
		lines = append(lines, "", m.theme.StatusError.Render(m.settingsErr))
	}
	return strings.Join(lines, "\n")
}

// window returns the visible [start, end) range keeping cursor in view.
func window(cursor, total, size int) (int, int) {
	if total <= size {
		return 0, total
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > total {
		start = total - size
	}
	return start, start + size
}
