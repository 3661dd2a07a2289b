package tui

import (
	"context"
	"log/slog"

	"github.com/Veraticus/sideline/internal/common"
	"github.com/Veraticus/sideline/internal/i18n"
	"github.com/Veraticus/sideline/internal/league"
	"github.com/Veraticus/sideline/internal/model"
	"github.com/Veraticus/sideline/internal/settings"
	"github.com/Veraticus/sideline/internal/sportsapi"
	"github.com/Veraticus/sideline/internal/transfers"
	"github.com/Veraticus/sideline/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
)

const fieldCharLimit = 64

// Model holds the main TUI state.
type Model struct {
	ctx              context.Context
	fetcher          sportsapi.Fetcher
	board            *transfers.Board
	settings         *settings.Service
	tr               *i18n.Translator
	logger           *slog.Logger
	recorder         *Recorder
	transfers        transfers.State
	settingsErr      string
	theme            themes.Theme
	help             help.Model
	field1           textinput.Model
	field2           textinput.Model
	spinner          spinner.Model
	keymap           KeyMap
	catalog          league.Catalog
	config           Config
	startTicket      league.Ticket
	screen           Screen
	focus            focusArea
	gridCursor       int
	transferCursor   int
	scheduleCursor   int
	settingsCursor   int
	leagueCursor     int
	drawerCursor     int
	width            int
	height           int
	schedule         model.ToggleVector
	prefs            model.Settings
	transfersLoading bool
	drawerOpen       bool
	quitting         bool
}

// newModel creates a new model with the given configuration. Missing
// collaborators are replaced with in-memory ones.
func newModel(ctx context.Context, cfg Config) Model {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	board := cfg.Board
	if board == nil {
		board = transfers.NewBoard(transfers.NewFileStore(afero.NewMemMapFs(), "/"), logger)
	}

	svc := cfg.Settings
	if svc == nil {
		svc = settings.NewService(nil, logger)
	}

	field1 := textinput.New()
	field1.CharLimit = fieldCharLimit
	field2 := textinput.New()
	field2.CharLimit = fieldCharLimit

	m := Model{
		ctx:              ctx,
		config:           cfg,
		fetcher:          cfg.Fetcher,
		board:            board,
		settings:         svc,
		logger:           logger,
		recorder:         cfg.Recorder,
		keymap:           DefaultKeyMap(),
		help:             help.New(),
		spinner:          spinner.New(spinner.WithSpinner(spinner.Dot)),
		field1:           field1,
		field2:           field2,
		catalog:          league.NewCatalog(),
		prefs:            svc.Current(),
		transfers:        board.State(),
		transfersLoading: true,
		width:            cfg.Width,
		height:           cfg.Height,
	}
	m.help.Width = cfg.Width
	m.applyPrefs()

	if cfg.FetchOnStart {
		m.startTicket = m.catalog.BeginLeagues()
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		loadTransfersCmd(m.ctx, m.board),
		loadSettingsCmd(m.ctx, m.settings),
	}

	if m.config.FetchOnStart {
		cmds = append(cmds, fetchLeaguesCmd(m.ctx, m.fetcher, m.startTicket))
	}

	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if next.recorder != nil {
		next.recorder.RecordState(next, msg)
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case leaguesFetchedMsg:
		if !m.catalog.ApplyLeagues(msg.ticket, msg.result) {
			m.logger.Debug("dropped stale league response", "ticket", msg.ticket)
		}
		m.clampLeagueCursor()
		return m, nil

	case teamsFetchedMsg:
		if !m.catalog.ApplyTeams(msg.ticket, msg.result) {
			m.logger.Debug("dropped stale team response", "ticket", msg.ticket)
		}
		return m, nil

	case transfersLoadedMsg:
		m.transfers = msg.state
		m.transfersLoading = false
		return m, nil

	case transferSavedMsg:
		m.transfers = m.board.State()
		return m, nil

	case settingsLoadedMsg:
		// Current includes switches flipped after the load finished.
		m.prefs = m.settings.Current()
		m.settingsErr = common.UserMessage(msg.err)
		m.applyPrefs()
		return m, nil

	case settingsSavedMsg:
		m.prefs = m.settings.Current()
		m.settingsErr = common.UserMessage(msg.err)
		m.applyPrefs()
		return m, nil
	}

	// Anything else (cursor blink and the like) goes to the focused field.
	if m.typing() {
		return m.updateField(msg)
	}
	return m, nil
}

// handleKey routes a key press to the drawer, the focused field, or the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.typing() {
		switch {
		case key.Matches(msg, m.keymap.Close):
			return m.setFocus(focusGrid)
		case key.Matches(msg, m.keymap.NextFocus):
			return m.cycleFocus(1)
		case key.Matches(msg, m.keymap.PrevFocus):
			return m.cycleFocus(-1)
		}
		return m.updateField(msg)
	}

	if m.drawerOpen {
		return m.handleDrawerKey(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keymap.Menu):
		m.openDrawer()
		return m, nil
	case key.Matches(msg, m.keymap.Profile):
		m.screen = ScreenMain
		return m, nil
	case key.Matches(msg, m.keymap.Close):
		m.screen = ScreenMain
		return m, nil
	}

	switch m.screen {
	case ScreenMain:
		return m.handleMainKey(msg)
	case ScreenTransfers:
		return m.handleTransfersKey(msg)
	case ScreenSchedule:
		return m.handleScheduleKey(msg)
	case ScreenSettings:
		return m.handleSettingsKey(msg)
	default:
		return m, nil
	}
}

func (m Model) handleDrawerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Close), key.Matches(msg, m.keymap.Menu):
		m.drawerOpen = false
	case key.Matches(msg, m.keymap.Up):
		if m.drawerCursor > 0 {
			m.drawerCursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.drawerCursor < len(drawerScreens)-1 {
			m.drawerCursor++
		}
	case key.Matches(msg, m.keymap.Select):
		m.screen = drawerScreens[m.drawerCursor]
		m.drawerOpen = false
	case key.Matches(msg, m.keymap.Profile):
		m.screen = ScreenMain
		m.drawerOpen = false
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleMainKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.NextFocus):
		return m.cycleFocus(1)
	case key.Matches(msg, m.keymap.PrevFocus):
		return m.cycleFocus(-1)
	case key.Matches(msg, m.keymap.Refresh):
		ticket := m.catalog.BeginLeagues()
		return m, fetchLeaguesCmd(m.ctx, m.fetcher, ticket)
	}

	switch m.focus {
	case focusGrid:
		if key.Matches(msg, m.keymap.Toggle, m.keymap.Select) {
			if err := m.catalog.ToggleCategory(m.gridCursor); err != nil {
				m.logger.Error("failed to toggle category", "index", m.gridCursor, "error", err)
			}
			m.clampLeagueCursor()
			return m, nil
		}
		m.gridCursor = moveGridCursor(m.gridCursor, msg, m.keymap)

	case focusLeagues:
		leagues := m.catalog.FilteredLeagues()
		switch {
		case key.Matches(msg, m.keymap.Up):
			if m.leagueCursor > 0 {
				m.leagueCursor--
			}
		case key.Matches(msg, m.keymap.Down):
			if m.leagueCursor < len(leagues)-1 {
				m.leagueCursor++
			}
		case key.Matches(msg, m.keymap.Select):
			if len(leagues) == 0 {
				return m, nil
			}
			chosen := leagues[m.leagueCursor]
			ticket := m.catalog.BeginTeams(chosen.ID)
			return m, fetchTeamsCmd(m.ctx, m.fetcher, ticket, chosen.ID)
		}
	}
	return m, nil
}

func (m Model) handleTransfersKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !key.Matches(msg, m.keymap.Toggle, m.keymap.Select) {
		m.transferCursor = moveGridCursor(m.transferCursor, msg, m.keymap)
		return m, nil
	}

	// Toggling before the record is read would be overwritten by the load.
	if m.transfersLoading {
		return m, nil
	}

	_, task, err := m.board.Toggle(m.ctx, m.transferCursor)
	m.transfers = m.board.State()
	if err != nil {
		m.logger.Error("failed to toggle transfer", "index", m.transferCursor, "error", err)
		return m, nil
	}
	return m, awaitSaveCmd(m.ctx, task)
}

func (m Model) handleScheduleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Toggle, m.keymap.Select) {
		toggled, err := m.schedule.Toggle(m.scheduleCursor)
		if err == nil {
			m.schedule = toggled
		}
		return m, nil
	}
	m.scheduleCursor = moveGridCursor(m.scheduleCursor, msg, m.keymap)
	return m, nil
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Up):
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.settingsCursor < settingsSwitches-1 {
			m.settingsCursor++
		}
	case key.Matches(msg, m.keymap.Toggle, m.keymap.Select):
		settingKey, on := settings.KeyDarkTheme, !m.prefs.DarkTheme
		if m.settingsCursor == 1 {
			settingKey, on = settings.KeyRussian, !m.prefs.Russian
		}
		prefs, err := m.settings.Apply(settingKey, on)
		if err != nil {
			m.settingsErr = common.UserMessage(err)
			return m, nil
		}
		m.prefs = prefs
		m.applyPrefs()
		return m, saveSettingCmd(m.ctx, m.settings, settingKey)
	}
	return m, nil
}

// moveGridCursor moves a cursor within a 3x3 grid, stopping at the edges.
func moveGridCursor(cursor int, msg tea.KeyMsg, km KeyMap) int {
	switch {
	case key.Matches(msg, km.Up):
		if cursor >= model.GridColumns {
			cursor -= model.GridColumns
		}
	case key.Matches(msg, km.Down):
		if cursor < model.ToggleSlots-model.GridColumns {
			cursor += model.GridColumns
		}
	case key.Matches(msg, km.Left):
		if cursor%model.GridColumns > 0 {
			cursor--
		}
	case key.Matches(msg, km.Right):
		if cursor%model.GridColumns < model.GridColumns-1 {
			cursor++
		}
	}
	return cursor
}

func (m *Model) openDrawer() {
	m.drawerOpen = true
	m.drawerCursor = 0
	for i, s := range drawerScreens {
		if s == m.screen {
			m.drawerCursor = i
		}
	}
}

func (m Model) typing() bool {
	return m.screen == ScreenMain && !m.drawerOpen && (m.focus == focusField1 || m.focus == focusField2)
}

func (m Model) cycleFocus(delta int) (Model, tea.Cmd) {
	next := (int(m.focus) + delta + int(focusCount)) % int(focusCount)
	return m.setFocus(focusArea(next))
}

func (m Model) setFocus(f focusArea) (Model, tea.Cmd) {
	m.focus = f
	m.field1.Blur()
	m.field2.Blur()

	switch f {
	case focusField1:
		return m, m.field1.Focus()
	case focusField2:
		return m, m.field2.Focus()
	default:
		return m, nil
	}
}

func (m Model) updateField(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusField1:
		m.field1, cmd = m.field1.Update(msg)
		m.catalog.SetField1(m.field1.Value())
	case focusField2:
		m.field2, cmd = m.field2.Update(msg)
		m.catalog.SetField2(m.field2.Value())
	}
	return m, cmd
}

func (m *Model) clampLeagueCursor() {
	n := len(m.catalog.FilteredLeagues())
	if m.leagueCursor >= n {
		m.leagueCursor = n - 1
	}
	if m.leagueCursor < 0 {
		m.leagueCursor = 0
	}
}

// applyPrefs re-derives theme and language from the current settings.
func (m *Model) applyPrefs() {
	m.theme = themes.GetTheme(m.prefs.ThemeName())
	m.tr = i18n.New(m.prefs.Language())
	m.spinner.Style = m.theme.Spinner
	m.field1.Placeholder = m.tr.T(i18n.MainField1)
	m.field2.Placeholder = m.tr.T(i18n.MainField2)
}
