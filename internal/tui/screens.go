package tui

import "github.com/Veraticus/sideline/internal/i18n"

// Screen identifies one page of the app.
type Screen int

// Screens.
const (
	ScreenMain Screen = iota
	ScreenNews
	ScreenSchedule
	ScreenHistory
	ScreenTransfers
	ScreenSettings
)

// drawerScreens lists the drawer entries in display order.
var drawerScreens = []Screen{
	ScreenNews,
	ScreenSchedule,
	ScreenHistory,
	ScreenTransfers,
	ScreenSettings,
}

// titleID returns the message ID of the screen's title.
func (s Screen) titleID() string {
	switch s {
	case ScreenNews:
		return i18n.ScreenNews
	case ScreenSchedule:
		return i18n.ScreenSchedule
	case ScreenHistory:
		return i18n.ScreenHistory
	case ScreenTransfers:
		return i18n.ScreenTransfers
	case ScreenSettings:
		return i18n.ScreenSettings
	default:
		return i18n.ScreenMain
	}
}

// focusArea is the part of the main screen receiving keys.
type focusArea int

const (
	focusGrid focusArea = iota
	focusField1
	focusField2
	focusLeagues
	focusCount
)

// Static article lists.
var (
	newsItems = []string{
		"Lorem ipsum: dolor sit amet, consectetur adipiscing elit.",
		"A very important article",
		"Not so important article",
		"Clickbait article",
		"An unimportant article",
	}

	historyItems = []string{
		"The Star and Death of Diego Armandos",
		"How VAR changed the world",
		`"MoneyBall": History of Billy Beane's innovative tactic`,
		`Tottenham: Was "In Bruges" right?`,
		"History of World Cups",
	}
)

// Rows of the placeholder tables on the transfers and schedule screens.
const tableRows = 3

// settingsSwitches is the number of switches on the settings screen.
const settingsSwitches = 2
