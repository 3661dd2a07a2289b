package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Faint         lipgloss.Style
	Selected      lipgloss.Style
	Highlighted   lipgloss.Style
	Button        lipgloss.Style
	ButtonOn      lipgloss.Style
	ButtonCursor  lipgloss.Style
	Drawer        lipgloss.Style
	DrawerItem    lipgloss.Style
	DrawerCursor  lipgloss.Style
	Header        lipgloss.Style
	Section       lipgloss.Style
	StatusError   lipgloss.Style
	StatusPending lipgloss.Style
	StatusSuccess lipgloss.Style
	Spinner       lipgloss.Style
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style
	Name          string
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
}

type palette struct {
	name       string
	primary    lipgloss.Color
	secondary  lipgloss.Color
	muted      lipgloss.Color
	border     lipgloss.Color
	foreground lipgloss.Color
	background lipgloss.Color
	surface    lipgloss.Color
	err        lipgloss.Color
	success    lipgloss.Color
}

func newTheme(p palette) Theme {
	return Theme{
		Name:       p.name,
		Primary:    p.primary,
		Secondary:  p.secondary,
		Muted:      p.muted,
		Border:     p.border,
		Foreground: p.foreground,
		Background: p.background,
		Error:      p.err,
		Success:    p.success,

		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.muted).
			MarginBottom(1),
		Normal: lipgloss.NewStyle().
			Foreground(p.foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground),
		Faint: lipgloss.NewStyle().
			Foreground(p.muted),
		Selected: lipgloss.NewStyle().
			Background(p.primary).
			Foreground(p.background).
			Bold(true),
		Highlighted: lipgloss.NewStyle().
			Background(p.surface).
			Foreground(p.foreground),

		// Grid buttons
		Button: lipgloss.NewStyle().
			Width(14).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Foreground(p.foreground),
		ButtonOn: lipgloss.NewStyle().
			Width(14).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Background(p.primary).
			Foreground(p.background).
			Bold(true),
		ButtonCursor: lipgloss.NewStyle().
			Width(14).
			Align(lipgloss.Center).
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.secondary).
			Foreground(p.foreground),

		// Drawer
		Drawer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(1, 2),
		DrawerItem: lipgloss.NewStyle().
			Foreground(p.foreground).
			PaddingLeft(2),
		DrawerCursor: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			PaddingLeft(0),

		// Layout
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.background).
			Background(p.primary).
			Padding(0, 1),
		Section: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Padding(0, 1),

		// Status styles
		StatusError: lipgloss.NewStyle().
			Foreground(p.err).
			Bold(true),
		StatusPending: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),
		StatusSuccess: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		Spinner: lipgloss.NewStyle().
			Foreground(p.primary),

		// Tables
		TableHeader: lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.border).
			Padding(0, 1),
		TableSelected: lipgloss.NewStyle().
			Foreground(p.background).
			Background(p.primary).
			Bold(false),
	}
}

// Light is the default theme.
var Light = newTheme(palette{
	name:       "light",
	primary:    lipgloss.Color("#1d4ed8"),
	secondary:  lipgloss.Color("#0891b2"),
	muted:      lipgloss.Color("#6b7280"),
	border:     lipgloss.Color("#d1d5db"),
	foreground: lipgloss.Color("#111827"),
	background: lipgloss.Color("#ffffff"),
	surface:    lipgloss.Color("#e5e7eb"),
	err:        lipgloss.Color("#dc2626"),
	success:    lipgloss.Color("#059669"),
})

// Dark is the theme behind the Dark Theme switch.
var Dark = newTheme(palette{
	name:       "dark",
	primary:    lipgloss.Color("#7c3aed"),
	secondary:  lipgloss.Color("#a78bfa"),
	muted:      lipgloss.Color("#737373"),
	border:     lipgloss.Color("#404040"),
	foreground: lipgloss.Color("#fafafa"),
	background: lipgloss.Color("#1a1a1a"),
	surface:    lipgloss.Color("#404040"),
	err:        lipgloss.Color("#ef4444"),
	success:    lipgloss.Color("#10b981"),
})

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "dark":
		return Dark
	default:
		return Light
	}
}

// SportIcons maps category labels to emoji icons.
var SportIcons = map[string]string{
	"Soccer":     "⚽",
	"Football":   "🏈",
	"Hockey":     "🏒",
	"Baseball":   "⚾",
	"Basketball": "🏀",
	"Polo":       "🏇",
	"F-1":        "🏎",
	"Curling":    "🥌",
	"Volleyball": "🏐",
}

// GetSportIcon returns an icon for a category label.
func GetSportIcon(label string) string {
	if icon, ok := SportIcons[label]; ok {
		return icon
	}
	return "🏅"
}
