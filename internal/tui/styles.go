package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Dim     lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeLab = Theme{
		Name:    "lab",
		Primary: lipgloss.Color("86"),
		Accent:  lipgloss.Color("213"),
		Text:    lipgloss.Color("255"),
		Muted:   lipgloss.Color("242"),
		Dim:     lipgloss.Color("238"),
		Error:   lipgloss.Color("203"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#00aa00"),
		Dim:     lipgloss.Color("#005500"),
		Error:   lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Dim:     lipgloss.Color("#555555"),
		Error:   lipgloss.Color("#ff4444"),
	}

	Themes = []Theme{ThemeLab, ThemeRetroGreen, ThemeMinimal}
)

// themeIndex returns the position of the named theme in Themes, falling
// back to the lab theme.
func themeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

type styles struct {
	title    lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	dim      lipgloss.Style
	accent   lipgloss.Style
	err      lipgloss.Style
	panel    lipgloss.Style
	quantity map[string]lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		text:   lipgloss.NewStyle().Foreground(t.Text),
		muted:  lipgloss.NewStyle().Foreground(t.Muted),
		dim:    lipgloss.NewStyle().Foreground(t.Dim),
		accent: lipgloss.NewStyle().Foreground(t.Accent),
		err:    lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Dim).
			Padding(0, 1),
		quantity: map[string]lipgloss.Style{},
	}
}

// forColor caches a bold style for a series hex color.
func (s styles) forColor(hex string) lipgloss.Style {
	if st, ok := s.quantity[hex]; ok {
		return st
	}
	st := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hex))
	s.quantity[hex] = st
	return st
}
