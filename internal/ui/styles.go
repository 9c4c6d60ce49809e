package ui

import (
	"github.com/charmbracelet/lipgloss"

	"mactweaks/internal/config"
)

// Styles holds every lipgloss style the UI renders with, resolved from
// the user's color scheme.
type Styles struct {
	App        lipgloss.Style
	Header     lipgloss.Style
	Title      lipgloss.Style
	Version    lipgloss.Style
	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	ActivePane lipgloss.Style
	Item       lipgloss.Style
	Selected   lipgloss.Style
	Muted      lipgloss.Style
	StatusBar  lipgloss.Style
	StatusText lipgloss.Style
	HelpBar    lipgloss.Style
	HelpKey    lipgloss.Style
	HelpDesc   lipgloss.Style
	Divider    lipgloss.Style
	Applied    lipgloss.Style
	Failed     lipgloss.Style
	SudoBadge  lipgloss.Style
	Dialog     lipgloss.Style
	Button     lipgloss.Style
	ButtonHot  lipgloss.Style
}

// NewStyles builds the style set from a resolved color scheme.
func NewStyles(s config.ColorScheme) Styles {
	primary := s.Color("primary")
	secondary := s.Color("secondary")
	success := s.Color("success")
	warning := s.Color("warning")
	errc := s.Color("error")
	text := s.Color("text")
	dim := s.Color("text_dim")

	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Padding(0, 1).
			MarginBottom(1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),

		Version: lipgloss.NewStyle().
			Foreground(dim).
			Italic(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dim).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(secondary).
			Padding(0, 1),

		ActivePane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		Item: lipgloss.NewStyle().
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Padding(0, 1).
			Background(primary).
			Foreground(text).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(dim),

		StatusBar: lipgloss.NewStyle().
			Foreground(dim).
			Padding(0, 1).
			MarginTop(1),

		StatusText: lipgloss.NewStyle().
			Foreground(text),

		HelpBar: lipgloss.NewStyle().
			Foreground(dim).
			Padding(0, 1),

		HelpKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(dim),

		Divider: lipgloss.NewStyle().
			Foreground(dim),

		Applied: lipgloss.NewStyle().
			Foreground(success),

		Failed: lipgloss.NewStyle().
			Foreground(errc),

		SudoBadge: lipgloss.NewStyle().
			Foreground(warning).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(warning).
			Padding(1, 2).
			Width(60),

		Button: lipgloss.NewStyle().
			Foreground(text).
			Background(dim).
			Padding(0, 2),

		ButtonHot: lipgloss.NewStyle().
			Foreground(text).
			Background(primary).
			Padding(0, 2).
			Bold(true),
	}
}

// RenderHelpItem renders a help key-description pair.
func (s Styles) RenderHelpItem(key, desc string) string {
	return s.HelpKey.Render(key) + " " + s.HelpDesc.Render(desc)
}

// RenderButton renders a dialog button.
func (s Styles) RenderButton(label string, active bool) string {
	if active {
		return s.ButtonHot.Render(label)
	}
	return s.Button.Render(label)
}
