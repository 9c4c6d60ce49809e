package config

import (
	"github.com/charmbracelet/lipgloss"
)

// ColorScheme holds the eight color slots the UI draws with, as hex
// strings. Keys mirror the on-disk JSON.
type ColorScheme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Success   string `json:"success"`
	Warning   string `json:"warning"`
	Error     string `json:"error"`
	Text      string `json:"text"`
	TextDim   string `json:"text_dim"`
}

// DefaultColorScheme returns the built-in color scheme.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Primary:   "#fe640b", // Orange
		Secondary: "#ffffff", // White
		Accent:    "#00ff00", // Green
		Success:   "#00ff00", // Green
		Warning:   "#ffa500", // Orange
		Error:     "#ff0000", // Red
		Text:      "#ffffff", // White
		TextDim:   "#808080", // Gray
	}
}

// Color resolves a scheme slot by key. Unknown keys resolve to primary.
func (s ColorScheme) Color(name string) lipgloss.Color {
	hex := s.Primary
	switch name {
	case "primary":
		hex = s.Primary
	case "secondary":
		hex = s.Secondary
	case "accent":
		hex = s.Accent
	case "success":
		hex = s.Success
	case "warning":
		hex = s.Warning
	case "error":
		hex = s.Error
	case "text":
		hex = s.Text
	case "text_dim":
		hex = s.TextDim
	}
	return lipgloss.Color(hex)
}

// normalize replaces empty or invalid hex values with defaults, slot by
// slot, so a partially filled config still renders.
func (s *ColorScheme) normalize() {
	def := DefaultColorScheme()
	fix := func(field *string, fallback string) {
		if !validHex(*field) {
			*field = fallback
		}
	}
	fix(&s.Primary, def.Primary)
	fix(&s.Secondary, def.Secondary)
	fix(&s.Accent, def.Accent)
	fix(&s.Success, def.Success)
	fix(&s.Warning, def.Warning)
	fix(&s.Error, def.Error)
	fix(&s.Text, def.Text)
	fix(&s.TextDim, def.TextDim)
}

// validHex reports whether the value is a #rrggbb color.
func validHex(v string) bool {
	if len(v) != 7 || v[0] != '#' {
		return false
	}
	for _, c := range v[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
