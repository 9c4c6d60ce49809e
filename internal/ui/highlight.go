package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter renders tweak command lines with shell syntax highlighting.
type Highlighter struct {
	style *chroma.Style
	lexer chroma.Lexer
}

// NewHighlighter creates a new command highlighter
func NewHighlighter() *Highlighter {
	return &Highlighter{
		style: styles.Get("catppuccin-mocha"),
		lexer: lexers.Get("bash"),
	}
}

// HighlightCommand highlights a single shell command line. On any lexer
// failure the line is returned unstyled.
func (h *Highlighter) HighlightCommand(command string) string {
	if h.lexer == nil {
		return command
	}

	iterator, err := h.lexer.Tokenise(nil, command)
	if err != nil {
		return command
	}

	var result strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		entry := h.style.Get(token.Type)
		text := token.Value

		if entry.Colour.IsSet() {
			styled := lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Colour.String()))
			if entry.Bold == chroma.Yes {
				styled = styled.Bold(true)
			}
			if entry.Italic == chroma.Yes {
				styled = styled.Italic(true)
			}
			result.WriteString(styled.Render(text))
		} else {
			result.WriteString(text)
		}
	}

	return result.String()
}
