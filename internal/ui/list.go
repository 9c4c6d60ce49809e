package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ListItem is one row in a list panel. Annot is rendered after the label
// and may be pre-styled.
type ListItem struct {
	Label string
	Annot string
}

// List renders a scrolling list panel. The cursor lives in the navigation
// engine, not here — the panel is a pure renderer.
type List struct {
	Title   string
	Width   int
	Height  int
	Focused bool
}

// View renders the panel with the cursor row highlighted.
func (l List) View(st Styles, items []ListItem, cursor int) string {
	var b strings.Builder

	title := l.Title
	if len(items) > 0 {
		title = fmt.Sprintf("%s (%d)", l.Title, len(items))
	}
	b.WriteString(st.PanelTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(st.Divider.Render(strings.Repeat("─", max(l.Width-2, 1))))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(st.Item.Render("Nothing here"))
		return l.wrapInPanel(st, b.String())
	}

	// Calculate visible range
	visibleHeight := l.Height - 3 // Minus title and divider
	if visibleHeight < 1 {
		visibleHeight = 1
	}
	startIdx := 0
	if cursor >= visibleHeight {
		startIdx = cursor - visibleHeight + 1
	}
	endIdx := min(startIdx+visibleHeight, len(items))

	if startIdx > 0 {
		b.WriteString(st.Muted.Render("  ↑ more"))
		b.WriteString("\n")
	}

	for i := startIdx; i < endIdx; i++ {
		b.WriteString(l.renderItem(st, items[i], i == cursor))
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	if endIdx < len(items) {
		b.WriteString("\n")
		b.WriteString(st.Muted.Render("  ↓ more"))
	}

	if len(items) > visibleHeight {
		position := fmt.Sprintf(" %d/%d ", cursor+1, len(items))
		b.WriteString("\n")
		b.WriteString(st.Muted.Render(position))
	}

	return l.wrapInPanel(st, b.String())
}

func (l List) renderItem(st Styles, item ListItem, isCursor bool) string {
	maxWidth := l.Width - 8
	if maxWidth < 10 {
		maxWidth = 10
	}
	// Truncate by display width, not bytes, so wide runes never get split.
	label := runewidth.Truncate(item.Label, maxWidth, "...")

	content := label
	if item.Annot != "" {
		content = label + " " + item.Annot
	}

	if isCursor && l.Focused {
		return st.Selected.Width(max(l.Width-4, 1)).Render(content)
	}
	return st.Item.Render(content)
}

func (l List) wrapInPanel(st Styles, content string) string {
	style := st.Panel
	if l.Focused {
		style = st.ActivePane
	}
	return style.Width(l.Width).Height(l.Height).Render(content)
}
