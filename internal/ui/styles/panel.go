package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// RenderPanel renders content in a rounded border with the title embedded in
// the top edge: ╭─ Title ─────╮. Content is clipped to the inner size.
func RenderPanel(content, title string, width, height int, focused bool) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if focused {
		borderColor = BorderFocusColor
	}
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)

	innerWidth := max(width-2, 1)
	innerHeight := max(height-2, 1)

	var b strings.Builder
	b.WriteString(topBorder(title, innerWidth, borderStyle))
	b.WriteByte('\n')

	lines := strings.Split(content, "\n")
	for i := range innerHeight {
		line := ""
		if i < len(lines) {
			line = ansi.Truncate(lines[i], innerWidth, "")
		}
		pad := innerWidth - ansi.StringWidth(line)
		b.WriteString(borderStyle.Render(borderVertical))
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", max(pad, 0)))
		b.WriteString(borderStyle.Render(borderVertical))
		b.WriteByte('\n')
	}

	b.WriteString(borderStyle.Render(borderBottomLeft + strings.Repeat(borderHorizontal, innerWidth) + borderBottomRight))
	return b.String()
}

func topBorder(title string, innerWidth int, borderStyle lipgloss.Style) string {
	if title == "" || innerWidth < 5 {
		return borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	}
	// "─ " + title + " " leaves at least one trailing dash.
	title = ansi.Truncate(title, innerWidth-4, "…")
	label := " " + TitleStyle.Render(title) + " "
	rest := innerWidth - 1 - ansi.StringWidth(label)
	return borderStyle.Render(borderTopLeft+borderHorizontal) +
		label +
		borderStyle.Render(strings.Repeat(borderHorizontal, max(rest, 0))+borderTopRight)
}
