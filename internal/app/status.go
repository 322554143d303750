package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/vimtutor/internal/ui/styles"
	"github.com/zjrosen/vimtutor/internal/vim"
)

// commandLine returns the command line as typed, with its leading ':' for
// ex commands. Searches already carry their '/' or '?'.
func commandLine(ed vim.Model) string {
	buf := ed.CommandBuffer()
	if strings.HasPrefix(buf, "/") || strings.HasPrefix(buf, "?") {
		return buf
	}
	return ":" + buf
}

// statusLine renders: mode badge, command line or message, pending keys and
// the cursor position.
func (m Model) statusLine() string {
	ed := m.tutor.Editor()
	mode := ed.Mode().String()
	badge := styles.ModeBadgeStyle(mode).Render(mode)

	var middle string
	if ed.Mode() == vim.ModeCommand {
		middle = styles.TextStyle.Render(commandLine(ed)) + styles.CursorStyle.Render(" ")
	} else if msg := m.tutor.Message(); msg != "" {
		middle = styles.TextStyle.Render(msg)
	}

	pending := ed.PendingCount() + ed.PendingOperator().String()
	if keys := ed.PendingCompletions(); len(keys) > 0 {
		pending += " [" + strings.Join(keys, " ") + "]"
	}
	pos := ed.Cursor()
	right := fmt.Sprintf("%d:%d", pos.Line+1, pos.Col+1)
	if pending != "" {
		right = styles.WarningStyle.Render(pending) + "  " + right
	}
	right = styles.MutedStyle.Render(right)

	room := m.width - lipgloss.Width(badge) - lipgloss.Width(right) - 2
	middle = ansi.Truncate(middle, max(room, 0), "…")
	gap := max(m.width-lipgloss.Width(badge)-1-lipgloss.Width(middle)-lipgloss.Width(right), 1)
	return badge + " " + middle + strings.Repeat(" ", gap) + right
}

// header renders the chapter, lesson and overall progress.
func (m Model) header() string {
	l := m.tutor.Lesson()
	left := styles.TitleStyle.Render("vimtutor") + styles.MutedStyle.Render("  ·  ")
	if l.ChapterTitle != "" {
		left += styles.MutedStyle.Render(fmt.Sprintf("Chapter %d: %s", l.Chapter, l.ChapterTitle)) + styles.MutedStyle.Render("  ·  ")
	}
	left += styles.TextStyle.Render(l.Heading())
	if m.prog.IsCompleted(l.ID) {
		left += " " + styles.SuccessStyle.Render("✓")
	}

	right := styles.MutedStyle.Render(styles.FormatPercent(m.summary.Completed, m.summary.Total))
	left = ansi.Truncate(left, max(m.width-lipgloss.Width(right)-1, 0), "…")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
