// Package toaster shows short notices (saved progress failed, lessons
// reloaded) at the bottom of the screen.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/vimtutor/internal/ui/overlay"
	"github.com/zjrosen/vimtutor/internal/ui/styles"
)

// Style selects the toast's border color and icon.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Model is the toast state.
type Model struct {
	message string
	style   Style
	visible bool
	// seq ties a DismissMsg to the toast that scheduled it.
	seq int
}

// New returns a hidden toaster.
func New() Model {
	return Model{}
}

// Show displays message and returns the command that will hide it.
func (m Model) Show(message string, style Style) (Model, tea.Cmd) {
	m.message = message
	m.style = style
	m.visible = message != ""
	m.seq++
	return m, scheduleDismiss(m.seq, DefaultDuration)
}

// Hide dismisses the toast immediately.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible reports whether a toast is showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the text of the showing toast.
func (m Model) Message() string {
	return m.message
}

// Update handles DismissMsg. A dismissal scheduled by an older toast is
// ignored so a newer toast gets its full time.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.seq == m.seq {
		return m.Hide()
	}
	return m
}

// View renders the toast box, or "" when hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	var (
		border lipgloss.TerminalColor
		icon   string
	)
	switch m.style {
	case StyleError:
		border, icon = styles.StatusErrorColor, "✗"
	case StyleInfo:
		border, icon = styles.TextTitleColor, "i"
	case StyleWarn:
		border, icon = styles.StatusWarningColor, "!"
	default:
		border, icon = styles.StatusSuccessColor, "✓"
	}

	return lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(icon + " " + m.message)
}

// Overlay draws the toast near the bottom of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		PadY:     2,
	}, m.View(), bg)
}

// DismissMsg hides the toast that scheduled it.
type DismissMsg struct {
	seq int
}

func scheduleDismiss(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{seq: seq}
	})
}
