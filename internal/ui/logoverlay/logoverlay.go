// Package logoverlay is the debug log viewer toggled with ctrl+x.
package logoverlay

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/vimtutor/internal/log"
	"github.com/zjrosen/vimtutor/internal/ui/overlay"
	"github.com/zjrosen/vimtutor/internal/ui/styles"
)

const (
	maxEntries     = 1000
	maxViewHeight  = 25
	minViewHeight  = 5
	maxBoxWidth    = 160
	minBoxWidth    = 40
	chromeRows     = 6 // title, two dividers, filter line, borders
)

// CloseMsg is sent when the overlay closes itself.
type CloseMsg struct{}

// Model holds received log entries and the viewer state.
type Model struct {
	visible  bool
	minLevel log.Level
	width    int
	height   int
	entries  []string
	viewport viewport.Model
	listener *log.LogListener
}

// New returns a hidden overlay.
func New() Model {
	return Model{minLevel: log.LevelDebug}
}

// StartListening subscribes to the global logger. It returns nil when logging
// is off.
func (m *Model) StartListening(ctx context.Context) tea.Cmd {
	m.listener = log.NewListener(ctx)
	if m.listener == nil {
		return nil
	}
	return m.listener.Listen()
}

// Update collects log events whether or not the overlay is shown, and handles
// keys while it is.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case log.LogEvent:
		m.entries = append(m.entries, strings.TrimSuffix(msg.Payload, "\n"))
		if over := len(m.entries) - maxEntries; over > 0 {
			m.entries = m.entries[over:]
		}
		if m.visible {
			m.refresh()
		}
		if m.listener != nil {
			return m, m.listener.Listen()
		}
		return m, nil

	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.visible {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		m.entries = nil
		m.refresh()
	case "d":
		m.setLevel(log.LevelDebug)
	case "i":
		m.setLevel(log.LevelInfo)
	case "w":
		m.setLevel(log.LevelWarn)
	case "e":
		m.setLevel(log.LevelError)
	case "j", "down":
		m.viewport.ScrollDown(1)
	case "k", "up":
		m.viewport.ScrollUp(1)
	case "g":
		m.viewport.GotoTop()
	case "G":
		m.viewport.GotoBottom()
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+x", "esc":
		m.visible = false
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, nil
}

func (m *Model) setLevel(l log.Level) {
	m.minLevel = l
	m.refresh()
}

// Entries returns the entries at or above the current level.
func (m Model) Entries() []string {
	var out []string
	for _, e := range m.entries {
		if levelOf(e) >= m.minLevel {
			out = append(out, e)
		}
	}
	return out
}

// levelOf reads the level tag written by the log package; untagged lines
// count as errors so they are never hidden.
func levelOf(entry string) log.Level {
	for _, l := range []log.Level{log.LevelError, log.LevelWarn, log.LevelInfo, log.LevelDebug} {
		if strings.Contains(entry, "["+l.String()+"]") {
			return l
		}
	}
	return log.LevelError
}

func (m *Model) refresh() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := max(min(maxViewHeight, m.height-chromeRows), minViewHeight)
	w := m.boxWidth() - 2
	m.viewport = viewport.New(w, h)
	m.viewport.SetContent(m.content(w))
	m.viewport.GotoBottom()
}

func (m Model) content(width int) string {
	entries := m.Entries()
	if len(entries) == 0 {
		return styles.MutedStyle.Italic(true).Render("No logs to display")
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = colorize(ansi.Truncate(e, width, "…"))
	}
	return strings.Join(lines, "\n")
}

func colorize(entry string) string {
	switch levelOf(entry) {
	case log.LevelError:
		return styles.ErrorStyle.Render(entry)
	case log.LevelWarn:
		return styles.WarningStyle.Render(entry)
	case log.LevelInfo:
		return styles.TextStyle.Render(entry)
	default:
		return styles.MutedStyle.Render(entry)
	}
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, maxBoxWidth), minBoxWidth)
}

// View renders the log box, or "" when hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	w := m.boxWidth()
	divider := lipgloss.NewStyle().Foreground(styles.BorderDefaultColor).Render(strings.Repeat("─", w-2))

	body := strings.Join([]string{
		styles.TitleStyle.PaddingLeft(1).Render("Logs"),
		divider,
		m.viewport.View(),
		divider,
		m.filterLine(),
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderFocusColor).
		Width(w - 2).
		Render(body)
}

func (m Model) filterLine() string {
	parts := []string{styles.MutedStyle.Render("[c] Clear")}
	for _, f := range []struct {
		key   string
		level log.Level
		label string
	}{
		{"d", log.LevelDebug, "Debug"},
		{"i", log.LevelInfo, "Info"},
		{"w", log.LevelWarn, "Warn"},
		{"e", log.LevelError, "Error"},
	} {
		text := "[" + f.key + "] " + f.label
		if f.level == m.minLevel {
			parts = append(parts, styles.TextStyle.Bold(true).Render(text))
		} else {
			parts = append(parts, styles.MutedStyle.Render(text))
		}
	}
	return strings.Join(parts, "  ")
}

// Overlay draws the log box centered on bg.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{Width: m.width, Height: m.height, Position: overlay.Center}, m.View(), bg)
}

// Visible reports whether the overlay is shown.
func (m Model) Visible() bool {
	return m.visible
}

// Toggle shows or hides the overlay.
func (m *Model) Toggle() {
	m.visible = !m.visible
	if m.visible {
		m.refresh()
	}
}

// Hide closes the overlay.
func (m *Model) Hide() {
	m.visible = false
}

// SetSize records the screen size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.refresh()
}
