package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/vimtutor/internal/ui/styles"
)

const (
	sidebarWidth = 30
	zonePrefix   = "lesson:"
)

// renderSidebar lists every lesson by chapter. Each lesson row is a click
// zone.
func (m Model) renderSidebar(height int) string {
	current := m.tutor.Lesson().ID
	inner := sidebarWidth - 2
	catalog := m.tutor.Catalog()

	var rows []string
	currentRow := 0
	for _, ch := range catalog.Chapters() {
		rows = append(rows, styles.TitleStyle.Render(fit(fmt.Sprintf("%d %s", ch.Number, ch.Title), inner)))
		for _, id := range ch.LessonIDs {
			l, err := catalog.Get(id)
			if err != nil {
				continue
			}
			mark := "  "
			if m.prog.IsCompleted(id) {
				mark = "✓ "
			}
			text := fit(mark+l.Heading(), inner)
			switch {
			case id == current:
				currentRow = len(rows)
				text = styles.SelectionStyle.Render(text)
			case m.prog.IsCompleted(id):
				text = styles.SuccessStyle.Render(text)
			default:
				text = styles.TextStyle.Render(text)
			}
			rows = append(rows, zone.Mark(zonePrefix+id, text))
		}
	}

	// Keep the current lesson in view.
	start := max(0, currentRow-(height-2)/2)
	rows = rows[min(start, len(rows)):]
	return styles.RenderPanel(strings.Join(rows, "\n"), "Lessons", sidebarWidth, height, false)
}

// fit pads or cuts s to exactly width cells.
func fit(s string, width int) string {
	w := uniseg.StringWidth(s)
	if w > width {
		return styles.TruncateString(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// clickedLesson returns the lesson whose row was clicked.
func (m Model) clickedLesson(msg tea.MouseMsg) (string, bool) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return "", false
	}
	for _, l := range m.tutor.Catalog().All() {
		if z := zone.Get(zonePrefix + l.ID); z != nil && z.InBounds(msg) {
			return l.ID, true
		}
	}
	return "", false
}
