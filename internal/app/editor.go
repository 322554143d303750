package app

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/vimtutor/internal/ui/styles"
	"github.com/zjrosen/vimtutor/internal/vim"
)

// renderBuffer draws the editor buffer with line numbers, the cursor and the
// visual selection. Lines are not wrapped; the view scrolls to keep the
// cursor visible.
func renderBuffer(ed vim.Model, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}

	lines := ed.Lines()
	cursor := ed.Cursor()
	selStart, selEnd, selecting := ed.Selection()
	showCursor := ed.Mode() != vim.ModeCommand

	digits := len(fmt.Sprint(len(lines)))
	gutter := digits + 1
	textWidth := max(width-gutter, 1)

	top := max(0, cursor.Line-height+1)
	cur := []rune(lineAt(lines, cursor.Line))
	left := max(0, displayWidth(cur[:min(cursor.Col, len(cur))])-textWidth+1)

	rows := make([]string, 0, height)
	for i := top; i < len(lines) && len(rows) < height; i++ {
		var b strings.Builder
		nr := fmt.Sprintf("%*d ", digits, i+1)
		if i == cursor.Line {
			b.WriteString(styles.TextStyle.Render(nr))
		} else {
			b.WriteString(styles.LineNrStyle.Render(nr))
		}

		runes := []rune(lines[i])
		x := 0
		for col := 0; col <= len(runes); col++ {
			atCursor := showCursor && i == cursor.Line && col == cursor.Col
			selected := selecting && inSelection(selStart, selEnd, i, col, len(runes))

			var cell string
			if col < len(runes) {
				cell = string(runes[col])
			} else if atCursor || (selected && len(runes) == 0) {
				// Cursor past the end (insert mode) or an empty selected line.
				cell = " "
			} else {
				break
			}

			w := max(runewidth.RuneWidth([]rune(cell)[0]), 1)
			if x+w <= left {
				x += w
				continue
			}
			if x-left+w > textWidth {
				break
			}
			x += w

			switch {
			case atCursor:
				b.WriteString(styles.CursorStyle.Render(cell))
			case selected:
				b.WriteString(styles.SelectionStyle.Render(cell))
			default:
				b.WriteString(styles.TextStyle.Render(cell))
			}
		}
		rows = append(rows, b.String())
	}

	for len(rows) < height {
		rows = append(rows, styles.LineNrStyle.Render(strings.Repeat(" ", digits-1)+"~"))
	}
	return strings.Join(rows, "\n")
}

func lineAt(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}

func displayWidth(runes []rune) int {
	w := 0
	for _, r := range runes {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// inSelection reports whether (line, col) is inside the inclusive selection.
// The end-of-line cell only counts on empty lines.
func inSelection(start, end vim.Position, line, col, lineLen int) bool {
	if line < start.Line || line > end.Line {
		return false
	}
	if col >= lineLen && lineLen > 0 {
		return false
	}
	if line == start.Line && col < start.Col {
		return false
	}
	if line == end.Line && col > end.Col {
		return false
	}
	return true
}
