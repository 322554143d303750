package styles

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"
)

// TruncateString truncates a string to fit within maxWidth cells, adding an
// ellipsis when something was cut.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// FormatPercent renders a completion ratio like "3/12 (25%)".
func FormatPercent(done, total int) string {
	if total <= 0 {
		return "0/0 (0%)"
	}
	return fmt.Sprintf("%d/%d (%d%%)", done, total, done*100/total)
}
