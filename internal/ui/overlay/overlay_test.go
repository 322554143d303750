package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func screen(w, h int) string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(".", w)
	}
	return strings.Join(rows, "\n")
}

func TestPlace_Positions(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		row  int
	}{
		{"center", Config{Width: 6, Height: 5, Position: Center}, 2},
		{"top", Config{Width: 6, Height: 5, Position: Top}, 0},
		{"top padded", Config{Width: 6, Height: 5, Position: Top, PadY: 1}, 1},
		{"bottom", Config{Width: 6, Height: 5, Position: Bottom}, 4},
		{"bottom padded", Config{Width: 6, Height: 5, Position: Bottom, PadY: 1}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := strings.Split(Place(tt.cfg, "XX", screen(6, 5)), "\n")
			require.Len(t, rows, 5)
			for i, row := range rows {
				if i == tt.row {
					require.Equal(t, "..XX..", row)
				} else {
					require.Equal(t, "......", row)
				}
			}
		})
	}
}

func TestPlace_OversizedForegroundClampsToOrigin(t *testing.T) {
	rows := strings.Split(Place(Config{Width: 3, Height: 2}, "XXXXX", screen(3, 2)), "\n")
	require.Equal(t, "XXXXX", rows[0])
	require.Equal(t, "...", rows[1])
}

func TestPlace_PadsShortBackground(t *testing.T) {
	out := Place(Config{Width: 4, Height: 3, Position: Bottom}, "XX", "....")
	rows := strings.Split(out, "\n")
	require.Len(t, rows, 3)
	require.Equal(t, " XX ", rows[2])
}

func TestPlace_PreservesStyledBackground(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("abcdef")
	out := Place(Config{Width: 6, Height: 1}, "XX", styled)
	require.Equal(t, 6, lipgloss.Width(out))
	require.Contains(t, out, "XX")
	require.Contains(t, out, "ab")
	require.Contains(t, out, "ef")
}
