package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestRenderPanel_Dimensions(t *testing.T) {
	out := RenderPanel("hello\nworld", "Lesson 1.1", 20, 5, false)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	for _, l := range lines {
		require.Equal(t, 20, ansi.StringWidth(l))
	}

	plain := ansi.Strip(out)
	require.True(t, strings.HasPrefix(plain, "╭─ Lesson 1.1 "))
	require.Contains(t, plain, "│hello")
	require.True(t, strings.HasSuffix(plain, "╯"))
}

func TestRenderPanel_ClipsContent(t *testing.T) {
	out := RenderPanel("a very long line of text\n2\n3\n4", "", 10, 4, true)
	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "│a very l│", lines[1])
	require.Equal(t, "│2       │", lines[2])
	require.Equal(t, "╰────────╯", lines[3])
}

func TestRenderPanel_TruncatesTitle(t *testing.T) {
	out := RenderPanel("", "A title that is far too long", 12, 3, false)
	top := strings.Split(ansi.Strip(out), "\n")[0]
	require.Equal(t, 12, ansi.StringWidth(top))
	require.Contains(t, top, "…")
}

func TestTruncateString(t *testing.T) {
	require.Equal(t, "hello", TruncateString("hello", 10))
	require.Equal(t, "hel…", TruncateString("hello", 4))
	require.Equal(t, "", TruncateString("hello", 0))
}

func TestFormatPercent(t *testing.T) {
	require.Equal(t, "3/12 (25%)", FormatPercent(3, 12))
	require.Equal(t, "0/0 (0%)", FormatPercent(0, 0))
}
