package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimtutor/internal/vim"
)

func plainRows(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func editorWith(lines []string, keys string) vim.Model {
	m, _ := vim.New(lines).Apply(vim.Keys(keys)...)
	return m
}

func TestRenderBuffer_LineNumbersAndFiller(t *testing.T) {
	rows := plainRows(renderBuffer(editorWith([]string{"hello", "world"}, ""), 20, 4))
	require.Equal(t, []string{"1 hello", "2 world", "~", "~"}, rows)
}

func TestRenderBuffer_InsertCursorPastEnd(t *testing.T) {
	rows := plainRows(renderBuffer(editorWith([]string{"hello"}, "A"), 20, 1))
	require.Equal(t, []string{"1 hello "}, rows)
}

func TestRenderBuffer_ScrollsHorizontally(t *testing.T) {
	line := strings.Repeat("0123456789", 5)
	rows := plainRows(renderBuffer(editorWith([]string{line}, "30l"), 12, 1))
	require.Equal(t, []string{"1 1234567890"}, rows)
}

func TestRenderBuffer_ScrollsVertically(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "line"
	}
	rows := plainRows(renderBuffer(editorWith(lines, "G"), 20, 3))
	require.Equal(t, []string{" 8 line", " 9 line", "10 line"}, rows)
}

func TestRenderBuffer_EmptySelectedLine(t *testing.T) {
	rows := plainRows(renderBuffer(editorWith([]string{"a", "", "b"}, "Vj"), 20, 3))
	require.Equal(t, []string{"1 a", "2  ", "3 b"}, rows)
}

func TestInSelection(t *testing.T) {
	start := vim.Position{Line: 0, Col: 2}
	end := vim.Position{Line: 1, Col: 1}
	tests := []struct {
		line, col, lineLen int
		want               bool
	}{
		{0, 1, 5, false},
		{0, 2, 5, true},
		{0, 4, 5, true},
		{0, 5, 5, false},
		{1, 0, 5, true},
		{1, 1, 5, true},
		{1, 2, 5, false},
		{2, 0, 5, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, inSelection(start, end, tt.line, tt.col, tt.lineLen), "%d:%d", tt.line, tt.col)
	}
}

func TestCommandLine(t *testing.T) {
	require.Equal(t, ":wq", commandLine(editorWith([]string{"x"}, ":wq")))
	require.Equal(t, "/needle", commandLine(editorWith([]string{"x"}, "/needle")))
}
