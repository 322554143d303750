package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimtutor/internal/vim"
)

func TestApp_KeyAssignments(t *testing.T) {
	tests := []struct {
		name     string
		binding  key.Binding
		expected []string
	}{
		{"Quit", App.Quit, []string{"ctrl+c"}},
		{"Help", App.Help, []string{"f1"}},
		{"Sidebar", App.Sidebar, []string{"f2"}},
		{"ToggleLog", App.ToggleLog, []string{"ctrl+x"}},
		{"ScrollUp", App.ScrollUp, []string{"pgup"}},
		{"ScrollDown", App.ScrollDown, []string{"pgdown"}},
		{"Banner continue", Banner.Continue, []string{"enter", "n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.binding.Keys())
			require.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestApp_BindingsDoNotShadowEditorKeys(t *testing.T) {
	editorKeys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("j")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyEnter},
		{Type: tea.KeyCtrlR},
		{Type: tea.KeyCtrlG},
	}
	app := []key.Binding{App.Quit, App.Help, App.Sidebar, App.ToggleLog, App.ScrollUp, App.ScrollDown}
	for _, msg := range editorKeys {
		for _, b := range app {
			require.False(t, key.Matches(msg, b), "%s is taken by %v", msg, b.Keys())
		}
	}
}

func TestHelp_DebugShowsLogToggle(t *testing.T) {
	require.Len(t, Help{}.FullHelp()[1], 5)
	require.Len(t, Help{Debug: true}.FullHelp()[1], 6)
	require.NotEmpty(t, Help{}.ShortHelp())
}

func TestToVim(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []vim.Key
		ok   bool
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, []vim.Key{vim.Rune('x')}, true},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, []vim.Key{vim.Rune('a'), vim.Rune('b')}, true},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, []vim.Key{{Key: "x", Meta: true}}, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, []vim.Key{vim.Rune(' ')}, true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, []vim.Key{vim.Named(vim.KeyEscape)}, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []vim.Key{vim.Named(vim.KeyEnter)}, true},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []vim.Key{vim.Named(vim.KeyBackspace)}, true},
		{"ctrl+h", tea.KeyMsg{Type: tea.KeyCtrlH}, []vim.Key{vim.Named(vim.KeyBackspace)}, true},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []vim.Key{vim.Named(vim.KeyTab)}, true},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, []vim.Key{vim.Named(vim.KeyArrowUp)}, true},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, []vim.Key{vim.Ctrl('r')}, true},
		{"ctrl+g", tea.KeyMsg{Type: tea.KeyCtrlG}, []vim.Key{vim.Ctrl('g')}, true},
		{"function key", tea.KeyMsg{Type: tea.KeyF5}, nil, false},
		{"page key", tea.KeyMsg{Type: tea.KeyPgDown}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToVim(tt.msg)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
