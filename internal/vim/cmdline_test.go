package vim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandLine_Editing(t *testing.T) {
	m := press(t, newTestModel("abc"), ":se")
	assert.Equal(t, ModeCommand, m.Mode())
	assert.Equal(t, "se", m.CommandBuffer())

	m = press(t, m, "<BS>")
	assert.Equal(t, "s", m.CommandBuffer())

	m = press(t, m, "<BS><BS>")
	assert.Equal(t, ModeNormal, m.Mode(), "backspace on an empty command line leaves it")

	m = press(t, m, "/<BS>")
	assert.Equal(t, ModeCommand, m.Mode())
	assert.Empty(t, m.CommandBuffer())

	m = press(t, m, "abc<Esc>")
	assert.Equal(t, ModeNormal, m.Mode())
	assert.Empty(t, m.CommandBuffer())
}

func TestCommandLine_HostCommands(t *testing.T) {
	for _, cmd := range []string{"next", "q", "w notes.txt", "wq", "reset"} {
		t.Run(cmd, func(t *testing.T) {
			ks, err := ParseKeys(":" + cmd)
			require.NoError(t, err)
			m, _ := newTestModel("abc").Apply(ks...)

			m, res := m.HandleKey(Named(KeyEnter))
			assert.True(t, res.Handled)
			assert.Equal(t, cmd, res.Command)
			assert.Equal(t, ModeNormal, m.Mode())
			assert.Empty(t, m.CommandBuffer())
		})
	}
}

func TestCommandLine_BuiltIns(t *testing.T) {
	tests := []struct {
		line    string
		message string
	}{
		{"!ls", "lesson.txt  notes.txt  config.vim"},
		{"!pwd", "/home/user/vimtutor"},
		{"!date", "3/5/2024, 2:07:09 PM"},
		{"set number", "Option set: number"},
		{"help", "Help: Use :help {topic} for specific help"},
		{"help motions", "Help: Use :help {topic} for specific help"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			ks, err := ParseKeys(":" + tt.line)
			require.NoError(t, err)
			m, _ := newTestModel("abc").Apply(ks...)

			m, res := m.HandleKey(Named(KeyEnter))
			assert.True(t, res.Handled)
			assert.Empty(t, res.Command)
			assert.Equal(t, tt.message, m.Message())
			assert.Equal(t, []string{"abc"}, m.Lines())
		})
	}
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		want     string
		message  string
		undoable bool
	}{
		{"first occurrence", "s/foo/bar/", "bar foo", "Substitution done", true},
		{"without trailing slash", "s/foo/bar", "bar foo", "Substitution done", true},
		{"global", "s/foo/bar/g", "bar bar", "Substitution done", true},
		{"empty replacement", "s/foo //", "foo", "Substitution done", true},
		{"regex chars are literal", "s/o./X/", "foo foo", "Pattern not found: o.", false},
		{"absent pattern leaves no undo step", "s/zz/y/", "foo foo", "Pattern not found: zz", false},
		{"malformed", "s/foo", "foo foo", "Invalid substitution command", false},
		{"bad flag", "s/foo/bar/x", "foo foo", "Invalid substitution command", false},
		{"empty pattern without search", "s//bar/", "foo foo", "Invalid substitution command", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, newTestModel("foo foo"), ":"+tt.line+"<CR>")

			assert.Equal(t, []string{tt.want}, m.Lines())
			assert.Equal(t, tt.message, m.Message())
			assert.Equal(t, tt.undoable, m.CanUndo())
			assert.Equal(t, ModeNormal, m.Mode())
		})
	}
}

func TestSubstitute_EmptyPatternReusesSearch(t *testing.T) {
	m := press(t, newTestModel("a.b a.b"), "/.b<CR>:s//-/g<CR>")

	assert.Equal(t, []string{"a- a-"}, m.Lines())
}

func TestSubstitute_OnlyCursorLine(t *testing.T) {
	m := press(t, newTestModel("x", "x", "x"), "j:s/x/y/<CR>")

	assert.Equal(t, []string{"x", "y", "x"}, m.Lines())

	m = press(t, m, "u")
	assert.Equal(t, []string{"x", "x", "x"}, m.Lines())
}
