package lesson

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimtutor/internal/vim"
)

func TestCheck_TargetMatch(t *testing.T) {
	l := Lesson{Target: []string{"a", "b"}}

	require.Equal(t, Verdict{Complete: true}, Check(l, []string{"a", "b"}, vim.Position{}))
	require.False(t, Check(l, []string{"a", "b", ""}, vim.Position{}).Complete)
}

func TestCheck_Hints(t *testing.T) {
	tests := []struct {
		name      string
		got       []string
		want      []string
		line      int
		remaining int
		hint      string
	}{
		{
			name:      "extra character",
			got:       []string{"The ccow jumped"},
			want:      []string{"The cow jumped"},
			line:      1,
			remaining: 1,
			hint:      `line 1: remove "c"`,
		},
		{
			name:      "missing line",
			got:       []string{"a", "c"},
			want:      []string{"a", "b", "c"},
			line:      2,
			remaining: 1,
			hint:      `line 2: missing line "b"`,
		},
		{
			name:      "extra line",
			got:       []string{"a", "x", "c"},
			want:      []string{"a", "c"},
			line:      2,
			remaining: 1,
			hint:      "line 2: delete this line",
		},
		{
			name:      "missing text",
			got:       []string{"one", "tw"},
			want:      []string{"one", "two"},
			line:      2,
			remaining: 1,
			hint:      `line 2: add "o"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Check(Lesson{Target: tt.want}, tt.got, vim.Position{})
			require.False(t, v.Complete)
			require.Equal(t, tt.line, v.Line)
			require.Equal(t, tt.remaining, v.Remaining)
			require.Equal(t, tt.hint, v.Hint)
		})
	}
}

func TestCheck_CursorOn(t *testing.T) {
	l := Lesson{
		Initial:    []string{"..X.."},
		CompleteOn: CompleteOn{CursorOn: "X"},
	}

	v := Check(l, l.Initial, vim.Position{Col: 1})
	require.False(t, v.Complete)
	require.Equal(t, `move the cursor onto "X"`, v.Hint)

	require.True(t, Check(l, l.Initial, vim.Position{Col: 2}).Complete)
	require.False(t, Check(l, l.Initial, vim.Position{Line: 3, Col: 2}).Complete)
}

func TestCheck_CommandOnlyLesson(t *testing.T) {
	l := Lesson{CompleteOn: CompleteOn{Commands: []string{"next"}}}
	require.Equal(t, Verdict{}, Check(l, []string{"anything"}, vim.Position{}))
}

func TestCheck_SolvingWithTheEngine(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)
	l, err := c.Get("1.3")
	require.NoError(t, err)

	keys, err := vim.ParseKeys("4lx10lx2lx6lx")
	require.NoError(t, err)

	m, _ := vim.New(l.Initial).Apply(keys...)
	require.Equal(t, Verdict{Complete: true}, Check(l, m.Lines(), m.Cursor()))
}
