package vim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_Backward(t *testing.T) {
	m := press(t, newTestModel("foo bar foo"), "w?foo<CR>")

	assert.Equal(t, Position{}, m.Cursor())
	assert.Empty(t, m.Message())
	assert.Equal(t, SearchState{Pattern: "foo", Forward: false}, m.SearchState())

	// n keeps the backward direction and wraps past the top.
	m = press(t, m, "n")
	assert.Equal(t, Position{Col: 8}, m.Cursor())
	assert.Equal(t, "search hit TOP, continuing at BOTTOM", m.Message())

	// N goes the other way.
	m = press(t, m, "N")
	assert.Equal(t, Position{}, m.Cursor())
	assert.Equal(t, "search hit BOTTOM, continuing at TOP", m.Message())
}

func TestSearch_AcrossLines(t *testing.T) {
	m := press(t, newTestModel("one", "two", "one more"), "/one<CR>")

	assert.Equal(t, Position{Line: 2}, m.Cursor())
	assert.Empty(t, m.Message())
}

func TestSearch_NotFound(t *testing.T) {
	m := press(t, newTestModel("abc", "def"), "j/zzz<CR>")

	assert.Equal(t, Position{Line: 1}, m.Cursor())
	assert.Equal(t, "Pattern not found: zzz", m.Message())
}

func TestSearch_NextWithoutPatternIsNoop(t *testing.T) {
	m := press(t, newTestModel("abc"), "lnN")

	assert.Equal(t, Position{Col: 1}, m.Cursor())
	assert.Empty(t, m.Message())
}

func TestSearch_EmptyPatternIgnored(t *testing.T) {
	m := press(t, newTestModel("abc"), "/abc<CR>/<CR>")

	assert.Equal(t, "abc", m.SearchState().Pattern)
	assert.Equal(t, ModeNormal, m.Mode())
}

func TestSearch_MultibyteColumns(t *testing.T) {
	m := press(t, newTestModel("héllo wörld"), "/wör<CR>")

	assert.Equal(t, Position{Col: 6}, m.Cursor())
}

func TestBracketMatch(t *testing.T) {
	lines := []string{"if (a[1]) {", "  x", "}"}

	tests := []struct {
		name    string
		keys    string
		want    Position
		message string
	}{
		{"opener to closer", "3l%", Position{Col: 8}, ""},
		{"closer to opener", "8l%", Position{Col: 3}, ""},
		{"nested square", "5l%", Position{Col: 7}, ""},
		{"across lines", "$%", Position{Line: 2}, ""},
		{"back across lines", "G%", Position{Col: 10}, ""},
		{"not a bracket", "%", Position{}, "No bracket under cursor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, newTestModel(lines...), tt.keys)
			assert.Equal(t, tt.want, m.Cursor())
			assert.Equal(t, tt.message, m.Message())
		})
	}
}

func TestBracketMatch_Unbalanced(t *testing.T) {
	m := press(t, newTestModel("(a", "b"), "%")

	require.Equal(t, Position{}, m.Cursor())
	assert.Equal(t, "Matching bracket not found", m.Message())
}
