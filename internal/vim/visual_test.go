package vim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisual_EnterRecordsAnchor(t *testing.T) {
	m := press(t, newTestModel("abcdef"), "llv")

	anchor, ok := m.VisualAnchor()
	require.True(t, ok)
	assert.Equal(t, Position{Col: 2}, anchor)
	assert.Equal(t, ModeVisual, m.Mode())

	m = press(t, m, "hh")
	start, end, ok := m.Selection()
	require.True(t, ok)
	assert.Equal(t, Position{}, start)
	assert.Equal(t, Position{Col: 2}, end)
}

func TestVisual_SingleLineDelete(t *testing.T) {
	m := press(t, newTestModel("abcdef"), "lvlld")

	assert.Equal(t, []string{"aef"}, m.Lines())
	assert.Equal(t, Register{Content: []string{"bcd"}}, m.Register())
	assert.Equal(t, Position{Col: 1}, m.Cursor())
	assert.Equal(t, ModeNormal, m.Mode())
	assert.True(t, m.CanUndo())
}

func TestVisual_CountExtendsSelection(t *testing.T) {
	m := press(t, newTestModel("abcdef"), "v2lx")

	assert.Equal(t, []string{"def"}, m.Lines())
}

func TestVisual_MultiLineDeleteAndPaste(t *testing.T) {
	m := press(t, newTestModel("hello", "big", "world"), "lvjjd")

	assert.Equal(t, []string{"hrld"}, m.Lines())
	assert.Equal(t, Register{Content: []string{"ello", "big", "wo"}}, m.Register())
	assert.Equal(t, Position{Col: 1}, m.Cursor())

	m = press(t, m, "P")
	assert.Equal(t, []string{"hello", "big", "world"}, m.Lines())
}

func TestVisual_BackwardSelection(t *testing.T) {
	m := press(t, newTestModel("one", "two"), "jlvkd")

	assert.Equal(t, []string{"oo"}, m.Lines())
	assert.Equal(t, Register{Content: []string{"ne", "tw"}}, m.Register())
}

func TestVisual_Yank(t *testing.T) {
	m := press(t, newTestModel("abc"), "vly")

	assert.Equal(t, []string{"abc"}, m.Lines())
	assert.Equal(t, Register{Content: []string{"ab"}}, m.Register())
	assert.Equal(t, "Yanked", m.Message())
	assert.Equal(t, ModeNormal, m.Mode())
	assert.False(t, m.CanUndo())

	m = press(t, newTestModel("a", "b", "c"), "Vjy")
	assert.Equal(t, Register{Content: []string{"a", "b"}, Linewise: true}, m.Register())
	assert.Equal(t, "2 lines yanked", m.Message())
}

func TestVisualLine_DeleteAll(t *testing.T) {
	m := press(t, newTestModel("a", "b"), "VGd")

	assert.Equal(t, []string{""}, m.Lines())
	assert.Equal(t, Position{}, m.Cursor())
}

func TestVisualLine_Selection(t *testing.T) {
	m := press(t, newTestModel("abc", "de"), "lVj")

	start, end, ok := m.Selection()
	require.True(t, ok)
	assert.Equal(t, Position{}, start)
	assert.Equal(t, Position{Line: 1, Col: 1}, end)
}

func TestVisual_Toggles(t *testing.T) {
	tests := []struct {
		keys string
		want Mode
	}{
		{"vv", ModeNormal},
		{"vV", ModeVisualLine},
		{"Vv", ModeVisual},
		{"VV", ModeNormal},
		{"v<Esc>", ModeNormal},
	}
	for _, tt := range tests {
		t.Run(tt.keys, func(t *testing.T) {
			m := press(t, newTestModel("abc"), tt.keys)
			assert.Equal(t, tt.want, m.Mode())
			_, anchored := m.VisualAnchor()
			assert.Equal(t, tt.want.IsVisual(), anchored)
		})
	}
}

func TestVisual_SwallowsOtherKeys(t *testing.T) {
	m := newTestModel("abc")
	m = press(t, m, "v")

	next, res := m.HandleKey(Rune('z'))
	assert.True(t, res.Handled)
	assert.Equal(t, ModeVisual, next.Mode())
	assert.Equal(t, []string{"abc"}, next.Lines())
}
