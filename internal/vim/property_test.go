package vim

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var fuzzKeys = []Key{
	Rune('h'), Rune('j'), Rune('k'), Rune('l'), Rune('w'), Rune('b'), Rune('e'),
	Rune('0'), Rune('$'), Rune('G'), Rune('g'), Rune('x'), Rune('p'), Rune('P'),
	Rune('o'), Rune('O'), Rune('i'), Rune('a'), Rune('A'), Rune('R'), Rune('v'),
	Rune('V'), Rune('d'), Rune('c'), Rune('y'), Rune('r'), Rune('u'), Rune('n'),
	Rune('N'), Rune('%'), Rune('/'), Rune('?'), Rune(':'), Rune('s'), Rune('1'),
	Rune('2'), Rune('3'), Rune(' '), Rune('('), Rune(')'), Rune('é'),
	Named(KeyEscape), Named(KeyEnter), Named(KeyBackspace), Named(KeyArrowLeft),
	Named(KeyArrowDown), Ctrl('r'), Ctrl('g'), Ctrl('q'), {Key: "d", Meta: true},
}

func linesGen() *rapid.Generator[[]string] {
	return rapid.SliceOfN(rapid.StringMatching(`[a-c ()]{0,8}`), 1, 5)
}

func requireCursorInBounds(t require.TestingT, m Model) {
	lines := m.Lines()
	require.NotEmpty(t, lines)
	pos := m.Cursor()
	require.GreaterOrEqual(t, pos.Line, 0)
	require.Less(t, pos.Line, len(lines))
	require.GreaterOrEqual(t, pos.Col, 0)

	n := runeLen(lines[pos.Line])
	if m.Mode().IsInsertFamily() {
		require.LessOrEqual(t, pos.Col, n)
	} else {
		require.LessOrEqual(t, pos.Col, max(0, n-1))
	}
}

// TestProperty_CursorAlwaysInBounds feeds random key sequences and checks the
// buffer and cursor bounds after every key.
func TestProperty_CursorAlwaysInBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := newTestModel(linesGen().Draw(rt, "lines")...)
		keys := rapid.SliceOfN(rapid.SampledFrom(fuzzKeys), 1, 60).Draw(rt, "keys")

		for _, k := range keys {
			m, _ = m.HandleKey(k)
			requireCursorInBounds(rt, m)
		}
	})
}

// TestProperty_ResultMatchesObservedChange checks that Changed and ModeChanged
// agree with the buffer and mode before and after every key.
func TestProperty_ResultMatchesObservedChange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := newTestModel(linesGen().Draw(rt, "lines")...)
		keys := rapid.SliceOfN(rapid.SampledFrom(fuzzKeys), 1, 60).Draw(rt, "keys")

		for _, k := range keys {
			next, res := m.HandleKey(k)
			require.Equal(rt, !slices.Equal(m.Lines(), next.Lines()), res.Changed, "key %v", k)
			require.Equal(rt, m.Mode() != next.Mode(), res.ModeChanged, "key %v", k)
			m = next
		}
	})
}

// TestProperty_ChordNeverCompletesOperator checks that a Ctrl or Meta chord
// typed after an operator leaves nothing pending.
func TestProperty_ChordNeverCompletesOperator(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := newTestModel(linesGen().Draw(rt, "lines")...)
		op := rapid.SampledFrom([]rune("dcyrg")).Draw(rt, "op")
		chord := rapid.SampledFrom([]Key{Ctrl('g'), Ctrl('q'), Ctrl('r'), {Key: "w", Meta: true}}).Draw(rt, "chord")

		m, _ = m.HandleKey(Rune(op))
		m, _ = m.HandleKey(chord)
		require.Equal(rt, OpNone, m.PendingOperator())
		require.Empty(rt, m.PendingCount())
	})
}

// TestProperty_CountedMotionEqualsRepetition checks that "<n>l" is n times "l"
// when the line is long enough.
func TestProperty_CountedMotionEqualsRepetition(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		line := rapid.StringMatching(`[a-z]{2,40}`).Draw(rt, "line")
		n := rapid.IntRange(1, len(line)-1).Draw(rt, "n")

		counted := newTestModel(line)
		counted, _ = counted.Apply(Keys(strconv.Itoa(n) + "l")...)

		repeated := newTestModel(line)
		repeated, _ = repeated.Apply(Keys(strings.Repeat("l", n))...)

		require.Equal(rt, repeated.Cursor(), counted.Cursor())
		require.Equal(rt, Position{Col: n}, counted.Cursor())
	})
}

// TestProperty_UndoRedoUndoRestoresSnapshot checks undo, redo, undo lands on the
// pre-edit state for any single edit.
func TestProperty_UndoRedoUndoRestoresSnapshot(t *testing.T) {
	edits := []string{"x", "dd", "dw", "d$", "rZ", "p", "P", "cwQ", "oQ", "OQ", "AQ", ":s/a/Z/g\n"}

	rapid.Check(t, func(rt *rapid.T) {
		m := newTestModel(linesGen().Draw(rt, "lines")...)
		// Fill the register so puts have something to do.
		m, _ = m.Apply(Keys("yy")...)
		moves := rapid.StringMatching(`[hjkl]{0,6}`).Draw(rt, "moves")
		m, _ = m.Apply(Keys(moves)...)

		edit := rapid.SampledFrom(edits).Draw(rt, "edit")
		keys := Keys(edit)
		if strings.HasSuffix(edit, "\n") {
			keys = append(Keys(strings.TrimSuffix(edit, "\n")), Named(KeyEnter))
		}
		edited, _ := m.Apply(keys...)
		edited, _ = edited.HandleKey(Named(KeyEscape))
		if !edited.CanUndo() {
			return
		}

		undone, _ := edited.HandleKey(Rune('u'))
		redone, _ := undone.HandleKey(Ctrl('r'))
		again, _ := redone.HandleKey(Rune('u'))

		require.Equal(rt, m.Lines(), undone.Lines())
		require.Equal(rt, undone.Lines(), again.Lines())
		require.Equal(rt, undone.Cursor(), again.Cursor())
		require.Equal(rt, edited.Lines(), redone.Lines())
	})
}

// TestProperty_SearchFindsSingleOccurrence places a unique marker anywhere in
// the buffer and searches for it from any cursor position.
func TestProperty_SearchFindsSingleOccurrence(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-c ]{0,10}`), 1, 6).Draw(rt, "lines")
		target := rapid.IntRange(0, len(lines)-1).Draw(rt, "targetLine")
		col := rapid.IntRange(0, runeLen(lines[target])).Draw(rt, "targetCol")
		lines[target] = runeSlice(lines[target], 0, col) + "XY" + runeSlice(lines[target], col, runeLen(lines[target]))

		m := newTestModel(lines...)
		startLine := rapid.IntRange(0, len(lines)-1).Draw(rt, "startLine")
		startCol := rapid.IntRange(0, 12).Draw(rt, "startCol")
		m.cursor = clampCursor(Position{Line: startLine, Col: startCol}, m.lines)
		from := m.Cursor()

		forward := rapid.Bool().Draw(rt, "forward")
		m.searchFor("XY", forward)

		require.Equal(rt, Position{Line: target, Col: col}, m.Cursor())
		want := Position{Line: target, Col: col}
		var wrapped bool
		if forward {
			wrapped = !from.Before(want)
		} else {
			wrapped = !want.Before(from)
		}
		if wrapped {
			require.NotEmpty(rt, m.Message())
		} else {
			require.Empty(rt, m.Message())
		}
	})
}
