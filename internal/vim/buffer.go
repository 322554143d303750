package vim

import (
	"slices"
	"unicode"
)

// Position is a zero-based cursor location. Col counts runes, not bytes.
type Position struct {
	Line int
	Col  int
}

// Before reports whether p comes textually before other.
func (p Position) Before(other Position) bool {
	return p.Line < other.Line || (p.Line == other.Line && p.Col < other.Col)
}

// orderPositions returns (a, b) sorted so the first is textually earlier.
func orderPositions(a, b Position) (Position, Position) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}

// ============================================================================
// Line helpers
// ============================================================================
//
// Lines are stored as strings and edited as rune slices. A line slice held by a
// Model is never written to; every edit builds a new slice via the helpers below.

func runeLen(s string) int {
	return len([]rune(s))
}

// runeSlice returns s[from:to] in rune offsets, clamping both bounds.
func runeSlice(s string, from, to int) string {
	r := []rune(s)
	from = max(0, min(from, len(r)))
	to = max(from, min(to, len(r)))
	return string(r[from:to])
}

// runeAt returns the rune at col and whether it exists.
func runeAt(s string, col int) (rune, bool) {
	r := []rune(s)
	if col < 0 || col >= len(r) {
		return 0, false
	}
	return r[col], true
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// replaceLine returns a copy of lines with lines[i] set to s.
func replaceLine(lines []string, i int, s string) []string {
	out := slices.Clone(lines)
	out[i] = s
	return out
}

// spliceLines returns a copy of lines with count lines removed at i and insert added there.
func spliceLines(lines []string, i, count int, insert ...string) []string {
	out := make([]string, 0, len(lines)-count+len(insert))
	out = append(out, lines[:i]...)
	out = append(out, insert...)
	out = append(out, lines[i+count:]...)
	return out
}

// ============================================================================
// Cursor clamping
// ============================================================================

// clampCursor forces pos into the normal-mode bounds of lines:
// 0 <= Line < len(lines) and 0 <= Col <= max(0, len(line)-1).
func clampCursor(pos Position, lines []string) Position {
	line := max(0, min(pos.Line, len(lines)-1))
	maxCol := max(0, runeLen(lines[line])-1)
	return Position{Line: line, Col: max(0, min(pos.Col, maxCol))}
}

// clampInsertCursor is clampCursor for insert-family modes, where Col may equal len(line).
func clampInsertCursor(pos Position, lines []string) Position {
	line := max(0, min(pos.Line, len(lines)-1))
	return Position{Line: line, Col: max(0, min(pos.Col, runeLen(lines[line])))}
}

// ============================================================================
// Word scanning
// ============================================================================
//
// A word is a maximal run of non-whitespace.

// wordForward returns the position reached by one 'w' motion from pos.
func wordForward(lines []string, pos Position) Position {
	line, col := pos.Line, pos.Col
	r := []rune(lines[line])
	for col < len(r) && !isSpace(r[col]) {
		col++
	}
	for col < len(r) && isSpace(r[col]) {
		col++
	}
	if col >= len(r) && line < len(lines)-1 {
		line++
		col = 0
		next := []rune(lines[line])
		for col < len(next) && isSpace(next[col]) {
			col++
		}
	}
	return Position{Line: line, Col: col}
}

// wordBackward returns the position reached by one 'b' motion from pos.
func wordBackward(lines []string, pos Position) Position {
	line, col := pos.Line, pos.Col
	if col == 0 && line > 0 {
		line--
		col = max(runeLen(lines[line]), 1) - 1
	} else {
		col = max(0, col-1)
	}
	r := []rune(lines[line])
	for col > 0 && col < len(r) && isSpace(r[col]) {
		col--
	}
	for col > 0 && col-1 < len(r) && !isSpace(r[col-1]) {
		col--
	}
	return Position{Line: line, Col: col}
}

// wordSpanEnd returns the column after the word at col and the whitespace following it.
// Used by dw and yw, which never cross a line boundary.
func wordSpanEnd(line string, col int) int {
	r := []rune(line)
	end := col
	for end < len(r) && !isSpace(r[end]) {
		end++
	}
	for end < len(r) && isSpace(r[end]) {
		end++
	}
	return end
}

// wordRunEnd returns the column after the non-whitespace run starting at col.
// Used by cw and ce, which leave trailing whitespace in place.
func wordRunEnd(line string, col int) int {
	r := []rune(line)
	end := col
	for end < len(r) && !isSpace(r[end]) {
		end++
	}
	return end
}
