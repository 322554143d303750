package vim

import "strings"

// ============================================================================
// Delete Commands
// ============================================================================

// DeleteCharCommand deletes the character under the cursor (x).
// With a count it deletes up to count characters; the register ends up holding the
// last one removed.
type DeleteCharCommand struct {
	DeleteBase
}

// Execute deletes characters under the cursor. Skipped on an empty line.
func (c *DeleteCharCommand) Execute(m *Model) ExecuteResult {
	line := m.currentLine()
	col := m.cursor.Col
	n := runeLen(line)
	if col >= n {
		return Skipped
	}
	count := min(m.countOrOne(), n-col)
	removed := runeSlice(line, col, col+count)
	m.setLines(replaceLine(m.lines, m.cursor.Line, runeSlice(line, 0, col)+runeSlice(line, col+count, n)))
	last := []rune(removed)
	m.register = charwiseRegister(string(last[len(last)-1]))
	m.clamp()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *DeleteCharCommand) Keys() []string {
	return []string{"x"}
}

// Mode returns the mode this command operates in.
func (c *DeleteCharCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *DeleteCharCommand) ID() string {
	return "delete.char"
}

// DeleteLineCommand deletes count lines starting at the cursor line (dd).
type DeleteLineCommand struct {
	DeleteBase
}

// Execute deletes min(count, remaining) lines into a linewise register.
// Deleting every line leaves a single empty line.
func (c *DeleteLineCommand) Execute(m *Model) ExecuteResult {
	start := m.cursor.Line
	n := min(m.countOrOne(), len(m.lines)-start)
	m.register = linewiseRegister(m.lines[start : start+n])
	m.setLines(spliceLines(m.lines, start, n))
	m.cursor = clampCursor(Position{Line: min(start, len(m.lines)-1)}, m.lines)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *DeleteLineCommand) Keys() []string {
	return []string{"dd"}
}

// Mode returns the mode this command operates in.
func (c *DeleteLineCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *DeleteLineCommand) ID() string {
	return "delete.line"
}

// DeleteWordCommand deletes count words and their trailing whitespace (dw).
// The deletion never crosses the end of the line.
type DeleteWordCommand struct {
	DeleteBase
}

// Execute deletes from the cursor into a charwise register.
func (c *DeleteWordCommand) Execute(m *Model) ExecuteResult {
	line := m.currentLine()
	col := m.cursor.Col
	var deleted strings.Builder
	for range m.countOrOne() {
		end := wordSpanEnd(line, col)
		if end == col {
			break
		}
		deleted.WriteString(runeSlice(line, col, end))
		line = runeSlice(line, 0, col) + runeSlice(line, end, runeLen(line))
	}
	if deleted.Len() == 0 {
		return Skipped
	}
	m.setLines(replaceLine(m.lines, m.cursor.Line, line))
	m.register = charwiseRegister(deleted.String())
	m.clamp()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *DeleteWordCommand) Keys() []string {
	return []string{"dw"}
}

// Mode returns the mode this command operates in.
func (c *DeleteWordCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *DeleteWordCommand) ID() string {
	return "delete.word"
}

// DeleteToEOLCommand deletes from the cursor to the end of the line (d$).
type DeleteToEOLCommand struct {
	DeleteBase
}

// Execute deletes to end of line and steps the cursor back one column.
func (c *DeleteToEOLCommand) Execute(m *Model) ExecuteResult {
	line := m.currentLine()
	col := m.cursor.Col
	if col >= runeLen(line) {
		return Skipped
	}
	m.register = charwiseRegister(runeSlice(line, col, runeLen(line)))
	m.setLines(replaceLine(m.lines, m.cursor.Line, runeSlice(line, 0, col)))
	m.cursor.Col = max(0, col-1)
	m.clamp()
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *DeleteToEOLCommand) Keys() []string {
	return []string{"d$"}
}

// Mode returns the mode this command operates in.
func (c *DeleteToEOLCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *DeleteToEOLCommand) ID() string {
	return "delete.to_eol"
}
