package vim

// ============================================================================
// Change Commands
// ============================================================================
//
// Change commands delete and then enter insert mode. They always record a snapshot,
// even when nothing was deleted, so the following insert session undoes with them.

// ChangeLineCommand empties the current line and enters insert mode (cc).
type ChangeLineCommand struct {
	ChangeBase
}

// Execute clears the line, keeping its old text in a linewise register.
func (c *ChangeLineCommand) Execute(m *Model) ExecuteResult {
	m.register = linewiseRegister([]string{m.currentLine()})
	m.setLines(replaceLine(m.lines, m.cursor.Line, ""))
	m.cursor.Col = 0
	m.setMode(ModeInsert)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *ChangeLineCommand) Keys() []string {
	return []string{"cc"}
}

// Mode returns the mode this command operates in.
func (c *ChangeLineCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *ChangeLineCommand) ID() string {
	return "change.line"
}

// ChangeWordCommand deletes to the end of the word and enters insert mode (cw, ce).
// Unlike dw, whitespace after the last word is kept.
type ChangeWordCommand struct {
	ChangeBase
}

// Execute removes count words (and the whitespace between them) starting at the cursor.
func (c *ChangeWordCommand) Execute(m *Model) ExecuteResult {
	line := m.currentLine()
	col := m.cursor.Col
	end := wordRunEnd(line, col)
	r := []rune(line)
	for i := 1; i < m.countOrOne(); i++ {
		next := end
		for next < len(r) && isSpace(r[next]) {
			next++
		}
		next = wordRunEnd(line, next)
		if next == end {
			break
		}
		end = next
	}
	if end > col {
		m.register = charwiseRegister(runeSlice(line, col, end))
		m.setLines(replaceLine(m.lines, m.cursor.Line, runeSlice(line, 0, col)+runeSlice(line, end, len(r))))
	}
	m.setMode(ModeInsert)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *ChangeWordCommand) Keys() []string {
	return []string{"cw", "ce"}
}

// Mode returns the mode this command operates in.
func (c *ChangeWordCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *ChangeWordCommand) ID() string {
	return "change.word"
}

// ChangeToEOLCommand deletes to the end of the line and enters insert mode (c$).
type ChangeToEOLCommand struct {
	ChangeBase
}

// Execute deletes from the cursor to end of line; the cursor stays where it was.
func (c *ChangeToEOLCommand) Execute(m *Model) ExecuteResult {
	line := m.currentLine()
	col := m.cursor.Col
	if col < runeLen(line) {
		m.register = charwiseRegister(runeSlice(line, col, runeLen(line)))
		m.setLines(replaceLine(m.lines, m.cursor.Line, runeSlice(line, 0, col)))
	}
	m.setMode(ModeInsert)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *ChangeToEOLCommand) Keys() []string {
	return []string{"c$"}
}

// Mode returns the mode this command operates in.
func (c *ChangeToEOLCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *ChangeToEOLCommand) ID() string {
	return "change.to_eol"
}
