package vim

// ============================================================================
// Insert Mode Editing Commands
// ============================================================================

// InsertTextCommand inserts text at the cursor in insert mode.
type InsertTextCommand struct {
	InsertBase
	text string
}

// Execute inserts the text and moves the cursor past it.
func (c *InsertTextCommand) Execute(m *Model) ExecuteResult {
	if c.text == "" {
		return Skipped
	}
	line := m.currentLine()
	col := m.cursor.Col
	m.setLines(replaceLine(m.lines, m.cursor.Line, runeSlice(line, 0, col)+c.text+runeSlice(line, col, runeLen(line))))
	m.cursor.Col = col + runeLen(c.text)
	return Executed
}

// Keys returns nil: text insertion is the fallback for printable keys.
func (c *InsertTextCommand) Keys() []string {
	return nil
}

// Mode returns the mode this command operates in.
func (c *InsertTextCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *InsertTextCommand) ID() string {
	return "insert.text"
}

// BackspaceCommand deletes the character before the cursor, joining with the
// previous line at column 0. Used by insert and replace modes.
type BackspaceCommand struct {
	InsertBase
}

// Execute deletes backwards. Skipped at the very start of the buffer.
func (c *BackspaceCommand) Execute(m *Model) ExecuteResult {
	line := m.currentLine()
	row, col := m.cursor.Line, m.cursor.Col
	switch {
	case col > 0:
		m.setLines(replaceLine(m.lines, row, runeSlice(line, 0, col-1)+runeSlice(line, col, runeLen(line))))
		m.cursor.Col = col - 1
	case row > 0:
		prev := m.lines[row-1]
		joined := replaceLine(m.lines, row-1, prev+line)
		m.setLines(spliceLines(joined, row, 1))
		m.cursor = Position{Line: row - 1, Col: runeLen(prev)}
	default:
		return Skipped
	}
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *BackspaceCommand) Keys() []string {
	return []string{"<backspace>"}
}

// Mode returns the mode this command operates in.
func (c *BackspaceCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *BackspaceCommand) ID() string {
	return "insert.backspace"
}

// SplitLineCommand splits the line at the cursor (Enter in insert mode).
type SplitLineCommand struct {
	InsertBase
}

// Execute moves the text after the cursor onto a new line below.
func (c *SplitLineCommand) Execute(m *Model) ExecuteResult {
	line := m.currentLine()
	row, col := m.cursor.Line, m.cursor.Col
	head := runeSlice(line, 0, col)
	tail := runeSlice(line, col, runeLen(line))
	m.setLines(spliceLines(m.lines, row, 1, head, tail))
	m.cursor = Position{Line: row + 1}
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *SplitLineCommand) Keys() []string {
	return []string{"<enter>"}
}

// Mode returns the mode this command operates in.
func (c *SplitLineCommand) Mode() Mode {
	return ModeInsert
}

// ID returns the hierarchical identifier for this command.
func (c *SplitLineCommand) ID() string {
	return "insert.split_line"
}
