package vim

// ============================================================================
// Paste Commands
// ============================================================================

// PasteAfterCommand puts the register after the cursor (p).
// Linewise content goes below the current line; charwise content after the cursor
// character, leaving the cursor on the last inserted character.
type PasteAfterCommand struct {
	DeleteBase
}

// Execute inserts the register. Skipped when the register is empty.
func (c *PasteAfterCommand) Execute(m *Model) ExecuteResult {
	if m.register.IsEmpty() {
		return Skipped
	}
	line := m.cursor.Line
	if m.register.Linewise {
		m.setLines(spliceLines(m.lines, line+1, 0, m.register.Content...))
		m.cursor = Position{Line: line + 1}
		return Executed
	}
	m.pasteCharwise(min(m.cursor.Col+1, runeLen(m.currentLine())))
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *PasteAfterCommand) Keys() []string {
	return []string{"p"}
}

// Mode returns the mode this command operates in.
func (c *PasteAfterCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *PasteAfterCommand) ID() string {
	return "paste.after"
}

// PasteBeforeCommand puts the register before the cursor (P).
type PasteBeforeCommand struct {
	DeleteBase
}

// Execute inserts the register above the line or at the cursor column.
func (c *PasteBeforeCommand) Execute(m *Model) ExecuteResult {
	if m.register.IsEmpty() {
		return Skipped
	}
	line := m.cursor.Line
	if m.register.Linewise {
		m.setLines(spliceLines(m.lines, line, 0, m.register.Content...))
		m.cursor = Position{Line: line}
		return Executed
	}
	m.pasteCharwise(m.cursor.Col)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *PasteBeforeCommand) Keys() []string {
	return []string{"P"}
}

// Mode returns the mode this command operates in.
func (c *PasteBeforeCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *PasteBeforeCommand) ID() string {
	return "paste.before"
}

// pasteCharwise splices a characterwise register into the cursor line at column at.
// A single fragment leaves the cursor on its last character; a fragment spanning
// several lines (from a visual selection) leaves it at the start of the pasted text.
func (m *Model) pasteCharwise(at int) {
	frags := m.register.Content
	row := m.cursor.Line
	cur := m.currentLine()
	head, tail := runeSlice(cur, 0, at), runeSlice(cur, at, runeLen(cur))
	if len(frags) == 1 {
		m.setLines(replaceLine(m.lines, row, head+frags[0]+tail))
		m.cursor.Col = at + runeLen(frags[0]) - 1
		m.clamp()
		return
	}
	repl := make([]string, 0, len(frags))
	repl = append(repl, head+frags[0])
	repl = append(repl, frags[1:len(frags)-1]...)
	repl = append(repl, frags[len(frags)-1]+tail)
	m.setLines(spliceLines(m.lines, row, 1, repl...))
	m.cursor = Position{Line: row, Col: at}
	m.clamp()
}
