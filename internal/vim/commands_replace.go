package vim

// ============================================================================
// Replace Commands
// ============================================================================

// ReplaceCharCommand replaces the character under the cursor (r{char}).
type ReplaceCharCommand struct {
	DeleteBase
	newChar rune
}

// Execute overwrites one character. Skipped past the end of the line.
func (c *ReplaceCharCommand) Execute(m *Model) ExecuteResult {
	r := []rune(m.currentLine())
	col := m.cursor.Col
	if col >= len(r) {
		return Skipped
	}
	r[col] = c.newChar
	m.setLines(replaceLine(m.lines, m.cursor.Line, string(r)))
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *ReplaceCharCommand) Keys() []string {
	return []string{"r"}
}

// Mode returns the mode this command operates in.
func (c *ReplaceCharCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *ReplaceCharCommand) ID() string {
	return "replace.char"
}

// ReplaceModeCharCommand types one character in replace mode: it overwrites the
// character under the cursor, or appends at the end of the line.
type ReplaceModeCharCommand struct {
	InsertBase
	newChar rune
}

// Execute overwrites or appends, then advances the cursor.
func (c *ReplaceModeCharCommand) Execute(m *Model) ExecuteResult {
	r := []rune(m.currentLine())
	col := m.cursor.Col
	if col < len(r) {
		r[col] = c.newChar
	} else {
		r = append(r, c.newChar)
	}
	m.setLines(replaceLine(m.lines, m.cursor.Line, string(r)))
	m.cursor.Col = col + 1
	return Executed
}

// Keys returns nil: replace typing is the fallback for printable keys.
func (c *ReplaceModeCharCommand) Keys() []string {
	return nil
}

// Mode returns the mode this command operates in.
func (c *ReplaceModeCharCommand) Mode() Mode {
	return ModeReplace
}

// ID returns the hierarchical identifier for this command.
func (c *ReplaceModeCharCommand) ID() string {
	return "replace.mode_char"
}

// ReplaceModeEnterCommand consumes Enter in replace mode without editing.
type ReplaceModeEnterCommand struct {
	MotionBase
}

func (c *ReplaceModeEnterCommand) Execute(*Model) ExecuteResult { return Skipped }
func (c *ReplaceModeEnterCommand) Keys() []string               { return []string{"<enter>"} }
func (c *ReplaceModeEnterCommand) Mode() Mode                   { return ModeReplace }
func (c *ReplaceModeEnterCommand) ID() string                   { return "replace.enter" }
