package vim

// ============================================================================
// Insert Mode Entry Commands
// ============================================================================

// EnterInsertModeCommand enters insert mode at the cursor (i).
type EnterInsertModeCommand struct {
	InsertEntryBase
}

// Execute switches to insert mode without moving the cursor.
func (c *EnterInsertModeCommand) Execute(m *Model) ExecuteResult {
	m.setMode(ModeInsert)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *EnterInsertModeCommand) Keys() []string {
	return []string{"i"}
}

// Mode returns the mode this command operates in.
func (c *EnterInsertModeCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *EnterInsertModeCommand) ID() string {
	return "mode.insert"
}

// EnterInsertModeAfterCommand enters insert mode after the cursor character (a).
type EnterInsertModeAfterCommand struct {
	InsertEntryBase
}

// Execute moves one column right (up to one past the end) and enters insert mode.
func (c *EnterInsertModeAfterCommand) Execute(m *Model) ExecuteResult {
	m.cursor.Col = min(m.cursor.Col+1, runeLen(m.currentLine()))
	m.setMode(ModeInsert)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *EnterInsertModeAfterCommand) Keys() []string {
	return []string{"a"}
}

// Mode returns the mode this command operates in.
func (c *EnterInsertModeAfterCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *EnterInsertModeAfterCommand) ID() string {
	return "mode.insert_after"
}

// EnterInsertModeAtEndCommand enters insert mode at the end of the line (A).
type EnterInsertModeAtEndCommand struct {
	InsertEntryBase
}

// Execute moves past the last character and enters insert mode.
func (c *EnterInsertModeAtEndCommand) Execute(m *Model) ExecuteResult {
	m.cursor.Col = runeLen(m.currentLine())
	m.setMode(ModeInsert)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *EnterInsertModeAtEndCommand) Keys() []string {
	return []string{"A"}
}

// Mode returns the mode this command operates in.
func (c *EnterInsertModeAtEndCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *EnterInsertModeAtEndCommand) ID() string {
	return "mode.insert_end"
}

// EnterReplaceModeCommand enters replace mode (R).
type EnterReplaceModeCommand struct {
	InsertEntryBase
}

func (c *EnterReplaceModeCommand) Execute(m *Model) ExecuteResult {
	m.setMode(ModeReplace)
	return Executed
}

func (c *EnterReplaceModeCommand) Keys() []string { return []string{"R"} }
func (c *EnterReplaceModeCommand) Mode() Mode     { return ModeNormal }
func (c *EnterReplaceModeCommand) ID() string     { return "mode.replace" }

// ============================================================================
// Open Line Commands
// ============================================================================

// InsertLineBelowCommand opens a new line below and enters insert mode (o).
type InsertLineBelowCommand struct {
	ChangeBase
}

// Execute inserts an empty line after the cursor line.
func (c *InsertLineBelowCommand) Execute(m *Model) ExecuteResult {
	line := m.cursor.Line
	m.setLines(spliceLines(m.lines, line+1, 0, ""))
	m.cursor = Position{Line: line + 1}
	m.setMode(ModeInsert)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *InsertLineBelowCommand) Keys() []string {
	return []string{"o"}
}

// Mode returns the mode this command operates in.
func (c *InsertLineBelowCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *InsertLineBelowCommand) ID() string {
	return "insert.line_below"
}

// InsertLineAboveCommand opens a new line above and enters insert mode (O).
type InsertLineAboveCommand struct {
	ChangeBase
}

// Execute inserts an empty line at the cursor line.
func (c *InsertLineAboveCommand) Execute(m *Model) ExecuteResult {
	line := m.cursor.Line
	m.setLines(spliceLines(m.lines, line, 0, ""))
	m.cursor = Position{Line: line}
	m.setMode(ModeInsert)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *InsertLineAboveCommand) Keys() []string {
	return []string{"O"}
}

// Mode returns the mode this command operates in.
func (c *InsertLineAboveCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *InsertLineAboveCommand) ID() string {
	return "insert.line_above"
}

// ============================================================================
// Visual and Command-line Entry
// ============================================================================

// EnterVisualModeCommand starts a characterwise selection at the cursor (v).
type EnterVisualModeCommand struct {
	ModeEntryBase
}

// Execute records the anchor and enters visual mode.
func (c *EnterVisualModeCommand) Execute(m *Model) ExecuteResult {
	m.setMode(ModeVisual)
	m.anchor = m.cursor
	m.anchored = true
	return Executed
}

func (c *EnterVisualModeCommand) Keys() []string { return []string{"v"} }
func (c *EnterVisualModeCommand) Mode() Mode     { return ModeNormal }
func (c *EnterVisualModeCommand) ID() string     { return "mode.visual" }

// EnterVisualLineModeCommand starts a linewise selection at the cursor (V).
type EnterVisualLineModeCommand struct {
	ModeEntryBase
}

// Execute records the anchor and enters visual-line mode.
func (c *EnterVisualLineModeCommand) Execute(m *Model) ExecuteResult {
	m.setMode(ModeVisualLine)
	m.anchor = m.cursor
	m.anchored = true
	return Executed
}

func (c *EnterVisualLineModeCommand) Keys() []string { return []string{"V"} }
func (c *EnterVisualLineModeCommand) Mode() Mode     { return ModeNormal }
func (c *EnterVisualLineModeCommand) ID() string     { return "mode.visual_line" }

// EnterCommandLineCommand enters command-line mode (:).
type EnterCommandLineCommand struct {
	ModeEntryBase
}

// Execute switches to command-line mode with an empty buffer.
func (c *EnterCommandLineCommand) Execute(m *Model) ExecuteResult {
	m.setMode(ModeCommand)
	return Executed
}

func (c *EnterCommandLineCommand) Keys() []string { return []string{":"} }
func (c *EnterCommandLineCommand) Mode() Mode     { return ModeNormal }
func (c *EnterCommandLineCommand) ID() string     { return "mode.command" }

// EnterSearchCommand enters command-line mode for a search (/ or ?).
type EnterSearchCommand struct {
	ModeEntryBase
	forward bool
}

// Execute switches to command-line mode with the search character in the buffer.
func (c *EnterSearchCommand) Execute(m *Model) ExecuteResult {
	m.setMode(ModeCommand)
	m.cmdline = c.Keys()[0]
	return Executed
}

// Keys returns "/" for forward search and "?" for backward search.
func (c *EnterSearchCommand) Keys() []string {
	if c.forward {
		return []string{"/"}
	}
	return []string{"?"}
}

func (c *EnterSearchCommand) Mode() Mode { return ModeNormal }

func (c *EnterSearchCommand) ID() string {
	if c.forward {
		return "mode.search_forward"
	}
	return "mode.search_backward"
}
