package vim

import "fmt"

// ============================================================================
// Visual Mode Operations
// ============================================================================

// selectionText returns the selected text between normalized start and end.
// Linewise selections return whole lines; characterwise selections return one
// fragment per touched line.
func selectionText(lines []string, start, end Position, linewise bool) []string {
	if linewise {
		out := make([]string, 0, end.Line-start.Line+1)
		return append(out, lines[start.Line:end.Line+1]...)
	}
	if start.Line == end.Line {
		return []string{runeSlice(lines[start.Line], start.Col, end.Col+1)}
	}
	out := []string{runeSlice(lines[start.Line], start.Col, runeLen(lines[start.Line]))}
	out = append(out, lines[start.Line+1:end.Line]...)
	return append(out, runeSlice(lines[end.Line], 0, end.Col+1))
}

// VisualDeleteCommand deletes the selection (d, x in visual modes).
type VisualDeleteCommand struct {
	DeleteBase
	mode Mode
}

// Execute deletes the selection into the register and returns to normal mode.
func (c *VisualDeleteCommand) Execute(m *Model) ExecuteResult {
	start, end := orderPositions(m.anchor, m.cursor)
	if c.mode == ModeVisualLine {
		m.register = linewiseRegister(selectionText(m.lines, start, end, true))
		m.setLines(spliceLines(m.lines, start.Line, end.Line-start.Line+1))
		m.cursor = Position{Line: min(start.Line, len(m.lines)-1)}
	} else {
		m.register = Register{Content: selectionText(m.lines, start, end, false)}
		head := runeSlice(m.lines[start.Line], 0, start.Col)
		tail := runeSlice(m.lines[end.Line], end.Col+1, runeLen(m.lines[end.Line]))
		m.setLines(spliceLines(m.lines, start.Line, end.Line-start.Line+1, head+tail))
		m.cursor = start
	}
	m.setMode(ModeNormal)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *VisualDeleteCommand) Keys() []string {
	return []string{"d", "x"}
}

// Mode returns the visual mode this instance is registered in.
func (c *VisualDeleteCommand) Mode() Mode {
	return c.mode
}

// ID returns the hierarchical identifier for this command.
func (c *VisualDeleteCommand) ID() string {
	return "visual.delete"
}

// IsModeChange returns true: deleting leaves visual mode.
func (c *VisualDeleteCommand) IsModeChange() bool {
	return true
}

// VisualYankCommand copies the selection and returns to normal mode (y).
type VisualYankCommand struct {
	MotionBase
	mode Mode
}

// Execute yanks the selection. The buffer and cursor are unchanged.
func (c *VisualYankCommand) Execute(m *Model) ExecuteResult {
	start, end := orderPositions(m.anchor, m.cursor)
	if c.mode == ModeVisualLine {
		m.register = linewiseRegister(selectionText(m.lines, start, end, true))
		m.message = fmt.Sprintf("%d lines yanked", end.Line-start.Line+1)
	} else {
		m.register = Register{Content: selectionText(m.lines, start, end, false)}
		m.message = "Yanked"
	}
	m.setMode(ModeNormal)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *VisualYankCommand) Keys() []string {
	return []string{"y"}
}

// Mode returns the visual mode this instance is registered in.
func (c *VisualYankCommand) Mode() Mode {
	return c.mode
}

// ID returns the hierarchical identifier for this command.
func (c *VisualYankCommand) ID() string {
	return "visual.yank"
}

// IsModeChange returns true: yanking leaves visual mode.
func (c *VisualYankCommand) IsModeChange() bool {
	return true
}

// ============================================================================
// Visual Mode Toggles
// ============================================================================

// VisualModeToggleVCommand: 'v' in visual mode returns to normal.
type VisualModeToggleVCommand struct {
	ModeEntryBase
}

func (c *VisualModeToggleVCommand) Execute(m *Model) ExecuteResult {
	m.setMode(ModeNormal)
	return Executed
}

func (c *VisualModeToggleVCommand) Keys() []string { return []string{"v"} }
func (c *VisualModeToggleVCommand) Mode() Mode     { return ModeVisual }
func (c *VisualModeToggleVCommand) ID() string     { return "visual.toggle_off" }

// VisualModeToggleShiftVCommand: 'V' in visual mode switches to linewise, keeping the anchor.
type VisualModeToggleShiftVCommand struct {
	ModeEntryBase
}

func (c *VisualModeToggleShiftVCommand) Execute(m *Model) ExecuteResult {
	m.setMode(ModeVisualLine)
	return Executed
}

func (c *VisualModeToggleShiftVCommand) Keys() []string { return []string{"V"} }
func (c *VisualModeToggleShiftVCommand) Mode() Mode     { return ModeVisual }
func (c *VisualModeToggleShiftVCommand) ID() string     { return "visual.to_line" }

// VisualLineModeToggleVCommand: 'v' in visual-line mode switches to characterwise.
type VisualLineModeToggleVCommand struct {
	ModeEntryBase
}

func (c *VisualLineModeToggleVCommand) Execute(m *Model) ExecuteResult {
	m.setMode(ModeVisual)
	return Executed
}

func (c *VisualLineModeToggleVCommand) Keys() []string { return []string{"v"} }
func (c *VisualLineModeToggleVCommand) Mode() Mode     { return ModeVisualLine }
func (c *VisualLineModeToggleVCommand) ID() string     { return "visual.to_char" }

// VisualLineModeToggleShiftVCommand: 'V' in visual-line mode returns to normal.
type VisualLineModeToggleShiftVCommand struct {
	ModeEntryBase
}

func (c *VisualLineModeToggleShiftVCommand) Execute(m *Model) ExecuteResult {
	m.setMode(ModeNormal)
	return Executed
}

func (c *VisualLineModeToggleShiftVCommand) Keys() []string { return []string{"V"} }
func (c *VisualLineModeToggleShiftVCommand) Mode() Mode     { return ModeVisualLine }
func (c *VisualLineModeToggleShiftVCommand) ID() string     { return "visual.line_toggle_off" }
