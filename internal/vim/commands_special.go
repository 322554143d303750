package vim

import (
	"fmt"
	"math"
)

// ============================================================================
// Operator Commands
// ============================================================================

// StartPendingCommand stores an operator and waits for its completion key
// (d, c, y, r, g). The count typed so far is kept.
type StartPendingCommand struct {
	MotionBase
	operator Operator
}

// Execute sets the pending operator.
func (c *StartPendingCommand) Execute(m *Model) ExecuteResult {
	m.pending = c.operator
	return Executed
}

// Keys returns the operator key.
func (c *StartPendingCommand) Keys() []string {
	return []string{c.operator.String()}
}

// Mode returns the mode this command operates in.
func (c *StartPendingCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *StartPendingCommand) ID() string {
	return "pending." + c.operator.String()
}

// ============================================================================
// Undo / Redo
// ============================================================================

// UndoCommand restores the snapshot taken before the last edit (u).
type UndoCommand struct {
	HistoryBase
}

// Execute undoes one edit, or reports that there is nothing to undo.
func (c *UndoCommand) Execute(m *Model) ExecuteResult {
	s, ok := m.history.Undo(m.snapshot())
	if !ok {
		m.message = "Already at oldest change"
		return Skipped
	}
	m.restore(s)
	m.message = "Undo"
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *UndoCommand) Keys() []string {
	return []string{"u"}
}

// Mode returns the mode this command operates in.
func (c *UndoCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *UndoCommand) ID() string {
	return "undo"
}

// RedoCommand re-applies the last undone edit (Ctrl-r).
type RedoCommand struct {
	HistoryBase
}

// Execute redoes one edit, or reports that there is nothing to redo.
func (c *RedoCommand) Execute(m *Model) ExecuteResult {
	s, ok := m.history.Redo(m.snapshot())
	if !ok {
		m.message = "Already at newest change"
		return Skipped
	}
	m.restore(s)
	m.message = "Redo"
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *RedoCommand) Keys() []string {
	return []string{"<ctrl+r>"}
}

// Mode returns the mode this command operates in.
func (c *RedoCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *RedoCommand) ID() string {
	return "redo"
}

// restore replaces buffer and cursor with a snapshot.
func (m *Model) restore(s Snapshot) {
	m.setLines(s.Lines)
	m.cursor = s.Cursor
	m.clamp()
}

// ============================================================================
// File info
// ============================================================================

// FileInfoCommand shows the file name and cursor line position (Ctrl-g).
type FileInfoCommand struct {
	MotionBase
}

// Execute sets a message like `"lesson.txt" line 2 of 4 --50%--`.
func (c *FileInfoCommand) Execute(m *Model) ExecuteResult {
	line := m.cursor.Line + 1
	total := len(m.lines)
	percent := int(math.Round(float64(line) / float64(total) * 100))
	m.message = fmt.Sprintf("%q line %d of %d --%d%%--", m.opts.fileName, line, total, percent)
	return Executed
}

func (c *FileInfoCommand) Keys() []string { return []string{"<ctrl+g>"} }
func (c *FileInfoCommand) Mode() Mode     { return ModeNormal }
func (c *FileInfoCommand) ID() string     { return "file.info" }
