package vim

import "fmt"

// ============================================================================
// Yank Commands
// ============================================================================
//
// Yanks copy into the register without touching the buffer, so they are not
// recorded in history.

// YankLineCommand yanks count lines starting at the cursor line (yy).
type YankLineCommand struct {
	MotionBase
}

// Execute copies min(count, remaining) lines into a linewise register.
func (c *YankLineCommand) Execute(m *Model) ExecuteResult {
	start := m.cursor.Line
	n := min(m.countOrOne(), len(m.lines)-start)
	m.register = linewiseRegister(m.lines[start : start+n])
	m.message = fmt.Sprintf("%d line(s) yanked", n)
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *YankLineCommand) Keys() []string {
	return []string{"yy"}
}

// Mode returns the mode this command operates in.
func (c *YankLineCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *YankLineCommand) ID() string {
	return "yank.line"
}

// YankWordCommand yanks count words and their trailing whitespace (yw).
type YankWordCommand struct {
	MotionBase
}

// Execute copies from the cursor to the end of the counted word span.
func (c *YankWordCommand) Execute(m *Model) ExecuteResult {
	line := m.currentLine()
	col := m.cursor.Col
	end := col
	for range m.countOrOne() {
		next := wordSpanEnd(line, end)
		if next == end {
			break
		}
		end = next
	}
	if end == col {
		return Skipped
	}
	m.register = charwiseRegister(runeSlice(line, col, end))
	m.message = "Yanked"
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *YankWordCommand) Keys() []string {
	return []string{"yw"}
}

// Mode returns the mode this command operates in.
func (c *YankWordCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *YankWordCommand) ID() string {
	return "yank.word"
}
