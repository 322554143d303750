package vim

// ============================================================================
// Motion Commands
// ============================================================================
//
// Motions multiply by the count and clamp once at the end, so "5l" on a short
// line stops on the last character instead of failing.

// MoveLeftCommand moves the cursor left (h).
type MoveLeftCommand struct {
	MotionBase
}

// Execute moves the cursor count characters to the left.
func (c *MoveLeftCommand) Execute(m *Model) ExecuteResult {
	m.moveCursor(0, -1, m.countOrOne())
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveLeftCommand) Keys() []string {
	return []string{"h", "<left>"}
}

// Mode returns the mode this command operates in.
func (c *MoveLeftCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveLeftCommand) ID() string {
	return "move.left"
}

// MoveRightCommand moves the cursor right (l).
type MoveRightCommand struct {
	MotionBase
}

// Execute moves the cursor count characters to the right.
func (c *MoveRightCommand) Execute(m *Model) ExecuteResult {
	m.moveCursor(0, 1, m.countOrOne())
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveRightCommand) Keys() []string {
	return []string{"l", "<right>"}
}

// Mode returns the mode this command operates in.
func (c *MoveRightCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveRightCommand) ID() string {
	return "move.right"
}

// MoveDownCommand moves the cursor down (j), keeping the column where possible.
type MoveDownCommand struct {
	MotionBase
}

// Execute moves the cursor count lines down.
func (c *MoveDownCommand) Execute(m *Model) ExecuteResult {
	m.moveCursor(1, 0, m.countOrOne())
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveDownCommand) Keys() []string {
	return []string{"j", "<down>"}
}

// Mode returns the mode this command operates in.
func (c *MoveDownCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveDownCommand) ID() string {
	return "move.down"
}

// MoveUpCommand moves the cursor up (k).
type MoveUpCommand struct {
	MotionBase
}

// Execute moves the cursor count lines up.
func (c *MoveUpCommand) Execute(m *Model) ExecuteResult {
	m.moveCursor(-1, 0, m.countOrOne())
	return Executed
}

// Keys returns the trigger keys for this command.
func (c *MoveUpCommand) Keys() []string {
	return []string{"k", "<up>"}
}

// Mode returns the mode this command operates in.
func (c *MoveUpCommand) Mode() Mode {
	return ModeNormal
}

// ID returns the hierarchical identifier for this command.
func (c *MoveUpCommand) ID() string {
	return "move.up"
}

// MoveWordForwardCommand moves to the start of the next word (w).
type MoveWordForwardCommand struct {
	MotionBase
}

// Execute applies the w motion count times, crossing lines when a line is exhausted.
func (c *MoveWordForwardCommand) Execute(m *Model) ExecuteResult {
	pos := m.cursor
	for range m.countOrOne() {
		next := wordForward(m.lines, pos)
		if next == pos {
			break
		}
		pos = next
	}
	m.cursor = pos
	m.clamp()
	return Executed
}

func (c *MoveWordForwardCommand) Keys() []string { return []string{"w"} }
func (c *MoveWordForwardCommand) Mode() Mode     { return ModeNormal }
func (c *MoveWordForwardCommand) ID() string     { return "move.word_forward" }

// MoveWordBackwardCommand moves to the start of the previous word (b).
type MoveWordBackwardCommand struct {
	MotionBase
}

// Execute applies the b motion count times.
func (c *MoveWordBackwardCommand) Execute(m *Model) ExecuteResult {
	pos := m.cursor
	for range m.countOrOne() {
		next := wordBackward(m.lines, pos)
		if next == pos {
			break
		}
		pos = next
	}
	m.cursor = pos
	m.clamp()
	return Executed
}

func (c *MoveWordBackwardCommand) Keys() []string { return []string{"b"} }
func (c *MoveWordBackwardCommand) Mode() Mode     { return ModeNormal }
func (c *MoveWordBackwardCommand) ID() string     { return "move.word_backward" }

// MoveToLineStartCommand moves to column 0 (0).
type MoveToLineStartCommand struct {
	MotionBase
}

// Execute moves the cursor to the start of the line.
func (c *MoveToLineStartCommand) Execute(m *Model) ExecuteResult {
	m.cursor.Col = 0
	return Executed
}

func (c *MoveToLineStartCommand) Keys() []string { return []string{"0"} }
func (c *MoveToLineStartCommand) Mode() Mode     { return ModeNormal }
func (c *MoveToLineStartCommand) ID() string     { return "move.line_start" }

// MoveToLineEndCommand moves to the last character of the line ($).
type MoveToLineEndCommand struct {
	MotionBase
}

// Execute moves the cursor to the last character of the line.
func (c *MoveToLineEndCommand) Execute(m *Model) ExecuteResult {
	m.cursor.Col = max(0, runeLen(m.currentLine())-1)
	return Executed
}

func (c *MoveToLineEndCommand) Keys() []string { return []string{"$"} }
func (c *MoveToLineEndCommand) Mode() Mode     { return ModeNormal }
func (c *MoveToLineEndCommand) ID() string     { return "move.line_end" }

// MoveToFirstLineCommand moves to the first line, column 0 (gg).
type MoveToFirstLineCommand struct {
	MotionBase
}

// Execute moves the cursor to the start of the buffer.
func (c *MoveToFirstLineCommand) Execute(m *Model) ExecuteResult {
	m.cursor = Position{}
	return Executed
}

func (c *MoveToFirstLineCommand) Keys() []string { return []string{"gg"} }
func (c *MoveToFirstLineCommand) Mode() Mode     { return ModeNormal }
func (c *MoveToFirstLineCommand) ID() string     { return "move.first_line" }

// MoveToLastLineCommand moves to the last line (G) or, with a count, to line <count> (<n>G).
type MoveToLastLineCommand struct {
	MotionBase
}

// Execute moves to the target line, column 0. Line numbers are 1-based and clamped.
func (c *MoveToLastLineCommand) Execute(m *Model) ExecuteResult {
	line := len(m.lines) - 1
	if m.count != "" {
		line = max(0, min(m.countOrOne()-1, len(m.lines)-1))
	}
	m.cursor = Position{Line: line}
	return Executed
}

func (c *MoveToLastLineCommand) Keys() []string { return []string{"G"} }
func (c *MoveToLastLineCommand) Mode() Mode     { return ModeNormal }
func (c *MoveToLastLineCommand) ID() string     { return "move.last_line" }

// ============================================================================
// Insert-mode arrows
// ============================================================================
//
// Arrow keys inside insert/replace move without leaving the mode and may reach the
// position one past the end of the line.

// ArrowLeftCommand moves left one character in insert-family modes.
type ArrowLeftCommand struct {
	MotionBase
}

func (c *ArrowLeftCommand) Execute(m *Model) ExecuteResult {
	m.moveCursor(0, -1, 1)
	return Executed
}

func (c *ArrowLeftCommand) Keys() []string { return []string{"<left>"} }
func (c *ArrowLeftCommand) Mode() Mode     { return ModeInsert }
func (c *ArrowLeftCommand) ID() string     { return "insert.arrow_left" }

// ArrowRightCommand moves right one character in insert-family modes.
type ArrowRightCommand struct {
	MotionBase
}

func (c *ArrowRightCommand) Execute(m *Model) ExecuteResult {
	m.moveCursor(0, 1, 1)
	return Executed
}

func (c *ArrowRightCommand) Keys() []string { return []string{"<right>"} }
func (c *ArrowRightCommand) Mode() Mode     { return ModeInsert }
func (c *ArrowRightCommand) ID() string     { return "insert.arrow_right" }

// ArrowUpCommand moves up one line in insert-family modes.
type ArrowUpCommand struct {
	MotionBase
}

func (c *ArrowUpCommand) Execute(m *Model) ExecuteResult {
	m.moveCursor(-1, 0, 1)
	return Executed
}

func (c *ArrowUpCommand) Keys() []string { return []string{"<up>"} }
func (c *ArrowUpCommand) Mode() Mode     { return ModeInsert }
func (c *ArrowUpCommand) ID() string     { return "insert.arrow_up" }

// ArrowDownCommand moves down one line in insert-family modes.
type ArrowDownCommand struct {
	MotionBase
}

func (c *ArrowDownCommand) Execute(m *Model) ExecuteResult {
	m.moveCursor(1, 0, 1)
	return Executed
}

func (c *ArrowDownCommand) Keys() []string { return []string{"<down>"} }
func (c *ArrowDownCommand) Mode() Mode     { return ModeInsert }
func (c *ArrowDownCommand) ID() string     { return "insert.arrow_down" }
