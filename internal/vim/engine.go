package vim

import (
	"slices"
	"time"

	"github.com/zjrosen/vimtutor/internal/log"
)

// Result describes the outcome of one key event.
type Result struct {
	// Handled is false when the engine ignored the key and the host may process it.
	Handled bool
	// Command is a finished command line the engine did not act on (e.g. "next", "w").
	Command string
	// Changed is true when this key altered the buffer contents.
	Changed bool
	// ModeChanged is true when this key switched modes.
	ModeChanged bool
}

// State is a read-only view of the engine for presentation.
type State struct {
	Mode          Mode
	Lines         []string
	Cursor        Position
	CommandBuffer string
	Message       string
}

// SearchState is the last search pattern and its direction.
type SearchState struct {
	Pattern string
	Forward bool
}

// Option configures a Model.
type Option func(*options)

type options struct {
	clock    func() time.Time
	fileName string
}

// WithClock sets the clock used by :!date. Defaults to time.Now.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithFileName sets the file name reported by Ctrl-g. Defaults to "lesson.txt".
func WithFileName(name string) Option {
	return func(o *options) {
		o.fileName = name
	}
}

// Model holds the full engine state. The zero value is not usable; call New.
type Model struct {
	opts options

	// Content state
	lines  []string // never empty, never written in place
	cursor Position

	// Modal state
	mode     Mode
	pending  Operator
	count    string // digits typed before a motion or operator
	anchor   Position
	anchored bool
	cmdline  string
	message  string

	register Register
	history  History
	search   SearchState

	// Per-key flags, set by executeCommand from the command's metadata.
	dirty       bool
	modeChanged bool
	// hostCommand carries an unhandled command line out of the submit command.
	hostCommand string
}

// New creates an engine over lines. An empty slice is treated as one empty line.
func New(lines []string, opts ...Option) Model {
	o := options{clock: time.Now, fileName: "lesson.txt"}
	for _, opt := range opts {
		opt(&o)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return Model{
		opts:   o,
		lines:  slices.Clone(lines),
		mode:   ModeNormal,
		search: SearchState{Forward: true},
	}
}

// Reset returns a fresh engine over lines with the same options.
// Register, history and search state are discarded.
func (m Model) Reset(lines []string) Model {
	fresh := New(lines)
	fresh.opts = m.opts
	return fresh
}

// ============================================================================
// Accessors
// ============================================================================

// Mode returns the current mode.
func (m Model) Mode() Mode { return m.mode }

// Lines returns a copy of the buffer.
func (m Model) Lines() []string { return slices.Clone(m.lines) }

// LineCount returns the number of lines in the buffer.
func (m Model) LineCount() int { return len(m.lines) }

// Line returns line i, or "" when out of range.
func (m Model) Line(i int) string {
	if i < 0 || i >= len(m.lines) {
		return ""
	}
	return m.lines[i]
}

// Cursor returns the cursor position.
func (m Model) Cursor() Position { return m.cursor }

// CommandBuffer returns the command line being typed, including its leading '/' or '?'.
func (m Model) CommandBuffer() string { return m.cmdline }

// Message returns the status message.
func (m Model) Message() string { return m.message }

// PendingOperator returns the operator awaiting completion, or OpNone.
func (m Model) PendingOperator() Operator { return m.pending }

// PendingCount returns the typed count digits.
func (m Model) PendingCount() string { return m.count }

// PendingCompletions returns the keys that complete the pending operator. It is
// empty when nothing is pending and for r, which takes any printable key.
func (m Model) PendingCompletions() []string {
	if m.pending == OpNone {
		return nil
	}
	return DefaultPendingRegistry.Completions(m.pending)
}

// Register returns the yank/delete register.
func (m Model) Register() Register { return m.register }

// VisualAnchor returns the selection anchor and whether one is active.
func (m Model) VisualAnchor() (Position, bool) { return m.anchor, m.anchored }

// SearchState returns the last search.
func (m Model) SearchState() SearchState { return m.search }

// CanUndo returns true if there is a snapshot to undo.
func (m Model) CanUndo() bool { return m.history.CanUndo() }

// CanRedo returns true if there is a snapshot to redo.
func (m Model) CanRedo() bool { return m.history.CanRedo() }

// State returns a presentation snapshot of the engine.
func (m Model) State() State {
	return State{
		Mode:          m.mode,
		Lines:         m.Lines(),
		Cursor:        m.cursor,
		CommandBuffer: m.cmdline,
		Message:       m.message,
	}
}

// Selection returns the normalized visual selection. ok is false outside visual modes.
// For visual-line mode the columns span whole lines.
func (m Model) Selection() (start, end Position, ok bool) {
	if !m.mode.IsVisual() || !m.anchored {
		return Position{}, Position{}, false
	}
	start, end = orderPositions(m.anchor, m.cursor)
	if m.mode == ModeVisualLine {
		start.Col = 0
		end.Col = max(0, runeLen(m.lines[end.Line])-1)
	}
	return start, end, true
}

// ============================================================================
// Reducer
// ============================================================================

// HandleKey applies one key event and returns the next state. m is not modified.
func (m Model) HandleKey(k Key) (Model, Result) {
	m.dirty, m.modeChanged = false, false

	var res Result
	if k.Key == KeyEscape {
		m.escape()
		res = Result{Handled: true}
	} else {
		switch m.mode {
		case ModeNormal:
			res = m.handleNormalKey(k)
		case ModeInsert, ModeReplace:
			res = m.handleInsertKey(k)
		case ModeVisual, ModeVisualLine:
			res = m.handleVisualKey(k)
		case ModeCommand:
			res = m.handleCommandKey(k)
		}
	}

	res.Changed = m.dirty
	res.ModeChanged = m.modeChanged
	m.dirty, m.modeChanged = false, false
	return m, res
}

// Apply feeds keys through HandleKey and returns the final state with the result of
// each key.
func (m Model) Apply(keys ...Key) (Model, []Result) {
	results := make([]Result, 0, len(keys))
	for _, k := range keys {
		var r Result
		m, r = m.HandleKey(k)
		results = append(results, r)
	}
	return m, results
}

func (m *Model) escape() {
	prev := m.mode
	m.setMode(ModeNormal)
	m.modeChanged = prev != ModeNormal
	m.cmdline = ""
	m.anchored = false
}

func (m *Model) handleNormalKey(k Key) Result {
	keyStr := keyToString(k)
	if keyStr == "" {
		m.cancelPending()
		return Result{}
	}

	// A Ctrl chord never completes an operator: it cancels it, then runs.
	if k.Ctrl {
		m.cancelPending()
		cmd, ok := DefaultRegistry.Get(ModeNormal, keyStr)
		if !ok {
			return Result{}
		}
		return m.executeAndRespond(cmd)
	}

	// r takes any character, digits included.
	if m.pending == OpReplace {
		return m.handleReplacePending(k)
	}

	if isCountDigit(keyStr, m.count) {
		m.count += keyStr
		return Result{Handled: true}
	}

	if m.pending != OpNone {
		return m.handlePending(keyStr)
	}

	cmd, ok := DefaultRegistry.Get(ModeNormal, keyStr)
	if !ok {
		m.count = ""
		return Result{}
	}
	return m.executeAndRespond(cmd)
}

// cancelPending drops a pending operator together with its count.
func (m *Model) cancelPending() {
	if m.pending != OpNone {
		m.pending = OpNone
		m.count = ""
	}
}

// handlePending completes the pending operator with keyStr. Unmatched keys cancel
// the operator and count without feedback.
func (m *Model) handlePending(keyStr string) Result {
	op := m.pending
	cmd, ok := DefaultPendingRegistry.Get(op, keyStr)
	if !ok {
		m.cancelPending()
		return Result{Handled: true}
	}
	res := m.executeAndRespond(cmd)
	m.pending = OpNone
	return res
}

func (m *Model) handleReplacePending(k Key) Result {
	r, ok := k.printable()
	if !ok {
		m.cancelPending()
		return Result{Handled: true}
	}
	res := m.executeAndRespond(&ReplaceCharCommand{newChar: r})
	m.pending = OpNone
	return res
}

func (m *Model) handleVisualKey(k Key) Result {
	keyStr := keyToString(k)
	if keyStr == "" {
		return Result{}
	}
	if !k.Ctrl && isCountDigit(keyStr, m.count) {
		m.count += keyStr
		return Result{Handled: true}
	}
	if cmd, ok := DefaultRegistry.Get(m.mode, keyStr); ok {
		return m.executeAndRespond(cmd)
	}
	// Everything else is swallowed while selecting.
	m.count = ""
	return Result{Handled: true}
}

func (m *Model) handleInsertKey(k Key) Result {
	keyStr := keyToString(k)
	if keyStr == "" {
		return Result{}
	}
	if cmd, ok := DefaultRegistry.Get(m.mode, keyStr); ok {
		return m.executeAndRespond(cmd)
	}
	r, ok := k.printable()
	if !ok {
		return Result{}
	}
	if m.mode == ModeReplace {
		return m.executeAndRespond(&ReplaceModeCharCommand{newChar: r})
	}
	return m.executeAndRespond(&InsertTextCommand{text: string(r)})
}

// executeAndRespond executes a command and resets the count unless the command
// starts an operator.
func (m *Model) executeAndRespond(cmd Command) Result {
	_, startsOperator := cmd.(*StartPendingCommand)
	result := m.executeCommand(cmd)
	if !startsOperator {
		m.count = ""
	}
	if result == PassThrough {
		return Result{}
	}
	return Result{Handled: true}
}

// executeCommand runs a command. When it executed, its metadata decides what is
// recorded: a pre-execution snapshot for undoable commands, the buffer-changed
// flag for content commands and the mode-changed flag for mode commands.
func (m *Model) executeCommand(cmd Command) ExecuteResult {
	before := m.snapshot()
	prevMode := m.mode
	result := cmd.Execute(m)
	log.Debug(log.CatEngine, "command", "id", cmd.ID(), "result", result)
	if result != Executed {
		return result
	}
	if cmd.IsUndoable() {
		m.history.Push(before)
	}
	if cmd.ChangesContent() && !slices.Equal(before.Lines, m.lines) {
		m.dirty = true
	}
	if cmd.IsModeChange() && m.mode != prevMode {
		m.modeChanged = true
	}
	return Executed
}

// ============================================================================
// State helpers used by commands
// ============================================================================

func (m *Model) snapshot() Snapshot {
	return Snapshot{Lines: m.lines, Cursor: m.cursor}
}

// setLines replaces the buffer. lines must be a freshly built slice.
func (m *Model) setLines(lines []string) {
	if len(lines) == 0 {
		lines = []string{""}
	}
	m.lines = lines
}

// currentLine returns the text of the cursor line.
func (m *Model) currentLine() string {
	return m.lines[m.cursor.Line]
}

// countOrOne returns the numeric prefix, 1 when none was typed.
func (m *Model) countOrOne() int {
	return countValue(m.count)
}

// clamp applies the cursor bounds for the current mode.
func (m *Model) clamp() {
	if m.mode.IsInsertFamily() {
		m.cursor = clampInsertCursor(m.cursor, m.lines)
		return
	}
	m.cursor = clampCursor(m.cursor, m.lines)
}

// moveCursor moves by count steps of (dLine, dCol) in one jump and clamps.
func (m *Model) moveCursor(dLine, dCol, count int) {
	m.cursor = Position{
		Line: m.cursor.Line + dLine*count,
		Col:  m.cursor.Col + dCol*count,
	}
	m.clamp()
}

// setMode switches mode. Leaving insert/replace for normal steps the cursor back
// onto the last typed character. Pending operator and count are always cleared.
func (m *Model) setMode(mode Mode) {
	if m.mode.IsInsertFamily() && mode == ModeNormal && m.cursor.Col > 0 {
		m.cursor.Col--
	}
	m.mode = mode
	m.cmdline = ""
	if mode == ModeNormal {
		m.anchored = false
	}
	m.pending = OpNone
	m.count = ""
	m.clamp()
}
