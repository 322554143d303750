package vim

import (
	"maps"
	"slices"
)

// ExecuteResult indicates the outcome of command execution.
type ExecuteResult int

const (
	// Executed means the command ran and consumed the key.
	Executed ExecuteResult = iota
	// PassThrough means the command chose not to handle the key (let the host handle it).
	PassThrough
	// Skipped means pre-conditions weren't met (e.g. x on an empty line). The key is consumed.
	Skipped
)

func (r ExecuteResult) String() string {
	switch r {
	case Executed:
		return "executed"
	case PassThrough:
		return "pass_through"
	case Skipped:
		return "skipped"
	}
	return "unknown"
}

// Command is one key-triggered engine operation.
//
// Undo is not a per-command concern: the engine records a snapshot of the buffer
// and cursor before every Executed command whose IsUndoable returns true.
type Command interface {
	// Execute applies the command to the model.
	Execute(m *Model) ExecuteResult

	// Keys returns the trigger key(s), e.g. []string{"x"} or []string{"d", "x"}.
	Keys() []string

	// Mode returns which mode this command is registered in.
	Mode() Mode

	// ID returns a hierarchical identifier such as "delete.char" or "move.down".
	ID() string

	// IsUndoable returns true if a pre-execution snapshot should be pushed to history.
	IsUndoable() bool

	// ChangesContent returns true if the command can modify the buffer.
	ChangesContent() bool

	// IsModeChange returns true if the command can change the mode.
	IsModeChange() bool
}

// ============================================================================
// Base structs for reducing boilerplate in Command implementations
// ============================================================================

// MotionBase: not undoable, no content change, no mode change.
type MotionBase struct{}

func (MotionBase) IsUndoable() bool     { return false }
func (MotionBase) ChangesContent() bool { return false }
func (MotionBase) IsModeChange() bool   { return false }

// DeleteBase: undoable, changes content, stays in the current mode.
type DeleteBase struct{}

func (DeleteBase) IsUndoable() bool     { return true }
func (DeleteBase) ChangesContent() bool { return true }
func (DeleteBase) IsModeChange() bool   { return false }

// ChangeBase: undoable, changes content, enters insert mode.
type ChangeBase struct{}

func (ChangeBase) IsUndoable() bool     { return true }
func (ChangeBase) ChangesContent() bool { return true }
func (ChangeBase) IsModeChange() bool   { return true }

// ModeEntryBase: not undoable, no content change, changes mode.
type ModeEntryBase struct{}

func (ModeEntryBase) IsUndoable() bool     { return false }
func (ModeEntryBase) ChangesContent() bool { return false }
func (ModeEntryBase) IsModeChange() bool   { return true }

// InsertEntryBase is for i, a, A and R. Entering the mode records a snapshot so the
// whole insert session undoes as a single unit.
type InsertEntryBase struct{}

func (InsertEntryBase) IsUndoable() bool     { return true }
func (InsertEntryBase) ChangesContent() bool { return false }
func (InsertEntryBase) IsModeChange() bool   { return true }

// InsertBase is for editing inside insert/replace mode. Typed text is covered by the
// snapshot taken on mode entry, so these are not undoable on their own.
type InsertBase struct{}

func (InsertBase) IsUndoable() bool     { return false }
func (InsertBase) ChangesContent() bool { return true }
func (InsertBase) IsModeChange() bool   { return false }

// HistoryBase is for undo and redo, which move between snapshots themselves.
type HistoryBase struct{}

func (HistoryBase) IsUndoable() bool     { return false }
func (HistoryBase) ChangesContent() bool { return true }
func (HistoryBase) IsModeChange() bool   { return false }

// ============================================================================
// CommandRegistry
// ============================================================================

// CommandRegistry provides mode-aware, key-based command dispatch.
type CommandRegistry struct {
	// commands maps Mode -> trigger key -> command
	commands map[Mode]map[string]Command
}

// NewCommandRegistry creates an empty command registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[Mode]map[string]Command),
	}
}

// Register adds a command under its Mode() for each of its Keys().
func (r *CommandRegistry) Register(cmd Command) {
	r.registerWithModeKeys(cmd.Mode(), cmd)
}

// Get retrieves a command for a specific mode and key.
func (r *CommandRegistry) Get(mode Mode, key string) (Command, bool) {
	if modeMap, ok := r.commands[mode]; ok {
		if cmd, ok := modeMap[key]; ok {
			return cmd, true
		}
	}
	return nil, false
}

// registerWithModeKeys adds a command under an explicit mode, registering all its Keys().
func (r *CommandRegistry) registerWithModeKeys(mode Mode, cmd Command) {
	if r.commands[mode] == nil {
		r.commands[mode] = make(map[string]Command)
	}
	for _, key := range cmd.Keys() {
		r.commands[mode][key] = cmd
	}
}

// ============================================================================
// PendingCommandRegistry - operator completion table
// ============================================================================

// PendingCommandRegistry maps (operator, completion key) to a command.
// The replace operator is not in the table: it accepts any single printable key.
type PendingCommandRegistry struct {
	commands map[Operator]map[string]Command
}

// NewPendingCommandRegistry creates an empty pending command registry.
func NewPendingCommandRegistry() *PendingCommandRegistry {
	return &PendingCommandRegistry{
		commands: make(map[Operator]map[string]Command),
	}
}

// Register adds a command for a specific operator and completion key.
func (r *PendingCommandRegistry) Register(op Operator, key string, cmd Command) {
	if r.commands[op] == nil {
		r.commands[op] = make(map[string]Command)
	}
	r.commands[op][key] = cmd
}

// Get retrieves the command completing op with key.
func (r *PendingCommandRegistry) Get(op Operator, key string) (Command, bool) {
	if opMap, ok := r.commands[op]; ok {
		if cmd, ok := opMap[key]; ok {
			return cmd, true
		}
	}
	return nil, false
}

// Completions returns the completion keys registered for op, sorted.
func (r *PendingCommandRegistry) Completions(op Operator) []string {
	return slices.Sorted(maps.Keys(r.commands[op]))
}

// ============================================================================
// Default Registries
// ============================================================================

// DefaultPendingRegistry holds the operator completion table.
var DefaultPendingRegistry = newDefaultPendingRegistry()

func newDefaultPendingRegistry() *PendingCommandRegistry {
	r := NewPendingCommandRegistry()

	r.Register(OpDelete, "d", &DeleteLineCommand{})
	r.Register(OpDelete, "w", &DeleteWordCommand{})
	r.Register(OpDelete, "$", &DeleteToEOLCommand{})

	r.Register(OpChange, "c", &ChangeLineCommand{})
	r.Register(OpChange, "w", &ChangeWordCommand{})
	r.Register(OpChange, "e", &ChangeWordCommand{})
	r.Register(OpChange, "$", &ChangeToEOLCommand{})

	r.Register(OpYank, "y", &YankLineCommand{})
	r.Register(OpYank, "w", &YankWordCommand{})

	r.Register(OpGoto, "g", &MoveToFirstLineCommand{})

	return r
}

// DefaultRegistry is the global command registry with all built-in commands registered.
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *CommandRegistry {
	r := NewCommandRegistry()

	// ============================================================================
	// Normal Mode Commands
	// ============================================================================

	// Motions
	r.Register(&MoveLeftCommand{})
	r.Register(&MoveRightCommand{})
	r.Register(&MoveDownCommand{})
	r.Register(&MoveUpCommand{})
	r.Register(&MoveWordForwardCommand{})
	r.Register(&MoveWordBackwardCommand{})
	r.Register(&MoveToLineStartCommand{})
	r.Register(&MoveToLineEndCommand{})
	r.Register(&MoveToLastLineCommand{})

	// Edits
	r.Register(&DeleteCharCommand{})
	r.Register(&PasteAfterCommand{})
	r.Register(&PasteBeforeCommand{})
	r.Register(&InsertLineBelowCommand{})
	r.Register(&InsertLineAboveCommand{})

	// Mode entry
	r.Register(&EnterInsertModeCommand{})
	r.Register(&EnterInsertModeAfterCommand{})
	r.Register(&EnterInsertModeAtEndCommand{})
	r.Register(&EnterReplaceModeCommand{})
	r.Register(&EnterVisualModeCommand{})
	r.Register(&EnterVisualLineModeCommand{})
	r.Register(&EnterCommandLineCommand{})
	r.Register(&EnterSearchCommand{forward: true})
	r.Register(&EnterSearchCommand{forward: false})

	// History, search, brackets
	r.Register(&UndoCommand{})
	r.Register(&RedoCommand{})
	r.Register(&FileInfoCommand{})
	r.Register(&SearchNextCommand{})
	r.Register(&SearchPrevCommand{})
	r.Register(&MatchBracketCommand{})

	// Operators
	r.Register(&StartPendingCommand{operator: OpDelete})
	r.Register(&StartPendingCommand{operator: OpChange})
	r.Register(&StartPendingCommand{operator: OpYank})
	r.Register(&StartPendingCommand{operator: OpReplace})
	r.Register(&StartPendingCommand{operator: OpGoto})

	// ============================================================================
	// Visual Mode Commands
	// ============================================================================

	for _, mode := range []Mode{ModeVisual, ModeVisualLine} {
		r.registerWithModeKeys(mode, &MoveLeftCommand{})
		r.registerWithModeKeys(mode, &MoveRightCommand{})
		r.registerWithModeKeys(mode, &MoveDownCommand{})
		r.registerWithModeKeys(mode, &MoveUpCommand{})
		r.registerWithModeKeys(mode, &MoveWordForwardCommand{})
		r.registerWithModeKeys(mode, &MoveWordBackwardCommand{})
		r.registerWithModeKeys(mode, &MoveToLineStartCommand{})
		r.registerWithModeKeys(mode, &MoveToLineEndCommand{})
		r.registerWithModeKeys(mode, &MoveToLastLineCommand{})

		r.registerWithModeKeys(mode, &VisualDeleteCommand{mode: mode}) // 'd', 'x'
		r.registerWithModeKeys(mode, &VisualYankCommand{mode: mode})   // 'y'
	}
	r.Register(&VisualModeToggleVCommand{})          // 'v' in ModeVisual -> Normal
	r.Register(&VisualModeToggleShiftVCommand{})     // 'V' in ModeVisual -> VisualLine
	r.Register(&VisualLineModeToggleVCommand{})      // 'v' in ModeVisualLine -> Visual
	r.Register(&VisualLineModeToggleShiftVCommand{}) // 'V' in ModeVisualLine -> Normal

	// ============================================================================
	// Command-Line Mode Commands
	// ============================================================================

	r.Register(&SubmitCommandLineCommand{})
	r.Register(&CommandLineBackspaceCommand{})

	// ============================================================================
	// Insert / Replace Mode Commands
	// ============================================================================

	r.registerWithModeKeys(ModeInsert, &BackspaceCommand{})
	r.registerWithModeKeys(ModeReplace, &BackspaceCommand{})
	r.Register(&SplitLineCommand{})
	r.Register(&ReplaceModeEnterCommand{})
	for _, mode := range []Mode{ModeInsert, ModeReplace} {
		r.registerWithModeKeys(mode, &ArrowLeftCommand{})
		r.registerWithModeKeys(mode, &ArrowRightCommand{})
		r.registerWithModeKeys(mode, &ArrowUpCommand{})
		r.registerWithModeKeys(mode, &ArrowDownCommand{})
	}

	return r
}
