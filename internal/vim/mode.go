// Package vim implements a modal, vim-like editing engine over an in-memory line buffer.
//
// The engine is a pure reducer: Model.HandleKey takes one key event and returns the next
// Model together with a Result describing what happened. A Model value is never modified
// after it has been returned, so hosts can keep old values around (for replay, diffing or
// rendering) without copying.
package vim

// Mode represents the current editing mode.
type Mode int

const (
	// ModeNormal is the initial mode, used for motions and operators.
	ModeNormal Mode = iota
	// ModeInsert inserts typed characters at the cursor.
	ModeInsert
	// ModeReplace overwrites characters under the cursor.
	ModeReplace
	// ModeVisual is character-wise visual selection.
	ModeVisual
	// ModeVisualLine is line-wise visual selection.
	ModeVisualLine
	// ModeCommand accumulates a command line started with ':', '/' or '?'.
	ModeCommand
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeReplace:
		return "REPLACE"
	case ModeVisual:
		return "VISUAL"
	case ModeVisualLine:
		return "VISUAL LINE"
	case ModeCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// IsInsertFamily reports whether the cursor may sit one past the end of the line.
func (m Mode) IsInsertFamily() bool {
	return m == ModeInsert || m == ModeReplace
}

// IsVisual reports whether a selection anchor is active in this mode.
func (m Mode) IsVisual() bool {
	return m == ModeVisual || m == ModeVisualLine
}

// Operator is a pending operator awaiting its completion key.
type Operator rune

const (
	OpNone    Operator = 0
	OpDelete  Operator = 'd'
	OpChange  Operator = 'c'
	OpYank    Operator = 'y'
	OpReplace Operator = 'r'
	OpGoto    Operator = 'g'
)

// String returns the key that starts the operator, or "" for OpNone.
func (o Operator) String() string {
	if o == OpNone {
		return ""
	}
	return string(rune(o))
}
