package vim

import (
	"strings"
	"unicode"
)

// Names of the non-printable keys the engine understands. They follow the DOM
// KeyboardEvent.key naming so hosts can forward key names unchanged.
const (
	KeyEscape     = "Escape"
	KeyEnter      = "Enter"
	KeyBackspace  = "Backspace"
	KeyTab        = "Tab"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
)

// Key is a single key event delivered by the host.
type Key struct {
	Key  string // a single character, or one of the Key* names
	Ctrl bool
	Meta bool
}

// Rune returns a Key for a printable character.
func Rune(r rune) Key {
	return Key{Key: string(r)}
}

// Ctrl returns a Key for Ctrl plus a character.
func Ctrl(r rune) Key {
	return Key{Key: string(r), Ctrl: true}
}

// Named returns a Key for a named key such as KeyEscape.
func Named(name string) Key {
	return Key{Key: name}
}

// Keys converts a plain string into one Key per rune.
func Keys(s string) []Key {
	out := make([]Key, 0, len(s))
	for _, r := range s {
		out = append(out, Rune(r))
	}
	return out
}

var namedKeys = map[string]string{
	KeyEscape:     "<escape>",
	KeyEnter:      "<enter>",
	KeyBackspace:  "<backspace>",
	KeyTab:        "<tab>",
	KeyArrowLeft:  "<left>",
	KeyArrowRight: "<right>",
	KeyArrowUp:    "<up>",
	KeyArrowDown:  "<down>",
}

// keyToString converts a Key to a registry-compatible key string.
// Returns empty string for keys the engine never handles (Meta chords, unknown names).
func keyToString(k Key) string {
	if k.Meta {
		return ""
	}
	if k.Ctrl {
		if runeCount(k.Key) != 1 {
			return ""
		}
		return "<ctrl+" + strings.ToLower(k.Key) + ">"
	}
	if name, ok := namedKeys[k.Key]; ok {
		return name
	}
	if runeCount(k.Key) == 1 {
		return k.Key
	}
	return ""
}

// printable returns the character a key types, if it types one.
func (k Key) printable() (rune, bool) {
	if k.Ctrl || k.Meta {
		return 0, false
	}
	r := []rune(k.Key)
	if len(r) != 1 || !unicode.IsPrint(r[0]) {
		return 0, false
	}
	return r[0], true
}

func runeCount(s string) int {
	return len([]rune(s))
}
