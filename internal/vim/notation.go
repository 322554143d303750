package vim

import (
	"fmt"
	"strings"
)

var notationNames = map[string]Key{
	"esc":       Named(KeyEscape),
	"escape":    Named(KeyEscape),
	"cr":        Named(KeyEnter),
	"enter":     Named(KeyEnter),
	"return":    Named(KeyEnter),
	"bs":        Named(KeyBackspace),
	"backspace": Named(KeyBackspace),
	"tab":       Named(KeyTab),
	"left":      Named(KeyArrowLeft),
	"right":     Named(KeyArrowRight),
	"up":        Named(KeyArrowUp),
	"down":      Named(KeyArrowDown),
	"lt":        Rune('<'),
	"space":     Rune(' '),
}

// ParseKeys parses vim key notation such as "dw<Esc>:s/a/b<CR>" into keys.
// Special keys are written <Esc>, <CR>, <BS>, <Tab>, <Left>, <Space>, <lt> and
// Ctrl chords as <C-r>. Names are case-insensitive.
func ParseKeys(s string) ([]Key, error) {
	var keys []Key
	for s != "" {
		if s[0] == '<' {
			end := strings.IndexByte(s, '>')
			if end > 1 {
				k, err := parseNotation(s[1:end])
				if err != nil {
					return nil, err
				}
				keys = append(keys, k)
				s = s[end+1:]
				continue
			}
		}
		r := []rune(s)[0]
		keys = append(keys, Rune(r))
		s = s[len(string(r)):]
	}
	return keys, nil
}

func parseNotation(name string) (Key, error) {
	lower := strings.ToLower(name)
	if k, ok := notationNames[lower]; ok {
		return k, nil
	}
	if rest, ok := strings.CutPrefix(lower, "c-"); ok && runeCount(rest) == 1 {
		return Ctrl([]rune(rest)[0]), nil
	}
	return Key{}, fmt.Errorf("unknown key notation <%s>", name)
}

// FormatKey renders k in the notation ParseKeys accepts.
func FormatKey(k Key) string {
	if k.Ctrl {
		return "<C-" + strings.ToLower(k.Key) + ">"
	}
	switch k.Key {
	case KeyEscape:
		return "<Esc>"
	case KeyEnter:
		return "<CR>"
	case KeyBackspace:
		return "<BS>"
	case KeyTab:
		return "<Tab>"
	case KeyArrowLeft:
		return "<Left>"
	case KeyArrowRight:
		return "<Right>"
	case KeyArrowUp:
		return "<Up>"
	case KeyArrowDown:
		return "<Down>"
	case "<":
		return "<lt>"
	}
	return k.Key
}
