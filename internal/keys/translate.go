package keys

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vimtutor/internal/vim"
)

var namedTeaKeys = map[tea.KeyType]string{
	tea.KeyEsc:       vim.KeyEscape,
	tea.KeyEnter:     vim.KeyEnter,
	tea.KeyBackspace: vim.KeyBackspace,
	tea.KeyTab:       vim.KeyTab,
	tea.KeyLeft:      vim.KeyArrowLeft,
	tea.KeyRight:     vim.KeyArrowRight,
	tea.KeyUp:        vim.KeyArrowUp,
	tea.KeyDown:      vim.KeyArrowDown,
}

// ToVim converts a terminal key event into editor keys. Pasted or batched
// runes become one key each. ok is false for keys the editor has no name for
// (function keys, page keys).
func ToVim(msg tea.KeyMsg) (out []vim.Key, ok bool) {
	if name, found := namedTeaKeys[msg.Type]; found {
		return []vim.Key{{Key: name, Meta: msg.Alt}}, true
	}

	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			out = append(out, vim.Key{Key: string(r), Meta: msg.Alt})
		}
		return out, len(out) > 0
	case tea.KeySpace:
		return []vim.Key{{Key: " ", Meta: msg.Alt}}, true
	case tea.KeyCtrlH:
		// Many terminals send ^H for backspace.
		return []vim.Key{{Key: vim.KeyBackspace}}, true
	}

	// ctrl+a … ctrl+z
	if name, found := strings.CutPrefix(msg.String(), "ctrl+"); found && len(name) == 1 {
		return []vim.Key{vim.Ctrl(rune(name[0]))}, true
	}
	return nil, false
}
