package vim

import (
	"slices"
	"strings"
)

// Register holds the most recent yank or delete.
// Linewise content is spliced as whole lines. Characterwise content is spliced
// inline; it has more than one fragment only when a visual selection spanned lines.
type Register struct {
	Content  []string
	Linewise bool
}

// IsEmpty reports whether nothing has been yanked or deleted yet.
func (r Register) IsEmpty() bool {
	return len(r.Content) == 0
}

// Text returns the register content joined with newlines.
func (r Register) Text() string {
	return strings.Join(r.Content, "\n")
}

func linewiseRegister(lines []string) Register {
	return Register{Content: slices.Clone(lines), Linewise: true}
}

func charwiseRegister(text string) Register {
	return Register{Content: []string{text}}
}
