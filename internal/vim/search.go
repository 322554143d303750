package vim

import "slices"

// Status messages emitted by search.
const (
	msgSearchWrapBottom = "search hit BOTTOM, continuing at TOP"
	msgSearchWrapTop    = "search hit TOP, continuing at BOTTOM"
	msgPatternNotFound  = "Pattern not found: "
)

// runeIndex returns the rune offset of the first occurrence of pat in line at or
// after from, or -1.
func runeIndex(line, pat []rune, from int) int {
	for i := max(from, 0); i+len(pat) <= len(line); i++ {
		if slices.Equal(line[i:i+len(pat)], pat) {
			return i
		}
	}
	return -1
}

// runeLastIndex returns the rune offset of the last occurrence of pat in line that
// starts at or before upTo, or -1.
func runeLastIndex(line, pat []rune, upTo int) int {
	for i := min(upTo, len(line)-len(pat)); i >= 0; i-- {
		if slices.Equal(line[i:i+len(pat)], pat) {
			return i
		}
	}
	return -1
}

// findForward looks for pattern after from, then wraps to the top of the buffer and
// scans up to and including from itself.
func findForward(lines []string, pattern string, from Position) (pos Position, wrapped, found bool) {
	pat := []rune(pattern)
	for l := from.Line; l < len(lines); l++ {
		start := 0
		if l == from.Line {
			start = from.Col + 1
		}
		if idx := runeIndex([]rune(lines[l]), pat, start); idx != -1 {
			return Position{Line: l, Col: idx}, false, true
		}
	}
	for l := 0; l <= from.Line; l++ {
		idx := runeIndex([]rune(lines[l]), pat, 0)
		if idx != -1 && (l != from.Line || idx <= from.Col) {
			return Position{Line: l, Col: idx}, true, true
		}
	}
	return from, false, false
}

// findBackward is the mirror of findForward.
func findBackward(lines []string, pattern string, from Position) (pos Position, wrapped, found bool) {
	pat := []rune(pattern)
	for l := from.Line; l >= 0; l-- {
		line := []rune(lines[l])
		upTo := len(line)
		if l == from.Line {
			upTo = from.Col - 1
		}
		if idx := runeLastIndex(line, pat, upTo); idx != -1 {
			return Position{Line: l, Col: idx}, false, true
		}
	}
	for l := len(lines) - 1; l >= from.Line; l-- {
		line := []rune(lines[l])
		idx := runeLastIndex(line, pat, len(line))
		if idx != -1 && (l != from.Line || idx >= from.Col) {
			return Position{Line: l, Col: idx}, true, true
		}
	}
	return from, false, false
}

// runSearch moves to the next match of pattern in the given direction and sets the
// status message. The cursor is unchanged when nothing matches.
func (m *Model) runSearch(pattern string, forward bool) {
	find, wrapMsg := findForward, msgSearchWrapBottom
	if !forward {
		find, wrapMsg = findBackward, msgSearchWrapTop
	}
	pos, wrapped, found := find(m.lines, pattern, m.cursor)
	switch {
	case !found:
		m.message = msgPatternNotFound + pattern
	case wrapped:
		m.cursor = pos
		m.message = wrapMsg
	default:
		m.cursor = pos
		m.message = ""
	}
	m.clamp()
}

// searchFor starts a new search and remembers it for n and N. Empty patterns are ignored.
func (m *Model) searchFor(pattern string, forward bool) {
	if pattern == "" {
		return
	}
	m.search = SearchState{Pattern: pattern, Forward: forward}
	m.runSearch(pattern, forward)
}

// SearchNextCommand repeats the last search in its direction (n).
type SearchNextCommand struct {
	MotionBase
}

// Execute repeats the last search. Skipped when nothing has been searched yet.
func (c *SearchNextCommand) Execute(m *Model) ExecuteResult {
	if m.search.Pattern == "" {
		return Skipped
	}
	m.runSearch(m.search.Pattern, m.search.Forward)
	return Executed
}

func (c *SearchNextCommand) Keys() []string { return []string{"n"} }
func (c *SearchNextCommand) Mode() Mode     { return ModeNormal }
func (c *SearchNextCommand) ID() string     { return "search.next" }

// SearchPrevCommand repeats the last search in the opposite direction (N).
type SearchPrevCommand struct {
	MotionBase
}

// Execute repeats the last search backwards. Skipped when nothing has been searched yet.
func (c *SearchPrevCommand) Execute(m *Model) ExecuteResult {
	if m.search.Pattern == "" {
		return Skipped
	}
	m.runSearch(m.search.Pattern, !m.search.Forward)
	return Executed
}

func (c *SearchPrevCommand) Keys() []string { return []string{"N"} }
func (c *SearchPrevCommand) Mode() Mode     { return ModeNormal }
func (c *SearchPrevCommand) ID() string     { return "search.prev" }
