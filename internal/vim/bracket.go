package vim

const (
	msgNoBracket       = "No bracket under cursor"
	msgBracketNotFound = "Matching bracket not found"
)

var bracketPairs = map[rune]rune{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
}

func isOpeningBracket(r rune) bool {
	return r == '(' || r == '[' || r == '{'
}

// matchBracket finds the counterpart of the bracket at pos with a depth-counted scan,
// forward for openers and backward for closers. Only the same bracket kind counts
// toward depth.
func matchBracket(lines []string, pos Position) (Position, bool) {
	ch, ok := runeAt(lines[pos.Line], pos.Col)
	if !ok {
		return pos, false
	}
	target, ok := bracketPairs[ch]
	if !ok {
		return pos, false
	}
	depth := 1
	if isOpeningBracket(ch) {
		for l := pos.Line; l < len(lines); l++ {
			r := []rune(lines[l])
			start := 0
			if l == pos.Line {
				start = pos.Col + 1
			}
			for c := start; c < len(r); c++ {
				switch r[c] {
				case ch:
					depth++
				case target:
					depth--
				}
				if depth == 0 {
					return Position{Line: l, Col: c}, true
				}
			}
		}
		return pos, false
	}
	for l := pos.Line; l >= 0; l-- {
		r := []rune(lines[l])
		start := len(r) - 1
		if l == pos.Line {
			start = pos.Col - 1
		}
		for c := start; c >= 0; c-- {
			switch r[c] {
			case ch:
				depth++
			case target:
				depth--
			}
			if depth == 0 {
				return Position{Line: l, Col: c}, true
			}
		}
	}
	return pos, false
}

// MatchBracketCommand jumps to the bracket matching the one under the cursor (%).
type MatchBracketCommand struct {
	MotionBase
}

// Execute moves to the matching bracket or sets an error message.
func (c *MatchBracketCommand) Execute(m *Model) ExecuteResult {
	ch, ok := runeAt(m.currentLine(), m.cursor.Col)
	if _, isBracket := bracketPairs[ch]; !ok || !isBracket {
		m.message = msgNoBracket
		return Executed
	}
	pos, found := matchBracket(m.lines, m.cursor)
	if !found {
		m.message = msgBracketNotFound
		return Executed
	}
	m.cursor = pos
	return Executed
}

func (c *MatchBracketCommand) Keys() []string { return []string{"%"} }
func (c *MatchBracketCommand) Mode() Mode     { return ModeNormal }
func (c *MatchBracketCommand) ID() string     { return "move.match_bracket" }
