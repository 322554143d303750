package lesson

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zjrosen/vimtutor/internal/vim"
)

// Verdict is the result of checking a buffer against a lesson.
type Verdict struct {
	Complete bool
	// Line is the 1-based buffer line of the first difference, 0 when there is none.
	Line int
	// Remaining counts target lines that are still missing or wrong.
	Remaining int
	// Hint describes the first difference, e.g. `line 2: remove "cc"`.
	Hint string
}

// Check compares the editor state with the lesson's completion conditions.
func Check(l Lesson, lines []string, cursor vim.Position) Verdict {
	if want := l.CompleteOn.CursorOn; want != "" {
		if cursor.Line >= 0 && cursor.Line < len(lines) {
			if r := []rune(lines[cursor.Line]); cursor.Col >= 0 && cursor.Col < len(r) && string(r[cursor.Col]) == want {
				return Verdict{Complete: true}
			}
		}
		if !l.HasTarget() {
			return Verdict{Hint: fmt.Sprintf("move the cursor onto %q", want)}
		}
	}
	if !l.HasTarget() {
		return Verdict{}
	}
	if slices.Equal(lines, l.Target) {
		return Verdict{Complete: true}
	}
	return diffVerdict(lines, l.Target)
}

// diffVerdict runs a line diff and describes the first hunk.
func diffVerdict(got, want []string) Verdict {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(joinLines(got), joinLines(want))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	v := Verdict{}
	line := 1
	for i, d := range diffs {
		n := strings.Count(d.Text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			line += n
			continue
		case diffmatchpatch.DiffInsert:
			v.Remaining += n
		case diffmatchpatch.DiffDelete:
			// Paired deletes are counted by their insert.
			if i+1 >= len(diffs) || diffs[i+1].Type != diffmatchpatch.DiffInsert {
				v.Remaining += n
			}
		}
		if v.Line == 0 {
			v.Line = line
			v.Hint = describe(diffs, i, line)
		}
		if d.Type == diffmatchpatch.DiffDelete {
			line += n
		}
	}
	return v
}

func describe(diffs []diffmatchpatch.Diff, i, line int) string {
	d := diffs[i]
	first := firstLine(d.Text)
	switch d.Type {
	case diffmatchpatch.DiffInsert:
		return fmt.Sprintf("line %d: missing line %q", line, first)
	case diffmatchpatch.DiffDelete:
		if i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
			return fmt.Sprintf("line %d: %s", line, describeEdit(first, firstLine(diffs[i+1].Text)))
		}
		return fmt.Sprintf("line %d: delete this line", line)
	}
	return ""
}

// describeEdit names the first character-level change turning got into want.
func describeEdit(got, want string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(got, want, false))
	for i, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			if i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
				return fmt.Sprintf("change %q to %q", d.Text, diffs[i+1].Text)
			}
			return fmt.Sprintf("remove %q", d.Text)
		case diffmatchpatch.DiffInsert:
			return fmt.Sprintf("add %q", d.Text)
		}
	}
	return "line differs"
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n") + "\n"
}

func firstLine(s string) string {
	first, _, _ := strings.Cut(s, "\n")
	return first
}
