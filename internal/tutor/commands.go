package tutor

import (
	"fmt"
	"strings"

	"github.com/zjrosen/vimtutor/internal/log"
)

// Messages shown on the status line for tutor commands.
const (
	MsgCantQuit     = "Can't quit the tutor! Use :q! to leave"
	MsgSaved        = "Changes saved! (simulated)"
	MsgNotCommand   = "Not an editor command: "
	MsgLastLesson   = "This is the last lesson"
	MsgFirstLesson  = "This is the first lesson"
	MsgLessonReset  = "Lesson reset"
	MsgNoHint       = "No hints for this lesson"
	MsgLessonNeeded = "Usage: :lesson <id>"
)

// runCommand handles a command line the editor passed up. Caller holds t.mu.
func (t *Tutor) runCommand(cmd string, out *Outcome) {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return
	}
	name := fields[0]

	completedHere := false
	if !t.complete && t.current.CompletesOnCommand(cmd) {
		t.finish(out)
		completedHere = true
	}

	switch name {
	case "next", "n":
		t.navigate(out, 1)
	case "prev", "p":
		t.navigate(out, -1)
	case "reset", "r":
		t.changeLesson(out, t.restart())
		t.message = MsgLessonReset
	case "hint":
		t.message = t.nextHint()
	case "lesson":
		if len(fields) < 2 {
			t.message = MsgLessonNeeded
			return
		}
		if _, err := t.catalog.Get(fields[1]); err != nil {
			t.message = fmt.Sprintf("No lesson %s", fields[1])
			return
		}
		t.changeLesson(out, t.open(fields[1]))
	case "q", "quit":
		t.message = MsgCantQuit
	case "q!", "qa", "qa!", "quit!", "qall", "qall!":
		out.Action = ActionQuit
	default:
		switch {
		case strings.HasPrefix(name, "w"):
			t.message = MsgSaved
		case !completedHere:
			t.message = MsgNotCommand + cmd
			log.Debug(log.CatEngine, "Unknown command", "cmd", cmd)
		}
	}
}

func (t *Tutor) navigate(out *Outcome, delta int) {
	ok, err := t.step(delta)
	if !ok {
		if delta > 0 {
			t.message = MsgLastLesson
		} else {
			t.message = MsgFirstLesson
		}
		return
	}
	t.changeLesson(out, err)
}

func (t *Tutor) changeLesson(out *Outcome, err error) {
	out.Action = ActionLessonChanged
	if err != nil {
		log.ErrorErr(log.CatProgress, "Failed to save lesson change", err, "id", t.current.ID)
		out.Err = err
	}
}

// nextHint cycles through the lesson's hints, then falls back to the
// difference from the target.
func (t *Tutor) nextHint() string {
	hints := t.current.Hints
	if t.hint < len(hints) {
		h := hints[t.hint]
		t.hint++
		return h
	}
	t.hint = 0
	if t.verdict.Hint != "" {
		return t.verdict.Hint
	}
	if len(hints) > 0 {
		t.hint = 1
		return hints[0]
	}
	return MsgNoHint
}
