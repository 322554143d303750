package vim

import (
	"regexp"
	"strings"
)

// Command-line messages.
const (
	msgInvalidSubstitution = "Invalid substitution command"
	msgSubstitutionDone    = "Substitution done"
	msgHelp                = "Help: Use :help {topic} for specific help"
	msgOptionSet           = "Option set: "

	shellLs  = "lesson.txt  notes.txt  config.vim"
	shellPwd = "/home/user/vimtutor"

	dateLayout = "1/2/2006, 3:04:05 PM"
)

// substitutePattern parses s/pattern/replacement/[g]. Only the command syntax is a
// regular expression; the pattern itself is matched literally.
var substitutePattern = regexp.MustCompile(`^s/([^/]*)/([^/]*)(?:/(g?))?$`)

// handleCommandKey runs Enter and Backspace through the registry and appends any
// other printable key to the command line.
func (m *Model) handleCommandKey(k Key) Result {
	if cmd, ok := DefaultRegistry.Get(ModeCommand, keyToString(k)); ok {
		res := m.executeAndRespond(cmd)
		res.Command, m.hostCommand = m.hostCommand, ""
		return res
	}
	r, ok := k.printable()
	if !ok {
		return Result{}
	}
	m.cmdline += string(r)
	return Result{Handled: true}
}

// SubmitCommandLineCommand runs the command line and returns to normal mode (Enter).
type SubmitCommandLineCommand struct{}

// Execute leaves command-line mode and dispatches the line. Lines the engine does
// not know are handed to the host.
func (c *SubmitCommandLineCommand) Execute(m *Model) ExecuteResult {
	line := m.cmdline
	m.setMode(ModeNormal)
	m.hostCommand = m.runCommandLine(line)
	return Executed
}

func (c *SubmitCommandLineCommand) Keys() []string { return []string{"<enter>"} }
func (c *SubmitCommandLineCommand) Mode() Mode     { return ModeCommand }
func (c *SubmitCommandLineCommand) ID() string     { return "cmdline.submit" }

// Substitution records its own snapshot, and only when it matched.
func (c *SubmitCommandLineCommand) IsUndoable() bool     { return false }
func (c *SubmitCommandLineCommand) ChangesContent() bool { return true }
func (c *SubmitCommandLineCommand) IsModeChange() bool   { return true }

// CommandLineBackspaceCommand deletes the last command-line character, or leaves
// command-line mode when the line is already empty.
type CommandLineBackspaceCommand struct {
	ModeEntryBase
}

func (c *CommandLineBackspaceCommand) Execute(m *Model) ExecuteResult {
	if m.cmdline == "" {
		m.setMode(ModeNormal)
		return Executed
	}
	r := []rune(m.cmdline)
	m.cmdline = string(r[:len(r)-1])
	return Executed
}

func (c *CommandLineBackspaceCommand) Keys() []string { return []string{"<backspace>"} }
func (c *CommandLineBackspaceCommand) Mode() Mode     { return ModeCommand }
func (c *CommandLineBackspaceCommand) ID() string     { return "cmdline.backspace" }

// runCommandLine dispatches a finished command line. Built-ins are handled here;
// anything else is returned for the host.
func (m *Model) runCommandLine(line string) string {
	switch {
	case strings.HasPrefix(line, "/"):
		m.searchFor(line[1:], true)
	case strings.HasPrefix(line, "?"):
		m.searchFor(line[1:], false)
	case strings.HasPrefix(line, "s/"):
		m.substitute(line)
	case line == "!ls":
		m.message = shellLs
	case line == "!pwd":
		m.message = shellPwd
	case line == "!date":
		m.message = m.opts.clock().Format(dateLayout)
	case strings.HasPrefix(line, "set "):
		m.message = msgOptionSet + strings.TrimPrefix(line, "set ")
	case line == "help" || strings.HasPrefix(line, "help "):
		m.message = msgHelp
	default:
		return line
	}
	return ""
}

// substitute runs s/pattern/replacement/[g] on the cursor line with literal matching.
// An empty pattern reuses the last search pattern.
func (m *Model) substitute(line string) {
	match := substitutePattern.FindStringSubmatch(line)
	if match == nil {
		m.message = msgInvalidSubstitution
		return
	}
	pattern, replacement, global := match[1], match[2], match[3] == "g"
	if pattern == "" {
		pattern = m.search.Pattern
	}
	if pattern == "" {
		m.message = msgInvalidSubstitution
		return
	}

	cur := m.currentLine()
	if !strings.Contains(cur, pattern) {
		m.message = msgPatternNotFound + pattern
		return
	}
	n := 1
	if global {
		n = -1
	}
	m.history.Push(m.snapshot())
	m.setLines(replaceLine(m.lines, m.cursor.Line, strings.Replace(cur, pattern, replacement, n)))
	m.message = msgSubstitutionDone
	m.clamp()
}
