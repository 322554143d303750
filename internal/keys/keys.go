// Package keys contains the tutor's own keybindings and the translation of
// terminal key events into editor keys.
package keys

import "github.com/charmbracelet/bubbles/key"

// App holds bindings handled before keys reach the editor. They avoid every
// key the editor uses.
var App = struct {
	Quit        key.Binding
	Help        key.Binding
	Sidebar     key.Binding
	ToggleLog   key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	NextLesson  key.Binding
	PrevLesson  key.Binding
	ResetLesson key.Binding
}{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "toggle help"),
	),
	Sidebar: key.NewBinding(
		key.WithKeys("f2"),
		key.WithHelp("f2", "lessons"),
	),
	ToggleLog: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "debug log"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "scroll lesson"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "scroll lesson"),
	),
	// The lesson commands are typed on the editor command line; these
	// bindings only document them in the help view.
	NextLesson: key.NewBinding(
		key.WithKeys(":next"),
		key.WithHelp(":next", "next lesson"),
	),
	PrevLesson: key.NewBinding(
		key.WithKeys(":prev"),
		key.WithHelp(":prev", "previous lesson"),
	),
	ResetLesson: key.NewBinding(
		key.WithKeys(":reset"),
		key.WithHelp(":reset", "restart lesson"),
	),
}

// Banner holds bindings active while the lesson-complete banner is shown.
var Banner = struct {
	Continue key.Binding
	Dismiss  key.Binding
}{
	Continue: key.NewBinding(
		key.WithKeys("enter", "n"),
		key.WithHelp("enter/n", "next lesson"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "stay here"),
	),
}

// Help implements help.KeyMap for the footer.
type Help struct {
	Debug bool
}

// ShortHelp returns the bindings shown in the one-line footer.
func (h Help) ShortHelp() []key.Binding {
	return []key.Binding{App.NextLesson, App.ResetLesson, App.Help, App.Quit}
}

// FullHelp returns the bindings shown when help is expanded.
func (h Help) FullHelp() [][]key.Binding {
	tools := []key.Binding{App.Help, App.Sidebar, App.ScrollUp, App.ScrollDown, App.Quit}
	if h.Debug {
		tools = append(tools, App.ToggleLog)
	}
	return [][]key.Binding{
		{App.NextLesson, App.PrevLesson, App.ResetLesson},
		tools,
	}
}
