// Package app contains the root Bubble Tea model of the tutor.
package app

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/vimtutor/internal/cachemanager"
	"github.com/zjrosen/vimtutor/internal/config"
	"github.com/zjrosen/vimtutor/internal/keys"
	"github.com/zjrosen/vimtutor/internal/log"
	"github.com/zjrosen/vimtutor/internal/progress"
	"github.com/zjrosen/vimtutor/internal/pubsub"
	"github.com/zjrosen/vimtutor/internal/tutor"
	"github.com/zjrosen/vimtutor/internal/ui/logoverlay"
	"github.com/zjrosen/vimtutor/internal/ui/overlay"
	"github.com/zjrosen/vimtutor/internal/ui/styles"
	"github.com/zjrosen/vimtutor/internal/ui/toaster"
)

// Options configures the application model.
type Options struct {
	Tutor *tutor.Tutor
	UI    config.UIConfig
	// FileName titles the editor pane.
	FileName string
	// Debug enables the log overlay (ctrl+x).
	Debug bool
}

// Model is the root application state.
type Model struct {
	tutor    *tutor.Tutor
	ui       config.UIConfig
	fileName string
	debug    bool

	width  int
	height int

	instructions    viewport.Model
	instructionsKey string
	render          *cachemanager.ReadThroughCache[string, string, renderRequest]

	help        help.Model
	showHelp    bool
	showSidebar bool
	banner      bool

	summary progress.Summary
	prog    progress.Progress

	toaster      toaster.Model
	logOverlay   logoverlay.Model
	logListenCmd tea.Cmd

	ctx     context.Context
	cancel  context.CancelFunc
	updates *pubsub.ContinuousListener[tutor.Update]
}

// tutorEvents are the tutor broker events the model redraws on.
var tutorEvents = []pubsub.EventType{pubsub.ProgressUpdatedEvent, pubsub.LessonsReloadedEvent}

// New creates the application model. The tutor must already be started.
func New(opts Options) Model {
	ctx, cancel := context.WithCancel(context.Background())

	fileName := opts.FileName
	if fileName == "" {
		fileName = "lesson.txt"
	}

	m := Model{
		tutor:        opts.Tutor,
		ui:           opts.UI,
		fileName:     fileName,
		debug:        opts.Debug,
		instructions: viewport.New(0, 0),
		render:       newRenderCache(opts.UI.MarkdownStyle),
		help:         help.New(),
		summary:      opts.Tutor.Summary(),
		prog:         opts.Tutor.Progress(),
		toaster:      toaster.New(),
		logOverlay:   logoverlay.New(),
		ctx:          ctx,
		cancel:       cancel,
		updates:      pubsub.NewContinuousListener(ctx, opts.Tutor.Broker(), tutorEvents...),
	}
	if opts.Debug {
		m.logListenCmd = m.logOverlay.StartListening(ctx)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.updates.Listen(), m.logListenCmd)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logOverlay.SetSize(msg.Width, msg.Height)
		m.layout()
		return m, nil

	case log.LogEvent:
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd

	case pubsub.Event[tutor.Update]:
		return m.handleTutorUpdate(msg)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case logoverlay.CloseMsg:
		m.logOverlay.Hide()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleTutorUpdate(ev pubsub.Event[tutor.Update]) (tea.Model, tea.Cmd) {
	m.summary = ev.Payload.Summary
	m.prog = ev.Payload.Progress

	cmds := []tea.Cmd{m.updates.Listen()}
	if ev.Type == pubsub.LessonsReloadedEvent {
		if err := m.render.Invalidate(m.ctx); err != nil {
			log.Warn(log.CatCache, "Failed to flush instruction cache", "error", err)
		}
		m.instructionsKey = ""
		m.layout()
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show("Lessons reloaded", toaster.StyleInfo)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.logOverlay.Visible() {
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd
	}
	if m.showSidebar && !m.banner {
		if id, ok := m.clickedLesson(msg); ok {
			log.Debug(log.CatUI, "Lesson clicked", "id", id)
			return m.afterLessonChange(m.tutor.Goto(id))
		}
	}
	var cmd tea.Cmd
	m.instructions, cmd = m.instructions.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.App.Quit) {
		return m, tea.Quit
	}
	if m.debug && key.Matches(msg, keys.App.ToggleLog) {
		m.logOverlay.Toggle()
		return m, nil
	}
	if m.logOverlay.Visible() {
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd
	}

	if m.banner {
		switch {
		case key.Matches(msg, keys.Banner.Continue):
			m.banner = false
			return m.nextLesson()
		case key.Matches(msg, keys.Banner.Dismiss):
			m.banner = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.App.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		m.layout()
		return m, nil
	case key.Matches(msg, keys.App.Sidebar):
		m.showSidebar = !m.showSidebar
		m.layout()
		return m, nil
	case key.Matches(msg, keys.App.ScrollUp):
		m.instructions.ScrollUp(max(m.instructions.Height/2, 1))
		return m, nil
	case key.Matches(msg, keys.App.ScrollDown):
		m.instructions.ScrollDown(max(m.instructions.Height/2, 1))
		return m, nil
	}

	vimKeys, ok := keys.ToVim(msg)
	if !ok {
		return m, nil
	}

	var cmds []tea.Cmd
	for _, k := range vimKeys {
		out := m.tutor.HandleKey(k)
		if out.Err != nil {
			var cmd tea.Cmd
			m.toaster, cmd = m.toaster.Show(out.Err.Error(), toaster.StyleError)
			cmds = append(cmds, cmd)
		}
		if out.Completed {
			m.summary = m.tutor.Summary()
			m.prog = m.tutor.Progress()
		}
		switch out.Action {
		case tutor.ActionQuit:
			log.Info(log.CatUI, "Quit requested")
			return m, tea.Quit
		case tutor.ActionLessonChanged:
			m.banner = false
			m.summary = m.tutor.Summary()
			m.prog = m.tutor.Progress()
			m.layout()
		default:
			if out.Completed {
				m.banner = true
			}
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) nextLesson() (tea.Model, tea.Cmd) {
	ok, err := m.tutor.Next()
	if !ok && err == nil {
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show("That was the last lesson. Well done!", toaster.StyleSuccess)
		return m, cmd
	}
	return m.afterLessonChange(err)
}

func (m Model) afterLessonChange(err error) (tea.Model, tea.Cmd) {
	m.banner = false
	m.summary = m.tutor.Summary()
	m.prog = m.tutor.Progress()
	m.layout()
	if err != nil {
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(err.Error(), toaster.StyleError)
		return m, cmd
	}
	return m, nil
}

// Pane sizes derived from the window and the current lesson.
func (m Model) mainWidth() int {
	if m.showSidebar && m.width > sidebarWidth+40 {
		return m.width - sidebarWidth
	}
	return m.width
}

func (m Model) footerHeight() int {
	return lipgloss.Height(m.help.View(keys.Help{Debug: m.debug}))
}

// bodyHeight is the space between the header and the hint line.
func (m Model) bodyHeight() int {
	// header, hint, status, footer
	return max(m.height-3-m.footerHeight(), 0)
}

func (m Model) editorHeight() int {
	rows := len(m.tutor.Lesson().Initial) + 3
	rows = min(max(rows, 3), 14)
	return min(rows+2, max(m.bodyHeight()-instructionsMinRow-2, 3))
}

// layout sizes the instructions viewport and re-renders its content.
func (m *Model) layout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.instructions.Width = max(m.mainWidth()-2, 1)
	m.instructions.Height = max(m.bodyHeight()-m.editorHeight()-2, 1)
	m.refreshInstructions()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	l := m.tutor.Lesson()
	mainW := m.mainWidth()
	edH := m.editorHeight()
	instrH := max(m.bodyHeight()-edH, 3)

	title := l.Heading()
	if l.Subtitle != "" {
		title += "  " + l.Subtitle
	}
	main := lipgloss.JoinVertical(lipgloss.Left,
		styles.RenderPanel(m.instructions.View(), title, mainW, instrH, false),
		styles.RenderPanel(renderBuffer(m.tutor.Editor(), mainW-2, edH-2), m.fileName, mainW, edH, true),
	)
	body := main
	if mainW < m.width {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(m.bodyHeight()), main)
	}

	view := strings.Join([]string{
		m.header(),
		body,
		m.hintLine(),
		m.statusLine(),
		m.help.View(keys.Help{Debug: m.debug}),
	}, "\n")

	if m.banner {
		view = overlay.Place(overlay.Config{Width: m.width, Height: m.height}, m.bannerView(), view)
	}
	view = m.toaster.Overlay(view, m.width, m.height)
	if m.debug && m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}
	return zone.Scan(view)
}

func (m Model) hintLine() string {
	if !m.ui.ShowHints || m.tutor.Complete() {
		return ""
	}
	v := m.tutor.Verdict()
	if v.Hint == "" {
		return ""
	}
	return styles.TruncateString(styles.MutedStyle.Render("hint: "+v.Hint), m.width)
}

func (m Model) bannerView() string {
	l := m.tutor.Lesson()
	lines := []string{
		styles.BannerStyle.Render("Lesson complete!"),
		"",
		styles.TextStyle.Render(l.Heading()),
		"",
	}
	if next, ok := m.tutor.Catalog().Next(l.ID); ok {
		lines = append(lines,
			styles.MutedStyle.Render("Next: ")+styles.TextStyle.Render(next.Heading()),
			"",
			styles.MutedStyle.Render("enter/n next lesson · esc stay here"),
		)
	} else {
		lines = append(lines, styles.TextStyle.Render("That was the last lesson."),
			"",
			styles.MutedStyle.Render("esc close"),
		)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.StatusSuccessColor).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))
}

// BannerVisible reports whether the lesson-complete banner is shown.
func (m Model) BannerVisible() bool {
	return m.banner
}

// Close stops the event listeners. The tutor belongs to the caller.
func (m *Model) Close() error {
	m.cancel()
	return nil
}
