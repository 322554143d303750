package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/vimtutor/internal/cachemanager"
	"github.com/zjrosen/vimtutor/internal/lesson"
	"github.com/zjrosen/vimtutor/internal/log"
	"github.com/zjrosen/vimtutor/internal/ui/markdown"
	"github.com/zjrosen/vimtutor/internal/ui/styles"
)

const (
	renderTTL          = 30 * time.Minute
	renderCleanup      = 10 * time.Minute
	instructionsMinRow = 4
)

type renderRequest struct {
	Lesson lesson.Lesson
	Width  int
}

// instructionRenderer keeps one glamour renderer and rebuilds it when the
// pane width changes.
type instructionRenderer struct {
	mu    sync.Mutex
	style string
	md    *markdown.Renderer
}

func (ir *instructionRenderer) render(_ context.Context, req renderRequest) (string, error) {
	ir.mu.Lock()
	defer ir.mu.Unlock()

	if ir.md == nil || ir.md.Width() != req.Width {
		md, err := markdown.New(req.Width, ir.style)
		if err != nil {
			return "", err
		}
		ir.md = md
	}
	out, err := ir.md.Render(req.Lesson.Instructions)
	if err != nil {
		return "", fmt.Errorf("rendering lesson %s: %w", req.Lesson.ID, err)
	}
	return strings.Trim(out, "\n"), nil
}

func newRenderCache(style string) *cachemanager.ReadThroughCache[string, string, renderRequest] {
	ir := &instructionRenderer{style: style}
	mgr := cachemanager.NewInMemoryCacheManager[string, string]("instructions", renderTTL, renderCleanup)
	return cachemanager.NewReadThroughCache(mgr, ir.render, renderTTL, true)
}

func renderKey(id string, width int) string {
	return fmt.Sprintf("%s@%d", id, width)
}

// refreshInstructions puts the current lesson's text into the viewport when
// the lesson or the width changed.
func (m *Model) refreshInstructions() {
	l := m.tutor.Lesson()
	width := m.instructions.Width
	wrap := width
	if !m.ui.Wrap {
		wrap = 0
	}
	key := renderKey(l.ID, wrap)
	if key == m.instructionsKey {
		return
	}

	text, err := m.render.Get(context.Background(), key, renderRequest{Lesson: l, Width: wrap})
	if err != nil {
		log.ErrorErr(log.CatCache, "Instruction render failed", err, "lesson", l.ID)
		text = l.Instructions
	}
	if l.Task != "" {
		task := l.Task
		if wrap > 6 {
			task = wordwrap.String(task, wrap-6)
		}
		text += "\n\n" + styles.TitleStyle.Render("Task: ") + styles.TextStyle.Render(task)
	}

	m.instructions.SetContent(text)
	m.instructions.GotoTop()
	m.instructionsKey = key
}
