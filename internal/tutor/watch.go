package tutor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/zjrosen/vimtutor/internal/lesson"
	"github.com/zjrosen/vimtutor/internal/log"
	"github.com/zjrosen/vimtutor/internal/pubsub"
	"github.com/zjrosen/vimtutor/internal/watcher"
)

// ReloadLessons re-reads the catalog. The current lesson picks up its new
// definition without touching the buffer; if it was removed the first lesson
// opens instead.
func (t *Tutor) ReloadLessons() error {
	if err := t.catalog.Reload(); err != nil {
		log.ErrorErr(log.CatLesson, "Lesson reload failed", err)
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	l, err := t.catalog.Get(t.current.ID)
	if errors.Is(err, lesson.ErrNotFound) {
		log.Warn(log.CatLesson, "Current lesson removed", "id", t.current.ID)
		err = t.open(t.catalog.First().ID)
	} else if err == nil {
		t.current = l
		if !t.complete {
			m := t.session.Model()
			t.verdict = lesson.Check(l, m.Lines(), m.Cursor())
		}
	}
	t.publish(pubsub.LessonsReloadedEvent)
	return err
}

// Watch reloads lessons whenever files in the user lesson directory change,
// until ctx is cancelled or Close is called. A missing directory is not an
// error; there is nothing to watch.
func (t *Tutor) Watch(ctx context.Context) error {
	dir := t.catalog.UserDir()
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		log.Debug(log.CatWatcher, "Lesson directory missing, not watching", "dir", dir)
		return nil
	}

	w, err := watcher.New(watcher.DefaultConfig(dir))
	if err != nil {
		return err
	}
	changes, err := w.Start()
	if err != nil {
		_ = w.Stop()
		return fmt.Errorf("watching lessons: %w", err)
	}

	done := make(chan struct{})
	t.mu.Lock()
	t.watcher = w
	t.watchDone = done
	t.mu.Unlock()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				_ = t.ReloadLessons()
			}
		}
	}()
	return nil
}
