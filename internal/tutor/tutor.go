// Package tutor runs lessons: it feeds keys to the editor, checks the buffer
// against the current lesson, records progress and handles the tutor's own
// command-line commands.
package tutor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/zjrosen/vimtutor/internal/config"
	"github.com/zjrosen/vimtutor/internal/lesson"
	"github.com/zjrosen/vimtutor/internal/log"
	"github.com/zjrosen/vimtutor/internal/progress"
	"github.com/zjrosen/vimtutor/internal/pubsub"
	"github.com/zjrosen/vimtutor/internal/tracing"
	"github.com/zjrosen/vimtutor/internal/vim"
	"github.com/zjrosen/vimtutor/internal/watcher"
)

// Action tells the host what a key did beyond editing.
type Action int

const (
	ActionNone Action = iota
	// ActionLessonChanged means a different lesson (or a fresh attempt) is loaded.
	ActionLessonChanged
	// ActionQuit means the learner asked to leave.
	ActionQuit
)

// Outcome is the result of one key.
type Outcome struct {
	Result  vim.Result
	Verdict lesson.Verdict
	// Completed is true only for the key that finished the lesson.
	Completed bool
	Action    Action
	// Err is a progress store failure. The key itself was still applied.
	Err error
}

// Update is published on the tutor's broker whenever progress or the catalog
// changes.
type Update struct {
	LessonID string
	Progress progress.Progress
	Summary  progress.Summary
}

// Tutor is the lesson runner. Methods are safe for concurrent use; lesson
// reloads arrive on a watcher goroutine while keys arrive from the UI.
type Tutor struct {
	mu sync.Mutex

	catalog    *lesson.Catalog
	store      progress.Store
	tracer     *tracing.Provider
	session    *vim.Session
	broker     *pubsub.Broker[Update]
	engineOpts []vim.Option
	startID    string

	ctx      context.Context
	current  lesson.Lesson
	attempt  progress.Attempt
	practice *tracing.Practice
	progress progress.Progress
	verdict  lesson.Verdict
	complete bool
	message  string
	hint     int

	watcher   *watcher.Watcher
	watchDone chan struct{}
}

// Option configures a Tutor.
type Option func(*Tutor)

// WithTracer records practice spans on p.
func WithTracer(p *tracing.Provider) Option {
	return func(t *Tutor) {
		t.tracer = p
	}
}

// WithEngineOptions passes options to the editor engine.
func WithEngineOptions(opts ...vim.Option) Option {
	return func(t *Tutor) {
		t.engineOpts = append(t.engineOpts, opts...)
	}
}

// WithStartLesson sets the lesson opened for a learner with no saved position.
func WithStartLesson(id string) Option {
	return func(t *Tutor) {
		t.startID = id
	}
}

// New creates a tutor over catalog and store. Call Start before sending keys.
func New(catalog *lesson.Catalog, store progress.Store, opts ...Option) *Tutor {
	t := &Tutor{
		catalog:  catalog,
		store:    store,
		broker:   pubsub.NewBroker[Update](),
		ctx:      context.Background(),
		progress: progress.Empty(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.tracer == nil {
		// A disabled provider never fails.
		t.tracer, _ = tracing.NewProvider(config.TracingConfig{})
	}
	t.session = vim.NewSession(nil, t.engineOpts...)
	return t
}

// Start loads saved progress and opens a lesson. lessonID, when set, must
// exist. Otherwise the saved lesson is used, then the configured start
// lesson, then the first lesson.
func (t *Tutor) Start(ctx context.Context, lessonID string) error {
	p, err := t.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading progress: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.ctx = ctx
	t.progress = p

	id, err := t.pickStart(lessonID)
	if err != nil {
		return err
	}
	return t.open(id)
}

func (t *Tutor) pickStart(requested string) (string, error) {
	if requested != "" {
		if _, err := t.catalog.Get(requested); err != nil {
			return "", err
		}
		return requested, nil
	}

	saved := t.progress.CurrentLessonID
	candidates := []string{saved, t.startID}
	if saved == progress.DefaultLessonID && t.startID != "" {
		// Nothing saved yet: the configured start lesson wins.
		candidates = []string{t.startID, saved}
	}
	for _, id := range candidates {
		if id == "" {
			continue
		}
		if _, err := t.catalog.Get(id); err == nil {
			return id, nil
		}
		log.Warn(log.CatLesson, "Start lesson not in catalog", "id", id)
	}

	first := t.catalog.First()
	if first.ID == "" {
		return "", errors.New("no lessons available")
	}
	return first.ID, nil
}

// open loads a lesson and begins a new attempt. Caller holds t.mu.
func (t *Tutor) open(id string) error {
	l, err := t.catalog.Get(id)
	if err != nil {
		return err
	}
	t.endPractice()

	t.current = l
	t.session.Reset(l.Initial)
	t.complete = false
	t.verdict = lesson.Verdict{}
	t.hint = 0

	var errs []error
	attempt, err := t.store.RecordAttempt(t.ctx, id)
	if err != nil {
		errs = append(errs, fmt.Errorf("recording attempt: %w", err))
	}
	t.attempt = attempt
	if err := t.store.SetCurrent(t.ctx, id); err != nil {
		errs = append(errs, fmt.Errorf("saving current lesson: %w", err))
	}
	t.progress.CurrentLessonID = id

	_, t.practice = t.tracer.StartPractice(t.ctx, id, attempt.ID)
	log.Info(log.CatLesson, "Opened lesson", "id", id, "attempt", attempt.ID)

	// Check straight away so the host can show the first hint.
	t.verdict = lesson.Check(l, l.Initial, vim.Position{})
	t.publish(pubsub.ProgressUpdatedEvent)
	return errors.Join(errs...)
}

func (t *Tutor) endPractice() {
	if t.practice != nil {
		t.practice.End(t.session.Keystrokes())
		t.practice = nil
	}
}

// HandleKey applies one key to the editor and runs whatever follows from it:
// a host command, the lesson check, or completion.
func (t *Tutor) HandleKey(k vim.Key) Outcome {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.message = ""
	res := t.session.HandleKey(k)
	out := Outcome{Result: res}

	switch {
	case res.Command != "":
		if t.practice != nil {
			t.practice.Command(res.Command, t.session.Model().Mode().String())
		}
		t.runCommand(res.Command, &out)
	case res.Handled:
		t.check(&out)
	}

	out.Verdict = t.verdict
	return out
}

func (t *Tutor) check(out *Outcome) {
	if t.complete {
		return
	}
	m := t.session.Model()
	t.verdict = lesson.Check(t.current, m.Lines(), m.Cursor())
	if t.verdict.Complete {
		t.finish(out)
	}
}

// finish marks the current attempt complete. Caller holds t.mu.
func (t *Tutor) finish(out *Outcome) {
	t.complete = true
	t.verdict = lesson.Verdict{Complete: true}
	out.Completed = true

	keystrokes := t.session.Keystrokes()
	if t.practice != nil {
		t.practice.Completed(keystrokes)
	}
	log.Info(log.CatProgress, "Lesson completed", "id", t.current.ID, "keystrokes", keystrokes)

	if err := t.store.MarkCompleted(t.ctx, t.current.ID, t.attempt.ID, keystrokes); err != nil {
		log.ErrorErr(log.CatProgress, "Failed to save completion", err, "id", t.current.ID)
		out.Err = fmt.Errorf("saving progress: %w", err)
		lp := t.progress.Lessons[t.current.ID]
		lp.LessonID = t.current.ID
		lp.Completed = true
		t.progress.Lessons[t.current.ID] = lp
	} else if p, err := t.store.Load(t.ctx); err == nil {
		t.progress = p
	} else {
		out.Err = fmt.Errorf("loading progress: %w", err)
	}
	t.publish(pubsub.ProgressUpdatedEvent)
}

// publish sends the current state. Caller holds t.mu.
func (t *Tutor) publish(eventType pubsub.EventType) {
	t.broker.Publish(eventType, t.update())
}

func (t *Tutor) update() Update {
	return Update{
		LessonID: t.current.ID,
		Progress: t.progress,
		Summary:  progress.Summarize(t.progress, t.catalog),
	}
}

// Next opens the lesson after the current one. ok is false on the last lesson.
func (t *Tutor) Next() (ok bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.step(1)
}

// Prev opens the lesson before the current one. ok is false on the first lesson.
func (t *Tutor) Prev() (ok bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.step(-1)
}

func (t *Tutor) step(delta int) (bool, error) {
	var (
		l  lesson.Lesson
		ok bool
	)
	if delta > 0 {
		l, ok = t.catalog.Next(t.current.ID)
	} else {
		l, ok = t.catalog.Prev(t.current.ID)
	}
	if !ok {
		return false, nil
	}
	return true, t.open(l.ID)
}

// Goto opens lesson id.
func (t *Tutor) Goto(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.open(id)
}

// Restart restores the current lesson's buffer and begins a new attempt.
func (t *Tutor) Restart() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.restart()
}

func (t *Tutor) restart() error {
	if t.practice != nil {
		t.practice.Reset()
	}
	return t.open(t.current.ID)
}

// ResetProgress forgets all saved progress but stays on the current lesson.
func (t *Tutor) ResetProgress(ctx context.Context) error {
	if err := t.store.Reset(ctx); err != nil {
		return fmt.Errorf("resetting progress: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress = progress.Empty()
	if err := t.store.SetCurrent(ctx, t.current.ID); err != nil {
		return fmt.Errorf("saving current lesson: %w", err)
	}
	t.progress.CurrentLessonID = t.current.ID
	t.publish(pubsub.ProgressUpdatedEvent)
	return nil
}

// Lesson returns the current lesson.
func (t *Tutor) Lesson() lesson.Lesson {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Editor returns the editor state.
func (t *Tutor) Editor() vim.Model {
	return t.session.Model()
}

// Session returns the editor session, for hosts that subscribe to its events.
func (t *Tutor) Session() *vim.Session {
	return t.session
}

// Message returns the status message: a tutor message from the last key if
// there is one, otherwise the editor's.
func (t *Tutor) Message() string {
	t.mu.Lock()
	msg := t.message
	t.mu.Unlock()
	if msg != "" {
		return msg
	}
	return t.session.Model().Message()
}

// Verdict returns the latest check of the current lesson.
func (t *Tutor) Verdict() lesson.Verdict {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.verdict
}

// Complete reports whether the current attempt has been completed.
func (t *Tutor) Complete() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.complete
}

// Progress returns the saved progress as last loaded.
func (t *Tutor) Progress() progress.Progress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progress
}

// Summary returns completed lessons over the catalog.
func (t *Tutor) Summary() progress.Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return progress.Summarize(t.progress, t.catalog)
}

// Catalog returns the lesson catalog.
func (t *Tutor) Catalog() *lesson.Catalog {
	return t.catalog
}

// Broker exposes progress and reload events.
func (t *Tutor) Broker() *pubsub.Broker[Update] {
	return t.broker
}

// Close ends the open practice span and stops watching. The store and tracer
// belong to the caller.
func (t *Tutor) Close() error {
	t.mu.Lock()
	t.endPractice()
	w := t.watcher
	t.watcher = nil
	if t.watchDone != nil {
		close(t.watchDone)
		t.watchDone = nil
	}
	t.mu.Unlock()

	var err error
	if w != nil {
		err = w.Stop()
	}
	t.session.Close()
	t.broker.Close()
	return err
}
