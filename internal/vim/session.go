package vim

import (
	"context"
	"sync"

	"github.com/zjrosen/vimtutor/internal/log"
	"github.com/zjrosen/vimtutor/internal/pubsub"
)

// Event is published by a Session after a key changes something observable.
type Event struct {
	Mode     Mode
	Previous Mode
	Lines    []string
	Cursor   Position
	Command  string
}

// Session wraps a Model for hosts that share one editor across goroutines
// (the TUI update loop and watcher callbacks). It publishes buffer, mode and
// host-command events on its broker.
type Session struct {
	mu         sync.Mutex
	model      Model
	keystrokes int
	broker     *pubsub.Broker[Event]
}

// NewSession starts a session over lines.
func NewSession(lines []string, opts ...Option) *Session {
	return &Session{
		model:  New(lines, opts...),
		broker: pubsub.NewBroker[Event](),
	}
}

// HandleKey applies k and publishes what changed.
func (s *Session) HandleKey(k Key) Result {
	s.mu.Lock()
	prev := s.model.Mode()
	next, res := s.model.HandleKey(k)
	s.model = next
	if res.Handled {
		s.keystrokes++
	}
	ev := Event{
		Mode:     next.Mode(),
		Previous: prev,
		Lines:    next.Lines(),
		Cursor:   next.Cursor(),
		Command:  res.Command,
	}
	s.mu.Unlock()

	if res.Changed {
		s.broker.Publish(pubsub.BufferChangedEvent, ev)
	}
	if res.ModeChanged {
		log.Debug(log.CatEngine, "mode change", "from", prev, "to", ev.Mode)
		s.broker.Publish(pubsub.ModeChangedEvent, ev)
	}
	if res.Command != "" {
		log.Debug(log.CatEngine, "host command", "cmd", res.Command)
		s.broker.Publish(pubsub.HostCommandEvent, ev)
	}
	return res
}

// Model returns the current engine state.
func (s *Session) Model() Model {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

// Keystrokes returns how many keys the engine handled since the last Reset.
func (s *Session) Keystrokes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keystrokes
}

// Reset replaces the buffer with lines and discards history.
func (s *Session) Reset(lines []string) {
	s.mu.Lock()
	s.model = s.model.Reset(lines)
	s.keystrokes = 0
	ev := Event{Mode: s.model.Mode(), Previous: s.model.Mode(), Lines: s.model.Lines()}
	s.mu.Unlock()

	s.broker.Publish(pubsub.SessionResetEvent, ev)
}

// Subscribe returns a channel of session events, optionally filtered by type.
func (s *Session) Subscribe(ctx context.Context, types ...pubsub.EventType) <-chan pubsub.Event[Event] {
	return s.broker.Subscribe(ctx, types...)
}

// Broker exposes the event broker for tea listeners.
func (s *Session) Broker() *pubsub.Broker[Event] {
	return s.broker
}

// Close shuts down the event broker.
func (s *Session) Close() {
	s.broker.Close()
}
