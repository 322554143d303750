// Package pubsub fans editor, lesson and log events out to interested
// listeners (the TUI, the replay command, tests).
package pubsub

import (
	"context"
	"time"
)

// EventType names what happened.
type EventType string

const (
	LogEntryEvent        EventType = "log_entry"
	BufferChangedEvent   EventType = "buffer_changed"
	ModeChangedEvent     EventType = "mode_changed"
	HostCommandEvent     EventType = "host_command"
	SessionResetEvent    EventType = "session_reset"
	LessonsReloadedEvent EventType = "lessons_reloaded"
	ProgressUpdatedEvent EventType = "progress_updated"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context, types ...EventType) <-chan Event[T]
}

// Publisher publishes events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
