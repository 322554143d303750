package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span names.
const (
	SpanPractice = "lesson.practice"
)

// Span attribute keys.
const (
	AttrLessonID   = "lesson.id"
	AttrAttemptID  = "attempt.id"
	AttrKeystrokes = "practice.keystrokes"
	AttrCompleted  = "practice.completed"
	AttrCommand    = "command.text"
	AttrMode       = "editor.mode"
)

// Event names.
const (
	EventCommand   = "engine.command"
	EventReset     = "lesson.reset"
	EventCompleted = "lesson.completed"
)

// Practice is an open lesson.practice span covering one attempt.
type Practice struct {
	span trace.Span
}

// StartPractice opens a span for an attempt at lessonID.
func (p *Provider) StartPractice(ctx context.Context, lessonID, attemptID string) (context.Context, *Practice) {
	ctx, span := p.tracer.Start(ctx, SpanPractice,
		trace.WithAttributes(
			attribute.String(AttrLessonID, lessonID),
			attribute.String(AttrAttemptID, attemptID),
			attribute.Bool(AttrCompleted, false),
		),
	)
	return ctx, &Practice{span: span}
}

// Command records a command-line command the host handled.
func (pr *Practice) Command(cmd, mode string) {
	pr.span.AddEvent(EventCommand, trace.WithAttributes(
		attribute.String(AttrCommand, cmd),
		attribute.String(AttrMode, mode),
	))
}

// Reset records that the buffer was restored.
func (pr *Practice) Reset() {
	pr.span.AddEvent(EventReset)
}

// Completed records completion; the span stays open until End.
func (pr *Practice) Completed(keystrokes int) {
	pr.span.AddEvent(EventCompleted, trace.WithAttributes(attribute.Int(AttrKeystrokes, keystrokes)))
	pr.span.SetAttributes(attribute.Bool(AttrCompleted, true))
	pr.span.SetStatus(codes.Ok, "")
}

// End closes the span with the final keystroke count.
func (pr *Practice) End(keystrokes int) {
	pr.span.SetAttributes(attribute.Int(AttrKeystrokes, keystrokes))
	pr.span.End()
}

// TraceID returns the span's trace ID, empty when not sampled.
func (pr *Practice) TraceID() string {
	sc := pr.span.SpanContext()
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}
