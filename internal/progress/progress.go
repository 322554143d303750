// Package progress records which lessons a learner has finished.
package progress

import (
	"context"
	"errors"
	"time"

	"github.com/zjrosen/vimtutor/internal/lesson"
)

// DefaultLessonID is the current lesson before anything has been saved.
const DefaultLessonID = "1.1"

// ErrNotFound is returned for an unknown attempt.
var ErrNotFound = errors.New("progress: not found")

// Progress is the learner's saved state.
type Progress struct {
	CurrentLessonID string
	Lessons         map[string]LessonProgress
}

// LessonProgress is the saved state of one lesson.
type LessonProgress struct {
	LessonID  string
	Completed bool
	// Attempts counts completed attempts; replaying a finished lesson adds one.
	Attempts    int
	CompletedAt time.Time
	// BestKeystrokes is the fewest keys used to complete the lesson, 0 if unknown.
	BestKeystrokes int
}

// Attempt is one try at a lesson, from opening (or resetting) it to completion.
type Attempt struct {
	ID         string
	LessonID   string
	StartedAt  time.Time
	FinishedAt time.Time
	Keystrokes int
	Completed  bool
}

// Store persists progress.
type Store interface {
	Load(ctx context.Context) (Progress, error)
	SetCurrent(ctx context.Context, lessonID string) error
	// RecordAttempt starts a new attempt at lessonID.
	RecordAttempt(ctx context.Context, lessonID string) (Attempt, error)
	// MarkCompleted finishes the attempt and marks the lesson complete.
	MarkCompleted(ctx context.Context, lessonID, attemptID string, keystrokes int) error
	// Reset forgets everything.
	Reset(ctx context.Context) error
	Close() error
}

// IsCompleted reports whether lessonID has been completed.
func (p Progress) IsCompleted(lessonID string) bool {
	return p.Lessons[lessonID].Completed
}

// Empty returns progress with nothing recorded.
func Empty() Progress {
	return Progress{CurrentLessonID: DefaultLessonID, Lessons: map[string]LessonProgress{}}
}

// Summary is the completion count over a catalog.
type Summary struct {
	Completed int
	Total     int
	Percent   int
}

// Summarize counts completed lessons that exist in the catalog. Progress for
// lessons that were removed does not count.
func Summarize(p Progress, catalog *lesson.Catalog) Summary {
	s := Summary{}
	for _, l := range catalog.All() {
		s.Total++
		if p.IsCompleted(l.ID) {
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.Percent = s.Completed * 100 / s.Total
	}
	return s
}

// applyCompletion folds a completed attempt into lp.
func applyCompletion(lp LessonProgress, at time.Time, keystrokes int) LessonProgress {
	if !lp.Completed {
		lp.CompletedAt = at
	}
	lp.Completed = true
	lp.Attempts++
	if keystrokes > 0 && (lp.BestKeystrokes == 0 || keystrokes < lp.BestKeystrokes) {
		lp.BestKeystrokes = keystrokes
	}
	return lp
}
