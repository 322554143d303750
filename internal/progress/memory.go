package progress

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps progress in memory. Used by tests and the "memory" backend.
type MemoryStore struct {
	mu       sync.Mutex
	now      func() time.Time
	progress Progress
	attempts map[string]Attempt
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now:      time.Now,
		progress: Empty(),
		attempts: map[string]Attempt{},
	}
}

// WithClock replaces the clock used for timestamps.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

func (s *MemoryStore) Load(_ context.Context) (Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Progress{
		CurrentLessonID: s.progress.CurrentLessonID,
		Lessons:         maps.Clone(s.progress.Lessons),
	}, nil
}

func (s *MemoryStore) SetCurrent(_ context.Context, lessonID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress.CurrentLessonID = lessonID
	return nil
}

func (s *MemoryStore) RecordAttempt(_ context.Context, lessonID string) (Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := Attempt{ID: uuid.NewString(), LessonID: lessonID, StartedAt: s.now()}
	s.attempts[a.ID] = a
	return a, nil
}

func (s *MemoryStore) MarkCompleted(_ context.Context, lessonID, attemptID string, keystrokes int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[attemptID]
	if !ok || a.LessonID != lessonID {
		return fmt.Errorf("%w: attempt %s for lesson %s", ErrNotFound, attemptID, lessonID)
	}
	if a.Completed {
		return nil
	}

	now := s.now()
	a.Completed = true
	a.FinishedAt = now
	a.Keystrokes = keystrokes
	s.attempts[attemptID] = a

	lp := s.progress.Lessons[lessonID]
	lp.LessonID = lessonID
	s.progress.Lessons[lessonID] = applyCompletion(lp, now, keystrokes)
	return nil
}

func (s *MemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = Empty()
	s.attempts = map[string]Attempt{}
	return nil
}

func (s *MemoryStore) Close() error { return nil }
