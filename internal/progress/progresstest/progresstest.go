// Package progresstest holds behavior tests shared by every progress.Store.
package progresstest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimtutor/internal/progress"
)

// Clock is a settable clock for stores under test.
type Clock struct {
	T time.Time
}

// Now returns the current fake time.
func (c *Clock) Now() time.Time { return c.T }

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// NewClock starts a clock at a fixed UTC instant.
func NewClock() *Clock {
	return &Clock{T: time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)}
}

// Run exercises a Store. newStore must return an empty store using clock.
func Run(t *testing.T, newStore func(t *testing.T, clock *Clock) progress.Store) {
	t.Run("empty", func(t *testing.T) {
		s := newStore(t, NewClock())
		p, err := s.Load(context.Background())
		require.NoError(t, err)
		require.Equal(t, progress.DefaultLessonID, p.CurrentLessonID)
		require.Empty(t, p.Lessons)
	})

	t.Run("current lesson", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t, NewClock())
		require.NoError(t, s.SetCurrent(ctx, "2.3"))
		require.NoError(t, s.SetCurrent(ctx, "2.4"))

		p, err := s.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, "2.4", p.CurrentLessonID)
	})

	t.Run("attempt does not complete", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t, NewClock())
		a, err := s.RecordAttempt(ctx, "1.3")
		require.NoError(t, err)
		require.NotEmpty(t, a.ID)
		require.Equal(t, "1.3", a.LessonID)

		p, err := s.Load(ctx)
		require.NoError(t, err)
		require.False(t, p.IsCompleted("1.3"))
		require.Zero(t, p.Lessons["1.3"].Attempts)
	})

	t.Run("complete", func(t *testing.T) {
		ctx := context.Background()
		clock := NewClock()
		s := newStore(t, clock)

		first, err := s.RecordAttempt(ctx, "1.3")
		require.NoError(t, err)
		clock.Advance(time.Minute)
		require.NoError(t, s.MarkCompleted(ctx, "1.3", first.ID, 14))
		completedAt := clock.T

		// Completing the same attempt twice counts once.
		require.NoError(t, s.MarkCompleted(ctx, "1.3", first.ID, 14))

		clock.Advance(time.Hour)
		second, err := s.RecordAttempt(ctx, "1.3")
		require.NoError(t, err)
		require.NotEqual(t, first.ID, second.ID)
		require.NoError(t, s.MarkCompleted(ctx, "1.3", second.ID, 9))

		p, err := s.Load(ctx)
		require.NoError(t, err)
		lp := p.Lessons["1.3"]
		require.True(t, lp.Completed)
		require.Equal(t, 2, lp.Attempts)
		require.Equal(t, 9, lp.BestKeystrokes)
		require.True(t, completedAt.Equal(lp.CompletedAt), "first completion time is kept")
	})

	t.Run("unknown attempt", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t, NewClock())
		err := s.MarkCompleted(ctx, "1.1", "missing", 3)
		require.True(t, errors.Is(err, progress.ErrNotFound))

		a, err := s.RecordAttempt(ctx, "1.1")
		require.NoError(t, err)
		err = s.MarkCompleted(ctx, "1.2", a.ID, 3)
		require.True(t, errors.Is(err, progress.ErrNotFound), "attempt belongs to another lesson")
	})

	t.Run("reset", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t, NewClock())
		require.NoError(t, s.SetCurrent(ctx, "3.1"))
		a, err := s.RecordAttempt(ctx, "3.1")
		require.NoError(t, err)
		require.NoError(t, s.MarkCompleted(ctx, "3.1", a.ID, 5))

		require.NoError(t, s.Reset(ctx))

		p, err := s.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, progress.Empty(), p)
	})
}
