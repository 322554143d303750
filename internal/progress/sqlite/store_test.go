package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimtutor/internal/progress"
	"github.com/zjrosen/vimtutor/internal/progress/progresstest"
)

func TestStore_Memory(t *testing.T) {
	progresstest.Run(t, func(t *testing.T, clock *progresstest.Clock) progress.Store {
		s, err := Open(context.Background(), MemoryPath, WithClock(clock.Now))
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}

func TestStore_File(t *testing.T) {
	progresstest.Run(t, func(t *testing.T, clock *progresstest.Clock) progress.Store {
		s, err := Open(context.Background(), filepath.Join(t.TempDir(), "progress.db"), WithClock(clock.Now))
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "progress.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.SetCurrent(ctx, "2.1"))
	a, err := s.RecordAttempt(ctx, "1.1")
	require.NoError(t, err)
	require.NoError(t, s.MarkCompleted(ctx, "1.1", a.ID, 7))
	require.NoError(t, s.Close())

	_, err = os.Stat(path + ".lock")
	require.True(t, os.IsNotExist(err), "lock file removed on close")

	// Reopening runs migrations again with nothing to do.
	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	p, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "2.1", p.CurrentLessonID)
	require.True(t, p.IsCompleted("1.1"))
	require.Equal(t, 7, p.Lessons["1.1"].BestKeystrokes)

	attempts, err := s.Attempts(ctx, "1.1")
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	require.Equal(t, a.ID, attempts[0].ID)
	require.True(t, attempts[0].Completed)
	require.Equal(t, 7, attempts[0].Keystrokes)
}

func TestStore_LockedByAnotherInstance(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "progress.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	_, err = Open(ctx, path)
	require.True(t, errors.Is(err, ErrLocked))
}

func TestMigrateDriver_Version(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, MemoryPath)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	drv, err := newMigrateDriver(ctx, s.db)
	require.NoError(t, err)

	version, dirty, err := drv.Version()
	require.NoError(t, err)
	require.Equal(t, 1, version)
	require.False(t, dirty)

	require.NoError(t, drv.Lock())
	require.Error(t, drv.Lock())
	require.NoError(t, drv.Unlock())
	require.Error(t, drv.Unlock())

	require.NoError(t, drv.Drop())
	var n int
	require.NoError(t, s.db.QueryRow(`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'attempts'`).Scan(&n))
	require.Zero(t, n)
}
