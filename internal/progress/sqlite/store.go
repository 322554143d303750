// Package sqlite stores progress in a SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/vimtutor/internal/log"
	"github.com/zjrosen/vimtutor/internal/progress"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// ErrLocked is returned when another process holds the progress file.
var ErrLocked = errors.New("progress file is in use by another vimtutor")

const timeLayout = time.RFC3339Nano

// Store is a progress.Store backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
	now  func() time.Time
}

var _ progress.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens (creating if needed) the database at path and migrates it.
// File databases are guarded by a lock file next to them.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	s := &Store{path: path, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	dsn := "file::memory:?_pragma=foreign_keys(1)"
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("creating progress directory: %w", err)
		}
		s.lock = flock.New(path + ".lock")
		locked, err := s.lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("locking progress file: %w", err)
		}
		if !locked {
			return nil, ErrLocked
		}
		dsn = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(wal)"
	}

	log.Debug(log.CatDB, "Opening database", "path", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		s.unlock()
		log.ErrorErr(log.CatDB, "Failed to open database", err, "path", path)
		return nil, fmt.Errorf("opening progress database: %w", err)
	}
	// One connection keeps pragmas and the in-memory database consistent.
	db.SetMaxOpenConns(1)
	s.db = db

	if err := db.PingContext(ctx); err != nil {
		_ = s.Close()
		log.ErrorErr(log.CatDB, "Failed to ping database", err, "path", path)
		return nil, fmt.Errorf("opening progress database: %w", err)
	}
	if err := migrateUp(ctx, db); err != nil {
		_ = s.Close()
		log.ErrorErr(log.CatDB, "Failed to migrate database", err, "path", path)
		return nil, err
	}

	log.Info(log.CatDB, "Connected to database", "path", path)
	return s, nil
}

// Path returns the database path.
func (s *Store) Path() string { return s.path }

// Close closes the database and releases the lock file.
func (s *Store) Close() error {
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	s.unlock()
	return err
}

func (s *Store) unlock() {
	if s.lock == nil {
		return
	}
	if err := s.lock.Unlock(); err != nil {
		log.ErrorErr(log.CatDB, "Failed to release lock", err, "path", s.lock.Path())
	}
	_ = os.Remove(s.lock.Path())
}

func (s *Store) Load(ctx context.Context) (progress.Progress, error) {
	p := progress.Empty()

	var current string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM state WHERE key = 'current_lesson'`).Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return p, fmt.Errorf("loading current lesson: %w", err)
	default:
		p.CurrentLessonID = current
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT lesson_id, completed, attempts, completed_at, best_keystrokes
		FROM lesson_progress`)
	if err != nil {
		return p, fmt.Errorf("loading lesson progress: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var lp progress.LessonProgress
		var completedAt sql.NullString
		if err := rows.Scan(&lp.LessonID, &lp.Completed, &lp.Attempts, &completedAt, &lp.BestKeystrokes); err != nil {
			return p, fmt.Errorf("scanning lesson progress: %w", err)
		}
		if completedAt.Valid {
			if lp.CompletedAt, err = time.Parse(timeLayout, completedAt.String); err != nil {
				return p, fmt.Errorf("parsing completed_at for %s: %w", lp.LessonID, err)
			}
		}
		p.Lessons[lp.LessonID] = lp
	}
	return p, rows.Err()
}

func (s *Store) SetCurrent(ctx context.Context, lessonID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO state (key, value) VALUES ('current_lesson', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, lessonID)
	if err != nil {
		return fmt.Errorf("saving current lesson: %w", err)
	}
	return nil
}

func (s *Store) RecordAttempt(ctx context.Context, lessonID string) (progress.Attempt, error) {
	a := progress.Attempt{ID: uuid.NewString(), LessonID: lessonID, StartedAt: s.now().UTC()}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return a, fmt.Errorf("starting attempt: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `INSERT INTO lesson_progress (lesson_id) VALUES (?) ON CONFLICT(lesson_id) DO NOTHING`, lessonID); err != nil {
		return a, fmt.Errorf("starting attempt: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO attempts (id, lesson_id, started_at) VALUES (?, ?, ?)`,
		a.ID, lessonID, a.StartedAt.Format(timeLayout)); err != nil {
		return a, fmt.Errorf("starting attempt: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return a, fmt.Errorf("starting attempt: %w", err)
	}
	log.Debug(log.CatProgress, "Attempt started", "lesson", lessonID, "attempt", a.ID)
	return a, nil
}

func (s *Store) MarkCompleted(ctx context.Context, lessonID, attemptID string, keystrokes int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("completing lesson: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var done bool
	err = tx.QueryRowContext(ctx, `SELECT completed FROM attempts WHERE id = ? AND lesson_id = ?`, attemptID, lessonID).Scan(&done)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: attempt %s for lesson %s", progress.ErrNotFound, attemptID, lessonID)
	}
	if err != nil {
		return fmt.Errorf("completing lesson: %w", err)
	}
	if done {
		return nil
	}

	now := s.now().UTC().Format(timeLayout)
	if _, err := tx.ExecContext(ctx, `
		UPDATE attempts SET completed = 1, finished_at = ?, keystrokes = ? WHERE id = ?`,
		now, keystrokes, attemptID); err != nil {
		return fmt.Errorf("completing lesson: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE lesson_progress SET
			completed = 1,
			attempts = attempts + 1,
			completed_at = COALESCE(completed_at, ?1),
			best_keystrokes = CASE
				WHEN ?2 > 0 AND (best_keystrokes = 0 OR ?2 < best_keystrokes) THEN ?2
				ELSE best_keystrokes END
		WHERE lesson_id = ?3`,
		now, keystrokes, lessonID); err != nil {
		return fmt.Errorf("completing lesson: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("completing lesson: %w", err)
	}
	log.Info(log.CatProgress, "Lesson completed", "lesson", lessonID, "keystrokes", keystrokes)
	return nil
}

func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("resetting progress: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range []string{`DELETE FROM attempts`, `DELETE FROM lesson_progress`, `DELETE FROM state`} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("resetting progress: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("resetting progress: %w", err)
	}
	log.Info(log.CatProgress, "Progress reset")
	return nil
}

// Attempts returns the attempts at lessonID, oldest first.
func (s *Store) Attempts(ctx context.Context, lessonID string) ([]progress.Attempt, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, keystrokes, completed
		FROM attempts WHERE lesson_id = ? ORDER BY started_at, rowid`, lessonID)
	if err != nil {
		return nil, fmt.Errorf("loading attempts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []progress.Attempt
	for rows.Next() {
		a := progress.Attempt{LessonID: lessonID}
		var started string
		var finished sql.NullString
		if err := rows.Scan(&a.ID, &started, &finished, &a.Keystrokes, &a.Completed); err != nil {
			return nil, fmt.Errorf("scanning attempt: %w", err)
		}
		if a.StartedAt, err = time.Parse(timeLayout, started); err != nil {
			return nil, fmt.Errorf("parsing started_at: %w", err)
		}
		if finished.Valid {
			if a.FinishedAt, err = time.Parse(timeLayout, finished.String); err != nil {
				return nil, fmt.Errorf("parsing finished_at: %w", err)
			}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
