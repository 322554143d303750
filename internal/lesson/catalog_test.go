package lesson

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltin_Loads(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)
	require.Greater(t, c.Len(), 20)

	first := c.First()
	require.Equal(t, "1.1", first.ID)
	require.Equal(t, "X", first.CompleteOn.CursorOn)
	require.Equal(t, "builtin", first.Source)

	all := c.All()
	require.True(t, slices.IsSortedFunc(all, less))
	seen := map[string]bool{}
	for _, l := range all {
		require.False(t, seen[l.ID], "duplicate id %s", l.ID)
		seen[l.ID] = true
		require.NotEmpty(t, l.Instructions, l.ID)
		require.NotEmpty(t, l.Task, l.ID)
		if l.HasTarget() {
			require.NotEqual(t, l.Initial, l.Target, "lesson %s starts complete", l.ID)
		}
	}
}

func TestCatalog_Navigation(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	next, ok := c.Next("1.5")
	require.True(t, ok)
	require.Equal(t, "2.1", next.ID)

	prev, ok := c.Prev("2.1")
	require.True(t, ok)
	require.Equal(t, "1.5", prev.ID)

	_, ok = c.Prev("1.1")
	require.False(t, ok)

	all := c.All()
	_, ok = c.Next(all[len(all)-1].ID)
	require.False(t, ok)

	_, ok = c.Next("99.1")
	require.False(t, ok)

	require.Equal(t, 0, c.Index("1.1"))
	require.Equal(t, -1, c.Index("nope"))
}

func TestCatalog_GetNotFound(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	_, err = c.Get("42.1")
	require.True(t, errors.Is(err, ErrNotFound))

	l, err := c.Get("1.2")
	require.NoError(t, err)
	require.True(t, l.CompletesOnCommand("next"))
	require.True(t, l.CompletesOnCommand(" n "))
	require.False(t, l.CompletesOnCommand("prev"))
}

func TestCatalog_Chapters(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	chapters := c.Chapters()
	require.Equal(t, 1, chapters[0].Number)
	require.Equal(t, "Getting around", chapters[0].Title)
	require.Equal(t, []string{"1.1", "1.2", "1.3", "1.4", "1.5"}, chapters[0].LessonIDs)
}

const userChapter = `chapter: 1
title: My basics
lessons:
  - id: "1.1"
    title: Custom start
    task: Delete the x.
    instructions: Press x.
    initial: ["axb"]
    target: ["ab"]
`

const extraChapter = `chapter: 7
title: Extras
lessons:
  - number: 1
    title: Bonus
    task: Join them.
    instructions: Backspace at the start of a line joins it.
    initial: ["a", "b"]
    target: ["ab"]
`

func TestLoad_UserOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine.yaml"), []byte(userChapter), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	c, err := Load(dir)
	require.NoError(t, err)

	l, err := c.Get("1.1")
	require.NoError(t, err)
	require.Equal(t, "Custom start", l.Title)
	require.Equal(t, filepath.Join(dir, "mine.yaml"), l.Source)

	builtin, err := Builtin()
	require.NoError(t, err)
	require.Equal(t, builtin.Len(), c.Len())

	// Reload picks up new files.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.yml"), []byte(extraChapter), 0o600))
	require.NoError(t, c.Reload())
	require.Equal(t, builtin.Len()+1, c.Len())

	bonus, err := c.Get("7.1")
	require.NoError(t, err)
	require.Equal(t, 7, bonus.Chapter)
	require.Equal(t, "Extras", bonus.ChapterTitle)
}

func TestLoad_MissingUserDir(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	require.Equal(t, "1.1", c.First().ID)
}

func TestLoad_InvalidUserLesson(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown field",
			yaml: "chapter: 7\nlessons:\n  - number: 1\n    titel: typo\n",
			want: "field titel not found",
		},
		{
			name: "no completion condition",
			yaml: "chapter: 7\nlessons:\n  - number: 1\n    title: T\n    initial: [a]\n",
			want: "needs a target or a complete_on condition",
		},
		{
			name: "wrong chapter",
			yaml: "chapter: 7\nlessons:\n  - id: \"2.1\"\n    title: T\n    initial: [a]\n    target: [b]\n",
			want: "lesson 2.1 is not in chapter 7",
		},
		{
			name: "missing chapter",
			yaml: "lessons: []\n",
			want: "chapter must be a positive number",
		},
		{
			name: "long cursor target",
			yaml: "chapter: 7\nlessons:\n  - number: 1\n    title: T\n    initial: [a]\n    complete_on:\n      cursor_on: XY\n",
			want: "single character",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte(tt.yaml), 0o600))

			_, err := Load(dir)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReload_KeepsPreviousOnError(t *testing.T) {
	dir := t.TempDir()
	c, err := Load(dir)
	require.NoError(t, err)
	n := c.Len()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("chapter: [oops"), 0o600))
	require.Error(t, c.Reload())
	require.Equal(t, n, c.Len())
}
