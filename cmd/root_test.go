package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vimtutor/internal/progress/sqlite"
)

// writeConfig points lessons and progress at a temp dir and returns the config path.
func writeConfig(t *testing.T) (path, dir string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf("lessons:\n  dir: %s\n  watch: false\nprogress:\n  backend: sqlite\n  path: %s\n",
		filepath.Join(dir, "lessons"), filepath.Join(dir, "progress.db"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path, dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersion(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	out, err := execute(t, "--config", cfgPath, "version")
	require.NoError(t, err)
	require.Contains(t, out, "vimtutor "+version)
}

func TestConfigPath(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	out, err := execute(t, "--config", cfgPath, "config", "path")
	require.NoError(t, err)
	require.Equal(t, cfgPath+"\n", out)
}

func TestConfigSet(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	out, err := execute(t, "--config", cfgPath, "config", "set", "ui.theme", "nord")
	require.NoError(t, err)
	require.Contains(t, out, "Set ui.theme = nord")

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "theme: nord")
	require.Contains(t, string(data), "backend: sqlite", "other keys are kept")
}

func TestConfigSet_InvalidValueReported(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	_, err := execute(t, "--config", cfgPath, "config", "set", "ui.markdown_style", "purple")
	require.Error(t, err)
	require.Contains(t, err.Error(), "markdown_style")

	// config set still runs against the now-invalid file.
	_, err = execute(t, "--config", cfgPath, "config", "set", "ui.markdown_style", "dark")
	require.NoError(t, err)
}

func TestInvalidConfigStopsCommands(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	require.NoError(t, os.WriteFile(cfgPath, []byte("progress:\n  backend: postgres\n"), 0o600))

	_, err := execute(t, "--config", cfgPath, "lessons")
	require.Error(t, err)
	require.Contains(t, err.Error(), "progress.backend")
}

func TestLessons(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	out, err := execute(t, "--config", cfgPath, "lessons")
	require.NoError(t, err)
	require.Contains(t, out, "Chapter 1: Getting around")
	require.Contains(t, out, "Chapter 6: The command line")
	require.Contains(t, out, "1.1")
	require.Contains(t, out, "<- current")
	require.NotContains(t, out, "✓")
}

func TestReplay(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	tests := []struct {
		name   string
		lesson string
		keys   string
		want   []string
	}{
		{
			name:   "target lesson solved",
			lesson: "1.3",
			keys:   "4lx10lx2lx6lx",
			want:   []string{"The cow jumped over the moon.", "mode:    NORMAL", "target:  met"},
		},
		{
			name:   "target lesson unsolved has a hint",
			lesson: "1.3",
			keys:   "x",
			want:   []string{"target:  not met", "hint:"},
		},
		{
			name:   "cursor lesson",
			lesson: "1.1",
			keys:   "3j28l",
			want:   []string{"cursor:  4:29", "target:  met"},
		},
		{
			name:   "command lesson",
			lesson: "1.2",
			keys:   ":next<CR>",
			want:   []string{"command: next", "target:  met"},
		},
		{
			name:   "insert mode left open",
			lesson: "1.3",
			keys:   "ihello",
			want:   []string{"mode:    INSERT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "--config", cfgPath, "replay", "--lesson", tt.lesson, "--keys", tt.keys)
			require.NoError(t, err)
			for _, w := range tt.want {
				require.Contains(t, out, w)
			}
		})
	}
}

func TestReplay_Errors(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	_, err := execute(t, "--config", cfgPath, "replay", "--lesson", "9.9", "--keys", "x")
	require.Error(t, err)

	_, err = execute(t, "--config", cfgPath, "replay", "--lesson", "1.1", "--keys", "<Nope>")
	require.Error(t, err)
}

func TestProgressShowAndReset(t *testing.T) {
	cfgPath, dir := writeConfig(t)
	ctx := context.Background()

	store, err := sqlite.Open(ctx, filepath.Join(dir, "progress.db"))
	require.NoError(t, err)
	attempt, err := store.RecordAttempt(ctx, "1.1")
	require.NoError(t, err)
	require.NoError(t, store.MarkCompleted(ctx, "1.1", attempt.ID, 5))
	require.NoError(t, store.SetCurrent(ctx, "1.2"))
	require.NoError(t, store.Close())

	out, err := execute(t, "--config", cfgPath, "progress")
	require.NoError(t, err)
	require.Contains(t, out, "Completed 1/")
	require.Contains(t, out, "Current lesson: 1.2")
	require.Contains(t, out, "attempts 1, best 5 keys")

	out, err = execute(t, "--config", cfgPath, "lessons")
	require.NoError(t, err)
	require.Contains(t, out, "✓ 1.1")

	out, err = execute(t, "--config", cfgPath, "progress", "reset")
	require.NoError(t, err)
	require.Contains(t, out, "Progress reset")

	out, err = execute(t, "--config", cfgPath, "progress")
	require.NoError(t, err)
	require.Contains(t, out, "Completed 0/")
}
