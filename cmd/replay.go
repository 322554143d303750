package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/vimtutor/internal/lesson"
	"github.com/zjrosen/vimtutor/internal/vim"
)

var (
	replayLesson string
	replayKeys   string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Run keys against a lesson without the TUI",
	Long: `Replay feeds keys to the editor starting from a lesson's practice buffer and
prints the result. Keys use vim notation: plain characters plus <Esc>, <CR>,
<BS>, <Tab>, <Space>, <lt> and Ctrl chords such as <C-r> or <C-g>.`,
	Example: `  vimtutor replay --lesson 1.3 --keys '4lx10lx2lx6lx'
  vimtutor replay --lesson 2.1 --keys 'dw<Esc>u'`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVarP(&replayLesson, "lesson", "l", "1.1", "lesson whose buffer to start from")
	replayCmd.Flags().StringVarP(&replayKeys, "keys", "k", "", "keys to send, in vim notation")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, _ []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	l, err := catalog.Get(replayLesson)
	if err != nil {
		return err
	}
	keys, err := vim.ParseKeys(replayKeys)
	if err != nil {
		return fmt.Errorf("parsing keys: %w", err)
	}

	ed := vim.New(l.Initial, vim.WithFileName(cfg.Engine.FileName))
	var commands []string
	for _, k := range keys {
		var res vim.Result
		ed, res = ed.HandleKey(k)
		if res.Command != "" {
			commands = append(commands, res.Command)
		}
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "lesson:  %s\n", l.Heading())
	_, _ = fmt.Fprintln(out, "buffer:")
	for i, line := range ed.Lines() {
		_, _ = fmt.Fprintf(out, "%4d  %s\n", i+1, line)
	}
	cur := ed.Cursor()
	_, _ = fmt.Fprintf(out, "cursor:  %d:%d\n", cur.Line+1, cur.Col+1)
	_, _ = fmt.Fprintf(out, "mode:    %s\n", ed.Mode())
	if msg := ed.Message(); msg != "" {
		_, _ = fmt.Fprintf(out, "message: %s\n", msg)
	}
	if len(commands) > 0 {
		_, _ = fmt.Fprintf(out, "command: %s\n", strings.Join(commands, ", "))
	}

	v := lesson.Check(l, ed.Lines(), cur)
	for _, c := range commands {
		if l.CompletesOnCommand(c) {
			v.Complete = true
		}
	}
	if v.Complete {
		_, _ = fmt.Fprintln(out, "target:  met")
	} else {
		_, _ = fmt.Fprintln(out, "target:  not met")
		if v.Hint != "" {
			_, _ = fmt.Fprintf(out, "hint:    %s\n", v.Hint)
		}
	}
	return nil
}
