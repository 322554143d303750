package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/vimtutor/internal/progress"
	"github.com/zjrosen/vimtutor/internal/ui/styles"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show saved progress",
	Args:  cobra.NoArgs,
	RunE:  runProgress,
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget all completed lessons and attempts",
	Args:  cobra.NoArgs,
	RunE:  runProgressReset,
}

func init() {
	progressCmd.AddCommand(progressResetCmd)
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, _ []string) (err error) {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	prog, err := store.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading progress: %w", err)
	}

	sum := progress.Summarize(prog, catalog)
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Completed %s\n", styles.FormatPercent(sum.Completed, sum.Total))
	_, _ = fmt.Fprintf(out, "Current lesson: %s\n", prog.CurrentLessonID)

	for _, l := range catalog.All() {
		lp, ok := prog.Lessons[l.ID]
		if !ok || !lp.Completed {
			continue
		}
		best := "-"
		if lp.BestKeystrokes > 0 {
			best = fmt.Sprintf("%d keys", lp.BestKeystrokes)
		}
		_, _ = fmt.Fprintf(out, "  ✓ %-5s %-32s attempts %d, best %s\n",
			l.ID, styles.TruncateString(l.Title, 32), lp.Attempts, best)
	}
	return nil
}

func runProgressReset(cmd *cobra.Command, _ []string) (err error) {
	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err := store.Reset(cmd.Context()); err != nil {
		return fmt.Errorf("resetting progress: %w", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Progress reset")
	return nil
}
