package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List lessons and which ones you have completed",
	Args:  cobra.NoArgs,
	RunE:  runLessons,
}

func init() {
	rootCmd.AddCommand(lessonsCmd)
}

func runLessons(cmd *cobra.Command, _ []string) (err error) {
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

	out := cmd.OutOrStdout()
	for _, ch := range catalog.Chapters() {
		_, _ = fmt.Fprintf(out, "Chapter %d: %s\n", ch.Number, ch.Title)
		for _, id := range ch.LessonIDs {
			l, err := catalog.Get(id)
			if err != nil {
				return err
			}
			mark := " "
			if prog.IsCompleted(id) {
				mark = "✓"
			}
			current := ""
			if id == prog.CurrentLessonID {
				current = "  <- current"
			}
			_, _ = fmt.Fprintf(out, "  %s %-5s %s%s\n", mark, l.ID, l.Title, current)
		}
	}
	return nil
}
