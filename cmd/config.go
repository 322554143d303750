package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/vimtutor/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change the config file",
	// An invalid config must not stop config set from fixing it.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), configPath())
		return err
	},
}

var configSetCmd = &cobra.Command{
	Use:     "set <key> <value>",
	Short:   "Set a config value, keeping the rest of the file",
	Example: "  vimtutor config set ui.theme nord\n  vimtutor config set progress.backend memory",
	Args:    cobra.ExactArgs(2),
	RunE:    runConfigSet,
}

func init() {
	configCmd.AddCommand(configPathCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	path := configPath()
	if err := config.SetValue(path, key, value); err != nil {
		return err
	}
	// Reload so a bad value is reported now rather than at next start.
	if _, err := config.Load(viper.New(), path); err != nil {
		return fmt.Errorf("%s saved but the config is now invalid: %w", key, err)
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", key, value, path)
	return err
}
