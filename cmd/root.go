// Package cmd implements the vimtutor command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/vimtutor/internal/app"
	"github.com/zjrosen/vimtutor/internal/config"
	"github.com/zjrosen/vimtutor/internal/lesson"
	"github.com/zjrosen/vimtutor/internal/log"
	"github.com/zjrosen/vimtutor/internal/progress"
	"github.com/zjrosen/vimtutor/internal/progress/sqlite"
	"github.com/zjrosen/vimtutor/internal/tracing"
	"github.com/zjrosen/vimtutor/internal/tutor"
	"github.com/zjrosen/vimtutor/internal/ui/styles"
	"github.com/zjrosen/vimtutor/internal/vim"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in the command line.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
	cfgErr  error

	lessonFlag string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "vimtutor",
	Short: "Learn vim in the terminal",
	Long: `An interactive vim tutor. Each lesson explains a few commands and gives you
a buffer to practice on; the lesson completes when the buffer matches the target.`,
	Version:       version,
	SilenceUsage:  true,
	RunE:          runApp,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cfgErr
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/vimtutor/config.yaml)")
	rootCmd.Flags().StringVarP(&lessonFlag, "lesson", "l", "",
		"open this lesson instead of the saved one (e.g. 2.1)")
	rootCmd.Flags().BoolVarP(&debugFlag, "debug", "d", false,
		"write a debug log (debug.log_path, or vimtutor-debug.log) and enable the log overlay")
}

func initConfig() {
	cfg, cfgErr = config.Load(viper.New(), cfgFile)
	if cfgErr != nil {
		cfgErr = fmt.Errorf("loading config: %w", cfgErr)
	}
}

// configPath is the file config set writes to.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// initLogging installs the debug log when --debug or debug.log_path asks for it.
func initLogging() (func(), error) {
	path := cfg.Debug.LogPath
	if debugFlag && path == "" {
		path = "vimtutor-debug.log"
	}
	if path == "" {
		return func() {}, nil
	}
	cleanup, err := log.Init(path)
	if err != nil {
		return nil, err
	}
	level, err := log.ParseLevel(cfg.Debug.LogLevel)
	if err != nil {
		cleanup()
		return nil, err
	}
	log.SetMinLevel(level)
	log.Info(log.CatConfig, "Debug logging enabled", "path", path, "level", level)
	return cleanup, nil
}

// openStore opens the configured progress backend.
func openStore(ctx context.Context) (progress.Store, error) {
	if cfg.Progress.Backend == "memory" {
		return progress.NewMemoryStore(), nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Progress.Path), 0o750); err != nil {
		return nil, fmt.Errorf("creating progress directory: %w", err)
	}
	store, err := sqlite.Open(ctx, cfg.Progress.Path)
	if err != nil {
		return nil, fmt.Errorf("opening progress %s: %w", cfg.Progress.Path, err)
	}
	return store, nil
}

func loadCatalog() (*lesson.Catalog, error) {
	catalog, err := lesson.Load(cfg.Lessons.Dir)
	if err != nil {
		return nil, fmt.Errorf("loading lessons: %w", err)
	}
	return catalog, nil
}

func runApp(cmd *cobra.Command, args []string) (err error) {
	cleanupLog, err := initLogging()
	if err != nil {
		return err
	}
	defer cleanupLog()

	if err := styles.ApplyTheme(styles.ThemeConfig{Preset: cfg.UI.Theme, Colors: cfg.UI.Colors}); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, store.Close())
	}()

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("creating tracer: %w", err)
	}
	defer func() {
		_ = provider.Shutdown(context.Background())
	}()

	t := tutor.New(catalog, store,
		tutor.WithTracer(provider),
		tutor.WithStartLesson(cfg.Lessons.Start),
		tutor.WithEngineOptions(vim.WithFileName(cfg.Engine.FileName)),
	)
	defer func() {
		err = errors.Join(err, t.Close())
	}()

	if err := t.Start(ctx, lessonFlag); err != nil {
		return fmt.Errorf("starting lesson: %w", err)
	}
	if cfg.Lessons.Watch {
		if err := t.Watch(ctx); err != nil {
			// The tutor still works without hot reload.
			log.Warn(log.CatWatcher, "Lesson watcher not started", "error", err)
		}
	}

	zone.NewGlobal()
	model := app.New(app.Options{
		Tutor:    t,
		UI:       cfg.UI,
		FileName: cfg.Engine.FileName,
		Debug:    debugFlag || cfg.Debug.LogPath != "",
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	final, runErr := p.Run()
	if m, ok := final.(app.Model); ok {
		_ = m.Close()
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", runErr)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
