// Package config provides configuration types and defaults for vimtutor.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zjrosen/vimtutor/internal/log"
)

// EnvPrefix is the prefix for environment overrides (VIMTUTOR_UI_THEME=nord).
const EnvPrefix = "VIMTUTOR"

// Config holds all configuration options for vimtutor.
type Config struct {
	Lessons  LessonsConfig  `mapstructure:"lessons"`
	Progress ProgressConfig `mapstructure:"progress"`
	UI       UIConfig       `mapstructure:"ui"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Debug    DebugConfig    `mapstructure:"debug"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
}

// LessonsConfig controls where lessons come from.
type LessonsConfig struct {
	// Dir holds user lesson YAML files that add to or replace built-in lessons by ID.
	Dir string `mapstructure:"dir"`
	// Watch reloads lessons when files in Dir change.
	Watch bool `mapstructure:"watch"`
	// Start is the lesson to open when no progress has been saved.
	Start string `mapstructure:"start"`
}

// ProgressConfig controls where progress is stored.
type ProgressConfig struct {
	Backend string `mapstructure:"backend"` // "sqlite" (default) or "memory"
	Path    string `mapstructure:"path"`    // sqlite file
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	Theme         string            `mapstructure:"theme"`          // preset name, see styles.Presets
	MarkdownStyle string            `mapstructure:"markdown_style"` // "auto" (default), "dark" or "light"
	ShowHints     bool              `mapstructure:"show_hints"`
	Wrap          bool              `mapstructure:"wrap"` // wrap lesson instructions to the pane width
	Colors        map[string]string `mapstructure:"colors"`
}

// EngineConfig holds editor engine options.
type EngineConfig struct {
	FileName string `mapstructure:"file_name"` // name reported by Ctrl-g
}

// DebugConfig holds debug logging options.
type DebugConfig struct {
	LogPath  string `mapstructure:"log_path"`
	LogLevel string `mapstructure:"log_level"`
}

// TracingConfig holds distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`

	// ServiceName is reported as the otel service.name resource attribute.
	ServiceName string `mapstructure:"service_name"`
}

// Dir returns $XDG_CONFIG_HOME/vimtutor, falling back to ~/.config/vimtutor.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vimtutor")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vimtutor"
	}
	return filepath.Join(home, ".config", "vimtutor")
}

// DefaultConfigPath returns the config file used when --config is not given.
func DefaultConfigPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	dir := Dir()
	return Config{
		Lessons: LessonsConfig{
			Dir:   filepath.Join(dir, "lessons"),
			Watch: true,
			Start: "1.1",
		},
		Progress: ProgressConfig{
			Backend: "sqlite",
			Path:    filepath.Join(dir, "progress.db"),
		},
		UI: UIConfig{
			Theme:         "default",
			MarkdownStyle: "auto",
			ShowHints:     true,
			Wrap:          true,
		},
		Engine: EngineConfig{
			FileName: "lesson.txt",
		},
		Debug: DebugConfig{
			LogLevel: "debug",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     filepath.Join(dir, "traces", "traces.jsonl"),
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
			ServiceName:  "vimtutor",
		},
	}
}

// SetDefaults registers every default with v so unset keys unmarshal to them
// and environment overrides are picked up for every key.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("lessons.dir", d.Lessons.Dir)
	v.SetDefault("lessons.watch", d.Lessons.Watch)
	v.SetDefault("lessons.start", d.Lessons.Start)
	v.SetDefault("progress.backend", d.Progress.Backend)
	v.SetDefault("progress.path", d.Progress.Path)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("ui.show_hints", d.UI.ShowHints)
	v.SetDefault("ui.wrap", d.UI.Wrap)
	v.SetDefault("engine.file_name", d.Engine.FileName)
	v.SetDefault("debug.log_path", d.Debug.LogPath)
	v.SetDefault("debug.log_level", d.Debug.LogLevel)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
}

// Load reads configuration into a Config. An empty path means the default
// location, which is created from the template when missing.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = DefaultConfigPath()
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			if err := WriteDefaultConfig(path); err != nil {
				// Run on defaults rather than refusing to start.
				log.Warn(log.CatConfig, "Could not write default config", "path", path, "error", err)
			}
		}
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		log.Debug(log.CatConfig, "No config file, using defaults", "path", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enum values and ranges.
func (c Config) Validate() error {
	switch c.Progress.Backend {
	case "", "sqlite", "memory":
	default:
		return fmt.Errorf("progress.backend must be \"sqlite\" or \"memory\", got %q", c.Progress.Backend)
	}
	if c.Progress.Backend != "memory" && c.Progress.Path == "" {
		return errors.New("progress.path is required for the sqlite backend")
	}

	switch c.UI.MarkdownStyle {
	case "", "auto", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"auto\", \"dark\", or \"light\", got %q", c.UI.MarkdownStyle)
	}

	if _, err := log.ParseLevel(c.Debug.LogLevel); err != nil {
		return fmt.Errorf("debug.log_level: %w", err)
	}

	return ValidateTracing(c.Tracing)
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return errors.New("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return errors.New("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# vimtutor configuration

lessons:
  # Extra or replacement lessons (*.yaml), matched to built-ins by id
  # dir: ~/.config/vimtutor/lessons
  watch: true      # Reload lessons when files in dir change
  start: "1.1"     # Lesson to open when there is no saved progress

progress:
  backend: sqlite  # sqlite (default) or memory (nothing saved)
  # path: ~/.config/vimtutor/progress.db

ui:
  theme: default         # default, dracula, nord, catppuccin-mocha, high-contrast
  markdown_style: auto   # Lesson text style: auto, dark, or light
  show_hints: true       # Show a hint line when the buffer is close to the target
  wrap: true             # Wrap lesson text to the pane width
  # Override single colors:
  # colors:
  #   mode.insert: "#73F59F"
  #   editor.cursor: "#FFFFFF"

engine:
  file_name: lesson.txt  # Name shown by Ctrl-g

debug:
  # log_path: /tmp/vimtutor.log   # Same as --debug
  log_level: debug               # debug, info, warn, error

# Distributed tracing of practice sessions
# tracing:
#   enabled: false
#   exporter: file                 # none, file, stdout, otlp
#   file_path: ~/.config/vimtutor/traces/traces.jsonl
#   otlp_endpoint: localhost:4317
#   sample_rate: 1.0
#   service_name: vimtutor
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
