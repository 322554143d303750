package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.Equal(t, "1.1", cfg.Lessons.Start)
	require.True(t, cfg.Lessons.Watch)
	require.Equal(t, "sqlite", cfg.Progress.Backend)
	require.Equal(t, "default", cfg.UI.Theme)
	require.Equal(t, "lesson.txt", cfg.Engine.FileName)
	require.False(t, cfg.Tracing.Enabled)
	require.Equal(t, 1.0, cfg.Tracing.SampleRate)
	require.NoError(t, cfg.Validate())
}

func TestDir_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	require.Equal(t, filepath.Join("/tmp/xdg", "vimtutor"), Dir())
	require.Equal(t, filepath.Join("/tmp/xdg", "vimtutor", "config.yaml"), DefaultConfigPath())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown backend", func(c *Config) { c.Progress.Backend = "redis" }, "progress.backend"},
		{"sqlite without path", func(c *Config) { c.Progress.Path = "" }, "progress.path"},
		{"memory without path", func(c *Config) { c.Progress.Backend = "memory"; c.Progress.Path = "" }, ""},
		{"bad markdown style", func(c *Config) { c.UI.MarkdownStyle = "sepia" }, "ui.markdown_style"},
		{"bad log level", func(c *Config) { c.Debug.LogLevel = "chatty" }, "debug.log_level"},
		{"sample rate high", func(c *Config) { c.Tracing.SampleRate = 1.5 }, "sample_rate"},
		{"bad exporter", func(c *Config) { c.Tracing.Exporter = "zipkin" }, "tracing.exporter"},
		{"otlp without endpoint", func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.Exporter = "otlp"
			c.Tracing.OTLPEndpoint = ""
		}, "otlp_endpoint"},
		{"disabled tracing skips path checks", func(c *Config) { c.Tracing.FilePath = "" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
lessons:
  start: "2.3"
ui:
  theme: nord
  show_hints: false
progress:
  backend: memory
`), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	require.Equal(t, "2.3", cfg.Lessons.Start)
	require.Equal(t, "nord", cfg.UI.Theme)
	require.False(t, cfg.UI.ShowHints)
	require.Equal(t, "memory", cfg.Progress.Backend)
	require.Equal(t, "lesson.txt", cfg.Engine.FileName, "unset keys keep defaults")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: nord\n"), 0o600))
	t.Setenv("VIMTUTOR_UI_THEME", "dracula")
	t.Setenv("VIMTUTOR_ENGINE_FILE_NAME", "practice.txt")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	require.Equal(t, "dracula", cfg.UI.Theme)
	require.Equal(t, "practice.txt", cfg.Engine.FileName)
}

func TestLoad_MissingExplicitFileUsesDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Defaults().UI, cfg.UI)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("progress:\n  backend: redis\n"), 0o600))

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "progress.backend")
}

func TestLoad_WritesDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := Load(viper.New(), "")
	require.NoError(t, err)

	data, err := os.ReadFile(DefaultConfigPath())
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))
}

func TestDefaultConfigTemplate_Parses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "default", cfg.UI.Theme)
	require.Equal(t, "1.1", cfg.Lessons.Start)
}
