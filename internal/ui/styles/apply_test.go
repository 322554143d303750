package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func resetTheme(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { require.NoError(t, ApplyTheme(ThemeConfig{})) })
}

func TestApplyTheme_Preset(t *testing.T) {
	resetTheme(t)

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "dracula"}))
	require.Equal(t, lipgloss.AdaptiveColor{Light: "#50FA7B", Dark: "#50FA7B"}, ModeInsertColor)
	require.Equal(t, lipgloss.AdaptiveColor{Light: "#44475A", Dark: "#44475A"}, EditorSelectionColor)
}

func TestApplyTheme_OverridesBeatPreset(t *testing.T) {
	resetTheme(t)

	require.NoError(t, ApplyTheme(ThemeConfig{
		Preset: "nord",
		Colors: map[string]string{"mode.insert": "#123456"},
	}))
	require.Equal(t, "#123456", ModeInsertColor.Dark)
	require.Equal(t, "#81A1C1", ModeNormalColor.Dark)
}

func TestApplyTheme_Errors(t *testing.T) {
	resetTheme(t)

	tests := []struct {
		name string
		cfg  ThemeConfig
		want string
	}{
		{"unknown preset", ThemeConfig{Preset: "solarized"}, "unknown theme preset: solarized"},
		{"unknown token", ThemeConfig{Colors: map[string]string{"mode.bogus": "#fff"}}, "unknown color token: mode.bogus"},
		{"bad hex", ThemeConfig{Colors: map[string]string{"mode.insert": "green"}}, "invalid hex color for mode.insert: green"},
		{"short hex", ThemeConfig{Colors: map[string]string{"mode.insert": "#12345"}}, "invalid hex color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ApplyTheme(tt.cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPresets_CoverEveryToken(t *testing.T) {
	for name, p := range Presets {
		require.Equal(t, name, p.Name)
		for _, token := range AllTokens {
			hex, ok := p.Colors[token]
			require.True(t, ok, "preset %s missing %s", name, token)
			require.True(t, isValidHexColor(hex), "preset %s has bad color for %s", name, token)
		}
	}
}

func TestIsValidHexColor(t *testing.T) {
	require.True(t, isValidHexColor("#fff"))
	require.True(t, isValidHexColor("#A1b2C3"))
	require.False(t, isValidHexColor("fff"))
	require.False(t, isValidHexColor("#ggg"))
	require.False(t, isValidHexColor("#"))
}
