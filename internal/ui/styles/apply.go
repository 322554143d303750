package styles

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig mirrors the ui section of config.Config to avoid an import cycle.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()
	return nil
}

func applyColors(colors map[ColorToken]string) {
	targets := map[ColorToken]*lipgloss.AdaptiveColor{
		TokenTextPrimary:     &TextPrimaryColor,
		TokenTextMuted:       &TextMutedColor,
		TokenTextTitle:       &TextTitleColor,
		TokenBorderDefault:   &BorderDefaultColor,
		TokenBorderFocus:     &BorderFocusColor,
		TokenStatusSuccess:   &StatusSuccessColor,
		TokenStatusWarning:   &StatusWarningColor,
		TokenStatusError:     &StatusErrorColor,
		TokenModeNormal:      &ModeNormalColor,
		TokenModeInsert:      &ModeInsertColor,
		TokenModeReplace:     &ModeReplaceColor,
		TokenModeVisual:      &ModeVisualColor,
		TokenModeCommand:     &ModeCommandColor,
		TokenEditorCursor:    &EditorCursorColor,
		TokenEditorSelection: &EditorSelectionColor,
		TokenEditorLineNr:    &EditorLineNrColor,
	}
	for token, hex := range colors {
		if target, ok := targets[token]; ok {
			// Presets are tuned for dark terminals; use the same color in both modes.
			*target = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}
}

// isValidHexColor accepts #RGB and #RRGGBB.
func isValidHexColor(s string) bool {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 32)
	return err == nil
}
