package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is the vimtutor color scheme.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default vimtutor theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CCCCCC",
		TokenTextMuted:       "#696969",
		TokenTextTitle:       "#54A0FF",
		TokenBorderDefault:   "#696969",
		TokenBorderFocus:     "#FFFFFF",
		TokenStatusSuccess:   "#73F59F",
		TokenStatusWarning:   "#FECA57",
		TokenStatusError:     "#FF8787",
		TokenModeNormal:      "#54A0FF",
		TokenModeInsert:      "#73F59F",
		TokenModeReplace:     "#FF8787",
		TokenModeVisual:      "#FF9F43",
		TokenModeCommand:     "#FECA57",
		TokenEditorCursor:    "#FFFFFF",
		TokenEditorSelection: "#1A5276",
		TokenEditorLineNr:    "#696969",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha palette.
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Warm, cozy dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CDD6F4",
		TokenTextMuted:       "#6C7086",
		TokenTextTitle:       "#CBA6F7",
		TokenBorderDefault:   "#45475A",
		TokenBorderFocus:     "#B4BEFE",
		TokenStatusSuccess:   "#A6E3A1",
		TokenStatusWarning:   "#F9E2AF",
		TokenStatusError:     "#F38BA8",
		TokenModeNormal:      "#89B4FA",
		TokenModeInsert:      "#A6E3A1",
		TokenModeReplace:     "#F38BA8",
		TokenModeVisual:      "#FAB387",
		TokenModeCommand:     "#F9E2AF",
		TokenEditorCursor:    "#F5E0DC",
		TokenEditorSelection: "#45475A",
		TokenEditorLineNr:    "#6C7086",
	},
}

// DraculaPreset is the Dracula palette.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#F8F8F2",
		TokenTextMuted:       "#6272A4",
		TokenTextTitle:       "#BD93F9",
		TokenBorderDefault:   "#44475A",
		TokenBorderFocus:     "#FF79C6",
		TokenStatusSuccess:   "#50FA7B",
		TokenStatusWarning:   "#F1FA8C",
		TokenStatusError:     "#FF5555",
		TokenModeNormal:      "#8BE9FD",
		TokenModeInsert:      "#50FA7B",
		TokenModeReplace:     "#FF5555",
		TokenModeVisual:      "#FFB86C",
		TokenModeCommand:     "#F1FA8C",
		TokenEditorCursor:    "#F8F8F2",
		TokenEditorSelection: "#44475A",
		TokenEditorLineNr:    "#6272A4",
	},
}

// NordPreset is the Nord palette.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#ECEFF4",
		TokenTextMuted:       "#4C566A",
		TokenTextTitle:       "#88C0D0",
		TokenBorderDefault:   "#4C566A",
		TokenBorderFocus:     "#88C0D0",
		TokenStatusSuccess:   "#A3BE8C",
		TokenStatusWarning:   "#EBCB8B",
		TokenStatusError:     "#BF616A",
		TokenModeNormal:      "#81A1C1",
		TokenModeInsert:      "#A3BE8C",
		TokenModeReplace:     "#BF616A",
		TokenModeVisual:      "#D08770",
		TokenModeCommand:     "#EBCB8B",
		TokenEditorCursor:    "#D8DEE9",
		TokenEditorSelection: "#434C5E",
		TokenEditorLineNr:    "#4C566A",
	},
}

// HighContrastPreset maximizes contrast for accessibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#FFFFFF",
		TokenTextMuted:       "#BBBBBB",
		TokenTextTitle:       "#FFFF00",
		TokenBorderDefault:   "#FFFFFF",
		TokenBorderFocus:     "#FFFF00",
		TokenStatusSuccess:   "#00FF00",
		TokenStatusWarning:   "#FFFF00",
		TokenStatusError:     "#FF0000",
		TokenModeNormal:      "#00FFFF",
		TokenModeInsert:      "#00FF00",
		TokenModeReplace:     "#FF0000",
		TokenModeVisual:      "#FF00FF",
		TokenModeCommand:     "#FFFF00",
		TokenEditorCursor:    "#FFFFFF",
		TokenEditorSelection: "#0000AA",
		TokenEditorLineNr:    "#BBBBBB",
	},
}
