// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens users can override under ui.colors.
const (
	TokenTextPrimary ColorToken = "text.primary"
	TokenTextMuted   ColorToken = "text.muted"
	TokenTextTitle   ColorToken = "text.title"

	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	TokenModeNormal  ColorToken = "mode.normal"
	TokenModeInsert  ColorToken = "mode.insert"
	TokenModeReplace ColorToken = "mode.replace"
	TokenModeVisual  ColorToken = "mode.visual"
	TokenModeCommand ColorToken = "mode.command"

	TokenEditorCursor    ColorToken = "editor.cursor"
	TokenEditorSelection ColorToken = "editor.selection"
	TokenEditorLineNr    ColorToken = "editor.line_number"
)

// AllTokens lists every token in display order.
var AllTokens = []ColorToken{
	TokenTextPrimary, TokenTextMuted, TokenTextTitle,
	TokenBorderDefault, TokenBorderFocus,
	TokenStatusSuccess, TokenStatusWarning, TokenStatusError,
	TokenModeNormal, TokenModeInsert, TokenModeReplace, TokenModeVisual, TokenModeCommand,
	TokenEditorCursor, TokenEditorSelection, TokenEditorLineNr,
}

func isValidToken(t ColorToken) bool {
	for _, known := range AllTokens {
		if known == t {
			return true
		}
	}
	return false
}
