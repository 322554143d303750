package styles

import "github.com/charmbracelet/lipgloss"

// Colors, overwritten by ApplyTheme.
var (
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"}
	TextTitleColor     = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#696969"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	ModeNormalColor  = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#54A0FF"}
	ModeInsertColor  = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ModeReplaceColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ModeVisualColor  = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FF9F43"}
	ModeCommandColor = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#FECA57"}

	EditorCursorColor    = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	EditorSelectionColor = lipgloss.AdaptiveColor{Light: "#BCC0CC", Dark: "#1A5276"}
	EditorLineNrColor    = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#696969"}
)

// Styles, rebuilt by ApplyTheme.
var (
	TitleStyle     lipgloss.Style
	MutedStyle     lipgloss.Style
	TextStyle      lipgloss.Style
	SuccessStyle   lipgloss.Style
	WarningStyle   lipgloss.Style
	ErrorStyle     lipgloss.Style
	CursorStyle    lipgloss.Style
	SelectionStyle lipgloss.Style
	LineNrStyle    lipgloss.Style
	BannerStyle    lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextTitleColor)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	TextStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	SuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)
	WarningStyle = lipgloss.NewStyle().Foreground(StatusWarningColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	CursorStyle = lipgloss.NewStyle().Reverse(true).Foreground(EditorCursorColor)
	SelectionStyle = lipgloss.NewStyle().Background(EditorSelectionColor)
	LineNrStyle = lipgloss.NewStyle().Foreground(EditorLineNrColor)
	BannerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Foreground(lipgloss.Color("#000000")).
		Background(StatusSuccessColor)
}

// ModeBadgeStyle returns the status-line badge style for a mode name
// (NORMAL, INSERT, REPLACE, VISUAL, VISUAL LINE, COMMAND).
func ModeBadgeStyle(mode string) lipgloss.Style {
	var c lipgloss.AdaptiveColor
	switch mode {
	case "INSERT":
		c = ModeInsertColor
	case "REPLACE":
		c = ModeReplaceColor
	case "VISUAL", "VISUAL LINE":
		c = ModeVisualColor
	case "COMMAND":
		c = ModeCommandColor
	default:
		c = ModeNormalColor
	}
	return lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Foreground(lipgloss.Color("#000000")).
		Background(c)
}
