// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

// ColorToken identifies a themeable color in dot notation.
type ColorToken string

// Themeable color tokens.
const (
	TokenTextPrimary   ColorToken = "text.primary"
	TokenTextSecondary ColorToken = "text.secondary"
	TokenTextMuted     ColorToken = "text.muted"
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"
	TokenBeadNormal    ColorToken = "bead.normal"
	TokenBeadHover     ColorToken = "bead.hover"
	TokenBeadInactive  ColorToken = "bead.inactive"
	TokenFrame         ColorToken = "frame"
	TokenRod           ColorToken = "rod"
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenCursor        ColorToken = "cursor"
)

// Adaptive color variables, mutated by ApplyTheme. The defaults mirror
// the default preset.
var (
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#18181B", Dark: "#E4E4E7"}
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#3F3F46", Dark: "#A1A1AA"}
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#A1A1AA", Dark: "#71717A"}
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	BeadNormalColor    = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#DC2626"}
	BeadHoverColor     = lipgloss.AdaptiveColor{Light: "#F87171", Dark: "#FECACA"}
	BeadInactiveColor  = lipgloss.AdaptiveColor{Light: "#FCA5A5", Dark: "#7F1D1D"}
	FrameColor         = lipgloss.AdaptiveColor{Light: "#52525B", Dark: "#3F3F46"}
	RodColor           = lipgloss.AdaptiveColor{Light: "#71717A", Dark: "#52525B"}
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D4D4D8", Dark: "#3F3F46"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#54A0FF"}
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#54A0FF"}
	CursorColor        = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}
)

// tokenTargets maps each token to the variable it themes.
var tokenTargets = map[ColorToken]*lipgloss.AdaptiveColor{
	TokenTextPrimary:   &TextPrimaryColor,
	TokenTextSecondary: &TextSecondaryColor,
	TokenTextMuted:     &TextMutedColor,
	TokenStatusSuccess: &StatusSuccessColor,
	TokenStatusWarning: &StatusWarningColor,
	TokenStatusError:   &StatusErrorColor,
	TokenBeadNormal:    &BeadNormalColor,
	TokenBeadHover:     &BeadHoverColor,
	TokenBeadInactive:  &BeadInactiveColor,
	TokenFrame:         &FrameColor,
	TokenRod:           &RodColor,
	TokenBorderDefault: &BorderDefaultColor,
	TokenBorderFocus:   &BorderFocusColor,
	TokenOverlayTitle:  &OverlayTitleColor,
	TokenCursor:        &CursorColor,
}

// Derived styles rebuilt whenever the theme changes.
var (
	SelectionIndicatorStyle lipgloss.Style
	StatusBarStyle          lipgloss.Style
	HelpStyle               lipgloss.Style
	ErrorStyle              lipgloss.Style
	TitleStyle              lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles recomputes the derived style values from the current
// color variables.
func rebuildStyles() {
	SelectionIndicatorStyle = lipgloss.NewStyle().Foreground(BorderFocusColor).Bold(true)
	StatusBarStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	HelpStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	TitleStyle = lipgloss.NewStyle().Foreground(OverlayTitleColor).Bold(true)
}
