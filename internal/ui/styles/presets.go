// Package styles contains Lip Gloss style definitions.
package styles

// Preset is a named set of color token values applied as a base theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// DefaultPreset is the built-in soroban palette: red beads on a zinc
// frame.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default soroban theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#E4E4E7",
		TokenTextSecondary: "#A1A1AA",
		TokenTextMuted:     "#71717A",
		TokenStatusSuccess: "#10B981",
		TokenStatusWarning: "#F59E0B",
		TokenStatusError:   "#EF4444",
		TokenBeadNormal:    "#DC2626",
		TokenBeadHover:     "#FECACA",
		TokenBeadInactive:  "#7F1D1D",
		TokenFrame:         "#3F3F46",
		TokenRod:           "#52525B",
		TokenBorderDefault: "#3F3F46",
		TokenBorderFocus:   "#54A0FF",
		TokenOverlayTitle:  "#54A0FF",
		TokenCursor:        "#F59E0B",
	},
}

// Presets holds the built-in theme presets by name.
var Presets = map[string]Preset{
	"default": DefaultPreset,
	"catppuccin-mocha": {
		Name:        "catppuccin-mocha",
		Description: "Warm, cozy dark theme",
		Colors: map[ColorToken]string{
			TokenTextPrimary:   "#CDD6F4",
			TokenTextSecondary: "#BAC2DE",
			TokenTextMuted:     "#6C7086",
			TokenStatusSuccess: "#A6E3A1",
			TokenStatusWarning: "#F9E2AF",
			TokenStatusError:   "#F38BA8",
			TokenBeadNormal:    "#F38BA8",
			TokenBeadHover:     "#F5C2E7",
			TokenBeadInactive:  "#585B70",
			TokenFrame:         "#45475A",
			TokenRod:           "#585B70",
			TokenBorderDefault: "#45475A",
			TokenBorderFocus:   "#89B4FA",
			TokenOverlayTitle:  "#89B4FA",
			TokenCursor:        "#F9E2AF",
		},
	},
	"dracula": {
		Name:        "dracula",
		Description: "Dark theme with vibrant colors",
		Colors: map[ColorToken]string{
			TokenTextPrimary:   "#F8F8F2",
			TokenTextSecondary: "#BFBFBF",
			TokenTextMuted:     "#6272A4",
			TokenStatusSuccess: "#50FA7B",
			TokenStatusWarning: "#F1FA8C",
			TokenStatusError:   "#FF5555",
			TokenBeadNormal:    "#FF79C6",
			TokenBeadHover:     "#FFB8DE",
			TokenBeadInactive:  "#44475A",
			TokenFrame:         "#44475A",
			TokenRod:           "#6272A4",
			TokenBorderDefault: "#44475A",
			TokenBorderFocus:   "#BD93F9",
			TokenOverlayTitle:  "#BD93F9",
			TokenCursor:        "#F1FA8C",
		},
	},
	"nord": {
		Name:        "nord",
		Description: "Arctic, north-bluish palette",
		Colors: map[ColorToken]string{
			TokenTextPrimary:   "#ECEFF4",
			TokenTextSecondary: "#D8DEE9",
			TokenTextMuted:     "#4C566A",
			TokenStatusSuccess: "#A3BE8C",
			TokenStatusWarning: "#EBCB8B",
			TokenStatusError:   "#BF616A",
			TokenBeadNormal:    "#BF616A",
			TokenBeadHover:     "#D08770",
			TokenBeadInactive:  "#3B4252",
			TokenFrame:         "#434C5E",
			TokenRod:           "#4C566A",
			TokenBorderDefault: "#434C5E",
			TokenBorderFocus:   "#88C0D0",
			TokenOverlayTitle:  "#88C0D0",
			TokenCursor:        "#EBCB8B",
		},
	},
	"high-contrast": {
		Name:        "high-contrast",
		Description: "High contrast for accessibility",
		Colors: map[ColorToken]string{
			TokenTextPrimary:   "#FFFFFF",
			TokenTextSecondary: "#E0E0E0",
			TokenTextMuted:     "#B0B0B0",
			TokenStatusSuccess: "#00FF00",
			TokenStatusWarning: "#FFFF00",
			TokenStatusError:   "#FF0000",
			TokenBeadNormal:    "#FF0000",
			TokenBeadHover:     "#FFFF00",
			TokenBeadInactive:  "#808080",
			TokenFrame:         "#FFFFFF",
			TokenRod:           "#C0C0C0",
			TokenBorderDefault: "#FFFFFF",
			TokenBorderFocus:   "#00FFFF",
			TokenOverlayTitle:  "#00FFFF",
			TokenCursor:        "#FFFF00",
		},
	},
}

// PresetNames returns the preset names in a stable display order.
func PresetNames() []string {
	return []string{"default", "catppuccin-mocha", "dracula", "nord", "high-contrast"}
}
