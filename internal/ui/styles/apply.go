// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ThemeConfig carries the theme selection from configuration into the
// styles package without importing the config package.
type ThemeConfig struct {
	Preset string
	Mode   string
	Colors map[string]string
}

// ApplyTheme applies a preset (or the default) and then any individual
// color overrides, updating the package color variables and rebuilding
// the derived styles. Overrides take precedence over the preset.
func ApplyTheme(cfg ThemeConfig) error {
	presetName := cfg.Preset
	if presetName == "" {
		presetName = "default"
	}
	preset, ok := Presets[presetName]
	if !ok {
		return fmt.Errorf("unknown theme preset %q", cfg.Preset)
	}

	for token, hex := range preset.Colors {
		if target, ok := tokenTargets[token]; ok {
			target.Dark = hex
		}
	}

	for key, hex := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token %q", key)
		}
		if !isValidHexColor(hex) {
			return fmt.Errorf("invalid hex color %q for token %q", hex, key)
		}
		tokenTargets[token].Dark = hex
	}

	applyMode(cfg.Mode)
	rebuildStyles()
	return nil
}

// applyMode forces light or dark rendering when configured; otherwise
// terminal background detection decides.
func applyMode(mode string) {
	switch mode {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	default:
		lipgloss.SetHasDarkBackground(termenv.HasDarkBackground())
	}
}

// isValidToken reports whether token names a themeable color.
func isValidToken(token ColorToken) bool {
	_, ok := tokenTargets[token]
	return ok
}

// isValidHexColor reports whether s is a #RGB or #RRGGBB hex color.
func isValidHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
