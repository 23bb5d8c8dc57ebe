// Package config provides configuration types and defaults for soroban.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/soroban/internal/abacus"
)

// AbacusConfig defines the structural shape of the board.
type AbacusConfig struct {
	Columns     int    `mapstructure:"columns"`
	UpperBeads  int    `mapstructure:"upper_beads"`
	LowerBeads  int    `mapstructure:"lower_beads"`
	UpperWeight uint64 `mapstructure:"upper_weight"`
	Radix       uint64 `mapstructure:"radix"`
}

// Params converts the config section into board construction parameters.
func (a AbacusConfig) Params() abacus.Params {
	return abacus.Params{
		Columns:     a.Columns,
		UpperBeads:  a.UpperBeads,
		LowerBeads:  a.LowerBeads,
		UpperWeight: a.UpperWeight,
		Radix:       a.Radix,
	}
}

// Config holds all configuration options for soroban.
type Config struct {
	Abacus   AbacusConfig   `mapstructure:"abacus"`
	UI       UIConfig       `mapstructure:"ui"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowColumnValues bool `mapstructure:"show_column_values"`
	ShowTotal        bool `mapstructure:"show_total"`
	ShowStatusBar    bool `mapstructure:"show_status_bar"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "dracula", "nord",
	// "high-contrast"
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors allows overriding individual color tokens.
	// Keys use dot notation: "bead.normal", "text.primary", etc.
	Colors map[string]string `mapstructure:"colors"`
}

// DatabaseConfig holds preset storage options.
type DatabaseConfig struct {
	// Path to the presets database. Empty means the default location
	// under the user config directory.
	Path string `mapstructure:"path"`
}

// LogConfig holds logging options.
type LogConfig struct {
	// Path to the log file. Empty means the default location under the
	// user state directory.
	Path string `mapstructure:"path"`

	// Level is one of "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
}

// Validate checks configuration for errors beyond what board
// construction itself enforces.
func (c Config) Validate() error {
	if err := c.Abacus.Params().Validate(); err != nil {
		return fmt.Errorf("abacus: %w", err)
	}
	if c.Abacus.UpperBeads == 0 && c.Abacus.LowerBeads == 0 {
		return fmt.Errorf("abacus: at least one deck needs beads")
	}
	switch c.Theme.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("theme: invalid mode %q (want \"light\", \"dark\", or empty)", c.Theme.Mode)
	}
	return nil
}

// Defaults returns a Config with sensible default values: the classic
// 2/5 suanpan, nine columns, base 10.
func Defaults() Config {
	return Config{
		Abacus: AbacusConfig{
			Columns:     9,
			UpperBeads:  2,
			LowerBeads:  5,
			UpperWeight: 5,
			Radix:       10,
		},
		UI: UIConfig{
			ShowColumnValues: true,
			ShowTotal:        true,
			ShowStatusBar:    true,
		},
		Theme: ThemeConfig{
			Preset: "",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Soroban Configuration

# Board shape. Changing any of these rebuilds the board from scratch.
abacus:
  columns: 9        # number of digit columns
  upper_beads: 2    # beads in the weighted deck (0 disables it)
  lower_beads: 5    # beads in the unit deck
  upper_weight: 5   # value the weighted deck contributes when active
  radix: 10         # positional base; column i is worth radix^i

# UI settings
ui:
  show_column_values: true  # digit readout under each column
  show_total: true          # total value line above the frame
  show_status_bar: true     # status bar at bottom

# Theme configuration
# Use a preset theme or customize individual colors
theme:
  # Use a preset (run 'soroban themes' to see available presets):
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - Default soroban theme
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   dracula           - Dark theme with vibrant colors
  #   nord              - Arctic, north-bluish palette
  #   high-contrast     - High contrast for accessibility
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   bead.normal: "#DC2626"
  #   bead.hover: "#FECACA"
  #   frame: "#3F3F46"

# Preset storage (named board shapes + colors)
# database:
#   path: /path/to/presets.db

# Logging (the terminal belongs to the TUI, so logs go to a file)
log:
  level: info
  # path: /path/to/soroban.log
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
