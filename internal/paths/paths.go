// Package paths resolves the default locations of soroban's files.
package paths

import (
	"os"
	"path/filepath"
)

// ConfigPath returns the default config file location,
// ~/.config/soroban/config.yaml (or the platform equivalent).
func ConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "soroban.yaml")
	}
	return filepath.Join(dir, "soroban", "config.yaml")
}

// PresetDBPath returns the default presets database location. The
// explicit path from config wins when non-empty.
func PresetDBPath(configured string) string {
	if configured != "" {
		return configured
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "soroban-presets.db")
	}
	return filepath.Join(dir, "soroban", "presets.db")
}

// LogPath returns the default log file location. The explicit path
// from config wins when non-empty.
func LogPath(configured string) string {
	if configured != "" {
		return configured
	}
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "soroban", "soroban.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "soroban.log")
	}
	return filepath.Join(home, ".local", "state", "soroban", "soroban.log")
}
