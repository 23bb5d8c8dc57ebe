package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresetDBPath_ConfiguredWins(t *testing.T) {
	result := PresetDBPath(filepath.FromSlash("/tmp/custom.db"))
	require.Equal(t, filepath.FromSlash("/tmp/custom.db"), result)
}

func TestPresetDBPath_DefaultUnderConfigDir(t *testing.T) {
	result := PresetDBPath("")
	require.NotEmpty(t, result)
	require.Equal(t, "presets.db", filepath.Base(result))
}

func TestLogPath_ConfiguredWins(t *testing.T) {
	result := LogPath(filepath.FromSlash("/tmp/out.log"))
	require.Equal(t, filepath.FromSlash("/tmp/out.log"), result)
}

func TestLogPath_XDGStateHome(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", filepath.FromSlash("/tmp/state"))
	result := LogPath("")
	require.Equal(t, filepath.FromSlash("/tmp/state/soroban/soroban.log"), result)
}

func TestConfigPath_NonEmpty(t *testing.T) {
	require.NotEmpty(t, ConfigPath())
	require.Equal(t, "config.yaml", filepath.Base(ConfigPath()))
}
