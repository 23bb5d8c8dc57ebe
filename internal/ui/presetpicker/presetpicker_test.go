package presetpicker

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/soroban/internal/abacus"
	"github.com/zjrosen/soroban/internal/presets"
)

func makePresets(t *testing.T, names ...string) []*presets.Preset {
	t.Helper()
	out := make([]*presets.Preset, 0, len(names))
	for _, name := range names {
		p, err := presets.NewPreset(name, abacus.Params{
			Columns:     9,
			UpperBeads:  2,
			LowerBeads:  5,
			UpperWeight: 5,
			Radix:       10,
		})
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPresetPicker_New(t *testing.T) {
	m := New()

	assert.False(t, m.IsActive())
	assert.Equal(t, 0, m.PresetCount())
	assert.Nil(t, m.Selected())
}

func TestPresetPicker_ActivateDeactivate(t *testing.T) {
	m := New().Activate(makePresets(t, "suanpan", "soroban"))

	assert.True(t, m.IsActive())
	assert.Equal(t, 2, m.PresetCount())
	require.NotNil(t, m.Selected())
	assert.Equal(t, "suanpan", m.Selected().Name())

	m = m.Deactivate()
	assert.False(t, m.IsActive())
	assert.Nil(t, m.Selected())
}

func TestPresetPicker_Navigation(t *testing.T) {
	m := New().Activate(makePresets(t, "a", "b", "c"))

	m = m.Next()
	assert.Equal(t, "b", m.Selected().Name())

	m = m.Next()
	m = m.Next()
	assert.Equal(t, "a", m.Selected().Name(), "next wraps around")

	m = m.Prev()
	assert.Equal(t, "c", m.Selected().Name(), "prev wraps around")
}

func TestPresetPicker_Filter(t *testing.T) {
	m := New().Activate(makePresets(t, "suanpan", "soroban", "counting-frame"))

	m, consumed, _ := m.HandleKey(keyRune('s'))
	require.True(t, consumed)
	assert.Len(t, m.filtered, 2, "filter matches suanpan and soroban")

	m, _, _ = m.HandleKey(keyRune('o'))
	require.Len(t, m.filtered, 1)
	assert.Equal(t, "soroban", m.Selected().Name())

	// Backspace widens the filter again.
	m, _, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Len(t, m.filtered, 2)
}

func TestPresetPicker_EnterSelects(t *testing.T) {
	m := New().Activate(makePresets(t, "suanpan", "soroban"))
	m = m.Next()

	m, consumed, selected := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, consumed)
	require.NotNil(t, selected)
	assert.Equal(t, "soroban", selected.Name())
	assert.False(t, m.IsActive(), "selection closes the picker")
}

func TestPresetPicker_EscCloses(t *testing.T) {
	m := New().Activate(makePresets(t, "suanpan"))

	m, consumed, selected := m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, consumed)
	assert.Nil(t, selected)
	assert.False(t, m.IsActive())
}

func TestPresetPicker_InactiveIgnoresKeys(t *testing.T) {
	m := New()

	_, consumed, selected := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, consumed)
	assert.Nil(t, selected)
}

func TestPresetPicker_Scrolling(t *testing.T) {
	names := make([]string, 10)
	for i := range names {
		names[i] = fmt.Sprintf("preset-%02d", i)
	}
	m := New().Activate(makePresets(t, names...))

	for range 7 {
		m = m.Next()
	}
	assert.Equal(t, "preset-07", m.Selected().Name())
	assert.Equal(t, 2, m.scrollOffset, "window follows the cursor down")

	view := m.View(60)
	assert.Contains(t, view, "of 10 presets", "scroll indicator shown")
}

func TestPresetPicker_View(t *testing.T) {
	m := New().Activate(makePresets(t, "suanpan"))
	view := m.View(60)

	assert.Contains(t, view, "suanpan")
	assert.Contains(t, view, "9 cols 2/5")
	assert.Contains(t, view, "base 10")
}

func TestPresetPicker_ViewEmptyFilter(t *testing.T) {
	m := New().Activate(makePresets(t, "suanpan"))
	m, _, _ = m.HandleKey(keyRune('z'))

	view := m.View(60)
	assert.Contains(t, view, "no matching presets")
	assert.Contains(t, view, "filter: z")
}
