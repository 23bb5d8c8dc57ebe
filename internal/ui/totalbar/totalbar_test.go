package totalbar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/soroban/internal/abacus"
)

func newTestBoard(t *testing.T) *abacus.Board {
	t.Helper()
	b, err := abacus.New(abacus.Params{
		Columns:     3,
		UpperBeads:  2,
		LowerBeads:  5,
		UpperWeight: 5,
		Radix:       10,
	})
	require.NoError(t, err)
	return b
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		var consumed bool
		m, consumed, _ = m.HandleKey(keyRune(r))
		require.True(t, consumed, "editing bar should consume %q", r)
	}
	return m
}

func TestTotalBar_ShowsTotalAndCeiling(t *testing.T) {
	board := newTestBoard(t)
	require.NoError(t, board.SetTotalValue(123))

	m := New(board)
	view := m.View()

	assert.Contains(t, view, "123")
	assert.Contains(t, view, "1665", "board ceiling shown alongside the total")
}

func TestTotalBar_PlusMinus(t *testing.T) {
	board := newTestBoard(t)
	m := New(board)

	m, consumed, cmd := m.HandleKey(keyRune('+'))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.Equal(t, uint64(1), board.CachedTotal())

	m, _, _ = m.HandleKey(keyRune('+'))
	assert.Equal(t, uint64(2), board.CachedTotal())

	m, _, _ = m.HandleKey(keyRune('-'))
	assert.Equal(t, uint64(1), board.CachedTotal())

	// Minus at zero is a no-op.
	m, _, _ = m.HandleKey(keyRune('-'))
	_, _, cmd = m.HandleKey(keyRune('-'))
	assert.Nil(t, cmd)
	assert.Equal(t, uint64(0), board.CachedTotal())
}

func TestTotalBar_PlusClampsAtCeiling(t *testing.T) {
	board := newTestBoard(t)
	require.NoError(t, board.SetTotalValue(1665))

	m := New(board)
	_, _, cmd := m.HandleKey(keyRune('+'))
	assert.Nil(t, cmd)
	assert.Equal(t, uint64(1665), board.CachedTotal(), "plus at the ceiling stays clamped")
}

func TestTotalBar_EditCommit(t *testing.T) {
	board := newTestBoard(t)
	m := New(board)

	m, consumed, _ := m.HandleKey(keyRune('='))
	require.True(t, consumed)
	assert.True(t, m.Editing())

	// Prefill is the current total; clear it and type a new value.
	for range len(m.input.Value()) {
		m, _, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = typeString(t, m, "345")

	m, consumed, cmd := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, m.Editing())
	assert.Equal(t, uint64(345), board.CachedTotal())
}

func TestTotalBar_EditCancel(t *testing.T) {
	board := newTestBoard(t)
	require.NoError(t, board.SetTotalValue(42))

	m := New(board)
	m, _, _ = m.HandleKey(keyRune('='))
	m = typeString(t, m, "999")

	m, _, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Editing())
	assert.Equal(t, uint64(42), board.CachedTotal(), "cancel leaves the board untouched")
}

func TestTotalBar_EditBadInputStaysEditing(t *testing.T) {
	board := newTestBoard(t)
	m := New(board)

	m, _, _ = m.HandleKey(keyRune('='))
	for range len(m.input.Value()) {
		m, _, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = typeString(t, m, "xyz")

	m, _, cmd := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.True(t, m.Editing(), "bad input keeps the bar in edit mode")
	assert.NotEmpty(t, m.parseErr)
	assert.Equal(t, uint64(0), board.CachedTotal())
}

func TestTotalBar_CommitClampsToCeiling(t *testing.T) {
	board := newTestBoard(t)
	m := New(board)

	m, _, _ = m.HandleKey(keyRune('='))
	for range len(m.input.Value()) {
		m, _, _ = m.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = typeString(t, m, "9999")

	_, _, cmd := m.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, uint64(1665), board.CachedTotal(), "oversized entries clamp to the board ceiling")
}

func TestTotalBar_UnhandledKeyNotConsumed(t *testing.T) {
	m := New(newTestBoard(t))

	_, consumed, _ := m.HandleKey(keyRune('q'))
	assert.False(t, consumed, "idle bar passes unrelated keys through")
}

func TestTotalBar_HiddenWhenDisabled(t *testing.T) {
	m := New(newTestBoard(t)).SetShowTotal(false)
	assert.Empty(t, m.View())

	// Editing still shows the input.
	m, _, _ = m.HandleKey(keyRune('='))
	assert.NotEmpty(t, m.View())
}
