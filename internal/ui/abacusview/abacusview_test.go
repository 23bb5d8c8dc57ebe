package abacusview

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/soroban/internal/abacus"
)

func TestMain(m *testing.M) {
	// zone.Mark needs the global manager during View.
	zone.NewGlobal()
	os.Exit(m.Run())
}

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

func TestAbacusView_New(t *testing.T) {
	m := New(newTestBoard(t))

	assert.Equal(t, 0, m.Cursor(), "cursor starts on the ones column")
	assert.True(t, m.Focused())
}

func TestAbacusView_CursorMovement(t *testing.T) {
	m := New(newTestBoard(t))

	// h moves toward more significant columns.
	m, _ = m.Update(keyRune('h'))
	assert.Equal(t, 1, m.Cursor())
	m, _ = m.Update(keyRune('h'))
	assert.Equal(t, 2, m.Cursor())
	m, _ = m.Update(keyRune('h'))
	assert.Equal(t, 2, m.Cursor(), "cursor stops at the last column")

	// l moves back toward the ones column.
	m, _ = m.Update(keyRune('l'))
	assert.Equal(t, 1, m.Cursor())
	m, _ = m.Update(keyRune('l'))
	m, _ = m.Update(keyRune('l'))
	assert.Equal(t, 0, m.Cursor(), "cursor stops at the ones column")
}

func TestAbacusView_DigitEntry(t *testing.T) {
	board := newTestBoard(t)
	m := New(board)

	m, cmd := m.Update(keyRune('7'))
	assert.Nil(t, cmd)

	v, err := board.ColumnValue(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), v)

	// Move and set another column.
	m, _ = m.Update(keyRune('h'))
	_, cmd = m.Update(keyRune('3'))
	assert.Nil(t, cmd)

	v, err = board.ColumnValue(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), v)

	total, err := board.TotalValue()
	require.NoError(t, err)
	assert.Equal(t, uint64(37), total)
}

func TestAbacusView_DigitBeyondRadixIgnored(t *testing.T) {
	board := newTestBoard(t)
	m := New(board)

	_, cmd := m.Update(keyRune('a'))
	assert.Nil(t, cmd, "hex digit is ignored in base 10")

	v, err := board.ColumnValue(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)
}

func TestAbacusView_HexDigitEntry(t *testing.T) {
	board, err := abacus.New(abacus.Params{
		Columns:     2,
		UpperBeads:  1,
		LowerBeads:  7,
		UpperWeight: 8,
		Radix:       16,
	})
	require.NoError(t, err)
	m := New(board)

	_, cmd := m.Update(keyRune('f'))
	assert.Nil(t, cmd)

	v, err := board.ColumnValue(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), v)
}

func TestAbacusView_IncrementDecrement(t *testing.T) {
	board := newTestBoard(t)
	m := New(board)

	m, _ = m.Update(keyRune('k'))
	m, _ = m.Update(keyRune('k'))
	v, err := board.ColumnValue(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v)

	m, _ = m.Update(keyRune('j'))
	v, err = board.ColumnValue(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)

	// Decrement at zero is a no-op.
	m, _ = m.Update(keyRune('j'))
	_, cmd := m.Update(keyRune('j'))
	assert.Nil(t, cmd)
	v, err = board.ColumnValue(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)
}

func TestAbacusView_IncrementClampsAtColumnMax(t *testing.T) {
	board := newTestBoard(t)
	m := New(board)

	// Column max is 15 (5 lower + two weight-5 beads); push past it.
	for range 20 {
		m, _ = m.Update(keyRune('k'))
	}
	v, err := board.ColumnValue(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(15), v)
}

func TestAbacusView_BlurStopsKeys(t *testing.T) {
	board := newTestBoard(t)
	m := New(board).Blur()

	m, _ = m.Update(keyRune('7'))
	v, err := board.ColumnValue(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v, "blurred view ignores digit entry")

	m = m.Focus()
	_, _ = m.Update(keyRune('7'))
	v, err = board.ColumnValue(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), v)
}

func TestAbacusView_SetBoardClampsCursor(t *testing.T) {
	m := New(newTestBoard(t))
	m, _ = m.Update(keyRune('h'))
	m, _ = m.Update(keyRune('h'))
	require.Equal(t, 2, m.Cursor())

	small, err := abacus.New(abacus.Params{
		Columns:     1,
		UpperBeads:  2,
		LowerBeads:  5,
		UpperWeight: 5,
		Radix:       10,
	})
	require.NoError(t, err)

	m = m.SetBoard(small)
	assert.Equal(t, 0, m.Cursor())
}

func TestBeadID_RoundTrip(t *testing.T) {
	tests := []struct {
		col  int
		deck Deck
		pos  int
	}{
		{0, DeckLower, 1},
		{2, DeckUpper, 2},
		{8, DeckLower, 5},
	}
	for _, tt := range tests {
		id := beadID(tt.col, tt.deck, tt.pos)
		col, deck, pos, ok := parseBeadID(id)
		require.True(t, ok, "id %s should parse", id)
		assert.Equal(t, tt.col, col)
		assert.Equal(t, tt.deck, deck)
		assert.Equal(t, tt.pos, pos)
	}
}

func TestParseBeadID_Rejects(t *testing.T) {
	for _, id := range []string{"", "bead/1/u", "bead/x/u/1", "bead/1/z/1", "bead/1/l/x", "other/1/l/1"} {
		_, _, _, ok := parseBeadID(id)
		assert.False(t, ok, "id %q should not parse", id)
	}
}

func TestDigitForKey(t *testing.T) {
	tests := []struct {
		key   string
		radix uint64
		want  uint64
		ok    bool
	}{
		{"0", 10, 0, true},
		{"9", 10, 9, true},
		{"a", 10, 0, false},
		{"a", 16, 10, true},
		{"f", 16, 15, true},
		{"g", 16, 0, false},
		{"7", 8, 7, true},
		{"8", 8, 0, false},
		{"enter", 10, 0, false},
	}
	for _, tt := range tests {
		d, ok := digitForKey(tt.key, tt.radix)
		assert.Equal(t, tt.ok, ok, "key %q radix %d", tt.key, tt.radix)
		if ok {
			assert.Equal(t, tt.want, d, "key %q radix %d", tt.key, tt.radix)
		}
	}
}

func TestAbacusView_ViewShowsDigits(t *testing.T) {
	board := newTestBoard(t)
	require.NoError(t, board.SetTotalValue(123))

	m := New(board).SetSize(80, 24)
	view := m.View()

	assert.Contains(t, view, "●", "beads are drawn")
	assert.Contains(t, view, "━", "reference bar is drawn")
	assert.Contains(t, view, "1")
	assert.Contains(t, view, "2")
	assert.Contains(t, view, "3")
}

func TestAbacusView_ViewHidesDigits(t *testing.T) {
	board := newTestBoard(t)
	require.NoError(t, board.SetTotalValue(505))

	withDigits := New(board).SetSize(80, 24)
	without := withDigits.SetShowColumnValues(false)

	assert.Greater(t, len(withDigits.View()), len(without.View()), "digit readout row adds output")
}

func TestAbacusView_ViewStability(t *testing.T) {
	m := New(newTestBoard(t)).SetSize(80, 24)
	assert.Equal(t, m.View(), m.View(), "same model renders identically")
}
