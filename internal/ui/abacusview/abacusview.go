// Package abacusview renders the interactive abacus frame: one bead
// track per column split by the reference bar, with mouse picking and a
// keyboard column cursor.
package abacusview

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/soroban/internal/abacus"
	"github.com/zjrosen/soroban/internal/log"
	"github.com/zjrosen/soroban/internal/ui/styles"
)

// Deck identifies which side of the reference bar a bead sits on.
type Deck int

// Deck values.
const (
	DeckUpper Deck = iota
	DeckLower
)

// ErrorMsg reports a failed board operation to the parent model.
type ErrorMsg struct {
	Err error
}

const (
	beadGlyph  = "●"
	rodGlyph   = "│"
	cellWidth  = 3
	colPadding = 1
)

// Model holds the abacus view state. Columns are displayed most
// significant on the left; the board indexes them least significant
// first, so display position d maps to column index count-1-d.
type Model struct {
	board *abacus.Board

	// cursor is the board column index the keyboard is pointed at.
	cursor int

	// hovered is the bubblezone id of the bead under the mouse, or "".
	hovered string

	showColumnValues bool
	focused          bool
	width            int
	height           int
}

// New creates an abacus view over the given board. The cursor starts on
// the ones column.
func New(board *abacus.Board) Model {
	return Model{
		board:            board,
		showColumnValues: true,
		focused:          true,
	}
}

// SetBoard swaps in a rebuilt board, clamping the cursor to the new
// column range.
func (m Model) SetBoard(board *abacus.Board) Model {
	m.board = board
	if m.cursor >= board.ColumnCount() {
		m.cursor = board.ColumnCount() - 1
	}
	m.hovered = ""
	return m
}

// SetSize updates the view dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// SetShowColumnValues toggles the per-column digit readout.
func (m Model) SetShowColumnValues(show bool) Model {
	m.showColumnValues = show
	return m
}

// Focus gives the view keyboard input.
func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur removes keyboard input from the view.
func (m Model) Blur() Model {
	m.focused = false
	return m
}

// Focused reports whether the view has keyboard input.
func (m Model) Focused() bool {
	return m.focused
}

// Cursor returns the board column index under the keyboard cursor.
func (m Model) Cursor() int {
	return m.cursor
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.focused {
			return m.handleKey(msg)
		}
	}
	return m, nil
}

// handleMouse resolves the bead under the pointer and applies clicks.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		m.hovered = m.beadAt(msg)

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		id := m.beadAt(msg)
		if id == "" {
			return m, nil
		}
		col, deck, pos, ok := parseBeadID(id)
		if !ok {
			return m, nil
		}
		m.cursor = col
		var err error
		if deck == DeckUpper {
			err = m.board.ClickUpper(col, pos)
		} else {
			err = m.board.ClickLower(col, pos)
		}
		if err != nil {
			log.ErrorErr(log.CatUI, "Bead click rejected", err, "column", col, "position", pos)
			return m, reportError(err)
		}
	}
	return m, nil
}

// handleKey drives the column cursor and digit entry.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	n := m.board.ColumnCount()

	switch key := msg.String(); key {
	case "h", "left":
		// Left means more significant.
		if m.cursor < n-1 {
			m.cursor++
		}
	case "l", "right":
		if m.cursor > 0 {
			m.cursor--
		}
	case "k", "up":
		return m, m.adjustColumn(+1)
	case "j", "down":
		return m, m.adjustColumn(-1)
	default:
		if d, ok := digitForKey(key, m.board.Radix()); ok {
			if err := m.board.SetColumnValue(m.cursor, d); err != nil {
				return m, reportError(err)
			}
		}
	}
	return m, nil
}

// adjustColumn changes the cursor column's digit by delta, clamped to
// the column's range.
func (m Model) adjustColumn(delta int64) tea.Cmd {
	v, err := m.board.ColumnValue(m.cursor)
	if err != nil {
		return reportError(err)
	}
	if delta < 0 && v == 0 {
		return nil
	}
	target := v
	if delta < 0 {
		target = v - uint64(-delta)
	} else {
		target = v + uint64(delta)
	}
	if err := m.board.SetColumnValue(m.cursor, target); err != nil {
		return reportError(err)
	}
	return nil
}

// beadAt returns the zone id of the bead at the mouse position, or "".
func (m Model) beadAt(msg tea.MouseMsg) string {
	for col := 0; col < m.board.ColumnCount(); col++ {
		c, err := m.board.Column(col)
		if err != nil {
			continue
		}
		for pos := 1; pos <= c.UpperBeads(); pos++ {
			id := beadID(col, DeckUpper, pos)
			if z := zone.Get(id); z != nil && z.InBounds(msg) {
				return id
			}
		}
		for pos := 1; pos <= c.LowerBeads(); pos++ {
			id := beadID(col, DeckLower, pos)
			if z := zone.Get(id); z != nil && z.InBounds(msg) {
				return id
			}
		}
	}
	return ""
}

func reportError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// beadID builds the bubblezone mark id for a bead.
func beadID(col int, deck Deck, pos int) string {
	d := "l"
	if deck == DeckUpper {
		d = "u"
	}
	return fmt.Sprintf("bead/%d/%s/%d", col, d, pos)
}

// parseBeadID is the inverse of beadID.
func parseBeadID(id string) (col int, deck Deck, pos int, ok bool) {
	parts := strings.Split(id, "/")
	if len(parts) != 4 || parts[0] != "bead" {
		return 0, 0, 0, false
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, false
	}
	switch parts[2] {
	case "u":
		deck = DeckUpper
	case "l":
		deck = DeckLower
	default:
		return 0, 0, 0, false
	}
	pos, err = strconv.Atoi(parts[3])
	if err != nil {
		return 0, 0, 0, false
	}
	return col, deck, pos, true
}

// IsDigitKey reports whether key would enter a digit on a board of the
// given radix. Parents use this to keep global shortcuts from eating
// digit keys like "c" on high-radix boards.
func IsDigitKey(key string, radix uint64) bool {
	_, ok := digitForKey(key, radix)
	return ok
}

// digitForKey maps a pressed key to a digit value below the radix.
// Letters extend past 9 the way hex digits do.
func digitForKey(key string, radix uint64) (uint64, bool) {
	if len(key) != 1 {
		return 0, false
	}
	c := key[0]
	var d uint64
	switch {
	case c >= '0' && c <= '9':
		d = uint64(c - '0')
	case c >= 'a' && c <= 'f':
		d = uint64(c-'a') + 10
	default:
		return 0, false
	}
	if d >= radix {
		return 0, false
	}
	return d, true
}

// View renders the frame: upper deck, reference bar, lower deck, and
// optionally the digit readout row.
func (m Model) View() string {
	n := m.board.ColumnCount()
	if n == 0 {
		return ""
	}

	rendered := make([]string, 0, n)
	for d := 0; d < n; d++ {
		col := n - 1 - d
		rendered = append(rendered, m.renderColumn(col))
	}

	frame := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return styles.RenderWithTitleBorder(
		frame,
		"", "",
		lipgloss.Width(frame)+2, lipgloss.Height(frame)+2,
		m.focused,
		styles.OverlayTitleColor,
		styles.BorderFocusColor,
	)
}

// renderColumn draws one bead track top to bottom: the upper slots, the
// bar, the lower slots, and the digit readout.
func (m Model) renderColumn(col int) string {
	c, err := m.board.Column(col)
	if err != nil {
		return ""
	}

	var rows []string
	rows = append(rows, m.upperRows(col, c)...)
	rows = append(rows, m.barRow())
	rows = append(rows, m.lowerRows(col, c)...)
	if m.showColumnValues {
		rows = append(rows, m.digitRow(col, c))
	}

	colStyle := lipgloss.NewStyle().PaddingLeft(colPadding).PaddingRight(colPadding)
	return colStyle.Render(strings.Join(rows, "\n"))
}

// upperRows renders the upper deck: inactive beads at the top, pushed
// beads resting against the bar, one empty slot of slack between them.
// Bead positions count up from the bar.
func (m Model) upperRows(col int, c abacus.Column) []string {
	beads := c.UpperBeads()
	if beads == 0 {
		return nil
	}
	pushed := c.UpperCount()
	active := c.UpperActive()

	rows := make([]string, beads+1)
	for slot := 0; slot <= beads; slot++ {
		switch {
		case slot < beads-pushed:
			// Inactive beads, highest position first.
			pos := beads - slot
			rows[slot] = m.beadCell(col, DeckUpper, pos, false)
		case slot == beads-pushed:
			rows[slot] = m.emptyCell()
		default:
			pos := beads + 1 - slot
			rows[slot] = m.beadCell(col, DeckUpper, pos, active)
		}
	}
	return rows
}

// lowerRows renders the lower deck: active beads against the bar,
// inactive beads at the bottom. Bead positions count down from the bar.
func (m Model) lowerRows(col int, c abacus.Column) []string {
	beads := c.LowerBeads()
	if beads == 0 {
		return nil
	}
	active := c.ActiveLower()

	rows := make([]string, beads+1)
	for slot := 0; slot <= beads; slot++ {
		switch {
		case slot < active:
			pos := slot + 1
			rows[slot] = m.beadCell(col, DeckLower, pos, true)
		case slot == active:
			rows[slot] = m.emptyCell()
		default:
			pos := slot
			rows[slot] = m.beadCell(col, DeckLower, pos, false)
		}
	}
	return rows
}

// beadCell renders one bead as a bubblezone mark so the mouse can find
// it again.
func (m Model) beadCell(col int, deck Deck, pos int, active bool) string {
	id := beadID(col, deck, pos)

	color := styles.BeadInactiveColor
	if active {
		color = styles.BeadNormalColor
	}
	if m.hovered == id {
		color = styles.BeadHoverColor
	}

	glyph := lipgloss.NewStyle().Foreground(color).Render(beadGlyph)
	return zone.Mark(id, " "+glyph+" ")
}

// emptyCell renders a bare stretch of rod.
func (m Model) emptyCell() string {
	rod := lipgloss.NewStyle().Foreground(styles.RodColor).Render(rodGlyph)
	return " " + rod + " "
}

// barRow renders one column's stretch of the reference bar.
func (m Model) barRow() string {
	bar := strings.Repeat("━", cellWidth)
	return lipgloss.NewStyle().Foreground(styles.FrameColor).Render(bar)
}

// digitRow renders the column's decoded digit, highlighted under the
// cursor.
func (m Model) digitRow(col int, c abacus.Column) string {
	digit := styles.FormatValue(c.Value(), m.board.Radix())
	if len(digit) > cellWidth {
		digit = digit[:cellWidth]
	}

	style := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Width(cellWidth).Align(lipgloss.Center)
	if col == m.cursor {
		style = style.Foreground(styles.CursorColor).Bold(true)
	}
	return style.Render(digit)
}
