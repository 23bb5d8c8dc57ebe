// Package totalbar shows the board's total value and lets the user
// type a new one or nudge it by one.
package totalbar

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/soroban/internal/abacus"
	"github.com/zjrosen/soroban/internal/log"
	"github.com/zjrosen/soroban/internal/ui/styles"
)

// ErrorMsg reports a failed total write to the parent model.
type ErrorMsg struct {
	Err error
}

// Model holds the total bar state.
type Model struct {
	board *abacus.Board

	input   textinput.Model
	editing bool

	// parseErr is shown inline until the next keystroke.
	parseErr string

	showTotal bool
	width     int
}

// New creates a total bar over the given board.
func New(board *abacus.Board) Model {
	ti := textinput.New()
	ti.Prompt = "= "
	ti.CharLimit = 20
	ti.Width = 24

	return Model{
		board:     board,
		input:     ti,
		showTotal: true,
	}
}

// SetBoard swaps in a rebuilt board.
func (m Model) SetBoard(board *abacus.Board) Model {
	m.board = board
	return m
}

// SetSize updates the bar width.
func (m Model) SetSize(width int) Model {
	m.width = width
	return m
}

// SetShowTotal toggles the total readout.
func (m Model) SetShowTotal(show bool) Model {
	m.showTotal = show
	return m
}

// Editing reports whether the textinput currently owns the keyboard.
func (m Model) Editing() bool {
	return m.editing
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// HandleKey processes a key event. The second return reports whether
// the bar consumed the key; while editing it consumes everything.
func (m Model) HandleKey(msg tea.KeyMsg) (Model, bool, tea.Cmd) {
	if m.editing {
		return m.handleEditingKey(msg)
	}

	switch msg.String() {
	case "=":
		m.editing = true
		m.parseErr = ""
		m.input.SetValue(styles.FormatValue(m.board.CachedTotal(), m.board.Radix()))
		m.input.CursorEnd()
		m.input.Focus()
		return m, true, textinput.Blink
	case "+":
		return m, true, m.adjust(+1)
	case "-":
		return m, true, m.adjust(-1)
	}
	return m, false, nil
}

// handleEditingKey drives the textinput until commit or cancel.
func (m Model) handleEditingKey(msg tea.KeyMsg) (Model, bool, tea.Cmd) {
	switch msg.String() {
	case "enter":
		raw := m.input.Value()
		target, err := styles.ParseValue(raw, m.board.Radix())
		if err != nil {
			m.parseErr = err.Error()
			return m, true, nil
		}
		m.editing = false
		m.input.Blur()
		if err := m.board.SetTotalValue(target); err != nil {
			log.ErrorErr(log.CatUI, "Total entry rejected", err, "input", raw)
			return m, true, reportError(err)
		}
		log.Debug(log.CatUI, "Total set from input", "value", target)
		return m, true, nil
	case "esc":
		m.editing = false
		m.parseErr = ""
		m.input.Blur()
		return m, true, nil
	}

	m.parseErr = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, true, cmd
}

// Update handles non-key messages (cursor blink while editing).
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		updated, _, cmd := m.HandleKey(keyMsg)
		return updated, cmd
	}
	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// adjust nudges the total by delta, clamping at zero and the board
// ceiling.
func (m Model) adjust(delta int64) tea.Cmd {
	total := m.board.CachedTotal()
	if delta < 0 && total == 0 {
		return nil
	}
	var target uint64
	if delta < 0 {
		target = total - uint64(-delta)
	} else {
		target = total + uint64(delta)
		if target < total {
			// uint64 wrap; the board clamp handles the rest.
			target = ^uint64(0)
		}
	}
	if err := m.board.SetTotalValue(target); err != nil {
		return reportError(err)
	}
	return nil
}

func reportError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// View renders the total line, or the textinput while editing.
func (m Model) View() string {
	if !m.showTotal && !m.editing {
		return ""
	}

	if m.editing {
		line := m.input.View()
		if m.parseErr != "" {
			line += "  " + styles.ErrorStyle.Render(m.parseErr)
		}
		return line
	}

	totalStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)
	maxStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	line := "Total: " + totalStyle.Render(styles.FormatValue(m.board.CachedTotal(), m.board.Radix()))
	if ceiling, err := m.board.MaxTotalValue(); err == nil {
		line += maxStyle.Render(fmt.Sprintf("  (max %s)", styles.FormatValue(ceiling, m.board.Radix())))
	}
	return line
}
