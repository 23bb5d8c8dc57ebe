// Package settingsform is the board reconfiguration panel: structural
// parameters as text fields plus a theme preset selector. Submitting
// validates the parameters and hands them back to the parent, which
// rebuilds the board.
package settingsform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/soroban/internal/abacus"
	"github.com/zjrosen/soroban/internal/ui/styles"
)

// AppliedMsg carries the validated settings back to the parent model.
type AppliedMsg struct {
	Params      abacus.Params
	ThemePreset string
}

// CancelledMsg signals the form was dismissed without applying.
type CancelledMsg struct{}

// Field indexes into the form, in display order.
const (
	fieldColumns = iota
	fieldUpperBeads
	fieldLowerBeads
	fieldUpperWeight
	fieldRadix
	fieldTheme
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Columns",
	"Upper beads",
	"Lower beads",
	"Upper weight",
	"Radix",
	"Theme",
}

// Model holds the settings form state.
type Model struct {
	inputs [fieldTheme]textinput.Model
	focus  int

	// themeIdx indexes styles.PresetNames().
	themeIdx int

	errText string
	width   int
}

// New creates a settings form prefilled from the current board
// parameters and theme preset.
func New(params abacus.Params, themePreset string) Model {
	m := Model{}

	values := [fieldTheme]string{
		strconv.Itoa(params.Columns),
		strconv.Itoa(params.UpperBeads),
		strconv.Itoa(params.LowerBeads),
		strconv.FormatUint(params.UpperWeight, 10),
		strconv.FormatUint(params.Radix, 10),
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 6
		ti.Width = 8
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()

	names := styles.PresetNames()
	m.themeIdx = 0
	for i, name := range names {
		if name == themePreset {
			m.themeIdx = i
			break
		}
	}

	return m
}

// SetSize updates the form width.
func (m Model) SetSize(width int) Model {
	m.width = width
	return m
}

// ThemePreset returns the currently selected preset name.
func (m Model) ThemePreset() string {
	return styles.PresetNames()[m.themeIdx]
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return CancelledMsg{} }

	case "enter":
		params, err := m.parseParams()
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.errText = ""
		preset := m.ThemePreset()
		return m, func() tea.Msg {
			return AppliedMsg{Params: params, ThemePreset: preset}
		}

	case "tab", "down":
		return m.moveFocus(+1), nil

	case "shift+tab", "up":
		return m.moveFocus(-1), nil

	case "left":
		if m.focus == fieldTheme {
			n := len(styles.PresetNames())
			m.themeIdx = (m.themeIdx - 1 + n) % n
			return m, nil
		}

	case "right":
		if m.focus == fieldTheme {
			m.themeIdx = (m.themeIdx + 1) % len(styles.PresetNames())
			return m, nil
		}
	}

	m.errText = ""
	return m.updateFocused(msg)
}

// moveFocus shifts field focus by delta, wrapping around.
func (m Model) moveFocus(delta int) Model {
	if m.focus < fieldTheme {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	if m.focus < fieldTheme {
		m.inputs[m.focus].Focus()
	}
	return m
}

// updateFocused forwards a message to the focused textinput.
func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	if m.focus >= fieldTheme {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// parseParams reads the fields into board parameters and validates
// them.
func (m Model) parseParams() (abacus.Params, error) {
	ints := [3]int{}
	for i, field := range []int{fieldColumns, fieldUpperBeads, fieldLowerBeads} {
		v, err := strconv.Atoi(strings.TrimSpace(m.inputs[field].Value()))
		if err != nil {
			return abacus.Params{}, fmt.Errorf("%s: not a number", strings.ToLower(fieldLabels[field]))
		}
		ints[i] = v
	}
	weight, err := strconv.ParseUint(strings.TrimSpace(m.inputs[fieldUpperWeight].Value()), 10, 64)
	if err != nil {
		return abacus.Params{}, fmt.Errorf("upper weight: not a number")
	}
	radix, err := strconv.ParseUint(strings.TrimSpace(m.inputs[fieldRadix].Value()), 10, 64)
	if err != nil {
		return abacus.Params{}, fmt.Errorf("radix: not a number")
	}

	params := abacus.Params{
		Columns:     ints[0],
		UpperBeads:  ints[1],
		LowerBeads:  ints[2],
		UpperWeight: weight,
		Radix:       radix,
	}
	if err := params.Validate(); err != nil {
		return abacus.Params{}, err
	}
	if params.UpperBeads == 0 && params.LowerBeads == 0 {
		return abacus.Params{}, fmt.Errorf("at least one deck needs beads")
	}
	return params, nil
}

// View renders the form inside a titled border.
func (m Model) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Width(14)
	focusedLabel := labelStyle.Foreground(styles.TextPrimaryColor).Bold(true)

	var b strings.Builder
	for i := range m.inputs {
		label := labelStyle.Render(fieldLabels[i])
		if i == m.focus {
			label = focusedLabel.Render(fieldLabels[i])
		}
		b.WriteString(label)
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	themeLabel := labelStyle.Render(fieldLabels[fieldTheme])
	theme := m.ThemePreset()
	if m.focus == fieldTheme {
		themeLabel = focusedLabel.Render(fieldLabels[fieldTheme])
		theme = "< " + theme + " >"
	}
	b.WriteString(themeLabel)
	b.WriteString(lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Render(theme))
	b.WriteString("\n")

	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.errText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("enter apply · esc cancel · tab next field"))

	width := m.width
	if width == 0 {
		width = 44
	}
	content := b.String()
	height := strings.Count(content, "\n") + 3

	return styles.RenderWithTitleBorder(
		content,
		"Settings", "",
		width, height,
		true,
		styles.OverlayTitleColor,
		styles.BorderFocusColor,
	)
}
