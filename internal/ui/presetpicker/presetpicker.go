// Package presetpicker provides a filterable popup over saved board
// presets.
package presetpicker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/soroban/internal/presets"
	"github.com/zjrosen/soroban/internal/ui/styles"
)

// Model holds the preset picker state.
type Model struct {
	// Available presets, as loaded from the repository
	items []*presets.Preset

	// Current state
	active       bool   // Whether picker is showing
	query        string // Filter query
	filtered     []*presets.Preset
	cursor       int // Selected item in filtered list
	maxVisible   int // Max items to show before scrolling
	scrollOffset int // First visible item index
}

// New creates a new preset picker model.
func New() Model {
	return Model{
		items:      make([]*presets.Preset, 0),
		filtered:   make([]*presets.Preset, 0),
		maxVisible: 6,
	}
}

// IsActive returns whether the picker is currently showing.
func (m Model) IsActive() bool {
	return m.active
}

// PresetCount returns the number of available presets.
func (m Model) PresetCount() int {
	return len(m.items)
}

// Selected returns the currently selected preset, or nil if none.
func (m Model) Selected() *presets.Preset {
	if !m.active || len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	return m.filtered[m.cursor]
}

// Activate opens the picker with the given presets.
func (m Model) Activate(items []*presets.Preset) Model {
	m.items = items
	m.active = true
	m.query = ""
	m.cursor = 0
	m.scrollOffset = 0
	m = m.updateFilter()
	return m
}

// Deactivate closes the picker.
func (m Model) Deactivate() Model {
	m.active = false
	m.query = ""
	m.cursor = 0
	m.scrollOffset = 0
	m.filtered = nil
	return m
}

// updateFilter filters presets based on current query.
func (m Model) updateFilter() Model {
	query := strings.ToLower(m.query)

	m.filtered = make([]*presets.Preset, 0, len(m.items))
	for _, p := range m.items {
		if query == "" || strings.Contains(strings.ToLower(p.Name()), query) {
			m.filtered = append(m.filtered, p)
		}
	}

	// Reset cursor if out of bounds
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
		m.scrollOffset = 0
	}

	return m
}

// Next moves to the next item.
func (m Model) Next() Model {
	if len(m.filtered) == 0 {
		return m
	}
	m.cursor = (m.cursor + 1) % len(m.filtered)
	m = m.ensureVisible()
	return m
}

// Prev moves to the previous item.
func (m Model) Prev() Model {
	if len(m.filtered) == 0 {
		return m
	}
	m.cursor = (m.cursor - 1 + len(m.filtered)) % len(m.filtered)
	m = m.ensureVisible()
	return m
}

// ensureVisible ensures the cursor is visible within the scroll window.
func (m Model) ensureVisible() Model {
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+m.maxVisible {
		m.scrollOffset = m.cursor - m.maxVisible + 1
	}
	return m
}

// HandleKey processes key events during picker display.
// Returns (updated model, consumed bool, selected *presets.Preset if enter pressed).
func (m Model) HandleKey(msg tea.KeyMsg) (Model, bool, *presets.Preset) {
	if !m.active {
		return m, false, nil
	}

	switch msg.String() {
	case "ctrl+n", "down", "j":
		return m.Next(), true, nil
	case "ctrl+p", "up", "k":
		return m.Prev(), true, nil
	case "enter":
		selected := m.Selected()
		if selected != nil {
			return m.Deactivate(), true, selected
		}
		return m, true, nil
	case "esc":
		return m.Deactivate(), true, nil
	case "backspace":
		if m.query != "" {
			m.query = m.query[:len(m.query)-1]
			return m.updateFilter(), true, nil
		}
		return m, true, nil
	}

	// Printable characters extend the filter query.
	if msg.Type == tea.KeyRunes {
		m.query += string(msg.Runes)
		return m.updateFilter(), true, nil
	}

	return m, false, nil
}

// View renders the preset picker popup.
func (m Model) View(maxWidth int) string {
	if !m.active {
		return ""
	}

	// Column widths
	nameWidth := 18
	shapeWidth := 14
	// Layout: " name │ shape │ radix " with separators and border
	fixedWidth := 1 + nameWidth + 3 + shapeWidth + 3 + 1 + 2
	radixWidth := max(maxWidth-fixedWidth, 6)

	innerWidth := maxWidth - 2

	normalStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimaryColor).
		Width(innerWidth)
	selectedStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimaryColor).
		Background(styles.BorderFocusColor).
		Width(innerWidth)
	mutedStyle := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor)

	var lines []string
	if m.query != "" {
		lines = append(lines, mutedStyle.Render(" filter: "+m.query))
	}

	if len(m.filtered) == 0 {
		lines = append(lines, mutedStyle.Render(" no matching presets"))
	}

	visibleCount := min(m.maxVisible, len(m.filtered))
	endIdx := min(m.scrollOffset+visibleCount, len(m.filtered))

	for i := m.scrollOffset; i < endIdx; i++ {
		p := m.filtered[i]

		// Names are user-supplied and may be multibyte; truncate and pad
		// by display width, not bytes.
		name := padRight(ansi.Truncate(p.Name(), nameWidth, "…"), nameWidth)

		params := p.Params()
		shape := fmt.Sprintf("%d cols %d/%d", params.Columns, params.UpperBeads, params.LowerBeads)
		if len(shape) > shapeWidth {
			shape = shape[:shapeWidth]
		}

		radix := fmt.Sprintf("base %d", params.Radix)
		if len(radix) > radixWidth {
			radix = radix[:radixWidth]
		}

		row := fmt.Sprintf(" %s │ %-*s │ %-*s ",
			name,
			shapeWidth, shape,
			radixWidth, radix)

		if i == m.cursor {
			lines = append(lines, selectedStyle.Render(row))
		} else {
			lines = append(lines, normalStyle.Render(row))
		}
	}

	// Add scroll indicator if needed
	if len(m.filtered) > m.maxVisible {
		scrollInfo := fmt.Sprintf(" %d-%d of %d presets",
			m.scrollOffset+1,
			min(m.scrollOffset+m.maxVisible, len(m.filtered)),
			len(m.filtered))
		lines = append(lines, mutedStyle.Render(scrollInfo))
	}

	content := strings.Join(lines, "\n")

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderDefaultColor)

	return borderStyle.Render(content)
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
