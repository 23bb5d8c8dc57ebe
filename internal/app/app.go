// Package app composes the soroban TUI: the abacus frame, the total
// bar, and the settings and preset overlays, glued together over one
// board.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/soroban/internal/abacus"
	"github.com/zjrosen/soroban/internal/config"
	"github.com/zjrosen/soroban/internal/log"
	"github.com/zjrosen/soroban/internal/presets"
	"github.com/zjrosen/soroban/internal/ui/abacusview"
	"github.com/zjrosen/soroban/internal/ui/presetpicker"
	"github.com/zjrosen/soroban/internal/ui/settingsform"
	"github.com/zjrosen/soroban/internal/ui/styles"
	"github.com/zjrosen/soroban/internal/ui/totalbar"
)

// BoardChangedMsg is delivered whenever the board reports a completed
// batch of bead writes.
type BoardChangedMsg struct{}

// ConfigReloadedMsg carries a fresh config after the file watcher saw
// a change.
type ConfigReloadedMsg struct {
	Config config.Config
}

// overlay identifies which popup, if any, owns the keyboard.
type overlay int

const (
	overlayNone overlay = iota
	overlaySettings
	overlayPicker
)

// Model is the root TUI model.
type Model struct {
	cfg   config.Config
	board *abacus.Board
	repo  presets.Repository

	abacus   abacusview.Model
	totalbar totalbar.Model
	settings settingsform.Model
	picker   presetpicker.Model

	active overlay

	// changes carries board notifications out of the write path and
	// back in as messages.
	changes chan struct{}

	statusErr string
	width     int
	height    int
}

// New builds the root model from config. The repository may be nil, in
// which case the preset picker is unavailable.
func New(cfg config.Config, repo presets.Repository) (Model, error) {
	board, err := abacus.New(cfg.Abacus.Params())
	if err != nil {
		return Model{}, err
	}

	changes := make(chan struct{}, 1)
	board.SetOnChange(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	return Model{
		cfg:      cfg,
		board:    board,
		repo:     repo,
		abacus:   abacusview.New(board).SetShowColumnValues(cfg.UI.ShowColumnValues),
		totalbar: totalbar.New(board).SetShowTotal(cfg.UI.ShowTotal),
		picker:   presetpicker.New(),
		changes:  changes,
	}, nil
}

// Board exposes the underlying board for testing.
func (m Model) Board() *abacus.Board {
	return m.board
}

// Init starts the change listener.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// waitForChange blocks on the board notification channel and surfaces
// the next batch as a message.
func (m Model) waitForChange() tea.Cmd {
	ch := m.changes
	return func() tea.Msg {
		<-ch
		return BoardChangedMsg{}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.abacus = m.abacus.SetSize(msg.Width, msg.Height)
		m.totalbar = m.totalbar.SetSize(msg.Width)
		return m, nil

	case BoardChangedMsg:
		total, err := m.board.TotalValue()
		if err != nil {
			log.ErrorErr(log.CatAbacus, "Total decode failed", err)
		} else {
			log.Debug(log.CatAbacus, "Board changed", "total", total)
		}
		return m, m.waitForChange()

	case ConfigReloadedMsg:
		return m.applyConfig(msg.Config)

	case abacusview.ErrorMsg:
		m.statusErr = msg.Err.Error()
		return m, nil

	case totalbar.ErrorMsg:
		m.statusErr = msg.Err.Error()
		return m, nil

	case settingsform.AppliedMsg:
		return m.applySettings(msg)

	case settingsform.CancelledMsg:
		m.active = overlayNone
		m.abacus = m.abacus.Focus()
		return m, nil

	case tea.MouseMsg:
		if m.active == overlayNone {
			var cmd tea.Cmd
			m.abacus, cmd = m.abacus.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Everything else (blink ticks) goes to whichever input is live.
	return m.routeMsg(msg)
}

// routeMsg forwards non-key messages to the component that needs them.
func (m Model) routeMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case overlaySettings:
		m.settings, cmd = m.settings.Update(msg)
	default:
		m.totalbar, cmd = m.totalbar.Update(msg)
	}
	return m, cmd
}

// handleKey routes keys by overlay state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusErr = ""

	// Overlays own the keyboard while open.
	switch m.active {
	case overlaySettings:
		var cmd tea.Cmd
		m.settings, cmd = m.settings.Update(msg)
		return m, cmd

	case overlayPicker:
		var selected *presets.Preset
		m.picker, _, selected = m.picker.HandleKey(msg)
		if !m.picker.IsActive() {
			m.active = overlayNone
			m.abacus = m.abacus.Focus()
		}
		if selected != nil {
			return m.applyPreset(selected)
		}
		return m, nil
	}

	// The total bar gets first refusal; while editing it consumes
	// everything.
	var consumed bool
	var cmd tea.Cmd
	m.totalbar, consumed, cmd = m.totalbar.HandleKey(msg)
	if consumed {
		return m, cmd
	}

	// Digit keys outrank global shortcuts: on a base-16 board "c" is a
	// digit, not clear.
	if abacusview.IsDigitKey(msg.String(), m.board.Radix()) {
		m.abacus, cmd = m.abacus.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "s":
		m.settings = settingsform.New(m.board.Params(), m.cfg.Theme.Preset).SetSize(46)
		m.active = overlaySettings
		m.abacus = m.abacus.Blur()
		return m, m.settings.Init()

	case "p":
		return m.openPicker()

	case "c", "esc":
		if err := m.board.SetTotalValue(0); err != nil {
			m.statusErr = err.Error()
		}
		return m, nil
	}

	m.abacus, cmd = m.abacus.Update(msg)
	return m, cmd
}

// openPicker loads presets from the repository and shows the picker.
func (m Model) openPicker() (tea.Model, tea.Cmd) {
	if m.repo == nil {
		m.statusErr = "preset storage is unavailable"
		return m, nil
	}
	list, err := m.repo.List()
	if err != nil {
		log.ErrorErr(log.CatDB, "Failed to list presets", err)
		m.statusErr = err.Error()
		return m, nil
	}
	if len(list) == 0 {
		m.statusErr = "no saved presets (use 'soroban presets import')"
		return m, nil
	}
	m.picker = m.picker.Activate(list)
	m.active = overlayPicker
	m.abacus = m.abacus.Blur()
	return m, nil
}

// applySettings rebuilds the board with the submitted parameters and
// switches the theme preset.
func (m Model) applySettings(msg settingsform.AppliedMsg) (tea.Model, tea.Cmd) {
	if msg.ThemePreset != m.cfg.Theme.Preset {
		theme := m.cfg.Theme
		theme.Preset = msg.ThemePreset
		if err := styles.ApplyTheme(styles.ThemeConfig{
			Preset: theme.Preset,
			Mode:   theme.Mode,
			Colors: theme.Colors,
		}); err != nil {
			m.statusErr = err.Error()
			return m, nil
		}
		m.cfg.Theme = theme
	}

	model, cmd := m.rebuildBoard(msg.Params)
	if model.statusErr == "" {
		log.Info(log.CatUI, "Settings applied",
			"columns", msg.Params.Columns, "radix", msg.Params.Radix, "theme", msg.ThemePreset)
	}
	model.active = overlayNone
	model.abacus = model.abacus.Focus()
	return model, cmd
}

// applyPreset rebuilds the board from a saved preset and applies its
// color overrides.
func (m Model) applyPreset(p *presets.Preset) (tea.Model, tea.Cmd) {
	colors := map[string]string{}
	for token, value := range m.cfg.Theme.Colors {
		colors[token] = value
	}
	if p.BeadColor() != "" {
		colors[string(styles.TokenBeadNormal)] = p.BeadColor()
	}
	if p.FrameColor() != "" {
		colors[string(styles.TokenFrame)] = p.FrameColor()
	}
	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: m.cfg.Theme.Preset,
		Mode:   m.cfg.Theme.Mode,
		Colors: colors,
	}); err != nil {
		m.statusErr = err.Error()
		return m, nil
	}

	model, cmd := m.rebuildBoard(p.Params())
	if model.statusErr == "" {
		log.Info(log.CatUI, "Preset applied", "preset", p.Name())
	}
	return model, cmd
}

// rebuildBoard replaces the board, rewiring the change listener and
// the views. The old board's value does not carry over; a new shape
// starts from zero.
func (m Model) rebuildBoard(params abacus.Params) (Model, tea.Cmd) {
	board, err := abacus.New(params)
	if err != nil {
		m.statusErr = err.Error()
		return m, nil
	}

	board.SetOnChange(func() {
		select {
		case m.changes <- struct{}{}:
		default:
		}
	})

	m.board = board
	m.cfg.Abacus = config.AbacusConfig{
		Columns:     params.Columns,
		UpperBeads:  params.UpperBeads,
		LowerBeads:  params.LowerBeads,
		UpperWeight: params.UpperWeight,
		Radix:       params.Radix,
	}
	m.abacus = m.abacus.SetBoard(board)
	m.totalbar = m.totalbar.SetBoard(board)
	return m, nil
}

// applyConfig handles a config file reload: retheme always, rebuild the
// board only when its shape actually changed.
func (m Model) applyConfig(cfg config.Config) (tea.Model, tea.Cmd) {
	if err := cfg.Validate(); err != nil {
		log.ErrorErr(log.CatConfig, "Ignoring invalid config reload", err)
		m.statusErr = err.Error()
		return m, nil
	}

	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.Colors,
	}); err != nil {
		m.statusErr = err.Error()
		return m, nil
	}

	reshape := cfg.Abacus != m.cfg.Abacus
	m.cfg = cfg
	m.abacus = m.abacus.SetShowColumnValues(cfg.UI.ShowColumnValues)
	m.totalbar = m.totalbar.SetShowTotal(cfg.UI.ShowTotal)

	if reshape {
		model, cmd := m.rebuildBoard(cfg.Abacus.Params())
		log.Info(log.CatConfig, "Config reloaded, board rebuilt")
		return model, cmd
	}
	log.Info(log.CatConfig, "Config reloaded")
	return m, nil
}

// View renders the full TUI. The output is zone-scanned so bead marks
// resolve for mouse events.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var sections []string

	if bar := m.totalbar.View(); bar != "" {
		sections = append(sections, bar)
	}

	switch m.active {
	case overlaySettings:
		sections = append(sections, m.settings.View())
	case overlayPicker:
		sections = append(sections, m.picker.View(min(m.width, 64)))
	default:
		sections = append(sections, m.abacus.View())
	}

	if m.cfg.UI.ShowStatusBar {
		sections = append(sections, m.statusBar())
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	placed := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	return zone.Scan(placed)
}

// statusBar renders the error line or the key help.
func (m Model) statusBar() string {
	if m.statusErr != "" {
		return styles.ErrorStyle.Render(m.statusErr)
	}

	help := "click beads · h/l move · 0-9 set digit · j/k adjust · = enter total · +/- nudge · c clear · s settings · p presets · q quit"
	return styles.HelpStyle.Render(wordwrap.String(help, max(m.width-2, 20)))
}
