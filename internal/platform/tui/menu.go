package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lightcycle/internal/config"
	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/registry"
)

// Menu rows.
const (
	rowProgram = iota
	rowColor
	rowSpeed
	rowPlay
	rowScores
	rowCount
)

// maxSpeedLevel bounds the speed picker.
const maxSpeedLevel = 9

// MenuModel is the Bubble Tea model for the pre-game pickers: opponent
// program, trail colour and speed level.
type MenuModel struct {
	programs       []registry.Program
	programIdx     int
	colorIdx       int
	level          int
	settings       Settings
	cursor         int
	width          int
	height         int
	keyMapper      *KeyMapper
	quitting       bool
	started        bool // Set when user picks Play
	openScoreboard bool // True if user asked for the scoreboard
}

// NewMenuModel creates a menu preselected from the given settings.
func NewMenuModel(settings Settings, width, height int) MenuModel {
	m := MenuModel{
		programs:  registry.List(),
		settings:  settings,
		level:     config.LevelForTickRate(settings.TickRate),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		cursor:    rowPlay,
	}
	for i, p := range m.programs {
		if p.ID == settings.Program {
			m.programIdx = i
		}
	}
	if i := slices.Index(core.HumanColors, settings.Color); i >= 0 {
		m.colorIdx = i
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < rowCount-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.adjust(-1)

	case MenuActionRight:
		m.adjust(1)

	case MenuActionSelect:
		switch m.cursor {
		case rowPlay:
			m.started = true
			return m, tea.Quit
		case rowScores:
			m.openScoreboard = true
			return m, tea.Quit
		default:
			m.adjust(1)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// adjust cycles the value on the current row.
func (m *MenuModel) adjust(delta int) {
	switch m.cursor {
	case rowProgram:
		if n := len(m.programs); n > 0 {
			m.programIdx = (m.programIdx + delta + n) % n
		}
	case rowColor:
		n := len(core.HumanColors)
		m.colorIdx = (m.colorIdx + delta + n) % n
	case rowSpeed:
		m.level = core.Clamp(m.level+delta, config.MinSpeedLevel, maxSpeedLevel)
	}
}

// Settings returns the settings chosen in the menu.
func (m MenuModel) Settings() Settings {
	s := m.settings
	if len(m.programs) > 0 {
		s.Program = m.programs[m.programIdx].ID
	}
	s.Color = core.HumanColors[m.colorIdx]
	if config.LevelForTickRate(s.TickRate) != m.level {
		s.TickRate = config.TickRate(m.level)
	}
	return s
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  L I G H T C Y C L E  "), m.width))
	b.WriteString("\n\n")

	program := "-"
	programColor := core.ColorDefault
	if len(m.programs) > 0 {
		p := m.programs[m.programIdx]
		program = p.Title
		programColor = p.Color
	}
	color := core.HumanColors[m.colorIdx]

	rows := [rowCount]string{
		rowProgram: fmt.Sprintf("Opponent  < %s >", styleFor(programColor).Render(program)),
		rowColor:   fmt.Sprintf("Colour    < %s >", styleFor(color).Render(color.String())),
		rowSpeed:   fmt.Sprintf("Speed     < %d >", m.level),
		rowPlay:    "Play",
		rowScores:  "Scores",
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
		if i == rowSpeed {
			b.WriteString("\n")
		}
	}

	if len(m.programs) > 0 {
		b.WriteString("\n")
		descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
		b.WriteString(centerText(descStyle.Render(m.programs[m.programIdx].Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Started returns true if the user picked Play.
func (m MenuModel) Started() bool {
	return m.started
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
