package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lightcycle/internal/core"
)

func press(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuPreselectsSettings(t *testing.T) {
	m := NewMenuModel(Settings{Program: "clu", Color: core.ColorBlue, TickRate: 50}, 80, 24)

	s := m.Settings()
	if s.Program != "clu" || s.Color != core.ColorBlue || s.TickRate != 50 {
		t.Errorf("Settings() = %+v, want clu/blue/50", s)
	}
}

func TestMenuAdjustsValues(t *testing.T) {
	m := NewMenuModel(DefaultSettings(), 80, 24)
	up := tea.KeyMsg{Type: tea.KeyUp}
	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	// Cursor starts on Play; move to Speed and raise it.
	m = press(m, up, right)
	if got := m.Settings().TickRate; got != 40 {
		t.Errorf("TickRate = %d, want 40", got)
	}

	// Colour cycles through the human palette and wraps.
	m = press(m, up, left)
	if got := m.Settings().Color; got != core.ColorWhite {
		t.Errorf("Color = %v, want white", got)
	}
	m = press(m, left)
	if got := m.Settings().Color; got != core.ColorBlue {
		t.Errorf("Color = %v, want blue after wrap", got)
	}

	// Program switches to the other registered one.
	m = press(m, up, right)
	if got := m.Settings().Program; got == DefaultSettings().Program {
		t.Errorf("Program unchanged: %q", got)
	}
}

func TestMenuSpeedBounds(t *testing.T) {
	m := NewMenuModel(Settings{Program: "rinzler", TickRate: 10}, 80, 24)
	m.cursor = rowSpeed
	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Settings().TickRate; got != 10 {
		t.Errorf("TickRate = %d, want 10 at the minimum level", got)
	}
}

func TestMenuKeepsExactTickRate(t *testing.T) {
	m := NewMenuModel(Settings{Program: "rinzler", TickRate: 45}, 80, 24)
	if got := m.Settings().TickRate; got != 45 {
		t.Errorf("TickRate = %d, want 45 when speed untouched", got)
	}
}

func TestMenuSelections(t *testing.T) {
	m := NewMenuModel(DefaultSettings(), 80, 24)

	played := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !played.Started() {
		t.Error("Enter on Play should start")
	}

	scores := press(m, tea.KeyMsg{Type: tea.KeyTab})
	if !scores.WantsScoreboard() {
		t.Error("Tab should open the scoreboard")
	}

	quit := press(m, runeKey('q'))
	if !quit.IsQuitting() || quit.View() != "" {
		t.Error("q should quit")
	}
}
