package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lightcycle/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Intent
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.IntentUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.IntentDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.IntentLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.IntentRight},
		{"vim k", runeKey('k'), core.IntentUp},
		{"vim j", runeKey('j'), core.IntentDown},
		{"vim h", runeKey('h'), core.IntentLeft},
		{"vim l", runeKey('l'), core.IntentRight},
		{"wasd a", runeKey('a'), core.IntentLeft},
		{"quit q", runeKey('q'), core.IntentQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.IntentQuit},
		{"other", runeKey('x'), core.IntentNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestIsNextRound(t *testing.T) {
	km := NewKeyMapper()
	for _, msg := range []tea.KeyMsg{runeKey('r'), {Type: tea.KeySpace}, {Type: tea.KeyEnter}} {
		if !km.IsNextRound(msg) {
			t.Errorf("IsNextRound(%q) = false", msg.String())
		}
	}
	if km.IsNextRound(runeKey('x')) {
		t.Error("IsNextRound(x) = true")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{runeKey('h'), MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
