package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// KeyMapper translates Bubble Tea key messages to rider intents.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a steering intent.
// Arrow keys, vim keys (h/j/k/l) and WASD steer; q and Ctrl+C quit.
// Any other key yields IntentNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Intent {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.IntentQuit
	case "up", "k", "w":
		return core.IntentUp
	case "down", "j", "s":
		return core.IntentDown
	case "left", "h", "a":
		return core.IntentLeft
	case "right", "l", "d":
		return core.IntentRight
	}
	return core.IntentNone
}

// IsNextRound reports whether the key starts the next round.
func (km *KeyMapper) IsNextRound(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "r", " ", "enter":
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
