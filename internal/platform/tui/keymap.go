package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bowling-solitaire/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return core.ActionQuit, true
	case " ":
		return core.ActionEndRoll, false
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionBack, false
	}

	if len(key) != 1 {
		return core.ActionNone, false
	}
	key = strings.ToLower(key)
	c := key[0]

	switch {
	case c >= 'a' && c <= 'j':
		return core.PinAction(int(c - 'a')), false
	case c >= 'x' && c <= 'z':
		return core.PileAction(int(c - 'x')), false
	case c == 'n':
		return core.ActionConcede, false
	case c == 'r':
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc", "q":
		return MenuActionBack
	}

	return MenuActionNone
}

// SettingsAction is a command on the settings screen.
type SettingsAction int

const (
	SettingsNone SettingsAction = iota
	SettingsStart
	SettingsToggleHints
	SettingsToggleDiscards
	SettingsInstructions
	SettingsScoreboard
	SettingsDeleteOptions
	SettingsBack
	SettingsQuit
)

// MapKeyToSettingsAction translates a key on the settings screen.
func (km *KeyMapper) MapKeyToSettingsAction(msg tea.KeyMsg) SettingsAction {
	switch strings.ToLower(msg.String()) {
	case "ctrl+c":
		return SettingsQuit
	case "s", "enter":
		return SettingsStart
	case "h":
		return SettingsToggleHints
	case "v":
		return SettingsToggleDiscards
	case "i", "?":
		return SettingsInstructions
	case "tab":
		return SettingsScoreboard
	case "!":
		return SettingsDeleteOptions
	case "q", "esc":
		return SettingsBack
	}
	return SettingsNone
}
