package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/l1t/internal/game"
)

// KeyMapper translates Bubble Tea key messages to game commands and menu
// actions. This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game command.
// Unbound keys map to game.CommandNone, which the session ignores.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) game.Command {
	switch msg.String() {
	case "w", "k", "up":
		return game.MoveUp
	case "s", "j", "down":
		return game.MoveDown
	case "a", "h", "left":
		return game.MoveLeft
	case "d", "l", "right":
		return game.MoveRight
	case " ":
		return game.Action
	case "q", "ctrl+c":
		return game.CommandQuit
	}
	return game.CommandNone
}

// IsHelp reports whether the key opens the help viewer.
// Lowercase h is a move, so help lives on the shifted key.
func (km *KeyMapper) IsHelp(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "H", "?":
		return true
	}
	return false
}

// ConfirmAnswer is the reply to a yes/no prompt.
type ConfirmAnswer int

const (
	ConfirmNone ConfirmAnswer = iota
	ConfirmYes
	ConfirmNo
)

// MapKeyToConfirm translates a key to a yes/no prompt answer.
func (km *KeyMapper) MapKeyToConfirm(msg tea.KeyMsg) ConfirmAnswer {
	switch msg.String() {
	case "y", "Y", "enter", "ctrl+c":
		return ConfirmYes
	case "n", "N", "esc", "q":
		return ConfirmNo
	}
	return ConfirmNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionTop
	MenuActionBottom
	MenuActionSelect
	MenuActionProgress
	MenuActionHelp
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if km.IsHelp(msg) {
		return MenuActionHelp
	}

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "home", "g":
		return MenuActionTop
	case "end", "G":
		return MenuActionBottom
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionProgress
	}

	return MenuActionNone
}
