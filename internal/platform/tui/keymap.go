package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a game input decoded from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRestart
	ActionQuit
)

// MapKey decodes a key message into a game action.
// Arrows, WASD, and vi keys all steer the snake.
func MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return ActionQuit
	case "up", "w", "k":
		return ActionUp
	case "down", "s", "j":
		return ActionDown
	case "left", "a", "h":
		return ActionLeft
	case "right", "d", "l":
		return ActionRight
	case "r":
		return ActionRestart
	}
	return ActionNone
}

// Delta returns the row and column step for a direction action.
// Non-direction actions return (0, 0).
func (a Action) Delta() (dRow, dCol int) {
	switch a {
	case ActionUp:
		return -1, 0
	case ActionDown:
		return 1, 0
	case ActionLeft:
		return 0, -1
	case ActionRight:
		return 0, 1
	}
	return 0, 0
}
