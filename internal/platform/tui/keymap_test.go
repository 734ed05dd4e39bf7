package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyDirections(t *testing.T) {
	cases := []struct {
		msg  tea.KeyMsg
		want Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, ActionRight},
		{runeKey('w'), ActionUp},
		{runeKey('s'), ActionDown},
		{runeKey('a'), ActionLeft},
		{runeKey('d'), ActionRight},
		{runeKey('k'), ActionUp},
		{runeKey('j'), ActionDown},
		{runeKey('h'), ActionLeft},
		{runeKey('l'), ActionRight},
		{runeKey('r'), ActionRestart},
		{runeKey('x'), ActionNone},
	}

	for _, tc := range cases {
		if got := MapKey(tc.msg); got != tc.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	quitKeys := []tea.KeyMsg{
		runeKey('q'),
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}

	for _, msg := range quitKeys {
		if got := MapKey(msg); got != ActionQuit {
			t.Errorf("MapKey(%q) = %v, expected ActionQuit", msg.String(), got)
		}
	}
}

func TestActionDelta(t *testing.T) {
	cases := []struct {
		action     Action
		dRow, dCol int
	}{
		{ActionUp, -1, 0},
		{ActionDown, 1, 0},
		{ActionLeft, 0, -1},
		{ActionRight, 0, 1},
		{ActionNone, 0, 0},
		{ActionQuit, 0, 0},
		{ActionRestart, 0, 0},
	}

	for _, tc := range cases {
		dRow, dCol := tc.action.Delta()
		if dRow != tc.dRow || dCol != tc.dCol {
			t.Errorf("Delta(%v) = (%d, %d), expected (%d, %d)",
				tc.action, dRow, dCol, tc.dRow, tc.dCol)
		}
	}
}
