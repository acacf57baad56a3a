package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/sokoban"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"ctrl+p", tea.KeyMsg{Type: tea.KeyCtrlP}, core.ActionNorth},
		{"ctrl+f", tea.KeyMsg{Type: tea.KeyCtrlF}, core.ActionEast},
		{"ctrl+n", tea.KeyMsg{Type: tea.KeyCtrlN}, core.ActionSouth},
		{"ctrl+b", tea.KeyMsg{Type: tea.KeyCtrlB}, core.ActionWest},
		{"arrow up", keyUp, core.ActionNorth},
		{"arrow left", keyLeft, core.ActionWest},
		{"vi j", runes("j"), core.ActionSouth},
		{"vi l", runes("l"), core.ActionEast},
		{"ctrl+_", tea.KeyMsg{Type: tea.KeyCtrlUnderscore}, core.ActionUndo},
		{"u", runes("u"), core.ActionUndo},
		{"ctrl+u", keyCtrlU, core.ActionRepeat},
		{"help", runes("?"), core.ActionHelp},
		{"boss", keySpace, core.ActionBoss},
		{"next level", runes("g"), core.ActionNextLevel},
		{"restart", runes("r"), core.ActionRestart},
		{"ctrl+g", keyCtrlG, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{keyUp, MenuActionUp},
		{runes("j"), MenuActionDown},
		{keyEnter, MenuActionSelect},
		{keyEsc, MenuActionBack},
		{keyTab, MenuActionScoreboard},
		{runes("q"), MenuActionQuit},
		{runes("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		action   core.Action
		expected sokoban.Direction
	}{
		{core.ActionNorth, sokoban.North},
		{core.ActionEast, sokoban.East},
		{core.ActionSouth, sokoban.South},
		{core.ActionWest, sokoban.West},
	}

	for _, tt := range tests {
		got, ok := directionFor(tt.action)
		if !ok || got != tt.expected {
			t.Errorf("directionFor(%v) = %v, %v, expected %v, true", tt.action, got, ok, tt.expected)
		}
	}

	if _, ok := directionFor(core.ActionUndo); ok {
		t.Error("directionFor(Undo) should not be a direction")
	}
}
