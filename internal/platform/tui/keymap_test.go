package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestDefaultKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runes("a"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runes("d"), core.ActionRight},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w", runes("w"), core.ActionJump},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"p", runes("p"), core.ActionPause},
		{"r", runes("r"), core.ActionRestart},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestCustomKeyMap(t *testing.T) {
	keys := config.Default().Keys
	keys.Jump = []string{"k"}

	km := NewKeyMap(keys)
	if km.Action(runes("k")) != core.ActionJump {
		t.Error("custom jump key should map to jump")
	}
	if km.Action(runes("w")) != core.ActionNone {
		t.Error("replaced jump key should no longer jump")
	}
}

func TestKeyMapHelpLabels(t *testing.T) {
	km := DefaultKeyMap()

	label := km.Jump.Help().Key
	if !strings.Contains(label, "space") || !strings.Contains(label, "↑") {
		t.Errorf("jump help label = %q", label)
	}
	if len(km.ShortHelp()) == 0 || len(km.FullHelp()) == 0 {
		t.Error("help views should list bindings")
	}
}

func TestHeldActions(t *testing.T) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump} {
		if !Held(a) {
			t.Errorf("%v should be held", a)
		}
	}
	for _, a := range []core.Action{core.ActionPause, core.ActionRestart, core.ActionQuit} {
		if Held(a) {
			t.Errorf("%v should fire once", a)
		}
	}
}
