package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockbreaker/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"h", runeKey("h"), core.ActionLeft},
		{"a", runeKey("a"), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"l", runeKey("l"), core.ActionRight},
		{"d", runeKey("d"), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionLaunch},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"escape", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack},
		{"p", runeKey("p"), core.ActionPause},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("x"), core.ActionNone},
		{"ctrl+s is unbound", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%q) = %v, want %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("short help should list bindings")
	}

	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 7 {
		t.Errorf("full help lists %d bindings, want 7", n)
	}
}
