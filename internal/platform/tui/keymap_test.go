package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/brickout/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"h", runeKey('h'), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"l", runeKey('l'), core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"1", runeKey('1'), core.ActionEasy, false},
		{"2", runeKey('2'), core.ActionNormal, false},
		{"3", runeKey('3'), core.ActionHard, false},
		{"t", runeKey('t'), core.ActionClearBlocks, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tc.msg)
			assert.Equal(t, tc.want, action)
			assert.Equal(t, tc.wantQuit, isQuit)
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	assert.Len(t, keys.ShortHelp(), 7)

	var all int
	for _, col := range keys.FullHelp() {
		all += len(col)
	}
	assert.Equal(t, 8, all)
}

func TestIsHeldAction(t *testing.T) {
	assert.True(t, IsHeldAction(core.ActionLeft))
	assert.True(t, IsHeldAction(core.ActionRight))
	assert.False(t, IsHeldAction(core.ActionConfirm))
	assert.False(t, IsHeldAction(core.ActionClearBlocks))
}
