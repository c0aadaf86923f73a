package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"rangeline/testing/snapshot"
)

func TestKeyMapMatches(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{name: "reset", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, binding: keys.Reset},
		{name: "copy", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, binding: keys.Copy},
		{name: "help", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, binding: keys.Help},
		{name: "quit", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, binding: keys.Quit},
		{name: "ctrl+c quits", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, binding: keys.Quit},
		{name: "escape cancels", msg: tea.KeyMsg{Type: tea.KeyEsc}, binding: keys.Cancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestMenuShortAndFullHelp(t *testing.T) {
	m := NewMenu(DefaultKeyMap())
	m.SetSize(80, 4)

	short := snapshot.StripANSI(m.String())
	assert.Contains(t, short, "r reset")
	assert.Contains(t, short, "q quit")
	assert.NotContains(t, short, "cancel drag")
	assert.Equal(t, 4, snapshot.Lines(m.String()))

	m.ToggleHelp()
	assert.True(t, m.ShowingAll())
	assert.Contains(t, snapshot.StripANSI(m.String()), "cancel drag")

	m.SetSingleLine(true)
	assert.False(t, m.ShowingAll())
	assert.NotContains(t, snapshot.StripANSI(m.String()), "cancel drag")
	assert.Equal(t, false, m.InspectNode().State["show_all"])
}

func TestErrBox(t *testing.T) {
	e := NewErrBox()
	e.SetSize(20, 1)

	assert.Empty(t, strings.TrimSpace(snapshot.StripANSI(e.String())))
	assert.False(t, e.InspectNode().Visible)

	e.SetError(errors.New("clipboard unavailable on this system"))
	out := snapshot.StripANSI(e.String())
	assert.LessOrEqual(t, snapshot.Width(out), 20)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "..."))
	assert.Equal(t, "clipboard unavailable on this system", e.InspectNode().Content)

	e.Clear()
	assert.Empty(t, e.Message())
}
