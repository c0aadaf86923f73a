// Package harness provides test utilities for Bubble Tea models.
// It wraps models and provides methods for simulating keyboard and mouse input.
package harness

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a tea.Model for testing
type Harness struct {
	t      testing.TB
	model  tea.Model
	width  int
	height int
}

// New creates a new Harness for testing the given model
func New(t testing.TB, model tea.Model, width, height int) *Harness {
	h := &Harness{
		t:      t,
		model:  model,
		width:  width,
		height: height,
	}
	h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

// SendMsg sends a tea.Msg to the model and updates it
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	return cmd
}

// SendKey sends a key press message
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (Enter, Ctrl+C, etc.)
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// SendMouse sends a left button mouse event at cell (x, y).
func (h *Harness) SendMouse(x, y int, action tea.MouseAction) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
}

// Press presses the left button at (x, y).
func (h *Harness) Press(x, y int) tea.Cmd {
	return h.SendMouse(x, y, tea.MouseActionPress)
}

// Motion moves the pointer to (x, y) with the left button held.
func (h *Harness) Motion(x, y int) tea.Cmd {
	return h.SendMouse(x, y, tea.MouseActionMotion)
}

// Release releases the left button at (x, y).
func (h *Harness) Release(x, y int) tea.Cmd {
	return h.SendMouse(x, y, tea.MouseActionRelease)
}

// Drag presses at fromX, moves one cell at a time to toX along row y and
// releases there.
func (h *Harness) Drag(fromX, toX, y int) {
	for _, msg := range Events(fromX, toX, y) {
		h.SendMsg(msg)
	}
}

// Resize simulates a terminal resize
func (h *Harness) Resize(width, height int) tea.Cmd {
	h.width = width
	h.height = height
	return h.SendMsg(tea.WindowSizeMsg{Width: width, Height: height})
}

// View returns the current rendered view
func (h *Harness) View() string {
	return h.model.View()
}

// Model returns the underlying model (for type assertions)
func (h *Harness) Model() tea.Model {
	return h.model
}

// Width returns the current width
func (h *Harness) Width() int {
	return h.width
}

// Height returns the current height
func (h *Harness) Height() int {
	return h.height
}

// CommonSizes contains common terminal sizes for testing
var CommonSizes = []TerminalSize{
	{Name: "minimum", Width: 40, Height: 8},
	{Name: "compact", Width: 60, Height: 12},
	{Name: "classic", Width: 80, Height: 24},
	{Name: "large", Width: 200, Height: 50},
	{Name: "wide", Width: 200, Height: 10},
	{Name: "tall", Width: 44, Height: 60},
}

// TerminalSize represents a terminal size for testing
type TerminalSize struct {
	Name   string
	Width  int
	Height int
}

// RunWithSizes runs a test function for each terminal size
func RunWithSizes(t *testing.T, sizes []TerminalSize, fn func(t *testing.T, size TerminalSize)) {
	for _, size := range sizes {
		t.Run(size.Name, func(t *testing.T) {
			fn(t, size)
		})
	}
}

// RunWithCommonSizes runs a test function for all common terminal sizes
func RunWithCommonSizes(t *testing.T, fn func(t *testing.T, size TerminalSize)) {
	RunWithSizes(t, CommonSizes, fn)
}

// Events returns the mouse messages Drag sends, for asserting on what a
// widget received.
func Events(fromX, toX, y int) []tea.MouseMsg {
	msg := func(x int, action tea.MouseAction) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
	}
	events := []tea.MouseMsg{msg(fromX, tea.MouseActionPress)}
	step := 1
	if toX < fromX {
		step = -1
	}
	for x := fromX; x != toX; {
		x += step
		events = append(events, msg(x, tea.MouseActionMotion))
	}
	return append(events, msg(toX, tea.MouseActionRelease))
}
