package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"rangeline/inspect"
)

// ErrBox shows the latest non-fatal error on a single line.
type ErrBox struct {
	height, width int
	err           error
}

func NewErrBox() *ErrBox {
	return &ErrBox{}
}

func (e *ErrBox) SetError(err error) {
	e.err = err
}

func (e *ErrBox) Clear() {
	e.err = nil
}

// Message returns the error text, or "" when there is none.
func (e *ErrBox) Message() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *ErrBox) SetSize(width, height int) {
	e.width = width
	e.height = height
}

func (e *ErrBox) String() string {
	msg := e.Message()
	if msg != "" {
		msg = truncate.StringWithTail(msg, uint(max(e.width, 0)), "...")
	}
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Top, ErrorStyle.Render(msg))
}

// InspectNode implements inspect.Introspectable.
func (e *ErrBox) InspectNode() *inspect.Node {
	return inspect.NewNode("ErrBox").
		WithBounds(0, 0, e.width, e.height).
		WithVisible(e.err != nil).
		WithContent(e.Message())
}
