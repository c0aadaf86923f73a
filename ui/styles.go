package ui

import (
	"github.com/charmbracelet/lipgloss"

	"rangeline/inspect"
)

// Chrome colors shared by the title, status line and error box.
var (
	// Primary is the accent color used for the title.
	Primary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// StatusError is used by the error box.
	StatusError = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}

	// TextSecondary is for value labels and the status line.
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and minor ruler ticks.
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// TickMajor is the major tick color.
	TickMajor = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#FFFFFF"}
)

// Glyphs used to draw the widget. Each is one cell wide.
const (
	GlyphRear     = '░'
	GlyphFront    = '█'
	GlyphMajor    = '┃'
	GlyphMinor    = '╵'
	GlyphChevronL = '<'
	GlyphChevronR = '>'
)

// Default plank colors: a yellow front plank over a near black rear.
const (
	DefaultFrontColor = "#F5C518"
	DefaultRearColor  = "#1F1F1F"
)

// Palette holds the styles the slider is drawn with.
type Palette struct {
	Rear    lipgloss.Style
	Front   lipgloss.Style
	Chevron lipgloss.Style
	Major   lipgloss.Style
	Minor   lipgloss.Style
	Label   lipgloss.Style
}

// NewPalette builds a palette from the plank colors. Empty colors fall back to
// the defaults.
func NewPalette(front, rear string) Palette {
	if front == "" {
		front = DefaultFrontColor
	}
	if rear == "" {
		rear = DefaultRearColor
	}

	p := Palette{
		Rear:  lipgloss.NewStyle().Foreground(lipgloss.Color(rear)),
		Front: lipgloss.NewStyle().Foreground(lipgloss.Color(front)),
		Chevron: lipgloss.NewStyle().
			Foreground(lipgloss.Color(rear)).
			Background(lipgloss.Color(front)).
			Bold(true),
		Major: lipgloss.NewStyle().Foreground(TickMajor),
		Minor: lipgloss.NewStyle().Foreground(TextMuted),
		Label: lipgloss.NewStyle().Foreground(TextSecondary),
	}

	inspect.RegisterStyle("plank.rear", p.Rear)
	inspect.RegisterStyle("plank.front", p.Front)
	inspect.RegisterStyle("plank.chevron", p.Chevron)
	inspect.RegisterStyle("ruler.major", p.Major)
	inspect.RegisterStyle("ruler.minor", p.Minor)
	inspect.RegisterStyle("label", p.Label)
	return p
}

// Pre-built styles for the chrome around the widget.
var (
	TitleStyle  = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	StatusStyle = lipgloss.NewStyle().Foreground(TextSecondary)
	ErrorStyle  = lipgloss.NewStyle().Foreground(StatusError)
	WarnStyle   = lipgloss.NewStyle().Foreground(StatusError).Bold(true)
)
