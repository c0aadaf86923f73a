package inspect

import (
	"fmt"
	"strings"
	"time"

	"rangeline/ui/layout"
)

// Snapshot represents a complete UI state at a point in time.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`

	// Version of the snapshot format.
	Version string `json:"version"`

	Terminal TerminalInfo `json:"terminal"`

	// Slider is the gesture and value state of the range slider.
	Slider SliderInfo `json:"slider"`

	Layout LayoutInfo `json:"layout"`

	// ErrorMessage is the error box content, if any.
	ErrorMessage string `json:"error_message,omitempty"`

	Components *Node `json:"components"`

	Breakpoints []BreakpointInfo `json:"breakpoints"`
}

// TerminalInfo contains terminal dimensions.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SliderInfo describes the slider's value and drag state.
type SliderInfo struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`

	// State is "idle" or "dragging"; Mode is the active drag mode.
	State string `json:"state"`
	Mode  string `json:"mode"`

	// WidthPx and InsetPx are the virtual pixel geometry the controller sees.
	WidthPx   float64 `json:"width_px"`
	InsetPx   float64 `json:"inset_px"`
	CellWidth float64 `json:"cell_width"`

	RulerCount int `json:"ruler_count,omitempty"`
	RulerStep  int `json:"ruler_step,omitempty"`

	// Ticks is how many tick pulses were delivered so far.
	Ticks int `json:"ticks"`
}

// LayoutInfo contains layout configuration.
type LayoutInfo struct {
	Mode string `json:"mode"`

	WidgetX      int `json:"widget_x"`
	WidgetY      int `json:"widget_y"`
	WidgetWidth  int `json:"widget_width"`
	WidgetHeight int `json:"widget_height"`
	MenuHeight   int `json:"menu_height"`

	Degradation DegradationInfo `json:"degradation"`
}

// DegradationInfo contains active UI degradation flags.
type DegradationInfo struct {
	HideMinorTicks bool `json:"hide_minor_ticks"`
	HideTitle      bool `json:"hide_title"`
	HideValues     bool `json:"hide_values"`
	SingleLineMenu bool `json:"single_line_menu"`
	HideRuler      bool `json:"hide_ruler"`
	ShowMinWarning bool `json:"show_min_warning"`
}

// BreakpointInfo contains information about a responsive breakpoint.
type BreakpointInfo struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Active    bool   `json:"active"`
	// Dimension is "width" or "height".
	Dimension string `json:"dimension"`
}

// NewSnapshot creates a new snapshot with current timestamp.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Timestamp: time.Now(),
		Version:   "1.0.0",
	}
}

// WithTerminal sets terminal info and returns the snapshot for chaining.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithSlider sets the slider state and returns the snapshot for chaining.
func (s *Snapshot) WithSlider(info SliderInfo) *Snapshot {
	s.Slider = info
	return s
}

// WithError sets the error box content and returns the snapshot for chaining.
func (s *Snapshot) WithError(msg string) *Snapshot {
	s.ErrorMessage = msg
	return s
}

// WithLayout sets layout info from constraints and degradation.
func (s *Snapshot) WithLayout(c layout.Constraints, d layout.Degradation) *Snapshot {
	s.Layout = LayoutInfo{
		Mode:         c.Mode.String(),
		WidgetX:      c.WidgetX,
		WidgetY:      c.WidgetY,
		WidgetWidth:  c.WidgetWidth,
		WidgetHeight: c.WidgetHeight,
		MenuHeight:   c.MenuHeight,
		Degradation: DegradationInfo{
			HideMinorTicks: d.HideMinorTicks,
			HideTitle:      d.HideTitle,
			HideValues:     d.HideValues,
			SingleLineMenu: d.SingleLineMenu,
			HideRuler:      d.HideRuler,
			ShowMinWarning: d.ShowMinWarning,
		},
	}

	s.Breakpoints = []BreakpointInfo{
		{Name: "min_width", Threshold: layout.MinWidth, Active: c.TerminalWidth < layout.MinWidth, Dimension: "width"},
		{Name: "min_height", Threshold: layout.MinHeight, Active: c.TerminalHeight < layout.MinHeight, Dimension: "height"},
		{Name: "single_line_menu", Threshold: layout.CompactHeight, Active: d.SingleLineMenu, Dimension: "height"},
		{Name: "widget_cap", Threshold: layout.WidgetMaxWidth, Active: c.WidgetWidth == layout.WidgetMaxWidth, Dimension: "width"},
	}

	return s
}

// WithComponents sets the component tree root.
func (s *Snapshot) WithComponents(root *Node) *Snapshot {
	s.Components = root
	return s
}

// ToText returns a human-readable text representation.
func (s *Snapshot) ToText() string {
	var b strings.Builder

	b.WriteString("=== UI Snapshot ===\n")
	fmt.Fprintf(&b, "Time: %s\n", s.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&b, "Terminal: %dx%d\n", s.Terminal.Width, s.Terminal.Height)

	b.WriteString("\n--- Slider ---\n")
	fmt.Fprintf(&b, "Range: [%.3f, %.3f]\n", s.Slider.Left, s.Slider.Right)
	fmt.Fprintf(&b, "State: %s (%s)\n", s.Slider.State, s.Slider.Mode)
	fmt.Fprintf(&b, "Geometry: %.0fpx, inset %.0fpx\n", s.Slider.WidthPx, s.Slider.InsetPx)
	if s.Slider.RulerCount > 0 {
		fmt.Fprintf(&b, "Ruler: %d/%d, %d ticks\n", s.Slider.RulerCount, s.Slider.RulerStep, s.Slider.Ticks)
	}
	if s.ErrorMessage != "" {
		fmt.Fprintf(&b, "Error: %s\n", s.ErrorMessage)
	}

	b.WriteString("\n--- Layout ---\n")
	fmt.Fprintf(&b, "Mode: %s\n", s.Layout.Mode)
	fmt.Fprintf(&b, "Widget: %dx%d at (%d,%d)\n",
		s.Layout.WidgetWidth, s.Layout.WidgetHeight, s.Layout.WidgetX, s.Layout.WidgetY)

	b.WriteString("\n--- Active Breakpoints ---\n")
	for _, bp := range s.Breakpoints {
		status := "[ ]"
		if bp.Active {
			status = "[X]"
		}
		fmt.Fprintf(&b, "  %s %s (threshold: %d %s)\n", status, bp.Name, bp.Threshold, bp.Dimension)
	}

	if s.Components != nil {
		b.WriteString("\n--- Components ---\n")
		writeNodeText(&b, s.Components, 0)
	}

	return b.String()
}

func writeNodeText(b *strings.Builder, node *Node, indent int) {
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString(node.Type)
	if node.ID != "" {
		fmt.Fprintf(b, " [%s]", node.ID)
	}
	fmt.Fprintf(b, " (%dx%d)", node.Bounds.Width, node.Bounds.Height)
	if !node.Visible {
		b.WriteString(" hidden")
	}
	if node.Truncated != nil {
		fmt.Fprintf(b, " TRUNCATED(%d->%d)", node.Truncated.OriginalLength, node.Truncated.DisplayLength)
	}
	b.WriteString("\n")

	for _, child := range node.Children {
		writeNodeText(b, child, indent+1)
	}
}
