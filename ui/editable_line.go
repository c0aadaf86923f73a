package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"rangeline/inspect"
	"rangeline/line"
	"rangeline/log"
	"rangeline/ruler"
	"rangeline/ui/layout"
)

// EditableLineOptions configures the widget's look. Pixel values are virtual:
// one cell is CellWidth pixels.
type EditableLineOptions struct {
	CellWidth     float64
	Inset         float64
	VerticalInset int
	Ruler         *ruler.Ruler
	Palette       Palette
}

// pointer tracks the mouse between a press and its release.
type pointer struct {
	down bool
	// started is set once the first motion with a non-zero translation was
	// forwarded to the controller.
	started bool
	startX  float64
	// lastX is the pixel of the latest motion.
	lastX float64
}

// EditableLine hosts a line.Controller in a terminal. It converts mouse
// events in cells to drag samples in pixels and draws the planks and ruler.
type EditableLine struct {
	ctrl *line.Controller
	opts EditableLineOptions

	x, y, width int
	degradation layout.Degradation

	ptr pointer
}

// NewEditableLine wraps ctrl. The widget has no size until SetBounds.
func NewEditableLine(ctrl *line.Controller, opts EditableLineOptions) *EditableLine {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	return &EditableLine{ctrl: ctrl, opts: opts}
}

// SetBounds places the widget at column x, row y with the given width in
// cells. It is called on every layout pass.
func (e *EditableLine) SetBounds(x, y, width int) {
	e.x, e.y, e.width = x, y, max(width, 0)
	log.LayoutTrace("editable line bounds x=%d y=%d width=%d geometry=%+v", x, y, width, e.Geometry())
}

// SetDegradation sets which details the widget may draw.
func (e *EditableLine) SetDegradation(d layout.Degradation) {
	e.degradation = d
}

// Bounds returns the widget position and size in cells.
func (e *EditableLine) Bounds() (x, y, width, height int) {
	return e.x, e.y, e.width, e.plank().Rows()
}

// Geometry is the pixel geometry for the current bounds.
func (e *EditableLine) Geometry() line.Geometry {
	return line.Geometry{
		Width: float64(e.width) * e.opts.CellWidth,
		Inset: e.opts.Inset,
	}
}

// Controller returns the wrapped controller.
func (e *EditableLine) Controller() *line.Controller {
	return e.ctrl
}

// Dragging reports whether the pointer is held down on the widget.
func (e *EditableLine) Dragging() bool {
	return e.ptr.down
}

// Contains reports whether the cell (x, y) is on the widget.
func (e *EditableLine) Contains(x, y int) bool {
	_, _, w, h := e.Bounds()
	return x >= e.x && x < e.x+w && y >= e.y && y < e.y+h
}

// pixelX is the pixel at the center of terminal column col.
func (e *EditableLine) pixelX(col int) float64 {
	return (float64(col-e.x) + 0.5) * e.opts.CellWidth
}

// HandleMouse feeds a mouse event to the controller. It returns true when the
// event belonged to the widget.
func (e *EditableLine) HandleMouse(msg tea.MouseMsg) bool {
	g := e.Geometry()
	if !g.Valid() {
		return false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		if e.ptr.down {
			// Lost release: finish the old gesture where it was.
			e.finish(e.ptr.lastX, g)
		}
		if !e.Contains(msg.X, msg.Y) {
			return false
		}
		x := e.pixelX(msg.X)
		e.ptr = pointer{down: true, startX: x, lastX: x}
		log.InputTrace("press col=%d x=%.1f", msg.X, e.ptr.startX)
		return true

	case tea.MouseActionMotion:
		if !e.ptr.down {
			return false
		}
		e.ptr.lastX = e.pixelX(msg.X)
		translation := e.ptr.lastX - e.ptr.startX
		sample := line.Sample{Start: e.ptr.startX, Translation: translation}
		if !e.ptr.started {
			if translation == 0 {
				return true
			}
			// The terminal reports no velocity; the first step predicts the rest.
			sample.PredictedEndTranslation = translation
			e.ptr.started = true
		}
		log.InputTrace("motion col=%d translation=%.1f", msg.X, translation)
		e.ctrl.Changed(sample, g)
		return true

	case tea.MouseActionRelease:
		if !e.ptr.down {
			return false
		}
		log.InputTrace("release col=%d", msg.X)
		e.finish(e.pixelX(msg.X), g)
		return true
	}

	return false
}

// finish ends the pointer gesture at pixel x. A press without motion is a
// tap and never reaches the controller.
func (e *EditableLine) finish(x float64, g line.Geometry) {
	if e.ptr.started {
		e.ctrl.Ended(line.Sample{Start: e.ptr.startX, Translation: x - e.ptr.startX}, g)
	}
	e.ptr = pointer{}
}

// Cancel abandons the current drag, leaving the range where it is.
func (e *EditableLine) Cancel() {
	if e.ptr.down {
		e.ctrl.Cancel()
		e.ptr = pointer{}
	}
}

func (e *EditableLine) plank() Plank {
	ticks := e.opts.Ruler != nil && e.opts.Ruler.Count > 0
	return Plank{
		Width:          e.width,
		VerticalInset:  e.opts.VerticalInset,
		CellWidth:      e.opts.CellWidth,
		Geometry:       e.Geometry(),
		Range:          e.ctrl.Range(),
		Ruler:          e.opts.Ruler,
		ShowRuler:      ticks && !e.degradation.HideRuler,
		ShowMinorTicks: ticks && e.degradation.ShouldShowMinorTicks(),
	}
}

// UsableCells is the number of cells between the end caps.
func (e *EditableLine) UsableCells() int {
	p := e.plank()
	return max(p.Width-2*p.InsetCells(), 0)
}

// View renders the widget rows.
func (e *EditableLine) View() string {
	defer log.GetProfiler().StartRender("EditableLine")()
	return e.plank().Render(e.opts.Palette)
}

// String implements fmt.Stringer.
func (e *EditableLine) String() string {
	return e.View()
}

// ValuesView renders the value labels, or "" when they are hidden.
func (e *EditableLine) ValuesView() string {
	if !e.degradation.ShouldShowValues() {
		return ""
	}
	return e.plank().Labels(e.width, e.opts.Palette)
}

// InspectNode implements inspect.Introspectable.
func (e *EditableLine) InspectNode() *inspect.Node {
	x, y, w, h := e.Bounds()
	r := e.ctrl.Range()
	start, end := e.plank().FrontSpan()

	node := inspect.NewNode("EditableLine").
		WithID("line").
		WithBounds(x, y, w, h).
		WithState("left", r.Left).
		WithState("right", r.Right).
		WithState("state", e.ctrl.State().String()).
		WithState("mode", e.ctrl.Mode().String()).
		WithState("front_start", start).
		WithState("front_end", end).
		WithState("pointer_down", e.ptr.down)
	node.AddChild(inspect.NewNode("Plank").WithID("rear").WithBounds(x, y, w, h).
		WithStyles(inspect.ExtractStyleInfo(e.opts.Palette.Rear, "plank.rear")))
	node.AddChild(inspect.NewNode("Plank").WithID("front").WithBounds(x+start, y, end-start+1, h).
		WithStyles(inspect.ExtractStyleInfo(e.opts.Palette.Front, "plank.front")))
	if e.opts.Ruler != nil {
		node.AddChild(inspect.NewNode("Ruler").
			WithVisible(!e.degradation.HideRuler).
			WithBounds(x, y+e.opts.VerticalInset, w, 1).
			WithState("count", e.opts.Ruler.Count).
			WithState("step", e.opts.Ruler.Step).
			WithState("minor_ticks", e.degradation.ShouldShowMinorTicks()))
	}
	return node
}
