package line

import (
	"rangeline/feedback"
	"rangeline/log"
	"rangeline/observable"
	"rangeline/ruler"
)

// State is the controller's gesture state.
type State int

const (
	// StateIdle means no drag is in progress.
	StateIdle State = iota
	// StateDragging means a session is active.
	StateDragging
)

func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// Options configures a Controller.
type Options struct {
	// Sensitivity is the handle hit radius in pixels. Zero means Sensitivity.
	Sensitivity float64
	// Ruler enables tick feedback when non-nil and Count > 0.
	Ruler *ruler.Ruler
	// Feedback creates the generator armed for each drag. Nil disables feedback.
	Feedback feedback.Factory
}

// Controller runs the drag state machine for one slider. It reads and publishes
// the range through two host-owned scalars. It is not safe for concurrent use;
// samples of a drag must arrive serially.
type Controller struct {
	left, right *observable.Scalar

	sensitivity float64
	hasRuler    bool
	ticks       *ruler.TickNotifier
	newFeedback feedback.Factory

	session   *DragSession
	generator feedback.Generator
}

// NewController binds a controller to the host's left and right scalars.
func NewController(left, right *observable.Scalar, opts Options) *Controller {
	sensitivity := opts.Sensitivity
	if sensitivity <= 0 {
		sensitivity = Sensitivity
	}
	return &Controller{
		left:        left,
		right:       right,
		sensitivity: sensitivity,
		hasRuler:    opts.Ruler != nil,
		ticks:       ruler.NewTickNotifier(opts.Ruler),
		newFeedback: opts.Feedback,
	}
}

// Range returns the published range.
func (c *Controller) Range() Range {
	return Range{Left: c.left.Get(), Right: c.right.Get()}
}

// State returns Idle or Dragging.
func (c *Controller) State() State {
	if c.session != nil {
		return StateDragging
	}
	return StateIdle
}

// Mode returns the active drag mode, or ModeNone while idle.
func (c *Controller) Mode() Mode {
	if c.session == nil {
		return ModeNone
	}
	return c.session.Mode
}

// Session returns a copy of the active session.
func (c *Controller) Session() (DragSession, bool) {
	if c.session == nil {
		return DragSession{}, false
	}
	return *c.session, true
}

// Changed handles a drag sample. The first sample of a gesture classifies it.
func (c *Controller) Changed(s Sample, g Geometry) {
	if c.session == nil {
		c.begin(s, g)
	}
	c.apply(s, g)
}

// Ended handles the final sample of a gesture and returns to idle. Without an
// active session it does nothing.
func (c *Controller) Ended(s Sample, g Geometry) {
	if c.session == nil {
		return
	}
	c.apply(s, g)
	log.GestureTrace("drag ended mode=%s range=%s", c.session.Mode, c.Range())
	c.session = nil
	c.generator = nil
}

// Cancel drops the active session without applying a final sample.
func (c *Controller) Cancel() {
	c.session = nil
	c.generator = nil
}

// SetRange publishes r, normalized, without tick feedback. Any active drag is
// cancelled since its start snapshot no longer matches.
func (c *Controller) SetRange(r Range) {
	c.Cancel()
	c.publish(r.Normalize())
}

func (c *Controller) begin(s Sample, g Geometry) {
	session := ClassifyWith(c.sensitivity, s.Start, s.PredictedEndTranslation, g, c.Range())
	c.session = &session

	// Feedback is only armed when there is a ruler to tick against.
	if c.hasRuler && c.newFeedback != nil {
		c.generator = c.newFeedback()
		c.generator.PrepareNext()
	}

	log.GestureTrace("drag began at x=%.1f predicted=%.1f mode=%s start=%s",
		s.Start, s.PredictedEndTranslation, session.Mode, c.Range())
}

func (c *Controller) apply(s Sample, g Geometry) {
	prev := c.Range()
	next := Update(*c.session, s.Translation, g, prev)

	if c.generator != nil {
		c.ticks.Observe(c.generator, prev.Left, prev.Right, next.Left, next.Right)
	}
	c.publish(next)
}

// publish writes each endpoint that moved by at least Epsilon.
func (c *Controller) publish(next Range) {
	if !Same(next.Left, c.left.Get()) {
		c.left.Set(next.Left)
	}
	if !Same(next.Right, c.right.Get()) {
		c.right.Set(next.Right)
	}
}
