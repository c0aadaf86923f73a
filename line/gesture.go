package line

import "math"

// Sensitivity is the default hit radius around a handle, in pixels.
const Sensitivity = 40.0

// Mode is what a drag moves.
type Mode int

const (
	// ModeNone ignores the drag.
	ModeNone Mode = iota
	// ModeLeft moves the left handle.
	ModeLeft
	// ModeRight moves the right handle.
	ModeRight
	// ModeMiddle moves the whole span.
	ModeMiddle
)

func (m Mode) String() string {
	switch m {
	case ModeLeft:
		return "left"
	case ModeRight:
		return "right"
	case ModeMiddle:
		return "middle"
	default:
		return "none"
	}
}

// Sample is the horizontal projection of one pointer drag sample.
type Sample struct {
	// Start is the pixel position where the drag began.
	Start float64
	// Translation is the cumulative offset from Start.
	Translation float64
	// PredictedEndTranslation is where the drag is expected to end, relative to Start.
	// Only its sign is used, to break ties between overlapping handles.
	PredictedEndTranslation float64
}

// DragSession is the target of a drag and the range it started from.
type DragSession struct {
	Mode       Mode
	StartLeft  float64
	StartRight float64
}

// Classify picks the drag target with the default Sensitivity.
func Classify(start, predictedEnd float64, g Geometry, r Range) DragSession {
	return ClassifyWith(Sensitivity, start, predictedEnd, g, r)
}

// ClassifyWith picks the drag target for a drag starting at pixel start.
//
// When both handles are within sensitivity of the start the predicted direction
// decides: starting outside the left handle and heading left grabs the left
// handle, starting outside the right handle and heading right grabs the right
// one, anything else grabs the span.
func ClassifyWith(sensitivity, start, predictedEnd float64, g Geometry, r Range) DragSession {
	left := g.HandleX(r.Left)
	right := g.HandleX(r.Right)

	nearLeft := math.Abs(left-start) < sensitivity
	nearRight := math.Abs(right-start) < sensitivity
	between := left < start && start < right

	var mode Mode
	switch {
	case nearLeft && nearRight:
		switch {
		case start < left && predictedEnd < 0:
			mode = ModeLeft
		case start > right && predictedEnd > 0:
			mode = ModeRight
		default:
			mode = ModeMiddle
		}
	case nearLeft:
		mode = ModeLeft
	case nearRight:
		mode = ModeRight
	case between:
		mode = ModeMiddle
	default:
		mode = ModeNone
	}

	return DragSession{Mode: mode, StartLeft: r.Left, StartRight: r.Right}
}

// Update computes the range for a cumulative translation. It depends only on the
// session, translation and geometry, so repeating a sample is harmless. current
// is returned as is for ModeNone and supplies the endpoint a handle drag leaves
// alone.
func Update(s DragSession, translation float64, g Geometry, current Range) Range {
	d := g.Delta(translation)
	next := current

	switch s.Mode {
	case ModeLeft:
		next.Left = clamp(s.StartLeft+d, 0, s.StartRight)
	case ModeRight:
		next.Right = clamp(s.StartRight+d, s.StartLeft, 1)
	case ModeMiddle:
		span := s.StartRight - s.StartLeft
		switch {
		case s.StartLeft+d < 0:
			next = Range{Left: 0, Right: span}
		case s.StartRight+d > 1:
			next = Range{Left: 1 - span, Right: 1}
		default:
			next = Range{Left: s.StartLeft + d, Right: s.StartRight + d}
		}
	}

	return next
}
