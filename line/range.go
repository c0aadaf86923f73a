// Package line implements the editable line: a two-handle range slider over a
// normalized [0,1] track. It classifies pointer drags into handle, span or
// no-op gestures and turns pixel translations into clamped range values.
package line

import (
	"fmt"
	"math"
)

// Epsilon is the smallest change the controller publishes.
const Epsilon = 1e-5

// Same reports whether a and b differ by less than Epsilon.
func Same(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Range is a pair of normalized endpoints with 0 <= Left <= Right <= 1.
type Range struct {
	Left  float64
	Right float64
}

// Full is the whole track.
var Full = Range{Left: 0, Right: 1}

// Len returns the span length.
func (r Range) Len() float64 {
	return r.Right - r.Left
}

// Valid reports whether r satisfies the range invariant.
func (r Range) Valid() bool {
	return 0 <= r.Left && r.Left <= r.Right && r.Right <= 1
}

// Normalize clamps both endpoints into [0,1] and orders them.
func (r Range) Normalize() Range {
	l, rt := clamp(r.Left, 0, 1), clamp(r.Right, 0, 1)
	if l > rt {
		l, rt = rt, l
	}
	return Range{Left: l, Right: rt}
}

// Same reports whether both endpoints are within Epsilon of o.
func (r Range) Same(o Range) bool {
	return Same(r.Left, o.Left) && Same(r.Right, o.Right)
}

func (r Range) String() string {
	return fmt.Sprintf("[%.3f, %.3f]", r.Left, r.Right)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
