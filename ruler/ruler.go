// Package ruler holds the tick subdivision drawn under the slider and decides
// when a handle movement crosses a tick.
package ruler

import (
	"fmt"
	"math"

	"rangeline/feedback"
)

// Ruler divides the track into Count equal ticks; every Step-th mark is major.
type Ruler struct {
	Count int `json:"count" toml:"count"`
	Step  int `json:"step" toml:"step"`
}

// New returns a ruler with count ticks and a major mark every step.
func New(count, step int) *Ruler {
	return &Ruler{Count: count, Step: step}
}

// Validate reports whether the ruler can be drawn.
func (r Ruler) Validate() error {
	if r.Count < 0 {
		return fmt.Errorf("tick count must be >= 0, got %d", r.Count)
	}
	if r.Step < 1 {
		return fmt.Errorf("major tick step must be >= 1, got %d", r.Step)
	}
	return nil
}

// Mark is one tick mark of the ruler.
type Mark struct {
	Index int
	// Position is the normalized track position in [0,1].
	Position float64
	Major    bool
}

// Marks returns the Count+1 marks from 0 to 1 inclusive. A ruler without ticks
// has no marks.
func (r Ruler) Marks() []Mark {
	if r.Count <= 0 {
		return nil
	}
	step := r.Step
	if step < 1 {
		step = 1
	}
	marks := make([]Mark, 0, r.Count+1)
	for i := 0; i <= r.Count; i++ {
		marks = append(marks, Mark{
			Index:    i,
			Position: float64(i) / float64(r.Count),
			Major:    i%step == 0,
		})
	}
	return marks
}

// TickIndex is the tick v falls in.
func TickIndex(v float64, count int) int {
	return int(math.Floor(v * float64(count)))
}

// CheckCrossing reports whether moving from prev to next crosses a tick boundary.
func CheckCrossing(prev, next float64, count int) bool {
	return TickIndex(prev, count) != TickIndex(next, count)
}

// TickNotifier pulses a feedback generator when either endpoint of the range
// crosses a tick. A nil ruler, or one without ticks, never pulses.
type TickNotifier struct {
	ruler *Ruler
}

// NewTickNotifier returns a notifier for r, which may be nil.
func NewTickNotifier(r *Ruler) *TickNotifier {
	return &TickNotifier{ruler: r}
}

// Enabled reports whether the notifier can ever fire.
func (n *TickNotifier) Enabled() bool {
	return n != nil && n.ruler != nil && n.ruler.Count > 0
}

// Observe compares the endpoints before and after a sample. Crossings on both
// ends, or over several ticks, collapse into one Notify followed by PrepareNext.
// A nil generator means no drag is active and nothing fires.
func (n *TickNotifier) Observe(gen feedback.Generator, prevLeft, prevRight, nextLeft, nextRight float64) bool {
	if !n.Enabled() || gen == nil {
		return false
	}
	count := n.ruler.Count
	left := CheckCrossing(prevLeft, nextLeft, count)
	right := CheckCrossing(prevRight, nextRight, count)
	if !left && !right {
		return false
	}
	gen.Notify()
	gen.PrepareNext()
	return true
}
