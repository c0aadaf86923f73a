package line

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// demoGeometry is a 300px surface with 16px end caps; handles at 0.2/0.8 sit
// at 69.6 and 230.4.
var demoGeometry = Geometry{Width: 300, Inset: 16}

func TestClassify(t *testing.T) {
	r := Range{Left: 0.2, Right: 0.8}

	tests := []struct {
		name      string
		start     float64
		predicted float64
		want      Mode
	}{
		{name: "on the left handle", start: 96, want: ModeLeft},
		{name: "left handle minus 5", start: 91, want: ModeLeft},
		{name: "left handle plus 5", start: 101, want: ModeLeft},
		{name: "midpoint", start: 186, want: ModeMiddle},
		{name: "on the right handle", start: 230, want: ModeRight},
		{name: "outside the track", start: 10, want: ModeNone},
		{name: "past the right handle", start: 290, want: ModeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Classify(tt.start, tt.predicted, demoGeometry, r)
			assert.Equal(t, tt.want, s.Mode)
			assert.Equal(t, 0.2, s.StartLeft)
			assert.Equal(t, 0.8, s.StartRight)
		})
	}
}

func TestClassifyOverlappingHandles(t *testing.T) {
	// Handles at 0.5/0.55 are ~13px apart, both within sensitivity of each start.
	r := Range{Left: 0.5, Right: 0.55}
	left := demoGeometry.HandleX(r.Left)
	right := demoGeometry.HandleX(r.Right)

	tests := []struct {
		name      string
		start     float64
		predicted float64
		want      Mode
	}{
		{name: "left of left heading left", start: left - 5, predicted: -20, want: ModeLeft},
		{name: "left of left heading right", start: left - 5, predicted: 20, want: ModeMiddle},
		{name: "right of right heading right", start: right + 5, predicted: 20, want: ModeRight},
		{name: "right of right heading left", start: right + 5, predicted: -20, want: ModeMiddle},
		{name: "between heading left", start: (left + right) / 2, predicted: -20, want: ModeMiddle},
		{name: "no predicted motion", start: left - 5, predicted: 0, want: ModeMiddle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.start, tt.predicted, demoGeometry, r).Mode)
		})
	}
}

func TestClassifyWithSensitivity(t *testing.T) {
	r := Range{Left: 0.2, Right: 0.8}

	// 91 is 21.4px from the left handle.
	assert.Equal(t, ModeLeft, ClassifyWith(40, 91, 0, demoGeometry, r).Mode)
	assert.Equal(t, ModeNone, ClassifyWith(10, 50, 0, demoGeometry, r).Mode)
	assert.Equal(t, ModeMiddle, ClassifyWith(10, 91, 0, demoGeometry, r).Mode)
}

func TestUpdate(t *testing.T) {
	usable := demoGeometry.Usable()

	tests := []struct {
		name    string
		session DragSession
		delta   float64
		current Range
		want    Range
	}{
		{
			name:    "none leaves the range alone",
			session: DragSession{Mode: ModeNone, StartLeft: 0.2, StartRight: 0.8},
			delta:   0.3,
			current: Range{Left: 0.2, Right: 0.8},
			want:    Range{Left: 0.2, Right: 0.8},
		},
		{
			name:    "left handle moves",
			session: DragSession{Mode: ModeLeft, StartLeft: 0.2, StartRight: 0.8},
			delta:   0.25,
			current: Range{Left: 0.2, Right: 0.8},
			want:    Range{Left: 0.45, Right: 0.8},
		},
		{
			name:    "left handle stops at the right handle",
			session: DragSession{Mode: ModeLeft, StartLeft: 0.2, StartRight: 0.3},
			delta:   0.5,
			current: Range{Left: 0.2, Right: 0.3},
			want:    Range{Left: 0.3, Right: 0.3},
		},
		{
			name:    "left handle stops at zero",
			session: DragSession{Mode: ModeLeft, StartLeft: 0.2, StartRight: 0.8},
			delta:   -0.5,
			current: Range{Left: 0.2, Right: 0.8},
			want:    Range{Left: 0, Right: 0.8},
		},
		{
			name:    "right handle stops at the left handle",
			session: DragSession{Mode: ModeRight, StartLeft: 0.4, StartRight: 0.6},
			delta:   -0.5,
			current: Range{Left: 0.4, Right: 0.6},
			want:    Range{Left: 0.4, Right: 0.4},
		},
		{
			name:    "right handle stops at one",
			session: DragSession{Mode: ModeRight, StartLeft: 0.4, StartRight: 0.6},
			delta:   0.5,
			current: Range{Left: 0.4, Right: 0.6},
			want:    Range{Left: 0.4, Right: 1},
		},
		{
			name:    "span shifts",
			session: DragSession{Mode: ModeMiddle, StartLeft: 0.2, StartRight: 0.5},
			delta:   0.25,
			current: Range{Left: 0.2, Right: 0.5},
			want:    Range{Left: 0.45, Right: 0.75},
		},
		{
			name:    "span clamps at the right edge",
			session: DragSession{Mode: ModeMiddle, StartLeft: 0.1, StartRight: 0.9},
			delta:   0.3,
			current: Range{Left: 0.1, Right: 0.9},
			want:    Range{Left: 0.2, Right: 1},
		},
		{
			name:    "span clamps at the left edge",
			session: DragSession{Mode: ModeMiddle, StartLeft: 0.25, StartRight: 0.5},
			delta:   -0.5,
			current: Range{Left: 0.25, Right: 0.5},
			want:    Range{Left: 0, Right: 0.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Update(tt.session, tt.delta*usable, demoGeometry, tt.current)
			assert.InDelta(t, tt.want.Left, got.Left, 1e-9)
			assert.InDelta(t, tt.want.Right, got.Right, 1e-9)
		})
	}
}

func TestUpdateIsRepeatable(t *testing.T) {
	for _, mode := range []Mode{ModeNone, ModeLeft, ModeRight, ModeMiddle} {
		t.Run(mode.String(), func(t *testing.T) {
			start := Range{Left: 0.3, Right: 0.6}
			s := DragSession{Mode: mode, StartLeft: start.Left, StartRight: start.Right}

			once := Update(s, 42, demoGeometry, start)
			twice := Update(s, 42, demoGeometry, once)
			assert.Equal(t, once, twice)
		})
	}
}

func TestUpdateInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		a, b := rng.Float64(), rng.Float64()
		start := Range{Left: a, Right: b}.Normalize()
		mode := Mode(rng.Intn(4))
		s := DragSession{Mode: mode, StartLeft: start.Left, StartRight: start.Right}

		current := start
		for j := 0; j < 20; j++ {
			translation := (rng.Float64()*2 - 1) * demoGeometry.Width * 1.5
			current = Update(s, translation, demoGeometry, current)

			if !current.Valid() {
				t.Fatalf("mode %s produced invalid range %s from %s", mode, current, start)
			}
			if mode == ModeMiddle {
				assert.InDelta(t, start.Len(), current.Len(), 1e-9, "span length must not change")
			}
		}
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "none", ModeNone.String())
	assert.Equal(t, "left", ModeLeft.String())
	assert.Equal(t, "right", ModeRight.String())
	assert.Equal(t, "middle", ModeMiddle.String())
	assert.Equal(t, "none", Mode(42).String())
}
