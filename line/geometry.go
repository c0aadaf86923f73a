package line

// Geometry is the pixel layout of the slider track. It is derived from the host
// surface size on every layout pass and never stored between passes.
type Geometry struct {
	// Width is the total pixel width of the surface.
	Width float64
	// Inset is the margin reserved for the end caps at both ends.
	Inset float64
}

// Usable is the draggable width between the insets.
func (g Geometry) Usable() float64 {
	return g.Width - 2*g.Inset
}

// Valid reports whether the geometry has a positive usable width. Gesture
// functions must not be called with an invalid geometry.
func (g Geometry) Valid() bool {
	return g.Usable() > 0
}

// HandleX is the pixel position of a handle at normalized value v.
func (g Geometry) HandleX(v float64) float64 {
	return g.Inset + v*g.Usable()
}

// Delta converts a pixel translation into a normalized delta.
func (g Geometry) Delta(translation float64) float64 {
	return translation / g.Usable()
}

// PixelToNormalized maps a pixel position onto the track. The result is not
// clamped: positions inside the insets fall outside [0,1].
func PixelToNormalized(x float64, g Geometry) float64 {
	return (x - g.Inset) / g.Usable()
}

// NormalizedToPixelRect returns the horizontal extent of the front plank for r.
// The plank covers the selected span plus an end cap of Inset on each side.
func NormalizedToPixelRect(r Range, g Geometry) (left, width float64) {
	usable := g.Usable()
	left = usable * r.Left
	right := usable * r.Right
	return left, right - left + 2*g.Inset
}
