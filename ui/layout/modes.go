// Package layout places the slider and its chrome inside the terminal.
package layout

// LayoutMode represents the current layout mode based on terminal dimensions.
type LayoutMode int

const (
	// LayoutFull is for large terminals: full help, capped widget width.
	LayoutFull LayoutMode = iota

	// LayoutStandard is the default comfortable layout.
	LayoutStandard

	// LayoutCompact is for small terminals: one line of help.
	LayoutCompact

	// LayoutMinimal is below the usable minimum; a warning is shown.
	LayoutMinimal
)

// String returns the string representation of the layout mode.
func (m LayoutMode) String() string {
	switch m {
	case LayoutFull:
		return "full"
	case LayoutStandard:
		return "standard"
	case LayoutCompact:
		return "compact"
	case LayoutMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// DetermineMode picks the layout mode for the given dimensions. The more
// restrictive of width and height wins.
func DetermineMode(width, height int) LayoutMode {
	if width < MinWidth || height < MinHeight {
		return LayoutMinimal
	}
	return max(modeFor(width, FullWidth, StandardWidth), modeFor(height, FullHeight, StandardHeight))
}

func modeFor(size, full, standard int) LayoutMode {
	switch {
	case size >= full:
		return LayoutFull
	case size >= standard:
		return LayoutStandard
	default:
		return LayoutCompact
	}
}
