package layout

// Width breakpoints
const (
	// MinWidth is the narrowest terminal the slider is usable in.
	MinWidth = 40

	// CompactWidth triggers compact mode features.
	CompactWidth = 60

	// StandardWidth is the threshold for standard layout.
	StandardWidth = 80

	// FullWidth is the threshold for full layout with all features.
	FullWidth = 120
)

// Height breakpoints
const (
	// MinHeight is the shortest terminal the slider is usable in.
	MinHeight = 8

	// CompactHeight triggers compact mode features.
	CompactHeight = 12

	// StandardHeight is the threshold for standard layout.
	StandardHeight = 16

	// FullHeight is the threshold for full layout.
	FullHeight = 24
)

// Widget constraints
const (
	// Padding is the horizontal margin in cells on each side of the widget.
	Padding = 2

	// WidgetMaxWidth keeps the track from stretching across very wide terminals.
	WidgetMaxWidth = 160

	// TitleHeight is the title row above the widget.
	TitleHeight = 1

	// ValuesHeight is the value label row under the widget.
	ValuesHeight = 1
)

// Menu constraints
const (
	// MenuMinHeight is the single line short help.
	MenuMinHeight = 1

	// MenuStandardHeight leaves room for a blank line above the help.
	MenuStandardHeight = 2

	// MenuMaxHeight fits the full help columns.
	MenuMaxHeight = 4
)

// Component constraints
const (
	// StatusHeight is the status line height.
	StatusHeight = 1

	// ErrBoxHeight is the fixed error box height.
	ErrBoxHeight = 1
)
