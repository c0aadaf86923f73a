package layout

// Constraints holds the computed placement of every component, in cells.
type Constraints struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Computed mode
	Mode LayoutMode

	// ContentHeight is everything above the status line.
	ContentHeight int

	// Widget bounds. The widget covers columns [WidgetX, WidgetX+WidgetWidth)
	// and rows [WidgetY, WidgetY+WidgetHeight).
	WidgetX      int
	WidgetY      int
	WidgetWidth  int
	WidgetHeight int

	StatusWidth  int
	StatusHeight int
	MenuWidth    int
	MenuHeight   int
	ErrBoxWidth  int
	ErrBoxHeight int

	ShowMinWarning bool // Terminal is below minimum size
}

// WidgetRows returns the widget height for a plank frame of verticalInset
// rows above and below the ruler.
func WidgetRows(verticalInset int) int {
	return 1 + 2*max(verticalInset, 0)
}

// ComputeConstraints lays out a terminal of width x height cells.
func ComputeConstraints(width, height, verticalInset int) Constraints {
	c := Constraints{
		TerminalWidth:  width,
		TerminalHeight: height,
		Mode:           DetermineMode(width, height),
		ShowMinWarning: width < MinWidth || height < MinHeight,
	}

	c.StatusWidth, c.StatusHeight = width, StatusHeight
	c.ErrBoxWidth, c.ErrBoxHeight = width, ErrBoxHeight
	c.MenuWidth, c.MenuHeight = width, computeMenuHeight(c.Mode)
	c.ContentHeight = max(height-c.StatusHeight-c.ErrBoxHeight-c.MenuHeight, 0)

	c.WidgetWidth = clamp(width-2*Padding, 0, WidgetMaxWidth)
	c.WidgetX = (width - c.WidgetWidth) / 2
	c.WidgetHeight = WidgetRows(verticalInset)
	c.WidgetY = computeWidgetY(c.ContentHeight, c.WidgetHeight)

	return c
}

// computeWidgetY centers the widget and its value row in the content area,
// keeping row 0 for the title when there is room.
func computeWidgetY(contentHeight, widgetHeight int) int {
	block := widgetHeight + ValuesHeight
	if contentHeight < block+TitleHeight {
		return 0
	}
	return max(TitleHeight, (contentHeight-block)/2)
}

func computeMenuHeight(mode LayoutMode) int {
	switch mode {
	case LayoutFull:
		return MenuMaxHeight
	case LayoutStandard:
		return MenuStandardHeight
	default:
		return MenuMinHeight
	}
}

// Contains reports whether the cell (x, y) falls inside the widget.
func (c Constraints) Contains(x, y int) bool {
	return x >= c.WidgetX && x < c.WidgetX+c.WidgetWidth &&
		y >= c.WidgetY && y < c.WidgetY+c.WidgetHeight
}

func clamp(value, minVal, maxVal int) int {
	return min(max(value, minVal), maxVal)
}
