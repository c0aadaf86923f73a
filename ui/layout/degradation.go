package layout

// Degradation holds flags indicating which UI features should be hidden or simplified.
// Features are listed in order of degradation priority (first to hide).
type Degradation struct {
	HideMinorTicks bool // Fewer usable cells than ruler marks
	HideTitle      bool // No row left above the widget
	HideValues     bool // No row left under the widget
	SingleLineMenu bool // Short help only (height < CompactHeight)
	HideRuler      bool // Not even the major ticks fit
	ShowMinWarning bool // Terminal too small warning (below MinWidth/MinHeight)
}

// ComputeDegradation decides what to drop given the layout, the number of
// cells between the end caps and the ruler's tick count and step. A tick
// count of zero means there is no ruler to degrade.
func ComputeDegradation(c Constraints, usableCells, tickCount, step int) Degradation {
	d := Degradation{
		HideTitle:      c.WidgetY < TitleHeight,
		HideValues:     c.ContentHeight < c.WidgetY+c.WidgetHeight+ValuesHeight,
		SingleLineMenu: c.TerminalHeight < CompactHeight,
		ShowMinWarning: c.ShowMinWarning,
	}

	if tickCount > 0 {
		// count+1 marks, one cell each.
		d.HideMinorTicks = usableCells < tickCount+1
		majors := 1
		if step > 0 {
			majors = tickCount/step + 1
		}
		d.HideRuler = usableCells < majors
	}

	return d
}

// ShouldShowMinorTicks returns true if every ruler mark gets its own cell.
func (d Degradation) ShouldShowMinorTicks() bool {
	return !d.HideMinorTicks && !d.HideRuler
}

// ShouldShowValues returns true if the value labels fit under the widget.
func (d Degradation) ShouldShowValues() bool {
	return !d.HideValues
}

// IsCompactMode returns true if the layout should use compact rendering.
func (d Degradation) IsCompactMode() bool {
	return d.HideTitle || d.SingleLineMenu
}
