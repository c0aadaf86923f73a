package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"rangeline/line"
	"rangeline/ruler"
)

type cellKind uint8

const (
	kindEmpty cellKind = iota
	kindRear
	kindFront
	kindChevron
	kindMajor
	kindMinor
)

type cell struct {
	r    rune
	kind cellKind
}

// Plank describes one frame of the slider in terminal cells: the rear plank
// spanning the whole track, the ruler inside it and the front plank framing
// the selected range.
type Plank struct {
	// Width is the widget width in cells.
	Width int
	// VerticalInset is the frame thickness in rows above and below the ruler.
	VerticalInset int
	// CellWidth is the pixel width of one cell.
	CellWidth float64
	// Geometry is the pixel geometry the controller works in.
	Geometry line.Geometry
	Range    line.Range
	Ruler    *ruler.Ruler

	ShowRuler      bool
	ShowMinorTicks bool
}

// Rows is the widget height.
func (p Plank) Rows() int {
	return 1 + 2*max(p.VerticalInset, 0)
}

// InsetCells is the end cap width rounded to whole cells.
func (p Plank) InsetCells() int {
	if p.CellWidth <= 0 {
		return 0
	}
	return int(math.Round(p.Geometry.Inset / p.CellWidth))
}

// FrontSpan returns the first and last column covered by the front plank.
func (p Plank) FrontSpan() (start, end int) {
	left, width := line.NormalizedToPixelRect(p.Range, p.Geometry)
	start = int(math.Floor(left/p.CellWidth + 1e-9))
	end = int(math.Ceil((left+width)/p.CellWidth-1e-9)) - 1
	return clampInt(start, 0, p.Width-1), clampInt(end, 0, p.Width-1)
}

// MarkColumn maps a normalized ruler position to a column strictly between
// the end caps.
func (p Plank) MarkColumn(v float64) int {
	inset := p.InsetCells()
	inner := p.Width - 2*inset
	if inner <= 1 {
		return inset
	}
	return inset + int(math.Round(v*float64(inner-1)))
}

func (p Plank) grid() [][]cell {
	rows, width := p.Rows(), p.Width
	rulerRow := max(p.VerticalInset, 0)
	inset := p.InsetCells()

	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, width)
		for x := range grid[y] {
			if y != rulerRow || x < inset || x >= width-inset {
				grid[y][x] = cell{r: GlyphRear, kind: kindRear}
			} else {
				grid[y][x] = cell{r: ' ', kind: kindEmpty}
			}
		}
	}

	if p.ShowRuler && p.Ruler != nil {
		for _, m := range p.Ruler.Marks() {
			if !m.Major && !p.ShowMinorTicks {
				continue
			}
			x := p.MarkColumn(m.Position)
			if x < inset || x >= width-inset {
				continue
			}
			if m.Major {
				grid[rulerRow][x] = cell{r: GlyphMajor, kind: kindMajor}
			} else if grid[rulerRow][x].kind != kindMajor {
				grid[rulerRow][x] = cell{r: GlyphMinor, kind: kindMinor}
			}
		}
	}

	start, end := p.FrontSpan()
	for y := range grid {
		for x := start; x <= end; x++ {
			if y != rulerRow || x < start+inset || x > end-inset {
				grid[y][x] = cell{r: GlyphFront, kind: kindFront}
			}
		}
	}
	if inset > 0 {
		grid[rulerRow][clampInt(start+inset/2, 0, width-1)] = cell{r: GlyphChevronL, kind: kindChevron}
		grid[rulerRow][clampInt(end-inset/2, 0, width-1)] = cell{r: GlyphChevronR, kind: kindChevron}
	}

	return grid
}

// Render draws the plank with the palette, one line per row.
func (p Plank) Render(palette Palette) string {
	if p.Width <= 0 {
		return ""
	}

	grid := p.grid()
	lines := make([]string, len(grid))
	for y, row := range grid {
		lines[y] = renderRow(row, palette)
	}
	return strings.Join(lines, "\n")
}

// renderRow styles runs of equal cells together to keep the escape codes short.
func renderRow(row []cell, palette Palette) string {
	var b strings.Builder
	var run []rune
	kind := kindEmpty

	flush := func() {
		if len(run) == 0 {
			return
		}
		b.WriteString(styleFor(kind, palette).Render(string(run)))
		run = run[:0]
	}
	for _, c := range row {
		if c.kind != kind {
			flush()
			kind = c.kind
		}
		run = append(run, c.r)
	}
	flush()
	return b.String()
}

func styleFor(kind cellKind, palette Palette) lipgloss.Style {
	switch kind {
	case kindRear:
		return palette.Rear
	case kindFront:
		return palette.Front
	case kindChevron:
		return palette.Chevron
	case kindMajor:
		return palette.Major
	case kindMinor:
		return palette.Minor
	default:
		return lipgloss.NewStyle()
	}
}

// Labels renders the two endpoint values under their handles on a row of
// width cells. When the labels would collide they are joined into one.
func (p Plank) Labels(width int, palette Palette) string {
	if width <= 0 {
		return ""
	}
	left := formatValue(p.Range.Left)
	right := formatValue(p.Range.Right)
	lw, rw := runewidth.StringWidth(left), runewidth.StringWidth(right)

	lx := p.handleColumn(p.Range.Left) - lw/2
	rx := p.handleColumn(p.Range.Right) - rw/2
	lx = clampInt(lx, 0, max(width-lw, 0))
	rx = clampInt(rx, 0, max(width-rw, 0))

	var text string
	if lx+lw+1 > rx {
		joined := left + " - " + right
		jw := runewidth.StringWidth(joined)
		center := (p.handleColumn(p.Range.Left) + p.handleColumn(p.Range.Right)) / 2
		jx := clampInt(center-jw/2, 0, max(width-jw, 0))
		text = strings.Repeat(" ", jx) + joined
	} else {
		text = strings.Repeat(" ", lx) + left + strings.Repeat(" ", rx-lx-lw) + right
	}

	return palette.Label.Render(runewidth.Truncate(text, width, ""))
}

// handleColumn is the column containing the handle at v.
func (p Plank) handleColumn(v float64) int {
	return clampInt(int(p.Geometry.HandleX(v)/p.CellWidth), 0, max(p.Width-1, 0))
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
