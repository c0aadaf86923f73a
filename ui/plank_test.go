package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"rangeline/line"
	"rangeline/ruler"
	"rangeline/testing/snapshot"
)

func testPlank(r line.Range) Plank {
	return Plank{
		Width:          20,
		VerticalInset:  1,
		CellWidth:      8,
		Geometry:       line.Geometry{Width: 160, Inset: 16},
		Range:          r,
		Ruler:          ruler.New(4, 2),
		ShowRuler:      true,
		ShowMinorTicks: true,
	}
}

func TestPlankRender(t *testing.T) {
	p := testPlank(line.Range{Left: 0.25, Right: 0.75})
	out := p.Render(NewPalette("", ""))

	assert.Equal(t, 3, snapshot.Lines(out))
	assert.Equal(t, "░░░░████████████░░░░", snapshot.Line(out, 0))
	assert.Equal(t, "░░┃ █<╵   ┃  ╵>█ ┃░░", snapshot.Line(out, 1))
	assert.Equal(t, snapshot.Line(out, 0), snapshot.Line(out, 2))
}

func TestPlankDegradedRuler(t *testing.T) {
	p := testPlank(line.Range{Left: 0.25, Right: 0.75})

	p.ShowMinorTicks = false
	assert.Equal(t, "░░┃ █<    ┃   >█ ┃░░", snapshot.Line(p.Render(NewPalette("", "")), 1))

	p.ShowRuler = false
	assert.Equal(t, "░░  █<        >█  ░░", snapshot.Line(p.Render(NewPalette("", "")), 1))
}

func TestPlankWithoutFrameRows(t *testing.T) {
	p := testPlank(line.Full)
	p.VerticalInset = 0

	out := p.Render(NewPalette("", ""))
	assert.Equal(t, 1, snapshot.Lines(out))
	assert.Equal(t, "█<┃   ╵   ┃  ╵   ┃>█", snapshot.Line(out, 0))
}

func TestPlankFrontSpan(t *testing.T) {
	tests := []struct {
		name      string
		r         line.Range
		wantStart int
		wantEnd   int
	}{
		{name: "full", r: line.Full, wantStart: 0, wantEnd: 19},
		{name: "quarter to three quarters", r: line.Range{Left: 0.25, Right: 0.75}, wantStart: 4, wantEnd: 15},
		{name: "collapsed at zero", r: line.Range{}, wantStart: 0, wantEnd: 3},
		{name: "collapsed at one", r: line.Range{Left: 1, Right: 1}, wantStart: 16, wantEnd: 19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := testPlank(tt.r).FrontSpan()
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestPlankMarkColumns(t *testing.T) {
	p := testPlank(line.Full)

	var cols []int
	for _, m := range p.Ruler.Marks() {
		cols = append(cols, p.MarkColumn(m.Position))
	}
	assert.Equal(t, []int{2, 6, 10, 13, 17}, cols)
}

func TestPlankLabels(t *testing.T) {
	palette := NewPalette("", "")

	spread := testPlank(line.Range{Left: 0.25, Right: 0.75}).Labels(20, palette)
	assert.Equal(t, "    0.25    0.75", strings.TrimRight(snapshot.StripANSI(spread), " "))

	collapsed := testPlank(line.Range{Left: 0.5, Right: 0.5}).Labels(20, palette)
	assert.Equal(t, "     0.50 - 0.50", strings.TrimRight(snapshot.StripANSI(collapsed), " "))

	narrow := testPlank(line.Range{Left: 0.5, Right: 0.5}).Labels(6, palette)
	assert.LessOrEqual(t, snapshot.Width(narrow), 6)

	assert.Empty(t, testPlank(line.Full).Labels(0, palette))
}

func TestPlankZeroWidth(t *testing.T) {
	p := testPlank(line.Full)
	p.Width = 0
	assert.Empty(t, p.Render(NewPalette("", "")))
}
