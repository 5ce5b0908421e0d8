package chart

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/srodi/monitor2plot/pkg/report"
)

const (
	tickLength = 4
	labelGap   = 3
)

// rightAxis draws a derived scale along the right edge of the data area.
// Each label sits at the primary-axis value it was computed from.
type rightAxis struct {
	title string
	ticks []report.Tick
	text  text.Style
	line  draw.LineStyle
}

// Plot implements plot.Plotter.
func (a rightAxis) Plot(c draw.Canvas, p *plot.Plot) {
	_, trY := p.Transforms(&c)
	right := c.Max.X

	label := a.text
	label.XAlign = text.XRight
	label.YAlign = text.YCenter
	for _, t := range a.ticks {
		y := trY(t.Value)
		if y < c.Min.Y || y > c.Max.Y {
			continue
		}
		c.StrokeLine2(a.line, right-vg.Points(tickLength), y, right, y)
		c.FillText(label, vg.Point{X: right - vg.Points(tickLength+labelGap), Y: y}, t.Label)
	}

	if a.title == "" {
		return
	}
	title := a.text
	title.Rotation = math.Pi / 2
	title.XAlign = text.XCenter
	title.YAlign = text.YTop
	c.FillText(title, vg.Point{X: right + vg.Points(labelGap), Y: (c.Min.Y + c.Max.Y) / 2}, a.title)
}
