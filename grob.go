package paperplot

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Grob is a graphical object drawn in normalized coordinates: (0,0) is
// the lower left and (1,1) the upper right corner of the canvas.
type Grob interface {
	Draw(c draw.Canvas)
}

// -------------------------------------------------------------------------
// Grob Line

type GrobLine struct {
	x0, y0, x1, y1 float64
	size           vg.Length
	linetype       LineType
	color          color.Color
}

func (line GrobLine) Draw(c draw.Canvas) {
	sty := draw.LineStyle{
		Color:  line.color,
		Width:  line.size,
		Dashes: line.linetype.Dashes(line.size),
	}
	c.StrokeLine2(sty, c.X(line.x0), c.Y(line.y0), c.X(line.x1), c.Y(line.y1))
}

// -------------------------------------------------------------------------
// Grob Text

type GrobText struct {
	x, y  float64
	text  string
	style draw.TextStyle
}

func (text GrobText) Draw(c draw.Canvas) {
	c.FillText(text.style, vg.Point{X: c.X(text.x), Y: c.Y(text.y)}, text.text)
}

// -------------------------------------------------------------------------
// Grob Rect

type GrobRect struct {
	xmin, ymin float64
	xmax, ymax float64
	fill       color.Color
}

func (rect GrobRect) Draw(c draw.Canvas) {
	pts := []vg.Point{
		{X: c.X(rect.xmin), Y: c.Y(rect.ymin)},
		{X: c.X(rect.xmax), Y: c.Y(rect.ymin)},
		{X: c.X(rect.xmax), Y: c.Y(rect.ymax)},
		{X: c.X(rect.xmin), Y: c.Y(rect.ymax)},
	}
	c.FillPolygon(rect.fill, pts)
}
