package paperplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type legendEntry struct {
	label  string
	thumbs []plot.Thumbnailer
}

// figureLegend collects the layer names of all panels. A name used in
// several panels is listed once with the thumbnails of its first use.
type figureLegend struct {
	labels *StringPool
	thumbs [][]plot.Thumbnailer
}

func newFigureLegend() *figureLegend {
	return &figureLegend{labels: NewStringPool()}
}

func (l *figureLegend) add(label string, thumbs []plot.Thumbnailer) {
	n := l.labels.Len()
	if l.labels.Add(label) == n {
		l.thumbs = append(l.thumbs, thumbs)
	}
}

func (l *figureLegend) len() int { return l.labels.Len() }

// draw lays out all entries in one centered row.
func (l *figureLegend) draw(c draw.Canvas, sty draw.TextStyle) {
	ext := sty.Font.Extents()
	thumbW := 2 * ext.Height
	gap := ext.Height / 3
	sep := ext.Height

	var total vg.Length
	for i := 0; i < l.len(); i++ {
		if i > 0 {
			total += sep
		}
		total += thumbW + gap + sty.Font.Width(l.labels.Get(i))
	}

	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YCenter
	x := c.Center().X - total/2
	y := c.Center().Y
	for i := 0; i < l.len(); i++ {
		label := l.labels.Get(i)
		tc := draw.Canvas{
			Canvas: c.Canvas,
			Rectangle: vg.Rectangle{
				Min: vg.Point{X: x, Y: y - ext.Height/2},
				Max: vg.Point{X: x + thumbW, Y: y + ext.Height/2},
			},
		}
		for _, t := range l.thumbs[i] {
			t.Thumbnail(&tc)
		}
		c.FillText(sty, vg.Point{X: x + thumbW + gap, Y: y}, label)
		x += thumbW + gap + sty.Font.Width(label) + sep
	}
}
