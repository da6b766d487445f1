package paperplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BrokenAxis shows two disjoint y ranges of the same data: a tall lower
// part and a short upper part for outliers. Both parts share the x axis.
type BrokenAxis struct {
	Lower, Upper [2]float64

	// Ratio is the height of the upper part relative to the lower one.
	// Zero means 1/3.
	Ratio float64

	LowerTicks, UpperTicks plot.Ticker
}

func (b *BrokenAxis) check() error {
	if b.Lower[0] >= b.Lower[1] || b.Upper[0] >= b.Upper[1] {
		return fmt.Errorf("empty range in broken axis %v %v", b.Lower, b.Upper)
	}
	if b.Lower[1] > b.Upper[0] {
		return fmt.Errorf("broken axis ranges overlap: %v %v", b.Lower, b.Upper)
	}
	if b.Ratio < 0 || math.IsInf(b.Ratio, 0) || math.IsNaN(b.Ratio) {
		return fmt.Errorf("bad broken axis ratio %g", b.Ratio)
	}
	return nil
}

// drawBroken draws the panel as two plots stacked on top of each other.
// The title goes to the upper plot, the x axis to the lower one and the
// y label is centered to the left of both. Short diagonal marks on the
// left spine indicate the break.
func (p *Panel) drawBroken(c draw.Canvas, theme Theme, b *builtPanel) error {
	br := p.Broken
	if err := br.check(); err != nil {
		return err
	}
	ratio := br.Ratio
	if ratio == 0 {
		ratio = 1.0 / 3
	}

	lower, err := p.newPlot(theme, b, Axis{Fixed: true, Min: br.Lower[0], Max: br.Lower[1], Ticks: br.LowerTicks})
	if err != nil {
		return err
	}
	top := *p
	top.Legend = false
	upper, err := top.newPlot(theme, b, Axis{Fixed: true, Min: br.Upper[0], Max: br.Upper[1], Ticks: br.UpperTicks})
	if err != nil {
		return err
	}
	lower.Title.Text = ""
	upper.X.Label.Text = ""
	upper.X.Tick.Marker = plot.ConstantTicks{}
	upper.X.Tick.Length = 0
	upper.X.LineStyle.Width = 0
	lower.Y.Label.Text = ""
	upper.Y.Label.Text = ""

	if p.Y.Label != "" {
		sty, err := theme.textStyle(theme.FontSize)
		if err != nil {
			return err
		}
		sty.Rotation = math.Pi / 2
		sty.XAlign = draw.XCenter
		sty.YAlign = draw.YTop
		label := GrobText{x: 0, y: 0.5, text: p.Y.Label, style: sty}
		label.Draw(c)
		c = draw.Crop(c, 1.5*sty.Font.Extents().Height, 0, 0, 0)
	}

	h := c.Max.Y - c.Min.Y
	hu := h * vg.Length(ratio/(1+ratio))
	uc := draw.Crop(c, 0, 0, h-hu, 0)
	lc := draw.Crop(c, 0, 0, 0, -hu)

	// Align the data areas so the x axes line up.
	ud, ld := upper.DataCanvas(uc), lower.DataCanvas(lc)
	if dx := ld.Min.X - ud.Min.X; dx > 0 {
		uc = draw.Crop(uc, dx, 0, 0, 0)
	} else if dx < 0 {
		lc = draw.Crop(lc, -dx, 0, 0, 0)
	}
	if dx := ld.Max.X - ud.Max.X; dx < 0 {
		uc = draw.Crop(uc, 0, dx, 0, 0)
	} else if dx > 0 {
		lc = draw.Crop(lc, 0, -dx, 0, 0)
	}

	upper.Draw(uc)
	lower.Draw(lc)
	breakMarks(upper.DataCanvas(uc), lower.DataCanvas(lc), theme)
	return nil
}

// breakMarks draws a short diagonal across the left spine at the bottom
// of the upper and at the top of the lower data area.
func breakMarks(upper, lower draw.Canvas, theme Theme) {
	d := theme.MajorTickLength
	for _, m := range []struct {
		c draw.Canvas
		y float64
	}{{upper, 0}, {lower, 1}} {
		w, h := m.c.Max.X-m.c.Min.X, m.c.Max.Y-m.c.Min.Y
		if w <= 0 || h <= 0 {
			continue
		}
		dx, dy := float64(d/w), float64(d/h)
		GrobLine{
			x0: -dx, y0: m.y - dy,
			x1: dx, y1: m.y + dy,
			size:  theme.AxisWidth,
			color: BuiltinColors["black"],
		}.Draw(m.c)
	}
}
