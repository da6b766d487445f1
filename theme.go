package paperplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Theme is the explicit rendering configuration handed to every draw
// call. Nothing is kept in package state: two figures with different
// themes can be rendered side by side.
type Theme struct {
	FontSize  vg.Length // axis labels, tick labels and legend
	TitleSize vg.Length

	AxisWidth       vg.Length // axis lines and tick marks
	MajorTickLength vg.Length // minor ticks are drawn at half the length
	GridWidth       vg.Length

	// YHeadroom multiplies the largest y value when the y range is
	// trained from the data.
	YHeadroom float64

	// Default styles of the geoms; individual geoms override them.
	PointStyle, LineStyle, BarStyle, BandStyle, RefStyle Style
}

var DefaultTheme = Theme{
	FontSize:        vg.Points(20),
	TitleSize:       vg.Points(18),
	AxisWidth:       vg.Points(2),
	MajorTickLength: vg.Points(6),
	GridWidth:       vg.Points(1.5),
	YHeadroom:       1.1,
	PointStyle: Style{
		"glyphsize": "12",
		"color":     "#222222",
	},
	LineStyle: Style{
		"size":     "4",
		"linetype": "solid",
		"color":    "#222222",
	},
	BarStyle: Style{
		"size":  "0",
		"color": "black",
		"fill":  "gray20",
	},
	BandStyle: Style{
		"size":  "2",
		"color": "red",
		"alpha": "0.2",
	},
	RefStyle: Style{
		"size":     "4",
		"linetype": "dashed",
		"color":    "blue",
	},
}

// apply sets fonts, axis lines and tick marks of p.
func (t Theme) apply(p *plot.Plot) {
	p.Title.Font.Size = t.TitleSize
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.Font.Size = t.FontSize
		ax.Tick.Label.Font.Size = t.FontSize * 0.8
		ax.LineStyle.Width = t.AxisWidth
		ax.Tick.LineStyle.Width = t.AxisWidth
		ax.Tick.Length = t.MajorTickLength
	}
	p.Legend.TextStyle.Font.Size = t.FontSize * 0.8
}

// textStyle returns black text in the default font at the given size.
func (t Theme) textStyle(size vg.Length) (draw.TextStyle, error) {
	font, err := vg.MakeFont(plot.DefaultFont, size)
	if err != nil {
		return draw.TextStyle{}, err
	}
	return draw.TextStyle{Color: color.Black, Font: font}, nil
}
