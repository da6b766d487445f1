package paperplot

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/paperplot/series"
)

// Geom is a geometrical object, a type of visual for the plot.
type Geom interface {
	Name() string // The name of the geom.

	// Plotters turns data into gonum plotters. The thumbnailers
	// represent the geom in a legend. The x coordinate of a sample is
	// its index in the series.
	Plotters(data series.Group, theme Theme) ([]plot.Plotter, []plot.Thumbnailer, error)
}

var errNoData = errors.New("no data")

// xys places the samples of s at x = 0, 1, 2, ...
func xys(s series.Series) plotter.XYs {
	pts := make(plotter.XYs, s.Len())
	for i := range pts {
		pts[i].X = float64(i)
		pts[i].Y = s.At(i)
	}
	return pts
}

// -------------------------------------------------------------------------
// Geom Line

// GeomLine draws every series as a polyline. If the style sets a shape
// the samples are marked with glyphs.
type GeomLine struct {
	Style Style // The individal fixed, aka non-mapped aesthetics
}

var _ Geom = GeomLine{}

func (g GeomLine) Name() string { return "GeomLine" }

func (g GeomLine) Plotters(data series.Group, theme Theme) ([]plot.Plotter, []plot.Thumbnailer, error) {
	lstyle := MergeStyles(g.Style, theme.LineStyle)
	pstyle := MergeStyles(g.Style, theme.PointStyle)
	gs, marked := pstyle.GlyphStyle()
	drawLine := String2LineType(lstyle["linetype"]) != BlankLine

	var (
		plotters []plot.Plotter
		thumbs   []plot.Thumbnailer
	)
	for i, s := range data {
		if s.Empty() {
			continue
		}
		pts := xys(s)
		if drawLine {
			l, err := plotter.NewLine(pts)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", s.Name, err)
			}
			l.LineStyle = lstyle.LineStyle()
			plotters = append(plotters, l)
			if i == 0 {
				thumbs = append(thumbs, l)
			}
		}
		if marked {
			sc, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", s.Name, err)
			}
			sc.GlyphStyle = gs
			plotters = append(plotters, sc)
			if i == 0 {
				thumbs = append(thumbs, sc)
			}
		}
	}
	if len(plotters) == 0 {
		return nil, nil, errNoData
	}
	return plotters, thumbs, nil
}

// -------------------------------------------------------------------------
// Geom Bar

// GeomBar draws one bar per sample. Several series are dodged.
type GeomBar struct {
	Width vg.Length // Zero means 6pt.
	Style Style
}

var _ Geom = GeomBar{}

func (g GeomBar) Name() string { return "GeomBar" }

func (g GeomBar) Plotters(data series.Group, theme Theme) ([]plot.Plotter, []plot.Thumbnailer, error) {
	style := MergeStyles(g.Style, theme.BarStyle)
	width := g.Width
	if width == 0 {
		width = vg.Points(6)
	}

	var (
		plotters []plot.Plotter
		thumbs   []plot.Thumbnailer
	)
	n := len(data)
	for i, s := range data {
		if s.Empty() {
			continue
		}
		b, err := plotter.NewBarChart(plotter.Values(s.Values()), width)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		b.Color = style.Fill()
		b.LineStyle = style.LineStyle()
		b.Offset = vg.Length(float64(i)-float64(n-1)/2) * width
		plotters = append(plotters, b)
		if len(thumbs) == 0 {
			thumbs = append(thumbs, b)
		}
	}
	if len(plotters) == 0 {
		return nil, nil, errNoData
	}
	return plotters, thumbs, nil
}

// -------------------------------------------------------------------------
// Geom Hist

// GeomHist draws a histogram of the samples of each series.
type GeomHist struct {
	Bins  int // Zero means 25.
	Style Style
}

var _ Geom = GeomHist{}

func (g GeomHist) Name() string { return "GeomHist" }

func (g GeomHist) Plotters(data series.Group, theme Theme) ([]plot.Plotter, []plot.Thumbnailer, error) {
	style := MergeStyles(g.Style, Style{"size": "2", "color": "black"}, theme.BarStyle)
	bins := g.Bins
	if bins <= 0 {
		bins = 25
	}

	var (
		plotters []plot.Plotter
		thumbs   []plot.Thumbnailer
	)
	for _, s := range data {
		if s.Empty() {
			continue
		}
		h, err := plotter.NewHist(plotter.Values(s.Values()), bins)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		h.FillColor = style.Fill()
		h.LineStyle = style.LineStyle()
		plotters = append(plotters, h)
		if len(thumbs) == 0 {
			thumbs = append(thumbs, h)
		}
	}
	if len(plotters) == 0 {
		return nil, nil, errNoData
	}
	return plotters, thumbs, nil
}

// -------------------------------------------------------------------------
// Geom Band

// GeomBand draws the output of StatBand: the mean as a line and the
// region between lower and upper as a translucent band.
type GeomBand struct {
	Style Style
}

var _ Geom = GeomBand{}

func (g GeomBand) Name() string { return "GeomBand" }

func (g GeomBand) Plotters(data series.Group, theme Theme) ([]plot.Plotter, []plot.Thumbnailer, error) {
	if len(data) != 3 {
		return nil, nil, fmt.Errorf("GeomBand needs mean, lower and upper, got %d series", len(data))
	}
	mean, lower, upper := data[0], data[1], data[2]
	if mean.Empty() {
		return nil, nil, errNoData
	}
	style := MergeStyles(g.Style, theme.BandStyle)

	n := mean.Len()
	outline := make(plotter.XYs, 0, 2*n)
	outline = append(outline, xys(upper)...)
	lo := xys(lower)
	for i := len(lo) - 1; i >= 0; i-- {
		outline = append(outline, lo[i])
	}
	band, err := plotter.NewPolygon(outline)
	if err != nil {
		return nil, nil, err
	}
	band.Color = style.Fill()
	band.LineStyle.Width = 0

	line, err := plotter.NewLine(xys(mean))
	if err != nil {
		return nil, nil, err
	}
	line.LineStyle = style.LineStyle()

	return []plot.Plotter{band, line}, []plot.Thumbnailer{band, line}, nil
}

// -------------------------------------------------------------------------
// Geom HLine

// GeomHLine draws a horizontal reference line at Y, e.g. the true value
// an estimate should converge to. The layer's data is ignored.
type GeomHLine struct {
	Y     float64
	Style Style
}

var _ Geom = GeomHLine{}

func (g GeomHLine) Name() string { return "GeomHLine" }

func (g GeomHLine) Plotters(_ series.Group, theme Theme) ([]plot.Plotter, []plot.Thumbnailer, error) {
	y := g.Y
	f := plotter.NewFunction(func(float64) float64 { return y })
	f.LineStyle = MergeStyles(g.Style, theme.RefStyle).LineStyle()
	h := hline{Function: f, y: y}
	return []plot.Plotter{h}, []plot.Thumbnailer{h}, nil
}

// hline is a constant function which contributes its value to the
// y range of a plot but nothing to the x range.
type hline struct {
	*plotter.Function
	y float64
}

func (h hline) DataRange() (xmin, xmax, ymin, ymax float64) {
	return math.Inf(1), math.Inf(-1), h.y, h.y
}
