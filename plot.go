package paperplot

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/paperplot/series"
)

// Figure is a grid of panels with an optional legend row shared by all
// panels, saved as one image.
type Figure struct {
	// Rows and Cols describe the panel grid. Zero values put all
	// panels in one row.
	Rows, Cols int

	Width, Height vg.Length

	Theme Theme

	// Panels in row-major order.
	Panels []*Panel

	// Legend draws every distinct layer name once, in a single row
	// above the panels.
	Legend bool

	// Log receives warnings; nil uses slog.Default().
	Log *slog.Logger
}

// Layer represents one layer of data
type Layer struct {
	// Name labels the layer in legends. Unnamed layers are not listed.
	Name string

	Data series.Group

	// Stat is the statistical transform used in this layer. Nil is
	// the identity.
	Stat Stat

	// Geom draws the transformed data.
	Geom Geom
}

// Panel is one plot of a figure.
type Panel struct {
	Title string

	X, Y Axis

	Layers []*Layer

	// Broken splits the y axis into two ranges drawn on top of each
	// other. Y's range is ignored if Broken is set.
	Broken *BrokenAxis

	Grid   bool // draw grid lines at the major ticks
	Legend bool // draw a legend inside the panel
}

// Axis configures an axis of a panel.
type Axis struct {
	Label string

	// Fixed selects [Min,Max] as range. Otherwise the range is trained
	// from the data, see Scale.Limits.
	Fixed    bool
	Min, Max float64

	// Headroom for a trained range. Zero uses Theme.YHeadroom for y
	// axes and no headroom for x axes.
	Headroom float64

	// Ticks places the ticks; nil uses gonum's default ticks.
	Ticks plot.Ticker
}

// Warnf logs a warning about the figure.
func (f *Figure) Warnf(format string, args ...interface{}) {
	f.log().Warn(fmt.Sprintf(format, args...))
}

func (f *Figure) log() *slog.Logger {
	if f.Log == nil {
		return slog.Default()
	}
	return f.Log
}

func (f *Figure) grid() (rows, cols int, err error) {
	rows, cols = f.Rows, f.Cols
	if rows == 0 && cols == 0 {
		rows, cols = 1, len(f.Panels)
	} else if rows == 0 {
		rows = (len(f.Panels) + cols - 1) / cols
	} else if cols == 0 {
		cols = (len(f.Panels) + rows - 1) / rows
	}
	if rows*cols < len(f.Panels) {
		return 0, 0, fmt.Errorf("%d panels do not fit a %dx%d grid", len(f.Panels), rows, cols)
	}
	return rows, cols, nil
}

// Draw renders the figure onto dc.
func (f *Figure) Draw(dc draw.Canvas) error {
	if len(f.Panels) == 0 {
		return errors.New("figure has no panels")
	}
	rows, cols, err := f.grid()
	if err != nil {
		return err
	}

	built := make([]*builtPanel, len(f.Panels))
	legend := newFigureLegend()
	for i, p := range f.Panels {
		b, err := p.build(f.Theme, f.Warnf)
		if err != nil {
			return fmt.Errorf("panel %d %q: %w", i, p.Title, err)
		}
		built[i] = b
		for _, e := range b.entries {
			legend.add(e.label, e.thumbs)
		}
	}

	GrobRect{xmin: 0, ymin: 0, xmax: 1, ymax: 1, fill: color.White}.Draw(dc)
	if f.Legend && legend.len() > 0 {
		sty, err := f.Theme.textStyle(f.Theme.FontSize)
		if err != nil {
			return err
		}
		h := 2 * sty.Font.Extents().Height
		height := dc.Max.Y - dc.Min.Y
		legend.draw(draw.Crop(dc, 0, 0, height-h, 0), sty)
		dc = draw.Crop(dc, 0, 0, 0, -h)
	}

	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      f.Theme.FontSize,
		PadY:      f.Theme.FontSize,
		PadTop:    f.Theme.FontSize / 2,
		PadBottom: f.Theme.FontSize / 2,
		PadLeft:   f.Theme.FontSize / 2,
		PadRight:  f.Theme.FontSize,
	}
	for i, b := range built {
		c := tiles.At(dc, i%cols, i/cols)
		if err := f.Panels[i].draw(c, f.Theme, b); err != nil {
			return fmt.Errorf("panel %d %q: %w", i, f.Panels[i].Title, err)
		}
	}
	return nil
}

// Save renders the figure into path. The format follows the extension:
// eps, jpg, jpeg, pdf, png, svg, tif or tiff.
func (f *Figure) Save(path string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	c, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return err
	}
	if err := f.Draw(draw.New(c)); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err := c.WriteTo(file); err != nil {
		return err
	}
	f.log().Info("saved figure", "path", path, "panels", len(f.Panels))
	return nil
}

// -------------------------------------------------------------------------
// Panel construction

type builtPanel struct {
	plotters []plot.Plotter
	entries  []legendEntry
	x, y     *Scale
}

// build applies the stats and geoms of all layers. Layers without data
// are skipped with a warning.
func (p *Panel) build(theme Theme, warnf func(string, ...interface{})) (*builtPanel, error) {
	b := &builtPanel{x: NewScale(), y: NewScale()}
	for i, layer := range p.Layers {
		if layer.Geom == nil {
			warnf("No Geom specified in layer %d %q.", i, layer.Name)
			continue
		}
		data := layer.Data
		if layer.Stat != nil {
			var err error
			data, err = layer.Stat.Apply(data)
			if err != nil {
				return nil, fmt.Errorf("layer %q: %w", layer.Name, err)
			}
		}
		plotters, thumbs, err := layer.Geom.Plotters(data, theme)
		if errors.Is(err, errNoData) {
			warnf("Layer %q in panel %q has no data.", layer.Name, p.Title)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("layer %q: %s: %w", layer.Name, layer.Geom.Name(), err)
		}
		b.plotters = append(b.plotters, plotters...)
		if layer.Name != "" {
			b.entries = append(b.entries, legendEntry{label: layer.Name, thumbs: thumbs})
		}
	}
	trainScales(b.x, b.y, b.plotters)
	return b, nil
}

// newPlot sets up a gonum plot with the theme, labels, limits and ticks
// of the panel. yAxis replaces p.Y, which allows the two halves of a
// broken axis to share everything but the y range.
func (p *Panel) newPlot(theme Theme, b *builtPanel, yAxis Axis) (*plot.Plot, error) {
	plt, err := plot.New()
	if err != nil {
		return nil, err
	}
	theme.apply(plt)
	plt.Title.Text = p.Title
	plt.X.Label.Text = p.X.Label
	plt.Y.Label.Text = yAxis.Label

	if p.Grid {
		grid := plotter.NewGrid()
		grid.Vertical.Width = theme.GridWidth
		grid.Horizontal.Width = theme.GridWidth
		plt.Add(grid)
	}
	plt.Add(b.plotters...)
	if p.Legend {
		for _, e := range b.entries {
			plt.Legend.Add(e.label, e.thumbs...)
		}
	}

	plt.X.Min, plt.X.Max = p.X.limits(b.x, 0)
	plt.Y.Min, plt.Y.Max = yAxis.limits(b.y, theme.YHeadroom)
	if p.X.Ticks != nil {
		plt.X.Tick.Marker = p.X.Ticks
	}
	if yAxis.Ticks != nil {
		plt.Y.Tick.Marker = yAxis.Ticks
	}
	return plt, nil
}

func (a Axis) limits(s *Scale, defaultHeadroom float64) (min, max float64) {
	if a.Fixed {
		return a.Min, a.Max
	}
	headroom := a.Headroom
	if headroom == 0 {
		headroom = defaultHeadroom
	}
	return s.Limits(headroom)
}

func (p *Panel) draw(c draw.Canvas, theme Theme, b *builtPanel) error {
	if p.Broken != nil {
		return p.drawBroken(c, theme, b)
	}
	plt, err := p.newPlot(theme, b, p.Y)
	if err != nil {
		return err
	}
	plt.Draw(c)
	return nil
}
