package paperplot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/vdobler/paperplot/series"
)

// Spec is the YAML description of a figure.
//
//	output: loss.pdf
//	width: 16
//	height: 5
//	legend: true
//	panels:
//	  - kind: line
//	    title: Training loss
//	    window: {size: 10, step: 1}
//	    series:
//	      - {label: SGD, path: runs/sgd.txt, style: {color: red, shape: square}}
//	    refs:
//	      - {label: true prior, y: 0.25}
type Spec struct {
	Output string  `yaml:"output"`
	Width  float64 `yaml:"width,omitempty"`  // inches, default 16
	Height float64 `yaml:"height,omitempty"` // inches, default 5
	Rows   int     `yaml:"rows,omitempty"`
	Cols   int     `yaml:"cols,omitempty"`
	Legend bool    `yaml:"legend,omitempty"`

	Theme  ThemeSpec   `yaml:"theme,omitempty"`
	Panels []PanelSpec `yaml:"panels"`

	// dir resolves relative paths; it is the directory of the file the
	// spec was loaded from.
	dir string
}

// ThemeSpec overrides parts of DefaultTheme. Sizes are in points.
type ThemeSpec struct {
	FontSize  float64 `yaml:"font_size,omitempty"`
	TitleSize float64 `yaml:"title_size,omitempty"`
	Headroom  float64 `yaml:"headroom,omitempty"`
}

// PanelSpec describes one panel. The stats are applied in the order
// equalize, skip/stride, window, delta, zero_base.
type PanelSpec struct {
	Kind   string `yaml:"kind"`
	Title  string `yaml:"title,omitempty"`
	XLabel string `yaml:"xlabel,omitempty"`
	YLabel string `yaml:"ylabel,omitempty"`

	Equalize bool        `yaml:"equalize,omitempty"`
	Skip     int         `yaml:"skip,omitempty"`
	Stride   int         `yaml:"stride,omitempty"`
	Window   *WindowSpec `yaml:"window,omitempty"`
	Delta    bool        `yaml:"delta,omitempty"`
	ZeroBase bool        `yaml:"zero_base,omitempty"`
	Bins     int         `yaml:"bins,omitempty"`

	Grid   bool `yaml:"grid,omitempty"`
	Legend bool `yaml:"legend,omitempty"`

	Series []SeriesSpec `yaml:"series"`
	Refs   []RefSpec    `yaml:"refs,omitempty"`

	X      AxisSpec    `yaml:"x,omitempty"`
	Y      AxisSpec    `yaml:"y,omitempty"`
	Broken *BrokenSpec `yaml:"broken,omitempty"`
}

// SeriesSpec is one layer. Band panels aggregate all Paths into one
// band; the other kinds draw every path.
type SeriesSpec struct {
	Label string   `yaml:"label,omitempty"`
	Path  string   `yaml:"path,omitempty"`
	Paths []string `yaml:"paths,omitempty"`
	Style Style    `yaml:"style,omitempty"`
}

// RefSpec is a horizontal reference line.
type RefSpec struct {
	Label string  `yaml:"label,omitempty"`
	Y     float64 `yaml:"y"`
	Style Style   `yaml:"style,omitempty"`
}

type WindowSpec struct {
	Size int `yaml:"size"`
	Step int `yaml:"step"`
}

// AxisSpec sets limits and ticks of an axis. Min and Max must be given
// together.
type AxisSpec struct {
	Min      *float64 `yaml:"min,omitempty"`
	Max      *float64 `yaml:"max,omitempty"`
	Headroom float64  `yaml:"headroom,omitempty"`

	Major  float64 `yaml:"major,omitempty"`
	Minor  float64 `yaml:"minor,omitempty"`
	Origin float64 `yaml:"origin,omitempty"`

	Sci        bool    `yaml:"sci,omitempty"`
	Scale      float64 `yaml:"scale,omitempty"`
	Offset     int     `yaml:"offset,omitempty"`
	BlankFirst bool    `yaml:"blank_first,omitempty"`
}

type BrokenSpec struct {
	Lower []float64 `yaml:"lower"`
	Upper []float64 `yaml:"upper"`
	Ratio float64   `yaml:"ratio,omitempty"`
	// Ticks of the two parts; limits in these are ignored.
	LowerAxis AxisSpec `yaml:"lower_axis,omitempty"`
	UpperAxis AxisSpec `yaml:"upper_axis,omitempty"`
}

var panelKinds = NewStringSetFrom([]string{"line", "band", "bar", "hist", "broken"})

// ParseSpec parses and validates a YAML figure description. Relative
// paths in it are resolved against dir.
func ParseSpec(data []byte, dir string) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("figure: invalid YAML: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.dir = dir
	return &s, nil
}

// LoadSpec reads a figure description from path.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("figure: cannot read %s: %w", path, err)
	}
	s, err := ParseSpec(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks the description for structural correctness.
func (s *Spec) Validate() error {
	if s.Output == "" {
		return errors.New("figure: output is required")
	}
	if len(s.Panels) == 0 {
		return errors.New("figure: at least one panel is required")
	}
	if s.Width < 0 || s.Height < 0 || s.Rows < 0 || s.Cols < 0 {
		return errors.New("figure: negative size or grid")
	}
	for i, p := range s.Panels {
		if err := p.validate(); err != nil {
			return fmt.Errorf("figure: panel %d: %w", i, err)
		}
	}
	return nil
}

func (p PanelSpec) validate() error {
	if !panelKinds.Contains(p.Kind) {
		return fmt.Errorf("unknown kind %q, want one of %v", p.Kind, panelKinds.Elements())
	}
	if p.Kind == "broken" && p.Broken == nil {
		return errors.New("kind broken needs a broken section")
	}
	if p.Broken != nil && (len(p.Broken.Lower) != 2 || len(p.Broken.Upper) != 2) {
		return errors.New("broken lower and upper need two values each")
	}
	if p.Skip < 0 || p.Stride < 0 || p.Bins < 0 {
		return errors.New("negative skip, stride or bins")
	}
	if p.Window != nil {
		if err := (series.Window{Size: p.Window.Size, Step: p.Window.Step}).Check(); err != nil {
			return err
		}
	}
	for _, a := range []AxisSpec{p.X, p.Y} {
		if (a.Min == nil) != (a.Max == nil) {
			return errors.New("axis min and max must be given together")
		}
	}
	for j, ss := range p.Series {
		if ss.Path == "" && len(ss.Paths) == 0 {
			return fmt.Errorf("series %d %q has no path", j, ss.Label)
		}
		if err := ss.Style.Check(); err != nil {
			return fmt.Errorf("series %d %q: %w", j, ss.Label, err)
		}
	}
	for _, r := range p.Refs {
		if err := r.Style.Check(); err != nil {
			return fmt.Errorf("ref %q: %w", r.Label, err)
		}
	}
	return nil
}

func (s *Spec) path(p string) string {
	if filepath.IsAbs(p) || s.dir == "" {
		return p
	}
	return filepath.Join(s.dir, p)
}

// OutputPath returns the resolved output path.
func (s *Spec) OutputPath() string { return s.path(s.Output) }

// Build reads all series of s with loader and assembles the figure.
// Missing sources are logged by the loader and left out; a layer whose
// sources are all missing is left out with a warning.
func Build(s *Spec, loader *series.Loader) (*Figure, error) {
	if loader == nil {
		loader = series.DefaultLoader
	}
	theme := DefaultTheme
	if s.Theme.FontSize > 0 {
		theme.FontSize = vg.Points(s.Theme.FontSize)
	}
	if s.Theme.TitleSize > 0 {
		theme.TitleSize = vg.Points(s.Theme.TitleSize)
	}
	if s.Theme.Headroom > 0 {
		theme.YHeadroom = s.Theme.Headroom
	}

	f := &Figure{
		Rows:   s.Rows,
		Cols:   s.Cols,
		Width:  16 * vg.Inch,
		Height: 5 * vg.Inch,
		Theme:  theme,
		Legend: s.Legend,
		Log:    loader.Log,
	}
	if s.Width > 0 {
		f.Width = vg.Length(s.Width) * vg.Inch
	}
	if s.Height > 0 {
		f.Height = vg.Length(s.Height) * vg.Inch
	}

	for i, ps := range s.Panels {
		p, err := s.buildPanel(ps, loader, f.Warnf)
		if err != nil {
			return nil, fmt.Errorf("panel %d %q: %w", i, ps.Title, err)
		}
		f.Panels = append(f.Panels, p)
	}
	return f, nil
}

func (s *Spec) buildPanel(ps PanelSpec, loader *series.Loader, warnf func(string, ...interface{})) (*Panel, error) {
	p := &Panel{
		Title:  ps.Title,
		X:      ps.X.axis(ps.XLabel),
		Y:      ps.Y.axis(ps.YLabel),
		Grid:   ps.Grid,
		Legend: ps.Legend,
	}
	if b := ps.Broken; b != nil {
		p.Broken = &BrokenAxis{
			Lower:      [2]float64{b.Lower[0], b.Lower[1]},
			Upper:      [2]float64{b.Upper[0], b.Upper[1]},
			Ratio:      b.Ratio,
			LowerTicks: b.LowerAxis.ticker(),
			UpperTicks: b.UpperAxis.ticker(),
		}
	}

	stat := ps.stats()
	for _, ss := range ps.Series {
		var paths []string
		if ss.Path != "" {
			paths = append(paths, s.path(ss.Path))
		}
		for _, path := range ss.Paths {
			paths = append(paths, s.path(path))
		}
		data, err := readGroup(loader, paths)
		if err != nil {
			return nil, err
		}
		if len(data) == 0 {
			warnf("No data for %q, dropped from panel %q.", ss.Label, ps.Title)
			continue
		}

		layer := &Layer{Name: ss.Label, Data: data, Stat: stat}
		switch ps.Kind {
		case "line", "broken":
			layer.Geom = GeomLine{Style: ss.Style}
		case "band":
			layer.Stat = append(append(StatChain{}, stat...), StatBand{Equalize: true})
			layer.Geom = GeomBand{Style: ss.Style}
		case "bar":
			layer.Geom = GeomBar{Style: ss.Style}
		case "hist":
			layer.Geom = GeomHist{Bins: ps.Bins, Style: ss.Style}
		}
		p.Layers = append(p.Layers, layer)
	}
	for _, r := range ps.Refs {
		p.Layers = append(p.Layers, &Layer{
			Name: r.Label,
			Geom: GeomHLine{Y: r.Y, Style: r.Style},
		})
	}
	return p, nil
}

// readGroup reads paths and drops missing or empty members.
func readGroup(loader *series.Loader, paths []string) (series.Group, error) {
	g, err := loader.ReadGroup(paths...)
	if err != nil && !errors.Is(err, series.ErrSourceNotFound) {
		return nil, err
	}
	data := g[:0]
	for _, x := range g {
		if !x.Empty() {
			data = append(data, x)
		}
	}
	return data, nil
}

func (ps PanelSpec) stats() StatChain {
	var chain StatChain
	if ps.Equalize {
		chain = append(chain, StatEqualize{})
	}
	if ps.Skip > 0 || ps.Stride > 1 {
		chain = append(chain, StatSkipStride{Skip: ps.Skip, Stride: ps.Stride})
	}
	if ps.Window != nil {
		chain = append(chain, StatWindow{series.Window{Size: ps.Window.Size, Step: ps.Window.Step}})
	}
	if ps.Delta {
		chain = append(chain, StatDelta{})
	}
	if ps.ZeroBase {
		chain = append(chain, StatZeroBase{})
	}
	return chain
}

func (a AxisSpec) axis(label string) Axis {
	ax := Axis{Label: label, Headroom: a.Headroom, Ticks: a.ticker()}
	if a.Min != nil && a.Max != nil {
		ax.Fixed, ax.Min, ax.Max = true, *a.Min, *a.Max
	}
	return ax
}

// ticker composes the tick settings; nil means gonum's defaults.
func (a AxisSpec) ticker() plot.Ticker {
	var t plot.Ticker
	if a.Major > 0 {
		t = MultipleTicker{Major: a.Major, Minor: a.Minor, Origin: a.Origin}
	}
	if t == nil && (a.Sci || a.Scale != 0 || a.Offset != 0 || a.BlankFirst) {
		t = plot.DefaultTicks{}
	}
	if a.Sci {
		t = SciTicks{t}
	}
	if a.Scale != 0 || a.Offset != 0 {
		t = RelabelTicker{Ticker: t, Scale: a.Scale, Offset: a.Offset}
	}
	if a.BlankFirst {
		t = BlankFirst{t}
	}
	return t
}
