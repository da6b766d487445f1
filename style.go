package paperplot

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Style holds fixed aesthetics of a geom, e.g.
//
//	Style{"color": "#403990", "shape": "square", "size": "4"}
//
// Recognised keys are "color", "fill", "alpha", "size", "linetype",
// "shape" and "glyphsize".
type Style map[string]string

var styleKeys = NewStringSetFrom([]string{
	"color", "fill", "alpha", "size", "linetype", "shape", "glyphsize",
})

// MergeStyles merges the styles; values set in earlier styles win.
func MergeStyles(styles ...Style) Style {
	merged := make(Style)
	for i := len(styles) - 1; i >= 0; i-- {
		for k, v := range styles[i] {
			merged[k] = v
		}
	}
	return merged
}

// Check returns an error listing unknown keys in s.
func (s Style) Check() error {
	var bad []string
	for k := range s {
		if !styleKeys.Contains(k) {
			bad = append(bad, k)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return fmt.Errorf("unknown style keys %v", bad)
}

// Color returns the color for key. Alpha applies to fills only, lines
// and glyphs are opaque.
func (s Style) Color(key string) color.Color {
	return String2Color(s[key])
}

// Fill returns the fill color: "fill" if set, else "color", with alpha.
func (s Style) Fill() color.Color {
	key := "fill"
	if _, ok := s[key]; !ok {
		key = "color"
	}
	c := String2Color(s[key])
	if a, ok := s["alpha"]; ok {
		c = SetAlpha(c, String2Float(a, 0, 1))
	}
	return c
}

// LineStyle builds a gonum line style from color, size and linetype.
func (s Style) LineStyle() draw.LineStyle {
	width := vg.Points(s.float("size", 1, 0, 50))
	return draw.LineStyle{
		Color:  s.Color("color"),
		Width:  width,
		Dashes: String2LineType(s["linetype"]).Dashes(width),
	}
}

// GlyphStyle builds a gonum glyph style from color, shape and glyphsize.
// The second result is false if no shape is set.
func (s Style) GlyphStyle() (draw.GlyphStyle, bool) {
	shape := String2PointShape(s["shape"])
	if shape == BlankPoint {
		return draw.GlyphStyle{}, false
	}
	size := vg.Points(String2PointSize(s["glyphsize"]))
	return draw.GlyphStyle{
		Color:  s.Color("color"),
		Radius: size / 2,
		Shape:  Glyph{Shape: shape, Face: color.White, Edge: size / 6},
	}, true
}

func (s Style) float(key string, def, low, high float64) float64 {
	v, ok := s[key]
	if !ok || v == "" {
		return def
	}
	return String2Float(v, low, high)
}

// String2Float parses s, which may carry a trailing %, and clamps the
// value to [low,high]. Unparsable values yield the midpoint.
func String2Float(s string, low, high float64) float64 {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return (low + high) / 2
	}
	value /= factor

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// SetAlpha sets the alpha of c to a, replacing any alpha of c.
func SetAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(a * 0xff))
	return n
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	DiamondPoint
	DeltaPoint
	NablaPoint
	HexagonPoint
	SolidCirclePoint
	SolidSquarePoint
	SolidDiamondPoint
	SolidDeltaPoint
	SolidNablaPoint
	SolidHexagonPoint
	CrossPoint
	PlusPoint
	StarPoint
)

// String2PointShape understands shape names, one-letter marker codes
// and plain numbers.
func String2PointShape(s string) PointShape {
	n, err := strconv.Atoi(s)
	if err == nil {
		return PointShape(n % (int(StarPoint) + 1))
	}
	switch s {
	case "circle", "o":
		return CirclePoint
	case "square", "s":
		return SquarePoint
	case "diamond", "D":
		return DiamondPoint
	case "delta", "^":
		return DeltaPoint
	case "nabla", "v":
		return NablaPoint
	case "hexagon", "h":
		return HexagonPoint
	case "solid-circle":
		return SolidCirclePoint
	case "solid-square":
		return SolidSquarePoint
	case "solid-diamond":
		return SolidDiamondPoint
	case "solid-delta":
		return SolidDeltaPoint
	case "solid-nabla":
		return SolidNablaPoint
	case "solid-hexagon":
		return SolidHexagonPoint
	case "cross", "x":
		return CrossPoint
	case "plus", "+":
		return PlusPoint
	case "star", "*":
		return StarPoint
	}
	return BlankPoint
}

// String2PointSize parses a glyph size in points, defaulting to 12.
func String2PointSize(s string) float64 {
	n, err := strconv.ParseFloat(s, 64)
	if err == nil && n > 0 {
		return n
	}
	return 12
}

func (s PointShape) solid() bool {
	return s >= SolidCirclePoint && s <= SolidHexagonPoint
}

// Glyph draws a PointShape. Hollow shapes are filled with Face (if
// non-nil) and outlined with a line of width Edge.
type Glyph struct {
	Shape PointShape
	Face  color.Color
	Edge  vg.Length
}

var _ draw.GlyphDrawer = Glyph{}

// corners of the polygonal shapes on the unit circle, as angles in degrees.
var polygons = map[PointShape][]float64{
	SquarePoint:  {45, 135, 225, 315},
	DiamondPoint: {0, 90, 180, 270},
	DeltaPoint:   {90, 210, 330},
	NablaPoint:   {270, 30, 150},
	HexagonPoint: {90, 150, 210, 270, 330, 30},
}

func (g Glyph) path(r vg.Length, pt vg.Point) vg.Path {
	var p vg.Path
	shape := g.Shape
	if shape.solid() {
		shape -= SolidCirclePoint - CirclePoint
	}
	switch shape {
	case CirclePoint:
		p.Move(vg.Point{X: pt.X + r, Y: pt.Y})
		p.Arc(pt, r, 0, 2*math.Pi)
		p.Close()
	case StarPoint:
		for i := 0; i < 10; i++ {
			rr := r
			if i%2 == 1 {
				rr = r / 2.5
			}
			a := math.Pi/2 + float64(i)*math.Pi/5
			q := vg.Point{X: pt.X + rr*vg.Length(math.Cos(a)), Y: pt.Y + rr*vg.Length(math.Sin(a))}
			if i == 0 {
				p.Move(q)
			} else {
				p.Line(q)
			}
		}
		p.Close()
	default:
		for i, deg := range polygons[shape] {
			a := deg * math.Pi / 180
			q := vg.Point{X: pt.X + r*vg.Length(math.Cos(a)), Y: pt.Y + r*vg.Length(math.Sin(a))}
			if i == 0 {
				p.Move(q)
			} else {
				p.Line(q)
			}
		}
		p.Close()
	}
	return p
}

// DrawGlyph implements draw.GlyphDrawer.
func (g Glyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	switch g.Shape {
	case BlankPoint:
		return
	case CrossPoint:
		draw.CrossGlyph{}.DrawGlyph(c, sty, pt)
		return
	case PlusPoint:
		draw.PlusGlyph{}.DrawGlyph(c, sty, pt)
		return
	}

	p := g.path(sty.Radius, pt)
	if g.Shape.solid() {
		c.SetColor(sty.Color)
		c.Fill(p)
		return
	}
	if g.Face != nil {
		c.SetColor(g.Face)
		c.Fill(p)
	}
	edge := g.Edge
	if edge <= 0 {
		edge = vg.Points(1)
	}
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: edge})
	c.Stroke(p)
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

// String2LineType parses a line type name or a short form like "--". The
// empty string is a solid line.
func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(TwodashLine) + 1))
	}
	switch s {
	case "blank", "none":
		return BlankLine
	case "", "solid", "-":
		return SolidLine
	case "dashed", "--":
		return DashedLine
	case "dotted", ":":
		return DottedLine
	case "dotdash", "-.":
		return DotDashLine
	case "longdash":
		return LongdashLine
	case "twodash":
		return TwodashLine
	default:
		return SolidLine
	}
}

// Dashes returns the dash pattern for t scaled to a line of the given width.
// BlankLine draws nothing and is represented by a zero-length dash.
func (t LineType) Dashes(width vg.Length) []vg.Length {
	if width < vg.Points(1) {
		width = vg.Points(1)
	}
	var pattern []float64
	switch t {
	case SolidLine:
		return nil
	case BlankLine:
		return []vg.Length{0, vg.Points(1e6)}
	case DashedLine:
		pattern = []float64{3.7, 1.6}
	case DottedLine:
		pattern = []float64{1, 1.65}
	case DotDashLine:
		pattern = []float64{6.4, 1.6, 1, 1.6}
	case LongdashLine:
		pattern = []float64{8, 2}
	case TwodashLine:
		pattern = []float64{4, 1.6, 1, 1.6, 1, 1.6}
	}
	d := make([]vg.Length, len(pattern))
	for i, p := range pattern {
		d[i] = vg.Length(p) * width
	}
	return d
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
	"k":       {0x00, 0x00, 0x00, 0xff},
}

// String2Color parses "#rrggbb", "#rrggbbaa" or a builtin color name.
// The empty string is black; unknown names yield a translucent pink
// which is easy to spot in a figure.
func String2Color(s string) color.Color {
	if s == "" {
		return color.RGBA{0, 0, 0, 0xff}
	}
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}
