package paperplot

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
)

// MultipleTicker places major ticks at Origin + k*Major and unlabelled
// minor ticks at Origin + k*Minor. A zero Minor draws no minor ticks.
// Format formats the major tick labels; nil prints as many decimals as
// Major needs.
type MultipleTicker struct {
	Major, Minor float64
	Origin       float64
	Format       func(float64) string
}

var _ plot.Ticker = MultipleTicker{}

// maxTicks bounds the number of major or minor ticks. Finer majors fall
// back to the default ticks, finer minors are dropped.
const maxTicks = 1000

// Ticks implements plot.Ticker.
func (t MultipleTicker) Ticks(min, max float64) []plot.Tick {
	if t.Major <= 0 || min > max || !((max-min)/t.Major <= maxTicks) {
		return plot.DefaultTicks{}.Ticks(min, max)
	}
	format := t.Format
	if format == nil {
		format = func(x float64) string { return formatStep(x, t.Major) }
	}

	majors := NewFloatSet(t.Major * 1e-6)
	var ticks []plot.Tick
	for _, x := range multiples(min, max, t.Origin, t.Major) {
		majors.Add(x)
		ticks = append(ticks, plot.Tick{Value: x, Label: format(x)})
	}
	if t.Minor <= 0 || !((max-min)/t.Minor <= maxTicks) {
		return ticks
	}
	for _, x := range multiples(min, max, t.Origin, t.Minor) {
		if majors.Contains(x) {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: x})
	}
	return ticks
}

// multiples returns all origin + k*step within [min,max].
func multiples(min, max, origin, step float64) []float64 {
	first, last := RoundUp(min, origin, step), RoundDown(max, origin, step)
	n := int(math.Round((last - first) / step))
	if n < 0 {
		return nil
	}
	xs := make([]float64, 0, n+1)
	for k := 0; k <= n; k++ {
		xs = append(xs, clean(first+float64(k)*step, step))
	}
	return xs
}

// clean removes accumulated rounding noise from x, a multiple of step.
func clean(x, step float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', decimals(step)+2, 64), 64)
	if err != nil {
		return x
	}
	return v
}

// SciFormat formats x in compact scientific notation with at most one
// decimal in the coefficient: 0.002 becomes "2e-3", 0.00015 "1.5e-4".
// Zero is printed as "0".
func SciFormat(x float64) string {
	if x == 0 {
		return "0"
	}
	s := strconv.FormatFloat(x, 'e', 1, 64)
	i := strings.IndexByte(s, 'e')
	coeff, exp := s[:i], s[i+1:]
	coeff = strings.TrimRight(coeff, "0")
	coeff = strings.TrimSuffix(coeff, ".")
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%se%d", coeff, e)
}

// SciTicks formats the major labels of another ticker with SciFormat.
type SciTicks struct {
	plot.Ticker
}

func (t SciTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	for i := range ticks {
		if !ticks[i].IsMinor() {
			ticks[i].Label = SciFormat(ticks[i].Value)
		}
	}
	return ticks
}

// RelabelTicker labels the major ticks of Ticker with
// int(value*Scale)+Offset. It shows a decimated axis in original units:
// after keeping every 2nd epoch and skipping 4, tick 3 is labelled 10.
type RelabelTicker struct {
	plot.Ticker
	Scale  float64
	Offset int
}

func (t RelabelTicker) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	scale := t.Scale
	if scale == 0 {
		scale = 1
	}
	for i := range ticks {
		if ticks[i].IsMinor() {
			continue
		}
		ticks[i].Label = strconv.Itoa(int(math.Trunc(ticks[i].Value*scale)) + t.Offset)
	}
	return ticks
}

// BlankFirst hides the label of the lowest major tick, which would
// otherwise collide with the other axis at the origin.
type BlankFirst struct {
	plot.Ticker
}

func (t BlankFirst) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	first := -1
	for i, tk := range ticks {
		if tk.IsMinor() {
			continue
		}
		if first == -1 || tk.Value < ticks[first].Value {
			first = i
		}
	}
	if first != -1 {
		// A single space keeps the tick major.
		ticks[first].Label = " "
	}
	return ticks
}
