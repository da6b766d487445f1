package paperplot

import (
	"fmt"
	"math"
	"strings"

	"github.com/vdobler/paperplot/series"
)

// Stat is the interface of statistical transform.
//
// A statistical transform takes the series of a layer and produces the
// series the layer's geom draws. Stats never modify their input.
type Stat interface {
	// Name returns the name of this statistic.
	Name() string

	// Apply this statistic to data.
	Apply(data series.Group) (series.Group, error)
}

// -------------------------------------------------------------------------
// StatIdentity

// StatIdentity passes the data through. A nil Stat in a Layer behaves
// the same.
type StatIdentity struct{}

var _ Stat = StatIdentity{}

func (StatIdentity) Name() string { return "StatIdentity" }

func (StatIdentity) Apply(data series.Group) (series.Group, error) { return data, nil }

// -------------------------------------------------------------------------
// StatChain

// StatChain applies its stats in order.
type StatChain []Stat

var _ Stat = StatChain{}

func (c StatChain) Name() string {
	names := make([]string, len(c))
	for i, s := range c {
		names[i] = s.Name()
	}
	return strings.Join(names, "|")
}

func (c StatChain) Apply(data series.Group) (series.Group, error) {
	var err error
	for _, s := range c {
		data, err = s.Apply(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}
	}
	return data, nil
}

// -------------------------------------------------------------------------
// StatEqualize

// StatEqualize pads all series to the length of the longest one.
type StatEqualize struct{}

var _ Stat = StatEqualize{}

func (StatEqualize) Name() string { return "StatEqualize" }

func (StatEqualize) Apply(data series.Group) (series.Group, error) {
	return series.Equalize(data)
}

// -------------------------------------------------------------------------
// StatSkipStride

// StatSkipStride drops the first Skip samples of every series and then
// keeps every Stride'th sample. A zero Stride keeps all samples.
type StatSkipStride struct {
	Skip, Stride int
}

var _ Stat = StatSkipStride{}

func (StatSkipStride) Name() string { return "StatSkipStride" }

func (s StatSkipStride) Apply(data series.Group) (series.Group, error) {
	stride := s.Stride
	if stride == 0 {
		stride = 1
	}
	return data.Map(func(x series.Series) (series.Series, error) {
		return x.Skip(s.Skip).Stride(stride)
	})
}

// -------------------------------------------------------------------------
// StatWindow

// StatWindow smooths every series with a sliding-window mean.
type StatWindow struct {
	series.Window
}

var _ Stat = StatWindow{}

func (StatWindow) Name() string { return "StatWindow" }

func (s StatWindow) Apply(data series.Group) (series.Group, error) {
	return data.Map(func(x series.Series) (series.Series, error) {
		return series.WindowedMean(x, s.Window)
	})
}

// -------------------------------------------------------------------------
// StatDelta

// StatDelta replaces every series by its absolute first difference,
// e.g. the change of the loss from one epoch to the next.
type StatDelta struct{}

var _ Stat = StatDelta{}

func (StatDelta) Name() string { return "StatDelta" }

func (StatDelta) Apply(data series.Group) (series.Group, error) {
	return data.Map(series.FirstDifference)
}

// -------------------------------------------------------------------------
// StatZeroBase

// StatZeroBase re-anchors every series so it starts at 0.
type StatZeroBase struct{}

var _ Stat = StatZeroBase{}

func (StatZeroBase) Name() string { return "StatZeroBase" }

func (StatZeroBase) Apply(data series.Group) (series.Group, error) {
	return data.Map(series.ZeroBase)
}

// -------------------------------------------------------------------------
// StatBand

// StatBand aggregates the group into three series: the positionwise
// mean, mean - sd and mean + sd, where sd is the square root of the
// population variance. GeomBand draws the result.
type StatBand struct {
	// Equalize pads the input first; otherwise series of different
	// length are an error.
	Equalize bool
}

var _ Stat = StatBand{}

func (StatBand) Name() string { return "StatBand" }

func (s StatBand) Apply(data series.Group) (series.Group, error) {
	if s.Equalize && !data.Equalized() {
		var err error
		data, err = series.Equalize(data)
		if err != nil {
			return nil, err
		}
	}
	mu, variance, err := series.Aggregate(data)
	if err != nil {
		return nil, err
	}

	m := mu.Values()
	lower, upper := make([]float64, len(m)), make([]float64, len(m))
	for i, v := range variance.Values() {
		sd := math.Sqrt(v)
		lower[i], upper[i] = m[i]-sd, m[i]+sd
	}
	return series.Group{
		mu,
		series.New("lower", lower...),
		series.New("upper", upper...),
	}, nil
}
