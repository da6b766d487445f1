package paperplot

import (
	"math"

	"gonum.org/v1/plot"
)

// Scale tracks the data domain of one axis. It is trained on the
// plotters of a panel and then turned into axis limits.
type Scale struct {
	DomainMin float64
	DomainMax float64
}

// NewScale returns an untrained scale.
func NewScale() *Scale {
	return &Scale{DomainMin: math.Inf(+1), DomainMax: math.Inf(-1)}
}

// Train widens the domain of s to include values. Infinite and NaN
// values are ignored.
func (s *Scale) Train(values ...float64) {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < s.DomainMin {
			s.DomainMin = v
		}
		if v > s.DomainMax {
			s.DomainMax = v
		}
	}
}

// Trained reports whether s has seen at least one finite value.
func (s *Scale) Trained() bool { return s.DomainMin <= s.DomainMax }

// Limits turns the domain into axis limits in the style of
// set_ylim(0, max*headroom): the axis starts at zero unless the data is
// negative, and the maximum is multiplied by headroom (if > 0).
// A degenerate domain is widened to a unit range.
func (s *Scale) Limits(headroom float64) (min, max float64) {
	if !s.Trained() {
		return 0, 1
	}
	min, max = math.Min(0, s.DomainMin), s.DomainMax
	if headroom > 0 && max > 0 {
		max *= headroom
	}
	if max <= min {
		max = min + 1
	}
	return min, max
}

// trainScales trains the x and y scale on every plotter that reports
// a data range.
func trainScales(x, y *Scale, plotters []plot.Plotter) {
	for _, p := range plotters {
		dr, ok := p.(plot.DataRanger)
		if !ok {
			continue
		}
		xmin, xmax, ymin, ymax := dr.DataRange()
		x.Train(xmin, xmax)
		y.Train(ymin, ymax)
	}
}
