package series

import "math"

// Equalize pads every member of g which is shorter than the longest
// one by repeating its last value. The padding encodes "this run ended
// early, the value held constant", the right bias for convergence
// curves like losses or prior estimates.
//
// Members already at full length are returned unchanged. A group whose
// members are all empty is returned as is; a group mixing empty and
// non-empty members cannot be padded.
func Equalize(g Group) (Group, error) {
	if len(g) == 0 {
		return nil, ErrEmptyGroup
	}

	n := g.Len()
	out := make(Group, len(g))
	for i, s := range g {
		if s.Len() == n {
			out[i] = s
			continue
		}
		if s.Empty() {
			return nil, LengthError{Op: "equalize " + s.Name, Need: 1, Got: 0}
		}
		v := make([]float64, n)
		copy(v, s.values)
		last := s.Last()
		for j := s.Len(); j < n; j++ {
			v[j] = last
		}
		out[i] = Series{Name: s.Name, values: v}
	}
	return out, nil
}

// WindowedMean smooths s with a sliding window. The tail of s is padded
// with w.Size-1 copies of its last value and a window of w.Size samples
// is moved over the padded values, starting at 0 and advancing by
// w.Step. The result holds the mean of each window in window order;
// its length is (s.Len()-1)/w.Step + 1.
//
// A step larger than 1 also decimates, which is used to bring curves
// sampled at different rates onto a common axis.
func WindowedMean(s Series, w Window) (Series, error) {
	if err := w.Check(); err != nil {
		return Series{}, err
	}
	n := s.Len()
	if n < w.Size {
		return Series{}, LengthError{Op: w.String(), Need: w.Size, Got: n}
	}

	padded := make([]float64, n+w.Size-1)
	copy(padded, s.values)
	last := s.Last()
	for i := n; i < len(padded); i++ {
		padded[i] = last
	}

	out := make([]float64, 0, (n-1)/w.Step+1)
	for i := 0; i+w.Size <= len(padded); i += w.Step {
		out = append(out, mean(padded[i:i+w.Size]))
	}
	return Series{Name: s.Name, values: out}, nil
}

// Aggregate computes the positionwise arithmetic mean and population
// variance across the members of an equalized group. Both results have
// the common length of the members.
func Aggregate(g Group) (mu, variance Series, err error) {
	if len(g) == 0 {
		return Series{}, Series{}, ErrEmptyGroup
	}
	n := g[0].Len()
	if i := g.mismatch(); i >= 0 {
		return Series{}, Series{}, MismatchError{Index: i, Len: g[i].Len(), Want: n}
	}

	m, v := make([]float64, n), make([]float64, n)
	k := float64(len(g))
	for i := 0; i < n; i++ {
		sum := 0.0
		for _, s := range g {
			sum += s.values[i]
		}
		m[i] = sum / k

		ss := 0.0
		for _, s := range g {
			d := s.values[i] - m[i]
			ss += d * d
		}
		v[i] = ss / k
	}
	return Series{Name: "mean", values: m}, Series{Name: "variance", values: v}, nil
}

// FirstDifference returns the absolute differences |s[i+1]-s[i]|.
func FirstDifference(s Series) (Series, error) {
	n := s.Len()
	if n < 2 {
		return Series{}, LengthError{Op: "first difference", Need: 2, Got: n}
	}
	out := make([]float64, n-1)
	for i := range out {
		out[i] = math.Abs(s.values[i+1] - s.values[i])
	}
	return Series{Name: s.Name, values: out}, nil
}

// ZeroBase truncates every sample toward zero and subtracts the
// truncated first sample, so the result starts at 0. It re-anchors an
// axis holding absolute epoch indices to elapsed epochs.
func ZeroBase(s Series) (Series, error) {
	if s.Empty() {
		return Series{}, LengthError{Op: "zero base", Need: 1, Got: 0}
	}
	first := math.Trunc(s.values[0])
	out := make([]float64, s.Len())
	for i, x := range s.values {
		out[i] = math.Trunc(x) - first
	}
	return Series{Name: s.Name, values: out}, nil
}
