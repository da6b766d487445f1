// Package series provides the numeric sequences plotted by paperplot:
// reading them from line-oriented log files, aligning several of them
// to a common length, and deriving smoothed or aggregated sequences.
//
// A Series never changes after it was created. Every operation returns
// freshly allocated values so one Series can feed several layers of a
// plot (e.g. the raw curve and its smoothed overlay).
package series

import (
	"fmt"
	"math"
)

// Series is an ordered sequence of float64 samples, one per observation
// (typically per training epoch).
type Series struct {
	// Name identifies the series in warnings and legends. Usually the
	// path of the file it was read from.
	Name string

	values []float64
}

// New constructs a series from a copy of values.
func New(name string, values ...float64) Series {
	v := make([]float64, len(values))
	copy(v, values)
	return Series{Name: name, values: v}
}

// Len returns the number of samples in s.
func (s Series) Len() int { return len(s.values) }

// At returns the i'th sample.
func (s Series) At(i int) float64 { return s.values[i] }

// Values returns a copy of the samples of s.
func (s Series) Values() []float64 {
	v := make([]float64, len(s.values))
	copy(v, s.values)
	return v
}

// Last returns the final sample of s. It panics on an empty series.
func (s Series) Last() float64 { return s.values[len(s.values)-1] }

// Empty reports whether s has no samples, which callers treat as "no data".
func (s Series) Empty() bool { return len(s.values) == 0 }

func (s Series) String() string {
	return fmt.Sprintf("%s%v", s.Name, s.values)
}

// Equal reports whether s and t contain the same samples. Names are
// not compared.
func (s Series) Equal(t Series) bool {
	if len(s.values) != len(t.values) {
		return false
	}
	for i, x := range s.values {
		if x != t.values[i] {
			return false
		}
	}
	return true
}

// Min returns the smallest sample of s or NaN for an empty series.
func (s Series) Min() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	min := s.values[0]
	for _, v := range s.values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest sample of s or NaN for an empty series.
func (s Series) Max() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	max := s.values[0]
	for _, v := range s.values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Mean returns the arithmetic mean of s or NaN for an empty series.
func (s Series) Mean() float64 {
	if len(s.values) == 0 {
		return math.NaN()
	}
	return mean(s.values)
}

// Skip drops the first n samples. Skipping more samples than s has
// yields an empty series.
func (s Series) Skip(n int) Series {
	if n < 0 {
		n = 0
	}
	if n > len(s.values) {
		n = len(s.values)
	}
	return New(s.Name, s.values[n:]...)
}

// Stride keeps every k'th sample starting with the first one.
func (s Series) Stride(k int) (Series, error) {
	if k < 1 {
		return Series{}, fmt.Errorf("%w: stride %d", ErrInvalidWindow, k)
	}
	out := make([]float64, 0, (len(s.values)+k-1)/k)
	for i := 0; i < len(s.values); i += k {
		out = append(out, s.values[i])
	}
	return Series{Name: s.Name, values: out}, nil
}

func mean(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

// -------------------------------------------------------------------------
// Group

// Group is an ordered collection of series which are compared or
// aggregated together, e.g. one per language or one per training run.
type Group []Series

// Len returns the length of the longest member, the common length of
// an equalized group.
func (g Group) Len() int {
	n := 0
	for _, s := range g {
		if s.Len() > n {
			n = s.Len()
		}
	}
	return n
}

// Equalized reports whether all members have the same length.
func (g Group) Equalized() bool { return g.mismatch() < 0 }

// mismatch returns the index of the first member whose length differs
// from the first member's, or -1.
func (g Group) mismatch() int {
	for i, s := range g {
		if s.Len() != g[0].Len() {
			return i
		}
	}
	return -1
}

// Equal reports whether g and h have pairwise equal members.
func (g Group) Equal(h Group) bool {
	if len(g) != len(h) {
		return false
	}
	for i := range g {
		if !g[i].Equal(h[i]) {
			return false
		}
	}
	return true
}

// Map applies f to every member and returns the new group. The first
// error stops the mapping.
func (g Group) Map(f func(Series) (Series, error)) (Group, error) {
	out := make(Group, len(g))
	for i, s := range g {
		t, err := f(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		out[i] = t
	}
	return out, nil
}

// -------------------------------------------------------------------------
// Window

// Window governs sliding-window aggregation: windows of Size samples
// start every Step samples. Both must be at least 1.
type Window struct {
	Size int
	Step int
}

// Check validates w.
func (w Window) Check() error {
	if w.Size < 1 || w.Step < 1 {
		return fmt.Errorf("%w: size=%d step=%d", ErrInvalidWindow, w.Size, w.Step)
	}
	return nil
}

func (w Window) String() string {
	return fmt.Sprintf("window(size=%d, step=%d)", w.Size, w.Step)
}
