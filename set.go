package paperplot

import (
	"math"
	"sort"
)

// -------------------------------------------------------------------------
// Float Set

// FloatSet is a set of float64 values where values closer than the
// set's resolution are considered equal. Tick positions computed as
// origin + k*step suffer from rounding; FloatSet lets major and minor
// ticks be compared reliably.
type FloatSet struct {
	res  float64
	elem map[int64]struct{}
}

// NewFloatSet returns an empty set with the given resolution.
func NewFloatSet(res float64) FloatSet {
	if res <= 0 {
		res = 1e-12
	}
	return FloatSet{res: res, elem: make(map[int64]struct{})}
}

func (s FloatSet) key(x float64) int64 { return int64(math.Round(x / s.res)) }

// Add adds x to s.
func (s FloatSet) Add(x float64) { s.elem[s.key(x)] = struct{}{} }

// Contains reports membership of x in s.
func (s FloatSet) Contains(x float64) bool {
	_, ok := s.elem[s.key(x)]
	return ok
}

// -------------------------------------------------------------------------
// String Set

// StringSet is a set of string values.
type StringSet map[string]struct{}

func NewStringSet() StringSet {
	return make(StringSet)
}

func NewStringSetFrom(init []string) StringSet {
	s := NewStringSet()
	for _, v := range init {
		s.Add(v)
	}
	return s
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}

func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Strings(elems)
	return elems
}
