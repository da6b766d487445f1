package series

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualize(t *testing.T) {
	g := Group{New("a", 1, 2, 3), New("b", 1, 2)}
	eq, err := Equalize(g)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, eq[0].Values())
	assert.Equal(t, []float64{1, 2, 2}, eq[1].Values())
	assert.Equal(t, "b", eq[1].Name)

	// Input untouched.
	assert.Equal(t, 2, g[1].Len())

	assert.False(t, g.Equalized())
	assert.True(t, eq.Equalized())

	again, err := Equalize(eq)
	require.NoError(t, err)
	assert.True(t, again.Equal(eq), "equalize must be idempotent")
}

func TestEqualizeEdgeCases(t *testing.T) {
	_, err := Equalize(Group{})
	assert.ErrorIs(t, err, ErrEmptyGroup)

	allEmpty := Group{New("a"), New("b")}
	eq, err := Equalize(allEmpty)
	require.NoError(t, err)
	assert.True(t, eq.Equal(allEmpty))

	_, err = Equalize(Group{New("a", 1, 2), New("b")})
	assert.ErrorIs(t, err, ErrInsufficientLength)
}

func TestWindowedMean(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		w    Window
		want []float64
	}{
		{"step 1", []float64{1, 2, 3, 4, 5}, Window{3, 1}, []float64{2, 3, 4, 14.0 / 3, 5}},
		{"step 2", []float64{1, 2, 3, 4, 5}, Window{3, 2}, []float64{2, 4, 5}},
		{"size 1", []float64{4, 8, 6}, Window{1, 1}, []float64{4, 8, 6}},
		{"size 1 step 3", []float64{1, 2, 3, 4, 5, 6, 7}, Window{1, 3}, []float64{1, 4, 7}},
		{"exact length", []float64{2, 4}, Window{2, 1}, []float64{3, 4}},
		{"single", []float64{7}, Window{1, 5}, []float64{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WindowedMean(New("s", tt.in...), tt.w)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, got.Values(), 1e-12)
		})
	}
}

func TestWindowedMeanErrors(t *testing.T) {
	_, err := WindowedMean(New("s", 1, 2), Window{3, 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientLength)
	var le LengthError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 3, le.Need)
	assert.Equal(t, 2, le.Got)

	_, err = WindowedMean(New("s", 1, 2, 3), Window{0, 1})
	assert.ErrorIs(t, err, ErrInvalidWindow)
	_, err = WindowedMean(New("s", 1, 2, 3), Window{2, 0})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = WindowedMean(New("s"), Window{1, 1})
	assert.ErrorIs(t, err, ErrInsufficientLength)
}

func TestWindowedMeanProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(17))
	for i := 0; i < 200; i++ {
		n := 1 + rnd.Intn(60)
		values := make([]float64, n)
		for j := range values {
			values[j] = rnd.NormFloat64()
		}
		s := New("r", values...)
		w := Window{Size: 1 + rnd.Intn(n), Step: 1 + rnd.Intn(7)}

		got, err := WindowedMean(s, w)
		require.NoError(t, err)
		require.Equal(t, (n-1)/w.Step+1, got.Len(), "n=%d %s", n, w)
		for _, x := range got.Values() {
			assert.GreaterOrEqual(t, x, s.Min()-1e-12)
			assert.LessOrEqual(t, x, s.Max()+1e-12)
		}
	}
}

func TestAggregate(t *testing.T) {
	g := Group{New("a", 1, 2, 3), New("b", 3, 2, 1)}
	mu, v, err := Aggregate(g)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 2, 2}, mu.Values(), 1e-12)
	assert.InDeltaSlice(t, []float64{1, 0, 1}, v.Values(), 1e-12)
}

func TestAggregateIdentical(t *testing.T) {
	s := New("s", 0.5, 0.25, 0.125, 0.0625)
	mu, v, err := Aggregate(Group{s, s, s, s})
	require.NoError(t, err)
	assert.True(t, mu.Equal(s))
	assert.Equal(t, []float64{0, 0, 0, 0}, v.Values())
}

func TestAggregateVarianceNonNegative(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	g := make(Group, 5)
	for i := range g {
		values := make([]float64, 40)
		for j := range values {
			values[j] = rnd.Float64() * 10
		}
		g[i] = New("r", values...)
	}
	mu, v, err := Aggregate(g)
	require.NoError(t, err)
	require.Equal(t, 40, mu.Len())
	require.Equal(t, 40, v.Len())
	for _, x := range v.Values() {
		assert.GreaterOrEqual(t, x, 0.0)
	}
}

func TestAggregateErrors(t *testing.T) {
	_, _, err := Aggregate(Group{New("a", 1, 2), New("b", 1, 2, 3)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLengthMismatch)
	var me MismatchError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, 1, me.Index)

	_, _, err = Aggregate(Group{New("a", 1, 2), New("b", 1, 2), New("c", 1)})
	require.True(t, errors.As(err, &me))
	assert.Equal(t, MismatchError{Index: 2, Len: 1, Want: 2}, me)

	_, _, err = Aggregate(nil)
	assert.ErrorIs(t, err, ErrEmptyGroup)
}

func TestFirstDifference(t *testing.T) {
	d, err := FirstDifference(New("s", 1, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1}, d.Values())

	_, err = FirstDifference(New("s", 5))
	assert.ErrorIs(t, err, ErrInsufficientLength)
}

func TestZeroBase(t *testing.T) {
	z, err := ZeroBase(New("epochs", 4.7, 6.2, 8, 10.9))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 4, 6}, z.Values())

	_, err = ZeroBase(New("empty"))
	assert.ErrorIs(t, err, ErrInsufficientLength)
}

func TestSkipStride(t *testing.T) {
	s := New("s", 0, 1, 2, 3, 4, 5, 6)
	assert.Equal(t, []float64{4, 5, 6}, s.Skip(4).Values())
	assert.True(t, s.Skip(10).Empty())

	st, err := s.Stride(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 6}, st.Values())

	_, err = s.Stride(0)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestSummaries(t *testing.T) {
	s := New("s", 3, -1, 4)
	assert.Equal(t, -1.0, s.Min())
	assert.Equal(t, 4.0, s.Max())
	assert.InDelta(t, 2.0, s.Mean(), 1e-12)
	assert.True(t, math.IsNaN(New("e").Max()))
}

func TestValuesIsACopy(t *testing.T) {
	s := New("s", 1, 2)
	v := s.Values()
	v[0] = 99
	assert.Equal(t, 1.0, s.At(0))
}
