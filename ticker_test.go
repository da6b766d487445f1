package paperplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func majors(ticks []plot.Tick) (values []float64, labels []string) {
	for _, t := range ticks {
		if !t.IsMinor() {
			values = append(values, t.Value)
			labels = append(labels, t.Label)
		}
	}
	return values, labels
}

func TestMultipleTicker(t *testing.T) {
	ticks := MultipleTicker{Major: 0.5, Minor: 0.1}.Ticks(0, 1)
	require.Len(t, ticks, 11)

	values, labels := majors(ticks)
	assert.Equal(t, []float64{0, 0.5, 1}, values)
	assert.Equal(t, []string{"0", "0.5", "1.0"}, labels)

	for _, tk := range ticks[3:] {
		assert.True(t, tk.IsMinor())
		assert.NotContains(t, []float64{0, 0.5, 1}, tk.Value)
	}
}

func TestMultipleTickerOrigin(t *testing.T) {
	values, _ := majors(MultipleTicker{Major: 2, Origin: 1}.Ticks(0, 6))
	assert.Equal(t, []float64{1, 3, 5}, values)
}

func TestMultipleTickerFallback(t *testing.T) {
	ticks := MultipleTicker{}.Ticks(0, 10)
	assert.Equal(t, plot.DefaultTicks{}.Ticks(0, 10), ticks)
}

func TestMultipleTickerBounded(t *testing.T) {
	ticks := MultipleTicker{Major: 1e-12}.Ticks(0, 1e6)
	assert.Equal(t, plot.DefaultTicks{}.Ticks(0, 1e6), ticks)

	ticks = MultipleTicker{Major: 1, Minor: 1e-9}.Ticks(0, 10)
	assert.Len(t, ticks, 11, "minors too fine are dropped")

	assert.Empty(t, MultipleTicker{Major: 1}.Ticks(0.2, 0.3))
	assert.Equal(t, []float64{0.2, 0.4, 0.6}, multiples(0.15, 0.7, 0, 0.2))
}

func TestSciFormat(t *testing.T) {
	for x, want := range map[float64]string{
		0:       "0",
		0.002:   "2e-3",
		0.00015: "1.5e-4",
		1000:    "1e3",
		-0.05:   "-5e-2",
		1:       "1e0",
	} {
		assert.Equal(t, want, SciFormat(x), "%g", x)
	}
}

func TestSciTicks(t *testing.T) {
	_, labels := majors(SciTicks{MultipleTicker{Major: 0.001}}.Ticks(0, 0.003))
	assert.Equal(t, []string{"0", "1e-3", "2e-3", "3e-3"}, labels)
}

func TestRelabelTicker(t *testing.T) {
	// Every 2nd epoch after skipping 4.
	_, labels := majors(RelabelTicker{Ticker: MultipleTicker{Major: 1}, Scale: 2, Offset: 4}.Ticks(0, 3))
	assert.Equal(t, []string{"4", "6", "8", "10"}, labels)
}

func TestBlankFirst(t *testing.T) {
	ticks := BlankFirst{MultipleTicker{Major: 1, Minor: 0.5}}.Ticks(0, 2)
	_, labels := majors(ticks)
	assert.Equal(t, []string{" ", "1", "2"}, labels)
}

func TestRound(t *testing.T) {
	assert.InDelta(t, 0.15, RoundUp(0.12, 0, 0.05), 1e-12)
	assert.InDelta(t, 0.10, RoundDown(0.12, 0, 0.05), 1e-12)
	assert.InDelta(t, 0.10, RoundUp(0.1, 0, 0.05), 1e-12)
	assert.InDelta(t, 3, RoundDown(4, 1, 2), 1e-12)
	assert.Equal(t, 2, decimals(0.25))
	assert.Equal(t, 0, decimals(5))
	assert.Equal(t, "0.50", formatStep(0.5, 0.25))
}
