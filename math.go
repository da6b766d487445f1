package paperplot

import (
	"math"
	"strconv"
)

// RoundDown returns the largest origin+k*step which is <= a.
func RoundDown(a, origin, step float64) float64 {
	return origin + math.Floor((a-origin)/step+1e-9)*step
}

// RoundUp returns the smallest origin+k*step which is >= a.
func RoundUp(a, origin, step float64) float64 {
	return origin + math.Ceil((a-origin)/step-1e-9)*step
}

// decimals returns the number of decimal places needed to print
// multiples of step.
func decimals(step float64) int {
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return 0
	}
	for d := 0; d < 15; d++ {
		scaled := step * math.Pow10(d)
		if math.Abs(scaled-math.Round(scaled)) < 1e-9*math.Max(1, scaled) {
			return d
		}
	}
	return 15
}

// formatStep prints x with as many decimals as step needs.
func formatStep(x, step float64) string {
	if x == 0 {
		return "0"
	}
	return strconv.FormatFloat(x, 'f', decimals(step), 64)
}
