package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor infinite.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// SampleCount returns round(duration*rate), the number of samples covering
// [0, duration) at rate. The product is rounded once so callers never depend
// on accumulated floating-point steps.
func SampleCount(duration, rate float64) int {
	n := math.Round(duration * rate)
	if n <= 0 {
		return 0
	}
	return int(n)
}
