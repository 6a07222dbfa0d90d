package core

import "math"

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Clamp limits v to [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v), v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// DBToLinear converts decibels to an amplitude factor, 10^(dB/20).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts an amplitude factor to decibels. Zero gives -Inf and
// negative input gives NaN.
func LinearToDB(g float64) float64 {
	switch {
	case g < 0:
		return math.NaN()
	case g == 0:
		return math.Inf(-1)
	default:
		return 20 * math.Log10(g)
	}
}
