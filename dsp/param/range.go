package param

import "math"

// Range describes the legal values of a parameter.
//
// Interval is the snapping step (0 disables snapping). Skew shapes the
// normalized mapping; values below 1 spend more of the normalized travel on
// the low end of the range. A zero Skew is treated as 1.
type Range struct {
	Min      float64
	Max      float64
	Interval float64
	Skew     float64
}

// Linear returns an unskewed range.
func Linear(lo, hi, interval float64) Range {
	return Range{Min: lo, Max: hi, Interval: interval, Skew: 1}
}

// Skewed returns a range with the given skew factor.
func Skewed(lo, hi, interval, skew float64) Range {
	return Range{Min: lo, Max: hi, Interval: interval, Skew: skew}
}

// Valid reports whether the range can be used by a parameter.
func (r Range) Valid() bool {
	if !finite(r.Min) || !finite(r.Max) || !finite(r.Interval) || !finite(r.Skew) {
		return false
	}

	return r.Min < r.Max && r.Interval >= 0 && r.Interval <= r.Max-r.Min && r.Skew >= 0
}

// Clamp limits v to [Min, Max]. NaN maps to Min.
func (r Range) Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < r.Min:
		return r.Min
	case v > r.Max:
		return r.Max
	default:
		return v
	}
}

// Snap clamps v and rounds it to the nearest interval step from Min.
func (r Range) Snap(v float64) float64 {
	v = r.Clamp(v)
	if r.Interval <= 0 {
		return v
	}

	return r.Clamp(r.Min + r.Interval*math.Round((v-r.Min)/r.Interval))
}

// Normalize maps a real-world value to [0, 1].
func (r Range) Normalize(v float64) float64 {
	p := (r.Clamp(v) - r.Min) / (r.Max - r.Min)
	if s := r.skew(); s != 1 && p > 0 {
		p = math.Pow(p, s)
	}

	return p
}

// Denormalize maps p in [0, 1] to a real-world value. The result is not
// snapped.
func (r Range) Denormalize(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		p = 0
	case p > 1:
		p = 1
	}

	if s := r.skew(); s != 1 && p > 0 {
		p = math.Exp(math.Log(p) / s)
	}

	return r.Min + (r.Max-r.Min)*p
}

func (r Range) skew() float64 {
	if r.Skew <= 0 {
		return 1
	}

	return r.Skew
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
