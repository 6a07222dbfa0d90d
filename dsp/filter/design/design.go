package design

import (
	"math"

	"github.com/cwbudde/simple-eq/dsp/core"
	"github.com/cwbudde/simple-eq/dsp/filter/biquad"
)

// defaultQ is the Butterworth Q, used when a caller passes q <= 0.
const defaultQ = 1 / math.Sqrt2

// poly2 holds the coefficients of p0*x^2 + p1*x + p2 (analog, in s) or
// p0 + p1*z^-1 + p2*z^-2 (digital).
type poly2 = [3]float64

// BilinearTransform maps the analog polynomial c0*s^2 + c1*s + c2 to
// d0 + d1*z^-1 + d2*z^-2 with s = 2*fs*(1-z^-1)/(1+z^-1) and scales the
// result so d0 = 1. A degenerate input returns {1, 0, 0}.
func BilinearTransform(sCoeffs [3]float64, sampleRate float64) [3]float64 {
	unit := poly2{1, 0, 0}
	if !(sampleRate > 0) {
		return unit
	}

	d := bilinear(sCoeffs, 2*sampleRate)
	if d[0] == 0 || !core.IsFinite(d[0]) {
		return unit
	}

	return poly2{1, d[1] / d[0], d[2] / d[0]}
}

// bilinear substitutes s = k*(1-z^-1)/(1+z^-1) into p and clears the
// (1+z^-1)^2 denominator.
func bilinear(p poly2, k float64) poly2 {
	hi, mid, lo := p[0]*k*k, p[1]*k, p[2]

	return poly2{
		hi + mid + lo,
		2 * (lo - hi),
		hi - mid + lo,
	}
}

// normalizedW0 returns 2*pi*freq/sampleRate, or false unless
// 0 < freq < sampleRate/2.
func normalizedW0(freq, sampleRate float64) (float64, bool) {
	if !core.IsFinite(sampleRate) || !core.IsFinite(freq) {
		return 0, false
	}
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return 0, false
	}

	return 2 * math.Pi * freq / sampleRate, true
}

func normalizedQ(q float64) float64 {
	if !core.IsFinite(q) || q <= 0 {
		return defaultQ
	}

	return q
}

// normalizeBiquad divides num and den by den[0].
func normalizeBiquad(num, den poly2) (biquad.Coefficients, bool) {
	a0 := den[0]
	if a0 == 0 || !core.IsFinite(a0) {
		return biquad.Coefficients{}, false
	}

	c := biquad.Coefficients{
		B0: num[0] / a0, B1: num[1] / a0, B2: num[2] / a0,
		A1: den[1] / a0, A2: den[2] / a0,
	}

	return c, c.IsFinite()
}
