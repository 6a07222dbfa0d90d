package design

import (
	"math"

	"github.com/cwbudde/simple-eq/dsp/core"
	"github.com/cwbudde/simple-eq/dsp/filter/biquad"
)

// Peak designs a peaking (bell) biquad from the audio-EQ cookbook.
//
// linearGain is the amplitude gain at freq; use [core.DBToLinear] or [PeakDB]
// for decibels. A gain of exactly 1 yields a section whose numerator equals
// its denominator, so the output reproduces the input sample for sample.
//
// Out-of-range input (freq outside (0, sampleRate/2), non-positive gain)
// yields [biquad.Identity]. A non-positive q falls back to 1/sqrt(2).
func Peak(sampleRate, freq, q, linearGain float64) biquad.Coefficients {
	w0, ok := normalizedW0(freq, sampleRate)
	if !ok || !core.IsFinite(linearGain) || linearGain <= 0 {
		return biquad.Identity()
	}

	a := math.Sqrt(linearGain)
	sw, cw := math.Sincos(w0)
	alpha := sw / (2 * normalizedQ(q))

	c, ok := normalizeBiquad(
		poly2{1 + alpha*a, -2 * cw, 1 - alpha*a},
		poly2{1 + alpha/a, -2 * cw, 1 - alpha/a},
	)
	if !ok {
		return biquad.Identity()
	}

	return c
}

// PeakDB is [Peak] with the gain given in decibels (10^(dB/20)).
func PeakDB(sampleRate, freq, q, gainDB float64) biquad.Coefficients {
	return Peak(sampleRate, freq, q, core.DBToLinear(gainDB))
}
