package biquad

import (
	"math"
	"math/cmplx"
)

// Response returns H(e^jw) at freqHz for the given sample rate.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	zInv := cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate)
	num := complex(c.B0, 0) + zInv*(complex(c.B1, 0)+zInv*complex(c.B2, 0))
	den := 1 + zInv*(complex(c.A1, 0)+zInv*complex(c.A2, 0))

	return num / den
}

// MagnitudeSquared returns |H(e^jw)|^2 evaluated with real arithmetic.
func (c *Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	w := 2 * math.Pi * freqHz / sampleRate
	sin1, cos1 := math.Sincos(w)
	sin2, cos2 := math.Sincos(2 * w)

	nr := c.B0 + c.B1*cos1 + c.B2*cos2
	ni := c.B1*sin1 + c.B2*sin2
	dr := 1 + c.A1*cos1 + c.A2*cos2
	di := c.A1*sin1 + c.A2*sin2

	return (nr*nr + ni*ni) / (dr*dr + di*di)
}

// MagnitudeDB returns the gain at freqHz in decibels.
func (c *Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns arg H(e^jw) in radians, within [-pi, pi].
func (c *Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}

// CascadeMagnitudeDB returns the gain in decibels of sections run in series.
// No sections means 0 dB.
func CascadeMagnitudeDB(freqHz, sampleRate float64, sections ...Coefficients) float64 {
	var db float64
	for i := range sections {
		db += sections[i].MagnitudeDB(freqHz, sampleRate)
	}

	return db
}

// ImpulseResponse returns the first n samples of the section's impulse
// response. The delay line is left as it was.
func (s *Section) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	saved := s.State()
	defer s.SetState(saved)

	s.Reset()

	ir := make([]float64, n)
	ir[0] = 1
	s.processBlockScalar(ir)

	return ir
}
