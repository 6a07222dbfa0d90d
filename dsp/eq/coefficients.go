package eq

import (
	"github.com/cwbudde/simple-eq/dsp/core"
	"github.com/cwbudde/simple-eq/dsp/filter/biquad"
	"github.com/cwbudde/simple-eq/dsp/filter/design"
)

const (
	minDesignFreq     = 1.0
	maxDesignFreqFrac = 0.49
)

// ChainCoefficients holds every coefficient set of a MonoChain. It is a
// plain value; copying it copies all coefficients.
type ChainCoefficients struct {
	LowCut       [MaxStages]biquad.Coefficients
	LowCutSlope  Slope
	Peak         biquad.Coefficients
	HighCut      [MaxStages]biquad.Coefficients
	HighCutSlope Slope
}

// Design computes the coefficients for s at sampleRate in place. Cutoff and
// center frequencies are clamped into [1 Hz, 0.49*sampleRate]. Design does
// not allocate.
func (cc *ChainCoefficients) Design(s ChainSettings, sampleRate float64) {
	cc.LowCutSlope = SlopeFromIndex(int(s.LowCutSlope))
	cc.HighCutSlope = SlopeFromIndex(int(s.HighCutSlope))

	designCut(&cc.LowCut, design.ButterworthHPInto, s.LowCutFreq, sampleRate, cc.LowCutSlope)
	designCut(&cc.HighCut, design.ButterworthLPInto, s.HighCutFreq, sampleRate, cc.HighCutSlope)

	cc.Peak = design.PeakDB(sampleRate, clampDesignFreq(s.PeakFreq, sampleRate), s.PeakQ, s.PeakGainDB)
}

type cascadeDesigner func(dst []biquad.Coefficients, freq, sampleRate float64, order int) int

func designCut(dst *[MaxStages]biquad.Coefficients, fn cascadeDesigner, freq, sampleRate float64, slope Slope) {
	n := fn(dst[:], clampDesignFreq(freq, sampleRate), sampleRate, slope.Order())
	for i := n; i < slope.Stages(); i++ {
		dst[i] = biquad.Identity()
	}
}

func clampDesignFreq(freq, sampleRate float64) float64 {
	return core.Clamp(freq, minDesignFreq, maxDesignFreqFrac*sampleRate)
}
