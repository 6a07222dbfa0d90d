package eq

import (
	"github.com/cwbudde/simple-eq/dsp/param"
)

// Parameter names read by the resolver.
const (
	ParamLowCutFreq   = "LowCut Freq"
	ParamHighCutFreq  = "HighCut Freq"
	ParamPeakFreq     = "Peak Freq"
	ParamPeakGain     = "Peak Gain"
	ParamPeakQuality  = "Peak Quality"
	ParamLowCutSlope  = "LowCut Slope"
	ParamHighCutSlope = "HighCut Slope"
)

// ChainSettings is a snapshot of the real-world equalizer settings.
type ChainSettings struct {
	PeakFreq    float64 // Hz
	PeakGainDB  float64
	PeakQ       float64
	LowCutFreq  float64 // Hz
	HighCutFreq float64 // Hz

	LowCutSlope  Slope
	HighCutSlope Slope
}

// DefaultChainSettings returns the settings of a freshly created store.
func DefaultChainSettings() ChainSettings {
	return ChainSettings{
		PeakFreq:     750,
		PeakGainDB:   0,
		PeakQ:        1,
		LowCutFreq:   20,
		HighCutFreq:  20000,
		LowCutSlope:  Slope12,
		HighCutSlope: Slope12,
	}
}

// ParameterLayout declares the seven equalizer parameters.
func ParameterLayout() param.Layout {
	const skew = 0.25

	d := DefaultChainSettings()
	freq := param.Skewed(20, 20000, 1, skew)
	slopes := SlopeLabels()

	var l param.Layout
	l.Float(ParamLowCutFreq, "Hz", freq, d.LowCutFreq).
		Float(ParamHighCutFreq, "Hz", freq, d.HighCutFreq).
		Float(ParamPeakFreq, "Hz", freq, d.PeakFreq).
		Float(ParamPeakGain, "dB", param.Skewed(-24, 24, 0.5, skew), d.PeakGainDB).
		Float(ParamPeakQuality, "", param.Skewed(0.1, 10, 0.05, skew), d.PeakQ).
		Choice(ParamLowCutSlope, slopes, int(d.LowCutSlope)).
		Choice(ParamHighCutSlope, slopes, int(d.HighCutSlope))

	return l
}

// NewParameterStore returns a store holding [ParameterLayout] at defaults.
func NewParameterStore() *param.Store {
	s, err := param.NewStore(ParameterLayout())
	if err != nil {
		// The layout is static; failing here is a defect in ParameterLayout.
		panic(err)
	}

	return s
}
