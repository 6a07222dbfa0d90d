package eq

import (
	"errors"
	"fmt"

	"github.com/cwbudde/simple-eq/dsp/param"
)

// ErrMissingParameter is returned when a parameter source lacks one of the
// equalizer parameters.
var ErrMissingParameter = errors.New("eq: missing parameter")

// ParameterSource looks up parameters by name. [*param.Store] implements it.
type ParameterSource interface {
	Parameter(name string) (*param.Parameter, bool)
}

// Resolver turns the current parameter values into ChainSettings. Handles
// are bound once at construction; Resolve performs one atomic load per
// parameter and does not allocate.
type Resolver struct {
	lowCutFreq   *param.Parameter
	highCutFreq  *param.Parameter
	peakFreq     *param.Parameter
	peakGain     *param.Parameter
	peakQuality  *param.Parameter
	lowCutSlope  *param.Parameter
	highCutSlope *param.Parameter
}

// NewResolver binds every equalizer parameter of src.
func NewResolver(src ParameterSource) (*Resolver, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrMissingParameter)
	}

	r := &Resolver{}
	bindings := []struct {
		name string
		dst  **param.Parameter
	}{
		{ParamLowCutFreq, &r.lowCutFreq},
		{ParamHighCutFreq, &r.highCutFreq},
		{ParamPeakFreq, &r.peakFreq},
		{ParamPeakGain, &r.peakGain},
		{ParamPeakQuality, &r.peakQuality},
		{ParamLowCutSlope, &r.lowCutSlope},
		{ParamHighCutSlope, &r.highCutSlope},
	}

	for _, b := range bindings {
		p, ok := src.Parameter(b.name)
		if !ok || p == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingParameter, b.name)
		}
		*b.dst = p
	}

	return r, nil
}

// Resolve reads a fresh snapshot. Each field is read independently, so a
// concurrent write may be visible in some fields and not others.
func (r *Resolver) Resolve() ChainSettings {
	return ChainSettings{
		PeakFreq:     r.peakFreq.Load(),
		PeakGainDB:   r.peakGain.Load(),
		PeakQ:        r.peakQuality.Load(),
		LowCutFreq:   r.lowCutFreq.Load(),
		HighCutFreq:  r.highCutFreq.Load(),
		LowCutSlope:  SlopeFromIndex(r.lowCutSlope.Index()),
		HighCutSlope: SlopeFromIndex(r.highCutSlope.Index()),
	}
}

// ReadChainSettings resolves src once.
func ReadChainSettings(src ParameterSource) (ChainSettings, error) {
	r, err := NewResolver(src)
	if err != nil {
		return ChainSettings{}, err
	}

	return r.Resolve(), nil
}
