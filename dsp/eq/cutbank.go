package eq

import "github.com/cwbudde/simple-eq/dsp/filter/biquad"

// CutBank is a fixed cascade of MaxStages biquad stages realizing one cut
// filter. The zero value is not ready; use NewCutBank or Init.
type CutBank struct {
	stages [MaxStages]biquad.Stage
}

// NewCutBank returns a bank with every stage bypassed.
func NewCutBank() *CutBank {
	b := &CutBank{}
	b.Init()
	return b
}

// Init bypasses every stage and clears its history.
func (b *CutBank) Init() {
	for i := range b.stages {
		b.stages[i].Init()
	}
}

// Update enables stages [0, K) with coeffs[i] and bypasses [K, MaxStages),
// where K = slope.Stages(). Bypassed stages are reset to identity
// coefficients so the result depends only on the arguments. If coeffs holds
// fewer than K sets, only len(coeffs) stages are enabled.
func (b *CutBank) Update(coeffs []biquad.Coefficients, slope Slope) {
	k := min(SlopeFromIndex(int(slope)).Stages(), len(coeffs))

	for i := range b.stages {
		st := &b.stages[i]
		if i < k {
			st.SetCoefficients(coeffs[i])
			st.SetBypassed(false)
		} else {
			st.SetCoefficients(biquad.Identity())
			st.SetBypassed(true)
		}
	}
}

// EnabledStages returns the number of stages that are not bypassed.
func (b *CutBank) EnabledStages() int {
	n := 0
	for i := range b.stages {
		if !b.stages[i].Bypassed() {
			n++
		}
	}

	return n
}

// Stage returns stage i for inspection.
func (b *CutBank) Stage(i int) *biquad.Stage {
	return &b.stages[i]
}

// ProcessBlock runs buf through every stage in order, in place.
func (b *CutBank) ProcessBlock(buf []float64) {
	for i := range b.stages {
		b.stages[i].ProcessBlock(buf)
	}
}

// Reset clears the history of every stage.
func (b *CutBank) Reset() {
	for i := range b.stages {
		b.stages[i].Reset()
	}
}

// MagnitudeDB returns the response of the enabled stages in dB.
func (b *CutBank) MagnitudeDB(freq, sampleRate float64) float64 {
	db := 0.0
	for i := range b.stages {
		st := &b.stages[i]
		if st.Bypassed() {
			continue
		}

		c := st.Coefficients()
		db += c.MagnitudeDB(freq, sampleRate)
	}

	return db
}
