package eq

import "github.com/cwbudde/simple-eq/dsp/filter/biquad"

// MonoChain filters one channel: low-cut, then peak, then high-cut.
type MonoChain struct {
	lowCut  CutBank
	peak    biquad.Stage
	highCut CutBank
}

// NewMonoChain returns a chain with identity coefficients.
func NewMonoChain() *MonoChain {
	c := &MonoChain{}
	c.Init()
	return c
}

// Init bypasses every stage and clears all history.
func (c *MonoChain) Init() {
	c.lowCut.Init()
	c.peak.Init()
	c.highCut.Init()
}

// Update copies cc into the stages and sets the cut activation.
func (c *MonoChain) Update(cc *ChainCoefficients) {
	c.lowCut.Update(cc.LowCut[:], cc.LowCutSlope)
	c.peak.SetCoefficients(cc.Peak)
	c.peak.SetBypassed(false)
	c.highCut.Update(cc.HighCut[:], cc.HighCutSlope)
}

// ProcessBlock filters buf in place.
func (c *MonoChain) ProcessBlock(buf []float64) {
	c.lowCut.ProcessBlock(buf)
	c.peak.ProcessBlock(buf)
	c.highCut.ProcessBlock(buf)
}

// Reset clears the history of every stage.
func (c *MonoChain) Reset() {
	c.lowCut.Reset()
	c.peak.Reset()
	c.highCut.Reset()
}

// LowCut returns the low-cut bank.
func (c *MonoChain) LowCut() *CutBank { return &c.lowCut }

// Peak returns the peak stage.
func (c *MonoChain) Peak() *biquad.Stage { return &c.peak }

// HighCut returns the high-cut bank.
func (c *MonoChain) HighCut() *CutBank { return &c.highCut }

// MagnitudeDB returns the response of the chain at freq in dB.
func (c *MonoChain) MagnitudeDB(freq, sampleRate float64) float64 {
	db := c.lowCut.MagnitudeDB(freq, sampleRate) + c.highCut.MagnitudeDB(freq, sampleRate)
	if !c.peak.Bypassed() {
		pc := c.peak.Coefficients()
		db += pc.MagnitudeDB(freq, sampleRate)
	}

	return db
}
