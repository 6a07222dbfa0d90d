package biquad

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
	archregistry "github.com/cwbudde/simple-eq/dsp/filter/biquad/internal/arch/registry"
)

// Coefficients are the normalized (a0 = 1) coefficients of
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
//
// realized in Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Identity returns the pass-through coefficients, H(z) = 1.
func Identity() Coefficients {
	return Coefficients{B0: 1}
}

// IsFinite reports whether no coefficient is NaN or Inf.
func (c Coefficients) IsFinite() bool {
	return finite(c.B0) && finite(c.B1) && finite(c.B2) && finite(c.A1) && finite(c.A2)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Section is one second-order filter: its coefficients plus the two-element
// delay line of the transposed structure.
type Section struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a Section using c with a cleared delay line.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample runs one sample through the section.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters buf in place without allocating. The block kernel
// (generic, SSE2 or AVX2) is resolved on first use.
func (s *Section) ProcessBlock(buf []float64) {
	if len(buf) == 0 {
		return
	}

	s.d0, s.d1 = blockKernel()(archregistry.Coefficients{
		B0: s.B0, B1: s.B1, B2: s.B2,
		A1: s.A1, A2: s.A2,
	}, s.d0, s.d1, buf)
}

var blockKernel = sync.OnceValue(lookupBlockKernel)

func lookupBlockKernel() archregistry.ProcessBlockFn {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil || entry.ProcessBlock == nil {
		panic("biquad: no block kernel registered for this CPU")
	}

	return entry.ProcessBlock
}

// processBlockScalar is the reference loop the kernels are checked against.
func (s *Section) processBlockScalar(buf []float64) {
	for i := range buf {
		buf[i] = s.ProcessSample(buf[i])
	}
}

// Reset clears the delay line.
func (s *Section) Reset() {
	s.d0, s.d1 = 0, 0
}

// State returns the delay line as [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState overwrites the delay line with a value obtained from State.
func (s *Section) SetState(state [2]float64) {
	s.d0, s.d1 = state[0], state[1]
}
