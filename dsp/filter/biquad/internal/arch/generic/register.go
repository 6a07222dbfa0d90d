// Package generic registers the portable biquad kernel, the fallback for
// every CPU.
package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/simple-eq/dsp/filter/biquad/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "generic",
		SIMDLevel:    cpu.SIMDNone,
		ProcessBlock: processBlock,
	})
}

func processBlock(c registry.Coefficients, d0, d1 float64, buf []float64) (float64, float64) {
	for i := range buf {
		x := buf[i]
		y := c.B0*x + d0
		d0, d1 = c.B1*x-c.A1*y+d1, c.B2*x-c.A2*y
		buf[i] = y
	}

	return d0, d1
}
