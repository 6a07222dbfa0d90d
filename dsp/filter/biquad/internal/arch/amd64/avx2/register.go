//go:build amd64 && !purego

// Package avx2 registers the biquad kernel used on AVX2-capable CPUs.
package avx2

import (
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/cwbudde/simple-eq/dsp/filter/biquad/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "avx2",
		SIMDLevel:    cpu.SIMDAVX2,
		Priority:     20,
		ProcessBlock: processBlock,
	})
}

// processBlock walks the buffer in fixed four-sample windows so the inner
// loop runs without bounds checks. The d0/d1 recursion keeps samples serial.
func processBlock(c registry.Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	n := len(buf) &^ 3
	for i := 0; i < n; i += 4 {
		w := (*[4]float64)(buf[i : i+4])
		for j, x := range w {
			y := b0*x + d0
			d0 = b1*x - a1*y + d1
			d1 = b2*x - a2*y
			w[j] = y
		}
	}

	for i := n; i < len(buf); i++ {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	return d0, d1
}
