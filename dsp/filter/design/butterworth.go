package design

import (
	"math"

	"github.com/cwbudde/simple-eq/dsp/filter/biquad"
)

const (
	// MaxOrder is the steepest supported cut filter (48 dB/oct).
	MaxOrder = 8

	// MaxCascadeSections is the number of biquads a MaxOrder cascade needs.
	MaxCascadeSections = MaxOrder / 2
)

type passKind int

const (
	lowpass passKind = iota
	highpass
)

// ButterworthLP designs a lowpass Butterworth cascade of the given even
// order (2, 4, 6 or 8). It returns exactly order/2 sections, or nil when
// order, freq or sampleRate are out of range.
func ButterworthLP(freq, sampleRate float64, order int) []biquad.Coefficients {
	return butterworthAlloc(lowpass, freq, sampleRate, order)
}

// ButterworthHP designs a highpass Butterworth cascade. See [ButterworthLP].
func ButterworthHP(freq, sampleRate float64, order int) []biquad.Coefficients {
	return butterworthAlloc(highpass, freq, sampleRate, order)
}

// ButterworthLPInto writes the lowpass cascade into dst and returns the
// number of sections written. It returns 0 and leaves dst untouched when the
// input is invalid or dst holds fewer than order/2 elements.
func ButterworthLPInto(dst []biquad.Coefficients, freq, sampleRate float64, order int) int {
	return butterworthInto(dst, lowpass, freq, sampleRate, order)
}

// ButterworthHPInto writes the highpass cascade into dst. See [ButterworthLPInto].
func ButterworthHPInto(dst []biquad.Coefficients, freq, sampleRate float64, order int) int {
	return butterworthInto(dst, highpass, freq, sampleRate, order)
}

func validOrder(order int) bool {
	return order >= 2 && order <= MaxOrder && order%2 == 0
}

func butterworthAlloc(kind passKind, freq, sampleRate float64, order int) []biquad.Coefficients {
	if !validOrder(order) {
		return nil
	}

	sections := make([]biquad.Coefficients, order/2)
	if butterworthInto(sections, kind, freq, sampleRate, order) == 0 {
		return nil
	}

	return sections
}

func butterworthInto(dst []biquad.Coefficients, kind passKind, freq, sampleRate float64, order int) int {
	if !validOrder(order) || len(dst) < order/2 {
		return 0
	}

	if _, ok := normalizedW0(freq, sampleRate); !ok {
		return 0
	}

	// Pre-warped analog cutoff for the bilinear transform with k = 2*fs.
	k := 2 * sampleRate
	wc := k * math.Tan(math.Pi*freq/sampleRate)

	var scratch [MaxCascadeSections]biquad.Coefficients

	n := order / 2
	for i := range n {
		// Pole pair at wc*(-sin(theta) +/- j*cos(theta)).
		theta := math.Pi * float64(2*i+1) / (2 * float64(order))
		den := bilinear(poly2{1, 2 * math.Sin(theta) * wc, wc * wc}, k)

		num := bilinear(poly2{1, 0, 0}, k)
		if kind == lowpass {
			num = bilinear(poly2{0, 0, wc * wc}, k)
		}

		c, ok := normalizeBiquad(num, den)
		if !ok {
			return 0
		}

		if !normalizePassband(&c, kind) {
			return 0
		}

		scratch[i] = c
	}

	copy(dst, scratch[:n])

	return n
}

// normalizePassband scales the numerator so the section has unity gain at
// DC (lowpass, z = 1) or Nyquist (highpass, z = -1).
func normalizePassband(c *biquad.Coefficients, kind passKind) bool {
	var num, den float64
	if kind == lowpass {
		num = c.B0 + c.B1 + c.B2
		den = 1 + c.A1 + c.A2
	} else {
		num = c.B0 - c.B1 + c.B2
		den = 1 - c.A1 + c.A2
	}

	if num == 0 || math.IsNaN(num) || math.IsInf(num, 0) {
		return false
	}

	g := den / num
	c.B0 *= g
	c.B1 *= g
	c.B2 *= g

	return c.IsFinite()
}
