// Package testutil holds deterministic signal generators and comparison
// helpers shared by the engine tests.
package testutil

import (
	"math"
	"math/rand"
)

// Sample is the element type of an audio buffer.
type Sample interface {
	~float32 | ~float64
}

// Sine generates a deterministic sine wave starting at phase 0.
func Sine[T Sample](freqHz, sampleRate, amplitude float64, length int) []T {
	out := make([]T, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = T(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// Noise generates uniform white noise in [-amplitude, amplitude) with a
// fixed seed.
func Noise[T Sample](seed int64, amplitude float64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit impulse at pos. Out-of-range positions give silence.
func Impulse[T Sample](length, pos int) []T {
	out := make([]T, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Clone returns a copy of src.
func Clone[T Sample](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}
