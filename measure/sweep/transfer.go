package sweep

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// bandOctaves is the width of the averaging band used by MagnitudeDB.
const bandOctaves = 1.0 / 12

// Transfer is the measured magnitude transfer of a system, |Y(f)| / |X(f)|,
// on the bins of a power-of-two FFT.
type Transfer struct {
	sampleRate float64
	fftSize    int

	// Magnitude spectra of input and output, bins 0..fftSize/2.
	in  []float64
	out []float64
}

// MeasureTransfer computes the transfer of the system that turned input into
// output. Both signals are zero-padded to the next power of two; output must
// already contain the system's decay tail, or the circular wrap shows up as
// measurement error.
func MeasureTransfer(input, output []float64, sampleRate float64) (*Transfer, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, ErrInvalidSampleRate
	}

	if len(input) == 0 || len(output) == 0 {
		return nil, ErrEmptyResponse
	}

	if len(input) != len(output) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(input), len(output))
	}

	fftSize := nextPowerOf2(len(input))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("sweep: failed to create FFT plan: %w", err)
	}

	in, err := magnitudeSpectrum(plan, input, fftSize)
	if err != nil {
		return nil, err
	}

	out, err := magnitudeSpectrum(plan, output, fftSize)
	if err != nil {
		return nil, err
	}

	return &Transfer{sampleRate: sampleRate, fftSize: fftSize, in: in, out: out}, nil
}

func magnitudeSpectrum(plan *algofft.Plan[complex128], signal []float64, fftSize int) ([]float64, error) {
	padded := make([]complex128, fftSize)
	for i, v := range signal {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("sweep: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(freq[k])
		im[k] = imag(freq[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

// FFTSize returns the transform length used for the measurement.
func (t *Transfer) FFTSize() int { return t.fftSize }

// Bins returns the number of bins from DC to Nyquist.
func (t *Transfer) Bins() int { return len(t.in) }

// BinFrequency returns the center frequency of bin k in Hz.
func (t *Transfer) BinFrequency(k int) float64 {
	return float64(k) * t.sampleRate / float64(t.fftSize)
}

// BinMagnitude returns |Y|/|X| at bin k, or 0 where the input has no energy.
func (t *Transfer) BinMagnitude(k int) float64 {
	if t.in[k] == 0 {
		return 0
	}

	return t.out[k] / t.in[k]
}

// MagnitudeDB returns the transfer at freq in dB, as the output-to-input
// energy ratio over a 1/12-octave band centered on freq. It returns NaN when
// the band holds no input energy.
func (t *Transfer) MagnitudeDB(freq float64) float64 {
	half := math.Exp2(bandOctaves / 2)
	binHz := t.sampleRate / float64(t.fftSize)

	lo := int(math.Floor(freq / half / binHz))
	hi := int(math.Ceil(freq * half / binHz))
	lo = max(lo, 0)
	hi = min(hi, len(t.in)-1)

	var ex, ey float64
	for k := lo; k <= hi; k++ {
		ex += t.in[k] * t.in[k]
		ey += t.out[k] * t.out[k]
	}

	if ex == 0 {
		return math.NaN()
	}

	return 10 * math.Log10(ey/ex)
}
