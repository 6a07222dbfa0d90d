package eq

import (
	"errors"
	"fmt"

	"github.com/cwbudde/simple-eq/dsp/core"
)

var (
	// ErrInvalidSampleRate is returned by Prepare for a non-positive rate.
	ErrInvalidSampleRate = errors.New("eq: invalid sample rate")

	// ErrInvalidBlockSize is returned by Prepare for a non-positive block size.
	ErrInvalidBlockSize = errors.New("eq: invalid block size")

	// ErrNotPrepared is returned by Process before Prepare succeeded.
	ErrNotPrepared = errors.New("eq: engine not prepared")

	// ErrChannelLength is returned when the two channel buffers differ in length.
	ErrChannelLength = errors.New("eq: channel length mismatch")
)

// Engine is a stereo equalizer driven by a parameter source.
//
// Prepare, Reset and Process must be called from one goroutine (the audio
// callback). Parameters may be written concurrently through the source.
type Engine struct {
	resolver *Resolver

	left  MonoChain
	right MonoChain

	coeffs   ChainCoefficients
	settings ChainSettings

	sampleRate   float64
	maxBlockSize int
	scratch      []float64
	prepared     bool
}

// NewEngine binds the engine to src. It fails with ErrMissingParameter when
// src lacks an equalizer parameter.
func NewEngine(src ParameterSource) (*Engine, error) {
	r, err := NewResolver(src)
	if err != nil {
		return nil, err
	}

	e := &Engine{resolver: r}
	e.left.Init()
	e.right.Init()

	return e, nil
}

// Prepare configures the engine for a stream. It allocates the scratch
// buffer, clears all history and recomputes the coefficients once. It may be
// called again whenever the sample rate or maximum block size changes.
func (e *Engine) Prepare(sampleRate float64, maxBlockSize int) error {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	if maxBlockSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBlockSize, maxBlockSize)
	}

	e.sampleRate = sampleRate
	e.maxBlockSize = maxBlockSize
	e.scratch = core.EnsureLen(e.scratch, maxBlockSize)
	e.prepared = true

	e.Reset()
	e.update()

	return nil
}

// Reset clears the history of both channels. Coefficients are kept.
func (e *Engine) Reset() {
	e.left.Reset()
	e.right.Reset()
}

// Process filters left and right in place. Coefficients are recomputed from
// the parameter source once per call. Blocks longer than the prepared
// maximum are processed in chunks. Errors are reported before any sample is
// modified.
func (e *Engine) Process(left, right []float32) error {
	if !e.prepared {
		return ErrNotPrepared
	}

	if len(left) != len(right) {
		return fmt.Errorf("%w: %d != %d", ErrChannelLength, len(left), len(right))
	}

	e.update()

	for off := 0; off < len(left); off += e.maxBlockSize {
		end := min(off+e.maxBlockSize, len(left))
		e.processChannel(&e.left, left[off:end])
		e.processChannel(&e.right, right[off:end])
	}

	return nil
}

func (e *Engine) processChannel(c *MonoChain, buf []float32) {
	tmp := e.scratch[:core.Widen(e.scratch, buf)]
	c.ProcessBlock(tmp)
	core.Narrow(buf, tmp)
}

// update resolves the parameters and distributes identical coefficient
// values to both chains.
func (e *Engine) update() {
	e.settings = e.resolver.Resolve()
	e.coeffs.Design(e.settings, e.sampleRate)
	e.left.Update(&e.coeffs)
	e.right.Update(&e.coeffs)
}

// Settings returns the snapshot used by the most recent update.
func (e *Engine) Settings() ChainSettings { return e.settings }

// SampleRate returns the prepared sample rate, or 0.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// MaxBlockSize returns the prepared maximum block size, or 0.
func (e *Engine) MaxBlockSize() int { return e.maxBlockSize }

// Prepared reports whether Prepare has succeeded.
func (e *Engine) Prepared() bool { return e.prepared }

// TailLengthSeconds reports the processing tail. The engine reports none.
func (e *Engine) TailLengthSeconds() float64 { return 0 }

// MagnitudeDB returns the response of the current coefficients at freq.
// It returns 0 before Prepare.
func (e *Engine) MagnitudeDB(freq float64) float64 {
	if !e.prepared {
		return 0
	}

	return e.left.MagnitudeDB(freq, e.sampleRate)
}

// Left returns the left channel chain for inspection.
func (e *Engine) Left() *MonoChain { return &e.left }

// Right returns the right channel chain for inspection.
func (e *Engine) Right() *MonoChain { return &e.right }
