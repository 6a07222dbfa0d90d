package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-vecmath"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"

	"github.com/cwbudde/simple-eq/dsp/core"
	"github.com/cwbudde/simple-eq/dsp/eq"
	"github.com/cwbudde/simple-eq/dsp/param"
)

func processFile(o options, store *param.Store) error {
	in, err := os.Open(o.in)
	if err != nil {
		return err
	}
	defer in.Close()

	src, format, err := wav.Decode(in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", o.in, err)
	}
	defer src.Close()

	e, err := newEngine(store,
		core.WithSampleRate(float64(format.SampleRate)),
		core.WithMaxBlockSize(o.blockSize))
	if err != nil {
		return err
	}

	s := newOutputStage(eq.NewStreamer(src, e), core.DBToLinear(o.gainDB), e.MaxBlockSize())

	out, err := os.Create(o.out)
	if err != nil {
		return err
	}

	if err := wav.Encode(out, s, format); err != nil {
		_ = out.Close()
		return fmt.Errorf("encode %s: %w", o.out, err)
	}

	if err := out.Close(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "wrote %s (%d Hz, %d ch), peak %.2f dBFS\n",
		o.out, format.SampleRate, format.NumChannels, core.LinearToDB(s.peak))
	if s.peak > 1 {
		fmt.Fprintf(os.Stderr, "warning: output clipped, lower -gain by at least %.1f dB\n", core.LinearToDB(s.peak))
	}

	return nil
}

// outputStage applies the output gain to both channels and tracks the
// peak sample magnitude.
type outputStage struct {
	src   beep.Streamer
	scale float64
	flat  []float64
	peak  float64
}

func newOutputStage(src beep.Streamer, scale float64, block int) *outputStage {
	return &outputStage{src: src, scale: scale, flat: make([]float64, 2*block)}
}

func (o *outputStage) Stream(samples [][2]float64) (int, bool) {
	n, ok := o.src.Stream(samples)

	frames := len(o.flat) / 2
	for off := 0; off < n; off += frames {
		block := samples[off:min(off+frames, n)]
		flat := o.flat[:2*len(block)]

		for i, f := range block {
			flat[2*i], flat[2*i+1] = f[0], f[1]
		}

		if o.scale != 1 {
			vecmath.ScaleBlockInPlace(flat, o.scale)
		}
		o.peak = max(o.peak, vecmath.MaxAbs(flat))

		for i := range block {
			block[i] = [2]float64{flat[2*i], flat[2*i+1]}
		}
	}

	return n, ok
}

func (o *outputStage) Err() error { return o.src.Err() }
