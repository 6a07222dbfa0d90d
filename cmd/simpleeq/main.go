// Command simpleeq applies the three-band equalizer to a WAV file or prints
// its magnitude response.
//
// Usage:
//
//	simpleeq [flags]
//
// Without -in it prints the response of the configured equalizer at
// log-spaced frequencies. With -measure the response is also measured by
// running a logarithmic sweep through the engine.
//
// Examples:
//
//	simpleeq -lowcut 100 -lowcut-slope 24 -peak-freq 1000 -peak-gain 6
//	simpleeq -highcut 8000 -highcut-slope 48 -measure
//	simpleeq -in voice.wav -out voice-eq.wav -lowcut 80 -gain -1.5
package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/simple-eq/dsp/core"
	"github.com/cwbudde/simple-eq/dsp/eq"
	"github.com/cwbudde/simple-eq/dsp/param"
	"github.com/cwbudde/simple-eq/measure/sweep"
)

type options struct {
	lowCut       float64
	lowCutSlope  int
	highCut      float64
	highCutSlope int
	peakFreq     float64
	peakGain     float64
	peakQ        float64

	sampleRate float64
	blockSize  int
	gainDB     float64
	points     int
	measure    bool

	in  string
	out string
}

func main() {
	d := eq.DefaultChainSettings()

	var o options
	flag.Float64Var(&o.lowCut, "lowcut", d.LowCutFreq, "low-cut frequency in Hz")
	flag.IntVar(&o.lowCutSlope, "lowcut-slope", d.LowCutSlope.DBPerOctave(), "low-cut slope in dB/oct (12, 24, 36, 48)")
	flag.Float64Var(&o.highCut, "highcut", d.HighCutFreq, "high-cut frequency in Hz")
	flag.IntVar(&o.highCutSlope, "highcut-slope", d.HighCutSlope.DBPerOctave(), "high-cut slope in dB/oct (12, 24, 36, 48)")
	flag.Float64Var(&o.peakFreq, "peak-freq", d.PeakFreq, "peak center frequency in Hz")
	flag.Float64Var(&o.peakGain, "peak-gain", d.PeakGainDB, "peak gain in dB")
	flag.Float64Var(&o.peakQ, "peak-q", d.PeakQ, "peak quality")
	flag.Float64Var(&o.sampleRate, "rate", 44100, "sample rate for response output")
	flag.IntVar(&o.blockSize, "block", 512, "maximum processing block size")
	flag.Float64Var(&o.gainDB, "gain", 0, "output gain in dB applied after the equalizer")
	flag.IntVar(&o.points, "points", 31, "number of response points")
	flag.BoolVar(&o.measure, "measure", false, "also measure the response with a log sweep")
	flag.StringVar(&o.in, "in", "", "input WAV file")
	flag.StringVar(&o.out, "out", "", "output WAV file (required with -in)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: simpleeq [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Applies a low-cut / peak / high-cut equalizer.\n")
		fmt.Fprintf(os.Stderr, "Without -in, prints the magnitude response.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	store, err := o.store()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if o.in != "" {
		if o.out == "" {
			fmt.Fprintf(os.Stderr, "error: -out is required with -in\n")
			os.Exit(2)
		}

		if err := processFile(o, store); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		return
	}

	if err := printResponse(o, store); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var errSlope = errors.New("slope must be 12, 24, 36 or 48 dB/oct")

func slopeIndex(dbPerOct int) (int, error) {
	for s := eq.Slope12; s <= eq.Slope48; s++ {
		if s.DBPerOctave() == dbPerOct {
			return int(s), nil
		}
	}

	return 0, fmt.Errorf("%w: %d", errSlope, dbPerOct)
}

func (o options) store() (*param.Store, error) {
	lo, err := slopeIndex(o.lowCutSlope)
	if err != nil {
		return nil, fmt.Errorf("lowcut-slope: %w", err)
	}

	hi, err := slopeIndex(o.highCutSlope)
	if err != nil {
		return nil, fmt.Errorf("highcut-slope: %w", err)
	}

	store := eq.NewParameterStore()
	values := []struct {
		name string
		v    float64
	}{
		{eq.ParamLowCutFreq, o.lowCut},
		{eq.ParamLowCutSlope, float64(lo)},
		{eq.ParamHighCutFreq, o.highCut},
		{eq.ParamHighCutSlope, float64(hi)},
		{eq.ParamPeakFreq, o.peakFreq},
		{eq.ParamPeakGain, o.peakGain},
		{eq.ParamPeakQuality, o.peakQ},
	}

	for _, p := range values {
		if err := store.Set(p.name, p.v); err != nil {
			return nil, err
		}
	}

	return store, nil
}

func newEngine(store *param.Store, opts ...core.StreamOption) (*eq.Engine, error) {
	cfg := core.NewStreamConfig(opts...)

	e, err := eq.NewEngine(store)
	if err != nil {
		return nil, err
	}

	if err := e.Prepare(cfg.SampleRate, cfg.MaxBlockSize); err != nil {
		return nil, err
	}

	return e, nil
}

func printResponse(o options, store *param.Store) error {
	e, err := newEngine(store, core.WithSampleRate(o.sampleRate), core.WithMaxBlockSize(o.blockSize))
	if err != nil {
		return err
	}

	var tr *sweep.Transfer
	if o.measure {
		tr, err = measure(e, core.DBToLinear(o.gainDB))
		if err != nil {
			return err
		}
	}

	s := e.Settings()
	fmt.Printf("low cut %.0f Hz %v, peak %.0f Hz %+.1f dB Q %.2f, high cut %.0f Hz %v @ %.0f Hz\n\n",
		s.LowCutFreq, s.LowCutSlope, s.PeakFreq, s.PeakGainDB, s.PeakQ,
		s.HighCutFreq, s.HighCutSlope, e.SampleRate())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "Freq [Hz]\tResponse [dB]\n"
	if tr != nil {
		header = "Freq [Hz]\tResponse [dB]\tMeasured [dB]\n"
	}

	if _, err := fmt.Fprint(tw, header); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, f := range logFrequencies(20, math.Min(20000, 0.49*e.SampleRate()), o.points) {
		row := fmt.Sprintf("%.1f\t%.2f", f, e.MagnitudeDB(f)+o.gainDB)
		if tr != nil {
			row += fmt.Sprintf("\t%.2f", tr.MagnitudeDB(f))
		}

		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func logFrequencies(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}

	out := make([]float64, n)
	ratio := math.Log(hi / lo)
	for i := range out {
		out[i] = lo * math.Exp(ratio*float64(i)/float64(n-1))
	}

	return out
}

// measure runs a one-second sweep through e, scales the result by gain and
// returns the measured transfer. The engine history is cleared afterwards.
func measure(e *eq.Engine, gain float64) (*sweep.Transfer, error) {
	sr := e.SampleRate()

	s := &sweep.LogSweep{StartFreq: 20, EndFreq: math.Min(20000, 0.49*sr), Duration: 1, SampleRate: sr}
	x, err := s.Generate()
	if err != nil {
		return nil, err
	}
	x = append(x, make([]float64, int(sr/4))...)

	left := make([]float32, len(x))
	core.Narrow(left, x)
	right := make([]float32, len(x))
	copy(right, left)

	in := make([]float64, len(x))
	core.Widen(in, left)

	blk := e.MaxBlockSize()
	for off := 0; off < len(left); off += blk {
		end := min(off+blk, len(left))
		if err := e.Process(left[off:end], right[off:end]); err != nil {
			return nil, err
		}
	}
	e.Reset()

	filtered := make([]float64, len(x))
	core.Widen(filtered, left)

	out := make([]float64, len(x))
	vecmath.ScaleBlock(out, filtered, gain)

	return sweep.MeasureTransfer(in, out, sr)
}
