package eq

import (
	"math"
	"testing"

	"github.com/cwbudde/simple-eq/internal/testutil"
	"github.com/cwbudde/simple-eq/measure/sweep"
)

// TestEngine_SweepResponse drives the engine with a logarithmic sweep in
// host-sized blocks and checks the measured magnitude response.
func TestEngine_SweepResponse(t *testing.T) {
	const sr = 44100.0

	e, store := newTestEngine(t, sr, 512)
	setParams(t, store, map[string]float64{
		ParamLowCutFreq:   100,
		ParamLowCutSlope:  1,
		ParamHighCutFreq:  10000,
		ParamHighCutSlope: 0,
		ParamPeakFreq:     1000,
		ParamPeakGain:     6,
		ParamPeakQuality:  1,
	})

	s := &sweep.LogSweep{StartFreq: 20, EndFreq: 20000, Duration: 1, SampleRate: sr}
	x, err := s.Generate()
	if err != nil {
		t.Fatal(err)
	}
	x = append(x, make([]float64, int(sr/4))...)

	left := make([]float32, len(x))
	for i, v := range x {
		left[i] = float32(v)
	}
	right := make([]float32, len(left))
	copy(right, left)

	in := make([]float64, len(left))
	for i, v := range left {
		in[i] = float64(v)
	}

	for off := 0; off < len(left); off += 512 {
		end := min(off+512, len(left))
		if err := e.Process(left[off:end], right[off:end]); err != nil {
			t.Fatal(err)
		}
	}

	out := make([]float64, len(left))
	for i, v := range left {
		out[i] = float64(v)
	}

	tr, err := sweep.MeasureTransfer(in, out, sr)
	if err != nil {
		t.Fatal(err)
	}

	checks := []struct {
		name      string
		freq      float64
		want, tol float64
	}{
		{"peak bump", 1000, 6, 0.5},
		{"low cut corner", 100, -3, 1},
		{"high cut corner", 10000, -3, 1},
	}
	for _, c := range checks {
		if db := tr.MagnitudeDB(c.freq); math.Abs(db-c.want) > c.tol {
			t.Errorf("%s: %.2f dB at %v Hz, want %.1f", c.name, db, c.freq, c.want)
		}
	}

	// Two octaves below the low cut the 24 dB/oct asymptote dominates.
	if d := tr.MagnitudeDB(50) - tr.MagnitudeDB(25); math.Abs(d-24) > 2 {
		t.Errorf("low cut rolloff 25->50 Hz = %.2f dB, want ~24", d)
	}

	if db := tr.MagnitudeDB(15000); db > -8 {
		t.Errorf("high cut at 15 kHz = %.2f dB, want below -8", db)
	}

	// Above the high cut the measured rolloff follows the 12 dB/oct design.
	measuredDrop := tr.MagnitudeDB(16000) - tr.MagnitudeDB(12500)
	designedDrop := e.MagnitudeDB(16000) - e.MagnitudeDB(12500)
	if math.Abs(measuredDrop-designedDrop) > 1 || measuredDrop > -4 {
		t.Errorf("high cut 12.5->16 kHz: measured %.2f dB, designed %.2f dB", measuredDrop, designedDrop)
	}

	// The bump is centered near 1 kHz.
	if tr.MagnitudeDB(1000) <= tr.MagnitudeDB(500) || tr.MagnitudeDB(1000) <= tr.MagnitudeDB(2000) {
		t.Error("peak not centered on 1 kHz")
	}

	for _, f := range []float64{50, 100, 300, 1000, 3000, 10000} {
		want := e.MagnitudeDB(f)
		if got := tr.MagnitudeDB(f); math.Abs(got-want) > 0.5 {
			t.Errorf("%v Hz: measured %.2f dB, analytic %.2f dB", f, got, want)
		}
	}

	testutil.RequireIdentical(t, left, right)
}

// TestEngine_HighCutOctaveRolloff checks the per-octave attenuation of the
// high cut well below Nyquist, where bilinear warping is small.
func TestEngine_HighCutOctaveRolloff(t *testing.T) {
	e, store := newTestEngine(t, 48000, 64)
	buf := make([]float32, 64)

	for _, slope := range []Slope{Slope12, Slope24} {
		setParams(t, store, map[string]float64{
			ParamLowCutFreq:   20,
			ParamLowCutSlope:  0,
			ParamHighCutFreq:  1000,
			ParamHighCutSlope: float64(slope),
			ParamPeakGain:     0,
		})
		if err := e.Process(buf, make([]float32, 64)); err != nil {
			t.Fatal(err)
		}

		drop := e.MagnitudeDB(4000) - e.MagnitudeDB(2000)
		if want := -float64(slope.DBPerOctave()); math.Abs(drop-want) > 1 {
			t.Errorf("%v: 2->4 kHz drop %.2f dB, want %.0f", slope, drop, want)
		}
	}
}
