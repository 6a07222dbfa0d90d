package sweep

import (
	"errors"
	"math"
	"testing"
)

func paddedSweep(t *testing.T, sampleRate float64) []float64 {
	t.Helper()

	s := &LogSweep{StartFreq: 20, EndFreq: 20000, Duration: 0.5, SampleRate: sampleRate}
	x, err := s.Generate()
	if err != nil {
		t.Fatal(err)
	}

	return append(x, make([]float64, int(sampleRate/8))...)
}

func TestMeasureTransfer_Identity(t *testing.T) {
	x := paddedSweep(t, 44100)

	tr, err := MeasureTransfer(x, x, 44100)
	if err != nil {
		t.Fatal(err)
	}

	for _, f := range []float64{50, 100, 1000, 5000, 15000} {
		if db := tr.MagnitudeDB(f); math.Abs(db) > 1e-9 {
			t.Errorf("%v Hz: %.6f dB, want 0", f, db)
		}
	}
}

func TestMeasureTransfer_Gain(t *testing.T) {
	x := paddedSweep(t, 48000)
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 0.5 * v
	}

	tr, err := MeasureTransfer(x, y, 48000)
	if err != nil {
		t.Fatal(err)
	}

	want := 20 * math.Log10(0.5)
	for _, f := range []float64{100, 1000, 10000} {
		if db := tr.MagnitudeDB(f); math.Abs(db-want) > 1e-9 {
			t.Errorf("%v Hz: %.4f dB, want %.4f", f, db, want)
		}
	}
}

func TestMeasureTransfer_DelayIsFlat(t *testing.T) {
	x := paddedSweep(t, 44100)
	y := make([]float64, len(x))
	copy(y[32:], x)

	tr, err := MeasureTransfer(x, y, 44100)
	if err != nil {
		t.Fatal(err)
	}

	for _, f := range []float64{200, 2000, 12000} {
		if db := tr.MagnitudeDB(f); math.Abs(db) > 0.01 {
			t.Errorf("%v Hz: %.4f dB, want 0", f, db)
		}
	}
}

func TestMeasureTransfer_Bins(t *testing.T) {
	x := make([]float64, 1000)
	x[0] = 1

	tr, err := MeasureTransfer(x, x, 1024)
	if err != nil {
		t.Fatal(err)
	}

	if tr.FFTSize() != 1024 || tr.Bins() != 513 {
		t.Fatalf("FFTSize=%d Bins=%d", tr.FFTSize(), tr.Bins())
	}
	if f := tr.BinFrequency(10); f != 10 {
		t.Fatalf("BinFrequency(10) = %v, want 10", f)
	}
	if m := tr.BinMagnitude(10); math.Abs(m-1) > 1e-12 {
		t.Fatalf("BinMagnitude(10) = %v, want 1", m)
	}
}

func TestMeasureTransfer_Errors(t *testing.T) {
	x := []float64{1, 0, 0}

	tests := []struct {
		name    string
		in, out []float64
		sr      float64
		want    error
	}{
		{"empty", nil, nil, 48000, ErrEmptyResponse},
		{"mismatch", x, x[:2], 48000, ErrLengthMismatch},
		{"zero rate", x, x, 0, ErrInvalidSampleRate},
		{"nan rate", x, x, math.NaN(), ErrInvalidSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MeasureTransfer(tt.in, tt.out, tt.sr)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
