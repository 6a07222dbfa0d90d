package eq

import (
	"errors"
	"testing"

	"github.com/cwbudde/simple-eq/dsp/param"
)

func TestParameterLayout_Names(t *testing.T) {
	s := NewParameterStore()

	want := []string{
		ParamLowCutFreq, ParamHighCutFreq, ParamPeakFreq, ParamPeakGain,
		ParamPeakQuality, ParamLowCutSlope, ParamHighCutSlope,
	}
	got := s.Names()

	if len(got) != len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParameterLayout_Ranges(t *testing.T) {
	s := NewParameterStore()

	tests := []struct {
		name     string
		min, max float64
		interval float64
	}{
		{ParamLowCutFreq, 20, 20000, 1},
		{ParamHighCutFreq, 20, 20000, 1},
		{ParamPeakFreq, 20, 20000, 1},
		{ParamPeakGain, -24, 24, 0.5},
		{ParamPeakQuality, 0.1, 10, 0.05},
		{ParamLowCutSlope, 0, 3, 1},
		{ParamHighCutSlope, 0, 3, 1},
	}

	for _, tc := range tests {
		p, ok := s.Parameter(tc.name)
		if !ok {
			t.Fatalf("%q missing", tc.name)
		}

		r := p.Range()
		if r.Min != tc.min || r.Max != tc.max || r.Interval != tc.interval {
			t.Errorf("%q: range %+v", tc.name, r)
		}
	}

	slope, _ := s.Parameter(ParamHighCutSlope)
	if got := slope.Choices(); len(got) != 4 || got[3] != "48 dB/Oct" {
		t.Errorf("choices = %v", got)
	}
}

func TestResolve_Defaults(t *testing.T) {
	got, err := ReadChainSettings(NewParameterStore())
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultChainSettings()
	if got.PeakFreq != want.PeakFreq || got.PeakGainDB != want.PeakGainDB ||
		got.LowCutFreq != want.LowCutFreq || got.HighCutFreq != want.HighCutFreq ||
		got.LowCutSlope != want.LowCutSlope || got.HighCutSlope != want.HighCutSlope {
		t.Fatalf("defaults = %+v, want %+v", got, want)
	}

	if d := got.PeakQ - want.PeakQ; d > 1e-12 || d < -1e-12 {
		t.Fatalf("PeakQ = %v, want %v", got.PeakQ, want.PeakQ)
	}
}

func TestResolve_ReadsCurrentValues(t *testing.T) {
	s := NewParameterStore()
	r, err := NewResolver(s)
	if err != nil {
		t.Fatal(err)
	}

	set := map[string]float64{
		ParamLowCutFreq:   100,
		ParamHighCutFreq:  10000,
		ParamPeakFreq:     1000,
		ParamPeakGain:     6,
		ParamPeakQuality:  2,
		ParamLowCutSlope:  1,
		ParamHighCutSlope: 3,
	}
	for name, v := range set {
		if err := s.Set(name, v); err != nil {
			t.Fatal(err)
		}
	}

	got := r.Resolve()
	if got.LowCutFreq != 100 || got.HighCutFreq != 10000 || got.PeakFreq != 1000 ||
		got.PeakGainDB != 6 || got.LowCutSlope != Slope24 || got.HighCutSlope != Slope48 {
		t.Fatalf("Resolve() = %+v", got)
	}
}

func TestResolve_NoAllocations(t *testing.T) {
	r, err := NewResolver(NewParameterStore())
	if err != nil {
		t.Fatal(err)
	}

	var sink ChainSettings
	allocs := testing.AllocsPerRun(100, func() {
		sink = r.Resolve()
	})
	if allocs != 0 {
		t.Fatalf("allocs = %v, want 0", allocs)
	}
	_ = sink
}

func TestNewResolver_MissingParameter(t *testing.T) {
	var l param.Layout
	l.Float(ParamLowCutFreq, "Hz", param.Linear(20, 20000, 1), 20)

	s, err := param.NewStore(l)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewResolver(s); !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("err = %v, want ErrMissingParameter", err)
	}
	if _, err := NewResolver(nil); !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("nil source: err = %v", err)
	}
	if _, err := ReadChainSettings(s); !errors.Is(err, ErrMissingParameter) {
		t.Fatalf("ReadChainSettings: err = %v", err)
	}
}
