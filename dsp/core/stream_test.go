package core

import (
	"math"
	"testing"
)

func TestNewStreamConfig(t *testing.T) {
	cfg := NewStreamConfig(WithSampleRate(96000), WithMaxBlockSize(2048))
	if cfg.SampleRate != 96000 || cfg.MaxBlockSize != 2048 {
		t.Fatalf("cfg = %+v", cfg)
	}

	if got := cfg.Frames(0.25); got != 24000 {
		t.Fatalf("Frames(0.25) = %d, want 24000", got)
	}
	if got := cfg.Nyquist(); got != 48000 {
		t.Fatalf("Nyquist() = %v, want 48000", got)
	}
}

func TestNewStreamConfig_InvalidIgnored(t *testing.T) {
	cfg := NewStreamConfig(WithSampleRate(0), WithSampleRate(math.NaN()), WithMaxBlockSize(-1), nil)
	if cfg != DefaultStreamConfig() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}
