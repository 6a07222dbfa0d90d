package core

import "math"

// StreamConfig describes an audio stream: its sample rate and the largest
// block the host will deliver.
type StreamConfig struct {
	SampleRate   float64
	MaxBlockSize int
}

// StreamOption mutates a StreamConfig.
type StreamOption func(*StreamConfig)

// DefaultStreamConfig is 44.1 kHz with 512-frame blocks.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{SampleRate: 44100, MaxBlockSize: 512}
}

// WithSampleRate sets the sample rate. Non-positive or non-finite values
// leave the config unchanged.
func WithSampleRate(sampleRate float64) StreamOption {
	return func(cfg *StreamConfig) {
		if IsFinite(sampleRate) && sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithMaxBlockSize sets the maximum block size. Non-positive values leave
// the config unchanged.
func WithMaxBlockSize(frames int) StreamOption {
	return func(cfg *StreamConfig) {
		if frames > 0 {
			cfg.MaxBlockSize = frames
		}
	}
}

// NewStreamConfig applies opts to DefaultStreamConfig.
func NewStreamConfig(opts ...StreamOption) StreamConfig {
	cfg := DefaultStreamConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Frames returns the number of frames covering seconds, rounded to nearest.
func (c StreamConfig) Frames(seconds float64) int {
	return int(math.Round(seconds * c.SampleRate))
}

// Nyquist returns half the sample rate.
func (c StreamConfig) Nyquist() float64 {
	return c.SampleRate / 2
}
