package sweep

import (
	"errors"
	"math"
	"math/bits"
)

var (
	ErrInvalidFrequency  = errors.New("sweep: frequencies must be positive")
	ErrFrequencyOrder    = errors.New("sweep: StartFreq must be below EndFreq")
	ErrInvalidDuration   = errors.New("sweep: duration must be positive")
	ErrInvalidSampleRate = errors.New("sweep: sample rate must be positive")
	ErrEmptyResponse     = errors.New("sweep: empty signal")
	ErrLengthMismatch    = errors.New("sweep: input and output lengths differ")
)

// LogSweep is an exponential sine sweep from StartFreq to EndFreq (Hz)
// lasting Duration seconds at SampleRate.
type LogSweep struct {
	StartFreq  float64
	EndFreq    float64
	Duration   float64
	SampleRate float64
}

// Validate returns the first problem found with the sweep parameters.
func (s *LogSweep) Validate() error {
	switch {
	case !(s.StartFreq > 0) || !(s.EndFreq > 0):
		return ErrInvalidFrequency
	case s.StartFreq >= s.EndFreq:
		return ErrFrequencyOrder
	case !(s.Duration > 0):
		return ErrInvalidDuration
	case !(s.SampleRate > 0):
		return ErrInvalidSampleRate
	}

	return nil
}

// Samples is the length of the generated signal.
func (s *LogSweep) Samples() int {
	return int(math.Round(s.Duration * s.SampleRate))
}

// octaveRate is ln(EndFreq/StartFreq) / Duration.
func (s *LogSweep) octaveRate() float64 {
	return math.Log(s.EndFreq/s.StartFreq) / s.Duration
}

// InstantaneousFrequency is StartFreq * exp(t * ln(EndFreq/StartFreq) / Duration).
func (s *LogSweep) InstantaneousFrequency(t float64) float64 {
	return s.StartFreq * math.Exp(t*s.octaveRate())
}

// Generate returns the unit-amplitude sweep. Its phase is the integral of
// InstantaneousFrequency, so the first sample is 0.
func (s *LogSweep) Generate() ([]float64, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	k := s.octaveRate()
	scale := 2 * math.Pi * s.StartFreq / k

	out := make([]float64, s.Samples())
	for n := range out {
		t := float64(n) / s.SampleRate
		out[n] = math.Sin(scale * math.Expm1(k*t))
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}
