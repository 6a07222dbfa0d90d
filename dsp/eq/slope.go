package eq

import "fmt"

// Slope selects the steepness of a cut filter.
type Slope int

const (
	Slope12 Slope = iota // 12 dB/oct, order 2
	Slope24              // 24 dB/oct, order 4
	Slope36              // 36 dB/oct, order 6
	Slope48              // 48 dB/oct, order 8
)

// MaxStages is the depth of a cut cascade.
const MaxStages = int(Slope48) + 1

// SlopeFromIndex converts a choice index to a Slope, clamping out-of-range
// indices to the nearest valid slope.
func SlopeFromIndex(i int) Slope {
	switch {
	case i < int(Slope12):
		return Slope12
	case i > int(Slope48):
		return Slope48
	default:
		return Slope(i)
	}
}

// Order returns the filter order, 2*(s+1).
func (s Slope) Order() int { return 2 * (int(s) + 1) }

// Stages returns the number of enabled biquad stages, s+1.
func (s Slope) Stages() int { return int(s) + 1 }

// DBPerOctave returns the asymptotic rolloff.
func (s Slope) DBPerOctave() int { return 6 * s.Order() }

func (s Slope) String() string {
	return fmt.Sprintf("%d dB/Oct", s.DBPerOctave())
}

// SlopeLabels returns the choice labels in index order.
func SlopeLabels() []string {
	labels := make([]string, MaxStages)
	for i := range labels {
		labels[i] = Slope(i).String()
	}

	return labels
}
