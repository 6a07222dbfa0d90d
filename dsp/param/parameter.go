package param

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Parameter is a named value with a range and default. Load and Store are
// safe for concurrent use.
type Parameter struct {
	name    string
	unit    string
	rng     Range
	def     float64
	choices []string

	value atomic.Uint64
}

func newParameter(d Declaration) *Parameter {
	p := &Parameter{
		name:    d.Name,
		unit:    d.Unit,
		rng:     d.Range,
		def:     d.Range.Snap(d.Default),
		choices: append([]string(nil), d.Choices...),
	}
	p.value.Store(math.Float64bits(p.def))

	return p
}

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.name }

// Unit returns the display unit, possibly empty.
func (p *Parameter) Unit() string { return p.unit }

// Range returns the legal value range.
func (p *Parameter) Range() Range { return p.rng }

// Default returns the snapped default value.
func (p *Parameter) Default() float64 { return p.def }

// Choices returns the labels of a choice parameter, or nil.
func (p *Parameter) Choices() []string { return p.choices }

// IsChoice reports whether the parameter selects from a list of labels.
func (p *Parameter) IsChoice() bool { return len(p.choices) > 0 }

// Load returns the current real-world value. It does not allocate.
func (p *Parameter) Load() float64 {
	return math.Float64frombits(p.value.Load())
}

// Store clamps and snaps v, then publishes it.
func (p *Parameter) Store(v float64) {
	p.value.Store(math.Float64bits(p.rng.Snap(v)))
}

// LoadNormalized returns the current value mapped to [0, 1].
func (p *Parameter) LoadNormalized() float64 {
	return p.rng.Normalize(p.Load())
}

// StoreNormalized stores the value at normalized position n.
func (p *Parameter) StoreNormalized(n float64) {
	p.Store(p.rng.Denormalize(n))
}

// Index returns the current value rounded to the nearest integer. For choice
// parameters it is the selected label index.
func (p *Parameter) Index() int {
	return int(math.Round(p.Load()))
}

// Reset restores the default value.
func (p *Parameter) Reset() {
	p.value.Store(math.Float64bits(p.def))
}

// Text formats the current value for display.
func (p *Parameter) Text() string {
	if p.IsChoice() {
		i := p.Index()
		if i >= 0 && i < len(p.choices) {
			return p.choices[i]
		}
	}

	return formatValue(p.Load(), p.unit)
}

func formatValue(v float64, unit string) string {
	switch unit {
	case "Hz":
		if v >= 1000 {
			return fmt.Sprintf("%.2f kHz", v/1000)
		}

		return fmt.Sprintf("%.1f Hz", v)
	case "":
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.1f %s", v, unit)
	}
}
