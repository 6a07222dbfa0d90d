// Package registry holds the biquad block kernels compiled into this build
// and picks the best one the running CPU supports.
package registry

import (
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients mirrors biquad.Coefficients so kernels need not import the
// parent package.
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// ProcessBlockFn filters buf in place with one section starting from the
// delay line (d0, d1) and returns the delay line after the last sample.
type ProcessBlockFn func(c Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64)

// OpEntry describes one kernel.
type OpEntry struct {
	Name         string
	SIMDLevel    cpu.SIMDLevel
	Priority     int
	ProcessBlock ProcessBlockFn
}

// OpRegistry is a priority-ordered set of kernels.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
}

// Global is filled by the init functions of the kernel packages.
var Global = &OpRegistry{}

// Register adds entry. Entries of equal priority keep registration order.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	at := slices.IndexFunc(r.entries, func(e OpEntry) bool { return e.Priority < entry.Priority })
	if at < 0 {
		at = len(r.entries)
	}
	r.entries = slices.Insert(r.entries, at, entry)
}

// Lookup returns the highest-priority entry the features support, or nil.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			e := r.entries[i]
			return &e
		}
	}

	return nil
}
