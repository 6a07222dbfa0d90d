// Package biquad provides the second-order IIR runtime used by the equalizer.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. A [Stage] wraps a Section
// with a bypass flag so that fixed-depth cascades can represent several
// filter orders without restructuring the signal path.
//
// Coefficient design (peak, Butterworth cascades) lives in dsp/filter/design.
package biquad
