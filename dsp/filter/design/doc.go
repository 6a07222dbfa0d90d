// Package design computes biquad coefficients for the equalizer bands.
//
// [Peak] implements the audio-EQ-cookbook peaking filter used by the bell
// band. [ButterworthHP] and [ButterworthLP] build the cascades behind the
// low-cut and high-cut slopes: order/2 second-order sections obtained by
// placing Butterworth pole pairs on the analog circle, pre-warping the cutoff
// and mapping each pair through the bilinear transform.
//
// The ...Into variants write into caller-owned storage and never allocate;
// they are the ones called from the audio path.
package design
