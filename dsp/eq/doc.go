// Package eq implements a three-band equalizer: a variable-order low-cut
// (Butterworth high-pass), a parametric peak and a variable-order high-cut
// (Butterworth low-pass), applied identically to two channels.
//
// Each cut is a fixed cascade of four biquad stages. A slope of 12, 24, 36
// or 48 dB/oct enables the first one to four stages and bypasses the rest,
// so changing the slope never changes the signal path.
//
// [Engine] resolves the current settings from a parameter store at the
// start of every block, recomputes all coefficients into preallocated
// arrays and runs the left and right [MonoChain]. Process does not
// allocate, lock or block.
package eq
