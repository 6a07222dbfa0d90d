// Package param provides a store of named, ranged parameters whose values
// can be written from a control context and read from the audio callback
// without locks.
//
// Each [Parameter] keeps its real-world value as float64 bits in an atomic
// word, so a single read never observes a torn value. Reading several
// parameters is not atomic as a group.
//
// Ranges follow the usual plugin convention: a normalized position p in
// [0, 1] maps to min + (max-min)*p^(1/skew), and stored values are snapped
// to the range interval.
package param
