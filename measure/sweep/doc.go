// Package sweep generates logarithmic sine sweeps and measures the
// magnitude transfer of a linear system from its sweep response.
//
// A logarithmic sweep spends equal time in every octave, which gives an
// even excitation from the lowest band to the highest. Feeding it through a
// filter and dividing the output spectrum by the input spectrum yields the
// filter's frequency response:
//
//	s := &sweep.LogSweep{StartFreq: 20, EndFreq: 20000, Duration: 1, SampleRate: 44100}
//	x, _ := s.Generate()
//	x = append(x, make([]float64, 11025)...) // room for the filter tail
//	y := process(x)
//	tr, _ := sweep.MeasureTransfer(x, y, 44100)
//	db := tr.MagnitudeDB(1000)
package sweep
