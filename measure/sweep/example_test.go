package sweep_test

import (
	"fmt"

	"github.com/cwbudde/simple-eq/measure/sweep"
)

func ExampleLogSweep_Generate() {
	s := &sweep.LogSweep{StartFreq: 20, EndFreq: 20000, Duration: 0.1, SampleRate: 48000}

	x, err := s.Generate()
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(x))
	// Output:
	// 4800
}

func ExampleMeasureTransfer() {
	s := &sweep.LogSweep{StartFreq: 20, EndFreq: 20000, Duration: 0.25, SampleRate: 48000}
	x, _ := s.Generate()

	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 2 * v
	}

	tr, err := sweep.MeasureTransfer(x, y, 48000)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.2f dB\n", tr.MagnitudeDB(1000))
	// Output:
	// 6.02 dB
}
