package core_test

import (
	"fmt"

	"github.com/cwbudde/simple-eq/dsp/core"
)

func ExampleNewStreamConfig() {
	cfg := core.NewStreamConfig(
		core.WithSampleRate(48000),
		core.WithMaxBlockSize(256),
	)

	fmt.Printf("sampleRate=%.0f maxBlock=%d\n", cfg.SampleRate, cfg.MaxBlockSize)
	// Output:
	// sampleRate=48000 maxBlock=256
}

func ExampleDBToLinear() {
	fmt.Printf("%.4f\n", core.DBToLinear(6))
	fmt.Printf("%.4f\n", core.DBToLinear(-24))
	// Output:
	// 1.9953
	// 0.0631
}
