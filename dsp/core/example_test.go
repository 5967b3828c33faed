package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-subdominant/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithBlockSize(256),
	)

	fmt.Printf("sampleRate=%.0f blockSize=%d\n", cfg.SampleRate, cfg.BlockSize)

	// Output:
	// sampleRate=44100 blockSize=256
}

func ExampleHardClip() {
	fmt.Println(core.HardClip(0.5), core.HardClip(20), core.HardClip(-3))

	// Output:
	// 0.5 1 -1
}
