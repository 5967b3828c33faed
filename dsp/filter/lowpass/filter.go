package lowpass

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-subdominant/dsp/core"
)

// nyquistMargin keeps clamped cutoffs strictly below sampleRate/2.
const nyquistMargin = 1e-4

// StereoProcessor is the per-sample capability shared by every filter
// variant in this package.
type StereoProcessor interface {
	ProcessStereo(left, right float64) (float64, float64)
	Reset()
}

var (
	_ StereoProcessor = (*OnePole)(nil)
	_ StereoProcessor = (*TwoPole)(nil)
)

// ClampCutoff returns cutoffHz, or sampleRate/2 - 1e-4 when cutoffHz is at
// or above Nyquist.
func ClampCutoff(sampleRate, cutoffHz float64) float64 {
	nyquist := sampleRate / 2
	if cutoffHz < nyquist {
		return cutoffHz
	}

	return nyquist - nyquistMargin
}

// LogSweep maps a normalized control in [0, 1] onto a logarithmic
// frequency range: minHz * (maxHz/minHz)^control.
func LogSweep(minHz, maxHz, control float64) float64 {
	return minHz * math.Pow(maxHz/minHz, control)
}

func validate(sampleRate, cutoffHz float64) error {
	if !core.ValidSampleRate(sampleRate) {
		return fmt.Errorf("lowpass: sample rate must be positive and finite: %f", sampleRate)
	}

	if cutoffHz <= 0 || math.IsNaN(cutoffHz) || math.IsInf(cutoffHz, 0) {
		return fmt.Errorf("lowpass: cutoff must be positive and finite: %f", cutoffHz)
	}

	return nil
}
