package lowpass

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-subdominant/dsp/core"
)

// Delay-line tap layout per channel.
const (
	tapIn1 = iota
	tapIn2
	tapOut1
	tapOut2
)

// TwoPole is a resonant second-order stereo low-pass in direct form I:
//
//	y[n] = a1*x[n] + a2*x[n-1] + a1*x[n-2] - b1*y[n-1] - b2*y[n-2]
type TwoPole struct {
	// Tracking holds the control value the coefficients were derived from.
	Tracking Tracking

	tapsL, tapsR   [4]float64
	a1, a2, b1, b2 float64
}

// NewTwoPole returns a configured TwoPole.
func NewTwoPole(sampleRate, cutoffHz, q float64) (*TwoPole, error) {
	f := &TwoPole{}
	if err := f.Configure(sampleRate, cutoffHz, q); err != nil {
		return nil, err
	}

	return f, nil
}

// Configure derives the coefficients with the bilinear-style construction
// a = 1/tan(pi*fc/fs), b = 1/q. On error the previous coefficients are kept.
func (f *TwoPole) Configure(sampleRate, cutoffHz, q float64) error {
	if err := validate(sampleRate, cutoffHz); err != nil {
		return err
	}

	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return fmt.Errorf("lowpass: q must be positive and finite: %f", q)
	}

	cutoff := ClampCutoff(sampleRate, cutoffHz)

	a := 1 / math.Tan(math.Pi*cutoff/sampleRate)
	b := 1 / q

	f.a1 = 1 / (1 + b*a + a*a)
	f.a2 = 2 * f.a1
	f.b1 = 2 * (1 - a*a) * f.a1
	f.b2 = (1 - b*a + a*a) * f.a1

	return nil
}

// ProcessStereo filters one stereo frame.
func (f *TwoPole) ProcessStereo(left, right float64) (float64, float64) {
	return f.step(&f.tapsL, left), f.step(&f.tapsR, right)
}

func (f *TwoPole) step(taps *[4]float64, in float64) float64 {
	out := core.FlushDenormals(in*f.a1 + taps[tapIn1]*f.a2 + taps[tapIn2]*f.a1 -
		taps[tapOut1]*f.b1 - taps[tapOut2]*f.b2)

	taps[tapIn2] = taps[tapIn1]
	taps[tapIn1] = in
	taps[tapOut2] = taps[tapOut1]
	taps[tapOut1] = out

	return out
}

// Reset zeroes all taps and marks the coefficients stale. The
// tracked control value is kept.
func (f *TwoPole) Reset() {
	f.tapsL = [4]float64{}
	f.tapsR = [4]float64{}
	f.Tracking.Invalidate()
}

// Coefficients returns the feedforward (a1, a2) and feedback (b1, b2) gains.
func (f *TwoPole) Coefficients() (a1, a2, b1, b2 float64) {
	return f.a1, f.a2, f.b1, f.b2
}
