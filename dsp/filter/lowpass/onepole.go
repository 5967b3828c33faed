package lowpass

import (
	"math"

	"github.com/cwbudde/algo-subdominant/dsp/core"
)

// OnePole is a first-order stereo low-pass:
//
//	y[n] = a1*x[n] + a2*y[n-1],  a1 + a2 = 1
type OnePole struct {
	// Tracking holds the control value the coefficients were derived from.
	Tracking Tracking

	integratorL, integratorR float64
	a1, a2                   float64
}

// NewOnePole returns a configured OnePole.
func NewOnePole(sampleRate, cutoffHz float64) (*OnePole, error) {
	f := &OnePole{}
	if err := f.Configure(sampleRate, cutoffHz); err != nil {
		return nil, err
	}

	return f, nil
}

// Configure derives the coefficients for a -3 dB point near cutoffHz.
// On error the previous coefficients are kept.
func (f *OnePole) Configure(sampleRate, cutoffHz float64) error {
	if err := validate(sampleRate, cutoffHz); err != nil {
		return err
	}

	cutoff := ClampCutoff(sampleRate, cutoffHz)

	a := 2 - math.Cos(2*math.Pi*cutoff/sampleRate)
	b := a - math.Sqrt(a*a-1)

	f.a1 = 1 - b
	f.a2 = b

	return nil
}

// ProcessStereo filters one stereo frame.
func (f *OnePole) ProcessStereo(left, right float64) (float64, float64) {
	f.integratorL = core.FlushDenormals(left*f.a1 + f.integratorL*f.a2)
	f.integratorR = core.FlushDenormals(right*f.a1 + f.integratorR*f.a2)

	return f.integratorL, f.integratorR
}

// Reset zeroes both integrators and marks the coefficients stale. The
// tracked control value is kept.
func (f *OnePole) Reset() {
	f.integratorL = 0
	f.integratorR = 0
	f.Tracking.Invalidate()
}

// Coefficients returns the feedforward (a1) and feedback (a2) gains.
func (f *OnePole) Coefficients() (a1, a2 float64) {
	return f.a1, f.a2
}
