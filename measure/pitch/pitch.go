// Package pitch estimates the dominant frequency of a signal from its
// magnitude spectrum.
package pitch

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-subdominant/dsp/core"
	"github.com/cwbudde/algo-subdominant/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

const minSamples = 16

var errTooShort = errors.New("pitch: signal too short")

// Result describes the strongest spectral peak.
type Result struct {
	// Frequency is the interpolated peak frequency in Hz.
	Frequency float64
	// Magnitude is the peak amplitude corrected for window gain, so a
	// full-scale sinusoid reads close to 1.
	Magnitude float64
	// Bin is the FFT bin holding the peak.
	Bin int
	// FFTSize is the transform length used.
	FFTSize int
}

// Option configures an estimate.
type Option func(*config)

type config struct {
	window  window.Type
	minFreq float64
}

// WithWindow selects the analysis window. Hann is the default.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithMinFrequency ignores peaks below hz.
func WithMinFrequency(hz float64) Option {
	return func(c *config) {
		if hz > 0 {
			c.minFreq = hz
		}
	}
}

// Estimate finds the dominant frequency of x. The signal is windowed and
// zero-padded to the next power of two; the DC bin is never reported.
func Estimate(x []float64, sampleRate float64, opts ...Option) (Result, error) {
	if !core.ValidSampleRate(sampleRate) {
		return Result{}, fmt.Errorf("pitch: sample rate must be positive and finite: %f", sampleRate)
	}

	if len(x) < minSamples {
		return Result{}, fmt.Errorf("%w: %d samples", errTooShort, len(x))
	}

	cfg := config{window: window.TypeHann}
	for _, opt := range opts {
		opt(&cfg)
	}

	coeffs := window.Generate(cfg.window, len(x), window.WithPeriodic())
	windowed := make([]float64, len(x))

	if err := window.ApplyCoefficients(windowed, x, coeffs); err != nil {
		return Result{}, err
	}

	fftSize := nextPowerOf2(len(x))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("pitch: fft plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, in); err != nil {
		return Result{}, fmt.Errorf("pitch: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(spec[i])
		im[i] = imag(spec[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	binHz := sampleRate / float64(fftSize)
	first := max(1, int(math.Ceil(cfg.minFreq/binHz)))

	peak := -1
	for k := first; k < bins; k++ {
		if peak < 0 || mag[k] > mag[peak] {
			peak = k
		}
	}

	if peak < 0 || mag[peak] == 0 {
		return Result{FFTSize: fftSize}, nil
	}

	offset := 0.0
	if peak > 0 && peak < bins-1 {
		offset = parabolicOffset(mag[peak-1], mag[peak], mag[peak+1])
	}

	gain := window.CoherentGain(coeffs) * float64(len(x)) / 2

	return Result{
		Frequency: (float64(peak) + offset) * binHz,
		Magnitude: mag[peak] / gain,
		Bin:       peak,
		FFTSize:   fftSize,
	}, nil
}

// parabolicOffset fits a parabola through three neighboring magnitudes
// and returns the vertex offset from the center bin in (-0.5, 0.5).
func parabolicOffset(left, center, right float64) float64 {
	den := left - 2*center + right
	if den == 0 {
		return 0
	}

	return 0.5 * (left - right) / den
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
